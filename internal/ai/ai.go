// Package ai holds the adapters for the translation and image-generation
// providers. Each adapter is chosen at construction: the offline adapters
// return deterministic placeholder data, the online ones call a provider
// once per request and never retry.
package ai

import (
	"fmt"
)

const (
	QualityStandard = "standard"
	QualityHD       = "hd"

	DefaultImageSize = 1024
)

// Fixed translation instruction shared by every chat-based translator
const (
	translationInstruction = "You are a translator. Translate the given Hebrew text to English. " +
		"Answer with the translation only, directly and concisely."
	translationTemperature = 0.3
	translationMaxTokens   = 100
)

// ImageOptions tune an image generation call. Zero values take defaults.
type ImageOptions struct {
	Width   int
	Height  int
	Model   string
	Quality string
}

func (o ImageOptions) withDefaults() ImageOptions {
	if o.Width <= 0 {
		o.Width = DefaultImageSize
	}
	if o.Height <= 0 {
		o.Height = DefaultImageSize
	}
	if o.Quality == "" {
		o.Quality = QualityStandard
	}
	return o
}

// Size renders the dimensions the way image APIs expect them, e.g. 1024x1024
func (o ImageOptions) Size() string {
	o = o.withDefaults()
	return fmt.Sprintf("%dx%d", o.Width, o.Height)
}

// ImageResult is a generated image and the provider's restatement of the prompt
type ImageResult struct {
	URL           string
	RevisedPrompt string
}

// ProviderError reports a failed or malformed provider response.
// Message carries the provider's own error text when it sent one.
type ProviderError struct {
	Provider   string
	Operation  string
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s failed (status %d): %s", e.Provider, e.Operation, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s %s failed: %s", e.Provider, e.Operation, e.Message)
}
