package ai

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

const providerGemini = "gemini"

// GeminiConfig configures the Gemini client shared by both adapters
type GeminiConfig struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// NewGeminiClient creates a Gemini API client
func NewGeminiClient(ctx context.Context, cfg GeminiConfig) (*genai.Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	clientCfg := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return client, nil
}

// GeminiTranslator translates with a Gemini text model
type GeminiTranslator struct {
	client *genai.Client
	model  string
}

// NewGeminiTranslator creates a translator using model, gemini-2.0-flash by default
func NewGeminiTranslator(client *genai.Client, model string) *GeminiTranslator {
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &GeminiTranslator{client: client, model: model}
}

// Translate returns the English translation of text
func (t *GeminiTranslator) Translate(ctx context.Context, text string) (string, error) {
	resp, err := t.client.Models.GenerateContent(ctx, t.model, genai.Text(text), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(translationInstruction, genai.RoleUser),
		Temperature:       genai.Ptr[float32](translationTemperature),
		MaxOutputTokens:   translationMaxTokens,
	})
	if err != nil {
		return "", &ProviderError{Provider: providerGemini, Operation: "translation", Message: err.Error()}
	}

	translated := strings.TrimSpace(resp.Text())
	if translated == "" {
		return "", &ProviderError{Provider: providerGemini, Operation: "translation", Message: "empty translation returned"}
	}
	return translated, nil
}

// GeminiImageGenerator generates images with an Imagen model. The image
// comes back inline, so the result URL is a data: URL.
type GeminiImageGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiImageGenerator creates a generator using model, imagen-3.0-generate-002 by default
func NewGeminiImageGenerator(client *genai.Client, model string) *GeminiImageGenerator {
	if model == "" {
		model = "imagen-3.0-generate-002"
	}
	return &GeminiImageGenerator{client: client, model: model}
}

// GenerateImage renders prompt as a single PNG
func (g *GeminiImageGenerator) GenerateImage(ctx context.Context, prompt string, opts ImageOptions) (*ImageResult, error) {
	opts = opts.withDefaults()
	model := opts.Model
	if model == "" {
		model = g.model
	}

	resp, err := g.client.Models.GenerateImages(ctx, model, prompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		AspectRatio:    aspectRatio(opts.Width, opts.Height),
		OutputMIMEType: "image/png",
	})
	if err != nil {
		return nil, &ProviderError{Provider: providerGemini, Operation: "image generation", Message: err.Error()}
	}

	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil || len(resp.GeneratedImages[0].Image.ImageBytes) == 0 {
		return nil, &ProviderError{Provider: providerGemini, Operation: "image generation", Message: "no image returned"}
	}

	generated := resp.GeneratedImages[0]
	revised := generated.EnhancedPrompt
	if revised == "" {
		revised = prompt
	}

	return &ImageResult{
		URL:           dataURL(generated.Image.MIMEType, generated.Image.ImageBytes),
		RevisedPrompt: revised,
	}, nil
}

func dataURL(mimeType string, data []byte) string {
	if mimeType == "" {
		mimeType = "image/png"
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// aspectRatio maps pixel dimensions onto the ratios Imagen accepts
func aspectRatio(width, height int) string {
	if width <= 0 || height <= 0 || width == height {
		return "1:1"
	}

	r := float64(width) / float64(height)
	switch {
	case r >= 1.5:
		return "16:9"
	case r > 1:
		return "4:3"
	case r <= 2.0/3.0:
		return "9:16"
	default:
		return "3:4"
	}
}
