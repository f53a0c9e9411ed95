package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const providerOpenAI = "openai"

// OpenAIConfig configures the OpenAI-compatible adapters
type OpenAIConfig struct {
	APIKey     string
	BaseURL    string
	Model      string
	Timeout    time.Duration
	HTTPClient *http.Client
}

type openAIClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func newOpenAIClient(cfg OpenAIConfig) openAIClient {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}

	return openAIClient{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

type openAIErrorBody struct {
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// post sends one JSON request and decodes a successful response into out
func (c openAIClient) post(ctx context.Context, path, operation string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal %s request: %w", operation, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", operation, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &ProviderError{Provider: providerOpenAI, Operation: operation, Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ProviderError{Provider: providerOpenAI, Operation: operation, StatusCode: resp.StatusCode, Message: "failed to read response: " + err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := strings.TrimSpace(string(body))
		var errBody openAIErrorBody
		if json.Unmarshal(body, &errBody) == nil && errBody.Error != nil && errBody.Error.Message != "" {
			msg = errBody.Error.Message
		}
		return &ProviderError{Provider: providerOpenAI, Operation: operation, StatusCode: resp.StatusCode, Message: msg}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &ProviderError{Provider: providerOpenAI, Operation: operation, StatusCode: resp.StatusCode, Message: "malformed response: " + err.Error()}
	}

	return nil
}

// OpenAITranslator translates through the chat completions endpoint
type OpenAITranslator struct {
	client openAIClient
	model  string
}

// NewOpenAITranslator creates an online translator
func NewOpenAITranslator(cfg OpenAIConfig) *OpenAITranslator {
	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAITranslator{client: newOpenAIClient(cfg), model: model}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Translate issues a single chat completion and returns the trimmed answer
func (t *OpenAITranslator) Translate(ctx context.Context, text string) (string, error) {
	req := chatRequest{
		Model: t.model,
		Messages: []chatMessage{
			{Role: "system", Content: translationInstruction},
			{Role: "user", Content: text},
		},
		Temperature: translationTemperature,
		MaxTokens:   translationMaxTokens,
	}

	var resp chatResponse
	if err := t.client.post(ctx, "/chat/completions", "translation", req, &resp); err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", &ProviderError{Provider: providerOpenAI, Operation: "translation", Message: "no choices returned"}
	}

	translated := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translated == "" {
		return "", &ProviderError{Provider: providerOpenAI, Operation: "translation", Message: "empty translation returned"}
	}
	return translated, nil
}

// OpenAIImageGenerator generates images through the images endpoint
type OpenAIImageGenerator struct {
	client openAIClient
	model  string
}

// NewOpenAIImageGenerator creates an online image generator
func NewOpenAIImageGenerator(cfg OpenAIConfig) *OpenAIImageGenerator {
	model := cfg.Model
	if model == "" {
		model = "dall-e-3"
	}
	return &OpenAIImageGenerator{client: newOpenAIClient(cfg), model: model}
}

type imageRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	N              int    `json:"n"`
	Size           string `json:"size"`
	Quality        string `json:"quality"`
	ResponseFormat string `json:"response_format"`
}

type imageResponse struct {
	Data []struct {
		URL           string `json:"url"`
		RevisedPrompt string `json:"revised_prompt"`
	} `json:"data"`
}

// GenerateImage requests one image as a URL
func (g *OpenAIImageGenerator) GenerateImage(ctx context.Context, prompt string, opts ImageOptions) (*ImageResult, error) {
	opts = opts.withDefaults()
	model := opts.Model
	if model == "" {
		model = g.model
	}

	req := imageRequest{
		Model:          model,
		Prompt:         prompt,
		N:              1,
		Size:           opts.Size(),
		Quality:        opts.Quality,
		ResponseFormat: "url",
	}

	var resp imageResponse
	if err := g.client.post(ctx, "/images/generations", "image generation", req, &resp); err != nil {
		return nil, err
	}

	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return nil, &ProviderError{Provider: providerOpenAI, Operation: "image generation", Message: "no image returned"}
	}

	return &ImageResult{
		URL:           resp.Data[0].URL,
		RevisedPrompt: resp.Data[0].RevisedPrompt,
	}, nil
}
