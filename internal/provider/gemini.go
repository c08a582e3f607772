package provider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

// GeminiProvider implements Provider for the Google Gemini API.
type GeminiProvider struct {
	client *genai.Client
}

// NewGemini creates a Gemini adapter. The context is only used to set up
// the client; individual calls carry their own contexts.
func NewGemini(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiProvider{client: client}, nil
}

// Invoke sends one generateContent call for the given model and prompt.
func (p *GeminiProvider) Invoke(ctx context.Context, model, prompt string, timeout time.Duration) (string, error) {
	return raceTimeout(ctx, p.Name(), model, timeout, func(callCtx context.Context) (string, error) {
		resp, err := p.client.Models.GenerateContent(callCtx, model, genai.Text(prompt), &genai.GenerateContentConfig{
			Temperature: genai.Ptr[float32](0.3),
		})
		if err != nil {
			return "", fmt.Errorf("gemini API error: %w", err)
		}

		text := strings.TrimSpace(resp.Text())
		if text == "" {
			return "", fmt.Errorf("gemini model %s: %w", model, ErrEmptyResponse)
		}
		return text, nil
	})
}

// Name returns the backend name.
func (p *GeminiProvider) Name() string {
	return string(Gemini)
}
