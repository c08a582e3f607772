package provider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// groqBaseURL is Groq's OpenAI-compatible endpoint.
const groqBaseURL = "https://api.groq.com/openai/v1"

// GroqProvider implements Provider for Groq's OpenAI-compatible API.
type GroqProvider struct {
	client *openai.Client
}

// NewGroq creates a Groq adapter.
func NewGroq(apiKey string) *GroqProvider {
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = groqBaseURL

	return &GroqProvider{
		client: openai.NewClientWithConfig(config),
	}
}

// Invoke sends one chat completion call for the given model and prompt.
func (p *GroqProvider) Invoke(ctx context.Context, model, prompt string, timeout time.Duration) (string, error) {
	return raceTimeout(ctx, p.Name(), model, timeout, func(callCtx context.Context) (string, error) {
		resp, err := p.client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
			Model: model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
			Temperature: 0.3,
		})
		if err != nil {
			return "", fmt.Errorf("groq API error: %w", err)
		}

		if len(resp.Choices) == 0 {
			return "", fmt.Errorf("groq model %s: %w", model, ErrEmptyResponse)
		}
		text := strings.TrimSpace(resp.Choices[0].Message.Content)
		if text == "" {
			return "", fmt.Errorf("groq model %s: %w", model, ErrEmptyResponse)
		}
		return text, nil
	})
}

// Name returns the backend name.
func (p *GroqProvider) Name() string {
	return string(Groq)
}
