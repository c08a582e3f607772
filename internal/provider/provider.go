// Package provider contains the adapters for the LLM backends that perform
// the actual translation calls. Each adapter makes exactly one outbound
// network call per Invoke and races it against a local timer; see invoke.go
// for the timeout semantics.
package provider

import (
	"context"
	"fmt"
	"regexp"
	"time"
)

// ID identifies a translation backend.
type ID string

const (
	// Gemini is the Google Gemini API backend.
	Gemini ID = "gemini"
	// Groq is the Groq OpenAI-compatible backend.
	Groq ID = "groq"
)

// Provider is the capability a backend must offer: send one prompt to one
// model under a per-attempt timeout and return the raw translated text.
// Errors are backend-specific; callers classify them via internal/classify.
type Provider interface {
	// Invoke makes a single network call. A timeout stops the wait, not
	// the underlying call (see raceTimeout).
	Invoke(ctx context.Context, model, prompt string, timeout time.Duration) (string, error)

	// Name returns the backend name for logs and error messages.
	Name() string
}

// New creates the adapter for the given backend ID.
func New(ctx context.Context, id ID, apiKey string) (Provider, error) {
	switch id {
	case Gemini:
		return NewGemini(ctx, apiKey)
	case Groq:
		return NewGroq(apiKey), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", id)
	}
}

// Key formats per backend. These match the shape of issued credentials,
// not their validity; a well-formed key can still be rejected upstream.
var keyPatterns = map[ID]*regexp.Regexp{
	Gemini: regexp.MustCompile(`^AIza[0-9A-Za-z_\-]{30,}$`),
	Groq:   regexp.MustCompile(`^gsk_[0-9A-Za-z]{20,}$`),
}

// ValidateKey checks an API key against the backend's expected format.
// The length floor is checked before the pattern so obviously truncated
// keys fail with the same error as malformed ones.
func ValidateKey(id ID, key string, minLen int) error {
	if len(key) < minLen {
		return fmt.Errorf("%s API key is shorter than %d characters", id, minLen)
	}
	pattern, ok := keyPatterns[id]
	if !ok {
		return fmt.Errorf("unknown provider: %s", id)
	}
	if !pattern.MatchString(key) {
		return fmt.Errorf("%s API key does not match the expected format", id)
	}
	return nil
}

// DefaultModel returns the primary model used when none is selected.
func DefaultModel(id ID) string {
	switch id {
	case Gemini:
		return "gemini-2.5-flash"
	case Groq:
		return "llama-3.3-70b-versatile"
	}
	return ""
}

// Models returns the models honyaku knows how to drive for a backend,
// primary first.
func Models(id ID) []string {
	switch id {
	case Gemini:
		return []string{
			"gemini-2.5-flash",
			"gemini-2.5-pro",
			"gemini-2.0-flash",
			"gemini-2.5-flash-lite",
		}
	case Groq:
		return []string{
			"llama-3.3-70b-versatile",
			"llama-3.1-8b-instant",
			"gemma2-9b-it",
		}
	}
	return nil
}

// IDs returns all supported backend IDs.
func IDs() []ID {
	return []ID{Gemini, Groq}
}
