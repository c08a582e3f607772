package translate

import (
	"time"

	"codeberg.org/ayutaz/honyaku/internal/provider"
)

// Candidate is one (provider, model) fallback choice.
type Candidate struct {
	Provider provider.ID
	Model    string
}

// Config controls validation limits, time budgets, and the retry and
// fallback behavior of one Translator. Zero values are not usable;
// start from DefaultConfig.
type Config struct {
	// MaxTextLength is the hard cap on sanitized input length, in runes.
	MaxTextLength int

	// MinAPIKeyLength is the minimum accepted credential length, checked
	// before the provider-specific pattern.
	MinAPIKeyLength int

	// PerAttemptTimeout caps a single network call's duration.
	PerAttemptTimeout time.Duration

	// MaxRetryAttempts is the total number of attempts on the primary
	// model (initial attempt included) before giving up to fallback.
	MaxRetryAttempts int

	// InitialRetryDelay and MaxRetryDelay bound the exponential backoff
	// between quota retries.
	InitialRetryDelay time.Duration
	MaxRetryDelay     time.Duration

	// OverallTimeout is the hard cap on the total wall-clock time of one
	// Translate call, across all retries and fallbacks.
	OverallTimeout time.Duration

	// RetryBuffer is a safety margin subtracted from the remaining budget
	// before scheduling the next attempt's timeout or backoff sleep.
	RetryBuffer time.Duration

	// MinAttemptTimeout is a floor ensuring a scheduled attempt timeout is
	// never degenerate, even when the budget is nearly spent.
	MinAttemptTimeout time.Duration

	// FallbackOrder lists, per provider, the candidates tried in order
	// after the primary model's retries are exhausted on quota errors.
	// The primary model itself is skipped at runtime.
	FallbackOrder map[provider.ID][]Candidate
}

// DefaultConfig returns the reference configuration. Fallbacks stay
// within the request's provider because one request carries one API key;
// a caller-supplied plan may cross providers when its key is valid there.
func DefaultConfig() Config {
	return Config{
		MaxTextLength:     10000,
		MinAPIKeyLength:   20,
		PerAttemptTimeout: 30 * time.Second,
		MaxRetryAttempts:  2,
		InitialRetryDelay: time.Second,
		MaxRetryDelay:     10 * time.Second,
		OverallTimeout:    60 * time.Second,
		RetryBuffer:       2 * time.Second,
		MinAttemptTimeout: 5 * time.Second,
		FallbackOrder: map[provider.ID][]Candidate{
			provider.Gemini: {
				{Provider: provider.Gemini, Model: "gemini-2.0-flash"},
				{Provider: provider.Gemini, Model: "gemini-2.5-flash-lite"},
			},
			provider.Groq: {
				{Provider: provider.Groq, Model: "llama-3.1-8b-instant"},
				{Provider: provider.Groq, Model: "gemma2-9b-it"},
			},
		},
	}
}
