package translate

import (
	"fmt"
	"time"

	"codeberg.org/ayutaz/honyaku/internal/classify"
	"codeberg.org/ayutaz/honyaku/internal/deadline"
	"codeberg.org/ayutaz/honyaku/internal/provider"
)

// EmptyTextError means there was nothing left to translate after
// sanitization. Never retried; no network call is made.
type EmptyTextError struct{}

func (e *EmptyTextError) Error() string {
	return "no text to translate"
}

// Hint returns remediation guidance for the user.
func (e *EmptyTextError) Hint() string {
	return "Select or enter some text before translating."
}

// TextTooLongError means the sanitized input exceeds the configured cap.
type TextTooLongError struct {
	Length int
	Limit  int
}

func (e *TextTooLongError) Error() string {
	return fmt.Sprintf("text is %d characters, the limit is %d", e.Length, e.Limit)
}

func (e *TextTooLongError) Hint() string {
	return "Split the text into smaller pieces and translate them separately."
}

// InvalidAPIKeyError means the credential failed the provider's format
// check before any network activity. The key itself is never included.
type InvalidAPIKeyError struct {
	Provider provider.ID
}

func (e *InvalidAPIKeyError) Error() string {
	return fmt.Sprintf("the %s API key has an invalid format", e.Provider)
}

func (e *InvalidAPIKeyError) Hint() string {
	switch e.Provider {
	case provider.Gemini:
		return "Get a Gemini API key at https://aistudio.google.com/apikey and set GEMINI_API_KEY."
	case provider.Groq:
		return "Get a Groq API key at https://console.groq.com/keys and set GROQ_API_KEY."
	}
	return "Check the API key configured for this provider."
}

// QuotaExceededError means every allowed attempt failed on quota grounds.
// TriedFallback distinguishes "fallback candidates were exhausted too"
// from "there were no fallback candidates to try".
type QuotaExceededError struct {
	Model         string
	TriedFallback bool
}

func (e *QuotaExceededError) Error() string {
	if e.TriedFallback {
		return fmt.Sprintf("quota exceeded for %s and for every fallback model", e.Model)
	}
	return fmt.Sprintf("quota exceeded for %s (no fallback models configured)", e.Model)
}

func (e *QuotaExceededError) Hint() string {
	return "The provider's rate limit usually recovers after a short wait; try again in a minute or switch providers."
}

// BudgetExceededError means the overall time budget for the whole call
// was spent before a result arrived.
type BudgetExceededError struct {
	Limit time.Duration
}

func (e *BudgetExceededError) Error() string {
	return fmt.Sprintf("translation did not finish within %s", e.Limit)
}

func (e *BudgetExceededError) Unwrap() error {
	return deadline.ErrOverallTimeout
}

func (e *BudgetExceededError) Hint() string {
	return "The providers are slow or rate limited right now; try again, or raise the overall timeout."
}

// AttemptError is a terminal, non-retried failure of a single attempt:
// auth problems, invalid model, empty response, per-attempt timeout, or
// anything unclassified. It ends the whole operation immediately.
type AttemptError struct {
	Kind     classify.Kind
	Provider provider.ID
	Model    string
	Message  string
}

func (e *AttemptError) Error() string {
	return fmt.Sprintf("%s attempt on %s/%s failed: %s", e.Kind, e.Provider, e.Model, e.Message)
}

func (e *AttemptError) Hint() string {
	switch e.Kind {
	case classify.AuthInvalidKey:
		return "The provider rejected the API key; rotate or re-issue it in the provider console."
	case classify.AuthPermissionDenied:
		return "The API key is valid but lacks access to this model; check the key's permissions."
	case classify.InvalidModel:
		return "The selected model is unknown to this provider; pick one from `honyaku --list-models`."
	case classify.EmptyResponse:
		return "The provider returned an empty translation; this is a backend anomaly, try again."
	case classify.Timeout:
		return "The provider did not answer in time; try again or raise the per-attempt timeout."
	}
	return "Unexpected provider failure; check connectivity and try again."
}

// Hint extracts the remediation guidance attached to a translation error,
// or an empty string when the error carries none.
func Hint(err error) string {
	type hinter interface {
		Hint() string
	}
	if h, ok := err.(hinter); ok {
		return h.Hint()
	}
	return ""
}
