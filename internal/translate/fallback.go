package translate

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"codeberg.org/ayutaz/honyaku/internal/classify"
	"codeberg.org/ayutaz/honyaku/internal/deadline"
)

// runFallback tries the configured fallback candidates after the primary
// model's retries were exhausted on quota errors. Each candidate gets a
// single attempt, no nested retry loop, all under the same shrinking
// budget. Quota failures move on to the next candidate; any other failure
// ends the operation immediately.
func (t *Translator) runFallback(ctx context.Context, logger zerolog.Logger, req Request, primaryModel, promptText string, tracker *deadline.Tracker) (string, error) {
	candidates := make([]Candidate, 0, len(t.cfg.FallbackOrder[req.Provider]))
	for _, c := range t.cfg.FallbackOrder[req.Provider] {
		if c.Provider == req.Provider && c.Model == primaryModel {
			continue
		}
		candidates = append(candidates, c)
	}

	if len(candidates) == 0 {
		return "", &QuotaExceededError{Model: primaryModel, TriedFallback: false}
	}

	for _, candidate := range candidates {
		if err := tracker.CheckAlive(); err != nil {
			return "", &BudgetExceededError{Limit: t.cfg.OverallTimeout}
		}

		p, err := t.newProvider(ctx, candidate.Provider, req.APIKey)
		if err != nil {
			return "", err
		}

		timeout := tracker.AttemptTimeout(t.cfg.PerAttemptTimeout, t.cfg.RetryBuffer, t.cfg.MinAttemptTimeout)
		logger.Info().
			Str("fallback_provider", string(candidate.Provider)).
			Str("fallback_model", candidate.Model).
			Dur("timeout", timeout).
			Msg("trying fallback model")

		text, err := p.Invoke(ctx, candidate.Model, promptText, timeout)
		if err == nil {
			return strings.TrimSpace(text), nil
		}
		if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			return "", err
		}

		failure := classify.Classify(err)
		logger.Warn().
			Str("fallback_model", candidate.Model).
			Str("kind", failure.Kind.String()).
			Str("error", failure.Message).
			Msg("fallback attempt failed")

		if failure.Kind != classify.Quota {
			return "", &AttemptError{
				Kind:     failure.Kind,
				Provider: candidate.Provider,
				Model:    candidate.Model,
				Message:  failure.Message,
			}
		}
	}

	return "", &QuotaExceededError{Model: primaryModel, TriedFallback: true}
}
