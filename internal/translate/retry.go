package translate

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"codeberg.org/ayutaz/honyaku/internal/classify"
	"codeberg.org/ayutaz/honyaku/internal/deadline"
	"codeberg.org/ayutaz/honyaku/internal/provider"
)

// runRetries drives the bounded retry loop for one (provider, model) pair.
//
// It returns the translated text on success; a non-nil giveUp failure when
// every allowed attempt failed on quota grounds (the caller escalates to
// fallback); or a terminal error for everything else. Non-quota failures
// are never retried: they are not expected to self-resolve.
func (t *Translator) runRetries(ctx context.Context, logger zerolog.Logger, p provider.Provider, id provider.ID, model, promptText string, tracker *deadline.Tracker) (string, *classify.Failure, error) {
	var lastFailure classify.Failure

	for attempt := 0; attempt < t.cfg.MaxRetryAttempts; attempt++ {
		if err := tracker.CheckAlive(); err != nil {
			return "", nil, &BudgetExceededError{Limit: t.cfg.OverallTimeout}
		}

		timeout := tracker.AttemptTimeout(t.cfg.PerAttemptTimeout, t.cfg.RetryBuffer, t.cfg.MinAttemptTimeout)
		logger.Debug().
			Int("attempt", attempt+1).
			Dur("timeout", timeout).
			Dur("remaining", tracker.Remaining()).
			Msg("invoking model")

		text, err := p.Invoke(ctx, model, promptText, timeout)
		if err == nil {
			return text, nil, nil
		}
		if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			// Caller abandoned interest in the result.
			return "", nil, err
		}

		failure := classify.Classify(err)
		logger.Warn().
			Int("attempt", attempt+1).
			Str("kind", failure.Kind.String()).
			Str("error", failure.Message).
			Msg("attempt failed")

		if failure.Kind != classify.Quota {
			return "", nil, &AttemptError{
				Kind:     failure.Kind,
				Provider: id,
				Model:    model,
				Message:  failure.Message,
			}
		}

		lastFailure = failure
		if attempt == t.cfg.MaxRetryAttempts-1 {
			break
		}

		delay := t.backoffDelay(failure, attempt, tracker)
		if delay > 0 {
			logger.Debug().Dur("delay", delay).Msg("backing off before retry")
			if err := sleepContext(ctx, delay); err != nil {
				return "", nil, err
			}
		}
	}

	return "", &lastFailure, nil
}

// backoffDelay picks the wait before the next quota retry: the server's
// suggestion when present, otherwise initialDelay·2^attempt, capped by
// maxDelay and by the remaining budget minus the retry buffer.
func (t *Translator) backoffDelay(failure classify.Failure, attempt int, tracker *deadline.Tracker) time.Duration {
	delay := failure.RetryHint
	if delay <= 0 {
		delay = t.cfg.InitialRetryDelay << uint(attempt)
	}
	if delay > t.cfg.MaxRetryDelay {
		delay = t.cfg.MaxRetryDelay
	}
	if budget := tracker.Remaining() - t.cfg.RetryBuffer; delay > budget {
		delay = budget
	}
	if delay < 0 {
		delay = 0
	}
	return delay
}

// sleepContext waits for the given duration or until the caller abandons
// the request, whichever comes first.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
