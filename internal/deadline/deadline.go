// Package deadline tracks the single overall time budget of one
// translation request. Every retry, backoff sleep, and fallback attempt
// draws from the same shrinking allowance.
package deadline

import (
	"errors"
	"time"
)

// ErrOverallTimeout is returned once the whole request's time budget is
// spent. Callers must check before any blocking operation and fail fast
// rather than letting the budget silently go negative.
var ErrOverallTimeout = errors.New("overall translation timeout exceeded")

// Tracker holds the start instant and overall limit of one request.
// It is owned by a single request and is not safe for concurrent use.
type Tracker struct {
	startedAt time.Time
	limit     time.Duration
	now       func() time.Time
}

// NewTracker starts a budget of the given overall limit.
func NewTracker(limit time.Duration) *Tracker {
	return newTrackerAt(limit, time.Now)
}

func newTrackerAt(limit time.Duration, now func() time.Time) *Tracker {
	return &Tracker{
		startedAt: now(),
		limit:     limit,
		now:       now,
	}
}

// Remaining returns the unspent budget. It can be negative once the
// budget is exhausted; use CheckAlive to turn that into an error.
func (t *Tracker) Remaining() time.Duration {
	return t.limit - t.now().Sub(t.startedAt)
}

// CheckAlive fails with ErrOverallTimeout once the budget is spent.
func (t *Tracker) CheckAlive() error {
	if t.Remaining() <= 0 {
		return ErrOverallTimeout
	}
	return nil
}

// AttemptTimeout computes the timeout for the next attempt:
// clamp(Remaining() - buffer, minimum, perAttemptCap). The result is
// always at least minimum so a final attempt never gets a degenerate
// timeout; callers must still CheckAlive immediately beforehand and
// refuse to start an attempt once the budget is exhausted.
func (t *Tracker) AttemptTimeout(perAttemptCap, buffer, minimum time.Duration) time.Duration {
	timeout := t.Remaining() - buffer
	if timeout > perAttemptCap {
		timeout = perAttemptCap
	}
	if timeout < minimum {
		timeout = minimum
	}
	return timeout
}
