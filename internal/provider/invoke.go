package provider

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrEmptyResponse is returned when a backend answers successfully but
// with an empty or whitespace-only body. An empty translation is never
// useful output, so adapters treat it as a failure.
var ErrEmptyResponse = errors.New("empty response from backend")

// TimeoutError reports that the local per-attempt timer fired before the
// backend answered. It is a distinct type so the classifier can recognize
// local timeouts structurally instead of matching message text.
type TimeoutError struct {
	Backend string
	Model   string
	After   time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s call to %s timed out after %s", e.Backend, e.Model, e.After)
}

// raceTimeout runs call in its own goroutine and waits for whichever
// settles first: the call, the per-attempt timer, or caller cancellation.
//
// The backend SDKs offer no cooperative cancellation we can rely on, so
// the call runs under context.WithoutCancel: when the timer fires we stop
// waiting, but the network call continues to completion in the background,
// consuming quota and bandwidth with no further effect on the caller.
// That is an accepted resource cost, not a bug to paper over.
func raceTimeout(ctx context.Context, backend, model string, timeout time.Duration, call func(context.Context) (string, error)) (string, error) {
	type outcome struct {
		text string
		err  error
	}

	results := make(chan outcome, 1)
	callCtx := context.WithoutCancel(ctx)

	go func() {
		text, err := call(callCtx)
		results <- outcome{text: text, err: err}
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case out := <-results:
		return out.text, out.err
	case <-timer.C:
		return "", &TimeoutError{Backend: backend, Model: model, After: timeout}
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
