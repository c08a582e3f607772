package deadline

import (
	"errors"
	"testing"
	"time"
)

// fakeClock advances only when told to, keeping the tests deterministic.
type fakeClock struct {
	current time.Time
}

func (c *fakeClock) now() time.Time { return c.current }

func (c *fakeClock) advance(d time.Duration) { c.current = c.current.Add(d) }

func newTestTracker(limit time.Duration) (*Tracker, *fakeClock) {
	clock := &fakeClock{current: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	return newTrackerAt(limit, clock.now), clock
}

func TestRemainingShrinksWithTime(t *testing.T) {
	tracker, clock := newTestTracker(60 * time.Second)

	if got := tracker.Remaining(); got != 60*time.Second {
		t.Errorf("Remaining() = %s, want 60s", got)
	}

	clock.advance(25 * time.Second)
	if got := tracker.Remaining(); got != 35*time.Second {
		t.Errorf("Remaining() after 25s = %s, want 35s", got)
	}

	clock.advance(40 * time.Second)
	if got := tracker.Remaining(); got != -5*time.Second {
		t.Errorf("Remaining() after 65s = %s, want -5s", got)
	}
}

func TestCheckAlive(t *testing.T) {
	tracker, clock := newTestTracker(10 * time.Second)

	if err := tracker.CheckAlive(); err != nil {
		t.Errorf("CheckAlive with budget left: %v", err)
	}

	clock.advance(10 * time.Second)
	if err := tracker.CheckAlive(); !errors.Is(err, ErrOverallTimeout) {
		t.Errorf("CheckAlive at exhaustion = %v, want ErrOverallTimeout", err)
	}

	clock.advance(time.Second)
	if err := tracker.CheckAlive(); !errors.Is(err, ErrOverallTimeout) {
		t.Errorf("CheckAlive past exhaustion = %v, want ErrOverallTimeout", err)
	}
}

func TestAttemptTimeout(t *testing.T) {
	const (
		attemptCap = 30 * time.Second
		buffer     = 2 * time.Second
		minimum    = 5 * time.Second
	)

	tests := []struct {
		name    string
		elapsed time.Duration
		want    time.Duration
	}{
		{"plenty of budget caps at perAttemptCap", 0, attemptCap},
		{"shrinking budget passes through", 45 * time.Second, 13 * time.Second},
		{"small budget clamps to minimum", 57 * time.Second, minimum},
		{"exhausted budget still returns minimum", 70 * time.Second, minimum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker, clock := newTestTracker(60 * time.Second)
			clock.advance(tt.elapsed)

			if got := tracker.AttemptTimeout(attemptCap, buffer, minimum); got != tt.want {
				t.Errorf("AttemptTimeout = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRemainingMonotonicallyNonIncreasing(t *testing.T) {
	tracker := NewTracker(time.Minute)

	previous := tracker.Remaining()
	for i := 0; i < 10; i++ {
		current := tracker.Remaining()
		if current > previous {
			t.Fatalf("Remaining() increased from %s to %s", previous, current)
		}
		previous = current
	}
}
