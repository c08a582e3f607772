package provider

import (
	"context"
	"sync"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerProvider decorates a Provider with a circuit breaker so a backend
// that fails repeatedly across requests is skipped for a cooldown period
// instead of being hammered. Breaker-open errors look like any other
// backend failure to the caller and are classified Unknown, so they end
// the current translation without retries.
type BreakerProvider struct {
	inner   Provider
	breaker *gobreaker.CircuitBreaker
}

// WithBreaker wraps a provider in a circuit breaker. The breaker trips
// after five consecutive failures and half-opens after 30 seconds.
func WithBreaker(inner Provider) *BreakerProvider {
	settings := gobreaker.Settings{
		Name:        inner.Name(),
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}

	return &BreakerProvider{
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

// Invoke delegates to the wrapped provider through the breaker.
func (b *BreakerProvider) Invoke(ctx context.Context, model, prompt string, timeout time.Duration) (string, error) {
	result, err := b.breaker.Execute(func() (interface{}, error) {
		return b.inner.Invoke(ctx, model, prompt, timeout)
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

// Name returns the wrapped backend's name.
func (b *BreakerProvider) Name() string {
	return b.inner.Name()
}

// NewCachingFactory returns a provider factory that builds each backend
// adapter once, wrapped in a circuit breaker, and reuses it afterwards.
// Breaker state therefore accumulates across translations: a backend
// failing repeatedly gets skipped for the cooldown period. The API key is
// assumed stable for the life of the factory; the first key seen per
// backend wins.
func NewCachingFactory() func(ctx context.Context, id ID, apiKey string) (Provider, error) {
	var mu sync.Mutex
	cache := make(map[ID]Provider)

	return func(ctx context.Context, id ID, apiKey string) (Provider, error) {
		mu.Lock()
		defer mu.Unlock()

		if p, ok := cache[id]; ok {
			return p, nil
		}
		inner, err := New(ctx, id, apiKey)
		if err != nil {
			return nil, err
		}
		p := WithBreaker(inner)
		cache[id] = p
		return p, nil
	}
}
