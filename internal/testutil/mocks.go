// Package testutil provides scripted fakes shared by the package tests.
package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"

	"codeberg.org/ayutaz/honyaku/internal/provider"
)

// MockStep is one scripted outcome of a MockProvider invocation.
type MockStep struct {
	Text  string
	Err   error
	Delay time.Duration // simulated backend latency
}

// MockCall records one observed invocation.
type MockCall struct {
	Provider provider.ID
	Model    string
	Timeout  time.Duration
}

// MockProvider returns scripted outcomes in order and records every call.
type MockProvider struct {
	mu    sync.Mutex
	id    provider.ID
	steps []MockStep
	calls []MockCall
}

// NewMockProvider creates a provider fake that plays back steps in order.
func NewMockProvider(id provider.ID, steps ...MockStep) *MockProvider {
	return &MockProvider{id: id, steps: steps}
}

// Invoke pops the next scripted step. Invoking past the end of the script
// is a test bug and fails loudly.
func (m *MockProvider) Invoke(ctx context.Context, model, prompt string, timeout time.Duration) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, MockCall{Provider: m.id, Model: model, Timeout: timeout})
	if len(m.steps) == 0 {
		m.mu.Unlock()
		return "", fmt.Errorf("mock provider %s: no scripted step for call %d", m.id, len(m.calls))
	}
	step := m.steps[0]
	m.steps = m.steps[1:]
	m.mu.Unlock()

	if step.Delay > 0 {
		time.Sleep(step.Delay)
	}
	return step.Text, step.Err
}

// Name returns the mocked backend name.
func (m *MockProvider) Name() string { return string(m.id) }

// Calls returns a copy of the observed invocations.
func (m *MockProvider) Calls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]MockCall(nil), m.calls...)
}

// CallCount returns how many invocations were observed.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// MockFactory hands out a fixed provider fake per backend ID and counts
// construction requests, so tests can assert zero network setup happened.
type MockFactory struct {
	mu        sync.Mutex
	providers map[provider.ID]*MockProvider
	requests  int
}

// NewMockFactory creates a factory serving the given fakes.
func NewMockFactory(providers ...*MockProvider) *MockFactory {
	byID := make(map[provider.ID]*MockProvider, len(providers))
	for _, p := range providers {
		byID[p.id] = p
	}
	return &MockFactory{providers: byID}
}

// New returns the fake registered for id.
func (f *MockFactory) New(ctx context.Context, id provider.ID, apiKey string) (provider.Provider, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests++
	p, ok := f.providers[id]
	if !ok {
		return nil, fmt.Errorf("mock factory: no provider registered for %s", id)
	}
	return p, nil
}

// Requests returns how many adapter constructions were asked for.
func (f *MockFactory) Requests() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests
}

// TotalCalls sums the invocation counts of every registered fake.
func (f *MockFactory) TotalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, p := range f.providers {
		total += p.CallCount()
	}
	return total
}
