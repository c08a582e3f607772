package translate

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"codeberg.org/ayutaz/honyaku/internal/deadline"
	"codeberg.org/ayutaz/honyaku/internal/prompt"
	"codeberg.org/ayutaz/honyaku/internal/provider"
	"codeberg.org/ayutaz/honyaku/internal/sanitize"
)

// Request describes one translation. It is immutable once constructed and
// owned by exactly one Translate call; requests are never shared across
// concurrent translations.
type Request struct {
	RawText string
	APIKey  string
	// Provider selects the backend; Model may be empty to use the
	// provider's default.
	Provider provider.ID
	Model    string
	// FromFallbackSource records whether the text came from the caller's
	// fallback source (for example clipboard instead of selection); it is
	// passed through to the progress callback.
	FromFallbackSource bool
}

// ProviderFactory builds the adapter for a backend. Swappable in tests.
type ProviderFactory func(ctx context.Context, id provider.ID, apiKey string) (provider.Provider, error)

// ProgressFunc is notified when a translation starts. Callers are free to
// ignore it.
type ProgressFunc func(message string, usedFallbackSource bool)

// Translator orchestrates sanitization, validation, retry, and fallback
// for translation requests. One Translator may serve many concurrent
// Translate calls; all per-request state lives on the stack of each call.
type Translator struct {
	cfg         Config
	logger      zerolog.Logger
	newProvider ProviderFactory
	onProgress  ProgressFunc
}

// Option configures a Translator.
type Option func(*Translator)

// WithLogger injects a structured logger. Without it the Translator is
// silent.
func WithLogger(logger zerolog.Logger) Option {
	return func(t *Translator) {
		t.logger = logger
	}
}

// WithProgress registers a progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(t *Translator) {
		t.onProgress = fn
	}
}

// WithProviderFactory replaces how backend adapters are constructed.
func WithProviderFactory(factory ProviderFactory) Option {
	return func(t *Translator) {
		t.newProvider = factory
	}
}

// New creates a Translator with the given configuration.
func New(cfg Config, opts ...Option) *Translator {
	t := &Translator{
		cfg:         cfg,
		logger:      zerolog.Nop(),
		newProvider: provider.New,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Translate runs one full translation: validation, prompt building, the
// retry loop on the primary model, and quota-driven fallback. The result
// has surrounding whitespace trimmed. On failure it returns one of the
// error types in errors.go, each carrying a remediation hint.
//
// Attempts are strictly sequential; at most one network call is in flight
// at any instant. Cancelling ctx abandons interest in the result but does
// not stop an in-flight backend call (see internal/provider).
func (t *Translator) Translate(ctx context.Context, req Request) (string, error) {
	sanitized := sanitize.Clean(req.RawText)
	if sanitized == "" {
		return "", &EmptyTextError{}
	}
	if length := utf8.RuneCountInString(sanitized); length > t.cfg.MaxTextLength {
		return "", &TextTooLongError{Length: length, Limit: t.cfg.MaxTextLength}
	}
	if err := provider.ValidateKey(req.Provider, req.APIKey, t.cfg.MinAPIKeyLength); err != nil {
		return "", &InvalidAPIKeyError{Provider: req.Provider}
	}

	model := req.Model
	if model == "" {
		model = provider.DefaultModel(req.Provider)
	}

	logger := t.logger.With().
		Str("request_id", uuid.NewString()).
		Str("provider", string(req.Provider)).
		Str("model", model).
		Logger()

	if t.onProgress != nil {
		t.onProgress("Translating to Japanese...", req.FromFallbackSource)
	}

	p, err := t.newProvider(ctx, req.Provider, req.APIKey)
	if err != nil {
		return "", err
	}

	promptText := prompt.Build(sanitized)
	tracker := deadline.NewTracker(t.cfg.OverallTimeout)

	text, giveUp, err := t.runRetries(ctx, logger, p, req.Provider, model, promptText, tracker)
	if err != nil {
		return "", err
	}
	if giveUp == nil {
		logger.Info().Msg("translation succeeded")
		return strings.TrimSpace(text), nil
	}

	logger.Warn().Str("error", giveUp.Message).Msg("primary model exhausted on quota, trying fallbacks")
	result, err := t.runFallback(ctx, logger, req, model, promptText, tracker)
	if err != nil {
		return "", err
	}
	logger.Info().Msg("fallback translation succeeded")
	return result, nil
}
