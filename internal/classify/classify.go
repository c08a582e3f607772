// Package classify maps raw backend errors onto a closed set of failure
// kinds that drive the retry and fallback decisions.
//
// Backend SDKs do not emit typed errors, so most classification matches
// known substrings in the error message. That is inherently fragile and
// is confined to this package: everything downstream branches on Kind,
// never on raw strings. Local timeouts and empty responses are recognized
// structurally, not textually.
package classify

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"codeberg.org/ayutaz/honyaku/internal/provider"
)

// Kind is the failure category of one attempt.
type Kind int

const (
	// Unknown is any failure not recognized below. Terminal.
	Unknown Kind = iota
	// Quota is a rate or usage limit. The only retriable kind.
	Quota
	// Timeout is the local per-attempt timer firing. Terminal: a slow
	// response is not evidence of quota exhaustion.
	Timeout
	// AuthInvalidKey is a rejected credential. Terminal.
	AuthInvalidKey
	// AuthPermissionDenied is a valid credential without access. Terminal.
	AuthPermissionDenied
	// InvalidModel is an unknown or inaccessible model name. Terminal.
	InvalidModel
	// EmptyResponse is a structurally valid response with no text. Terminal.
	EmptyResponse
)

// String returns the kind name for logs.
func (k Kind) String() string {
	switch k {
	case Quota:
		return "quota"
	case Timeout:
		return "timeout"
	case AuthInvalidKey:
		return "auth_invalid_key"
	case AuthPermissionDenied:
		return "auth_permission_denied"
	case InvalidModel:
		return "invalid_model"
	case EmptyResponse:
		return "empty_response"
	default:
		return "unknown"
	}
}

// Failure is one attempt's classified outcome.
type Failure struct {
	Kind    Kind
	Message string
	// RetryHint is the server-suggested backoff, zero when absent.
	RetryHint time.Duration
}

var quotaMarkers = []string{
	"quota",
	"RESOURCE_EXHAUSTED",
	"429",
	"Too Many Requests",
}

// Classify maps a raw adapter error into a Failure. The original message
// is always preserved.
func Classify(err error) Failure {
	msg := err.Error()

	var timeoutErr *provider.TimeoutError
	if errors.As(err, &timeoutErr) {
		return Failure{Kind: Timeout, Message: msg}
	}
	if errors.Is(err, provider.ErrEmptyResponse) {
		return Failure{Kind: EmptyResponse, Message: msg}
	}

	for _, marker := range quotaMarkers {
		if strings.Contains(msg, marker) {
			hint, _ := ParseRetryHint(msg)
			return Failure{Kind: Quota, Message: msg, RetryHint: hint}
		}
	}

	switch {
	case strings.Contains(msg, "API_KEY_INVALID") || strings.Contains(msg, "API key"):
		return Failure{Kind: AuthInvalidKey, Message: msg}
	case strings.Contains(msg, "PERMISSION_DENIED"):
		return Failure{Kind: AuthPermissionDenied, Message: msg}
	case strings.Contains(msg, "model") || strings.Contains(msg, "NOT_FOUND"):
		return Failure{Kind: InvalidModel, Message: msg}
	}

	return Failure{Kind: Unknown, Message: msg}
}

var (
	retryInRegex    = regexp.MustCompile(`retry in ([0-9]+(?:\.[0-9]+)?)s`)
	retryDelayRegex = regexp.MustCompile(`"retryDelay"\s*:\s*"([0-9]+(?:\.[0-9]+)?)s"`)
)

// ParseRetryHint extracts a server-suggested backoff from an error message.
// Two patterns are recognized: "retry in <float>s" and the Google RetryInfo
// JSON fragment "retryDelay":"<float>s". The value is rounded up to the
// nearest millisecond so the caller never waits less than the suggestion.
func ParseRetryHint(message string) (time.Duration, bool) {
	for _, re := range []*regexp.Regexp{retryInRegex, retryDelayRegex} {
		m := re.FindStringSubmatch(message)
		if m == nil {
			continue
		}
		seconds, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		millis := math.Ceil(seconds * 1000)
		return time.Duration(millis) * time.Millisecond, true
	}
	return 0, false
}
