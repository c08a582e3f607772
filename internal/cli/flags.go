package cli

import "time"

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	Provider   string
	Model      string
	File       string
	ListModels bool
	Verbose    bool

	// Resilience flags
	Timeout        time.Duration
	AttemptTimeout time.Duration
	MaxAttempts    int
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Provider:       "gemini",
		Timeout:        60 * time.Second,
		AttemptTimeout: 30 * time.Second,
		MaxAttempts:    2,
	}
}
