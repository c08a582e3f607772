// Package logging builds the process-wide zerolog logger. Diagnostics go
// to stderr so translated text on stdout stays pipeable.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns the logger for one CLI invocation. Verbose mode writes
// human-readable debug output to stderr; otherwise only warnings and
// errors come through.
func New(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	var writer io.Writer = zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.TimeOnly,
	}

	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()
}
