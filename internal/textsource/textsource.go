// Package textsource resolves where the text to translate comes from:
// command-line arguments, a file, or standard input. Arguments are the
// primary source; standard input is the fallback when no argument is
// given, so callers can tell the user which one actually supplied the
// text.
package textsource

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Source yields the raw text of one translation request.
type Source interface {
	// Text returns the raw input. It is read once; sanitization happens
	// downstream.
	Text() (string, error)
	// Name identifies the source in logs and progress messages.
	Name() string
}

// Arg serves text passed directly as command-line arguments.
type Arg struct {
	Args []string
}

func (a *Arg) Text() (string, error) {
	return strings.Join(a.Args, " "), nil
}

func (a *Arg) Name() string { return "argument" }

// File serves the contents of a file given with --file.
type File struct {
	Path string
}

func (f *File) Text() (string, error) {
	content, err := os.ReadFile(f.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(content), nil
}

func (f *File) Name() string { return "file" }

// Stdin serves everything readable from the given stream, typically a
// pipe into the process.
type Stdin struct {
	Reader io.Reader
}

func (s *Stdin) Text() (string, error) {
	content, err := io.ReadAll(s.Reader)
	if err != nil {
		return "", fmt.Errorf("failed to read standard input: %w", err)
	}
	return string(content), nil
}

func (s *Stdin) Name() string { return "stdin" }

// Resolve picks the source for one invocation: explicit arguments win,
// then --file, then standard input. The second return value reports
// whether the fallback source (stdin) was used.
func Resolve(args []string, filePath string, stdin io.Reader) (Source, bool) {
	if len(args) > 0 {
		return &Arg{Args: args}, false
	}
	if filePath != "" {
		return &File{Path: filePath}, false
	}
	return &Stdin{Reader: stdin}, true
}
