package textsource

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestArgJoinsWords(t *testing.T) {
	src := &Arg{Args: []string{"hello", "beautiful", "world"}}

	got, err := src.Text()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hello beautiful world" {
		t.Errorf("got %q, want words joined with single spaces", got)
	}
}

func TestFileReadsContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte("text from a file\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	src := &File{Path: path}
	got, err := src.Text()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "text from a file\n" {
		t.Errorf("got %q", got)
	}
}

func TestFileMissing(t *testing.T) {
	src := &File{Path: filepath.Join(t.TempDir(), "does-not-exist.txt")}
	if _, err := src.Text(); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestStdinReadsStream(t *testing.T) {
	src := &Stdin{Reader: strings.NewReader("piped text")}

	got, err := src.Text()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "piped text" {
		t.Errorf("got %q, want %q", got, "piped text")
	}
}

func TestResolvePrecedence(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		filePath     string
		wantName     string
		wantFallback bool
	}{
		{"args win over everything", []string{"hello"}, "some.txt", "argument", false},
		{"file wins over stdin", nil, "some.txt", "file", false},
		{"stdin is the fallback", nil, "", "stdin", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, fallback := Resolve(tt.args, tt.filePath, strings.NewReader(""))
			if src.Name() != tt.wantName {
				t.Errorf("source = %s, want %s", src.Name(), tt.wantName)
			}
			if fallback != tt.wantFallback {
				t.Errorf("fallback = %v, want %v", fallback, tt.wantFallback)
			}
		})
	}
}
