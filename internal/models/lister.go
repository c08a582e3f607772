// Package models lists the translation models honyaku can drive, per
// provider, so users can pick a value for --model.
package models

import (
	"fmt"
	"io"
	"strings"

	"codeberg.org/ayutaz/honyaku/internal/provider"
	"codeberg.org/ayutaz/honyaku/internal/translate"
)

// Lister writes the known model catalog to an output stream.
type Lister struct {
	out io.Writer
}

// NewLister creates a new model lister
func NewLister(out io.Writer) *Lister {
	return &Lister{out: out}
}

// ListAvailableModels prints the models of every supported provider,
// primary model first and marked as the default, along with the fallback
// order used when the default model's quota is exhausted.
func (l *Lister) ListAvailableModels() error {
	fmt.Fprintln(l.out, "Available models:")

	fallbacks := translate.DefaultConfig().FallbackOrder
	for _, id := range provider.IDs() {
		fmt.Fprintf(l.out, "\n%s:\n", id)

		defaultModel := provider.DefaultModel(id)
		for _, model := range provider.Models(id) {
			if model == defaultModel {
				fmt.Fprintf(l.out, "  %s (default)\n", model)
			} else {
				fmt.Fprintf(l.out, "  %s\n", model)
			}
		}

		if plan := fallbacks[id]; len(plan) > 0 {
			names := make([]string, 0, len(plan))
			for _, c := range plan {
				names = append(names, c.Model)
			}
			fmt.Fprintf(l.out, "  fallback order: %s\n", strings.Join(names, ", "))
		}
	}

	return nil
}
