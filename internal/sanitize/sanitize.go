// Package sanitize normalizes raw input text before it is embedded into a
// model prompt. It removes hidden characters that can smuggle instructions
// past a reviewer, normalizes Unicode so visually identical inputs compare
// equal, and cleans up whitespace artifacts from copy/paste sources.
package sanitize

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// spaceRunRegex matches runs of 3 or more plain spaces. Runs of 1-2 spaces
// are preserved since they may be intentional formatting.
var spaceRunRegex = regexp.MustCompile(` {3,}`)

// Clean sanitizes text for translation. It is a total function: any input
// produces a valid result, and Clean(Clean(x)) == Clean(x).
//
// Steps, in order: trim surrounding whitespace, normalize to NFC, convert
// CRLF and bare CR to LF, collapse runs of 3+ spaces to one, delete
// zero-width characters (U+200B..U+200D, U+FEFF), and delete control
// characters other than newline and tab.
func Clean(text string) string {
	text = strings.TrimSpace(text)
	text = norm.NFC.String(text)
	text = normalizeNewlines(text)
	text = spaceRunRegex.ReplaceAllString(text, " ")
	text = stripHidden(text)

	// Deleting hidden characters can expose new space runs, surrounding
	// whitespace, or previously blocked combining sequences. Re-running
	// the cheap passes keeps Clean idempotent.
	text = norm.NFC.String(text)
	text = spaceRunRegex.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// normalizeNewlines converts CRLF and bare CR line endings to LF.
func normalizeNewlines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// stripHidden deletes zero-width characters and control characters.
// Newline and tab are kept; carriage returns are already gone by the time
// this runs.
func stripHidden(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if isZeroWidth(r) || isBannedControl(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isZeroWidth(r rune) bool {
	return (r >= 0x200B && r <= 0x200D) || r == 0xFEFF
}

func isBannedControl(r rune) bool {
	switch {
	case r == '\n' || r == '\t':
		return false
	case r >= 0x0000 && r <= 0x0008:
		return true
	case r == 0x000B || r == 0x000C:
		return true
	case r >= 0x000E && r <= 0x001F:
		return true
	case r == 0x007F:
		return true
	}
	return false
}
