// Package textutil provides cleanup helpers for text pulled out of uploaded documents.
package textutil

import (
	"regexp"
	"strings"
)

var (
	// controlSequenceRe matches LaTeX-style control sequences such as
	// `\csuse{...}` that some PDF engines leave behind in extracted text.
	controlSequenceRe = regexp.MustCompile(`\\[a-zA-Z]+\s?\{[^}]*\}`)

	// cidArtifactRe matches `(cid:NNN)` glyph references emitted by PDF
	// extractors that cannot resolve a character mapping.
	cidArtifactRe = regexp.MustCompile(`\(cid:\d+\)`)

	// whitespaceRunRe matches runs of two or more whitespace characters.
	// Single newlines are deliberately left alone: contact extraction
	// depends on line structure.
	whitespaceRunRe = regexp.MustCompile(`\s{2,}`)
)

// Sanitize normalizes raw extracted document text. It removes extraction
// artifacts, drops non-ASCII characters, collapses whitespace runs into a
// single space, and trims the result. It never fails: malformed input just
// produces a shorter string.
func Sanitize(text string) string {
	if text == "" {
		return ""
	}

	text = controlSequenceRe.ReplaceAllString(text, "")
	text = cidArtifactRe.ReplaceAllString(text, "")
	text = stripNonASCII(text)
	text = whitespaceRunRe.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}

// stripNonASCII drops every byte outside the 7-bit ASCII range.
func stripNonASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 128 {
			b.WriteRune(r)
		}
	}
	return b.String()
}
