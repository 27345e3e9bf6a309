package render

import (
	"strings"
	"unicode"
)

// LineKind tags one classified line of flattened report text.
type LineKind int

const (
	LineBlank LineKind = iota
	LineSectionHeader
	LineField
	LineNarrative
)

// Line is the classified form every renderer consumes, so the grammar
// lives in exactly one place.
type Line struct {
	Kind  LineKind
	Text  string // trimmed full line (header or narrative)
	Key   string // field key, trimmed
	Value string // field value, trimmed; colons after the first are kept
}

// Classify applies the flattened-text grammar to one raw line:
// blank; entirely upper-case AND colon-terminated -> section header;
// contains a colon -> field split on the FIRST colon only; anything
// else -> narrative. Upper-case without a trailing colon is NOT a
// header and falls through.
func Classify(raw string) Line {
	text := strings.TrimSpace(raw)
	if text == "" {
		return Line{Kind: LineBlank}
	}
	if isUpper(text) && strings.HasSuffix(text, ":") {
		return Line{Kind: LineSectionHeader, Text: text}
	}
	if i := strings.Index(text, ":"); i >= 0 {
		return Line{
			Kind:  LineField,
			Text:  text,
			Key:   strings.TrimSpace(text[:i]),
			Value: strings.TrimSpace(text[i+1:]),
		}
	}
	return Line{Kind: LineNarrative, Text: text}
}

// ClassifyAll splits content on newlines and classifies every line.
func ClassifyAll(content string) []Line {
	raw := strings.Split(content, "\n")
	lines := make([]Line, 0, len(raw))
	for _, r := range raw {
		lines = append(lines, Classify(r))
	}
	return lines
}

// isUpper reports whether s has at least one cased rune and none of
// them are lower case.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}
