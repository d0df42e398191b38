package components

import (
	"regexp"
	"strings"
	"unicode"
)

// escapePattern matches OSC sequences (terminated by BEL or ST) and CSI
// sequences.
var escapePattern = regexp.MustCompile(`\x1b\][^\x07\x1b]*(?:\x07|\x1b\\)|\x1b\[[0-9;?]*[A-Za-z]`)

// SanitizeText strips escape sequences, control characters and bidi
// overrides from words and notes before they are drawn. Newlines and tabs
// survive so notes keep their layout.
func SanitizeText(input string) string {
	if input == "" {
		return input
	}
	return strings.Map(keepPrintable, escapePattern.ReplaceAllString(input, ""))
}

func keepPrintable(r rune) rune {
	switch {
	case r == '\n', r == '\t':
		return r
	case unicode.IsControl(r), unicode.Is(unicode.Bidi_Control, r):
		return -1
	}
	return r
}

// SanitizeOneLine is SanitizeText with whitespace runs folded to a single
// space, for list rows and titles.
func SanitizeOneLine(input string) string {
	return strings.Join(strings.Fields(SanitizeText(input)), " ")
}
