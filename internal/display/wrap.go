package display

import (
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

const DefaultWidth = 80

// Wrap word-wraps text to DefaultWidth, preserving ANSI escape sequences.
func Wrap(text string) string {
	return wordwrap.String(text, DefaultWidth)
}

// Indent shifts lines right by n spaces. Blank lines stay empty.
func Indent(text string, n int) string {
	return indent.String(text, uint(n))
}
