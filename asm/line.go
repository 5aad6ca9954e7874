package asm

import (
	"strings"
	"unicode"
)

// commentPrefix lists the prefixes of a whole line comment.
var commentPrefix = []string{";", "#", "//"}

// Line is a single normalized line of source.
type Line struct {
	No      int      // Line number, starting at 1.
	Text    string   // Trimmed source text.
	Words   []string // Tokens, with any trailing ';' comment removed.
	Comment bool     // Set if the whole line is a comment.
}

// Blank returns true if the line carries nothing to assemble.
func (line *Line) Blank() bool {
	return line.Comment || len(line.Words) == 0
}

// ParseLine trims, classifies and tokenizes a line of source.
func ParseLine(lineno int, text string) (line Line) {
	line.No = lineno
	line.Text = strings.Join(strings.Fields(text), " ")

	for _, prefix := range commentPrefix {
		if strings.HasPrefix(line.Text, prefix) {
			line.Comment = true
			return
		}
	}

	code, _, _ := strings.Cut(line.Text, ";")
	line.Words = Tokenize(code)

	return
}

// Tokenize splits text on whitespace. A $(...) expression is kept whole,
// whatever spacing it contains.
func Tokenize(text string) (words []string) {
	var word strings.Builder
	depth := 0

	flush := func() {
		if word.Len() > 0 {
			words = append(words, word.String())
			word.Reset()
		}
	}

	for n, ch := range text {
		switch {
		case depth == 0 && unicode.IsSpace(ch):
			flush()
			continue
		case ch == '(' && (depth > 0 || strings.HasSuffix(text[:n], "$")):
			depth++
		case ch == ')' && depth > 0:
			depth--
		}
		word.WriteRune(ch)
	}
	flush()

	return
}

// ValidName returns true if word can name a variable or a label.
func ValidName(word string) bool {
	if len(word) == 0 {
		return false
	}

	for n, ch := range word {
		switch {
		case ch == '_', unicode.IsLetter(ch):
		case n > 0 && unicode.IsDigit(ch):
		default:
			return false
		}
	}

	return true
}
