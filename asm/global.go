package asm

import (
	"strings"
)

// Kind is the kind of a global variable.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_SCALAR = Kind(0) // var
	KIND_ARRAY  = Kind(1) // array
)

// Keyword that starts a global declaration.
const KEYWORD_VAR = "var"

// arraySuffix marks an array declaration, as in `var buf[] 1 2 3`.
const arraySuffix = "[]"

// Global is a variable of the data segment.
type Global struct {
	Name     string
	Kind     Kind
	Values   []int
	LineNo   int // Line of the declaration.
	Location int // Address of the first value, once laid out.

	placed bool
}

var _ Symbol = (*Global)(nil)

func (gl *Global) Address() (location int, ok bool) {
	return gl.Location, gl.placed
}

// Size is the number of words the global occupies in the data segment.
func (gl *Global) Size() int {
	switch {
	case len(gl.Values) == 0:
		return 0
	case gl.Kind == KIND_ARRAY:
		return len(gl.Values) + 1
	default:
		return len(gl.Values)
	}
}

// ParseGlobal parses the words of a `var NAME VALUE...` declaration.
func ParseGlobal(words []string) (gl *Global, err error) {
	if len(words) < 2 || words[0] != KEYWORD_VAR {
		err = ErrDeclarationSyntax
		return
	}

	gl = &Global{Name: words[1], Kind: KIND_SCALAR}
	if name, ok := strings.CutSuffix(gl.Name, arraySuffix); ok {
		gl.Name = name
		gl.Kind = KIND_ARRAY
	}

	if !ValidName(gl.Name) {
		err = ErrNameInvalid
		return
	}

	if gl.Kind == KIND_SCALAR && len(words) > 3 {
		err = ErrScalarValues
		return
	}

	gl.Values, err = parseValues(words[2:])

	return
}

// Continue appends the values of a continuation line to an array.
func (gl *Global) Continue(words []string) (err error) {
	if gl.Kind != KIND_ARRAY {
		err = ErrContinueScalar
		return
	}

	values, err := parseValues(words)
	if err != nil {
		return
	}

	gl.Values = append(gl.Values, values...)

	return
}

func parseValues(words []string) (values []int, err error) {
	values = make([]int, 0, len(words))
	for _, word := range words {
		var value int
		value, err = ParseValue(word)
		if err != nil {
			return
		}
		values = append(values, value)
	}

	return
}
