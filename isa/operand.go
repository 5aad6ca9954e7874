package isa

import (
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ezrec/vasm/asm"
)

// Operand is the kind of an instruction operand.
type Operand int

//go:generate go tool stringer -linecomment -type=Operand
const (
	OPERAND_IMM   = Operand(0) // imm
	OPERAND_VAR   = Operand(1) // var
	OPERAND_LABEL = Operand(2) // label
	OPERAND_REL   = Operand(3) // rel
)

var operandMap = map[string]Operand{
	OPERAND_IMM.String():   OPERAND_IMM,
	OPERAND_VAR.String():   OPERAND_VAR,
	OPERAND_LABEL.String(): OPERAND_LABEL,
	OPERAND_REL.String():   OPERAND_REL,
}

func (op *Operand) UnmarshalYAML(value *yaml.Node) (err error) {
	var name string
	err = value.Decode(&name)
	if err != nil {
		return
	}

	kind, ok := operandMap[name]
	if !ok {
		err = ErrOperandKind(name)
		return
	}

	*op = kind
	return
}

func (op Operand) MarshalYAML() (any, error) {
	return op.String(), nil
}

// refRegexp matches `name`, `name+N` and `name-N` references.
var refRegexp = regexp.MustCompile(`^([^+-]+)([+-].+)?$`)

// ParseOperand parses an operand word.
//
// Every kind accepts a literal value. OPERAND_VAR, OPERAND_LABEL and
// OPERAND_REL also accept a name, with an optional offset, resolved through
// the matching resolver. OPERAND_REL names a label; the caller anchors it.
func ParseOperand(kind Operand, word string, vars, labels asm.Resolver) (w asm.Word, err error) {
	value, perr := asm.ParseValue(word)
	if perr == nil {
		w = asm.Word{Value: value}
		return
	}

	if kind == OPERAND_IMM || strings.HasPrefix(word, "$(") {
		err = perr
		return
	}

	m := refRegexp.FindStringSubmatch(word)
	if m == nil || !asm.ValidName(m[1]) {
		err = asm.ErrParseOperand(word)
		return
	}

	resolve := vars
	if kind == OPERAND_LABEL || kind == OPERAND_REL {
		resolve = labels
	}
	w = resolve(m[1])[0]

	if len(m[2]) > 0 {
		delta, derr := strconv.ParseInt(m[2], 0, 32)
		if derr != nil {
			err = asm.ErrParseOperand(word)
			return
		}
		w = w.Offset(int(delta))
	}

	return
}
