package asm

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubIsa is a minimal instruction set:
//
//	noop        => 1
//	jump LABEL  => 2 LABEL
//	bra LABEL   => 4 (LABEL - next instruction)
//	load VAR    => 3 VAR
//	lit N...    => N...
func stubIsa(vars, labels Resolver) map[string]Emitter {
	op := func(mnemonic string, operands []string) string {
		return strings.Join(append([]string{mnemonic}, operands...), " ")
	}

	return map[string]Emitter{
		"noop": func(operands []string) (em Emission, err error) {
			if len(operands) != 0 {
				err = ErrOperandCount
				return
			}
			em = Emission{Words: Literal(1), Op: op("noop", operands)}
			return
		},
		"jump": func(operands []string) (em Emission, err error) {
			if len(operands) != 1 {
				err = ErrOperandCount
				return
			}
			em = Emission{Words: append(Literal(2), labels(operands...)...), Op: op("jump", operands)}
			return
		},
		"bra": func(operands []string) (em Emission, err error) {
			if len(operands) != 1 {
				err = ErrOperandCount
				return
			}
			em = Emission{Words: append(Literal(4), labels(operands...)[0].RelativeTo(2)), Op: op("bra", operands)}
			return
		},
		"load": func(operands []string) (em Emission, err error) {
			if len(operands) != 1 {
				err = ErrOperandCount
				return
			}
			em = Emission{Words: append(Literal(3), vars(operands...)...), Op: op("load", operands)}
			return
		},
		"lit": func(operands []string) (em Emission, err error) {
			for _, word := range operands {
				var value int
				value, err = ParseValue(word)
				if err != nil {
					return
				}
				em.Words = append(em.Words, Literal(value)...)
			}
			return
		},
	}
}

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := New(stubIsa, nil)
	assert.Equal([]string{"bra", "jump", "lit", "load", "noop"}, asm.Mnemonics())

	text, err := asm.Emit(nil)
	assert.NoError(err)
	assert.Equal("0", text)

	asm = New(stubIsa, nil)
	text, err = asm.Emit([]string{"", "   ", ".text", ""})
	assert.NoError(err)
	assert.Equal("0", text)
}

func TestAssemblerSelfJump(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		".data",
		"var x 5",
		".text",
		"start: noop",
		"jump start",
	}

	asm := New(stubIsa, nil)
	prog, err := asm.Assemble(program)
	if !assert.NoError(err) {
		return
	}

	start, ok := asm.Labels.Lookup("start")
	assert.True(ok)

	expected := Listing{
		{0, ""},
		{5, "var x"},
		{1, "start -- noop"},
		{2, "jump start"},
		{start.Location, "-> start"},
	}
	assert.Equal(expected, prog.Listing)
	assert.Equal(2, start.Location)
	assert.Equal(2, prog.Labels["start"])
	assert.Equal(1, prog.Variables["x"])
	assert.Equal(2, prog.Data)

	assert.Equal("0\n5 # var x\n1 # start -- noop\n2 # jump start\n2 # -> start",
		prog.Listing.String())
}

func TestAssemblerComments(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		".text",
		"start:",
		"noop",
		"jump start",
		"lit 3 2 1",
	}

	asm := New(stubIsa, CodeTable{1: "NOOP", 2: "JUMP"})
	text, err := asm.Emit(program)
	assert.NoError(err)
	assert.Equal(strings.Join([]string{
		"0",
		"1 # start -- noop -- NOOP",
		"2 # jump start -- JUMP",
		"1 # -> start",
		"3",
		"2 # JUMP",
		"1 # NOOP",
	}, "\n"), text)
}

func TestAssemblerRelative(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		".text",
		"noop",
		"loop: bra loop",
		"bra end",
		"end: noop",
	}

	asm := New(stubIsa, nil)
	prog, err := asm.Assemble(program)
	if !assert.NoError(err) {
		return
	}

	assert.Equal([]int{0, 1, 4, 0xfffffffe, 4, 0, 1}, prog.Codes())
	assert.Equal(2, prog.Labels["loop"])
	assert.Equal(6, prog.Labels["end"])
	assert.Equal(Entry{0xfffffffe, "-> loop"}, prog.Listing[3])
	assert.Equal(Entry{0, "-> end"}, prog.Listing[5])

	word := Word{Value: 1}
	assert.Equal(word, word.RelativeTo(2))

	word = resolver(NAMESPACE_LABEL)("x")[0]
	rel := word.RelativeTo(3)
	assert.False(word.Ref.Relative)
	assert.True(rel.Ref.Relative)
	assert.Equal(3, rel.Ref.Anchor)
}

func TestAssemblerForwardReference(t *testing.T) {
	assert := assert.New(t)

	forward := []string{
		".text",
		"jump end",
		"load later",
		"end:",
		"noop",
		".data",
		"var later 7",
	}
	backward := []string{
		".data",
		"var later 7",
		".text",
		"end:",
		"noop",
		"jump end",
		"load later",
	}

	asm := New(stubIsa, nil)
	prog, err := asm.Assemble(forward)
	if !assert.NoError(err) {
		return
	}

	codes := prog.Codes()
	assert.Equal([]int{0, 7, 2, 6, 3, 1, 1}, codes)
	assert.Equal(prog.Labels["end"], codes[3])
	assert.Equal(prog.Variables["later"], codes[5])

	asm = New(stubIsa, nil)
	prog, err = asm.Assemble(backward)
	if !assert.NoError(err) {
		return
	}

	codes = prog.Codes()
	assert.Equal(prog.Labels["end"], codes[4])
	assert.Equal(prog.Variables["later"], codes[6])
}

func TestAssemblerGlobals(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		".data",
		"var a 0x10",
		"var buf[] 1 2",
		"3",
		"  4   5  ",
		"var empty[]",
		"var none",
		"var neg -1",
		".text",
		"load buf",
		"load neg",
	}

	asm := New(stubIsa, nil)
	prog, err := asm.Assemble(program)
	if !assert.NoError(err) {
		return
	}

	expected := Listing{
		{0, ""},
		{0x10, "var a"},
		{1, "array buf"},
		{2, ""},
		{3, ""},
		{4, ""},
		{5, ""},
		{0, "end of array buf"},
		{0xffffffff, "var neg"},
		{3, "load buf"},
		{2, "-> buf"},
		{3, "load neg"},
		{8, "-> neg"},
	}
	assert.Equal(expected, prog.Listing)

	buf, ok := asm.Variables.Lookup("buf")
	assert.True(ok)
	assert.Equal(KIND_ARRAY, buf.Kind)
	assert.Equal(2, buf.Location)
	assert.Equal(3, buf.LineNo)

	empty, ok := asm.Variables.Lookup("empty")
	assert.True(ok)
	_, placed := empty.Address()
	assert.False(placed)
	none, ok := asm.Variables.Lookup("none")
	assert.True(ok)
	assert.Equal(0, none.Size())
	assert.NotContains(prog.Variables, "none")
	assert.Equal([]string{"a", "buf", "empty", "none", "neg"}, asm.Variables.Names())
}

func TestAssemblerLength(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		".data",
		"var a 1",
		"var b[] 1 2 3",
		".text",
		"top:",
		"noop",
		"jump top",
		".data",
		"var c[] 9",
		".text",
		"load c",
		"lit 1 2 3 4",
		"bottom:",
	}

	asm := New(stubIsa, nil)
	prog, err := asm.Assemble(program)
	if !assert.NoError(err) {
		return
	}

	globals := 0
	for _, gl := range asm.Variables.All() {
		globals += gl.Size()
	}
	code := 0
	for _, el := range asm.Elements {
		code += el.Size()
	}

	assert.Equal(0, prog.Listing[0].Value)
	assert.Equal(1+globals, prog.Data)
	assert.Equal(1+globals+code, len(prog.Listing))
	assert.Equal(1+4+2, globals)
	assert.Equal(1+2+2+4, code)
	assert.Equal(len(prog.Listing), prog.Labels["bottom"])
}

func TestAssemblerSectionToggle(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		".text",
		"noop",
		".data",
		"var a 1",
		".text",
		"load a",
		".data",
		"var b 2",
		".data",
		"var c 3",
		".text",
		".text",
		"load c",
	}

	asm := New(stubIsa, nil)
	prog, err := asm.Assemble(program)
	if !assert.NoError(err) {
		return
	}

	assert.Equal([]int{0, 1, 2, 3, 1, 3, 1, 3, 3}, prog.Codes())
}

func TestAssemblerIdempotent(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		".data",
		"var x 5",
		".text",
		"start: noop",
		"jump start",
	}

	first, err := New(stubIsa, nil).Emit(program)
	assert.NoError(err)
	second, err := New(stubIsa, nil).Emit(program)
	assert.NoError(err)
	assert.Equal(first, second)

	// State is not reset between calls on the same Assembler.
	asm := New(stubIsa, nil)
	_, err = asm.Emit(program)
	assert.NoError(err)
	_, err = asm.Emit(program)
	assert.Error(err)
	assert.ErrorIs(err, ErrVariableDuplicate)
	assert.ErrorIs(err, ErrLabelDuplicate)
}

func TestAssemblerErrSyntax(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		prog string
		line int
		err  error
	}){
		{"noop", 1, ErrSectionMissing},
		{"; hdr\n.data", 1, ErrSectionMissing},
		{"# hdr\n.text", 1, ErrSectionMissing},
		{"\n// hdr\n.text\nnoop", 2, ErrSectionMissing},
		{"\n\nvar x 1\n.data\n", 3, ErrSectionMissing},
		{".data extra", 1, ErrDirectiveSyntax},
		{".data\nvar x 1\nvar x 2", 3, ErrVariableDuplicate},
		{".data\nvar x 1\n2", 3, ErrContinueScalar},
		{".data\nvar x\n2", 3, ErrContinueScalar},
		{".data\n1 2", 2, ErrContinueOrphan},
		{".data\nvar a[] 1\n.text\n.data\n2", 5, ErrContinueOrphan},
		{".data\nvar x 1 2", 2, ErrScalarValues},
		{".data\nvar 9x 1", 2, ErrNameInvalid},
		{".data\nvar", 2, ErrDeclarationSyntax},
		{".data\nvar x nothing", 2, ErrParseNumber("nothing")},
		{".data\nvar x $(1 +)", 2, ErrParseExpression("1 +")},
		{".data\nvar x 0x100000000", 2, ErrParseNumber("0x100000000")},
		{".text\nstart:\nstart:", 3, ErrLabelDuplicate},
		{".text\nstart: bogus", 2, ErrLabelTrailing},
		{".text\n9lives:", 2, ErrNameInvalid},
		{".text\nbogus", 2, ErrMnemonicUnknown},
		{".text\n.bss", 2, ErrMnemonicUnknown},
		{".text\nnoop 1", 2, ErrOperandCount},
		{".text\njump", 2, ErrOperandCount},
		{".text\njump nowhere", 2, ErrUndefined},
		{".text\nload nothing", 2, ErrUndefined},
		{".data\nvar e[]\n.text\nload e", 4, ErrVariableEmpty},
		{".text\nlit 1 x", 2, ErrParseNumber("x")},
	}

	for _, entry := range table {
		asm := New(stubIsa, nil)
		_, err := asm.Emit(strings.Split(entry.prog, "\n"))
		if !assert.Error(err, entry.prog) {
			continue
		}

		var agg *ErrAggregate
		assert.True(errors.As(err, &agg), entry.prog)

		var le *ErrLine
		if assert.True(errors.As(err, &le), entry.prog) {
			assert.Equal(entry.line, le.LineNo, entry.prog)
		}

		assert.ErrorIs(err, entry.err, entry.prog)
	}
}

func TestAssemblerErrAggregate(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		".data",
		"var x 1",
		"var x 2",
		".text",
		"jump nowhere",
		"loop:",
		"bogus",
		"loop:",
		"noop",
	}

	asm := New(stubIsa, nil)
	text, err := asm.Emit(program)
	assert.Equal("", text)

	var agg *ErrAggregate
	if !assert.True(errors.As(err, &agg)) {
		return
	}

	lines := make([]int, len(agg.Errors))
	for n, e := range agg.Errors {
		lines[n] = e.(*ErrLine).LineNo
	}
	assert.Equal([]int{3, 5, 7, 8}, lines)

	msg := err.Error()
	assert.Contains(msg, "variable x duplicated")
	assert.Contains(msg, "label loop duplicated")
	assert.Contains(msg, "label nowhere undefined")
	assert.Contains(msg, fmt.Sprintf("%v", ErrMnemonicUnknown))
}

func TestAssemblerErrResolve(t *testing.T) {
	assert := assert.New(t)

	asm := New(stubIsa, nil)
	asm.Elements = append(asm.Elements, &Element{
		Kind:  ELEMENT_INSTRUCTION,
		Words: resolver(NAMESPACE_LABEL)("nowhere"),
	})

	prog, err := asm.generate()
	assert.Nil(prog)

	var re *ErrResolve
	if assert.True(errors.As(err, &re)) {
		assert.Equal(NAMESPACE_LABEL, re.Namespace)
		assert.Equal("nowhere", re.Name)
	}

	var agg *ErrAggregate
	assert.False(errors.As(err, &agg))
}

func TestAssemblerParse(t *testing.T) {
	assert := assert.New(t)

	source := `
.data
; a program
var count 3 ; trailing comment
.text
# a hash comment
// a slash comment
top:	load   count
	jump top
`

	asm := New(stubIsa, nil)
	asm.Verbose = true
	prog, err := asm.Parse(strings.NewReader(source))
	if !assert.NoError(err) {
		return
	}

	assert.Equal([]int{0, 3, 3, 1, 2, 2}, prog.Codes())

	dbg := prog.Debug(4)
	if assert.NotNil(dbg.Opcode) {
		assert.Equal(9, dbg.LineNo)
		assert.Equal(0, dbg.Index)
		assert.Equal("jump top", dbg.Line)
	}

	dbg = prog.Debug(3)
	if assert.NotNil(dbg.Opcode) {
		assert.Equal(8, dbg.LineNo)
		assert.Equal(1, dbg.Index)
	}

	assert.Nil(prog.Debug(1).Opcode)
	assert.Nil(prog.Debug(99).Opcode)

	var names []string
	for name := range prog.Symbols() {
		names = append(names, name)
	}
	assert.Equal([]string{"count", "top"}, names)
}
