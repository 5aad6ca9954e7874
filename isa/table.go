package isa

import (
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ezrec/vasm/asm"
)

// Def defines one mnemonic: its machine code, followed by one word per
// operand, followed by the Suffix codes.
//
// A rel operand is the distance from the word at index Anchor of the
// instruction to its label. Without an Anchor, it is the distance from the
// word following the instruction.
type Def struct {
	Mnemonic string    `yaml:"mnemonic"`
	Code     int       `yaml:"code"`
	Operands []Operand `yaml:"operands,omitempty"`
	Suffix   []int     `yaml:"suffix,omitempty"`
	Anchor   *int      `yaml:"anchor,omitempty"`
	Comment  string    `yaml:"comment,omitempty"`
}

// Table is an instruction set definition.
type Table struct {
	Name string `yaml:"name"`
	Ops  []Def  `yaml:"ops"`
}

// Load reads a YAML instruction set definition.
func Load(input io.Reader) (table *Table, err error) {
	table = &Table{}
	err = yaml.NewDecoder(input).Decode(table)
	if err != nil {
		table = nil
		return
	}

	err = table.Validate()
	if err != nil {
		table = nil
	}

	return
}

// Validate checks the table for empty, duplicated or invalid mnemonics,
// and for codes outside of a machine word.
func (table *Table) Validate() (err error) {
	if len(table.Ops) == 0 {
		err = ErrTableEmpty
		return
	}

	seen := make(map[string]bool, len(table.Ops))
	for _, def := range table.Ops {
		if !asm.ValidName(def.Mnemonic) {
			err = ErrMnemonicInvalid(def.Mnemonic)
			return
		}
		if seen[def.Mnemonic] {
			err = ErrMnemonicDuplicate(def.Mnemonic)
			return
		}
		seen[def.Mnemonic] = true

		if anchor := def.anchor(); anchor < 0 || anchor > def.Size() {
			err = ErrAnchorRange(def.Mnemonic)
			return
		}

		for _, code := range append([]int{def.Code}, def.Suffix...) {
			if code < 0 || int64(code) > 0xffffffff {
				err = ErrCodeRange(code)
				return
			}
		}
	}

	return
}

// Comments returns the code names of the table. When several ops share a
// code, the first one names it.
func (table *Table) Comments() asm.CodeTable {
	comments := make(asm.CodeTable, len(table.Ops))
	for _, def := range table.Ops {
		if _, ok := comments[def.Code]; ok {
			continue
		}
		comment := def.Comment
		if len(comment) == 0 {
			comment = strings.ToUpper(def.Mnemonic)
		}
		comments[def.Code] = comment
	}
	return comments
}

// InstructionSet binds the table mnemonics.
func (table *Table) InstructionSet() asm.InstructionSet {
	return func(vars, labels asm.Resolver) map[string]asm.Emitter {
		emitters := make(map[string]asm.Emitter, len(table.Ops))
		for _, def := range table.Ops {
			emitters[def.Mnemonic] = def.emitter(vars, labels)
		}
		return emitters
	}
}

// Assembler creates an assembler for the table.
func (table *Table) Assembler() *asm.Assembler {
	return asm.New(table.InstructionSet(), table.Comments())
}

// Size is the number of words an instruction of def emits.
func (def Def) Size() int {
	return 1 + len(def.Operands) + len(def.Suffix)
}

// anchor is the index of the word rel operands are measured from.
func (def Def) anchor() int {
	if def.Anchor != nil {
		return *def.Anchor
	}
	return def.Size()
}

func (def Def) emitter(vars, labels asm.Resolver) asm.Emitter {
	return func(operands []string) (em asm.Emission, err error) {
		if len(operands) != len(def.Operands) {
			err = asm.ErrOperandCount
			return
		}

		words := make([]asm.Word, 0, def.Size())
		words = append(words, asm.Word{Value: def.Code})
		for n, kind := range def.Operands {
			var word asm.Word
			word, err = ParseOperand(kind, operands[n], vars, labels)
			if err != nil {
				return
			}
			if kind == OPERAND_REL {
				word = word.RelativeTo(def.anchor())
			}
			words = append(words, word)
		}
		words = append(words, asm.Literal(def.Suffix...)...)

		em = asm.Emission{
			Words: words,
			Op:    strings.Join(append([]string{def.Mnemonic}, operands...), " "),
		}
		return
	}
}
