package asm

import (
	"iter"

	"github.com/ezrec/vasm/internal"
)

// Opcode is the machine code of one source instruction.
type Opcode struct {
	LineNo int    // Source line.
	Ip     int    // Address of the first code.
	Line   string // Source text.
	Codes  []int
}

// Program is an assembled program.
type Program struct {
	Listing   Listing
	Data      int // Words before the code segment, header included.
	Opcodes   []Opcode
	Variables map[string]int // Laid out variables, by name.
	Labels    map[string]int // Labels, by name.
}

type Debug struct {
	*Opcode
	Index int
}

// Debug finds the instruction holding the code at ip.
func (prog *Program) Debug(ip int) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if ip >= op.Ip && ip < op.Ip+len(op.Codes) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  ip - op.Ip,
			}
			break
		}
	}

	return
}

// Codes returns the machine words of the program.
func (prog *Program) Codes() []int {
	return prog.Listing.Codes()
}

// Symbols iterates over the variables, then the labels, each sorted by name.
func (prog *Program) Symbols() iter.Seq2[string, int] {
	return internal.IterSeq2Concat(
		internal.IterSorted(prog.Variables),
		internal.IterSorted(prog.Labels),
	)
}
