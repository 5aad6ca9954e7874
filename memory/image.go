// Package memory presents an assembled program as the fixed size memory
// blocks of the word machine, for debuggers and memory viewers.
package memory

import (
	"slices"

	"github.com/ezrec/vasm/asm"
	"github.com/ezrec/vasm/internal"
)

const (
	BLOCK_SIZE = 2048 // Words per memory block.
)

// Image is the memory image of a program.
type Image struct {
	Program *asm.Program

	blocks      [][]uint32
	breakpoints map[int]bool // Source lines.
}

// NewImage lays a program out in memory blocks. The last block is padded
// with zero words.
func NewImage(prog *asm.Program) (img *Image) {
	img = &Image{
		Program:     prog,
		breakpoints: make(map[int]bool),
	}

	for chunk := range slices.Chunk(prog.Codes(), BLOCK_SIZE) {
		block := make([]uint32, BLOCK_SIZE)
		for n, code := range chunk {
			block[n] = uint32(code)
		}
		img.blocks = append(img.blocks, block)
	}

	return
}

// Len is the number of blocks in the image.
func (img *Image) Len() int {
	return len(img.blocks)
}

// Block returns a copy of block n.
func (img *Image) Block(n int) (block []uint32, err error) {
	if n < 0 || n >= len(img.blocks) {
		err = ErrBlockMissing(n)
		return
	}

	block = slices.Clone(img.blocks[n])
	return
}

// Blocks returns count blocks from first. Blocks outside of the image are nil.
func (img *Image) Blocks(first, count int) (blocks [][]uint32) {
	if count <= 0 {
		return
	}

	blocks = make([][]uint32, count)
	for n := range count {
		blocks[n], _ = img.Block(first + n)
	}
	return
}

// BlockText returns block n as listing text, one entry per word.
func (img *Image) BlockText(n int) (text []string, err error) {
	if n < 0 || n >= len(img.blocks) {
		err = ErrBlockMissing(n)
		return
	}

	text = make([]string, BLOCK_SIZE)
	listing := img.Program.Listing
	for index := range text {
		addr := n*BLOCK_SIZE + index
		if addr < len(listing) {
			text[index] = listing[addr].String()
		} else {
			text[index] = "0"
		}
	}

	return
}

// Word returns the word at an address.
func (img *Image) Word(addr int) (word uint32, ok bool) {
	if addr < 0 || addr >= len(img.blocks)*BLOCK_SIZE {
		return
	}
	return img.blocks[addr/BLOCK_SIZE][addr%BLOCK_SIZE], true
}

// Line returns the source line of the instruction at an address, such as
// the address a paused machine stopped at.
func (img *Image) Line(addr int) (lineno int, ok bool) {
	dbg := img.Program.Debug(addr)
	if dbg.Opcode == nil {
		return
	}
	return dbg.LineNo, true
}

// Address returns the address of the first instruction of a source line.
func (img *Image) Address(lineno int) (addr int, ok bool) {
	for _, op := range img.Program.Opcodes {
		if op.LineNo == lineno && len(op.Codes) > 0 {
			return op.Ip, true
		}
	}
	return
}

// SetBreakpoint sets a breakpoint on a source line holding an instruction.
func (img *Image) SetBreakpoint(lineno int) (err error) {
	if _, ok := img.Address(lineno); !ok {
		err = ErrLine(lineno)
		return
	}

	img.breakpoints[lineno] = true
	return
}

// ClearBreakpoint removes the breakpoint of a source line, if any.
func (img *Image) ClearBreakpoint(lineno int) {
	delete(img.breakpoints, lineno)
}

// Breakpoint returns true if a breakpoint is set on a source line.
func (img *Image) Breakpoint(lineno int) bool {
	return img.breakpoints[lineno]
}

// Breakpoints returns the source lines with a breakpoint, sorted.
func (img *Image) Breakpoints() (lines []int) {
	for lineno := range internal.IterSorted(img.breakpoints) {
		lines = append(lines, lineno)
	}
	return
}

// BreakpointAddresses returns the addresses of the breakpoints, sorted.
func (img *Image) BreakpointAddresses() (addrs []int) {
	for _, lineno := range img.Breakpoints() {
		if addr, ok := img.Address(lineno); ok {
			addrs = append(addrs, addr)
		}
	}
	slices.Sort(addrs)
	return
}
