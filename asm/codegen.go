package asm

import (
	"strconv"
	"strings"
)

// Header word, at address 0 of every listing.
const HEADER = 0

// Separator between the notes of a listing comment.
const noteSeparator = " -- "

// Entry is one machine word of a listing.
type Entry struct {
	Value   int
	Comment string
}

func (e Entry) String() string {
	if len(e.Comment) == 0 {
		return strconv.Itoa(e.Value)
	}
	return strconv.Itoa(e.Value) + " # " + e.Comment
}

// Listing is an annotated sequence of machine words.
type Listing []Entry

// String renders the listing, one word per line.
func (l Listing) String() string {
	lines := make([]string, len(l))
	for n, entry := range l {
		lines[n] = entry.String()
	}
	return strings.Join(lines, "\n")
}

// Codes returns the machine words of the listing.
func (l Listing) Codes() (codes []int) {
	codes = make([]int, len(l))
	for n, entry := range l {
		codes[n] = entry.Value
	}
	return
}

// generate lays out the data and code segments, and resolves every word.
func (asm *Assembler) generate() (prog *Program, err error) {
	listing := Listing{{Value: HEADER}}

	// Data segment.
	for name, gl := range asm.Variables.All() {
		if gl.Size() == 0 {
			continue
		}

		gl.Location = len(listing)
		gl.placed = true

		for n, value := range gl.Values {
			entry := Entry{Value: value}
			if n == 0 {
				entry.Comment = gl.Kind.String() + " " + name
			}
			listing = append(listing, entry)
		}

		if gl.Kind == KIND_ARRAY {
			listing = append(listing, Entry{Value: 0, Comment: "end of array " + name})
		}
	}

	data := len(listing)

	// Code segment addresses.
	ip := data
	for _, el := range asm.Elements {
		el.Location = ip
		el.placed = true
		ip += el.Size()
	}

	prog = &Program{
		Data:      data,
		Variables: make(map[string]int, asm.Variables.Len()),
		Labels:    make(map[string]int, asm.Labels.Len()),
	}

	// Resolve words, now that every location is final.
	var labels []string
	for _, el := range asm.Elements {
		switch el.Kind {
		case ELEMENT_LABEL:
			labels = append(labels, el.Name)
		case ELEMENT_INSTRUCTION:
			op := Opcode{LineNo: el.LineNo, Ip: el.Location, Line: el.Line}
			for n, word := range el.Words {
				var value int
				value, err = asm.resolve(el, word)
				if err != nil {
					prog = nil
					return
				}

				var notes []string
				if n == 0 {
					notes = append(labels, el.Op)
					labels = nil
				}
				if word.Ref != nil {
					notes = append(notes, "-> "+word.Ref.Name)
				} else if name, ok := asm.Comments[value]; ok {
					notes = append(notes, name)
				}

				listing = append(listing, Entry{Value: value, Comment: joinNotes(notes)})
				op.Codes = append(op.Codes, value)
			}
			prog.Opcodes = append(prog.Opcodes, op)
		}
	}

	for name, gl := range asm.Variables.All() {
		if location, ok := gl.Address(); ok {
			prog.Variables[name] = location
		}
	}

	for name, label := range asm.Labels.All() {
		prog.Labels[name] = label.Location
	}

	prog.Listing = listing

	return
}

// resolve returns the final value of a word of an element.
func (asm *Assembler) resolve(el *Element, word Word) (value int, err error) {
	if word.Ref == nil {
		value = word.Value
		return
	}

	var location int
	switch word.Ref.Namespace {
	case NAMESPACE_VARIABLE:
		location, err = asm.Variables.Resolve(word.Ref.Name)
	case NAMESPACE_LABEL:
		location, err = asm.Labels.Resolve(word.Ref.Name)
	default:
		err = &ErrResolve{Namespace: word.Ref.Namespace, Name: word.Ref.Name}
	}
	if err != nil {
		return
	}

	value = location + word.Value
	if word.Ref.Relative {
		value = int(uint32(value - (el.Location + word.Ref.Anchor)))
	}

	return
}

func joinNotes(notes []string) string {
	var kept []string
	for _, note := range notes {
		if len(note) > 0 {
			kept = append(kept, note)
		}
	}
	return strings.Join(kept, noteSeparator)
}
