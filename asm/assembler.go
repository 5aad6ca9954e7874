// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"io"
	"log"
	"slices"
)

// Assembler is a two pass assembler. One Assembler assembles one program:
// symbol tables and elements are kept across calls, so a second call on
// the same Assembler sees every name as already declared.
type Assembler struct {
	Verbose  bool      // If set, verbosely logs the assembler actions.
	Comments CodeTable // Names of machine codes, for listing comments.

	Variables SymbolTable[*Global]  // Global variables.
	Labels    SymbolTable[*Element] // Code labels.
	Elements  []*Element            // Labels and instructions, in source order.

	emitters map[string]Emitter
}

// New creates an assembler for an instruction set.
func New(isa InstructionSet, comments CodeTable) (asm *Assembler) {
	asm = &Assembler{
		Comments:  comments,
		Variables: SymbolTable[*Global]{Namespace: NAMESPACE_VARIABLE},
		Labels:    SymbolTable[*Element]{Namespace: NAMESPACE_LABEL},
	}

	if isa != nil {
		asm.emitters = isa(resolver(NAMESPACE_VARIABLE), resolver(NAMESPACE_LABEL))
	}

	return
}

// Mnemonics returns the known mnemonics, sorted.
func (asm *Assembler) Mnemonics() []string {
	names := make([]string, 0, len(asm.emitters))
	for name := range asm.emitters {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// scan is the state of the line scan.
type scan struct {
	section  Section
	global   *Global // Last global of the current data run.
	reported bool    // Set once a missing section has been reported.
}

// missing reports the first line found outside of any section.
func (state *scan) missing() (err error) {
	if !state.reported {
		state.reported = true
		err = ErrSectionMissing
	}
	return
}

// Emit assembles source lines into the text of a listing.
func (asm *Assembler) Emit(lines []string) (text string, err error) {
	prog, err := asm.Assemble(lines)
	if err != nil {
		return
	}

	text = prog.Listing.String()
	return
}

// Parse assembles an input stream.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	var lines []string

	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	return asm.Assemble(lines)
}

// Assemble assembles source lines into a Program.
//
// All line errors are collected, and returned as an *ErrAggregate before
// any layout is done. References to names never declared, or to variables
// without a value, are collected there too, as ErrUndefined and
// ErrVariableEmpty line errors, so layout only fails with an *ErrResolve
// if the symbol tables were altered outside of Assemble.
func (asm *Assembler) Assemble(lines []string) (prog *Program, err error) {
	var errs []error
	var state scan

	for n, text := range lines {
		line := ParseLine(n+1, text)

		if asm.Verbose {
			log.Printf("%v: %v\n", line.No, line.Text)
		}

		lerr := asm.scanLine(&state, &line)
		if lerr != nil {
			errs = append(errs, &ErrLine{LineNo: line.No, Line: line.Text, Err: lerr})
		}
	}

	errs = append(errs, asm.undefined()...)

	if len(errs) > 0 {
		slices.SortStableFunc(errs, func(a, b error) int {
			return a.(*ErrLine).LineNo - b.(*ErrLine).LineNo
		})
		err = &ErrAggregate{Errors: errs}
		return
	}

	return asm.generate()
}

// scanLine runs one line through the section state machine.
func (asm *Assembler) scanLine(state *scan, line *Line) (err error) {
	if line.Comment && asm.Verbose {
		log.Printf("%v: comment\n", line.No)
	}

	if line.Comment && state.section == SECTION_NONE {
		err = state.missing()
		return
	}

	if line.Blank() {
		return
	}

	words := line.Words

	section, is_directive := Directive(words[0])
	if is_directive {
		if len(words) > 1 {
			err = ErrDirectiveSyntax
			return
		}
		state.section = section
		state.global = nil
		return
	}

	switch state.section {
	case SECTION_NONE:
		err = state.missing()
	case SECTION_DATA:
		err = asm.scanData(state, line)
	case SECTION_TEXT:
		err = asm.scanText(line)
	}

	return
}

// scanData handles a line of a data section.
func (asm *Assembler) scanData(state *scan, line *Line) (err error) {
	words := line.Words

	if words[0] != KEYWORD_VAR {
		if state.global == nil {
			err = ErrContinueOrphan
			return
		}
		err = state.global.Continue(words)
		return
	}

	gl, err := ParseGlobal(words)
	if err != nil {
		return
	}
	gl.LineNo = line.No

	err = asm.Variables.Declare(gl.Name, gl)
	if err != nil {
		return
	}

	state.global = gl

	return
}

// scanText handles a line of a text section.
func (asm *Assembler) scanText(line *Line) (err error) {
	words := line.Words

	if name, is_label := labelOf(words[0]); is_label {
		if len(words) > 1 {
			if _, ok := asm.emitters[words[1]]; !ok {
				err = ErrLabelTrailing
				return
			}
		}

		err = asm.declareLabel(name, line)
		if err != nil {
			return
		}

		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	emitter, ok := asm.emitters[words[0]]
	if !ok {
		err = ErrMnemonicUnknown
		return
	}

	emission, err := emitter(words[1:])
	if err != nil {
		return
	}

	asm.Elements = append(asm.Elements, &Element{
		Kind:     ELEMENT_INSTRUCTION,
		Mnemonic: words[0],
		Op:       emission.Op,
		Words:    emission.Words,
		LineNo:   line.No,
		Line:     line.Text,
	})

	return
}

// labelOf returns the label name of a `name:` word.
func labelOf(word string) (name string, ok bool) {
	if len(word) < 2 || word[len(word)-1] != ':' {
		return
	}
	return word[:len(word)-1], true
}

// declareLabel adds a label element.
func (asm *Assembler) declareLabel(name string, line *Line) (err error) {
	if !ValidName(name) {
		err = ErrNameInvalid
		return
	}

	label := &Element{
		Kind:   ELEMENT_LABEL,
		Name:   name,
		LineNo: line.No,
		Line:   line.Text,
	}

	err = asm.Labels.Declare(name, label)
	if err != nil {
		return
	}

	asm.Elements = append(asm.Elements, label)

	return
}

// undefined reports references to names never declared, or to variables
// without a value to place.
func (asm *Assembler) undefined() (errs []error) {
	for _, el := range asm.Elements {
		for _, ref := range el.Refs() {
			var err error
			switch ref.Namespace {
			case NAMESPACE_VARIABLE:
				gl, ok := asm.Variables.Lookup(ref.Name)
				switch {
				case !ok:
					err = &ErrMissing{Namespace: ref.Namespace, Name: ref.Name}
				case gl.Size() == 0:
					err = ErrVariableEmpty
				}
			case NAMESPACE_LABEL:
				if _, ok := asm.Labels.Lookup(ref.Name); !ok {
					err = &ErrMissing{Namespace: ref.Namespace, Name: ref.Name}
				}
			}
			if err != nil {
				errs = append(errs, &ErrLine{LineNo: el.LineNo, Line: el.Line, Err: err})
			}
		}
	}

	return
}
