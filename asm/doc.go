// Package asm implements a two-pass assembler for a small word machine.
//
// Source text is split into .data and .text sections. The data sections
// declare global variables (`var x 5`) and arrays (`var buf[] 1 2 3`), the
// text sections hold labels and instructions. Mnemonics are not built in:
// an InstructionSet supplied to New binds each mnemonic to an Emitter that
// turns operand tokens into machine Words.
//
// Words may refer to variables and labels declared later in the source.
// Those references are recorded at parse time and resolved only once the
// whole program is laid out: address 0 holds a header word, the data
// segment follows, then the code segment.
//
// Every line problem found during the scan is collected, and reported
// together as an ErrAggregate; no listing is produced in that case.
package asm
