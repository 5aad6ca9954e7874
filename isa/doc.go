// Package isa provides instruction sets for the asm package.
//
// An instruction set is a Table of mnemonic definitions, usually read from
// YAML with Load:
//
//	name: tiny
//	ops:
//	  - {mnemonic: noop, code: 1}
//	  - {mnemonic: jump, code: 2, operands: [label]}
//	  - {mnemonic: load, code: 3, operands: [var], comment: load absolute}
//
// Builtin returns the instruction set of the word machine.
package isa
