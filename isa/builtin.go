package isa

import (
	"bytes"
	_ "embed"
	"sync"
)

//go:embed builtin.yaml
var builtinYaml []byte

var builtin = sync.OnceValue(func() *Table {
	table, err := Load(bytes.NewReader(builtinYaml))
	if err != nil {
		panic(err)
	}
	return table
})

// Builtin returns the instruction set of the word machine.
func Builtin() *Table {
	return builtin()
}
