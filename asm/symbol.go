package asm

import (
	"iter"
	"slices"
)

// Namespace selects one of the two symbol tables.
type Namespace int

//go:generate go tool stringer -linecomment -type=Namespace
const (
	NAMESPACE_VARIABLE = Namespace(0) // variable
	NAMESPACE_LABEL    = Namespace(1) // label
)

// Symbol is an entry of a SymbolTable.
type Symbol interface {
	// Address returns the location of the symbol, once laid out.
	Address() (location int, ok bool)
}

// SymbolTable maps unique names to symbols, in declaration order.
type SymbolTable[T Symbol] struct {
	Namespace Namespace

	names   []string
	entries map[string]T
}

// Declare adds a new symbol. Redeclaring a name is an error.
func (st *SymbolTable[T]) Declare(name string, entry T) (err error) {
	if _, ok := st.entries[name]; ok {
		err = &ErrDuplicate{Namespace: st.Namespace, Name: name}
		return
	}

	if st.entries == nil {
		st.entries = make(map[string]T, 16)
	}
	st.entries[name] = entry
	st.names = append(st.names, name)

	return
}

// Lookup finds a symbol by name.
func (st *SymbolTable[T]) Lookup(name string) (entry T, ok bool) {
	entry, ok = st.entries[name]
	return
}

// Resolve returns the laid out location of a symbol.
func (st *SymbolTable[T]) Resolve(name string) (location int, err error) {
	entry, ok := st.entries[name]
	if ok {
		location, ok = entry.Address()
	}
	if !ok {
		err = &ErrResolve{Namespace: st.Namespace, Name: name}
	}
	return
}

// Len is the number of declared symbols.
func (st *SymbolTable[T]) Len() int {
	return len(st.names)
}

// Names returns the declared names, in declaration order.
func (st *SymbolTable[T]) Names() []string {
	return slices.Clone(st.names)
}

// All iterates over the symbols in declaration order.
func (st *SymbolTable[T]) All() iter.Seq2[string, T] {
	return func(yield func(name string, entry T) bool) {
		for _, name := range st.names {
			if !yield(name, st.entries[name]) {
				return
			}
		}
	}
}
