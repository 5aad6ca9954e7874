package asm

// Ref is a reference from a Word to a symbol.
type Ref struct {
	Namespace Namespace
	Name      string

	// Relative references resolve to the distance from the word at index
	// Anchor of the instruction to the symbol, instead of its location.
	Relative bool
	Anchor   int
}

// Word is a deferred machine word.
//
// A literal Word holds its final Value. A Word with a Ref resolves to the
// location of the referenced symbol plus Value, once every location is
// known.
type Word struct {
	Value int
	Ref   *Ref
}

// Literal returns literal words.
func Literal(values ...int) (words []Word) {
	words = make([]Word, len(values))
	for n, value := range values {
		words[n] = Word{Value: value}
	}
	return
}

// Offset returns the word moved by delta.
func (w Word) Offset(delta int) Word {
	w.Value += delta
	return w
}

// RelativeTo returns the word as a reference relative to the instruction
// word at index anchor. Literal words are returned unchanged.
func (w Word) RelativeTo(anchor int) Word {
	if w.Ref == nil {
		return w
	}

	ref := *w.Ref
	ref.Relative = true
	ref.Anchor = anchor
	w.Ref = &ref

	return w
}

// Resolver returns, for each name, a Word referencing it. The symbol need
// not be declared yet.
type Resolver func(names ...string) []Word

// Emission is the result of an Emitter.
type Emission struct {
	Words []Word
	Op    string // Generating operation name.
}

// Emitter turns the operand tokens of an instruction into words.
type Emitter func(operands []string) (Emission, error)

// InstructionSet binds mnemonics to emitters, given resolvers for the
// variable and label namespaces.
type InstructionSet func(vars, labels Resolver) map[string]Emitter

// CodeTable maps machine code values to human readable names.
type CodeTable map[int]string

// resolver makes the Resolver of a namespace.
func resolver(ns Namespace) Resolver {
	return func(names ...string) []Word {
		words := make([]Word, len(names))
		for n, name := range names {
			words[n] = Word{Ref: &Ref{Namespace: ns, Name: name}}
		}
		return words
	}
}
