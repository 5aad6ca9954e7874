package asm

// ElementKind selects the variant of an Element.
type ElementKind int

//go:generate go tool stringer -linecomment -type=ElementKind
const (
	ELEMENT_LABEL       = ElementKind(0) // label
	ELEMENT_INSTRUCTION = ElementKind(1) // instruction
)

// Element is a label or an instruction of the code segment.
type Element struct {
	Kind     ElementKind
	Name     string // Label name.
	Mnemonic string // Instruction mnemonic.
	Op       string // Generating operation, used in listing comments.
	Words    []Word // Instruction words, resolved at layout.
	LineNo   int
	Line     string
	Location int // Address, assigned at layout.

	placed bool
}

var _ Symbol = (*Element)(nil)

func (el *Element) Address() (location int, ok bool) {
	return el.Location, el.placed
}

// Size is the number of words the element adds to the code segment.
func (el *Element) Size() int {
	switch el.Kind {
	case ELEMENT_INSTRUCTION:
		return len(el.Words)
	case ELEMENT_LABEL:
		return 0
	default:
		panic(el.Kind)
	}
}

// Refs returns the symbol references of the element.
func (el *Element) Refs() (refs []Ref) {
	for _, word := range el.Words {
		if word.Ref != nil {
			refs = append(refs, *word.Ref)
		}
	}
	return
}
