package asm

// Section is the state of the section state machine.
type Section int

//go:generate go tool stringer -linecomment -type=Section
const (
	SECTION_NONE = Section(0) // none
	SECTION_DATA = Section(1) // .data
	SECTION_TEXT = Section(2) // .text
)

// sectionMap maps directive tokens to the section they open.
var sectionMap = map[string]Section{
	SECTION_DATA.String(): SECTION_DATA,
	SECTION_TEXT.String(): SECTION_TEXT,
}

// Directive returns the section a directive token switches to.
func Directive(word string) (section Section, ok bool) {
	section, ok = sectionMap[word]
	return
}
