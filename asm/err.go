package asm

import (
	"errors"
	"strings"

	"github.com/ezrec/vasm/translate"
)

var f = translate.From

var (
	// Section errors
	ErrSectionMissing  = errors.New(f("expected .data or .text"))
	ErrDirectiveSyntax = errors.New(f("directive takes no arguments"))

	// Declaration errors
	ErrVariableDuplicate = errors.New(f("variable duplicated"))
	ErrLabelDuplicate    = errors.New(f("label duplicated"))
	ErrNameInvalid       = errors.New(f("name invalid"))
	ErrScalarValues      = errors.New(f("scalar takes a single value"))
	ErrContinueScalar    = errors.New(f("continuation of a scalar"))
	ErrContinueOrphan    = errors.New(f("continuation without a variable"))
	ErrDeclarationSyntax = errors.New(f("var syntax"))

	// Statement errors
	ErrMnemonicUnknown = errors.New(f("mnemonic unknown"))
	ErrLabelTrailing   = errors.New(f("label followed by text"))
	ErrOperandCount    = errors.New(f("operand count"))
	ErrUndefined       = errors.New(f("undefined"))
	ErrVariableEmpty   = errors.New(f("variable has no value"))
)

// ErrLine is a problem with a single line of source.
type ErrLine struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrLine) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrLine) Unwrap() error {
	return err.Err
}

// ErrAggregate holds every ErrLine found while scanning a program.
type ErrAggregate struct {
	Errors []error
}

func (err *ErrAggregate) Error() string {
	msgs := make([]string, 0, len(err.Errors)+1)
	msgs = append(msgs, f("%v errors", len(err.Errors)))
	for _, e := range err.Errors {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "\n")
}

func (err *ErrAggregate) Unwrap() []error {
	return err.Errors
}

// ErrDuplicate reports a name declared twice in the same namespace.
type ErrDuplicate struct {
	Namespace Namespace
	Name      string
}

func (err *ErrDuplicate) Error() string {
	return f("%v %v duplicated", err.Namespace, err.Name)
}

func (err *ErrDuplicate) Is(target error) bool {
	switch target {
	case ErrVariableDuplicate:
		return err.Namespace == NAMESPACE_VARIABLE
	case ErrLabelDuplicate:
		return err.Namespace == NAMESPACE_LABEL
	}
	return false
}

// ErrMissing reports a reference to a name that was never declared.
type ErrMissing struct {
	Namespace Namespace
	Name      string
}

func (err *ErrMissing) Error() string {
	return f("%v %v undefined", err.Namespace, err.Name)
}

func (err *ErrMissing) Unwrap() error {
	return ErrUndefined
}

// ErrResolve is raised while laying out a program whose symbol tables do
// not hold a referenced name. It is never collected into an ErrAggregate.
type ErrResolve struct {
	Namespace Namespace
	Name      string
}

func (err *ErrResolve) Error() string {
	return f("unable to resolve %v %v", err.Namespace, err.Name)
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrParseOperand string

func (err ErrParseOperand) Error() string {
	return f("'%v' is not a valid operand", string(err))
}
