package memory

import (
	"errors"

	"github.com/ezrec/vasm/translate"
)

var f = translate.From

var (
	ErrBlockNotFound = errors.New(f("block not found"))
	ErrNoInstruction = errors.New(f("no instruction"))
)

// ErrBlockMissing reports a block outside of the image.
type ErrBlockMissing int

func (err ErrBlockMissing) Error() string {
	return f("block %v not found", int(err))
}

func (err ErrBlockMissing) Is(target error) bool {
	return target == ErrBlockNotFound
}

// ErrLine reports a source line without an instruction.
type ErrLine int

func (err ErrLine) Error() string {
	return f("line %v has no instruction", int(err))
}

func (err ErrLine) Unwrap() error {
	return ErrNoInstruction
}
