package isa

import (
	"errors"

	"github.com/ezrec/vasm/translate"
)

var f = translate.From

var (
	ErrTableEmpty = errors.New(f("instruction set has no ops"))
)

type ErrOperandKind string

func (err ErrOperandKind) Error() string {
	return f("'%v' is not an operand kind", string(err))
}

type ErrMnemonicDuplicate string

func (err ErrMnemonicDuplicate) Error() string {
	return f("mnemonic %v duplicated", string(err))
}

type ErrMnemonicInvalid string

func (err ErrMnemonicInvalid) Error() string {
	return f("'%v' is not a valid mnemonic", string(err))
}

type ErrAnchorRange string

func (err ErrAnchorRange) Error() string {
	return f("anchor of %v out of range", string(err))
}

type ErrCodeRange int

func (err ErrCodeRange) Error() string {
	return f("code %v out of range", int(err))
}
