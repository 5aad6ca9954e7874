package asm

import (
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// ParseValue returns the 32-bit machine value of a literal word.
//
// Words are integers in any Go base prefix, negative values are stored as
// their two's complement, and $(...) words are evaluated as compile-time
// expressions.
func ParseValue(word string) (value int, err error) {
	if strings.HasPrefix(word, "$(") && strings.HasSuffix(word, ")") {
		return parenEval(word[2 : len(word)-1])
	}

	v64, err := strconv.ParseInt(word, 0, 33)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value, ok := wrap(v64)
	if !ok {
		err = ErrParseNumber(word)
	}

	return
}

// wrap folds a signed value into the 32-bit machine word.
func wrap(v64 int64) (value int, ok bool) {
	if v64 > 0xffffffff || v64 < -int64(0x80000000) {
		return
	}

	if v64 < 0 {
		v64 += 0x100000000
	}

	return int(v64), true
}

// parenEval does compile-time $(...) evaluations
func parenEval(expr string) (value int, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, nil)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	value, ok = wrap(st_int64)
	if !ok {
		err = ErrParseExpression(expr)
	}

	return
}
