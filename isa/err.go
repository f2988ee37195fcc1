package isa

import (
	"errors"

	"github.com/ezrec/vc2asm/translate"
)

var f = translate.From

var (
	ErrDecodeTruncated = errors.New(f("truncated instruction"))
)

// ErrDecodeOpcode is an opcode byte outside the instruction set.
type ErrDecodeOpcode byte

func (err ErrDecodeOpcode) Error() string {
	return f("bad opcode 0x%02x", byte(err))
}

// ErrDecodeMode is an operand descriptor byte outside the addressing modes.
type ErrDecodeMode byte

func (err ErrDecodeMode) Error() string {
	return f("bad operand descriptor 0x%02x", byte(err))
}

// ErrDecodeRegister is a register id outside the register file.
type ErrDecodeRegister byte

func (err ErrDecodeRegister) Error() string {
	return f("bad register 0x%02x", byte(err))
}
