package asm

import (
	"errors"

	"github.com/ezrec/vc2asm/isa"
	"github.com/ezrec/vc2asm/translate"
)

var f = translate.From

var (
	// Diagnostic categories, one per pipeline stage.
	ErrLex     = errors.New(f("lex error"))
	ErrParse   = errors.New(f("parse error"))
	ErrResolve = errors.New(f("resolve error"))
	ErrEncode  = errors.New(f("encode error"))

	// Constant definition errors
	ErrConstantName  = errors.New(f("constant name invalid"))
	ErrConstantType  = errors.New(f("constant is not an integer"))
	ErrConstantRange = errors.New(f("constant does not fit 32 bits"))
)

// ErrCharacter is an unexpected character in the source.
type ErrCharacter rune

func (err ErrCharacter) Error() string {
	return f("unexpected character %q", rune(err))
}

func (err ErrCharacter) Is(target error) bool {
	return target == ErrLex
}

// ErrLiteral is a malformed numeric literal, such as '0x' without digits.
type ErrLiteral string

func (err ErrLiteral) Error() string {
	return f("malformed literal '%v'", string(err))
}

func (err ErrLiteral) Is(target error) bool {
	return target == ErrLex
}

// ErrLiteralRange is a numeric literal that does not fit 32 bits.
type ErrLiteralRange string

func (err ErrLiteralRange) Error() string {
	return f("literal '%v' out of range", string(err))
}

func (err ErrLiteralRange) Is(target error) bool {
	return target == ErrParse
}

// ErrExpected is a token that does not fit the grammar.
type ErrExpected struct {
	Want string // What the grammar allows here.
	Got  Token
}

func (err ErrExpected) Error() string {
	return f("expected %v, found %v", err.Want, err.Got.Kind)
}

func (err ErrExpected) Is(target error) bool {
	return target == ErrParse
}

// ErrLabelDuplicate is a label bound twice in the same scope.
type ErrLabelDuplicate string

func (err ErrLabelDuplicate) Error() string {
	return f("duplicate label '%v'", string(err))
}

func (err ErrLabelDuplicate) Is(target error) bool {
	return target == ErrResolve
}

// ErrLabelScope is a local label without an enclosing global label.
type ErrLabelScope string

func (err ErrLabelScope) Error() string {
	return f("local label '.%v' has no enclosing global label", string(err))
}

func (err ErrLabelScope) Is(target error) bool {
	return target == ErrResolve
}

// ErrLabelReserved is a label that can never be referenced because its
// name is already taken by a register or a constant.
type ErrLabelReserved string

func (err ErrLabelReserved) Error() string {
	return f("label '%v' shadows a register or constant", string(err))
}

func (err ErrLabelReserved) Is(target error) bool {
	return target == ErrResolve
}

// ErrLabelMissing is a reference to a label that is not in the table.
type ErrLabelMissing string

func (err ErrLabelMissing) Error() string {
	return f("label '%v' missing", string(err))
}

func (err ErrLabelMissing) Is(target error) bool {
	return target == ErrEncode
}

// ErrMnemonic is an instruction that is not part of the instruction set.
type ErrMnemonic string

func (err ErrMnemonic) Error() string {
	return f("unknown instruction '%v'", string(err))
}

func (err ErrMnemonic) Is(target error) bool {
	return target == ErrEncode
}

// ErrAttribute is an attribute the mnemonic does not support.
type ErrAttribute struct {
	Mnemonic  isa.Mnemonic
	Attribute string
}

func (err ErrAttribute) Error() string {
	return f("'%v' does not take attribute '%v'", err.Mnemonic, err.Attribute)
}

func (err ErrAttribute) Is(target error) bool {
	return target == ErrEncode
}

// ErrOperandCount is an instruction with the wrong number of operands.
type ErrOperandCount struct {
	Mnemonic isa.Mnemonic
	Want     int
	Got      int
}

func (err ErrOperandCount) Error() string {
	return f("'%v' takes %d operands, found %d", err.Mnemonic, err.Want, err.Got)
}

func (err ErrOperandCount) Is(target error) bool {
	return target == ErrEncode
}

// ErrOperandKind is an operand whose addressing mode the mnemonic rejects.
type ErrOperandKind struct {
	Mnemonic isa.Mnemonic
	Index    int    // Operand index, from 1.
	Reason   string // What the operand should have been.
}

func (err ErrOperandKind) Error() string {
	return f("'%v' operand %d %v", err.Mnemonic, err.Index, err.Reason)
}

func (err ErrOperandKind) Is(target error) bool {
	return target == ErrEncode
}
