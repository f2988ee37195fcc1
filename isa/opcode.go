package isa

import (
	"strings"
)

// Mnemonic is a one byte instruction opcode.
type Mnemonic byte

//go:generate go tool stringer -linecomment -type=Mnemonic
const (
	OP_NOP  = Mnemonic(0x00) // nop
	OP_HLT  = Mnemonic(0x01) // hlt
	OP_MOV  = Mnemonic(0x02) // mov
	OP_OR   = Mnemonic(0x03) // or
	OP_AND  = Mnemonic(0x04) // and
	OP_XOR  = Mnemonic(0x05) // xor
	OP_NOT  = Mnemonic(0x06) // not
	OP_SHL  = Mnemonic(0x07) // shl
	OP_SHR  = Mnemonic(0x08) // shr
	OP_ADD  = Mnemonic(0x09) // add
	OP_SUB  = Mnemonic(0x0a) // sub
	OP_MUL  = Mnemonic(0x0b) // mul
	OP_IMUL = Mnemonic(0x0c) // imul
	OP_DIV  = Mnemonic(0x0d) // div
	OP_IDIV = Mnemonic(0x0e) // idiv
	OP_REM  = Mnemonic(0x0f) // rem
	OP_CMP  = Mnemonic(0x10) // cmp
	OP_JMP  = Mnemonic(0x11) // jmp
	OP_JZ   = Mnemonic(0x12) // jz
	OP_JNZ  = Mnemonic(0x13) // jnz
	OP_JEQ  = Mnemonic(0x14) // jeq
	OP_JNE  = Mnemonic(0x15) // jne
	OP_JLT  = Mnemonic(0x16) // jlt
	OP_JLE  = Mnemonic(0x17) // jle
	OP_JGT  = Mnemonic(0x18) // jgt
	OP_JGE  = Mnemonic(0x19) // jge

	OP_COUNT = 0x1a // Number of defined opcodes.
)

// mnemonicMap maps lower case mnemonic names.
var mnemonicMap = func() map[string]Mnemonic {
	m := make(map[string]Mnemonic, OP_COUNT)
	for op := Mnemonic(0); op < OP_COUNT; op++ {
		m[op.String()] = op
	}
	return m
}()

// LookupMnemonic finds a mnemonic by name, ignoring case.
func LookupMnemonic(name string) (op Mnemonic, ok bool) {
	op, ok = mnemonicMap[strings.ToLower(name)]
	return
}

// Valid returns true if the mnemonic is part of the instruction set.
func (op Mnemonic) Valid() bool {
	return op < OP_COUNT
}

// Class is the operand signature shared by a group of mnemonics.
type Class int

const (
	CLASS_NULLARY = Class(0) // nop, hlt
	CLASS_UNARY   = Class(1) // not
	CLASS_BINARY  = Class(2) // mov, arithmetic, logic and cmp
	CLASS_JUMP    = Class(3) // jmp and the conditional jumps
)

// Class returns the operand signature of the mnemonic.
func (op Mnemonic) Class() Class {
	switch {
	case op == OP_NOP, op == OP_HLT:
		return CLASS_NULLARY
	case op == OP_NOT:
		return CLASS_UNARY
	case op >= OP_JMP && op <= OP_JGE:
		return CLASS_JUMP
	}
	return CLASS_BINARY
}

// Arity returns the number of operands the class takes.
func (class Class) Arity() int {
	switch class {
	case CLASS_NULLARY:
		return 0
	case CLASS_BINARY:
		return 2
	}
	return 1
}

// Register is a one byte register id.
type Register byte

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_R0 = Register(0) // r0
	REG_R1 = Register(1) // r1
	REG_FL = Register(2) // fl
	REG_PC = Register(3) // pc

	REG_COUNT = 4 // Number of registers.
)

// registerMap maps lower case register names.
var registerMap = func() map[string]Register {
	m := make(map[string]Register, REG_COUNT)
	for reg := Register(0); reg < REG_COUNT; reg++ {
		m[reg.String()] = reg
	}
	return m
}()

// LookupRegister finds a register by name, ignoring case.
func LookupRegister(name string) (reg Register, ok bool) {
	reg, ok = registerMap[strings.ToLower(name)]
	return
}

// IsRegister returns true if name is a register name.
func IsRegister(name string) bool {
	_, ok := LookupRegister(name)
	return ok
}

// Mode is an operand addressing mode, encoded as the descriptor byte.
type Mode byte

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_REGISTER          = Mode(0) // reg
	MODE_IMMEDIATE         = Mode(1) // imm
	MODE_ADDRESS_REGISTER  = Mode(2) // [reg]
	MODE_ADDRESS_IMMEDIATE = Mode(3) // [imm]

	MODE_COUNT = 4 // Number of addressing modes.
)

// IsAddress returns true for the memory indirect modes.
func (mode Mode) IsAddress() bool {
	return mode == MODE_ADDRESS_REGISTER || mode == MODE_ADDRESS_IMMEDIATE
}

// IsRegister returns true for the modes carrying a register id.
func (mode Mode) IsRegister() bool {
	return mode == MODE_REGISTER || mode == MODE_ADDRESS_REGISTER
}

// PayloadSize returns the number of payload bytes following the descriptor.
func (mode Mode) PayloadSize() int {
	if mode.IsRegister() {
		return 1
	}
	return 4
}
