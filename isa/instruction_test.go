package isa

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	assert := assert.New(t)

	for n := range OP_COUNT {
		op := Mnemonic(n)
		found, ok := LookupMnemonic(op.String())
		assert.True(ok, op.String())
		assert.Equal(op, found)
	}

	op, ok := LookupMnemonic("IMUL")
	assert.True(ok)
	assert.Equal(OP_IMUL, op)
	assert.Equal(Mnemonic(0x0c), op)

	_, ok = LookupMnemonic("push")
	assert.False(ok)

	reg, ok := LookupRegister("FL")
	assert.True(ok)
	assert.Equal(REG_FL, reg)
	assert.True(IsRegister("pc"))
	assert.False(IsRegister("r2"))
}

func TestClass(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(CLASS_NULLARY, OP_NOP.Class())
	assert.Equal(CLASS_NULLARY, OP_HLT.Class())
	assert.Equal(CLASS_UNARY, OP_NOT.Class())
	assert.Equal(CLASS_BINARY, OP_MOV.Class())
	assert.Equal(CLASS_BINARY, OP_CMP.Class())
	assert.Equal(CLASS_BINARY, OP_REM.Class())
	for op := OP_JMP; op <= OP_JGE; op++ {
		assert.Equal(CLASS_JUMP, op.Class(), op.String())
	}

	assert.Equal(0, CLASS_NULLARY.Arity())
	assert.Equal(1, CLASS_UNARY.Arity())
	assert.Equal(2, CLASS_BINARY.Arity())
	assert.Equal(1, CLASS_JUMP.Arity())
}

func TestInstructionEncode(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		inst Instruction
		hex  string
		text string
	}{
		{Instruction{Mnemonic: OP_NOP}, "00", "nop"},
		{Instruction{OP_MOV, []Operand{Reg(REG_R1), Imm(42)}}, "02 0001 012a000000", "mov r1, 42"},
		{Instruction{OP_ADD, []Operand{AddrReg(REG_R0), Imm(-1)}}, "09 0200 01ffffffff", "add [r0], -1"},
		{Instruction{OP_NOT, []Operand{AddrImm(0x1234)}}, "06 0334120000", "not [0x1234]"},
		{Instruction{OP_JNZ, []Operand{AddrImm(6)}}, "13 0306000000", "jnz [0x6]"},
		{Instruction{OP_CMP, []Operand{Reg(REG_FL), Reg(REG_PC)}}, "10 0002 0003", "cmp fl, pc"},
	}

	for _, entry := range table {
		expected, err := hex.DecodeString(stripSpaces(entry.hex))
		assert.NoError(err)

		code := entry.inst.Append(nil)
		assert.Equal(expected, code, entry.text)
		assert.Equal(len(expected), entry.inst.Size(), entry.text)
		assert.Equal(entry.text, entry.inst.String())

		decoded, size, err := Decode(code)
		assert.NoError(err)
		assert.Equal(len(code), size)
		assert.Equal(entry.inst.Mnemonic, decoded.Mnemonic)
		assert.Equal(len(entry.inst.Operands), len(decoded.Operands))
		for n := range decoded.Operands {
			assert.Equal(entry.inst.Operands[n], decoded.Operands[n])
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	assert := assert.New(t)

	_, _, err := Decode(nil)
	assert.ErrorIs(err, ErrDecodeTruncated)

	_, _, err = Decode([]byte{0x1a})
	assert.Equal(ErrDecodeOpcode(0x1a), err)

	_, _, err = Decode([]byte{byte(OP_NOT)})
	assert.ErrorIs(err, ErrDecodeTruncated)

	_, _, err = Decode([]byte{byte(OP_NOT), 0x04, 0x00})
	assert.Equal(ErrDecodeMode(0x04), err)

	_, _, err = Decode([]byte{byte(OP_NOT), byte(MODE_ADDRESS_IMMEDIATE), 1, 2})
	assert.ErrorIs(err, ErrDecodeTruncated)

	_, _, err = Decode([]byte{byte(OP_NOT), byte(MODE_REGISTER), 0x09})
	assert.Equal(ErrDecodeRegister(0x09), err)
}

func TestDisassemble(t *testing.T) {
	assert := assert.New(t)

	var code []byte
	code = Instruction{Mnemonic: OP_NOP}.Append(code)
	code = Instruction{OP_JMP, []Operand{AddrImm(0)}}.Append(code)
	code = Instruction{Mnemonic: OP_HLT}.Append(code)

	var addrs []uint32
	var texts []string
	for addr, inst := range Disassemble(code) {
		addrs = append(addrs, addr)
		texts = append(texts, inst.String())
	}
	assert.Equal([]uint32{0, 1, 7}, addrs)
	assert.Equal([]string{"nop", "jmp [0x0]", "hlt"}, texts)

	// Stops at garbage.
	code = append(code, 0xff, byte(OP_NOP))
	count := 0
	for range Disassemble(code) {
		count++
	}
	assert.Equal(3, count)
}

func stripSpaces(s string) string {
	out := make([]byte, 0, len(s))
	for n := range len(s) {
		if s[n] != ' ' {
			out = append(out, s[n])
		}
	}
	return string(out)
}

func TestNames(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("jge", OP_JGE.String())
	assert.Equal("Mnemonic(64)", Mnemonic(0x40).String())
	assert.Equal("pc", REG_PC.String())
	assert.Equal("Register(4)", Register(REG_COUNT).String())
	assert.Equal("[imm]", MODE_ADDRESS_IMMEDIATE.String())
	assert.Equal("Mode(4)", Mode(MODE_COUNT).String())

	for reg := Register(0); reg < REG_COUNT; reg++ {
		found, ok := LookupRegister(strings.ToUpper(reg.String()))
		assert.True(ok, reg.String())
		assert.Equal(reg, found)
	}
}
