package isa

import (
	"encoding/binary"
	"fmt"
	"iter"
	"strings"
)

// Operand is an encoded instruction operand.
type Operand struct {
	Mode     Mode
	Register Register // Register id, for the register modes.
	Value    uint32   // Immediate value or absolute address, for the immediate modes.
}

// Reg creates a register operand.
func Reg(reg Register) Operand {
	return Operand{Mode: MODE_REGISTER, Register: reg}
}

// Imm creates an immediate operand.
func Imm(value int32) Operand {
	return Operand{Mode: MODE_IMMEDIATE, Value: uint32(value)}
}

// AddrReg creates a register indirect memory operand.
func AddrReg(reg Register) Operand {
	return Operand{Mode: MODE_ADDRESS_REGISTER, Register: reg}
}

// AddrImm creates an absolute memory operand.
func AddrImm(address uint32) Operand {
	return Operand{Mode: MODE_ADDRESS_IMMEDIATE, Value: address}
}

// Size returns the encoded size of the operand, descriptor included.
func (op Operand) Size() int {
	return 1 + op.Mode.PayloadSize()
}

// Append appends the encoded operand to buf.
func (op Operand) Append(buf []byte) []byte {
	buf = append(buf, byte(op.Mode))
	if op.Mode.IsRegister() {
		return append(buf, byte(op.Register))
	}
	return binary.LittleEndian.AppendUint32(buf, op.Value)
}

func (op Operand) String() string {
	switch op.Mode {
	case MODE_REGISTER:
		return op.Register.String()
	case MODE_IMMEDIATE:
		return fmt.Sprintf("%d", int32(op.Value))
	case MODE_ADDRESS_REGISTER:
		return "[" + op.Register.String() + "]"
	case MODE_ADDRESS_IMMEDIATE:
		return fmt.Sprintf("[0x%x]", op.Value)
	}
	return op.Mode.String()
}

// Instruction is a decoded or ready to encode instruction.
type Instruction struct {
	Mnemonic Mnemonic
	Operands []Operand
}

// Size returns the number of bytes the instruction encodes to.
func (inst Instruction) Size() (size int) {
	size = 1
	for _, op := range inst.Operands {
		size += op.Size()
	}
	return
}

// Append appends the encoded instruction to buf.
func (inst Instruction) Append(buf []byte) []byte {
	buf = append(buf, byte(inst.Mnemonic))
	for _, op := range inst.Operands {
		buf = op.Append(buf)
	}
	return buf
}

// String returns the assembly language representation of the instruction.
func (inst Instruction) String() string {
	if len(inst.Operands) == 0 {
		return inst.Mnemonic.String()
	}

	args := make([]string, len(inst.Operands))
	for n, op := range inst.Operands {
		args[n] = op.String()
	}
	return inst.Mnemonic.String() + " " + strings.Join(args, ", ")
}

// Decode decodes the instruction at the start of buf, returning it and the
// number of bytes consumed.
func Decode(buf []byte) (inst Instruction, size int, err error) {
	if len(buf) == 0 {
		err = ErrDecodeTruncated
		return
	}

	inst.Mnemonic = Mnemonic(buf[0])
	if !inst.Mnemonic.Valid() {
		err = ErrDecodeOpcode(buf[0])
		return
	}
	size = 1

	arity := inst.Mnemonic.Class().Arity()
	if arity > 0 {
		inst.Operands = make([]Operand, arity)
	}
	for n := range inst.Operands {
		if size >= len(buf) {
			err = ErrDecodeTruncated
			return
		}
		op := &inst.Operands[n]
		op.Mode = Mode(buf[size])
		if op.Mode >= MODE_COUNT {
			err = ErrDecodeMode(buf[size])
			return
		}
		size++

		if len(buf)-size < op.Mode.PayloadSize() {
			err = ErrDecodeTruncated
			return
		}
		if op.Mode.IsRegister() {
			op.Register = Register(buf[size])
			if op.Register >= REG_COUNT {
				err = ErrDecodeRegister(buf[size])
				return
			}
		} else {
			op.Value = binary.LittleEndian.Uint32(buf[size:])
		}
		size += op.Mode.PayloadSize()
	}

	return
}

// Disassemble returns an iterator over the instructions of an encoded
// program, keyed by address. It stops at the first instruction that does
// not decode; use Decode to find out why.
func Disassemble(code []byte) iter.Seq2[uint32, Instruction] {
	return func(yield func(address uint32, inst Instruction) bool) {
		for address := 0; address < len(code); {
			inst, size, err := Decode(code[address:])
			if err != nil {
				return
			}
			if !yield(uint32(address), inst) {
				return
			}
			address += size
		}
	}
}
