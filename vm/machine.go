// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package vm is a reference interpreter for vc2 machine code.
package vm

import (
	"encoding/binary"
	"fmt"
	"log"

	"github.com/ezrec/vc2asm/isa"
)

// Flag bits of the FL register.
const (
	FLAG_ZERO  = uint32(1 << 0) // Result was zero, or cmp operands were equal.
	FLAG_LESS  = uint32(1 << 1) // cmp: signed a < b.
	FLAG_CARRY = uint32(1 << 2) // cmp: unsigned a < b.
)

const MEMORY_DEFAULT = 64 * 1024 // Default memory size, in bytes.

// Machine is the simulation context of the vc2 CPU.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Register [isa.REG_COUNT]uint32 // Register file: r0, r1, fl, pc.
	Memory   []byte                // Byte addressed memory, program at 0.
	Halted   bool                  // Set by hlt.
	Ticks    int                   // Instructions executed since reset.
}

// NewMachine creates a machine with size bytes of memory.
func NewMachine(size int) (m *Machine) {
	m = &Machine{
		Memory: make([]byte, size),
	}

	return
}

// Reset clears the machine state and loads code at address 0.
func (m *Machine) Reset(code []byte) (err error) {
	if len(code) > len(m.Memory) {
		err = ErrProgramSize
		return
	}

	if m.Verbose {
		log.Printf("vm: reset, %d bytes of code", len(code))
	}

	clear(m.Register[:])
	clear(m.Memory)
	copy(m.Memory, code)
	m.Halted = false
	m.Ticks = 0

	return
}

// String returns the current register state as a string.
func (m *Machine) String() (text string) {
	for n, val := range m.Register {
		text += fmt.Sprintf("% 3s: %04X_%04X\n", isa.Register(n).String(), val>>16, val&0xffff)
	}

	return
}

// Fetch decodes the instruction at PC.
func (m *Machine) Fetch() (inst isa.Instruction, size int, err error) {
	pc := m.Register[isa.REG_PC]
	if uint64(pc) >= uint64(len(m.Memory)) {
		err = ErrMemoryAddress
		return
	}

	return isa.Decode(m.Memory[pc:])
}

// Tick executes a single instruction.
func (m *Machine) Tick() (err error) {
	if m.Halted {
		return ErrHalted
	}

	pc := m.Register[isa.REG_PC]
	defer func() {
		if err != nil {
			err = &ErrRuntime{Address: pc, Err: err}
		}
	}()

	inst, size, err := m.Fetch()
	if err != nil {
		return
	}

	if m.Verbose {
		log.Printf("%04x: %v", pc, inst)
	}

	m.Register[isa.REG_PC] = pc + uint32(size)
	m.Ticks++

	return m.Execute(inst)
}

// Run executes instructions until hlt, an error, or limit ticks.
// A limit of 0 or less means no limit.
func (m *Machine) Run(limit int) (err error) {
	for n := 0; !m.Halted; n++ {
		if limit > 0 && n >= limit {
			return ErrTickLimit
		}
		err = m.Tick()
		if err != nil {
			return
		}
	}

	return
}

// load reads a 32-bit little-endian word.
func (m *Machine) load(address uint32) (value uint32, err error) {
	if uint64(address)+4 > uint64(len(m.Memory)) {
		err = ErrMemoryAddress
		return
	}
	value = binary.LittleEndian.Uint32(m.Memory[address:])
	return
}

// store writes a 32-bit little-endian word.
func (m *Machine) store(address uint32, value uint32) (err error) {
	if uint64(address)+4 > uint64(len(m.Memory)) {
		err = ErrMemoryAddress
		return
	}
	binary.LittleEndian.PutUint32(m.Memory[address:], value)
	return
}

// getValue reads the value of an operand.
func (m *Machine) getValue(op isa.Operand) (value uint32, err error) {
	switch op.Mode {
	case isa.MODE_REGISTER:
		value = m.Register[op.Register]
	case isa.MODE_IMMEDIATE:
		value = op.Value
	case isa.MODE_ADDRESS_REGISTER:
		value, err = m.load(m.Register[op.Register])
	case isa.MODE_ADDRESS_IMMEDIATE:
		value, err = m.load(op.Value)
	}

	return
}

// setValue writes the value of an operand.
func (m *Machine) setValue(op isa.Operand, value uint32) (err error) {
	switch op.Mode {
	case isa.MODE_REGISTER:
		m.Register[op.Register] = value
	case isa.MODE_ADDRESS_REGISTER:
		err = m.store(m.Register[op.Register], value)
	case isa.MODE_ADDRESS_IMMEDIATE:
		err = m.store(op.Value, value)
	default:
		err = ErrOperandWrite
	}

	return
}

// target returns the address a jump operand points to.
func (m *Machine) target(op isa.Operand) (address uint32, err error) {
	switch op.Mode {
	case isa.MODE_ADDRESS_IMMEDIATE:
		address = op.Value
	case isa.MODE_ADDRESS_REGISTER:
		address = m.Register[op.Register]
	default:
		address, err = m.getValue(op)
	}

	return
}

// taken returns true if the jump condition holds for the current flags.
func (m *Machine) taken(op isa.Mnemonic) bool {
	fl := m.Register[isa.REG_FL]
	zero := fl&FLAG_ZERO != 0
	less := fl&FLAG_LESS != 0

	switch op {
	case isa.OP_JZ, isa.OP_JEQ:
		return zero
	case isa.OP_JNZ, isa.OP_JNE:
		return !zero
	case isa.OP_JLT:
		return less
	case isa.OP_JLE:
		return less || zero
	case isa.OP_JGT:
		return !less && !zero
	case isa.OP_JGE:
		return !less
	}

	return true
}

// doAlu performs the requested ALU action, and returns the output value.
func doAlu(op isa.Mnemonic, input uint32, value uint32) (output uint32, err error) {
	switch op {
	case isa.OP_MOV:
		output = value
	case isa.OP_OR:
		output = input | value
	case isa.OP_AND:
		output = input & value
	case isa.OP_XOR:
		output = input ^ value
	case isa.OP_SHL:
		output = input << (value & 0x1f)
	case isa.OP_SHR:
		output = input >> (value & 0x1f)
	case isa.OP_ADD:
		output = input + value
	case isa.OP_SUB:
		output = input - value
	case isa.OP_MUL:
		output = input * value
	case isa.OP_IMUL:
		output = uint32(int32(input) * int32(value))
	case isa.OP_DIV, isa.OP_IDIV, isa.OP_REM:
		if value == 0 {
			err = ErrDivideByZero
			return
		}
		switch op {
		case isa.OP_DIV:
			output = input / value
		case isa.OP_IDIV:
			output = uint32(int32(input) / int32(value))
		default:
			output = input % value
		}
	}

	return
}

// Execute executes a single decoded instruction.
func (m *Machine) Execute(inst isa.Instruction) (err error) {
	op := inst.Mnemonic
	if !op.Valid() || len(inst.Operands) != op.Class().Arity() {
		err = ErrInstruction
		return
	}

	switch op.Class() {
	case isa.CLASS_NULLARY:
		if op == isa.OP_HLT {
			m.Halted = true
		}
	case isa.CLASS_JUMP:
		if !m.taken(op) {
			return
		}
		var address uint32
		address, err = m.target(inst.Operands[0])
		if err != nil {
			return
		}
		m.Register[isa.REG_PC] = address
	case isa.CLASS_UNARY:
		var value uint32
		value, err = m.getValue(inst.Operands[0])
		if err != nil {
			return
		}
		value = ^value
		m.setFlags(value)
		err = m.setValue(inst.Operands[0], value)
	case isa.CLASS_BINARY:
		var a, b uint32
		a, err = m.getValue(inst.Operands[0])
		if err != nil {
			return
		}
		b, err = m.getValue(inst.Operands[1])
		if err != nil {
			return
		}

		if op == isa.OP_CMP {
			m.compare(a, b)
			return
		}

		var out uint32
		out, err = doAlu(op, a, b)
		if err != nil {
			return
		}
		if op != isa.OP_MOV {
			m.setFlags(out)
		}
		err = m.setValue(inst.Operands[0], out)
	}

	return
}

// setFlags sets FL from an arithmetic or logic result.
func (m *Machine) setFlags(result uint32) {
	fl := uint32(0)
	if result == 0 {
		fl |= FLAG_ZERO
	}
	m.Register[isa.REG_FL] = fl
}

// compare sets FL from a cmp of a and b.
func (m *Machine) compare(a, b uint32) {
	fl := uint32(0)
	if a == b {
		fl |= FLAG_ZERO
	}
	if int32(a) < int32(b) {
		fl |= FLAG_LESS
	}
	if a < b {
		fl |= FLAG_CARRY
	}
	m.Register[isa.REG_FL] = fl
}
