package vm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/vc2asm/asm"
	"github.com/ezrec/vc2asm/isa"
)

func load(t *testing.T, lines ...string) (m *Machine, prog *asm.Program) {
	assembler := &asm.Assembler{}
	prog, diags := assembler.Assemble(strings.Join(lines, "\n"), t.Name())
	if len(diags) != 0 {
		t.Fatal(diags.Render(strings.Join(lines, "\n"), t.Name()))
	}

	m = NewMachine(MEMORY_DEFAULT)
	if err := m.Reset(prog.Binary()); err != nil {
		t.Fatal(err)
	}
	return
}

func TestMachineCountdown(t *testing.T) {
	assert := assert.New(t)

	m, _ := load(t,
		"main:",
		"    mov r0, 10",
		".loop:",
		"    sub r0, 1",
		"    jnz .loop",
		"    jmp end",
		"end:",
		"    hlt",
	)

	assert.NoError(m.Run(0))
	assert.True(m.Halted)
	assert.Equal(uint32(0), m.Register[isa.REG_R0])
	assert.Equal(FLAG_ZERO, m.Register[isa.REG_FL])
	assert.Equal(uint32(29), m.Register[isa.REG_PC])
	assert.Equal(23, m.Ticks)

	assert.ErrorIs(m.Tick(), ErrHalted)
}

func TestMachineFactorial(t *testing.T) {
	assert := assert.New(t)

	m, prog := load(t,
		"main:",
		"  mov r0, 5",
		"  mov r1, 1",
		".loop:",
		"  mul r1, r0",
		"  sub r0, 1",
		"  jnz .loop",
		"  mov [result], r1",
		"  hlt",
		"result:",
	)

	assert.NoError(m.Run(1000))

	value, err := m.load(prog.Labels[asm.LabelKey{Name: "result"}])
	assert.NoError(err)
	assert.Equal(uint32(120), value)
}

func TestMachineCompare(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		a, b  string
		flags uint32
		jumps map[string]bool
	}{
		{"3", "5", FLAG_LESS | FLAG_CARRY, map[string]bool{
			"jlt": true, "jle": true, "jgt": false, "jge": false, "jeq": false, "jne": true,
		}},
		{"5", "5", FLAG_ZERO, map[string]bool{
			"jlt": false, "jle": true, "jgt": false, "jge": true, "jeq": true, "jne": false, "jz": true, "jnz": false,
		}},
		{"0xffffffff", "1", FLAG_LESS, map[string]bool{
			"jlt": true, "jgt": false,
		}},
		{"7", "0xffffffff", FLAG_CARRY, map[string]bool{
			"jlt": false, "jge": true, "jgt": true,
		}},
	}

	for _, entry := range table {
		for jump, taken := range entry.jumps {
			m, _ := load(t,
				"main:",
				"  mov r0, "+entry.a,
				"  cmp r0, "+entry.b,
				"  "+jump+" .taken",
				"  mov r1, 1",
				"  hlt",
				".taken:",
				"  mov r1, 2",
				"  hlt",
			)
			assert.NoError(m.Run(100))

			name := entry.a + " " + jump + " " + entry.b
			assert.Equal(entry.flags, m.Register[isa.REG_FL], name)
			if taken {
				assert.Equal(uint32(2), m.Register[isa.REG_R1], name)
			} else {
				assert.Equal(uint32(1), m.Register[isa.REG_R1], name)
			}
		}
	}
}

func TestMachineArithmetic(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		op     string
		a, b   string
		result uint32
	}{
		{"mov", "1", "0x55", 0x55},
		{"or", "0x0f", "0xf0", 0xff},
		{"and", "0x0f", "0x3c", 0x0c},
		{"xor", "0xff", "0x0f", 0xf0},
		{"shl", "1", "33", 2},
		{"shr", "0x80", "4", 0x08},
		{"add", "0xffffffff", "2", 1},
		{"sub", "1", "2", 0xffffffff},
		{"mul", "6", "7", 42},
		{"imul", "0xfffffffe", "3", 0xfffffffa},
		{"div", "0xfffffffa", "3", 0x55555553},
		{"idiv", "0xfffffffa", "3", 0xfffffffe},
		{"rem", "17", "5", 2},
	}

	for _, entry := range table {
		m, _ := load(t,
			"main:",
			"  mov r0, "+entry.a,
			"  "+entry.op+" r0, "+entry.b,
			"  hlt",
		)
		assert.NoError(m.Run(10), entry.op)
		assert.Equal(entry.result, m.Register[isa.REG_R0], entry.op)
	}
}

func TestMachineMemory(t *testing.T) {
	assert := assert.New(t)

	m, _ := load(t,
		"main:",
		"  mov r1, 0x100",
		"  mov [r1], 7",
		"  add [r1], 1",
		"  not [0x104]",
		"  mov r0, [r1]",
		"  hlt",
	)
	assert.NoError(m.Run(10))
	assert.Equal(uint32(8), m.Register[isa.REG_R0])
	assert.Equal([]byte{8, 0, 0, 0, 0xff, 0xff, 0xff, 0xff}, m.Memory[0x100:0x108])

	m, _ = load(t, "mov r0, pc", "hlt")
	assert.NoError(m.Run(10))
	assert.Equal(uint32(5), m.Register[isa.REG_R0])
}

func TestMachineErrors(t *testing.T) {
	assert := assert.New(t)

	m, _ := load(t, "main:", "  mov r0, 1", "  div r0, r1", "  hlt")
	err := m.Run(10)
	assert.ErrorIs(err, ErrDivideByZero)
	var rt *ErrRuntime
	if assert.ErrorAs(err, &rt) {
		assert.Equal(uint32(8), rt.Address)
	}

	m, _ = load(t, "main:", "  jmp main")
	assert.ErrorIs(m.Run(100), ErrTickLimit)
	assert.Equal(100, m.Ticks)

	m, _ = load(t, "main:", "  mov [0xfffffffe], r0")
	assert.ErrorIs(m.Run(10), ErrMemoryAddress)

	// Running off the end of the program executes zeroed memory (nop)
	// until PC leaves memory.
	m = NewMachine(4)
	assert.NoError(m.Reset([]byte{byte(isa.OP_NOP)}))
	assert.ErrorIs(m.Run(10), ErrMemoryAddress)

	assert.ErrorIs(m.Reset(make([]byte, 5)), ErrProgramSize)

	m = NewMachine(16)
	assert.ErrorIs(m.Execute(isa.Instruction{Mnemonic: isa.OP_MOV, Operands: []isa.Operand{isa.Imm(1), isa.Imm(2)}}), ErrOperandWrite)
	assert.ErrorIs(m.Execute(isa.Instruction{Mnemonic: isa.OP_MOV}), ErrInstruction)
	assert.ErrorIs(m.Execute(isa.Instruction{Mnemonic: isa.Mnemonic(0x40)}), ErrInstruction)

	assert.NoError(m.Reset([]byte{0xff}))
	assert.ErrorIs(m.Tick(), isa.ErrDecodeOpcode(0xff))
}

func TestMachineString(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine(16)
	m.Register[isa.REG_R1] = 0x12345678
	assert.Equal(" r0: 0000_0000\n r1: 1234_5678\n fl: 0000_0000\n pc: 0000_0000\n", m.String())
}
