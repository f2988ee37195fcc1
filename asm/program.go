package asm

import (
	"iter"

	"github.com/ezrec/vc2asm/diag"
	"github.com/ezrec/vc2asm/isa"
)

// Opcode is an encoded instruction with the source line it came from.
type Opcode struct {
	Pos     diag.Position
	Address uint32
	Source  *Instruction
	Code    isa.Instruction
}

// Program is the output of the assembler.
type Program struct {
	Filename string
	Opcodes  []Opcode
	Labels   Labels
}

// Debug locates the opcode covering a byte address.
type Debug struct {
	*Opcode
	Offset int // Offset of the address into the opcode.
}

// Debug returns the opcode covering address, or a Debug with a nil Opcode.
func (prog *Program) Debug(address uint32) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if address >= op.Address && address < op.Address+uint32(op.Code.Size()) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Offset: int(address - op.Address),
			}
			break
		}
	}

	return
}

// Binary returns the encoded program. Instructions that failed to encode
// are left out, so after one the bytes no longer sit at their Opcode
// addresses.
func (prog *Program) Binary() (code []byte) {
	if prog == nil {
		return
	}
	for _, op := range prog.Opcodes {
		code = op.Code.Append(code)
	}

	return
}

// Codes returns an iterator over the instructions of the program, keyed by
// address.
func (prog *Program) Codes() iter.Seq2[uint32, isa.Instruction] {
	return func(yield func(address uint32, code isa.Instruction) bool) {
		for _, op := range prog.Opcodes {
			if !yield(op.Address, op.Code) {
				return
			}
		}
	}
}
