// Package isa defines the fixed instruction set of the vc2 virtual CPU and
// its byte encoding.
//
// An encoded instruction is one opcode byte followed, for every operand, by
// a one byte addressing mode descriptor and the operand payload: one byte
// for a register id, four little-endian bytes for an immediate value or an
// absolute address.
package isa
