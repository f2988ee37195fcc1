// Package asm implements the assembler for the vc2 virtual CPU.
//
// Assembly runs as a fixed pipeline: the Lexer turns source text into
// tokens, the Parser turns tokens into Lines, a first pass binds every
// label to its byte offset, and a second pass encodes the instructions
// using the completed label table. No stage aborts on bad input; each
// reports diagnostics and carries on with the next line or instruction.
package asm
