// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"log"
	"slices"

	"github.com/ezrec/vc2asm/diag"
	"github.com/ezrec/vc2asm/internal"
)

// Assembler is a two pass assembler for the vc2 virtual CPU.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	constants map[string]uint32 // Predefined constants.
}

// Parse tokenizes and parses source. Lexer and parser diagnostics are
// interleaved by position; at equal positions the lexer comes first.
func (asm *Assembler) Parse(source string) (lines []Line, diags diag.List) {
	lex := NewLexer(source)
	parser := NewParser(lex)

	for line := range parser.Lines() {
		if asm.Verbose {
			log.Printf("%v: %v", line.Position(), line)
		}
		lines = append(lines, line)
	}

	diags = slices.Collect(internal.IterSeqMerge(
		slices.Values(lex.Diagnostics()),
		slices.Values(parser.Diagnostics()),
		func(a, b diag.Diagnostic) int { return a.Pos.Compare(b.Pos) },
	))

	return
}

// Assemble runs the whole pipeline over source. The program holds every
// instruction that could be encoded, even when diagnostics were reported.
// Diagnostics are ordered by stage: lexer and parser (by position), then
// label resolution, then encoding.
func (asm *Assembler) Assemble(source string, filename string) (prog *Program, diags diag.List) {
	if asm.Verbose {
		log.Printf("assembling %v", filename)
	}

	lines, parse_diags := asm.Parse(source)
	labels, resolve_diags := asm.resolve(lines)
	prog, encode_diags := asm.encode(lines, labels)
	prog.Filename = filename

	diags = slices.Concat(parse_diags, resolve_diags, encode_diags)

	return
}

// Assemble assembles source with a default Assembler, returning the
// encoded bytes and every diagnostic.
func Assemble(source string, filename string) (code []byte, diags diag.List) {
	asm := &Assembler{}
	prog, diags := asm.Assemble(source, filename)
	code = prog.Binary()
	return
}
