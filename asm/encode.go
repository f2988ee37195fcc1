package asm

import (
	"errors"
	"log"

	"github.com/ezrec/vc2asm/diag"
)

// encode is the second pass: it encodes every instruction against the
// completed label table. An instruction that fails to encode is reported
// and left out of the program, but still occupies its sized length in
// the address space.
func (asm *Assembler) encode(lines []Line, labels Labels) (prog *Program, diags diag.List) {
	prog = &Program{Labels: labels}
	syms := &table{labels: labels, constants: asm.constants}

	var scope string
	var address uint32

	for _, line := range lines {
		switch line := line.(type) {
		case *Label:
			if line.Scope == SCOPE_GLOBAL {
				scope = line.Name
			}
		case *Instruction:
			code, err := lower(line, scope, syms)
			if err != nil {
				var d diag.Diagnostic
				if !errors.As(err, &d) {
					d = diag.New(line.Pos, err)
				}
				diags = append(diags, d)

				// Keep the layout of the first pass, so that opcode
				// addresses agree with the label table.
				if sized, err := lower(line, scope, sizer{}); err == nil {
					address += uint32(sized.Size())
				}
				continue
			}

			if asm.Verbose {
				log.Printf("0x%04x: %v", address, code)
			}

			prog.Opcodes = append(prog.Opcodes, Opcode{
				Pos:     line.Pos,
				Address: address,
				Source:  line,
				Code:    code,
			})
			address += uint32(code.Size())
		}
	}

	return
}
