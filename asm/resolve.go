package asm

import (
	"log"

	"github.com/ezrec/vc2asm/diag"
	"github.com/ezrec/vc2asm/isa"
)

// resolve is the first pass: it binds every label to the byte offset of
// the instruction that follows it, sizing instructions without encoding
// them. A label that cannot be bound is reported and left out of the
// table; its references fail in the second pass.
func (asm *Assembler) resolve(lines []Line) (labels Labels, diags diag.List) {
	labels = make(Labels)

	var scope string
	var offset uint32

	for _, line := range lines {
		switch line := line.(type) {
		case *Label:
			key := LabelKey{Name: line.Name}

			if line.Scope == SCOPE_GLOBAL {
				scope = line.Name
				_, is_constant := asm.constants[line.Name]
				if is_constant || isa.IsRegister(line.Name) {
					diags.Add(line.Pos, ErrLabelReserved(line.Name))
					continue
				}
			} else {
				if len(scope) == 0 {
					diags.Add(line.Pos, ErrLabelScope(line.Name))
					continue
				}
				key.Scope = scope
			}

			if _, ok := labels[key]; ok {
				diags.Add(line.Pos, ErrLabelDuplicate(key.String()))
				continue
			}
			labels[key] = offset

			if asm.Verbose {
				log.Printf("label %v = 0x%04x", key, offset)
			}
		case *Instruction:
			// Malformed instructions take no space; the second pass
			// reports them.
			code, err := lower(line, scope, sizer{})
			if err == nil {
				offset += uint32(code.Size())
			}
		}
	}

	return
}
