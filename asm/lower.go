package asm

import (
	"github.com/ezrec/vc2asm/diag"
	"github.com/ezrec/vc2asm/isa"
)

// LabelKey identifies a label. Global labels have an empty Scope; local
// labels are qualified by the name of their enclosing global label.
type LabelKey struct {
	Scope string
	Name  string
}

func (key LabelKey) String() string {
	if len(key.Scope) == 0 {
		return key.Name
	}
	return key.Scope + "." + key.Name
}

// Labels maps labels to byte offsets.
type Labels map[LabelKey]uint32

// symbols resolves the non-register identifiers of an instruction made
// inside scope.
type symbols interface {
	label(scope string, id Identifier) (address uint32, ok bool)
	constant(name string) (value uint32, ok bool)
}

// sizer resolves every symbol to zero. Symbol values never change the
// size of an instruction, so lowering against a sizer yields the final
// layout before any label is known.
type sizer struct{}

func (sizer) label(string, Identifier) (uint32, bool) { return 0, true }
func (sizer) constant(string) (uint32, bool)          { return 0, true }

// table resolves symbols from the completed label table and the
// assembler constants.
type table struct {
	labels    Labels
	constants map[string]uint32
}

func (t *table) label(scope string, id Identifier) (address uint32, ok bool) {
	key, ok := keyOf(scope, id)
	if !ok {
		return
	}
	address, ok = t.labels[key]
	return
}

func (t *table) constant(name string) (value uint32, ok bool) {
	value, ok = t.constants[name]
	return
}

// keyOf qualifies a label reference made inside scope. A local reference
// outside of any global label has no key.
func keyOf(scope string, id Identifier) (key LabelKey, ok bool) {
	if !id.Local {
		return LabelKey{Name: id.Name}, true
	}
	if len(scope) == 0 {
		return
	}
	return LabelKey{Scope: scope, Name: id.Name}, true
}

// lower validates inst and converts it to an encodable instruction.
// Errors are diag.Diagnostic values.
func lower(inst *Instruction, scope string, syms symbols) (code isa.Instruction, err error) {
	op, ok := isa.LookupMnemonic(inst.Operator)
	if !ok {
		err = diag.New(inst.Pos, ErrMnemonic(inst.Operator))
		return
	}

	if len(inst.Attribute) != 0 {
		err = diag.New(inst.Pos, ErrAttribute{Mnemonic: op, Attribute: inst.Attribute})
		return
	}

	class := op.Class()
	if len(inst.Operands) != class.Arity() {
		err = diag.New(inst.Pos, ErrOperandCount{Mnemonic: op, Want: class.Arity(), Got: len(inst.Operands)})
		return
	}

	code.Mnemonic = op
	if class.Arity() > 0 {
		code.Operands = make([]isa.Operand, len(inst.Operands))
	}

	if class == isa.CLASS_JUMP {
		code.Operands[0], err = lowerTarget(op, inst.Operands[0], scope, syms)
		return
	}

	for n, operand := range inst.Operands {
		code.Operands[n], err = lowerOperand(op, n, operand, scope, syms)
		if err != nil {
			return
		}
	}

	switch class {
	case isa.CLASS_UNARY, isa.CLASS_BINARY:
		if code.Operands[0].Mode == isa.MODE_IMMEDIATE {
			err = diag.New(inst.Operands[0].Pos, ErrOperandKind{Mnemonic: op, Index: 1, Reason: f("cannot be an immediate value")})
			return
		}
	}
	if class == isa.CLASS_BINARY && code.Operands[0].Mode.IsAddress() && code.Operands[1].Mode.IsAddress() {
		err = diag.New(inst.Operands[1].Pos, ErrOperandKind{Mnemonic: op, Index: 2, Reason: f("cannot be a memory address when operand 1 is")})
		return
	}

	return
}

// lowerTarget converts a jump target, which must name a label, to its
// absolute address.
func lowerTarget(op isa.Mnemonic, operand Operand, scope string, syms symbols) (target isa.Operand, err error) {
	id, ok := operand.Value.(Identifier)
	if operand.Address || !ok || (!id.Local && isa.IsRegister(id.Name)) {
		err = diag.New(operand.Pos, ErrOperandKind{Mnemonic: op, Index: 1, Reason: f("must be a label")})
		return
	}

	address, ok := syms.label(scope, id)
	if !ok {
		err = diag.New(operand.Pos, ErrLabelMissing(id.String()))
		return
	}

	target = isa.AddrImm(address)
	return
}

// lowerOperand converts the n'th operand of a non-jump instruction.
func lowerOperand(op isa.Mnemonic, n int, operand Operand, scope string, syms symbols) (out isa.Operand, err error) {
	switch v := operand.Value.(type) {
	case Immediate:
		out = isa.Imm(int32(v))
	case Identifier:
		if reg, ok := isa.LookupRegister(v.Name); ok && !v.Local {
			out = isa.Reg(reg)
			break
		}
		value, ok := syms.label(scope, v)
		if !ok && !v.Local {
			value, ok = syms.constant(v.Name)
		}
		if !ok {
			err = diag.New(operand.Pos, ErrLabelMissing(v.String()))
			return
		}
		out = isa.Operand{Mode: isa.MODE_IMMEDIATE, Value: value}
	default:
		err = diag.New(operand.Pos, ErrOperandKind{Mnemonic: op, Index: n + 1, Reason: f("is not a value")})
		return
	}

	if operand.Address {
		switch out.Mode {
		case isa.MODE_REGISTER:
			out.Mode = isa.MODE_ADDRESS_REGISTER
		case isa.MODE_IMMEDIATE:
			out.Mode = isa.MODE_ADDRESS_IMMEDIATE
		}
	}

	return
}
