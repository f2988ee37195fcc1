package asm

import (
	"fmt"
	"strings"

	"github.com/ezrec/vc2asm/diag"
)

// Line is a parsed source line: a *Label or an *Instruction.
type Line interface {
	Position() diag.Position
	String() string

	isLine()
}

// Scope is the visibility of a label.
type Scope int

const (
	SCOPE_GLOBAL = Scope(0) // Visible everywhere.
	SCOPE_LOCAL  = Scope(1) // Visible after its enclosing global label, up to the next one.
)

// Label binds a name to the offset of the next instruction.
type Label struct {
	Pos   diag.Position
	Name  string // Name, without the leading '.' of local labels.
	Scope Scope
}

func (label *Label) Position() diag.Position { return label.Pos }
func (*Label) isLine()                       {}

func (label *Label) String() string {
	if label.Scope == SCOPE_LOCAL {
		return "." + label.Name + ":"
	}
	return label.Name + ":"
}

// Instruction is a mnemonic with its optional attribute and operands.
type Instruction struct {
	Pos       diag.Position
	Operator  string
	Attribute string // Empty when absent.
	Operands  []Operand
}

func (inst *Instruction) Position() diag.Position { return inst.Pos }
func (*Instruction) isLine()                      {}

func (inst *Instruction) String() string {
	var sb strings.Builder
	sb.WriteString(inst.Operator)
	if len(inst.Attribute) != 0 {
		sb.WriteString(" ")
		sb.WriteString(inst.Attribute)
	}
	for n, op := range inst.Operands {
		if n == 0 {
			sb.WriteString(" ")
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(op.String())
	}
	return sb.String()
}

// Operand is a Value used directly, or as a memory address when Address is
// set (written bracketed in the source).
type Operand struct {
	Pos     diag.Position
	Address bool
	Value   Value
}

func (op Operand) String() string {
	if op.Address {
		return "[" + op.Value.String() + "]"
	}
	return op.Value.String()
}

// Value is an Identifier or an Immediate.
type Value interface {
	String() string

	isValue()
}

// Identifier names a register, a label or a constant.
type Identifier struct {
	Name  string
	Local bool // Written with a leading '.', refers to a local label.
}

func (Identifier) isValue() {}

func (id Identifier) String() string {
	if id.Local {
		return "." + id.Name
	}
	return id.Name
}

// Immediate is an integer literal.
type Immediate int32

func (Immediate) isValue() {}

func (imm Immediate) String() string {
	return fmt.Sprintf("%d", int32(imm))
}
