package asm

import (
	"fmt"
	"math"
	"regexp"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/vc2asm/isa"
)

var reIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Predefine binds a named constant to the value of a compile-time integer
// expression. Earlier constants may be used in expr.
//
//	asm.Predefine("BASE", "0x100")
//	asm.Predefine("STACK", "BASE + 4 * 16")
func (asm *Assembler) Predefine(name string, expr string) (err error) {
	if !reIdentifier.MatchString(name) || isa.IsRegister(name) {
		err = fmt.Errorf("%w: '%v'", ErrConstantName, name)
		return
	}
	if _, ok := isa.LookupMnemonic(name); ok {
		err = fmt.Errorf("%w: '%v'", ErrConstantName, name)
		return
	}

	value, err := asm.evaluate(expr)
	if err != nil {
		err = fmt.Errorf("%v: %w", name, err)
		return
	}

	if asm.constants == nil {
		asm.constants = map[string]uint32{name: value}
	} else {
		asm.constants[name] = value
	}

	return
}

// Constant returns the value of a predefined constant.
func (asm *Assembler) Constant(name string) (value uint32, ok bool) {
	value, ok = asm.constants[name]
	return
}

// evaluate computes an integer expression with starlark.
func (asm *Assembler) evaluate(expr string) (value uint32, err error) {
	thread := starlark.Thread{Name: "predefine"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, value := range asm.constants {
		pred[key] = starlark.MakeUint64(uint64(value))
	}

	prog := "rc = " + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "predefine", prog, pred)
	if err != nil {
		return
	}

	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrConstantType
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < math.MinInt32 || st_int64 > math.MaxUint32 {
		err = ErrConstantRange
		return
	}

	value = uint32(st_int64)
	return
}
