package vm

import (
	"errors"

	"github.com/ezrec/vc2asm/translate"
)

var f = translate.From

var (
	ErrHalted        = errors.New(f("machine halted"))
	ErrInstruction   = errors.New(f("malformed instruction"))
	ErrTickLimit     = errors.New(f("tick limit reached"))
	ErrDivideByZero  = errors.New(f("divide by zero"))
	ErrOperandWrite  = errors.New(f("write to immediate operand"))
	ErrProgramSize   = errors.New(f("program larger than memory"))
	ErrMemoryAddress = errors.New(f("memory address out of range"))
)

// ErrRuntime indicates the address of the instruction that failed.
type ErrRuntime struct {
	Address uint32
	Err     error
}

func (err *ErrRuntime) Error() string {
	return f("0x%04x: %v", err.Address, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
