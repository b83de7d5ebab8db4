package vm

import (
	"errors"

	"github.com/ezrec/firefaith/translate"
)

var f = translate.From

var (
	// Execution errors
	ErrProgramTruncated = errors.New(f("program truncated"))
	ErrRegisterInvalid  = errors.New(f("register invalid"))
	ErrDivideByZero     = errors.New(f("divide by zero"))
	ErrIpRange          = errors.New(f("ip out of range"))
)

type ErrOpcode Opcode

func (eo ErrOpcode) Error() string {
	return f("opcode %v", Opcode(eo).String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}
