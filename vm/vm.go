// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package vm

import (
	"errors"
	"fmt"
	"log"
)

const (
	REGISTER_COUNT = 32 // Size of the general purpose register bank.
)

// Vm is the execution engine for the firefaith bytecode.
type Vm struct {
	Verbose bool // Set to enable verbose logging.

	Register  [REGISTER_COUNT]int32 // Register bank.
	Remainder uint32                // Remainder of the most recent division.
	Program   []byte                // Instruction byte stream.
	Ip        uint32                // Current instruction pointer.
}

// NewVm creates a new engine with zeroed registers and an empty program.
func NewVm() (vm *Vm) {
	vm = &Vm{}

	return
}

// Reset clears the registers, remainder, program buffer, and instruction
// pointer.
func (vm *Vm) Reset() {
	if vm.Verbose {
		log.Printf("vm: reset")
	}

	clear(vm.Register[:])
	vm.Remainder = 0
	vm.Program = nil
	vm.Ip = 0
}

// String returns the current engine state as a string.
func (vm *Vm) String() (text string) {
	text = fmt.Sprintf("   ip: %04X_%04X\n", vm.Ip>>16, vm.Ip&0xffff)
	text += fmt.Sprintf("  rem: %04X_%04X\n", vm.Remainder>>16, vm.Remainder&0xffff)
	for n, val := range vm.Register {
		text += fmt.Sprintf("  r%02d: %04X_%04X\n", n, uint32(val)>>16, uint32(val)&0xffff)
	}

	return
}

// AppendByte appends one byte to the end of the program buffer. The
// buffer may transiently hold a partial instruction between appends.
func (vm *Vm) AppendByte(b byte) {
	vm.Program = append(vm.Program, b)
}

// AppendBytes appends a run of bytes to the end of the program buffer.
func (vm *Vm) AppendBytes(bs ...byte) {
	vm.Program = append(vm.Program, bs...)
}

// nextByte returns the byte at the instruction pointer and advances
// past it. The caller has already verified the instruction fits in the
// program buffer.
func (vm *Vm) nextByte() (b byte) {
	b = vm.Program[vm.Ip]
	vm.Ip++

	return
}

// nextShort returns the big-endian 16-bit value at the instruction
// pointer and advances past both bytes.
func (vm *Vm) nextShort() (value uint16) {
	value = (uint16(vm.Program[vm.Ip]) << 8) | uint16(vm.Program[vm.Ip+1])
	vm.Ip += 2

	return
}

// nextRegister reads a register index operand and validates it against
// the register bank.
func (vm *Vm) nextRegister() (reg int, err error) {
	reg = int(vm.nextByte())
	if reg >= len(vm.Register) {
		err = ErrRegisterInvalid
	}

	return
}

// Step executes a single instruction.
//
// done is true when no instruction remains at the instruction pointer,
// or when the instruction was a halt or an illegal opcode. A fault
// leaves done false and reports the error; the faulting instruction is
// not applied.
func (vm *Vm) Step() (done bool, err error) {
	if int(vm.Ip) >= len(vm.Program) {
		done = true
		return
	}

	op := Decode(vm.Program[vm.Ip])
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(op), err)
		}
	}()

	// The whole instruction must be in the buffer before any of it is
	// consumed.
	if int(vm.Ip)+op.Width() > len(vm.Program) {
		err = ErrProgramTruncated
		return
	}

	if vm.Verbose {
		log.Printf("vm: %04x: %v", vm.Ip, op)
	}

	vm.Ip++

	switch op {
	case OP_HALT:
		log.Printf("vm: halt")
		done = true
	case OP_ILLEGAL:
		log.Printf("vm: illegal instruction 0x%02x", vm.Program[vm.Ip-1])
		done = true
	case OP_LOAD:
		var reg int
		reg, err = vm.nextRegister()
		if err != nil {
			return
		}
		value := vm.nextShort()
		vm.Register[reg] = int32(value)
	case OP_ADD, OP_SUB, OP_MUL, OP_DIV:
		err = vm.arithmetic(op)
	case OP_MOVE:
		var dst, src int
		dst, err = vm.nextRegister()
		if err != nil {
			return
		}
		src, err = vm.nextRegister()
		if err != nil {
			return
		}
		vm.Register[dst] = vm.Register[src]
	case OP_JUMP:
		var reg int
		reg, err = vm.nextRegister()
		if err != nil {
			return
		}
		vm.Ip = uint32(vm.Register[reg])
	case OP_JUMP_BACK:
		var reg int
		reg, err = vm.nextRegister()
		if err != nil {
			return
		}
		// Displacement is relative to the ip just past the jump's own
		// encoding.
		value := vm.Register[reg]
		if value < 0 || uint32(value) > vm.Ip {
			err = ErrIpRange
			return
		}
		vm.Ip -= uint32(value)
	case OP_JUMP_FORWARD:
		var reg int
		reg, err = vm.nextRegister()
		if err != nil {
			return
		}
		value := vm.Register[reg]
		if value < 0 {
			err = ErrIpRange
			return
		}
		vm.Ip += uint32(value)
	}

	return
}

// arithmetic applies one of the three-register arithmetic instructions.
// The operand order is source, source, destination.
func (vm *Vm) arithmetic(op Opcode) (err error) {
	src1, err := vm.nextRegister()
	if err != nil {
		return
	}
	src2, err := vm.nextRegister()
	if err != nil {
		return
	}
	dst, err := vm.nextRegister()
	if err != nil {
		return
	}

	a := vm.Register[src1]
	b := vm.Register[src2]

	switch op {
	case OP_ADD:
		vm.Register[dst] = a + b
	case OP_SUB:
		vm.Register[dst] = a - b
	case OP_MUL:
		vm.Register[dst] = a * b
	case OP_DIV:
		if b == 0 {
			err = ErrDivideByZero
			return
		}
		vm.Register[dst] = a / b
		vm.Remainder = uint32(a % b)
	}

	return
}

// Run steps the engine until it halts, runs out of program bytes, or
// faults.
func (vm *Vm) Run() (err error) {
	done := false
	for !done && err == nil {
		done, err = vm.Step()
	}

	return
}
