// Package vm implements the firefaith register virtual machine.
//
// The engine executes a byte-encoded instruction stream against a bank of
// 32 signed 32-bit registers. Each instruction is one opcode byte followed
// by its operand bytes; the instruction pointer (Ip) is the single cursor
// into the program buffer and always indicates the next byte to decode.
// The embedder appends raw instruction bytes and drives execution one
// instruction at a time with Step, or to completion with Run.
package vm
