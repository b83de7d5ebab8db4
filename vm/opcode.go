package vm

// Opcode is the operation selector decoded from the first byte of an
// instruction.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_HALT         = Opcode(0)  // halt
	OP_LOAD         = Opcode(1)  // load
	OP_ADD          = Opcode(2)  // add
	OP_SUB          = Opcode(3)  // sub
	OP_MUL          = Opcode(4)  // mul
	OP_DIV          = Opcode(5)  // div
	OP_MOVE         = Opcode(6)  // move
	OP_JUMP         = Opcode(7)  // jump
	OP_JUMP_BACK    = Opcode(8)  // jumpb
	OP_JUMP_FORWARD = Opcode(9)  // jumpf
	OP_ILLEGAL      = Opcode(10) // illegal
)

// Decode maps a byte to its Opcode. Every unassigned byte value decodes
// to OP_ILLEGAL.
func Decode(b byte) (op Opcode) {
	op = Opcode(b)
	if op > OP_JUMP_FORWARD {
		op = OP_ILLEGAL
	}

	return
}

// Width returns the full instruction width in bytes, the opcode byte
// plus its operand bytes.
func (op Opcode) Width() (width int) {
	switch op {
	case OP_HALT, OP_ILLEGAL:
		width = 1
	case OP_JUMP, OP_JUMP_BACK, OP_JUMP_FORWARD:
		width = 2
	case OP_MOVE:
		width = 3
	case OP_LOAD, OP_ADD, OP_SUB, OP_MUL, OP_DIV:
		width = 4
	}

	return
}
