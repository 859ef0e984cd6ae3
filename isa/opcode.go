package isa

// Opcode is a bytecode operation.
type Opcode uint8

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_NOOP         = Opcode(0x00) // noop
	OP_LOAD_IMM     = Opcode(0x01) // load.imm
	OP_JUMP_IMM     = Opcode(0x02) // jump.imm
	OP_ADD_IMM      = Opcode(0x03) // add.imm
	OP_ADD_REG      = Opcode(0x04) // add.reg
	OP_SUBTRACT_IMM = Opcode(0x05) // subtract.imm
	OP_SUBTRACT_REG = Opcode(0x06) // subtract.reg
	OP_MULTIPLY_IMM = Opcode(0x07) // multiply.imm
	OP_MULTIPLY_REG = Opcode(0x08) // multiply.reg
	OP_DIVIDE_IMM   = Opcode(0x09) // divide.imm
	OP_DIVIDE_REG   = Opcode(0x0a) // divide.reg
	OP_GT_IMM       = Opcode(0x0b) // greater_than.imm
	OP_GT_REG       = Opcode(0x0c) // greater_than.reg
	OP_LT_IMM       = Opcode(0x0d) // less_than.imm
	OP_LT_REG       = Opcode(0x0e) // less_than.reg
)

// Encoded operand widths, in bytes.
const (
	OPCODE_SIZE    = 1
	REGISTER_SIZE  = 1
	IMMEDIATE_SIZE = 4
	ADDRESS_SIZE   = 4
)

// Valid returns true if the opcode is part of the instruction set.
func (op Opcode) Valid() bool {
	return op <= OP_LT_REG
}

// Arithmetic returns true for the immediate/register arithmetic and
// comparison pairs.
func (op Opcode) Arithmetic() bool {
	return op >= OP_ADD_IMM && op <= OP_LT_REG
}

// Immediate returns true if the opcode carries a 32-bit immediate operand.
func (op Opcode) Immediate() bool {
	switch op {
	case OP_LOAD_IMM, OP_JUMP_IMM:
		return true
	}
	return op.Arithmetic() && (op-OP_ADD_IMM)%2 == 0
}

// Size returns the encoded length of the instruction in bytes, or 0 for an
// invalid opcode.
func (op Opcode) Size() int {
	switch {
	case op == OP_NOOP:
		return OPCODE_SIZE
	case op == OP_LOAD_IMM:
		return OPCODE_SIZE + REGISTER_SIZE + IMMEDIATE_SIZE
	case op == OP_JUMP_IMM:
		return OPCODE_SIZE + ADDRESS_SIZE
	case op.Arithmetic() && op.Immediate():
		return OPCODE_SIZE + REGISTER_SIZE + IMMEDIATE_SIZE
	case op.Arithmetic():
		return OPCODE_SIZE + REGISTER_SIZE + REGISTER_SIZE
	}
	return 0
}

// ArithmeticPair holds the immediate and register variants of one
// arithmetic or comparison operation.
type ArithmeticPair struct {
	Immediate Opcode
	Register  Opcode
}

// Select returns the variant for the operand mode.
func (pair ArithmeticPair) Select(immediate bool) Opcode {
	if immediate {
		return pair.Immediate
	}
	return pair.Register
}

// Arithmetic operation pairs.
var (
	ADD          = ArithmeticPair{OP_ADD_IMM, OP_ADD_REG}
	SUBTRACT     = ArithmeticPair{OP_SUBTRACT_IMM, OP_SUBTRACT_REG}
	MULTIPLY     = ArithmeticPair{OP_MULTIPLY_IMM, OP_MULTIPLY_REG}
	DIVIDE       = ArithmeticPair{OP_DIVIDE_IMM, OP_DIVIDE_REG}
	GREATER_THAN = ArithmeticPair{OP_GT_IMM, OP_GT_REG}
	LESS_THAN    = ArithmeticPair{OP_LT_IMM, OP_LT_REG}
)
