package isa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcodeSize(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		op   Opcode
		size int
	}){
		{OP_NOOP, 1},
		{OP_LOAD_IMM, 6},
		{OP_JUMP_IMM, 5},
		{OP_ADD_IMM, 6},
		{OP_ADD_REG, 3},
		{OP_SUBTRACT_IMM, 6},
		{OP_SUBTRACT_REG, 3},
		{OP_MULTIPLY_IMM, 6},
		{OP_MULTIPLY_REG, 3},
		{OP_DIVIDE_IMM, 6},
		{OP_DIVIDE_REG, 3},
		{OP_GT_IMM, 6},
		{OP_GT_REG, 3},
		{OP_LT_IMM, 6},
		{OP_LT_REG, 3},
		{Opcode(0x0f), 0},
		{Opcode(0xff), 0},
	}

	for _, entry := range table {
		assert.Equal(entry.size, entry.op.Size(), entry.op.String())
		assert.Equal(entry.size != 0, entry.op.Valid(), entry.op.String())
	}
}

func TestOpcodeString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("noop", OP_NOOP.String())
	assert.Equal("greater_than.reg", OP_GT_REG.String())
	assert.Equal("Opcode(200)", Opcode(200).String())
}

func TestArithmeticPair(t *testing.T) {
	assert := assert.New(t)

	for _, pair := range []ArithmeticPair{ADD, SUBTRACT, MULTIPLY, DIVIDE, GREATER_THAN, LESS_THAN} {
		assert.True(pair.Immediate.Arithmetic())
		assert.True(pair.Register.Arithmetic())
		assert.True(pair.Select(true).Immediate())
		assert.False(pair.Select(false).Immediate())
		assert.Equal(pair.Immediate+1, pair.Register)
	}

	assert.False(OP_NOOP.Arithmetic())
	assert.False(OP_JUMP_IMM.Arithmetic())
	assert.True(OP_JUMP_IMM.Immediate())
}

func TestLookupRegister(t *testing.T) {
	assert := assert.New(t)

	for id := range Register(REGISTER_COUNT) {
		reg, ok := LookupRegister(id.String())
		assert.True(ok)
		assert.Equal(id, reg)
		assert.True(reg.Valid())
	}

	_, ok := LookupRegister("r8")
	assert.False(ok)
	_, ok = LookupRegister("R0")
	assert.False(ok)
	_, ok = LookupRegister("")
	assert.False(ok)

	assert.False(Register(REGISTER_COUNT).Valid())
	assert.Equal("Register(9)", Register(9).String())
}
