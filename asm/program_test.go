package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/corevm/isa"
)

func testProgram(t *testing.T) *Program {
	asm := &Assembler{}
	prog, err := asm.Assemble("top:\nload r0 16\nadd r0 r1\nnoop\njump top\n")
	if err != nil {
		t.Fatal(err)
	}
	return prog
}

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram(t)

	dbg := prog.Debug(0)
	assert.NotNil(dbg.Instruction)
	assert.Equal(2, dbg.LineNo)
	assert.Equal(0, dbg.Index)

	dbg = prog.Debug(5)
	assert.NotNil(dbg.Instruction)
	assert.Equal(isa.OP_LOAD_IMM, dbg.Opcode)
	assert.Equal(5, dbg.Index)

	dbg = prog.Debug(7)
	assert.NotNil(dbg.Instruction)
	assert.Equal(isa.OP_ADD_REG, dbg.Opcode)
	assert.Equal(1, dbg.Index)

	dbg = prog.Debug(9)
	assert.NotNil(dbg.Instruction)
	assert.Equal(isa.OP_NOOP, dbg.Opcode)
	assert.Equal(0, dbg.Index)

	dbg = prog.Debug(14)
	assert.NotNil(dbg.Instruction)
	assert.Equal("top", dbg.Label)
	assert.Equal(4, dbg.Index)
}

func TestProgram_Debug_NotFound(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram(t)

	dbg := prog.Debug(15)
	assert.Nil(dbg.Instruction)
	assert.Equal(0, dbg.Index)

	dbg = (&Program{}).Debug(0)
	assert.Nil(dbg.Instruction)
}

func TestProgram_Binary(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram(t)

	bin := prog.Binary()
	assert.Equal(prog.Code, bin)
	bin[0] = 0xff
	assert.Equal(byte(isa.OP_LOAD_IMM), prog.Code[0])
	assert.Len(bin, 15)
}

func TestProgram_Instructions(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram(t)

	var offsets []uint32
	var encoded [][]byte
	for offset, ins := range prog.Instructions() {
		offsets = append(offsets, offset)
		encoded = append(encoded, prog.Bytes(ins))
	}

	assert.Equal([]uint32{0, 6, 9, 10}, offsets)
	assert.Equal([][]byte{
		{0x01, 0x00, 0x10, 0x00, 0x00, 0x00},
		{0x04, 0x00, 0x01},
		{0x00},
		{0x02, 0x00, 0x00, 0x00, 0x00},
	}, encoded)

	for offset := range prog.Instructions() {
		assert.Equal(uint32(0), offset)
		break
	}
}

func TestProgram_LabelsAt(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.Assemble("b: a: noop\nc: noop\n")
	assert.NoError(err)

	assert.Equal([]string{"a", "b"}, prog.LabelsAt(0))
	assert.Equal([]string{"c"}, prog.LabelsAt(1))
	assert.Empty(prog.LabelsAt(2))
	assert.Equal([]string{"a", "b", "c"}, prog.Symbols())
}
