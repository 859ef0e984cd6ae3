package asm

import (
	"cmp"
	"iter"
	"maps"
	"slices"

	"github.com/ezrec/corevm/isa"
)

// Instruction is the listing entry for one encoded instruction.
type Instruction struct {
	Offset uint32     // Bytecode offset of the opcode.
	LineNo int        // Source line.
	Words  []string   // Source tokens of the instruction.
	Opcode isa.Opcode // Encoded opcode.
	Label  string     // Jump target label, if any.
}

// Size returns the encoded length of the instruction.
func (ins *Instruction) Size() int {
	return ins.Opcode.Size()
}

// Program is the output of a successful assembly.
type Program struct {
	Code    []byte            // Bytecode.
	Labels  map[string]uint32 // Label offsets.
	Listing []Instruction     // Encoded instructions, in order.
}

// Debug locates the instruction covering a bytecode offset.
type Debug struct {
	*Instruction
	Index int // Byte index within the instruction.
}

// Debug returns the instruction that covers offset. The Instruction is nil
// if no instruction covers it.
func (prog *Program) Debug(offset uint32) (dbg Debug) {
	n, found := slices.BinarySearchFunc(prog.Listing, offset, func(ins Instruction, offset uint32) int {
		return cmp.Compare(ins.Offset, offset)
	})
	if !found {
		n--
	}
	if n < 0 {
		return
	}

	ins := &prog.Listing[n]
	if offset >= ins.Offset+uint32(ins.Size()) {
		return
	}

	dbg = Debug{
		Instruction: ins,
		Index:       int(offset - ins.Offset),
	}
	return
}

// Binary returns a copy of the bytecode.
func (prog *Program) Binary() []byte {
	return slices.Clone(prog.Code)
}

// Instructions iterates over the listing by offset.
func (prog *Program) Instructions() iter.Seq2[uint32, Instruction] {
	return func(yield func(offset uint32, ins Instruction) bool) {
		for _, ins := range prog.Listing {
			if !yield(ins.Offset, ins) {
				return
			}
		}
	}
}

// Bytes returns the encoded bytes of one listed instruction.
func (prog *Program) Bytes(ins Instruction) []byte {
	end := int(ins.Offset) + ins.Size()
	return prog.Code[ins.Offset:end:end]
}

// LabelsAt returns the names of labels defined at offset, sorted.
func (prog *Program) LabelsAt(offset uint32) (names []string) {
	for name, at := range prog.Labels {
		if at == offset {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return
}

// Symbols returns the label names ordered by offset, then name.
func (prog *Program) Symbols() []string {
	return slices.SortedFunc(maps.Keys(prog.Labels), func(a, b string) int {
		return cmp.Or(cmp.Compare(prog.Labels[a], prog.Labels[b]), cmp.Compare(a, b))
	})
}
