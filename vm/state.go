// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package vm

import (
	"encoding/binary"
	"fmt"
	"log"
	"slices"
	"sync/atomic"

	"github.com/ezrec/corevm/isa"
)

// segment is a memory segment shared by one or more states.
type segment struct {
	data []byte
	refs atomic.Int32 // Number of states referencing the segment.
}

func newSegment(data []byte) (mem *segment) {
	mem = &segment{data: data}
	mem.refs.Store(1)
	return
}

// State is a machine state: a register file and a memory segment.
//
// The register file is always private to a State. The memory segment may be
// shared with states forked from (or forking) this one, and is copied the
// first time this State writes to it while it is still shared.
//
// A State is not safe for concurrent use, but forks of one State may be
// handed to different goroutines.
type State struct {
	Verbose   bool         // If set, logs fork and copy events.
	Registers RegisterFile // Register file.

	memory *segment
}

// NewState creates a state that takes ownership of memory. All registers
// are zero and concrete.
func NewState(memory []byte) (s *State) {
	s = &State{
		memory: newSegment(memory),
	}

	return
}

// Fork creates a new state with a copy of the registers and a shared
// reference to the memory segment.
func (s *State) Fork() (fork *State) {
	fork = &State{
		Verbose:   s.Verbose,
		Registers: s.Registers,
		memory:    s.memory,
	}

	if s.memory != nil {
		refs := s.memory.refs.Add(1)
		if s.Verbose {
			log.Printf("vm: fork, segment shared by %v", refs)
		}
	}

	return
}

// Release drops this state's reference to its memory segment. A sibling
// that is left as the only holder may then write without copying. Memory
// operations on a released state fail with ErrStateReleased.
func (s *State) Release() {
	if s.memory == nil {
		return
	}

	s.memory.refs.Add(-1)
	s.memory = nil
}

// Shared returns true if the memory segment must be copied before this
// state may write to it.
func (s *State) Shared() bool {
	return s.memory != nil && s.memory.refs.Load() > 1
}

// Materialize gives this state a private copy of its memory segment if the
// segment is shared. The other holders keep sharing the original.
//
// Every write to the memory segment must be preceded by Materialize.
func (s *State) Materialize() {
	mem := s.memory
	if mem == nil || mem.refs.Load() <= 1 {
		return
	}

	data := slices.Clone(mem.data)
	mem.refs.Add(-1)
	s.memory = newSegment(data)

	if s.Verbose {
		log.Printf("vm: materialize %v bytes", len(data))
	}
}

// Size returns the size of the memory segment in bytes.
func (s *State) Size() int {
	if s.memory == nil {
		return 0
	}
	return len(s.memory.data)
}

// Memory returns the memory segment. The slice must not be written to; use
// Mutate or the Store methods instead.
func (s *State) Memory() []byte {
	if s.memory == nil {
		return nil
	}
	return s.memory.data
}

// span checks that size bytes at addr are inside the memory segment.
func (s *State) span(addr uint32, size int) (data []byte, err error) {
	if s.memory == nil {
		err = ErrStateReleased
		return
	}

	data = s.memory.data
	if uint64(addr)+uint64(size) > uint64(len(data)) {
		data = nil
		err = ErrAddressRange
		return
	}

	data = data[int(addr) : int(addr)+size]
	return
}

// Load8 reads a byte of memory.
func (s *State) Load8(addr uint32) (value uint8, err error) {
	data, err := s.span(addr, 1)
	if err != nil {
		return
	}

	value = data[0]
	return
}

// Load32 reads a little-endian 32-bit value from memory.
func (s *State) Load32(addr uint32) (value uint32, err error) {
	data, err := s.span(addr, 4)
	if err != nil {
		return
	}

	value = binary.LittleEndian.Uint32(data)
	return
}

// Write copies data into memory at addr.
func (s *State) Write(addr uint32, data []byte) (err error) {
	_, err = s.span(addr, len(data))
	if err != nil {
		return
	}

	if len(data) == 0 {
		return
	}

	s.Materialize()
	copy(s.memory.data[addr:], data)

	return
}

// Store8 writes a byte of memory.
func (s *State) Store8(addr uint32, value uint8) error {
	return s.Write(addr, []byte{value})
}

// Store32 writes a little-endian 32-bit value to memory.
func (s *State) Store32(addr uint32, value uint32) error {
	return s.Write(addr, binary.LittleEndian.AppendUint32(nil, value))
}

// Mutate calls fn with a writable view of the memory segment.
func (s *State) Mutate(fn func(memory []byte)) (err error) {
	if s.memory == nil {
		err = ErrStateReleased
		return
	}

	s.Materialize()
	fn(s.memory.data)

	return
}

// Register returns a register.
func (s *State) Register(id isa.Register) Slot {
	return s.Registers.Get(id)
}

// SetRegister sets the value of a register. The symbolic flag is not
// changed.
func (s *State) SetRegister(id isa.Register, value int32) {
	s.Registers.Set(id, value)
}

// MarkSymbolic flags a register as symbolic. Its value is not changed.
func (s *State) MarkSymbolic(id isa.Register) {
	s.Registers.MarkSymbolic(id)
}

// ClearSymbolic returns a register to concrete tracking.
func (s *State) ClearSymbolic(id isa.Register) {
	s.Registers.ClearSymbolic(id)
}

// String returns the register file as a string.
func (s *State) String() (text string) {
	for id, slot := range s.Registers {
		val := uint32(slot.Value)
		strval := fmt.Sprintf("%04X_%04X", val>>16, val&0xffff)
		if slot.Symbolic {
			strval += " symbolic"
		}
		text += fmt.Sprintf("% 5s: %v\n", isa.Register(id), strval)
	}

	shared := "private"
	if s.Shared() {
		shared = "shared"
	}
	text += fmt.Sprintf("% 5s: %v bytes %v\n", "mem", s.Size(), shared)

	return
}
