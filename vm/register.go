package vm

import (
	"iter"

	"github.com/ezrec/corevm/isa"
)

// Slot is a single register.
type Slot struct {
	Value    int32 // Concrete value.
	Symbolic bool  // If set, Value is not trusted.
}

// RegisterFile is the fixed set of registers of a machine state. It has value
// semantics: assigning a RegisterFile copies every register.
type RegisterFile [isa.REGISTER_COUNT]Slot

// checkRegister panics if id is not a register.
func checkRegister(id isa.Register) {
	if !id.Valid() {
		panic(ErrRegisterInvalid(id))
	}
}

// Get returns a register.
func (rf *RegisterFile) Get(id isa.Register) Slot {
	checkRegister(id)
	return rf[id]
}

// Set sets the value of a register. The symbolic flag is not changed.
func (rf *RegisterFile) Set(id isa.Register, value int32) {
	checkRegister(id)
	rf[id].Value = value
}

// MarkSymbolic sets the symbolic flag of a register.
func (rf *RegisterFile) MarkSymbolic(id isa.Register) {
	checkRegister(id)
	rf[id].Symbolic = true
}

// ClearSymbolic clears the symbolic flag of a register.
func (rf *RegisterFile) ClearSymbolic(id isa.Register) {
	checkRegister(id)
	rf[id].Symbolic = false
}

// Symbolic iterates over the registers with the symbolic flag set.
func (rf *RegisterFile) Symbolic() iter.Seq[isa.Register] {
	return func(yield func(isa.Register) bool) {
		for id, slot := range rf {
			if slot.Symbolic && !yield(isa.Register(id)) {
				return
			}
		}
	}
}

// Reset zeros every register and clears every symbolic flag.
func (rf *RegisterFile) Reset() {
	clear(rf[:])
}
