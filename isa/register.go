package isa

// Register is a machine register id.
type Register uint8

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_R0 = Register(0) // r0
	REG_R1 = Register(1) // r1
	REG_R2 = Register(2) // r2
	REG_R3 = Register(3) // r3
	REG_R4 = Register(4) // r4
	REG_R5 = Register(5) // r5
	REG_R6 = Register(6) // r6
	REG_R7 = Register(7) // r7
)

// REGISTER_COUNT is the size of the register file.
const REGISTER_COUNT = 8

// registerMap maps register names to ids.
var registerMap = func() map[string]Register {
	regs := make(map[string]Register, REGISTER_COUNT)
	for id := range Register(REGISTER_COUNT) {
		regs[id.String()] = id
	}
	return regs
}()

// LookupRegister returns the register with the given assembly name.
func LookupRegister(name string) (reg Register, ok bool) {
	reg, ok = registerMap[name]
	return
}

// Valid returns true if the id names a register in the register file.
func (reg Register) Valid() bool {
	return reg < REGISTER_COUNT
}
