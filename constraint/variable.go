package constraint

import (
	"fmt"

	"github.com/ezrec/corevm/isa"
)

// Variable is a solver column.
type Variable struct {
	Name  string // Display name.
	Index uint   // Column index in the solver table.
}

// RegisterVariable returns the variable tracking a machine register.
func RegisterVariable(reg isa.Register) Variable {
	return Variable{Name: reg.String(), Index: uint(reg)}
}

func (v Variable) String() string {
	if len(v.Name) == 0 {
		return fmt.Sprintf("x%d", v.Index)
	}
	return v.Name
}
