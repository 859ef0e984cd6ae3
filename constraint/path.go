package constraint

import (
	"iter"
	"slices"
	"strings"
)

// Path is the ordered conjunction of the constraints collected along one
// execution path. Forking a machine state forks its path with Branch.
type Path struct {
	constraints []*Constraint
}

// Add appends a constraint to the path.
func (p *Path) Add(c *Constraint) {
	p.constraints = append(p.constraints, c)
}

// Len returns the number of constraints on the path.
func (p *Path) Len() int {
	return len(p.constraints)
}

// All iterates over the constraints in the order they were added.
func (p *Path) All() iter.Seq2[int, *Constraint] {
	return slices.All(p.constraints)
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	clone := &Path{constraints: make([]*Constraint, len(p.constraints))}
	for n, c := range p.constraints {
		clone.constraints[n] = c.Clone()
	}
	return clone
}

// Branch splits the path on a condition: taken has c appended, untaken has
// its negation appended. The receiver is not modified.
func (p *Path) Branch(c *Constraint) (taken, untaken *Path) {
	taken = p.Clone()
	taken.Add(c.Clone())

	untaken = p.Clone()
	untaken.Add(c.Negated())

	return
}

// AddToTable adds every constraint of the path to table, stopping at the
// first error.
func (p *Path) AddToTable(table Table) (err error) {
	for n, c := range p.constraints {
		err = c.AddToTable(table, CMP_INVALID)
		if err != nil {
			err = &ErrPathRow{Row: n, Err: err}
			return
		}
	}
	return
}

func (p *Path) String() string {
	lines := make([]string, len(p.constraints))
	for n, c := range p.constraints {
		lines[n] = c.String()
	}
	return strings.Join(lines, "\n")
}
