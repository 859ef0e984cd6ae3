package constraint

import (
	"fmt"
	"slices"
	"strings"
)

// Item is a single term of a constraint: a variable times a multiplier.
type Item struct {
	Variable   Variable
	Multiplier float64
}

// Table is the sink of a solver: one row per constraint.
type Table interface {
	AddRow(items []Item, cmp Comparison, value float64) error
}

// Constraint is a linear relation `sum(items) cmp value`.
type Constraint struct {
	Items      []Item
	Comparison Comparison
	Value      float64
}

// New creates an empty constraint with a right hand side of value.
func New(value float64) *Constraint {
	return &Constraint{Value: value}
}

// AddItem appends a term to the left hand side.
func (c *Constraint) AddItem(v Variable, multiplier float64) *Constraint {
	c.Items = append(c.Items, Item{Variable: v, Multiplier: multiplier})
	return c
}

// SetResult sets the right hand side.
func (c *Constraint) SetResult(value float64) *Constraint {
	c.Value = value
	return c
}

// SetComparison sets the relation.
func (c *Constraint) SetComparison(cmp Comparison) *Constraint {
	c.Comparison = cmp
	return c
}

// Clone returns a deep copy of the constraint.
func (c *Constraint) Clone() *Constraint {
	return &Constraint{
		Items:      slices.Clone(c.Items),
		Comparison: c.Comparison,
		Value:      c.Value,
	}
}

// Negated returns a copy of the constraint with the comparison negated.
func (c *Constraint) Negated() *Constraint {
	neg := c.Clone()
	neg.Comparison = c.Comparison.Negate()
	return neg
}

// AddToTable adds the constraint as a row of table. If override is not
// CMP_INVALID it is used instead of the constraint's own comparison.
func (c *Constraint) AddToTable(table Table, override Comparison) (err error) {
	cmp := c.Comparison
	if override != CMP_INVALID {
		cmp = override
	}

	if !cmp.Valid() {
		err = ErrComparisonInvalid
		return
	}

	return table.AddRow(slices.Clone(c.Items), cmp, c.Value)
}

func (c *Constraint) String() string {
	var text strings.Builder

	if len(c.Items) == 0 {
		text.WriteString("0")
	}

	for n, item := range c.Items {
		mul := item.Multiplier
		switch {
		case n == 0 && mul < 0:
			text.WriteString("-")
			mul = -mul
		case n == 0:
		case mul < 0:
			text.WriteString(" - ")
			mul = -mul
		default:
			text.WriteString(" + ")
		}
		if mul != 1 {
			fmt.Fprintf(&text, "%g*", mul)
		}
		text.WriteString(item.Variable.String())
	}

	fmt.Fprintf(&text, " %v %g", c.Comparison, c.Value)

	return text.String()
}
