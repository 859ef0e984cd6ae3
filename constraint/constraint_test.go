package constraint

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/corevm/isa"
	"github.com/ezrec/corevm/vm"
)

type row struct {
	items []Item
	cmp   Comparison
	value float64
}

// recorder is a Table that keeps every row added to it.
type recorder struct {
	rows []row
	fail error
}

func (r *recorder) AddRow(items []Item, cmp Comparison, value float64) error {
	if r.fail != nil {
		return r.fail
	}
	r.rows = append(r.rows, row{items: items, cmp: cmp, value: value})
	return nil
}

func TestComparison(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		cmp    Comparison
		text   string
		negate Comparison
	}){
		{CMP_INVALID, "invalid", CMP_INVALID},
		{CMP_EQ, "==", CMP_NE},
		{CMP_NE, "!=", CMP_EQ},
		{CMP_LT, "<", CMP_GE},
		{CMP_GT, ">", CMP_LE},
		{CMP_GE, ">=", CMP_LT},
		{CMP_LE, "<=", CMP_GT},
		{Comparison(7), "Comparison(7)", CMP_INVALID},
		{Comparison(-1), "Comparison(-1)", CMP_INVALID},
	}

	for _, entry := range table {
		assert.Equal(entry.text, entry.cmp.String())
		assert.Equal(entry.negate, entry.cmp.Negate(), entry.text)
		if entry.cmp.Valid() {
			assert.Equal(entry.cmp, entry.cmp.Negate().Negate(), entry.text)
		}
	}
}

func TestConstraintString(t *testing.T) {
	assert := assert.New(t)

	r0 := RegisterVariable(isa.REG_R0)
	r1 := RegisterVariable(isa.REG_R1)

	c := New(5).AddItem(r0, 1).AddItem(r1, -2).SetComparison(CMP_LE)
	assert.Equal("r0 - 2*r1 <= 5", c.String())

	c = New(0).AddItem(r1, -1).AddItem(Variable{Index: 9}, 0.5).SetComparison(CMP_GT)
	assert.Equal("-r1 + 0.5*x9 > 0", c.String())

	c = New(3).SetResult(-4)
	assert.Equal("0 invalid -4", c.String())
}

func TestConstraintAddToTable(t *testing.T) {
	assert := assert.New(t)

	r2 := RegisterVariable(isa.REG_R2)
	assert.Equal(Variable{Name: "r2", Index: 2}, r2)

	c := New(10).AddItem(r2, 3).SetComparison(CMP_LT)

	table := &recorder{}
	assert.NoError(c.AddToTable(table, CMP_INVALID))
	assert.NoError(c.AddToTable(table, CMP_GE))

	assert.Equal([]row{
		{items: []Item{{r2, 3}}, cmp: CMP_LT, value: 10},
		{items: []Item{{r2, 3}}, cmp: CMP_GE, value: 10},
	}, table.rows)

	// Rows are independent of later changes to the constraint.
	c.AddItem(r2, 1)
	assert.Len(table.rows[0].items, 1)

	err := New(1).AddToTable(table, CMP_INVALID)
	assert.ErrorIs(err, ErrComparisonInvalid)
	assert.Len(table.rows, 2)

	err = New(1).AddToTable(table, Comparison(42))
	assert.ErrorIs(err, ErrComparisonInvalid)
}

func TestPath(t *testing.T) {
	assert := assert.New(t)

	r0 := RegisterVariable(isa.REG_R0)

	var path Path
	path.Add(New(0).AddItem(r0, 1).SetComparison(CMP_GE))

	cond := New(100).AddItem(r0, 1).SetComparison(CMP_GT)
	taken, untaken := path.Branch(cond)

	assert.Equal(1, path.Len())
	assert.Equal(2, taken.Len())
	assert.Equal(2, untaken.Len())
	assert.Equal("r0 >= 0\nr0 > 100", taken.String())
	assert.Equal("r0 >= 0\nr0 <= 100", untaken.String())

	// Branches do not share constraints.
	for _, c := range taken.All() {
		c.SetResult(-1)
	}
	assert.Equal("r0 >= 0\nr0 <= 100", untaken.String())
	assert.Equal("r0 >= 0", path.String())
	assert.Equal(CMP_GT, cond.Comparison)

	table := &recorder{}
	assert.NoError(untaken.AddToTable(table))
	assert.Len(table.rows, 2)
	assert.Equal(CMP_LE, table.rows[1].cmp)
}

func TestPathAddToTableError(t *testing.T) {
	assert := assert.New(t)

	var path Path
	path.Add(New(1).SetComparison(CMP_EQ))
	path.Add(New(2))

	table := &recorder{}
	err := path.AddToTable(table)
	assert.ErrorIs(err, ErrComparisonInvalid)

	var rowErr *ErrPathRow
	assert.True(errors.As(err, &rowErr))
	assert.Equal(1, rowErr.Row)
	assert.Len(table.rows, 1)

	boom := errors.New("tableau full")
	err = path.AddToTable(&recorder{fail: boom})
	assert.ErrorIs(err, boom)
	assert.Equal("row 0: tableau full", err.Error())
}

// TestPathFork follows a machine state fork with a path branch.
func TestPathFork(t *testing.T) {
	assert := assert.New(t)

	state := vm.NewState(make([]byte, 16))
	state.MarkSymbolic(isa.REG_R1)

	var path Path
	symbolic := func(s *vm.State) (c *Constraint) {
		c = New(0)
		for id, slot := range s.Registers {
			if slot.Symbolic {
				c.AddItem(RegisterVariable(isa.Register(id)), 1)
			}
		}
		return
	}

	cond := symbolic(state).SetResult(10).SetComparison(CMP_LT)
	taken, untaken := path.Branch(cond)
	fork := state.Fork()
	fork.SetRegister(isa.REG_R1, 10)

	assert.Equal("r1 < 10", taken.String())
	assert.Equal("r1 >= 10", untaken.String())
	assert.True(fork.Register(isa.REG_R1).Symbolic)
	assert.Equal(int32(0), state.Register(isa.REG_R1).Value)
}
