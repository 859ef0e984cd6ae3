package constraint

import (
	"errors"

	"github.com/ezrec/corevm/translate"
)

var f = translate.From

var (
	ErrComparisonInvalid = errors.New(f("comparison invalid"))
)

// ErrPathRow is returned when a path constraint could not be added to a
// table.
type ErrPathRow struct {
	Row int   // Index of the constraint in the path.
	Err error // Error from the table or the constraint.
}

func (err *ErrPathRow) Error() string {
	return f("row %d: %v", err.Row, err.Err)
}

func (err *ErrPathRow) Unwrap() error {
	return err.Err
}
