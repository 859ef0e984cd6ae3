package vm

import (
	"errors"

	"github.com/ezrec/corevm/isa"
	"github.com/ezrec/corevm/translate"
)

var f = translate.From

var (
	ErrAddressRange  = errors.New(f("address out of range"))
	ErrStateReleased = errors.New(f("state released"))
)

// ErrRegisterInvalid is the panic value for an out of range register id.
type ErrRegisterInvalid isa.Register

func (err ErrRegisterInvalid) Error() string {
	return f("register %d invalid", uint8(err))
}
