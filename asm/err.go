package asm

import (
	"strings"

	"github.com/ezrec/corevm/translate"
)

var f = translate.From

// ErrAssemble locates an assembly failure in the source and in the output.
type ErrAssemble struct {
	Offset uint32 // Bytecode offset the failing block would have started at.
	LineNo int    // Source line.
	Token  Token  // Token at which the failure was detected.
	Err    error
}

func (err *ErrAssemble) Error() string {
	return f("line %d offset %#x near %v: %v", err.LineNo, err.Offset, err.Token, err.Err)
}

func (err *ErrAssemble) Unwrap() error {
	return err.Err
}

// ErrCharacter is an unrecognized character (or an unterminated expression).
type ErrCharacter string

func (err ErrCharacter) Error() string {
	return f("invalid character %q", string(err))
}

// ErrSyntax is an unexpected token at a grammar position.
type ErrSyntax struct {
	Expected []Kind
	Actual   Token
}

func (err *ErrSyntax) Error() string {
	names := make([]string, len(err.Expected))
	for n, kind := range err.Expected {
		names[n] = kind.String()
	}
	return f("expected %v, not %v", strings.Join(names, " or "), err.Actual)
}

// ErrRegisterUndefined is an identifier that does not name a register.
type ErrRegisterUndefined string

func (err ErrRegisterUndefined) Error() string {
	return f("register %v undefined", string(err))
}

// ErrLabelDuplicate is a second definition of a label.
type ErrLabelDuplicate string

func (err ErrLabelDuplicate) Error() string {
	return f("label %v duplicated", string(err))
}

// ErrLabelUnresolved is a label still referenced, but never defined, at the
// end of assembly.
type ErrLabelUnresolved struct {
	Label string // First dangling label.
	Uses  int    // Number of pending uses of Label.
}

func (err *ErrLabelUnresolved) Error() string {
	return f("label %v missing, %v uses unresolved", err.Label, err.Uses)
}

// ErrParseNumber is an integer literal that cannot be parsed.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrParseExpression is a `$(...)` expression that failed to evaluate to an
// integer.
type ErrParseExpression struct {
	Expr string
	Err  error
}

func (err *ErrParseExpression) Error() string {
	if err.Err != nil {
		return f("$(%v) is not a valid expression: %v", err.Expr, err.Err)
	}
	return f("$(%v) is not a valid expression", err.Expr)
}

func (err *ErrParseExpression) Unwrap() error {
	return err.Err
}
