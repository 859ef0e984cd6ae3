package asm

import (
	"errors"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// EXPR_STEP_LIMIT bounds the work done by a single $(...) expression.
const EXPR_STEP_LIMIT = 1 << 16

var errExprNotInteger = errors.New(f("result is not a 64-bit integer"))

// evaluate does compile-time $(...) evaluations.
func (asm *Assembler) evaluate(expr string) (value uint32, err error) {
	defer func() {
		if err != nil {
			err = &ErrParseExpression{Expr: expr, Err: err}
		}
	}()

	thread := starlark.Thread{Name: "expr"}
	thread.SetMaxExecutionSteps(EXPR_STEP_LIMIT)
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for name, symbol := range asm.Symbols() {
		pred[name] = starlark.MakeInt64(symbol)
	}

	result, err := starlark.EvalOptions(&opts, &thread, "expr", expr, pred)
	if err != nil {
		return
	}

	st_int, ok := result.(starlark.Int)
	if !ok {
		err = errExprNotInteger
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = errExprNotInteger
		return
	}

	value = uint32(st_int64)
	return
}
