// Package asm implements the assembler for the corevm bytecode.
//
// The assembler reads a small textual language one block at a time. A block
// is either a label definition (`name:`) or a single instruction:
//
//	load <reg> <int>
//	jump <label>
//	noop
//	add|subtract|multiply|divide|greater_than|less_than <reg> <int-or-reg>
//
// Labels may be used before they are defined. A forward use reserves a
// 4-byte slot in the output which is patched as soon as the label becomes
// known; any use still pending at the end of assembly is an error.
//
// Anywhere an integer is accepted, a compile-time expression `$(...)` may be
// used instead. Expressions are evaluated with Starlark and may refer to
// predefined names and to labels that are already defined. Parentheses inside
// quoted strings do not end the expression.
package asm
