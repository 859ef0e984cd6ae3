// Package isa defines the bytecode contract shared by the assembler and the
// execution engine: opcode bytes, register ids and instruction sizes.
//
// All multi-byte operands are little-endian. Opcodes and register ids are a
// single byte; immediates and jump targets are four bytes.
package isa
