package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/ezrec/corevm/asm"
)

// writeListing prints one line per instruction: offset, encoded bytes and
// source words. Labels are printed on their own line before the instruction
// at their offset.
func writeListing(out io.Writer, prog *asm.Program) {
	printed := map[string]bool{}

	for offset, ins := range prog.Instructions() {
		for _, name := range prog.LabelsAt(offset) {
			fmt.Fprintf(out, "%04x: %v:\n", offset, name)
			printed[name] = true
		}
		fmt.Fprintf(out, "%04x: %-18s %v\n", offset, fmt.Sprintf("% x", prog.Bytes(ins)), strings.Join(ins.Words, " "))
	}

	// Labels at the end of the program.
	for _, name := range prog.Symbols() {
		if !printed[name] {
			fmt.Fprintf(out, "%04x: %v:\n", prog.Labels[name], name)
		}
	}
}
