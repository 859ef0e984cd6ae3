package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/ezrec/corevm/asm"
)

const (
	promptMain = "asm> "
	cmdEnd     = ".end"
	cmdReset   = ".reset"
)

// session is an incremental assembly driven one line at a time.
type session struct {
	asm  *asm.Assembler
	out  io.Writer
	prog *asm.Program // Set once the session is finished.
}

func newSession(assembler *asm.Assembler, out io.Writer) (s *session) {
	s = &session{asm: assembler, out: out}
	s.asm.Reset()
	return
}

// show prints the partially resolved buffer and the pending references.
func (s *session) show() {
	fmt.Fprintf(s.out, "%04x: % x\n", s.asm.Position(), s.asm.Bytes())
	for _, ref := range s.asm.Pending() {
		fmt.Fprintf(s.out, "  pending %v @ %04x (line %d)\n", ref.Label, ref.Offset, ref.LineNo)
	}
}

// handle processes one line of input, and returns true when the session is
// finished.
func (s *session) handle(line string) (done bool) {
	switch strings.TrimSpace(line) {
	case "":
		return
	case cmdEnd:
		prog, err := s.asm.Finish()
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			return
		}
		s.prog = prog
		return true
	case cmdReset:
		s.asm.Reset()
		fmt.Fprintln(s.out, "reset")
		return
	}

	err := s.asm.Feed(line + "\n")
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
	}
	s.show()

	return
}

// repl runs an interactive session on the terminal. A nil Program is
// returned if the input ended before `.end`.
func repl(assembler *asm.Assembler) (prog *asm.Program, err error) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	s := newSession(assembler, os.Stdout)
	fmt.Fprintf(s.out, "%v finishes, %v restarts\n", cmdEnd, cmdReset)

	for {
		var line string
		line, err = ln.Prompt(promptMain)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(s.out)
			return nil, nil
		}
		if err != nil {
			return
		}

		if len(strings.TrimSpace(line)) != 0 {
			ln.AppendHistory(line)
		}

		if s.handle(line) {
			return s.prog, nil
		}
	}
}
