// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ezrec/corevm/asm"
	"github.com/ezrec/corevm/image"
)

// predefines collects -D name=value flags.
type predefines map[string]int32

func (pre predefines) String() string {
	return fmt.Sprint(map[string]int32(pre))
}

func (pre predefines) Set(arg string) (err error) {
	name, text, ok := strings.Cut(arg, "=")
	if !ok || len(name) == 0 {
		return fmt.Errorf("expected name=value, not %q", arg)
	}

	value, err := strconv.ParseInt(text, 0, 32)
	if err != nil {
		return
	}

	pre[name] = int32(value)
	return
}

func main() {
	var compile string
	var output string
	var verbose bool
	var listing bool
	var interactive bool
	defines := predefines{}

	flag.StringVar(&compile, "c", "", ".s file to assemble")
	flag.StringVar(&output, "o", "", "Image file output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&listing, "l", false, "Print the program listing")
	flag.BoolVar(&interactive, "i", false, "Interactive incremental assembly")
	flag.Var(defines, "D", "Predefine name=value for $(...) expressions")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	assembler := &asm.Assembler{Verbose: verbose}
	for name, value := range defines {
		assembler.Predefine(name, value)
	}

	var prog *asm.Program

	switch {
	case interactive:
		var err error
		prog, err = repl(assembler)
		if err != nil {
			log.Fatalf("%v: %v", os.Args[0], err)
		}
		if prog == nil {
			return
		}
	case len(compile) != 0:
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		prog, err = assembler.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	default:
		log.Fatalf("%v: one of -c or -i is required", os.Args[0])
	}

	if listing {
		writeListing(os.Stdout, prog)
	}

	if len(output) != 0 {
		err := image.Save(output, prog.Code)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
	}
}
