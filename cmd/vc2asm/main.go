// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ezrec/vc2asm/asm"
	"github.com/ezrec/vc2asm/diag"
	"github.com/ezrec/vc2asm/translate"
	"github.com/ezrec/vc2asm/vm"
)

func main() {
	var output string
	var listing bool
	var dumpAst bool
	var sorted bool
	var run bool
	var memory int
	var ticks int
	var verbose bool

	assembler := &asm.Assembler{}

	flag.StringVar(&output, "o", "", "Output binary file")
	flag.Func("D", "Define a constant, NAME=EXPR (repeatable)", func(def string) error {
		name, expr, ok := strings.Cut(def, "=")
		if !ok {
			return errors.New("expected NAME=EXPR")
		}
		return assembler.Predefine(strings.TrimSpace(name), expr)
	})
	flag.Func("lang", "Message languages, a comma separated BCP 47 preference list", func(langs string) error {
		translate.SetLocales(strings.Split(langs, ",")...)
		return nil
	})
	flag.BoolVar(&listing, "l", false, "Print a listing of the assembled program")
	flag.BoolVar(&dumpAst, "ast", false, "Print the parsed lines")
	flag.BoolVar(&sorted, "s", false, "Report diagnostics in source order, not by stage")
	flag.BoolVar(&run, "run", false, "Execute the program in the reference VM")
	flag.IntVar(&memory, "m", vm.MEMORY_DEFAULT, "VM memory size, in bytes")
	flag.IntVar(&ticks, "t", 1_000_000, "VM instruction limit, 0 for none")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: expected one source file, got %v", os.Args[0], flag.Args())
	}
	filename := flag.Arg(0)

	data, err := os.ReadFile(filename)
	if err != nil {
		log.Fatalf("%v: %v", filename, err)
	}
	source := string(data)

	assembler.Verbose = verbose

	if dumpAst {
		lines, _ := assembler.Parse(source)
		for _, line := range lines {
			fmt.Printf("%v:%v: %v\n", filename, line.Position(), line)
		}
	}

	prog, diags := assembler.Assemble(source, filename)
	if sorted {
		diags.Sort()
	}
	fmt.Fprint(os.Stderr, diags.Render(source, filename))

	if listing {
		printListing(os.Stdout, prog, source)
	}

	if len(output) != 0 {
		err = os.WriteFile(output, prog.Binary(), 0o644)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
	}

	if err := diags.Err(); err != nil {
		log.Fatalf("%v: %v", filename, err)
	}

	if run {
		machine := vm.NewMachine(memory)
		machine.Verbose = verbose
		err = machine.Reset(prog.Binary())
		if err == nil {
			err = machine.Run(ticks)
		}
		if err != nil {
			var rt *vm.ErrRuntime
			if errors.As(err, &rt) {
				if dbg := prog.Debug(rt.Address); dbg.Opcode != nil {
					log.Fatalf("%v:%v: %v", filename, dbg.Pos, err)
				}
			}
			log.Fatalf("%v: %v", filename, err)
		}
		fmt.Print(machine.String())
	}
}

// printListing prints one line per instruction: address, encoded bytes,
// disassembly, and the source line.
func printListing(w io.Writer, prog *asm.Program, source string) {
	for _, op := range prog.Opcodes {
		code := op.Code.Append(nil)
		hex := make([]string, len(code))
		for n, b := range code {
			hex[n] = fmt.Sprintf("%02x", b)
		}
		fmt.Fprintf(w, "%04x  %-33s %-24v ; %v\n", op.Address, strings.Join(hex, " "), op.Code, strings.TrimSpace(diag.SourceLine(source, op.Pos.Offset)))
	}
}
