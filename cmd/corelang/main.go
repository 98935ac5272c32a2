// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/corelang/cpu"
	"github.com/ezrec/corelang/emulator"
	"github.com/ezrec/corelang/host"
)

func main() {
	var verbose bool
	var debug bool
	var noraw bool
	var memory int
	var seed uint64
	var include string

	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&debug, "debug", false, "Stop at brk instructions")
	flag.BoolVar(&noraw, "noraw", false, "Do not use raw terminal mode for getkey")
	flag.IntVar(&memory, "mem", cpu.MEMORY_SIZE, "Memory cells")
	flag.Uint64Var(&seed, "seed", 0, "Random seed, for repeatable runs")
	flag.StringVar(&include, "I", "", "Directory for programs and imports")

	flag.Parse()

	if flag.NArg() > 1 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args()[1:])
	}

	if memory < cpu.MEMORY_MIN {
		log.Fatalf("%v: -mem must be at least %v", os.Args[0], cpu.MEMORY_MIN)
	}

	h := host.New(os.Stdin, os.Stdout)
	h.Raw = !noraw
	flag.Visit(func(fl *flag.Flag) {
		if fl.Name == "seed" {
			h.Seed(seed)
		}
	})

	emu := emulator.NewEmulator(h, host.Dir(include))
	emu.Verbose = verbose
	emu.MemorySize = memory

	sh := newShell(emu)
	defer sh.Close()

	if debug {
		emu.Breakpoint = sh.breakpoint
	}

	var code int
	if flag.NArg() == 1 {
		code = exitStatus(emu.RunFile(flag.Arg(0)))
	} else {
		code = sh.Run()
	}

	sh.Close()
	os.Exit(code)
}

// exitStatus maps a run result to a process status. Runtime errors have
// already been reported by the emulator.
func exitStatus(err error) int {
	if err == nil {
		return 0
	}

	var exit cpu.ErrExit
	if errors.As(err, &exit) {
		if exit.Err != nil {
			fmt.Printf("------ %v\n", exit.Err)
		}
		return exit.Code
	}

	var rt *emulator.ErrRuntime
	if !errors.As(err, &rt) {
		log.Print(err)
	}
	return 1
}

// haltCode returns the process status when err halts the process. In the
// REPL an exit only leaves the REPL, while a ret with an empty stack still
// halts.
func haltCode(err error, repl bool) (code int, halt bool) {
	var exit cpu.ErrExit
	if !errors.As(err, &exit) {
		return
	}
	if repl && !errors.Is(err, cpu.ErrReturnEmpty) {
		return
	}
	return exit.Code, true
}
