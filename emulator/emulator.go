// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"iter"
	"log"
	"maps"
	"os"
	"strconv"

	"github.com/ezrec/corelang/cpu"
	"github.com/ezrec/corelang/host"
	"github.com/ezrec/corelang/internal"
)

// Platform ids reported by getOS.
var _emulator_defines = map[string]string{
	"OS_WINDOWS": strconv.Itoa(int(host.PLATFORM_WINDOWS)),
	"OS_UNIX":    strconv.Itoa(int(host.PLATFORM_UNIX)),
	"OS_MACOSX":  strconv.Itoa(int(host.PLATFORM_MACOSX)),
	"OS_OTHER":   strconv.Itoa(int(host.PLATFORM_OTHER)),
}

// Emulator state. CPU + assembler + host services.
type Emulator struct {
	Verbose    bool           // If set, enables verbose logging.
	*cpu.Cpu                  // Reference to the CPU simulation.
	Assembler  *cpu.Assembler // Preprocessor for executed source.
	Loader     cpu.LineSource // Source of program and imported files.
	MemorySize int            // Memory cells allocated by Reset.
}

// NewEmulator creates a new emulator.
func NewEmulator(host cpu.Host, loader cpu.LineSource) (emu *Emulator) {
	logger := log.New(os.Stderr, "", 0)

	emu = &Emulator{
		Cpu:        cpu.NewCpu(host),
		Assembler:  &cpu.Assembler{Loader: loader, Log: logger},
		Loader:     loader,
		MemorySize: cpu.MEMORY_SIZE,
	}
	emu.Cpu.Log = logger

	return
}

// SetLog sends all diagnostics to a logger.
func (emu *Emulator) SetLog(logger *log.Logger) {
	emu.Cpu.Log = logger
	emu.Assembler.Log = logger
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Memory.Defines(),
	)
}

// Reset clears registers and stack, and reallocates memory.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	emu.Cpu.Registers.Reset()
	emu.Cpu.Stack.Reset()

	err = emu.Cpu.Reset(emu.MemorySize)
	if err != nil {
		return
	}

	for name, value := range emu.Defines() {
		emu.Assembler.Predefine(name, value)
	}

	return
}

// Assemble preprocesses source lines.
func (emu *Emulator) Assemble(lines []string) (prog *cpu.Program) {
	emu.Assembler.Verbose = emu.Verbose
	emu.Assembler.Loader = emu.Loader

	prog = emu.Assembler.Assemble(lines)

	if emu.Verbose {
		for pc, label := range prog.Labels() {
			emu.Cpu.Log.Printf("label %v: %03d", label, pc)
		}
	}

	return
}

// Execute runs source lines against the current state. Registers, stack
// and memory carry over between calls.
func (emu *Emulator) Execute(lines []string) (err error) {
	emu.Cpu.Verbose = emu.Verbose

	prog := emu.Assemble(lines)

	err = emu.Cpu.Run(prog)
	if err == nil {
		return
	}

	var invalid cpu.ErrInstructionInvalid
	if errors.As(err, &invalid) {
		emu.Cpu.Log.Printf("Error: %v", err)
		emu.Cpu.Log.Print(f("Program terminated..."))
	}

	err = &ErrRuntime{LineNo: emu.LineNo(), Line: emu.Line(), Err: err}
	return
}

// RunFile resets the emulator, and runs a file from the loader.
func (emu *Emulator) RunFile(name string) (err error) {
	if emu.Loader == nil {
		err = ErrLoaderMissing
		return
	}

	lines, err := emu.Loader.ReadLines(name)
	if err != nil {
		return
	}

	err = emu.Reset()
	if err != nil {
		return
	}

	return emu.Execute(lines)
}

// LineNo returns the index of the current instruction line.
func (emu *Emulator) LineNo() int {
	return emu.Cpu.Registers.Pc()
}

// Line returns the current instruction line.
func (emu *Emulator) Line() string {
	line, _ := emu.Cpu.Program.Line(emu.LineNo())
	return line
}
