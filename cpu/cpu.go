package cpu

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
)

// Cpu is the execution context of a single program: registers, flags,
// stack, memory, the instruction table, and the host services.
//
// A Cpu is not safe for concurrent use. Independent Cpus share nothing.
type Cpu struct {
	Verbose bool        // Set to enable verbose logging.
	Log     *log.Logger // Diagnostic output. Defaults to standard error.

	Host       Host           // Console, clock and platform services.
	Breakpoint func(cpu *Cpu) // Called by 'brk', if set.

	Registers    *RegisterFile  // Register catalogue.
	Stack        Stack          // Call and data stack.
	Memory       Memory         // Addressable memory.
	Instructions InstructionSet // Mnemonic table.
	Program      *Program       // Currently running program.

	Ticks int // Instructions executed since the last Load.

	next int // Program counter after the current instruction.
}

// NewCpu creates a cpu bound to a host. Memory is allocated by Reset.
func NewCpu(host Host) (cpu *Cpu) {
	cpu = &Cpu{
		Host:         host,
		Registers:    NewRegisterFile(),
		Instructions: NewInstructionSet(),
	}

	return
}

func (cpu *Cpu) logger() *log.Logger {
	if cpu.Log == nil {
		cpu.Log = log.New(os.Stderr, "", 0)
	}
	return cpu.Log
}

// Reset (re)initializes memory with size cells. Registers and the stack
// are left alone, so that a REPL keeps its state.
func (cpu *Cpu) Reset(size int) (err error) {
	if cpu.Verbose {
		cpu.logger().Printf("cpu: reset memory %v cells", size)
	}

	if !cpu.Memory.Reset(size) && cpu.Memory.Cell == nil {
		err = ErrMemoryUnavailable
	}

	return
}

// String returns the register dump.
func (cpu *Cpu) String() (text string) {
	var sb strings.Builder
	for reg := range cpu.Registers.All() {
		sb.WriteString(reg.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Load prepares a program for execution from its first line.
func (cpu *Cpu) Load(prog *Program) {
	cpu.Program = prog
	cpu.Ticks = 0
	cpu.Registers.SetPc(0)
	cpu.queryPlatform()
}

// Run loads a program and ticks until it finishes. A nil error means the
// program counter ran off the end of the program.
func (cpu *Cpu) Run(prog *Program) (err error) {
	cpu.Load(prog)

	for done := false; !done; {
		done, err = cpu.Tick()
		if err != nil {
			return
		}
	}

	return
}

// Tick executes the instruction at the program counter.
//
// Recoverable instruction errors are logged and execution continues with
// the next line. Fatal errors (see IsFatal) are returned with the program
// counter left on the failing line. done is set once the program counter
// has reached the end of the program.
func (cpu *Cpu) Tick() (done bool, err error) {
	if cpu.Program == nil {
		err = ErrProgramMissing
		return
	}

	rf := cpu.Registers
	pc := rf.Pc()
	line, ok := cpu.Program.Line(pc)
	if !ok {
		done = true
		return
	}

	cpu.next = pc + 1

	err = cpu.Execute(line)
	cpu.Ticks++
	if err != nil {
		if IsFatal(err) {
			return
		}
		cpu.diagnose(err)
		err = nil
	}

	// A direct write to the program counter redirects execution.
	if rf.Pc() != pc {
		cpu.next = rf.Pc()
	}

	if cpu.next < 0 || cpu.next > cpu.Program.Len() {
		cpu.next = cpu.Program.Len()
	}
	rf.SetPc(cpu.next)

	done = cpu.next == cpu.Program.Len()
	return
}

// Execute dispatches a single source line. Label declarations and
// directives are no-ops.
func (cpu *Cpu) Execute(line string) (err error) {
	mnemonic, args := SplitInstruction(line)
	if len(mnemonic) == 0 || strings.HasSuffix(mnemonic, ":") || isDirective(line) {
		return
	}

	ins, ok := cpu.Instructions[mnemonic]
	if !ok {
		err = ErrInstructionInvalid(mnemonic)
		return
	}

	if cpu.Verbose {
		cpu.logger().Printf("%03d: %v %q", cpu.Registers.Pc(), mnemonic, args)
	}

	if len(args) < ins.Args {
		err = &ErrOpcode{Mnemonic: mnemonic, Err: ErrOpcodeArgs}
		return
	}

	err = ins.Handler(cpu, args)
	if err != nil {
		err = &ErrOpcode{Mnemonic: mnemonic, Err: err}
	}

	return
}

// IsFatal returns true for errors that end a run: explicit exits, return
// with an empty stack, and unknown instructions.
func IsFatal(err error) bool {
	var exit ErrExit
	var invalid ErrInstructionInvalid
	return errors.As(err, &exit) || errors.As(err, &invalid)
}

// diagnose reports a recoverable error.
func (cpu *Cpu) diagnose(err error) {
	cpu.logger().Printf("Error: %v", err)
}

// JumpTo sets the next program counter to a label.
func (cpu *Cpu) JumpTo(label string) (err error) {
	target, err := cpu.Program.Target(label)
	if err != nil {
		return
	}
	cpu.next = target
	return
}

// Write sends text to the host console.
func (cpu *Cpu) Write(text string) (err error) {
	err = cpu.Host.Write(text)
	if err != nil {
		err = errors.Join(ErrOpcodeIo, err)
	}
	return
}

// queryPlatform stores the host platform in the OS register.
func (cpu *Cpu) queryPlatform() {
	if cpu.Host == nil {
		return
	}
	reg, err := cpu.Registers.Get(REG_OS)
	if err != nil {
		return
	}
	id, version := cpu.Host.Platform()
	reg.AV = id
	reg.Value = Text(version)
}

// parseLiteral parses decimal, 0x/0b/0o prefixed, or 'c' character literals.
func parseLiteral(word string) (value int64, ok bool) {
	if len(word) >= 3 && word[0] == '\'' && word[len(word)-1] == '\'' {
		return parseCharacter(word[1 : len(word)-1])
	}

	value, err := strconv.ParseInt(word, 10, 64)
	if err == nil {
		return value, true
	}

	digits := strings.TrimLeft(word, "+-")
	if len(digits) > 2 && digits[0] == '0' && strings.ContainsRune("xXbBoO", rune(digits[1])) {
		value, err = strconv.ParseInt(word, 0, 64)
		return value, err == nil
	}

	return 0, false
}

// parseCharacter evaluates the inside of a character literal.
func parseCharacter(str string) (value int64, ok bool) {
	runes := []rune(str)
	switch {
	case len(runes) == 1:
		return int64(runes[0]), true
	case len(runes) == 2 && runes[0] == '\\':
		switch runes[1] {
		case 'n':
			return '\n', true
		case 'r':
			return '\r', true
		case 't':
			return '\t', true
		case 'e':
			return '\033', true
		case '0':
			return 0, true
		case '\\', '\'':
			return int64(runes[1]), true
		}
	}
	return 0, false
}

// literal32 converts a literal to 32 bits. Values up to 0xffffffff wrap to
// their two's complement.
func literal32(word string, value int64) (result int32, err error) {
	if value < math.MinInt32 || value > math.MaxUint32 {
		err = ErrParseNumber(word)
		return
	}
	return int32(uint32(value)), nil
}

// Operand resolves a word as a literal, or the AV of a register.
func (cpu *Cpu) Operand(word string) (value int32, err error) {
	if v, ok := parseLiteral(word); ok {
		return literal32(word, v)
	}

	value, err = cpu.Registers.GetAV(word)
	if err != nil {
		err = errors.Join(ErrParseValue(word), err)
	}
	return
}

// WideOperand resolves a word as a literal, or the LV of a register.
func (cpu *Cpu) WideOperand(word string) (value int64, err error) {
	if v, ok := parseLiteral(word); ok {
		return v, nil
	}

	value, err = cpu.Registers.GetLV(word)
	if err != nil {
		err = errors.Join(ErrParseValue(word), err)
	}
	return
}

// Address resolves a word as a literal, a memory label, or the AV of a
// register.
func (cpu *Cpu) Address(word string) (addr int, err error) {
	if v, ok := parseLiteral(word); ok {
		if v < math.MinInt32 || v > math.MaxInt32 {
			err = ErrParseNumber(word)
			return
		}
		return int(v), nil
	}

	if addr, ok := cpu.Memory.Label[word]; ok {
		return addr, nil
	}

	av, err := cpu.Registers.GetAV(word)
	if err != nil {
		err = ErrMemoryLabelMissing(word)
		return
	}
	return int(av), nil
}

// Count resolves a non-negative length operand.
func (cpu *Cpu) Count(word string) (count int, err error) {
	value, err := cpu.Operand(word)
	if err != nil {
		return
	}
	if value < 0 {
		err = ErrParseNumber(word)
		return
	}
	return int(value), nil
}

// dump writes the register dump to the console.
func (cpu *Cpu) dump() error {
	return cpu.Write(cpu.String())
}

// describe names the current position, for breakpoint hooks.
func (cpu *Cpu) describe() string {
	pc := cpu.Registers.Pc()
	line, _ := cpu.Program.Line(pc)
	return fmt.Sprintf("%03d: %v", pc, line)
}
