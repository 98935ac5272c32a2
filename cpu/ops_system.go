package cpu

import (
	"time"
)

const (
	BEEP_FREQUENCY = 800 // Default beep tone, in Hz.
	BEEP_DURATION  = 200 // Default beep length, in milliseconds.

	RANDOM_TEXT = "generated!" // Generic value left by rand.
)

var systemInstructions = map[string]Instruction{
	"regs":  {Args: 0, Handler: opRegs},
	"show":  {Args: 1, Usage: "<reg>", Handler: opShow},
	"wait":  {Args: 1, Usage: "<ms>", Handler: opWait},
	"rand":  {Args: 2, Usage: "<min> <max>", Handler: opRand},
	"getOS": {Args: 0, Handler: opGetOS},
	"brk":   {Args: 0, Handler: opBrk},
}

func opRegs(cpu *Cpu, args []string) error {
	return cpu.dump()
}

func opShow(cpu *Cpu, args []string) (err error) {
	reg, err := cpu.Registers.Get(args[0])
	if err != nil {
		return
	}
	return cpu.Write(reg.String() + "\n")
}

func opWait(cpu *Cpu, args []string) (err error) {
	ms, err := cpu.Count(args[0])
	if err != nil {
		return
	}
	cpu.Host.Sleep(time.Duration(ms) * time.Millisecond)
	return
}

// opRand draws from [min, max) into the random register.
func opRand(cpu *Cpu, args []string) (err error) {
	low, err := cpu.Operand(args[0])
	if err != nil {
		return
	}
	high, err := cpu.Operand(args[1])
	if err != nil {
		return
	}
	if low > high {
		err = ErrOpcodeRange
		return
	}

	reg, err := cpu.Registers.Get(REG_RANDOM)
	if err != nil {
		return
	}
	reg.AV = cpu.Host.Random(low, high)
	reg.Value = Text(RANDOM_TEXT)
	return
}

func opGetOS(cpu *Cpu, args []string) error {
	cpu.queryPlatform()
	return nil
}

// opBrk calls the breakpoint hook, or logs the registers when verbose.
func opBrk(cpu *Cpu, args []string) error {
	switch {
	case cpu.Breakpoint != nil:
		cpu.Breakpoint(cpu)
	case cpu.Verbose:
		cpu.logger().Printf("brk %v\n%v", cpu.describe(), cpu)
	}
	return nil
}
