package cpu

var flowInstructions = map[string]Instruction{
	"jmp":  {Args: 1, Usage: "<label>", Handler: opJmp},
	"jz":   {Args: 1, Usage: "<label>", Handler: jumpIf(FLAG_ZERO, true)},
	"jnz":  {Args: 1, Usage: "<label>", Handler: jumpIf(FLAG_ZERO, false)},
	"jg":   {Args: 1, Usage: "<label>", Handler: jumpIf(FLAG_POSITIVE, true)},
	"jl":   {Args: 1, Usage: "<label>", Handler: jumpIf(FLAG_NEGATIVE, true)},
	"jc":   {Args: 1, Usage: "<label>", Handler: jumpIf(FLAG_CARRY, true)},
	"jnc":  {Args: 1, Usage: "<label>", Handler: jumpIf(FLAG_CARRY, false)},
	"jo":   {Args: 1, Usage: "<label>", Handler: jumpIf(FLAG_OVERFLOW, true)},
	"jno":  {Args: 1, Usage: "<label>", Handler: jumpIf(FLAG_OVERFLOW, false)},
	"jf":   {Args: 1, Usage: "<label>", Handler: jumpIf(FLAG_FAILURE, true)},
	"jnf":  {Args: 1, Usage: "<label>", Handler: jumpIf(FLAG_FAILURE, false)},
	"call": {Args: 1, Usage: "<label>", Handler: opCall},
	"ret":  {Args: 0, Handler: opRet},
	"loop": {Args: 1, Usage: "<label> [counter]", Handler: opLoop},
	"push": {Args: 1, Usage: "<value>", Handler: opPush},
	"pop":  {Args: 1, Usage: "<reg>", Handler: opPop},
	"exit": {Args: 0, Handler: opExit},
}

func opJmp(cpu *Cpu, args []string) error {
	return cpu.JumpTo(args[0])
}

// jumpIf jumps when a flag is in the wanted state.
func jumpIf(flag Flag, want bool) Handler {
	return func(cpu *Cpu, args []string) (err error) {
		target, err := cpu.Program.Target(args[0])
		if err != nil {
			return
		}
		if cpu.Registers.Flag(flag) == want {
			cpu.next = target
		}
		return
	}
}

// opCall pushes the current line index, and jumps.
func opCall(cpu *Cpu, args []string) (err error) {
	target, err := cpu.Program.Target(args[0])
	if err != nil {
		return
	}
	cpu.Stack.Push(int32(cpu.Registers.Pc()))
	cpu.next = target
	return
}

// opRet resumes after the most recent call. Returning with an empty stack
// ends the program.
func opRet(cpu *Cpu, args []string) (err error) {
	pc, ok := cpu.Stack.Pop()
	if !ok {
		err = ErrExit{Code: -1, Err: ErrReturnEmpty}
		return
	}
	cpu.next = int(pc) + 1
	return
}

// opLoop decrements the counter, and jumps while it is non-zero.
func opLoop(cpu *Cpu, args []string) (err error) {
	counter := REG_COUNTER
	if len(args) > 1 {
		counter = args[1]
	}

	target, err := cpu.Program.Target(args[0])
	if err != nil {
		return
	}
	reg, err := cpu.Registers.Get(counter)
	if err != nil {
		return
	}

	reg.AV--
	if reg.AV != 0 {
		cpu.next = target
	}
	return
}

func opPush(cpu *Cpu, args []string) (err error) {
	value, err := cpu.Operand(args[0])
	if err != nil {
		return
	}
	cpu.Stack.Push(value)
	return
}

// opPop leaves the destination alone when the stack is empty.
func opPop(cpu *Cpu, args []string) (err error) {
	reg, err := cpu.Registers.Get(args[0])
	if err != nil {
		return
	}
	value, ok := cpu.Stack.Pop()
	if !ok {
		err = ErrStackEmpty
		return
	}
	reg.AV = value
	return
}

// opExit ends the program with the exit register AV as status.
func opExit(cpu *Cpu, args []string) (err error) {
	code, _ := cpu.Registers.GetAV(REG_EXIT)
	err = ErrExit{Code: int(code)}
	return
}
