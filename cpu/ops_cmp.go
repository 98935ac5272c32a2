package cpu

var compareInstructions = map[string]Instruction{
	"cmp":    {Args: 2, Usage: "<value> <value>", Handler: opCmp},
	"cmpSrc": {Args: 2, Usage: "<reg> <reg>", Handler: opCmpSrc},
}

// opCmp compares two operands as signed integers.
func opCmp(cpu *Cpu, args []string) (err error) {
	a, err := cpu.Operand(args[0])
	if err != nil {
		return
	}
	b, err := cpu.Operand(args[1])
	if err != nil {
		return
	}

	rf := cpu.Registers
	rf.SetFlag(FLAG_ZERO, a == b)
	rf.SetFlag(FLAG_POSITIVE, a > b)
	rf.SetFlag(FLAG_NEGATIVE, a < b)
	return
}

// opCmpSrc compares the generic values of two registers. Zero means
// equal, Positive means both are present, and Negative means both are
// true.
func opCmpSrc(cpu *Cpu, args []string) (err error) {
	rf := cpu.Registers
	a, err := rf.GetValue(args[0])
	if err != nil {
		return
	}
	b, err := rf.GetValue(args[1])
	if err != nil {
		return
	}

	a_true, _ := a.AsBool()
	b_true, _ := b.AsBool()

	rf.SetFlag(FLAG_ZERO, a.Equal(b))
	rf.SetFlag(FLAG_POSITIVE, !a.IsEmpty() && !b.IsEmpty())
	rf.SetFlag(FLAG_NEGATIVE, a_true && b_true)
	return
}
