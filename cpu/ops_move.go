package cpu

import (
	"strconv"
	"strings"
)

var moveInstructions = map[string]Instruction{
	"set":        {Args: 1, Usage: "<reg> <text...>", Handler: opSet},
	"setAV":      {Args: 2, Usage: "<reg> <value>", Handler: opSetAV},
	"setLV":      {Args: 2, Usage: "<reg> <value>", Handler: opSetLV},
	"sf":         {Args: 2, Usage: "<reg> <bits>", Handler: opSetFV},
	"mov":        {Args: 2, Usage: "<dst> <src>", Handler: opMov},
	"movSrc":     {Args: 2, Usage: "<dst> <src>", Handler: opMovSrc},
	"cmov":       {Args: 3, Usage: "<flag> <dst> <src>", Handler: opCmov},
	"clr":        {Args: 1, Usage: "<reg>", Handler: opClr},
	"getFlag":    {Args: 2, Usage: "<flag> <reg>", Handler: opGetFlag},
	"convertAV":  {Args: 1, Usage: "<reg>", Handler: opConvertAV},
	"convertSrc": {Args: 1, Usage: "<reg>", Handler: opConvertSrc},
}

// opSet stores the remaining words, joined by spaces, as text. A single
// integer literal is also loaded into AV.
func opSet(cpu *Cpu, args []string) (err error) {
	reg, err := cpu.Registers.Get(args[0])
	if err != nil {
		return
	}

	reg.Value = Text(strings.Join(args[1:], " "))
	if len(args) == 2 {
		if v, ok := parseLiteral(args[1]); ok {
			var av int32
			av, err = literal32(args[1], v)
			if err == nil {
				reg.AV = av
			}
		}
	}
	return
}

func opSetAV(cpu *Cpu, args []string) (err error) {
	reg, err := cpu.Registers.Get(args[0])
	if err != nil {
		return
	}
	value, err := cpu.Operand(args[1])
	if err != nil {
		return
	}
	reg.AV = value
	return
}

func opSetLV(cpu *Cpu, args []string) (err error) {
	reg, err := cpu.Registers.Get(args[0])
	if err != nil {
		return
	}
	value, err := cpu.WideOperand(args[1])
	if err != nil {
		return
	}
	reg.LV = value
	return
}

func opSetFV(cpu *Cpu, args []string) (err error) {
	reg, err := cpu.Registers.Get(args[0])
	if err != nil {
		return
	}
	value, ok := parseLiteral(args[1])
	if !ok {
		err = ErrParseNumber(args[1])
		return
	}
	reg.FV = int32(value)
	return
}

// move copies every facet of src into dst, and marks dst as copied.
func move(cpu *Cpu, dst_name, src_name string) (err error) {
	dst, err := cpu.Registers.Get(dst_name)
	if err != nil {
		return
	}
	src, err := cpu.Registers.Get(src_name)
	if err != nil {
		return
	}

	dst.Value = src.Value
	dst.AV = src.AV
	dst.LV = src.LV
	dst.FV = src.FV | int32(FLAG_COPIED)
	return
}

func opMov(cpu *Cpu, args []string) error {
	return move(cpu, args[0], args[1])
}

func opMovSrc(cpu *Cpu, args []string) (err error) {
	src, err := cpu.Registers.GetValue(args[1])
	if err != nil {
		return
	}
	return cpu.Registers.SetValue(args[0], src)
}

func opCmov(cpu *Cpu, args []string) (err error) {
	flag, err := ParseFlag(args[0])
	if err != nil {
		return
	}
	if !cpu.Registers.Flag(flag) {
		return
	}
	return move(cpu, args[1], args[2])
}

func opClr(cpu *Cpu, args []string) (err error) {
	reg, err := cpu.Registers.Get(args[0])
	if err != nil {
		return
	}
	reg.Reset()
	return
}

func opGetFlag(cpu *Cpu, args []string) (err error) {
	flag, err := ParseFlag(args[0])
	if err != nil {
		return
	}
	return cpu.Registers.SetValue(args[1], Boolean(cpu.Registers.Flag(flag)))
}

// opConvertAV parses the generic value into AV. Failure is reported only
// through the Failure flag.
func opConvertAV(cpu *Cpu, args []string) (err error) {
	reg, err := cpu.Registers.Get(args[0])
	if err != nil {
		return
	}

	var value int64
	var perr error
	switch reg.Value.Kind {
	case VALUE_INTEGER:
		value = reg.Value.Integer
	default:
		value, perr = strconv.ParseInt(strings.TrimSpace(reg.Value.String()), 10, 32)
	}
	cpu.Registers.SetFlag(FLAG_FAILURE, perr != nil)
	if perr == nil {
		reg.AV = int32(value)
	}
	return
}

func opConvertSrc(cpu *Cpu, args []string) (err error) {
	reg, err := cpu.Registers.Get(args[0])
	if err != nil {
		return
	}
	reg.Value = Integer(int64(reg.AV))
	return
}
