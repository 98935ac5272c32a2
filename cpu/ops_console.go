package cpu

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

var consoleInstructions = map[string]Instruction{
	"write":    {Args: 0, Usage: "<text...>", Handler: opWrite},
	"writeln":  {Args: 0, Usage: "<text...>", Handler: opWriteln},
	"newline":  {Args: 0, Handler: opNewline},
	"writeSrc": {Args: 1, Usage: "<reg>", Handler: opWriteSrc},
	"writeAV":  {Args: 1, Usage: "<reg>", Handler: opWriteAV},
	"writeLV":  {Args: 1, Usage: "<reg>", Handler: opWriteLV},
	"readline": {Args: 0, Usage: "[reg]", Handler: opReadline},
	"getkey":   {Args: 0, Usage: "[reg]", Handler: opGetkey},
	"clear":    {Args: 0, Handler: opClear},
	"beep":     {Args: 0, Usage: "[freq dur]", Handler: opBeep},
}

func opWrite(cpu *Cpu, args []string) error {
	return cpu.Write(strings.Join(args, " "))
}

func opWriteln(cpu *Cpu, args []string) error {
	return cpu.Write(strings.Join(args, " ") + "\n")
}

func opNewline(cpu *Cpu, args []string) error {
	return cpu.Write("\n")
}

func opWriteSrc(cpu *Cpu, args []string) (err error) {
	value, err := cpu.Registers.GetValue(args[0])
	if err != nil {
		return
	}
	return cpu.Write(value.String())
}

func opWriteAV(cpu *Cpu, args []string) (err error) {
	value, err := cpu.Registers.GetAV(args[0])
	if err != nil {
		return
	}
	return cpu.Write(strconv.FormatInt(int64(value), 10))
}

func opWriteLV(cpu *Cpu, args []string) (err error) {
	value, err := cpu.Registers.GetLV(args[0])
	if err != nil {
		return
	}
	return cpu.Write(strconv.FormatInt(value, 10))
}

// opReadline stores a console line as text. End of input stores Empty.
func opReadline(cpu *Cpu, args []string) (err error) {
	name := REG_READLINE
	if len(args) > 0 {
		name = args[0]
	}
	reg, err := cpu.Registers.Get(name)
	if err != nil {
		return
	}

	line, err := cpu.Host.ReadLine()
	switch {
	case errors.Is(err, io.EOF):
		reg.Value = Empty
		err = nil
	case err != nil:
		err = errors.Join(ErrOpcodeIo, err)
	default:
		reg.Value = Text(line)
	}
	return
}

// opGetkey stores a key press: the character as text, the key code in AV,
// and the modifier bits in FV.
func opGetkey(cpu *Cpu, args []string) (err error) {
	name := REG_GETKEY
	if len(args) > 0 {
		name = args[0]
	}
	reg, err := cpu.Registers.Get(name)
	if err != nil {
		return
	}

	key, err := cpu.Host.ReadKey()
	if err != nil {
		err = errors.Join(ErrOpcodeIo, err)
		return
	}

	reg.Value = Text(string(key.Char))
	reg.AV = key.Code
	reg.FV = key.Modifiers
	return
}

func opClear(cpu *Cpu, args []string) (err error) {
	err = cpu.Host.Clear()
	if err != nil {
		err = errors.Join(ErrOpcodeIo, err)
	}
	return
}

// opBeep takes no arguments for the default tone, or both frequency and
// duration.
func opBeep(cpu *Cpu, args []string) (err error) {
	freq, dur := BEEP_FREQUENCY, BEEP_DURATION
	switch len(args) {
	case 0:
	case 1:
		err = ErrOpcodeArgs
		return
	default:
		var value int32
		value, err = cpu.Operand(args[0])
		if err != nil {
			return
		}
		freq = int(value)
		value, err = cpu.Operand(args[1])
		if err != nil {
			return
		}
		dur = int(value)
	}

	err = cpu.Host.Beep(freq, dur)
	if err != nil {
		err = errors.Join(ErrOpcodeIo, err)
	}
	return
}
