package cpu

import (
	"errors"
)

var memoryInstructions = map[string]Instruction{
	"readMem":     {Args: 1, Usage: "<addr> [reg]", Handler: opReadMem},
	"writeRawMem": {Args: 2, Usage: "<addr> <value>", Handler: opWriteRawMem},
	"writeMem":    {Args: 2, Usage: "<addr> <token...>", Handler: opWriteMem},
	"fillMem":     {Args: 3, Usage: "<start> <end> <value>", Handler: opFillMem},
	"copyMem":     {Args: 3, Usage: "<src> <dst> <len>", Handler: opCopyMem},
	"cmpMem":      {Args: 3, Usage: "<addr> <addr> <len>", Handler: opCmpMem},
	"cmpStr":      {Args: 2, Usage: "<addr|text> <addr|text>", Handler: opCmpStr},
	"printMem":    {Args: 1, Usage: "<addr>", Handler: opPrintMem},
	"printRawMem": {Args: 2, Usage: "<addr> <len>", Handler: opPrintRawMem},
	"lea":         {Args: 2, Usage: "<reg> <label>", Handler: opLea},
	"defMem":      {Args: 2, Usage: "<label> <addr>", Handler: opDefMem},
}

// opReadMem loads a cell into a register AV. Out of range reads load 0.
func opReadMem(cpu *Cpu, args []string) (err error) {
	name := REG_ACC
	if len(args) > 1 {
		name = args[1]
	}

	reg, err := cpu.Registers.Get(name)
	if err != nil {
		return
	}
	addr, err := cpu.Address(args[0])
	if err != nil {
		return
	}

	reg.AV, err = cpu.Memory.Read(addr)
	if err == nil {
		cpu.Registers.SetCursor(addr + 1)
	}
	return
}

func opWriteRawMem(cpu *Cpu, args []string) (err error) {
	addr, err := cpu.Address(args[0])
	if err != nil {
		return
	}
	value, err := cpu.Operand(args[1])
	if err != nil {
		return
	}

	err = cpu.Memory.Write(addr, value)
	if err == nil {
		cpu.Registers.SetCursor(addr + 1)
	}
	return
}

// opWriteMem writes a sequence of tokens. An integer literal fills one
// cell, and any other token one cell per character. The memory cursor is
// left after the last written cell. Nothing is written unless every cell
// fits.
func opWriteMem(cpu *Cpu, args []string) (err error) {
	addr, err := cpu.Address(args[0])
	if err != nil {
		return
	}

	var cells []int32
	for _, token := range args[1:] {
		if v, ok := parseLiteral(token); ok {
			var cell int32
			cell, err = literal32(token, v)
			if err != nil {
				return
			}
			cells = append(cells, cell)
			continue
		}
		for _, r := range token {
			cells = append(cells, int32(r))
		}
	}

	if !cpu.Memory.inRange(addr, len(cells)) {
		err = ErrMemoryRange{Address: addr, Length: len(cells)}
		return
	}
	copy(cpu.Memory.Cell[addr:], cells)
	cpu.Registers.SetCursor(addr + len(cells))
	return
}

// opFillMem fills start..end inclusive.
func opFillMem(cpu *Cpu, args []string) (err error) {
	start, err := cpu.Address(args[0])
	if err != nil {
		return
	}
	end, err := cpu.Address(args[1])
	if err != nil {
		return
	}
	value, err := cpu.Operand(args[2])
	if err != nil {
		return
	}
	return cpu.Memory.Fill(start, end, value)
}

func opCopyMem(cpu *Cpu, args []string) (err error) {
	src, err := cpu.Address(args[0])
	if err != nil {
		return
	}
	dst, err := cpu.Address(args[1])
	if err != nil {
		return
	}
	length, err := cpu.Count(args[2])
	if err != nil {
		return
	}
	return cpu.Memory.Copy(src, dst, length)
}

func opCmpMem(cpu *Cpu, args []string) (err error) {
	a, err := cpu.Address(args[0])
	if err != nil {
		return
	}
	b, err := cpu.Address(args[1])
	if err != nil {
		return
	}
	length, err := cpu.Count(args[2])
	if err != nil {
		return
	}
	sign, err := cpu.Memory.Compare(a, b, length)
	if err != nil {
		return
	}
	cpu.Registers.SetSign(int64(sign))
	return
}

// stringOperand resolves a cmpStr operand. Words that are not addresses are
// materialized as null terminated text at scratch, and size reports the
// number of cells used.
func (cpu *Cpu) stringOperand(word string, scratch int) (addr int, size int, err error) {
	addr, err = cpu.Address(word)
	if err == nil {
		return
	}

	next, err := cpu.Memory.WriteText(scratch, word)
	if err != nil {
		return
	}
	err = cpu.Memory.Write(next, 0)
	if err != nil {
		return
	}

	return scratch, next + 1 - scratch, nil
}

// opCmpStr compares two null terminated strings. Literal text operands are
// staged in the Reserved region, and the region is zeroed afterwards.
func opCmpStr(cpu *Cpu, args []string) (err error) {
	mem := &cpu.Memory
	scratch := mem.Reserved()
	used := 0

	defer func() {
		if used > 0 {
			err = errors.Join(err, mem.Fill(scratch, scratch+used-1, 0))
		}
	}()

	a, size, err := cpu.stringOperand(args[0], scratch)
	used += size
	if err != nil {
		return
	}
	b, size, err := cpu.stringOperand(args[1], scratch+used)
	used += size
	if err != nil {
		return
	}

	sign, err := mem.CompareString(a, b)
	if err != nil {
		return
	}
	cpu.Registers.SetSign(int64(sign))
	return
}

func opPrintMem(cpu *Cpu, args []string) (err error) {
	addr, err := cpu.Address(args[0])
	if err != nil {
		return
	}
	text, err := cpu.Memory.CString(addr)
	if err != nil {
		return
	}
	return cpu.Write(text)
}

// opPrintRawMem prints cells addr..addr+len inclusive.
func opPrintRawMem(cpu *Cpu, args []string) (err error) {
	addr, err := cpu.Address(args[0])
	if err != nil {
		return
	}
	length, err := cpu.Count(args[1])
	if err != nil {
		return
	}
	text, err := cpu.Memory.Dump(addr, length)
	if err != nil {
		return
	}
	return cpu.Write(text)
}

func opLea(cpu *Cpu, args []string) (err error) {
	reg, err := cpu.Registers.Get(args[0])
	if err != nil {
		return
	}
	addr, ok := cpu.Memory.Label[args[1]]
	if !ok {
		err = ErrMemoryLabelMissing(args[1])
		return
	}
	reg.AV = int32(addr)
	return
}

func opDefMem(cpu *Cpu, args []string) (err error) {
	addr, err := cpu.Address(args[1])
	if err != nil {
		return
	}
	if !cpu.Memory.inRange(addr, 1) {
		err = ErrMemoryRange{Address: addr, Length: 1}
		return
	}
	cpu.Memory.Label[args[0]] = addr
	return
}
