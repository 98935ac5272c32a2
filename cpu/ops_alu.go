package cpu

import (
	"math"
)

var aluInstructions = map[string]Instruction{
	"add": {Args: 2, Usage: "<reg> <value>", Handler: aluBinary(aluAdd)},
	"sub": {Args: 2, Usage: "<reg> <value>", Handler: aluBinary(aluSub)},
	"mul": {Args: 2, Usage: "<reg> <value>", Handler: aluBinary(aluMul)},
	"div": {Args: 2, Usage: "<reg> <value>", Handler: aluBinary(aluDiv)},
	"mod": {Args: 2, Usage: "<reg> <value>", Handler: aluBinary(aluMod)},
	"and": {Args: 2, Usage: "<reg> <value>", Handler: aluBinary(aluAnd)},
	"or":  {Args: 2, Usage: "<reg> <value>", Handler: aluBinary(aluOr)},
	"xor": {Args: 2, Usage: "<reg> <value>", Handler: aluBinary(aluXor)},
	"shl": {Args: 2, Usage: "<reg> <count>", Handler: aluBinary(aluShl)},
	"shr": {Args: 2, Usage: "<reg> <count>", Handler: aluBinary(aluShr)},
	"inc": {Args: 1, Usage: "<reg>", Handler: aluUnary(aluInc)},
	"dec": {Args: 1, Usage: "<reg>", Handler: aluUnary(aluDec)},
	"neg": {Args: 1, Usage: "<reg>", Handler: aluUnary(aluNeg)},
	"not": {Args: 1, Usage: "<reg>", Handler: aluUnary(aluNot)},
}

// aluResult is the outcome of an ALU operation. Operations that do not
// track carry leave arith unset, and the Carry and Overflow flags alone.
type aluResult struct {
	value    int32
	arith    bool
	carry    bool
	overflow bool
}

type aluFunc func(a, b int32) (res aluResult, err error)

// aluBinary applies fn to the AV of a register and an operand.
func aluBinary(fn aluFunc) Handler {
	return func(cpu *Cpu, args []string) (err error) {
		reg, err := cpu.Registers.Get(args[0])
		if err != nil {
			return
		}
		value, err := cpu.Operand(args[1])
		if err != nil {
			return
		}
		res, err := fn(reg.AV, value)
		if err != nil {
			return
		}
		aluStore(cpu, reg, res)
		return
	}
}

// aluUnary applies fn to the AV of a register.
func aluUnary(fn func(a int32) aluResult) Handler {
	return func(cpu *Cpu, args []string) (err error) {
		reg, err := cpu.Registers.Get(args[0])
		if err != nil {
			return
		}
		aluStore(cpu, reg, fn(reg.AV))
		return
	}
}

func aluStore(cpu *Cpu, reg *Register, res aluResult) {
	rf := cpu.Registers
	reg.AV = res.value
	rf.SetSign(int64(res.value))
	if res.arith {
		rf.SetFlag(FLAG_CARRY, res.carry)
		rf.SetFlag(FLAG_OVERFLOW, res.overflow)
	}
}

func aluAdd(a, b int32) (res aluResult, err error) {
	res.value = a + b
	res.arith = true
	res.carry = uint32(res.value) < uint32(a)
	res.overflow = (a >= 0) == (b >= 0) && (res.value >= 0) != (a >= 0)
	return
}

func aluSub(a, b int32) (res aluResult, err error) {
	res.value = a - b
	res.arith = true
	res.carry = uint32(a) < uint32(b)
	res.overflow = (a >= 0) != (b >= 0) && (res.value >= 0) != (a >= 0)
	return
}

func aluMul(a, b int32) (res aluResult, err error) {
	wide := int64(a) * int64(b)
	res.value = int32(wide)
	res.arith = true
	res.carry = uint64(uint32(a))*uint64(uint32(b)) > math.MaxUint32
	res.overflow = wide != int64(res.value)
	return
}

func aluDiv(a, b int32) (res aluResult, err error) {
	if b == 0 {
		err = ErrDivideByZero
		return
	}
	res.value = a / b
	return
}

func aluMod(a, b int32) (res aluResult, err error) {
	if b == 0 {
		err = ErrDivideByZero
		return
	}
	res.value = a % b
	return
}

func aluAnd(a, b int32) (res aluResult, err error) {
	res.value = a & b
	return
}

func aluOr(a, b int32) (res aluResult, err error) {
	res.value = a | b
	return
}

func aluXor(a, b int32) (res aluResult, err error) {
	res.value = a ^ b
	return
}

// Shift counts use their low five bits.
func aluShl(a, b int32) (res aluResult, err error) {
	res.value = a << (uint32(b) & 0x1f)
	return
}

func aluShr(a, b int32) (res aluResult, err error) {
	res.value = a >> (uint32(b) & 0x1f)
	return
}

func aluInc(a int32) aluResult {
	res, _ := aluAdd(a, 1)
	return res
}

func aluDec(a int32) aluResult {
	res, _ := aluSub(a, 1)
	return res
}

func aluNeg(a int32) (res aluResult) {
	res, _ = aluSub(0, a)
	return
}

func aluNot(a int32) aluResult {
	return aluResult{value: ^a}
}
