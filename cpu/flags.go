package cpu

import (
	"strings"
)

// Flag is a condition bit of the flags register.
type Flag int32

//go:generate go tool stringer -linecomment -type=Flag
const (
	FLAG_ZERO     = Flag(1 << 0) // zero
	FLAG_POSITIVE = Flag(1 << 1) // positive
	FLAG_NEGATIVE = Flag(1 << 2) // negative
	FLAG_CARRY    = Flag(1 << 3) // carry
	FLAG_OVERFLOW = Flag(1 << 4) // overflow
	FLAG_COPIED   = Flag(1 << 5) // copied
	FLAG_FAILURE  = Flag(1 << 6) // failure

	FLAG_BITS = 7 // Width of the flag field in register dumps.
)

var flagMap = map[string]Flag{
	"zero":     FLAG_ZERO,
	"z":        FLAG_ZERO,
	"positive": FLAG_POSITIVE,
	"p":        FLAG_POSITIVE,
	"negative": FLAG_NEGATIVE,
	"n":        FLAG_NEGATIVE,
	"carry":    FLAG_CARRY,
	"c":        FLAG_CARRY,
	"overflow": FLAG_OVERFLOW,
	"o":        FLAG_OVERFLOW,
	"copied":   FLAG_COPIED,
	"failure":  FLAG_FAILURE,
	"f":        FLAG_FAILURE,
}

// ParseFlag looks up a flag by its name or single letter alias.
func ParseFlag(name string) (flag Flag, err error) {
	flag, ok := flagMap[strings.ToLower(name)]
	if !ok {
		err = ErrFlagInvalid
	}
	return
}

// Flags returns the condition bits of the flags register.
func (rf *RegisterFile) Flags() int32 {
	return rf.flags.FV
}

// Flag returns the state of a single condition bit.
func (rf *RegisterFile) Flag(flag Flag) bool {
	return (rf.flags.FV & int32(flag)) != 0
}

// SetFlag sets or clears a single condition bit.
func (rf *RegisterFile) SetFlag(flag Flag, value bool) {
	if value {
		rf.flags.FV |= int32(flag)
	} else {
		rf.flags.FV &^= int32(flag)
	}
}

// SetSign recomputes Zero, Positive and Negative from a signed result.
func (rf *RegisterFile) SetSign(result int64) {
	rf.SetFlag(FLAG_ZERO, result == 0)
	rf.SetFlag(FLAG_POSITIVE, result > 0)
	rf.SetFlag(FLAG_NEGATIVE, result < 0)
}
