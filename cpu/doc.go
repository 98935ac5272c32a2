// Package cpu implements the register machine and assembler for corelang
// scripts.
//
// The machine consists of a fixed catalogue of named registers, each with a
// generic value and three integer facets (AV, LV and FV), a flags register,
// a call and data stack, and a flat memory of integer cells with named
// regions. Instructions are looked up by mnemonic in an InstructionSet
// built for each Cpu, so that several machines can run side by side.
//
// The assembler splices #import files, strips comments, expands #name
// macros and $(...) expressions, and indexes labels.
package cpu
