package cpu

import (
	"iter"
	"maps"
	"slices"

	"github.com/ezrec/corelang/internal"
)

// Handler executes an instruction. args holds the parsed arguments after
// the mnemonic; at least Instruction.Args of them are present.
type Handler func(cpu *Cpu, args []string) error

// Instruction is an entry of the instruction table.
type Instruction struct {
	Name    string  // Mnemonic.
	Args    int     // Minimum number of arguments.
	Usage   string  // Argument summary.
	Handler Handler // Implementation.
}

// InstructionSet maps mnemonics to their instructions.
type InstructionSet map[string]Instruction

// instructionFamilies are concatenated to build an InstructionSet.
var instructionFamilies = []map[string]Instruction{
	moveInstructions,
	aluInstructions,
	compareInstructions,
	flowInstructions,
	memoryInstructions,
	consoleInstructions,
	systemInstructions,
}

// NewInstructionSet builds the full instruction table.
func NewInstructionSet() (set InstructionSet) {
	families := make([]iter.Seq2[string, Instruction], 0, len(instructionFamilies))
	for _, family := range instructionFamilies {
		families = append(families, maps.All(family))
	}

	set = make(InstructionSet)
	for name, ins := range internal.IterSeq2Concat(families...) {
		ins.Name = name
		set[name] = ins
	}

	return
}

// With returns a copy of the set with an instruction added or replaced.
func (set InstructionSet) With(ins Instruction) (dup InstructionSet) {
	dup = maps.Clone(set)
	dup[ins.Name] = ins
	return
}

// Names returns the mnemonics in sorted order.
func (set InstructionSet) Names() []string {
	return slices.Sorted(maps.Keys(set))
}
