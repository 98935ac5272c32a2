package cpu

import (
	"iter"
	"slices"
)

// Program is a preprocessed instruction sequence with its label table.
type Program struct {
	Lines []string          // Dense instruction lines.
	Label map[string]int    // Map of labels to line indexes.
	Macro map[string]string // Macros used during preprocessing.
}

// Len returns the number of instruction lines.
func (prog *Program) Len() int {
	if prog == nil {
		return 0
	}
	return len(prog.Lines)
}

// Line returns the line at pc.
func (prog *Program) Line(pc int) (line string, ok bool) {
	if pc < 0 || pc >= prog.Len() {
		return
	}
	return prog.Lines[pc], true
}

// Target resolves a label to its line index.
func (prog *Program) Target(label string) (pc int, err error) {
	pc, ok := prog.Label[label]
	if !ok {
		err = ErrLabelMissing(label)
	}
	return
}

// Labels returns the label names in line order.
func (prog *Program) Labels() iter.Seq2[int, string] {
	return func(yield func(pc int, label string) bool) {
		names := make([]string, 0, len(prog.Label))
		for name := range prog.Label {
			names = append(names, name)
		}
		slices.SortFunc(names, func(a, b string) int {
			return prog.Label[a] - prog.Label[b]
		})
		for _, name := range names {
			if !yield(prog.Label[name], name) {
				return
			}
		}
	}
}
