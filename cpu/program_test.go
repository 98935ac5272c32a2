package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgram_Line(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Lines: []string{"start:", "add eax 1", "jmp start"},
		Label: map[string]int{"start": 0},
	}

	assert.Equal(3, prog.Len())

	line, ok := prog.Line(1)
	assert.True(ok)
	assert.Equal("add eax 1", line)

	_, ok = prog.Line(3)
	assert.False(ok)
	_, ok = prog.Line(-1)
	assert.False(ok)
}

func TestProgram_Nil(t *testing.T) {
	assert := assert.New(t)

	var prog *Program
	assert.Equal(0, prog.Len())
	_, ok := prog.Line(0)
	assert.False(ok)
}

func TestProgram_Target(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Lines: []string{"a:", "b:"},
		Label: map[string]int{"a": 0, "b": 1},
	}

	pc, err := prog.Target("b")
	assert.NoError(err)
	assert.Equal(1, pc)

	_, err = prog.Target("c")
	assert.Equal(ErrLabelMissing("c"), err)
}

func TestProgram_Labels(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Label: map[string]int{"end": 7, "start": 0, "middle": 3},
	}

	var names []string
	var indexes []int
	for pc, name := range prog.Labels() {
		names = append(names, name)
		indexes = append(indexes, pc)
	}

	assert.Equal([]string{"start", "middle", "end"}, names)
	assert.Equal([]int{0, 3, 7}, indexes)
}
