package cpu

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryReset(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	assert.False(mem.Reset(MEMORY_MIN - 1))
	assert.Equal(0, mem.Size())

	assert.True(mem.Reset(MEMORY_MIN))
	assert.Equal(MEMORY_MIN, mem.Size())
	assert.Equal(MEMORY_MIN-MEMORY_RESERVED, mem.Reserved())
	assert.Equal(0, mem.Label[MEMORY_TEXT_LABEL])

	text, err := mem.CString(0)
	assert.NoError(err)
	assert.Equal("test\n", text)

	// Too small keeps the previous memory.
	assert.False(mem.Reset(10))
	assert.Equal(MEMORY_MIN, mem.Size())

	defines := maps.Collect(mem.Defines())
	assert.Equal(map[string]string{
		"MEM_SIZE":     "10000",
		"MEM_TEXT":     "0",
		"MEM_RESERVED": "5000",
	}, defines)
}

func TestMemoryReadWrite(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	mem.Reset(MEMORY_MIN)

	assert.NoError(mem.Write(10, -3))
	value, err := mem.Read(10)
	assert.NoError(err)
	assert.Equal(int32(-3), value)

	assert.Equal(ErrMemoryRange{Address: -1, Length: 1}, mem.Write(-1, 1))
	value, err = mem.Read(MEMORY_MIN)
	assert.Error(err)
	assert.Equal(int32(0), value)

	next, err := mem.WriteText(MEMORY_MIN-2, "abc")
	assert.Error(err)
	assert.Equal(MEMORY_MIN-2, next)
	assert.Equal(int32(0), mem.Cell[MEMORY_MIN-2])

	next, err = mem.WriteText(20, "héllo")
	assert.NoError(err)
	assert.Equal(25, next)
	assert.Equal(int32('é'), mem.Cell[21])
}

func TestMemoryFill(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	mem.Reset(MEMORY_MIN)

	assert.NoError(mem.Fill(5, 7, 9))
	assert.Equal([]int32{'\n', 9, 9, 9, 0}, mem.Cell[4:9])

	assert.NoError(mem.Fill(8, 8, 1))
	assert.Equal(int32(1), mem.Cell[8])

	assert.Error(mem.Fill(9, 8, 1))
	assert.Error(mem.Fill(MEMORY_MIN-1, MEMORY_MIN, 1))
	assert.Equal(int32(0), mem.Cell[MEMORY_MIN-1])
}

func TestMemoryCopy(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	mem.Reset(MEMORY_MIN)

	for n := range 4 {
		mem.Cell[100+n] = int32(n + 1)
	}

	// Forward copy into an overlapping higher range replicates the prefix.
	assert.NoError(mem.Copy(100, 101, 4))
	assert.Equal([]int32{1, 1, 1, 1, 1}, mem.Cell[100:105])

	assert.Error(mem.Copy(0, MEMORY_MIN-1, 2))
	assert.Error(mem.Copy(-1, 0, 2))
}

func TestMemoryCompare(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	mem.Reset(MEMORY_MIN)

	mem.WriteText(100, "abc")
	mem.WriteText(200, "abd")

	sign, err := mem.Compare(100, 200, 2)
	assert.NoError(err)
	assert.Equal(0, sign)

	sign, err = mem.Compare(100, 200, 3)
	assert.NoError(err)
	assert.Equal(-1, sign)

	sign, err = mem.CompareString(200, 100)
	assert.NoError(err)
	assert.Equal(1, sign)

	mem.WriteText(300, "ab")
	sign, err = mem.CompareString(100, 300)
	assert.NoError(err)
	assert.Equal(1, sign)

	sign, err = mem.CompareString(300, 300)
	assert.NoError(err)
	assert.Equal(0, sign)

	_, err = mem.Compare(MEMORY_MIN-1, 0, 2)
	assert.Error(err)
}

func TestMemoryDump(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	mem.Reset(MEMORY_MIN)

	text, err := mem.Dump(0, 1)
	assert.NoError(err)
	assert.Equal("116\n101\n", text)

	_, err = mem.Dump(MEMORY_MIN-1, 1)
	assert.Error(err)
	_, err = mem.Dump(0, -1)
	assert.Error(err)
}
