package cpu

import (
	"fmt"
	"iter"
	"maps"
	"strconv"
	"strings"
)

const (
	MEMORY_SIZE     = 65775 // Default number of cells.
	MEMORY_MIN      = 10000 // Smallest memory that Reset accepts.
	MEMORY_RESERVED = 5000  // Cells from the top reserved for scratch strings.

	MEMORY_TEXT_LABEL     = "Text"     // Seeded text region.
	MEMORY_RESERVED_LABEL = "Reserved" // Scratch region.
)

// memorySeed is copied to the Text region on reset.
var memorySeed = []int32{'t', 'e', 's', 't', '\n', 0}

// Memory is a flat array of integer cells with named regions.
type Memory struct {
	Cell  []int32        // Addressable cells.
	Label map[string]int // Named regions.
}

// Reset reallocates the memory with size cells, and seeds the Text and
// Reserved regions. Sizes below MEMORY_MIN leave the memory unchanged.
func (mem *Memory) Reset(size int) (ok bool) {
	if size < MEMORY_MIN {
		return
	}

	mem.Cell = make([]int32, size)
	copy(mem.Cell, memorySeed)

	mem.Label = map[string]int{
		MEMORY_TEXT_LABEL:     0,
		MEMORY_RESERVED_LABEL: size - MEMORY_RESERVED,
	}

	return true
}

// Defines returns the region addresses as preprocessor macros.
func (mem *Memory) Defines() iter.Seq2[string, string] {
	defines := map[string]string{
		"MEM_SIZE": strconv.Itoa(len(mem.Cell)),
	}
	for name, addr := range mem.Label {
		defines["MEM_"+strings.ToUpper(name)] = strconv.Itoa(addr)
	}
	return maps.All(defines)
}

// Size returns the number of cells.
func (mem *Memory) Size() int {
	return len(mem.Cell)
}

// Reserved returns the start of the scratch region.
func (mem *Memory) Reserved() int {
	return mem.Label[MEMORY_RESERVED_LABEL]
}

func (mem *Memory) inRange(addr, length int) bool {
	return addr >= 0 && length >= 0 && addr+length <= len(mem.Cell)
}

// Read a cell. Out of range reads return 0 and an error.
func (mem *Memory) Read(addr int) (value int32, err error) {
	if !mem.inRange(addr, 1) {
		err = ErrMemoryRange{Address: addr, Length: 1}
		return
	}
	value = mem.Cell[addr]
	return
}

// Write a cell. Out of range writes are dropped with an error.
func (mem *Memory) Write(addr int, value int32) (err error) {
	if !mem.inRange(addr, 1) {
		err = ErrMemoryRange{Address: addr, Length: 1}
		return
	}
	mem.Cell[addr] = value
	return
}

// WriteText writes one cell per character, returning the address after the
// last written cell. Nothing is written if the text does not fit.
func (mem *Memory) WriteText(addr int, text string) (next int, err error) {
	runes := []rune(text)
	if !mem.inRange(addr, len(runes)) {
		err = ErrMemoryRange{Address: addr, Length: len(runes)}
		return addr, err
	}
	for n, r := range runes {
		mem.Cell[addr+n] = int32(r)
	}
	return addr + len(runes), nil
}

// Fill sets the cells start..end inclusive to value.
func (mem *Memory) Fill(start, end int, value int32) (err error) {
	if start > end || !mem.inRange(start, end-start+1) {
		err = ErrMemoryRange{Address: start, Length: end - start + 1}
		return
	}
	for addr := start; addr <= end; addr++ {
		mem.Cell[addr] = value
	}
	return
}

// Copy moves length cells from src to dst, one cell at a time in ascending
// address order. Overlapping ranges with dst above src replicate the prefix.
func (mem *Memory) Copy(src, dst, length int) (err error) {
	if !mem.inRange(src, length) {
		err = ErrMemoryRange{Address: src, Length: length}
		return
	}
	if !mem.inRange(dst, length) {
		err = ErrMemoryRange{Address: dst, Length: length}
		return
	}
	for n := range length {
		mem.Cell[dst+n] = mem.Cell[src+n]
	}
	return
}

// Compare returns the sign of the first differing cell between two blocks.
func (mem *Memory) Compare(a, b, length int) (sign int, err error) {
	if !mem.inRange(a, length) {
		err = ErrMemoryRange{Address: a, Length: length}
		return
	}
	if !mem.inRange(b, length) {
		err = ErrMemoryRange{Address: b, Length: length}
		return
	}
	for n := range length {
		va := mem.Cell[a+n]
		vb := mem.Cell[b+n]
		switch {
		case va < vb:
			return -1, nil
		case va > vb:
			return 1, nil
		}
	}
	return 0, nil
}

// CompareString compares two null terminated strings. The scan stops at the
// first null cell in either operand.
func (mem *Memory) CompareString(a, b int) (sign int, err error) {
	for offset := 0; ; offset++ {
		var va, vb int32
		va, err = mem.Read(a + offset)
		if err != nil {
			return
		}
		vb, err = mem.Read(b + offset)
		if err != nil {
			return
		}
		switch {
		case va < vb:
			return -1, nil
		case va > vb:
			return 1, nil
		}
		if va == 0 || vb == 0 {
			return 0, nil
		}
	}
}

// CString returns the null terminated string at addr.
func (mem *Memory) CString(addr int) (text string, err error) {
	if !mem.inRange(addr, 1) {
		err = ErrMemoryRange{Address: addr, Length: 1}
		return
	}
	var sb strings.Builder
	for _, cell := range mem.Cell[addr:] {
		if cell == 0 {
			break
		}
		sb.WriteRune(rune(cell))
	}
	return sb.String(), nil
}

// Dump formats the cells start..start+length inclusive, one per line.
func (mem *Memory) Dump(start, length int) (text string, err error) {
	if length < 0 || !mem.inRange(start, length+1) {
		err = ErrMemoryRange{Address: start, Length: length + 1}
		return
	}
	var sb strings.Builder
	for _, cell := range mem.Cell[start : start+length+1] {
		fmt.Fprintf(&sb, "%v\n", cell)
	}
	return sb.String(), nil
}
