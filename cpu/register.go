package cpu

import (
	"fmt"
	"iter"
	"slices"
	"strconv"

	"github.com/ezrec/corelang/internal"
)

// Well known registers.
const (
	REG_PC       = "eip"    // Program counter, in the AV facet.
	REG_FLAGS    = ".flags" // Condition bits, in the FV facet.
	REG_MEM      = ".mem"   // Memory cursor, in the AV facet.
	REG_COUNTER  = "ecx"    // Default counter for loop.
	REG_ACC      = "eax"    // Default destination of readMem.
	REG_READLINE = "cr0"    // Default destination of readline.
	REG_GETKEY   = "cr1"    // Default destination of getkey.
	REG_OS       = "dr0"    // Destination of getOS.
	REG_EXIT     = "dr7"    // Exit status source.
	REG_RANDOM   = "edi"    // Destination of rand.
)

var (
	generalRegisters = []string{"eax", "ebx", "ecx", "edx", "esi", "edi", "ebp", "esp", "eip"}
	segmentRegisters = []string{"cs", "ds", "es", "fs", "gs", "ss"}
	controlRegisters = []string{"cr0", "cr1", "cr2", "cr3", "cr4", "cr5", "cr6", "cr7"}
	debugRegisters   = []string{"dr0", "dr1", "dr2", "dr3", "dr4", "dr5", "dr6", "dr7"}
	specialRegisters = []string{REG_FLAGS, REG_MEM}
)

// Register is a named register with four independent facets.
type Register struct {
	Name string // Register name.
	Id   int    // Catalogue index.

	Value Value // Generic value.
	AV    int32 // 32-bit accumulator view.
	FV    int32 // Flag bits view.
	LV    int64 // 64-bit wide view.
}

// Reset clears all facets. The generic value returns to integer zero.
func (reg *Register) Reset() {
	reg.Value = Integer(0)
	reg.AV = 0
	reg.FV = 0
	reg.LV = 0
}

// String returns the register dump line.
func (reg *Register) String() string {
	fv := strconv.FormatInt(int64(uint32(reg.FV)), 2)
	for len(fv) < FLAG_BITS {
		fv = "0" + fv
	}
	return fmt.Sprintf("%v-%v: %v av=%v fv=%v lv=%v", reg.Name, reg.Id, reg.Value, reg.AV, fv, reg.LV)
}

// RegisterFile is the fixed register catalogue of a cpu.
type RegisterFile struct {
	Register []*Register // Registers in catalogue order.

	byName map[string]*Register
	pc     *Register
	flags  *Register
	mem    *Register
}

// NewRegisterFile creates the register catalogue.
func NewRegisterFile() (rf *RegisterFile) {
	rf = &RegisterFile{
		byName: make(map[string]*Register),
	}

	names := internal.IterSeqConcat(
		slices.Values(generalRegisters),
		slices.Values(segmentRegisters),
		slices.Values(controlRegisters),
		slices.Values(debugRegisters),
		slices.Values(specialRegisters),
	)

	for name := range names {
		reg := &Register{Name: name, Id: len(rf.Register)}
		reg.Reset()
		rf.Register = append(rf.Register, reg)
		rf.byName[name] = reg
	}

	rf.pc = rf.byName[REG_PC]
	rf.flags = rf.byName[REG_FLAGS]
	rf.mem = rf.byName[REG_MEM]

	return
}

// All returns an iterator over the registers in catalogue order.
func (rf *RegisterFile) All() iter.Seq[*Register] {
	return slices.Values(rf.Register)
}

// Reset clears every register.
func (rf *RegisterFile) Reset() {
	for _, reg := range rf.Register {
		reg.Reset()
	}
}

// Get looks up a register by name.
func (rf *RegisterFile) Get(name string) (reg *Register, err error) {
	reg, ok := rf.byName[name]
	if !ok {
		err = ErrRegisterInvalid(name)
	}
	return
}

// Has returns true if the name is a register.
func (rf *RegisterFile) Has(name string) bool {
	_, ok := rf.byName[name]
	return ok
}

// Pc returns the program counter.
func (rf *RegisterFile) Pc() int {
	return int(rf.pc.AV)
}

// SetPc sets the program counter.
func (rf *RegisterFile) SetPc(pc int) {
	rf.pc.AV = int32(pc)
}

// Cursor returns the memory cursor.
func (rf *RegisterFile) Cursor() int {
	return int(rf.mem.AV)
}

// SetCursor sets the memory cursor.
func (rf *RegisterFile) SetCursor(addr int) {
	rf.mem.AV = int32(addr)
}

// GetValue returns the generic value, or Empty for an unknown register.
func (rf *RegisterFile) GetValue(name string) (value Value, err error) {
	reg, err := rf.Get(name)
	if err != nil {
		return Empty, err
	}
	return reg.Value, nil
}

// GetAV returns the AV facet, or -1 for an unknown register.
func (rf *RegisterFile) GetAV(name string) (value int32, err error) {
	reg, err := rf.Get(name)
	if err != nil {
		return -1, err
	}
	return reg.AV, nil
}

// GetLV returns the LV facet, or -1 for an unknown register.
func (rf *RegisterFile) GetLV(name string) (value int64, err error) {
	reg, err := rf.Get(name)
	if err != nil {
		return -1, err
	}
	return reg.LV, nil
}

// GetFV returns the FV facet, or 0 for an unknown register.
func (rf *RegisterFile) GetFV(name string) (value int32, err error) {
	reg, err := rf.Get(name)
	if err != nil {
		return 0, err
	}
	return reg.FV, nil
}

// SetValue sets the generic value. Unknown registers are left alone.
func (rf *RegisterFile) SetValue(name string, value Value) (err error) {
	reg, err := rf.Get(name)
	if err == nil {
		reg.Value = value
	}
	return
}

// SetAV sets the AV facet. Unknown registers are left alone.
func (rf *RegisterFile) SetAV(name string, value int32) (err error) {
	reg, err := rf.Get(name)
	if err == nil {
		reg.AV = value
	}
	return
}

// SetLV sets the LV facet. Unknown registers are left alone.
func (rf *RegisterFile) SetLV(name string, value int64) (err error) {
	reg, err := rf.Get(name)
	if err == nil {
		reg.LV = value
	}
	return
}

// SetFV sets the FV facet. Unknown registers are left alone.
func (rf *RegisterFile) SetFV(name string, value int32) (err error) {
	reg, err := rf.Get(name)
	if err == nil {
		reg.FV = value
	}
	return
}
