package emulator

import (
	"bytes"
	"errors"
	"log"
	"maps"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/corelang/cpu"
	"github.com/ezrec/corelang/host"
)

type testEmulator struct {
	*Emulator
	Output *bytes.Buffer
	Diag   *bytes.Buffer
}

func newTestEmulator(input string, files fstest.MapFS) (te *testEmulator) {
	te = &testEmulator{
		Output: &bytes.Buffer{},
		Diag:   &bytes.Buffer{},
	}

	h := host.New(strings.NewReader(input), te.Output)
	h.Seed(1)

	te.Emulator = NewEmulator(h, &host.Files{FS: files})
	te.SetLog(log.New(te.Diag, "", 0))

	return
}

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	te := newTestEmulator("", nil)

	assert.False(te.Verbose)
	assert.Equal(cpu.MEMORY_SIZE, te.MemorySize)
	assert.NoError(te.Reset())
	assert.Equal(cpu.MEMORY_SIZE, te.Memory.Size())

	defines := maps.Collect(te.Defines())
	assert.Equal("65775", defines["MEM_SIZE"])
	assert.Equal("0", defines["MEM_TEXT"])
	assert.Equal("60775", defines["MEM_RESERVED"])
	assert.Equal("2", defines["OS_WINDOWS"])
	assert.Equal("4", defines["OS_UNIX"])
	assert.Equal("6", defines["OS_MACOSX"])
	assert.Equal("7", defines["OS_OTHER"])

	assert.NoError(te.Execute([]string{
		"getOS",
		"cmp dr0 %OS_WINDOWS%",
		"jz known",
		"cmp dr0 %OS_UNIX%",
		"jz known",
		"cmp dr0 %OS_MACOSX%",
		"jz known",
		"cmp dr0 %OS_OTHER%",
		"jz known",
		"writeln unknown",
		"known:",
	}))
	assert.Empty(te.Output.String())
}

func TestEmulatorMemorySize(t *testing.T) {
	assert := assert.New(t)

	te := newTestEmulator("", nil)
	te.MemorySize = 10

	assert.ErrorIs(te.Reset(), cpu.ErrMemoryUnavailable)

	te.MemorySize = cpu.MEMORY_MIN
	assert.NoError(te.Reset())
	assert.NoError(te.Execute([]string{"setAV eax %MEM_RESERVED%", "writeAV eax"}))
	assert.Equal("5000", te.Output.String())
}

func TestEmulatorExecute(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		name    string
		program []string
		output  string
	}{
		{"add", []string{"set eax 5", "add eax 3", "writeAV eax"}, "8"},
		{"loop", []string{"loop_start:", "add ecx 1", "cmp ecx 3", "jnz loop_start", "writeAV ecx"}, "3"},
		{"call", []string{"call sub", "jmp end", "sub:", "writeln hi", "ret", "end:"}, "hi\n"},
		{"macro", []string{"#who world ; greeting", "writeln hello %who%"}, "hello world\n"},
		{"expr", []string{"setAV eax $(MEM_RESERVED + 1)", "writeAV eax"}, "60776"},
	}

	for _, entry := range table {
		te := newTestEmulator("", nil)
		assert.NoError(te.Reset(), entry.name)
		err := te.Execute(entry.program)
		assert.NoError(err, entry.name)
		assert.Equal(entry.output, te.Output.String(), entry.name)
		assert.Empty(te.Diag.String(), entry.name)
	}
}

func TestEmulatorPersistent(t *testing.T) {
	assert := assert.New(t)

	te := newTestEmulator("", nil)
	assert.NoError(te.Reset())

	for _, line := range []string{"setAV eax 40", "push eax", "add eax 2", "writeMem 100 ok 0"} {
		assert.NoError(te.Execute([]string{line}))
	}
	assert.NoError(te.Execute([]string{"writeAV eax", "pop ebx", "writeAV ebx", "printMem 100"}))
	assert.Equal("4240ok", te.Output.String())

	// Reset clears everything.
	assert.NoError(te.Reset())
	te.Output.Reset()
	assert.NoError(te.Execute([]string{"writeAV eax", "printMem 100"}))
	assert.Equal("0", te.Output.String())
}

func TestEmulatorFatal(t *testing.T) {
	assert := assert.New(t)

	te := newTestEmulator("", nil)
	assert.NoError(te.Reset())

	err := te.Execute([]string{"writeln a", "bogus 1 2", "writeln b"})
	var rt *ErrRuntime
	assert.True(errors.As(err, &rt))
	assert.Equal(1, rt.LineNo)
	assert.Equal("bogus 1 2", rt.Line)
	assert.ErrorIs(err, cpu.ErrInstructionInvalid("bogus"))
	assert.Equal("a\n", te.Output.String())
	assert.Contains(te.Diag.String(), "Program terminated...")

	te.Diag.Reset()
	err = te.Execute([]string{"ret"})
	var exit cpu.ErrExit
	assert.True(errors.As(err, &exit))
	assert.Equal(-1, exit.Code)
	assert.NotContains(te.Diag.String(), "Program terminated...")
}

func TestEmulatorRunFile(t *testing.T) {
	assert := assert.New(t)

	files := fstest.MapFS{
		"main.asm": &fstest.MapFile{Data: []byte(strings.Join([]string{
			"jmp main",
			"#import lib/print.asm",
			"main:",
			"setAV eax 7",
			"call print",
			"jmp end",
			"#import lib/missing.asm",
			"end:",
		}, "\n"))},
		"lib/print.asm": &fstest.MapFile{Data: []byte("print:\nwriteAV eax\nnewline\nret\n")},
	}

	te := newTestEmulator("", files)
	te.Registers.Register[0].AV = 99

	err := te.RunFile("main.asm")
	assert.NoError(err)
	assert.Equal("7\n", te.Output.String())
	assert.Contains(te.Diag.String(), cpu.ErrImportMissing.Error())

	err = te.RunFile("nothing.asm")
	assert.Error(err)
}

func TestEmulatorRunFileNoLoader(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(host.New(strings.NewReader(""), &bytes.Buffer{}), nil)
	assert.ErrorIs(emu.RunFile("main.asm"), ErrLoaderMissing)
}

func TestEmulatorConsole(t *testing.T) {
	assert := assert.New(t)

	te := newTestEmulator("Ada\n", nil)
	assert.NoError(te.Reset())

	err := te.Execute([]string{
		"write \"name? \"",
		"readline",
		"write hello,",
		"write \" \"",
		"writeSrc cr0",
	})
	assert.NoError(err)
	assert.Equal("name? hello, Ada", te.Output.String())
}

func TestEmulatorIndependent(t *testing.T) {
	assert := assert.New(t)

	a := newTestEmulator("", nil)
	b := newTestEmulator("", nil)
	assert.NoError(a.Reset())
	assert.NoError(b.Reset())

	assert.NoError(a.Execute([]string{"setAV eax 1", "writeRawMem 10 1"}))
	assert.NoError(b.Execute([]string{"readMem 10", "writeAV eax"}))
	assert.Equal("0", b.Output.String())
	assert.Equal(int32(1), a.Memory.Cell[10])
}
