package main

import (
	"bytes"
	"errors"
	"io"
	"log"
	"os"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/corelang/emulator"
	"github.com/ezrec/corelang/host"
)

func newTestEmulator(files fstest.MapFS) (emu *emulator.Emulator, output *bytes.Buffer) {
	output = &bytes.Buffer{}
	emu = emulator.NewEmulator(host.New(strings.NewReader(""), output), &host.Files{FS: files})
	emu.SetLog(log.New(io.Discard, "", 0))
	return
}

func TestHaltCode(t *testing.T) {
	assert := assert.New(t)

	emu, _ := newTestEmulator(nil)
	assert.NoError(emu.Reset())

	ret := emu.Execute([]string{"ret"})
	exit := emu.Execute([]string{"setAV dr7 3", "exit"})
	fault := emu.Execute([]string{"frobnicate"})

	table := []struct {
		name string
		err  error
		repl bool
		code int
		halt bool
	}{
		{"ok", nil, false, 0, false},
		{"ret", ret, false, -1, true},
		{"ret-repl", ret, true, -1, true},
		{"exit", exit, false, 3, true},
		{"exit-repl", exit, true, 0, false},
		{"fault", fault, false, 0, false},
		{"other", errors.New("other"), true, 0, false},
	}

	for _, entry := range table {
		code, halt := haltCode(entry.err, entry.repl)
		assert.Equal(entry.halt, halt, entry.name)
		assert.Equal(entry.code, code, entry.name)
	}

	assert.Equal(-1, exitStatus(ret))
	assert.Equal(3, exitStatus(exit))
	assert.Equal(1, exitStatus(fault))
	assert.Equal(0, exitStatus(nil))
}

func TestShellHalt(t *testing.T) {
	assert := assert.New(t)

	var codes []int
	exitProcess = func(code int) { codes = append(codes, code) }
	defer func() { exitProcess = os.Exit }()

	emu, output := newTestEmulator(fstest.MapFS{
		"exit.asm":  {Data: []byte("writeln hi\nsetAV dr7 5\nexit\n")},
		"ret.asm":   {Data: []byte("ret\n")},
		"fault.asm": {Data: []byte("frobnicate\n")},
		"done.asm":  {Data: []byte("writeln done\n")},
	})
	sh := newShell(emu)

	sh.runFile("exit.asm")
	assert.Equal("hi\n", output.String())
	assert.Equal([]int{5}, codes)

	sh.runFile("ret.asm")
	assert.Equal([]int{5, -1}, codes)

	// Faults and normal ends return to the shell.
	sh.runFile("fault.asm")
	sh.runFile("done.asm")
	assert.Equal([]int{5, -1}, codes)

	// In the REPL, exit leaves the REPL and a ret with an empty stack halts.
	codes = nil
	assert.NoError(emu.Reset())
	assert.False(sh.replLine("setAV eax 1"))
	assert.True(sh.replLine("exit"))
	assert.Empty(codes)
	assert.True(sh.replLine("ret"))
	assert.Equal([]int{-1}, codes)
}
