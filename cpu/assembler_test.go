package cpu

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/corelang/host"
)

func newTestAssembler() (asm *Assembler, diag *bytes.Buffer) {
	diag = &bytes.Buffer{}
	asm = &Assembler{Log: log.New(diag, "", 0)}
	return
}

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm, _ := newTestAssembler()

	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, prog.Len())
	assert.Empty(prog.Label)
}

func TestAssemblerStrip(t *testing.T) {
	assert := assert.New(t)

	asm, _ := newTestAssembler()

	program := []string{
		"; a comment",
		"",
		"   ",
		"start: ; the top",
		"  add eax 1 ; count",
		"jmp start",
	}

	prog := asm.Assemble(program)
	assert.Equal([]string{"start:", "add eax 1", "jmp start"}, prog.Lines)
	assert.Empty(asm.Warnings)

	table := []struct {
		line   string
		result string
	}{
		{`writeln "a;b"`, `writeln "a;b"`},
		{`writeln "a;b" ; note`, `writeln "a;b"`},
		{`writeln \"a;b\"`, `writeln \"a`},
		{`writeln "x \" ;" ;`, `writeln "x \" ;"`},
		{`writeln "open;`, `writeln "open;`},
	}
	for _, entry := range table {
		assert.Equal(entry.result, StripComment(entry.line), entry.line)
	}

	tc := newTestCpu("")
	assert.NoError(tc.run(`writeln "a;b"`))
	assert.Equal("a;b\n", tc.Output.String())
}

func TestAssemblerLabels(t *testing.T) {
	assert := assert.New(t)

	asm, _ := newTestAssembler()

	program := []string{
		"; skipped",
		"first:",
		"writeln one",
		"",
		"second: writeln two",
		"first:",
	}

	prog := asm.Assemble(program)
	assert.Equal(4, prog.Len())

	// Each label maps to its own index; the last declaration wins.
	assert.Equal(map[string]int{"first": 3, "second": 2}, prog.Label)
	for name, pc := range prog.Label {
		line, ok := prog.Line(pc)
		assert.True(ok)
		assert.True(strings.HasPrefix(line, name+":"), line)
	}

	// Labels produced by macro substitution are indexed.
	prog = asm.Assemble([]string{
		"#lbl target:",
		"jmp target",
		"writeln skipped",
		"%lbl%",
		"writeln landed",
	})
	assert.Equal(3, prog.Label["target"])

	tc := newTestCpu("")
	assert.NoError(tc.Run(prog))
	assert.Equal("landed\n", tc.Output.String())
	assert.Empty(tc.Diag.String())
}

func TestAssemblerMacros(t *testing.T) {
	assert := assert.New(t)

	asm, _ := newTestAssembler()
	asm.Predefine("ANSWER", "42")

	program := []string{
		"#greeting hello world",
		"#loop %greeting%",
		"writeln %greeting%",
		"writeln [%undefined%]",
		"writeln %loop%",
		"setAV eax %ANSWER%",
		"writeln 50% off",
	}

	prog := asm.Assemble(program)
	assert.Equal("writeln hello world", prog.Lines[2])
	assert.Equal("writeln []", prog.Lines[3])
	// Substituted text is not scanned again.
	assert.Equal("writeln %greeting%", prog.Lines[4])
	assert.Equal("setAV eax 42", prog.Lines[5])
	assert.Equal("writeln 50 off", prog.Lines[6])
	assert.Equal("hello world", prog.Macro["greeting"])
	assert.Empty(asm.Warnings)
}

func TestAssemblerMacroSyntax(t *testing.T) {
	assert := assert.New(t)

	asm, diag := newTestAssembler()

	prog := asm.Assemble([]string{"#lonely", "writeln ok"})
	assert.Equal(2, prog.Len())
	assert.Equal(1, len(asm.Warnings))

	var se ErrSyntax
	assert.True(errors.As(asm.Warnings[0], &se))
	assert.Equal(1, se.LineNo)
	assert.ErrorIs(se, ErrMacroSyntax)
	assert.Contains(diag.String(), "Error:")
}

func TestAssemblerExpressions(t *testing.T) {
	assert := assert.New(t)

	asm, _ := newTestAssembler()

	program := []string{
		"#WIDTH 8",
		"setAV eax $(WIDTH * 4 + 1)",
		"setAV ebx $(0x10 | 1)",
		"setAV ecx $(\"text\")",
	}

	prog := asm.Assemble(program)
	assert.Equal("setAV eax 33", prog.Lines[1])
	assert.Equal("setAV ebx 17", prog.Lines[2])
	assert.Equal("setAV ecx ", prog.Lines[3])

	assert.Equal(1, len(asm.Warnings))
	var pe ErrParseExpression
	assert.True(errors.As(asm.Warnings[0], &pe))
}

func TestAssemblerImport(t *testing.T) {
	assert := assert.New(t)

	asm, _ := newTestAssembler()
	asm.Loader = &host.Files{FS: fstest.MapFS{
		"lib.asm": &fstest.MapFile{Data: []byte("#NAME lib\n#import nested.asm\nlib:\nwriteln %NAME%\nret\n")},
	}}

	program := []string{
		"call lib",
		"#import lib.asm",
		"#import missing.asm",
		"writeln done",
	}

	prog := asm.Assemble(program)
	assert.Equal([]string{
		"call lib",
		"#NAME lib",
		"#import nested.asm",
		"lib:",
		"writeln lib",
		"ret",
		"writeln done",
	}, prog.Lines)
	assert.Equal(3, prog.Label["lib"])

	assert.Equal(1, len(asm.Warnings))
	assert.ErrorIs(asm.Warnings[0], ErrImportMissing)
	var se ErrSyntax
	assert.True(errors.As(asm.Warnings[0], &se))
	assert.Equal(3, se.LineNo)
}

func TestAssemblerImportNoLoader(t *testing.T) {
	assert := assert.New(t)

	asm, _ := newTestAssembler()

	prog := asm.Assemble([]string{"#import lib.asm", "writeln x"})
	assert.Equal([]string{"writeln x"}, prog.Lines)
	assert.Equal(1, len(asm.Warnings))
	assert.ErrorIs(asm.Warnings[0], ErrImportLoader)
}

func TestReplaceMacros(t *testing.T) {
	assert := assert.New(t)

	macros := map[string]string{"a": "1", "b": "%a%", "empty": ""}

	table := []struct {
		line     string
		expected string
	}{
		{"", ""},
		{"no macros", "no macros"},
		{"%a%", "1"},
		{"%a%%a%", "11"},
		{"x %b% y", "x %a% y"},
		{"%empty%x", "x"},
		{"%missing%", ""},
		{"100%", "100"},
		{"%a% and 5%", "1 and 5"},
	}

	for _, entry := range table {
		assert.Equal(entry.expected, ReplaceMacros(entry.line, macros), entry.line)
	}
}

func FuzzReplaceMacros(f *testing.F) {
	f.Add("writeln %a% %b%")
	f.Add("%%")
	f.Add("%unterminated")
	f.Add("plain")

	macros := map[string]string{"a": "A", "b": "%a%"}

	f.Fuzz(func(t *testing.T, line string) {
		out := ReplaceMacros(line, macros)
		// Every '%' in the output came from a substituted value.
		if !strings.Contains(line, "%b%") {
			assert.NotContains(t, out, "%")
		}
	})
}
