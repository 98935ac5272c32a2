// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"errors"
	"io"
	"log"
	"maps"
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// LineSource loads the lines of an imported file.
type LineSource interface {
	ReadLines(name string) (lines []string, err error)
}

var exprRegexp = regexp.MustCompile(`\$\([^\$]*\)`)

// Assembler preprocesses source text into a Program.
//
// Preprocessing splices imports, strips comments and blank lines, collects
// #name value macros, substitutes %name% placeholders, evaluates $(expr)
// expressions, and finally indexes labels. Every problem found is diagnosed
// and the offending line is dropped or left as is; none of them stop
// preprocessing.
type Assembler struct {
	Verbose bool        // If set, verbosely logs the assembler actions.
	Log     *log.Logger // Diagnostic output. Defaults to standard error.
	Loader  LineSource  // Source for #import directives.

	Label    map[string]int    // Map of jump labels to line indexes.
	Macro    map[string]string // Map of macros.
	Warnings []error           // Diagnostics of the last Assemble.

	predefine map[string]string
}

// Predefine defines a macro available to every program.
func (asm *Assembler) Predefine(name string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{name: value}
	} else {
		asm.predefine[name] = value
	}
}

func (asm *Assembler) logger() *log.Logger {
	if asm.Log == nil {
		asm.Log = log.New(os.Stderr, "", 0)
	}
	return asm.Log
}

// warn records and logs a recoverable problem.
func (asm *Assembler) warn(err error) {
	asm.Warnings = append(asm.Warnings, err)
	asm.logger().Printf("Error: %v", err)
}

// Parse reads an input stream and assembles it.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	var lines []string

	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	prog = asm.Assemble(lines)
	return
}

// Assemble preprocesses raw source lines and indexes labels.
func (asm *Assembler) Assemble(source []string) (prog *Program) {
	asm.Warnings = nil

	lines := asm.importLines(source)

	// Dense sequence: comments and blank lines removed.
	code := make([]string, 0, len(lines))
	for _, line := range lines {
		line = StripComment(line)
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}
		code = append(code, line)
	}

	asm.Macro = maps.Clone(asm.predefine)
	if asm.Macro == nil {
		asm.Macro = make(map[string]string)
	}
	asm.findMacros(code)

	for n, line := range code {
		line = ReplaceMacros(line, asm.Macro)
		line = asm.expandExpressions(line, n+1)
		code[n] = line
		if asm.Verbose {
			asm.logger().Printf("%03d: %v", n, line)
		}
	}

	asm.Label = FindLabels(code)

	prog = &Program{
		Lines: code,
		Label: maps.Clone(asm.Label),
		Macro: maps.Clone(asm.Macro),
	}

	return
}

// importName returns the file named by an #import directive.
func importName(line string) (name string, ok bool) {
	text := strings.TrimSpace(line)
	rest, ok := strings.CutPrefix(text, "#import")
	if !ok || len(rest) == 0 || (rest[0] != ' ' && rest[0] != '\t') {
		return "", false
	}

	return strings.TrimSpace(StripComment(rest)), true
}

// importLines splices imported files in place of their directives. Imported
// text is not searched for further imports.
func (asm *Assembler) importLines(source []string) (lines []string) {
	for lineno, line := range source {
		name, ok := importName(line)
		if !ok {
			lines = append(lines, line)
			continue
		}

		if asm.Loader == nil {
			asm.warn(ErrSyntax{LineNo: lineno + 1, Line: line, Err: ErrImportLoader})
			continue
		}

		imported, err := asm.Loader.ReadLines(name)
		if err != nil {
			asm.warn(ErrSyntax{LineNo: lineno + 1, Line: line, Err: errors.Join(ErrImportMissing, err)})
			continue
		}

		if asm.Verbose {
			asm.logger().Printf("import %v: %v lines", name, len(imported))
		}
		lines = append(lines, imported...)
	}

	return
}

// StripComment removes everything from the first ';' outside of double
// quotes, and trims the rest. Quoting follows ParseArgs.
func StripComment(line string) string {
	in_quote := false
	for n := 0; n < len(line); n++ {
		switch line[n] {
		case '\\':
			if n+1 < len(line) && line[n+1] == '"' {
				n++
			}
		case '"':
			in_quote = !in_quote
		case ';':
			if !in_quote {
				return strings.TrimSpace(line[:n])
			}
		}
	}
	return line
}

// FindLabels maps each label declaration to its own line index. A label
// declared twice keeps its last index.
func FindLabels(code []string) (labels map[string]int) {
	labels = make(map[string]int)
	for n, line := range code {
		label, ok := labelOf(line)
		if ok {
			labels[label] = n
		}
	}
	return
}

// findMacros collects '#name value' definitions.
func (asm *Assembler) findMacros(code []string) {
	for n, line := range code {
		if !isDirective(line) {
			continue
		}
		if _, ok := importName(line); ok {
			// Nested imports stay as directives.
			continue
		}

		body := strings.TrimSpace(strings.TrimSpace(line)[1:])
		name, value := body, ""
		if split := strings.IndexFunc(body, unicode.IsSpace); split >= 0 {
			name = body[:split]
			value = strings.TrimSpace(body[split:])
		}

		if len(name) == 0 || len(value) == 0 {
			asm.warn(ErrSyntax{LineNo: n + 1, Line: line, Err: ErrMacroSyntax})
			continue
		}

		asm.Macro[name] = value
	}
}

// ReplaceMacros substitutes each %name% with its macro text, or removes it
// when the macro is undefined. Substituted text is not scanned again. A lone
// '%' without a closing partner is removed.
func ReplaceMacros(line string, macros map[string]string) string {
	index := strings.IndexByte(line, '%')
	for index >= 0 {
		end := strings.IndexByte(line[index+1:], '%')
		if end < 0 {
			line = line[:index] + line[index+1:]
			index = nextIndex(line, index, '%')
			continue
		}
		end += index + 1

		value := macros[line[index+1:end]]
		line = line[:index] + value + line[end+1:]
		index = nextIndex(line, index+len(value), '%')
	}

	return line
}

// nextIndex finds c in line at or after from.
func nextIndex(line string, from int, c byte) int {
	if from >= len(line) {
		return -1
	}
	index := strings.IndexByte(line[from:], c)
	if index < 0 {
		return -1
	}
	return from + index
}

// expandExpressions replaces each $(expr) with its value.
func (asm *Assembler) expandExpressions(line string, lineno int) string {
	if !strings.Contains(line, "$(") {
		return line
	}

	return exprRegexp.ReplaceAllStringFunc(line, func(str string) string {
		value, err := asm.parenEval(str[2 : len(str)-1])
		if err != nil {
			asm.warn(ErrSyntax{LineNo: lineno, Line: line, Err: err})
			return ""
		}
		return strconv.FormatInt(value, 10)
	})
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Macro {
		v, ok := parseLiteral(str)
		if !ok {
			// Ignore non-integer macros.
			continue
		}
		pred[key] = starlark.MakeInt64(v)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = errors.Join(ErrParseExpression(expr), err)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}
