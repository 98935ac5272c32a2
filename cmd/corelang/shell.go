package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	pkgerrors "github.com/pkg/errors"

	"github.com/ezrec/corelang/cpu"
	"github.com/ezrec/corelang/emulator"
)

const (
	historyFile = ".corelang_history"

	PROMPT_SHELL = "> "
	PROMPT_REPL  = ">>> "
	PROMPT_FILE  = "File: "
	PROMPT_BRK   = "(brk) "
)

var exitProcess = os.Exit

var shellCommands = []struct {
	name string
	help string
}{
	{"help", "show this list"},
	{"run", "run a program file"},
	{"repl", "execute instructions one line at a time"},
	{"clear", "clear the screen"},
	{"exit", "leave"},
}

// shell is the interactive front end.
type shell struct {
	emu     *emulator.Emulator
	ln      *liner.State
	history string
	inRepl  bool
	closed  bool
}

func newShell(emu *emulator.Emulator) (sh *shell) {
	sh = &shell{emu: emu}

	home, err := os.UserHomeDir()
	if err == nil {
		sh.history = filepath.Join(home, historyFile)
	}

	return
}

// line returns the line editor, creating it on first use.
func (sh *shell) line() *liner.State {
	if sh.ln != nil {
		return sh.ln
	}

	sh.ln = liner.NewLiner()
	sh.ln.SetCtrlCAborts(true)
	sh.ln.SetCompleter(sh.complete)

	if len(sh.history) != 0 {
		if f, err := os.Open(sh.history); err == nil {
			_, _ = sh.ln.ReadHistory(f)
			_ = f.Close()
		}
	}

	return sh.ln
}

// Close saves the history and restores the terminal.
func (sh *shell) Close() (err error) {
	if sh.ln == nil || sh.closed {
		return
	}
	sh.closed = true

	if len(sh.history) != 0 {
		var f *os.File
		f, err = os.Create(sh.history)
		if err == nil {
			_, err = sh.ln.WriteHistory(f)
			f.Close()
		}
		err = pkgerrors.Wrap(err, "history")
	}

	sh.ln.Close()
	return
}

func (sh *shell) complete(line string) (c []string) {
	var names []string
	if sh.inRepl {
		names = sh.emu.Instructions.Names()
	} else {
		for _, cmd := range shellCommands {
			names = append(names, cmd.name)
		}
	}

	for _, name := range names {
		if strings.HasPrefix(name, line) {
			c = append(c, name)
		}
	}
	return
}

// prompt reads a line. ok is false at end of input or on Ctrl-C.
func (sh *shell) prompt(text string) (line string, ok bool) {
	line, err := sh.line().Prompt(text)
	if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
		return "", false
	}
	if err != nil {
		fmt.Println(err)
		return "", false
	}
	return line, true
}

// Run is the top level command loop, and returns the process status.
func (sh *shell) Run() int {
	for {
		line, ok := sh.prompt(PROMPT_SHELL)
		if !ok {
			fmt.Println()
			return 0
		}

		command := strings.TrimSpace(line)
		if len(command) == 0 {
			continue
		}
		sh.line().AppendHistory(command)

		switch command {
		case "help":
			for _, cmd := range shellCommands {
				fmt.Printf("  %-6v %v\n", cmd.name, cmd.help)
			}
		case "run":
			name, ok := sh.prompt(PROMPT_FILE)
			if !ok {
				continue
			}
			sh.runFile(strings.TrimSpace(name))
		case "repl":
			sh.repl()
		case "clear":
			sh.emu.Host.Clear()
		case "exit":
			return 0
		default:
			fmt.Printf("Unknown command '%v', try 'help'\n", command)
		}
	}
}

// runFile runs a program. An exit or a ret with an empty stack ends the
// process with its status.
func (sh *shell) runFile(name string) {
	err := sh.emu.RunFile(name)
	code := exitStatus(err)
	if _, halt := haltCode(err, false); halt {
		sh.halt(code)
		return
	}
	fmt.Printf("\n------ exit status %v\n", code)
}

// halt ends the process.
func (sh *shell) halt(code int) {
	sh.Close()
	exitProcess(code)
}

// repl executes one line at a time against persistent state, until an
// exit or end of input.
func (sh *shell) repl() {
	sh.inRepl = true
	defer func() { sh.inRepl = false }()

	err := sh.emu.Reset()
	if err != nil {
		fmt.Println(err)
		return
	}

	for {
		line, ok := sh.prompt(PROMPT_REPL)
		if !ok {
			fmt.Println()
			return
		}
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}
		sh.line().AppendHistory(line)

		if sh.replLine(line) {
			return
		}
	}
}

// replLine executes a single REPL line, and reports whether to leave the
// REPL.
func (sh *shell) replLine(line string) (leave bool) {
	err := sh.emu.Execute([]string{line})
	if code, halt := haltCode(err, true); halt {
		exitStatus(err)
		sh.halt(code)
		return true
	}

	var exit cpu.ErrExit
	return errors.As(err, &exit)
}

// breakpoint stops at a brk instruction until the user continues.
func (sh *shell) breakpoint(c *cpu.Cpu) {
	line, _ := c.Program.Line(c.Registers.Pc())
	fmt.Printf("brk at %03d: %v\n", c.Registers.Pc(), line)

	for {
		command, ok := sh.prompt(PROMPT_BRK)
		if !ok {
			return
		}

		words := strings.Fields(command)
		switch {
		case len(words) == 0 || words[0] == "c":
			return
		case words[0] == "regs":
			fmt.Print(c.String())
		case words[0] == "show" && len(words) == 2:
			reg, err := c.Registers.Get(words[1])
			if err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Println(reg.String())
		case words[0] == "stack":
			fmt.Println(c.Stack.Data)
		default:
			fmt.Println("c: continue, regs, show <reg>, stack")
		}
	}
}
