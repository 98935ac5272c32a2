package host

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/ezrec/corelang/keyboard"
)

const (
	// ANSI sequence clearing the screen and homing the cursor.
	CLEAR_SCREEN = "\033[2J\033[H"
	// Audible bell.
	BELL = "\a"
)

// Console is a line and key oriented terminal. It wraps an io.Reader for
// input and an io.Writer for output.
type Console struct {
	Input  io.Reader
	Output io.Writer
	Raw    bool // If set, key reads put a terminal input in raw mode.

	reader *bufio.Reader
}

func (con *Console) input() (reader *bufio.Reader, err error) {
	if con.Input == nil {
		err = ErrConsoleInput
		return
	}
	if con.reader == nil {
		con.reader = bufio.NewReader(con.Input)
	}
	return con.reader, nil
}

// ReadLine reads a line, without its line ending. A final line without an
// ending is returned with a nil error; io.EOF is returned after that.
func (con *Console) ReadLine() (line string, err error) {
	reader, err := con.input()
	if err != nil {
		return
	}

	line, err = reader.ReadString('\n')
	if err == io.EOF && len(line) > 0 {
		err = nil
	}
	line = strings.TrimRight(line, "\r\n")
	return
}

// ReadKey reads a single key press.
func (con *Console) ReadKey() (key keyboard.Key, err error) {
	reader, err := con.input()
	if err != nil {
		return
	}

	if file, ok := con.Input.(*os.File); ok && con.Raw {
		restore, rerr := setRawMode(file.Fd())
		if rerr == nil {
			defer restore()
		}
	}

	r, _, err := reader.ReadRune()
	if err != nil {
		return
	}

	key = keyboard.KeyOf(r)

	// ESC followed by a character is an Alt chord.
	if r == 0x1b && reader.Buffered() > 0 {
		next, _, nerr := reader.ReadRune()
		if nerr == nil {
			key = keyboard.KeyOf(next)
			key.Modifiers |= keyboard.MOD_ALT
		}
	}

	return
}

// Write sends text to the output.
func (con *Console) Write(text string) (err error) {
	if con.Output == nil {
		err = ErrConsoleOutput
		return
	}
	_, err = io.WriteString(con.Output, text)
	return
}

// Clear clears the screen.
func (con *Console) Clear() error {
	return con.Write(CLEAR_SCREEN)
}

// Beep rings the terminal bell. Terminals have no control over the tone.
func (con *Console) Beep(frequency, duration int) error {
	return con.Write(BELL)
}
