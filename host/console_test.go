package host

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/corelang/keyboard"
)

func TestConsoleReadLine(t *testing.T) {
	assert := assert.New(t)

	con := &Console{Input: strings.NewReader("first\r\nsecond\nlast")}

	line, err := con.ReadLine()
	assert.NoError(err)
	assert.Equal("first", line)

	line, err = con.ReadLine()
	assert.NoError(err)
	assert.Equal("second", line)

	line, err = con.ReadLine()
	assert.NoError(err)
	assert.Equal("last", line)

	_, err = con.ReadLine()
	assert.ErrorIs(err, io.EOF)
}

func TestConsoleReadKey(t *testing.T) {
	assert := assert.New(t)

	con := &Console{Input: strings.NewReader("aZ\x03\x1bx\n")}

	table := []keyboard.Key{
		{Char: 'a', Code: 'A'},
		{Char: 'Z', Code: 'Z', Modifiers: keyboard.MOD_SHIFT},
		{Char: 0x03, Code: 'C', Modifiers: keyboard.MOD_CONTROL},
		{Char: 'x', Code: 'X', Modifiers: keyboard.MOD_ALT},
		{Char: '\n', Code: keyboard.KEY_ENTER},
	}

	for n, expected := range table {
		key, err := con.ReadKey()
		assert.NoError(err, n)
		assert.Equal(expected, key, n)
	}

	_, err := con.ReadKey()
	assert.ErrorIs(err, io.EOF)
}

func TestConsoleWrite(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	con := &Console{Output: output}

	assert.NoError(con.Write("hello"))
	assert.NoError(con.Beep(800, 200))
	assert.NoError(con.Clear())
	assert.Equal("hello"+BELL+CLEAR_SCREEN, output.String())
}

func TestConsoleMissing(t *testing.T) {
	assert := assert.New(t)

	con := &Console{}

	_, err := con.ReadLine()
	assert.ErrorIs(err, ErrConsoleInput)
	_, err = con.ReadKey()
	assert.ErrorIs(err, ErrConsoleInput)
	assert.ErrorIs(con.Write("x"), ErrConsoleOutput)
}
