// Package keyboard describes key presses shared by the cpu and its hosts.
package keyboard

import (
	"unicode"
)

// Key modifier bits.
const (
	MOD_ALT     = int32(1 << 0) // alt
	MOD_SHIFT   = int32(1 << 1) // shift
	MOD_CONTROL = int32(1 << 2) // control
)

// Key codes for keys without a printable letter or digit.
const (
	KEY_BACKSPACE = int32(8)  // backspace
	KEY_TAB       = int32(9)  // tab
	KEY_ENTER     = int32(13) // enter
	KEY_ESCAPE    = int32(27) // escape
	KEY_SPACE     = int32(32) // space
)

// Key is a single key press.
type Key struct {
	Char      rune  // Character produced by the key.
	Code      int32 // Key code; letters and digits use their upper case ASCII.
	Modifiers int32 // MOD_* bits.
}

// KeyOf maps a character read from a terminal to a key press.
func KeyOf(r rune) (key Key) {
	key.Char = r

	switch {
	case r == '\r' || r == '\n':
		key.Code = KEY_ENTER
	case r == '\t':
		key.Code = KEY_TAB
	case r == 0x7f || r == 0x08:
		key.Code = KEY_BACKSPACE
	case r == 0x1b:
		key.Code = KEY_ESCAPE
	case r == ' ':
		key.Code = KEY_SPACE
	case r >= 0x01 && r <= 0x1a:
		key.Code = 'A' + r - 1
		key.Modifiers = MOD_CONTROL
	case r >= 'a' && r <= 'z':
		key.Code = r - 'a' + 'A'
	case r >= 'A' && r <= 'Z':
		key.Code = r
		key.Modifiers = MOD_SHIFT
	case r >= '0' && r <= '9':
		key.Code = r
	case unicode.IsUpper(r):
		key.Modifiers = MOD_SHIFT
	}

	return
}
