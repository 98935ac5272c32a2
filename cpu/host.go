package cpu

import (
	"time"

	"github.com/ezrec/corelang/keyboard"
)

// Host is the set of services the cpu borrows from its environment. All
// console, clock, random and platform side effects go through it.
type Host interface {
	// ReadLine blocks for a line of console input.
	ReadLine() (line string, err error)
	// ReadKey blocks for a single key press.
	ReadKey() (key keyboard.Key, err error)
	// Write sends text to the console.
	Write(text string) error
	// Clear clears the console.
	Clear() error
	// Beep emits an audible signal.
	Beep(frequency, duration int) error
	// Platform identifies the host operating system.
	Platform() (id int32, version string)
	// Random returns a value in [min, max).
	Random(min, max int32) int32
	// Sleep suspends execution.
	Sleep(d time.Duration)
}
