//go:build linux

package host

import (
	"github.com/pkg/errors"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// setRawMode switches a terminal to unbuffered, unechoed input. The
// returned function restores the previous mode.
func setRawMode(fd uintptr) (restore func(), err error) {
	var tios unix.Termios
	err = termios.Tcgetattr(fd, &tios)
	if err != nil {
		err = errors.Wrap(err, "tcgetattr")
		return
	}

	raw := tios
	raw.Lflag &^= unix.ICANON | unix.IEXTEN | unix.ECHO
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0
	err = termios.Tcsetattr(fd, termios.TCSANOW, &raw)
	if err != nil {
		termios.Tcsetattr(fd, termios.TCSANOW, &tios)
		err = errors.Wrap(err, "tcsetattr")
		return
	}

	restore = func() {
		termios.Tcsetattr(fd, termios.TCSANOW, &tios)
	}
	return
}
