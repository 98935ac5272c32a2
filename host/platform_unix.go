//go:build unix

package host

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// platform returns the platform identifier and kernel version.
func platform() (id int32, version string) {
	id = PLATFORM_UNIX
	if runtime.GOOS == "darwin" {
		id = PLATFORM_MACOSX
	}

	var uts unix.Utsname
	err := unix.Uname(&uts)
	if err != nil {
		return id, runtime.GOOS
	}

	version = unix.ByteSliceToString(uts.Sysname[:]) + " " + unix.ByteSliceToString(uts.Release[:])
	return
}
