//go:build !unix

package host

import (
	"runtime"
)

func platform() (id int32, version string) {
	id = PLATFORM_OTHER
	if runtime.GOOS == "windows" {
		id = PLATFORM_WINDOWS
	}
	return id, runtime.GOOS
}
