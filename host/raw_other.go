//go:build !linux

package host

func setRawMode(fd uintptr) (restore func(), err error) {
	err = ErrRawUnsupported
	return
}
