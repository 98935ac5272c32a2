package emulator

import (
	"errors"

	"github.com/ezrec/corelang/translate"
)

var f = translate.From

var (
	ErrLoaderMissing = errors.New(f("no file loader"))
)

// ErrRuntime indicates the location of a fatal runtime error.
type ErrRuntime struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
