package host

import (
	"errors"

	"github.com/ezrec/corelang/translate"
)

var f = translate.From

var (
	// Console errors
	ErrConsoleInput   = errors.New(f("console has no input"))
	ErrConsoleOutput  = errors.New(f("console has no output"))
	ErrRawUnsupported = errors.New(f("raw terminal mode not supported"))
)
