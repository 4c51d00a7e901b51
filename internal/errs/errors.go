package errs

import "errors"

var (
	ErrNoSpace     = errors.New("heap: no space")
	ErrBadArgument = errors.New("heap: bad argument")
	ErrPointerType = errors.New("heap: type contains pointer data")
)
