package helpers

import (
	"fmt"
	"runtime"
)

// SystemError wraps external errors (such as DB or the AI provider) and lets
// the caller add additional context information
type SystemError struct {
	Context string // eg. Function Name
	Err     error
}

func (se *SystemError) Error() string {
	return fmt.Sprintf("%s: %v", se.Context, se.Err)
}

func (se *SystemError) Unwrap() error {
	return se.Err
}

// WrapError lets the caller add context information to another error
// (eg. after receiving a DB error)
func WrapError(err error, info string) *SystemError {
	return &SystemError{
		Context: info,
		Err:     err,
	}
}

// FuncName returns the name of the calling function only
// (easier calling in error handlers)
func FuncName() string {
	pc, _, _, ok := runtime.Caller(1)
	if !ok {
		return "?"
	}

	fn := runtime.FuncForPC(pc)
	return fn.Name()
}
