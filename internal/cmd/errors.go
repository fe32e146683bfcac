package cmd

import (
	"errors"
	"fmt"

	"github.com/xdg/tracelog/internal/tracelog"
)

// exitWriteError is the exit code when a log line could not be written.
const exitWriteError = 2

// ExitCodeError carries a specific process exit code.
type ExitCodeError struct {
	Code int
	Err  error
}

// NewExitCodeError returns an ExitCodeError with the given code.
func NewExitCodeError(code int) *ExitCodeError {
	return &ExitCodeError{Code: code}
}

func (e *ExitCodeError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// writeFailure maps a sink write failure to exit code 2. Other errors are
// returned unchanged.
func writeFailure(err error) error {
	var werr *tracelog.WriteError
	if errors.As(err, &werr) {
		return &ExitCodeError{Code: exitWriteError, Err: err}
	}
	return err
}
