package tracelog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSinkExists is returned when adding a sink under a name already registered.
	ErrSinkExists = errors.New("sink already registered")

	// ErrSinkNotFound is returned when removing a sink that is not registered.
	ErrSinkNotFound = errors.New("sink not registered")

	// ErrSinkClosed is returned by a sink written to after it was closed.
	ErrSinkClosed = errors.New("sink closed")

	// ErrInvalidIndent is returned for an indent depth outside [0, MaxIndent].
	ErrInvalidIndent = errors.New("indent must be non-negative and at most 1024")
)

// SinkError records a failed write to a single sink.
type SinkError struct {
	Sink string
	Err  error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("sink %q: %v", e.Sink, e.Err)
}

func (e *SinkError) Unwrap() error {
	return e.Err
}

// WriteError aggregates the sink failures of a single log call.
// Sinks not listed received the line.
type WriteError struct {
	Failures []*SinkError
}

func (e *WriteError) Error() string {
	parts := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		parts[i] = f.Error()
	}
	return "write log line: " + strings.Join(parts, "; ")
}

// Unwrap exposes the individual sink failures to errors.Is and errors.As.
func (e *WriteError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f
	}
	return errs
}
