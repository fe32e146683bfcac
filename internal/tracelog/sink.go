package tracelog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// Sink is a named output destination for log lines.
type Sink interface {
	// Name returns the identifier the sink is registered under.
	Name() string
	// WriteLine writes one complete line, terminator included.
	// It returns ErrSinkClosed after Close.
	WriteLine(line string) error
	// Close flushes and releases the underlying resource. Calls after the
	// first return the first call's result.
	Close() error
}

// writerSink serialises writes to an io.Writer and closes it exactly once.
type writerSink struct {
	name string

	mu       sync.Mutex
	w        io.Writer
	closed   bool
	closeErr error
}

// NewWriterSink returns a Sink writing to w. If w implements io.Closer it is
// closed when the sink is closed, unless w is os.Stdout or os.Stderr.
func NewWriterSink(name string, w io.Writer) Sink {
	return &writerSink{name: name, w: w}
}

// NewFileSink opens path for appending, creating it and its parent
// directories if needed, and returns a Sink named after the path.
func NewFileSink(path string) (Sink, error) {
	f, err := OpenLogFile(path)
	if err != nil {
		return nil, err
	}
	return &writerSink{name: path, w: f}, nil
}

func (s *writerSink) Name() string {
	return s.name
}

func (s *writerSink) WriteLine(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSinkClosed
	}
	_, err := io.WriteString(s.w, line)
	return err
}

func (s *writerSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return s.closeErr
	}
	s.closed = true

	if f, ok := s.w.(*os.File); ok {
		if f == os.Stdout || f == os.Stderr {
			return nil
		}
		// Pipes and terminals reject fsync.
		if fi, err := f.Stat(); err == nil && fi.Mode().IsRegular() {
			if err := f.Sync(); err != nil {
				s.closeErr = fmt.Errorf("sync %s: %w", s.name, err)
			}
		}
	}
	if c, ok := s.w.(io.Closer); ok {
		if err := c.Close(); err != nil && s.closeErr == nil {
			s.closeErr = fmt.Errorf("close %s: %w", s.name, err)
		}
	}
	return s.closeErr
}

// OpenLogFile opens a log file for writing, creating parent directories if needed.
// The file is opened in append mode and never truncated.
func OpenLogFile(path string) (*os.File, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0640)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return f, nil
}

// DefaultLogPath returns the default log file path following XDG conventions.
// Returns ~/.local/state/tracelog/tracelog.log
func DefaultLogPath() string {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		stateDir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateDir, "tracelog", "tracelog.log")
}
