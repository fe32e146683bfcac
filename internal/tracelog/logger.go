package tracelog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
)

// DefaultIndentUnit is repeated once per indent level in front of a message.
const DefaultIndentUnit = "   "

// ConsoleName identifies the console in a WriteError.
const ConsoleName = "<console>"

// MaxIndent is the deepest indent a Logger accepts.
const MaxIndent = 1 << 10

// Logger handles indented, leveled logging to a set of named sinks.
//
// Level, indent, sink registry and console each have their own lock. No lock
// is held while acquiring another, and no lock other than a sink's own is
// held while writing to that sink.
type Logger struct {
	levelMu sync.Mutex
	level   Level // minimum level to log

	indentMu sync.Mutex
	indent   int // indent applied when none is given

	sinksMu sync.Mutex
	sinks   map[string]Sink

	consoleMu sync.Mutex
	console   io.Writer // receives lines while no sink is registered

	unit string
}

// Option configures a Logger created by New.
type Option func(*Logger)

// WithLevel sets the initial threshold.
func WithLevel(level Level) Option {
	return func(l *Logger) {
		l.level = level
	}
}

// WithIndentUnit sets the string repeated once per indent level.
// An empty unit is ignored.
func WithIndentUnit(unit string) Option {
	return func(l *Logger) {
		if unit != "" {
			l.unit = unit
		}
	}
}

// WithConsole sets the console writer. A nil writer is ignored.
func WithConsole(w io.Writer) Option {
	return func(l *Logger) {
		if w != nil {
			l.console = w
		}
	}
}

// New creates a new logger with default settings.
// By default, messages at LevelFine and above go to stdout, unindented.
func New(opts ...Option) *Logger {
	l := &Logger{
		level:   DefaultLevel,
		sinks:   make(map[string]Sink),
		console: os.Stdout,
		unit:    DefaultIndentUnit,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// SetLevel sets the minimum log level. Calls racing with it may observe
// either the old or the new threshold.
func (l *Logger) SetLevel(level Level) {
	l.levelMu.Lock()
	defer l.levelMu.Unlock()
	l.level = level
}

// Level returns the minimum log level.
func (l *Logger) Level() Level {
	l.levelMu.Lock()
	defer l.levelMu.Unlock()
	return l.level
}

// Enabled reports whether a message at level would be written.
func (l *Logger) Enabled(level Level) bool {
	return level >= l.Level()
}

// SetIndent sets the indent applied to messages logged without an explicit
// indent. A depth outside [0, MaxIndent] is rejected and leaves the indent
// unchanged.
func (l *Logger) SetIndent(depth int) error {
	if !validIndent(depth) {
		return fmt.Errorf("set indent %d: %w", depth, ErrInvalidIndent)
	}
	l.indentMu.Lock()
	defer l.indentMu.Unlock()
	l.indent = depth
	return nil
}

// Indent returns the indent applied to messages logged without an explicit indent.
func (l *Logger) Indent() int {
	l.indentMu.Lock()
	defer l.indentMu.Unlock()
	return l.indent
}

// PushIndent increases the current indent by one and returns the new depth.
// It fails with ErrInvalidIndent if the indent is already MaxIndent.
func (l *Logger) PushIndent() (int, error) {
	l.indentMu.Lock()
	defer l.indentMu.Unlock()
	if l.indent >= MaxIndent {
		return l.indent, fmt.Errorf("push indent: %w", ErrInvalidIndent)
	}
	l.indent++
	return l.indent, nil
}

// PopIndent decreases the current indent by one. It fails with
// ErrInvalidIndent if the indent is already zero.
func (l *Logger) PopIndent() (int, error) {
	l.indentMu.Lock()
	defer l.indentMu.Unlock()
	if l.indent == 0 {
		return 0, fmt.Errorf("pop indent: %w", ErrInvalidIndent)
	}
	l.indent--
	return l.indent, nil
}

// IndentUnit returns the string repeated once per indent level.
func (l *Logger) IndentUnit() string {
	return l.unit
}

// SetConsole sets the writer used while no sink is registered.
// Pass nil to use os.Stdout.
func (l *Logger) SetConsole(w io.Writer) {
	l.consoleMu.Lock()
	defer l.consoleMu.Unlock()
	if w == nil {
		l.console = os.Stdout
	} else {
		l.console = w
	}
}

// AddSink opens name as a log file in append mode and registers it.
// It fails with ErrSinkExists if name is already registered, in which case
// nothing is opened, or with the error from opening the file.
func (l *Logger) AddSink(name string) error {
	if l.hasSink(name) {
		return fmt.Errorf("add sink %q: %w", name, ErrSinkExists)
	}
	s, err := NewFileSink(name)
	if err != nil {
		return fmt.Errorf("add sink %q: %w", name, err)
	}
	if err := l.register(s); err != nil {
		_ = s.Close()
		return err
	}
	return nil
}

// AddWriter registers w as a sink under name.
// It fails with ErrSinkExists if name is already registered.
func (l *Logger) AddWriter(name string, w io.Writer) error {
	return l.register(NewWriterSink(name, w))
}

// RemoveSink unregisters and closes the sink registered under name. The sink
// is flushed and closed before RemoveSink returns. It fails with
// ErrSinkNotFound if name is not registered.
func (l *Logger) RemoveSink(name string) error {
	l.sinksMu.Lock()
	s, ok := l.sinks[name]
	delete(l.sinks, name)
	l.sinksMu.Unlock()

	if !ok {
		return fmt.Errorf("remove sink %q: %w", name, ErrSinkNotFound)
	}
	if err := s.Close(); err != nil {
		return fmt.Errorf("remove sink %q: %w", name, err)
	}
	return nil
}

// ActiveSinks returns the names of the registered sinks in sorted order.
func (l *Logger) ActiveSinks() []string {
	l.sinksMu.Lock()
	defer l.sinksMu.Unlock()

	names := make([]string, 0, len(l.sinks))
	for name := range l.sinks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Close unregisters and closes every sink. Later log calls go to the console.
func (l *Logger) Close() error {
	l.sinksMu.Lock()
	sinks := l.sinks
	l.sinks = make(map[string]Sink)
	l.sinksMu.Unlock()

	var errs []error
	for _, s := range sinks {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func validIndent(depth int) bool {
	return depth >= 0 && depth <= MaxIndent
}

func (l *Logger) hasSink(name string) bool {
	l.sinksMu.Lock()
	defer l.sinksMu.Unlock()
	_, ok := l.sinks[name]
	return ok
}

func (l *Logger) register(s Sink) error {
	l.sinksMu.Lock()
	defer l.sinksMu.Unlock()

	if _, ok := l.sinks[s.Name()]; ok {
		return fmt.Errorf("add sink %q: %w", s.Name(), ErrSinkExists)
	}
	l.sinks[s.Name()] = s
	return nil
}

// snapshot returns the registered sinks ordered by name.
func (l *Logger) snapshot() []Sink {
	l.sinksMu.Lock()
	defer l.sinksMu.Unlock()

	sinks := make([]Sink, 0, len(l.sinks))
	for _, s := range l.sinks {
		sinks = append(sinks, s)
	}
	sort.Slice(sinks, func(i, j int) bool {
		return sinks[i].Name() < sinks[j].Name()
	})
	return sinks
}
