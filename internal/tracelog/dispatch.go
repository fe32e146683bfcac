package tracelog

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Blank logs an empty line at the default level with the current indent.
func (l *Logger) Blank() error {
	return l.Log("")
}

// Log logs msg at the default level with the current indent.
func (l *Logger) Log(msg string) error {
	return l.LogAt(msg, DefaultLevel)
}

// LogAt logs msg at level with the current indent.
func (l *Logger) LogAt(msg string, level Level) error {
	return l.perform(msg, level, l.Indent())
}

// LogIndent logs msg at level with the given indent. The current indent is
// not changed. An indent outside [0, MaxIndent] fails with ErrInvalidIndent.
func (l *Logger) LogIndent(msg string, level Level, indent int) error {
	if !validIndent(indent) {
		return fmt.Errorf("log at indent %d: %w", indent, ErrInvalidIndent)
	}
	return l.perform(msg, level, indent)
}

// LogIndentDefault logs msg at the default level with the given indent.
func (l *Logger) LogIndentDefault(msg string, indent int) error {
	return l.LogIndent(msg, DefaultLevel, indent)
}

// LogKind logs msg at the level mapped to kind, with the kind's prefix.
func (l *Logger) LogKind(msg string, kind Kind) error {
	return l.LogAt(kind.Prefix()+msg, LevelFor(kind))
}

// LogKindIndent logs msg as kind with the given indent. The current indent
// is not changed.
func (l *Logger) LogKindIndent(msg string, kind Kind, indent int) error {
	return l.LogIndent(kind.Prefix()+msg, LevelFor(kind), indent)
}

// Logf formats a message and logs it at level with the current indent.
// Arguments are only formatted if the level is enabled.
func (l *Logger) Logf(level Level, format string, args ...any) error {
	if !l.Enabled(level) {
		return nil
	}
	return l.LogAt(fmt.Sprintf(format, args...), level)
}

// Finest logs a formatted message at LevelFinest.
func (l *Logger) Finest(format string, args ...any) error {
	return l.Logf(LevelFinest, format, args...)
}

// Finer logs a formatted message at LevelFiner.
func (l *Logger) Finer(format string, args ...any) error {
	return l.Logf(LevelFiner, format, args...)
}

// Fine logs a formatted message at LevelFine.
func (l *Logger) Fine(format string, args ...any) error {
	return l.Logf(LevelFine, format, args...)
}

// Info logs a formatted message at LevelInfo.
func (l *Logger) Info(format string, args ...any) error {
	return l.Logf(LevelInfo, format, args...)
}

// Output logs a formatted message at LevelOutput.
func (l *Logger) Output(format string, args ...any) error {
	return l.Logf(LevelOutput, format, args...)
}

// Error logs a formatted message at LevelError.
func (l *Logger) Error(format string, args ...any) error {
	return l.Logf(LevelError, format, args...)
}

// perform gates, indents and writes one line. A message below the threshold
// is dropped and nil returned. Otherwise every sink in a snapshot of the
// registry is written to, or the console if the snapshot is empty. A sink
// closed after the snapshot was taken is skipped. Failed writes do not stop
// the fan-out and are returned together as a *WriteError.
func (l *Logger) perform(msg string, level Level, indent int) error {
	if !l.Enabled(level) {
		return nil
	}

	var b strings.Builder
	b.Grow(len(l.unit)*indent + len(msg) + 1)
	for i := 0; i < indent; i++ {
		b.WriteString(l.unit)
	}
	b.WriteString(msg)
	b.WriteByte('\n')
	line := b.String()

	sinks := l.snapshot()
	if len(sinks) == 0 {
		if err := l.writeConsole(line); err != nil {
			return &WriteError{Failures: []*SinkError{{Sink: ConsoleName, Err: err}}}
		}
		return nil
	}

	var failures []*SinkError
	for _, s := range sinks {
		err := s.WriteLine(line)
		if err == nil || errors.Is(err, ErrSinkClosed) {
			continue
		}
		failures = append(failures, &SinkError{Sink: s.Name(), Err: err})
	}
	if len(failures) > 0 {
		return &WriteError{Failures: failures}
	}
	return nil
}

func (l *Logger) writeConsole(line string) error {
	l.consoleMu.Lock()
	defer l.consoleMu.Unlock()
	_, err := io.WriteString(l.console, line)
	return err
}
