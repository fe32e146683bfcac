package tracelog

import (
	"io"
	"sync"
)

var (
	stdMu sync.RWMutex
	std   = New()
)

// Default returns the process-wide logger used by package-level functions.
func Default() *Logger {
	stdMu.RLock()
	defer stdMu.RUnlock()
	return std
}

// ReplaceGlobal replaces the global logger and returns the previous one.
// Useful for testing. Caller should restore the original logger after test.
func ReplaceGlobal(l *Logger) *Logger {
	stdMu.Lock()
	defer stdMu.Unlock()
	old := std
	std = l
	return old
}

// Reset closes the global logger's sinks and replaces it with a new one.
// This is primarily useful for testing.
func Reset() {
	old := ReplaceGlobal(New())
	_ = old.Close()
}

// SetLevel sets the minimum log level for the global logger.
func SetLevel(level Level) {
	Default().SetLevel(level)
}

// GetLevel returns the minimum log level of the global logger.
func GetLevel() Level {
	return Default().Level()
}

// SetIndent sets the current indent of the global logger.
func SetIndent(depth int) error {
	return Default().SetIndent(depth)
}

// GetIndent returns the current indent of the global logger.
func GetIndent() int {
	return Default().Indent()
}

// SetConsole sets the console writer of the global logger.
func SetConsole(w io.Writer) {
	Default().SetConsole(w)
}

// AddSink adds a file sink to the global logger.
func AddSink(name string) error {
	return Default().AddSink(name)
}

// RemoveSink removes a sink from the global logger.
func RemoveSink(name string) error {
	return Default().RemoveSink(name)
}

// ActiveSinks returns the sink names of the global logger.
func ActiveSinks() []string {
	return Default().ActiveSinks()
}

// Close closes every sink of the global logger.
// This should be called during shutdown to ensure logs are flushed.
func Close() error {
	return Default().Close()
}

// Blank logs an empty line using the global logger.
func Blank() error {
	return Default().Blank()
}

// Log logs msg at the default level using the global logger.
func Log(msg string) error {
	return Default().Log(msg)
}

// LogAt logs msg at level using the global logger.
func LogAt(msg string, level Level) error {
	return Default().LogAt(msg, level)
}

// LogIndent logs msg at level and indent using the global logger.
func LogIndent(msg string, level Level, indent int) error {
	return Default().LogIndent(msg, level, indent)
}

// LogKind logs msg as kind using the global logger.
func LogKind(msg string, kind Kind) error {
	return Default().LogKind(msg, kind)
}

// LogKindIndent logs msg as kind at indent using the global logger.
func LogKindIndent(msg string, kind Kind, indent int) error {
	return Default().LogKindIndent(msg, kind, indent)
}

// Logf logs a formatted message at level using the global logger.
func Logf(level Level, format string, args ...any) error {
	return Default().Logf(level, format, args...)
}

// Writer returns an io.Writer that logs each write at the specified level
// through the global logger. This is useful for integrating with libraries
// that expect an io.Writer.
func Writer(level Level) io.Writer {
	return &levelWriter{level: level}
}

type levelWriter struct {
	level Level
}

func (w *levelWriter) Write(p []byte) (n int, err error) {
	msg := string(p)
	// Trim trailing newline since log functions add their own
	if len(msg) > 0 && msg[len(msg)-1] == '\n' {
		msg = msg[:len(msg)-1]
	}
	if err := LogAt(msg, w.level); err != nil {
		return 0, err
	}
	return len(p), nil
}
