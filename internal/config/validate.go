package config

import (
	"fmt"
	"strings"

	"github.com/xdg/tracelog/internal/tracelog"
)

// Validate validates a parsed Config, checking that all fields contain
// valid values. It validates:
//   - Level is a recognised level name (if non-empty)
//   - Indent is non-negative and at most tracelog.MaxIndent
//   - IndentUnit contains no line breaks
//   - Console is stdout or stderr (if non-empty)
//   - Every sink has a path and no path is listed twice
//
// Returns nil if the config is valid, or an error with a clear message
// indicating which field is invalid.
func Validate(cfg *Config) error {
	if cfg.Level != "" {
		if _, ok := tracelog.LookupLevel(cfg.Level); !ok {
			return fmt.Errorf("level: invalid value %q, must be one of: %s",
				cfg.Level, strings.Join(tracelog.LevelNames(), ", "))
		}
	}
	if cfg.Indent < 0 {
		return fmt.Errorf("indent: must be non-negative, got %d", cfg.Indent)
	}
	if cfg.Indent > tracelog.MaxIndent {
		return fmt.Errorf("indent: must be at most %d, got %d", tracelog.MaxIndent, cfg.Indent)
	}
	if strings.ContainsAny(cfg.IndentUnit, "\r\n") {
		return fmt.Errorf("indent_unit: must not contain line breaks, got %q", cfg.IndentUnit)
	}

	switch cfg.Console {
	case "", ConsoleStdout, ConsoleStderr:
	default:
		return fmt.Errorf("console: invalid value %q, must be one of: %s, %s", cfg.Console, ConsoleStdout, ConsoleStderr)
	}

	seen := make(map[string]bool, len(cfg.Sinks))
	for i, sink := range cfg.Sinks {
		if sink.Path == "" {
			return fmt.Errorf("sinks[%d].path: must not be empty", i)
		}
		if seen[sink.Path] {
			return fmt.Errorf("sinks[%d].path: duplicate path %q", i, sink.Path)
		}
		seen[sink.Path] = true
	}

	return nil
}
