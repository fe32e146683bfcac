package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/xdg/tracelog/internal/tracelog"
)

// NewLogger creates a logger configured from cfg with its sinks opened.
// On error no sink is left open.
func NewLogger(cfg *Config) (*tracelog.Logger, error) {
	console := os.Stdout
	if cfg.Console == ConsoleStderr {
		console = os.Stderr
	}

	l := tracelog.New(
		tracelog.WithIndentUnit(cfg.IndentUnit),
		tracelog.WithConsole(console),
	)
	if err := Apply(cfg, l); err != nil {
		return nil, errors.Join(err, l.Close())
	}
	return l, nil
}

// Apply sets the level and indent of l from cfg and adds cfg's sinks.
// Sinks already registered on l under the same path are kept.
func Apply(cfg *Config, l *tracelog.Logger) error {
	l.SetLevel(tracelog.ParseLevel(cfg.Level))
	if err := l.SetIndent(cfg.Indent); err != nil {
		return fmt.Errorf("apply config: %w", err)
	}

	for _, sink := range cfg.Sinks {
		err := l.AddSink(sink.Path)
		if err != nil && !errors.Is(err, tracelog.ErrSinkExists) {
			return fmt.Errorf("apply config: %w", err)
		}
	}
	return nil
}
