package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/xdg/tracelog/internal/pathutil"
)

// Load loads the configuration from the default config path.
// If the config file doesn't exist, the default file is written and
// DefaultConfig() returned.
// If the file exists but cannot be read or parsed, it returns an error.
// All paths containing ~ are expanded to the actual home directory.
func Load() (*Config, error) {
	path := Path()

	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("config: file not found, creating defaults")
		if writeErr := WriteDefaultConfig(); writeErr != nil {
			log.Printf("config: warning: failed to create default config: %v", writeErr)
		}
		cfg := DefaultConfig()
		expandPaths(cfg)
		return cfg, nil
	}

	return LoadFile(path)
}

// LoadFile loads the configuration from path. Unlike Load, a missing file is
// an error. Fields the file leaves empty take their default values.
func LoadFile(path string) (*Config, error) {
	log.Printf("config: loading config from %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	applyDefaults(cfg)
	expandPaths(cfg)
	return cfg, nil
}

// applyDefaults fills empty fields from DefaultConfig.
func applyDefaults(cfg *Config) {
	def := DefaultConfig()
	if cfg.Level == "" {
		cfg.Level = def.Level
	}
	if cfg.IndentUnit == "" {
		cfg.IndentUnit = def.IndentUnit
	}
	if cfg.Console == "" {
		cfg.Console = def.Console
	}
}

// expandPaths expands ~ to the home directory in all sink paths.
func expandPaths(cfg *Config) {
	for i, sink := range cfg.Sinks {
		cfg.Sinks[i].Path = pathutil.ExpandHome(sink.Path)
	}
}
