// Package config provides configuration types for tracelog. These types map
// to a YAML configuration file.
package config

// Config represents the logger configuration.
// It is typically stored at ~/.config/tracelog/config.yaml.
type Config struct {
	// Level is the threshold name: all, finest, finer, fine, info, output or error.
	Level string `yaml:"level,omitempty"`
	// Indent is the initial indent depth.
	Indent int `yaml:"indent,omitempty"`
	// IndentUnit is the string repeated once per indent level.
	IndentUnit string `yaml:"indent_unit,omitempty"`
	// Console selects the fallback stream used while no sink is registered.
	Console string `yaml:"console,omitempty"`
	// Sinks lists the log files opened at startup.
	Sinks []SinkConfig `yaml:"sinks,omitempty"`
}

// SinkConfig describes a single file sink.
type SinkConfig struct {
	Path string `yaml:"path,omitempty"`
}

// Console stream names.
const (
	ConsoleStdout = "stdout"
	ConsoleStderr = "stderr"
)
