package config

import "github.com/xdg/tracelog/internal/tracelog"

// DefaultConfig returns a Config with all defaults populated.
// No sinks are configured, so output goes to the console.
func DefaultConfig() *Config {
	return &Config{
		Level:      "fine",
		Indent:     0,
		IndentUnit: tracelog.DefaultIndentUnit,
		Console:    ConsoleStdout,
	}
}

// defaultConfigTemplate is written by WriteDefaultConfig.
const defaultConfigTemplate = `# tracelog configuration

# Minimum level to log: all, finest, finer, fine, info, output, error.
# Names are lower case. Any other name is rejected when the file is loaded.
level: fine

# Indent depth applied to messages logged without an explicit indent (0-1024).
indent: 0

# String repeated once per indent level.
indent_unit: "   "

# Stream used while no sink is configured: stdout or stderr.
console: stdout

# Log files, opened in append mode. While any sink is configured the
# console receives nothing.
# sinks:
#   - path: ~/.local/state/tracelog/tracelog.log
`
