// Package cmd implements the CLI commands for tracelog.
package cmd

import (
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/xdg/tracelog/internal/config"
	"github.com/xdg/tracelog/internal/term"
	"github.com/xdg/tracelog/internal/version"
)

// rootOptions holds the persistent flags shared by all subcommands.
type rootOptions struct {
	configPath string
	verbose    bool
	silent     bool
}

// newRootCmd builds the command tree. Each call returns fresh flag state.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "tracelog",
		Short: "Indented, leveled logging to the console or files",
		Long: `Tracelog writes indented log lines gated by a severity threshold.

Levels from finest to coarsest: all, finest, finer, fine (= info), output (= error).
A line is written when its level is at or above the threshold. Lines go to every
configured log file, or to the console when no file is configured.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Config loading traces through the standard logger.
			if opts.verbose {
				log.SetOutput(cmd.ErrOrStderr())
			} else {
				log.SetOutput(io.Discard)
			}
			term.SetSilent(opts.silent)
		},
	}
	cmd.SetVersionTemplate("tracelog " + version.String() + "\n")

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/tracelog/config.yaml)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "trace configuration loading to stderr")
	flags.BoolVar(&opts.silent, "silent", false, "suppress informational output")

	cmd.AddCommand(
		newEmitCmd(opts),
		newDemoCmd(),
		newLevelsCmd(),
		newConfigCmd(),
	)
	return cmd
}

// Execute runs the root command and returns any error.
func Execute() error {
	err := newRootCmd().Execute()
	if err != nil {
		term.Error("%v", err)
	}
	return err
}

// loadConfig loads the config file at path, or the default config file if
// path is empty.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFile(path)
}
