package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xdg/tracelog/internal/config"
	"github.com/xdg/tracelog/internal/term"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long: `Manage tracelog's configuration.

The configuration file is stored at ~/.config/tracelog/config.yaml
(or $XDG_CONFIG_HOME/tracelog/config.yaml if XDG_CONFIG_HOME is set).

Use the subcommands to view, edit, or initialize the configuration.`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show effective config",
			Long: `Print the effective configuration as YAML.

If no config file exists, shows the default configuration.`,
			Args: cobra.NoArgs,
			RunE: runConfigShow,
		},
		&cobra.Command{
			Use:   "edit",
			Short: "Edit config in $EDITOR",
			Long: `Open the configuration file in your editor.

The editor is determined by the EDITOR environment variable, falling back to vi.
If the configuration file doesn't exist, a default one is created first.`,
			Args: cobra.NoArgs,
			RunE: runConfigEdit,
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print config file path",
			Args:  cobra.NoArgs,
			Run:   runConfigPath,
		},
		&cobra.Command{
			Use:   "init",
			Short: "Create default config file",
			Long: `Create the default configuration file if it doesn't exist.

If the file already exists, this command does nothing.`,
			Args: cobra.NoArgs,
			RunE: runConfigInit,
		},
	)
	return cmd
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := loadConfig(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigEdit(cmd *cobra.Command, args []string) error {
	if err := config.Edit(); err != nil {
		return fmt.Errorf("failed to edit config: %w", err)
	}
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) {
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), config.Path())
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.Path()

	if err := config.WriteDefaultConfig(); err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	term.Printf("Created default config at: %s\n", path)
	return nil
}
