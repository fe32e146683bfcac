package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/xdg/tracelog/internal/pathutil"
	"github.com/xdg/tracelog/internal/tracelog"
)

func newDemoCmd() *cobra.Command {
	var files []string

	cmd := &cobra.Command{
		Use:   "demo [level]",
		Short: "Log a sample of each message kind",
		Long: `Set the process-wide threshold to the given level name and log one message
of each kind, showing which ones pass the threshold.

Recognised levels: all, finest, finer, fine, info, output, error.
An unrecognised or missing level uses fine.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level := ""
			if len(args) == 1 {
				level = args[0]
			}
			return writeFailure(runDemo(cmd.OutOrStdout(), level, files))
		},
	}
	cmd.Flags().StringArrayVar(&files, "file", nil, "log file to write instead of the console (repeatable)")
	return cmd
}

// runDemo drives the process-wide logger through one message of each kind.
func runDemo(out io.Writer, levelName string, files []string) (err error) {
	tracelog.SetConsole(out)
	defer tracelog.SetConsole(nil)

	previous := tracelog.GetLevel()
	defer tracelog.SetLevel(previous)
	tracelog.SetLevel(tracelog.ParseLevel(levelName))

	for _, file := range files {
		path, resolveErr := pathutil.Resolve(file)
		if resolveErr != nil {
			return resolveErr
		}
		if addErr := tracelog.AddSink(path); addErr != nil {
			return fmt.Errorf("failed to add sink: %w", addErr)
		}
		defer func() {
			if rmErr := tracelog.RemoveSink(path); rmErr != nil {
				err = errors.Join(err, rmErr)
			}
		}()
	}

	return errors.Join(
		tracelog.Log("Hello World!"),
		tracelog.LogAt("INFO message!", tracelog.LevelInfo),
		tracelog.LogKind("t = 5", tracelog.KindDebug),
		tracelog.LogKind("ClassA::setData(const int)", tracelog.KindMethod),
		tracelog.LogKind("ClassA::ClassA() [default constructor]", tracelog.KindConstructor),
	)
}
