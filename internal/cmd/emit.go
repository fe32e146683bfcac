package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xdg/tracelog/internal/config"
	"github.com/xdg/tracelog/internal/pathutil"
	"github.com/xdg/tracelog/internal/term"
	"github.com/xdg/tracelog/internal/tracelog"
)

type emitOptions struct {
	level  string
	at     string
	kind   string
	indent int
	files  []string
}

func newEmitCmd(root *rootOptions) *cobra.Command {
	opts := &emitOptions{}

	cmd := &cobra.Command{
		Use:   "emit [message...]",
		Short: "Log a message",
		Long: `Log a message through the configured sinks.

The message arguments are joined with spaces and logged as one line. With no
arguments, each line read from a piped stdin is logged; on an interactive
terminal an empty line is logged instead.

--file adds a log file for this invocation in addition to the configured sinks.
While any file is configured, nothing is written to the console.`,
		Example: `  tracelog emit --level finer --kind method "ClassA::setData(const int)"
  tracelog emit --at output --indent 2 --file run.log "step done"
  make 2>&1 | tracelog emit --file build.log`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmit(cmd, root, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.level, "level", "", "threshold: all, finest, finer, fine, info, output, error (default from config)")
	flags.StringVar(&opts.at, "at", "fine", "level of the message")
	flags.StringVar(&opts.kind, "kind", "", "message kind: constructor, operator, method, debug (overrides --at)")
	flags.IntVar(&opts.indent, "indent", 0, "indent of the message (default from config)")
	flags.StringArrayVar(&opts.files, "file", nil, "additional log file (repeatable)")
	return cmd
}

func runEmit(cmd *cobra.Command, root *rootOptions, opts *emitOptions, args []string) (err error) {
	cfg, err := loadConfig(root.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.level != "" {
		if _, ok := tracelog.LookupLevel(opts.level); !ok {
			term.Warn("unknown level %q, using %s", opts.level, strings.ToLower(tracelog.DefaultLevel.String()))
		}
		cfg.Level = opts.level
	}

	emit, err := messageEmitter(cmd, opts)
	if err != nil {
		return err
	}

	l, err := config.NewLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to open sinks: %w", err)
	}
	defer func() {
		if closeErr := l.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close sinks: %w", closeErr)
		}
	}()

	if cfg.Console == config.ConsoleStderr {
		l.SetConsole(cmd.ErrOrStderr())
	} else {
		l.SetConsole(cmd.OutOrStdout())
	}

	for _, file := range opts.files {
		path, err := pathutil.Resolve(file)
		if err != nil {
			return err
		}
		if err := l.AddSink(path); err != nil {
			if errors.Is(err, tracelog.ErrSinkExists) {
				term.Warn("%s is already a sink", path)
				continue
			}
			return err
		}
	}

	if len(args) > 0 {
		return writeFailure(emit(l, strings.Join(args, " ")))
	}

	in := cmd.InOrStdin()
	if term.IsTerminal(in) {
		return writeFailure(l.Blank())
	}
	return writeFailure(emitLines(l, in, emit))
}

// messageEmitter returns the function that logs one message according to
// the --at, --kind and --indent flags.
func messageEmitter(cmd *cobra.Command, opts *emitOptions) (func(*tracelog.Logger, string) error, error) {
	explicitIndent := cmd.Flags().Changed("indent")
	if explicitIndent && (opts.indent < 0 || opts.indent > tracelog.MaxIndent) {
		return nil, fmt.Errorf("invalid --indent %d: %w", opts.indent, tracelog.ErrInvalidIndent)
	}

	if opts.kind != "" {
		kind, ok := tracelog.ParseKind(opts.kind)
		if !ok {
			return nil, fmt.Errorf("invalid --kind %q, must be one of: constructor, operator, method, debug", opts.kind)
		}
		if explicitIndent {
			return func(l *tracelog.Logger, msg string) error {
				return l.LogKindIndent(msg, kind, opts.indent)
			}, nil
		}
		return func(l *tracelog.Logger, msg string) error {
			return l.LogKind(msg, kind)
		}, nil
	}

	level, ok := tracelog.LookupLevel(opts.at)
	if !ok {
		return nil, fmt.Errorf("invalid --at %q, must be one of: %s", opts.at, strings.Join(tracelog.LevelNames(), ", "))
	}
	if explicitIndent {
		return func(l *tracelog.Logger, msg string) error {
			return l.LogIndent(msg, level, opts.indent)
		}, nil
	}
	return func(l *tracelog.Logger, msg string) error {
		return l.LogAt(msg, level)
	}, nil
}

// emitLines logs each line of r. Write failures do not stop the loop; they
// are returned together once r is exhausted.
func emitLines(l *tracelog.Logger, r io.Reader, emit func(*tracelog.Logger, string) error) error {
	var errs []error
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := emit(l, scanner.Text()); err != nil {
			errs = append(errs, err)
		}
	}
	if err := scanner.Err(); err != nil {
		errs = append(errs, fmt.Errorf("read stdin: %w", err))
	}
	return errors.Join(errs...)
}
