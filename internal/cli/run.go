package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dl/minigrep/internal/input"
	"github.com/dl/minigrep/internal/matcher"
	"github.com/dl/minigrep/internal/output"
)

const usage = "minigrep <query> <filename> [-i|--ignore-case] [--color auto|always|never]"

// Execute runs minigrep with the process arguments, preceded by any
// defaults from the config file, and returns the exit code.
func Execute() int {
	args := append(LoadConfigArgs(), os.Args[1:]...)
	return ExecuteArgs(args, output.NewStdoutWriter(), os.Stderr)
}

// ExecuteArgs runs minigrep with args and returns the exit code:
// 0 = success (whether or not anything matched), 1 = error.
func ExecuteArgs(args []string, stdout io.Writer, stderr io.Writer) int {
	logger := log.NewWithOptions(stderr, log.Options{
		Level: log.WarnLevel,
	})

	cmd := NewCommand(stdout, logger)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	// cmd.Execute would resolve args against subcommands (including cobra's
	// hidden completion commands) before RunE; every token here is ours.
	if err := cmd.RunE(cmd, args); err != nil {
		var argErr *ArgumentError
		var ioErr *IOError
		switch {
		case errors.As(err, &argErr):
			logger.Error("problem parsing arguments", "err", argErr.Msg)
			logger.Error("usage: " + usage)
		case errors.As(err, &ioErr):
			logger.Error("application error", "path", ioErr.Path, "err", ioErr.Err)
		default:
			logger.Error("application error", "err", err)
		}
		return 1
	}
	return 0
}

// NewCommand creates the minigrep cobra command. Matches are written to stdout.
// Argument parsing is left to Parse so the command line and Parse can never
// disagree; the command's own flag set only feeds the help text.
func NewCommand(stdout io.Writer, logger *log.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   usage,
		Short: "Print the lines of a file that contain a query string",
		Long: `minigrep prints every line of a file that contains the query as a
substring. Each occurrence of the query is highlighted when writing to a
terminal. Use "-" as the filename to read standard input.`,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := Parse(args)
			if errors.Is(err, pflag.ErrHelp) {
				return cmd.Help()
			}
			if err != nil {
				return err
			}
			if cfg.Debug {
				logger.SetLevel(log.DebugLevel)
			}
			return Run(cfg, stdout, logger)
		},
	}
	bindFlags(cmd.Flags(), &Config{})
	return cmd
}

// Run executes the search with the given config, writing matches to w.
func Run(cfg Config, w io.Writer, logger *log.Logger) error {
	logger.Debug("searching", "query", cfg.Query, "file", cfg.Filename, "case_sensitive", cfg.CaseSensitive())

	text, err := input.NewReader(cfg.Filename).Read(cfg.Filename)
	if err != nil {
		return &IOError{Path: cfg.Filename, Err: err}
	}

	m := matcher.New(cfg.Query, cfg.IgnoreCase)
	matches := m.FindAll(text)
	logger.Debug("search finished", "bytes", len(text), "matches", len(matches))

	// Determine color mode
	useColor := false
	switch cfg.Color {
	case ColorAlways:
		useColor = true
	case ColorNever:
		useColor = false
	case ColorAuto:
		if f, ok := w.(interface{ Fd() uintptr }); ok {
			useColor = output.IsTerminal(f.Fd())
		}
	}

	styles := output.NoStyles()
	if useColor {
		styles = output.NewStyles()
	}
	formatter := output.NewTextFormatter(m, styles, useColor)

	if _, err := w.Write(formatter.Format(nil, matches)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
