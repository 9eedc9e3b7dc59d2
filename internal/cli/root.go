// Package cli implements the aoc command.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aocstars/aoc"
	"github.com/aocstars/aoc/catalog"
	"github.com/aocstars/aoc/internal/config"
	"github.com/aocstars/aoc/internal/logging"
)

// env is the state shared by subcommands, set up before any of them run.
type env struct {
	flagConfig    string
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string
	flagInputDir  string
	flagTimeout   time.Duration

	cfg    config.Config
	logger *slog.Logger
	disp   *aoc.Dispatcher
	inputs *aoc.Inputs
}

// NewRootCmd creates the root cobra command for the aoc CLI.
func NewRootCmd() *cobra.Command {
	e := &env{}
	root := &cobra.Command{
		Use:   "aoc",
		Short: "Advent of Code solutions",
		Long:  "aoc runs Advent of Code solutions against cached or downloaded puzzle inputs.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup(cmd)
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&e.flagConfig, "config", config.DefaultPath(), "Config file")
	root.PersistentFlags().BoolVar(&e.flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&e.flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&e.flagLogFormat, "log-format", "", "Log format (text, json)")
	root.PersistentFlags().StringVar(&e.flagInputDir, "input-dir", "", "Directory of cached inputs (or AOC_INPUT_DIR env)")

	root.PersistentFlags().DurationVar(&e.flagTimeout, "timeout", 0, "Time limit per star (or AOC_TIMEOUT env)")

	root.AddCommand(
		newRunCmd(e),
		newListCmd(e),
		newAllCmd(e),
	)

	return root
}

func (e *env) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(e.flagConfig, cmd.Flags().Changed("config"), ".env")
	if err != nil {
		return err
	}
	if e.flagLogLevel != "" {
		cfg.LogLevel = e.flagLogLevel
	}
	if e.flagDebug {
		cfg.LogLevel = "debug"
	}
	if e.flagLogFormat != "" {
		cfg.LogFormat = e.flagLogFormat
	}
	if e.flagInputDir != "" {
		cfg.InputDir = e.flagInputDir
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = e.flagTimeout
	}
	e.cfg = cfg
	e.logger = logging.New(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat, cmd.ErrOrStderr())

	reg, err := catalog.Registry()
	if err != nil {
		return fmt.Errorf("building registry: %w", err)
	}
	e.disp = aoc.NewDispatcher(reg, e.logger)
	e.disp.Timeout = cfg.Timeout
	e.inputs = &aoc.Inputs{
		Dir:     cfg.InputDir,
		BaseURL: cfg.BaseURL,
		Session: cfg.SessionToken,
	}
	e.logger.Debug("loaded config", "config", e.flagConfig, "input_dir", cfg.InputDir, "stars", reg.Len())
	return nil
}

// loadInput returns the input for id with trailing newlines removed.
func (e *env) loadInput(ctx context.Context, id aoc.ID) (string, error) {
	in, err := e.inputs.Load(ctx, id)
	if err != nil {
		return "", err
	}
	return trimInput(in), nil
}

func trimInput(in string) string {
	return strings.TrimRight(in, "\r\n")
}
