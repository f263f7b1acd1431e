// Package cli implements the floodzone command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/floodzone/internal/config"
	"github.com/katalvlaran/floodzone/internal/logging"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// errNoContext is returned when a command runs without the root pre-run.
var errNoContext = errors.New("cli: command context not initialised")

// RootOptions holds global flags.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
}

// Context carries the loaded configuration and logger to subcommands.
type Context struct {
	Config *config.Config
	Logger logging.Logger
}

type contextKey struct{}

// NewRootCommand builds the root command with every subcommand attached.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "floodzone",
		Short: "Detect connected flood zones on an elevation grid",
		Long: "floodzone groups flooded cells of a rectangular grid into 4-connected zones,\n" +
			"reports per-zone size and average elevation, and exports the zone and\n" +
			"elevation grids to a directory or an S3-compatible bucket.",
		Version: versionString(),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return persistentPreRun(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "config file path (YAML)")
	pf.StringVar(&opts.LogLevel, "log-level", "", "log level (debug, info, warn, error); overrides config")

	cmd.AddCommand(newAnalyzeCommand(), newVersionCommand())
	return cmd
}

// persistentPreRun loads config and builds the logger for the running command.
func persistentPreRun(cmd *cobra.Command, opts *RootOptions) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.LogLevel != "" {
		if _, err := logging.ParseLevel(opts.LogLevel); err != nil {
			return fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
		}
		cfg.Log.Level = opts.LogLevel
	}

	log, err := logging.NewLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("cli: logger: %w", err)
	}

	cmd.SetContext(context.WithValue(cmd.Context(), contextKey{}, &Context{
		Config: cfg,
		Logger: log.Named("floodzone"),
	}))
	return nil
}

// FromCommand returns the Context stored by the root pre-run.
func FromCommand(cmd *cobra.Command) (*Context, error) {
	ctx := cmd.Context()
	if ctx == nil {
		return nil, errNoContext
	}
	c, ok := ctx.Value(contextKey{}).(*Context)
	if !ok || c == nil {
		return nil, errNoContext
	}
	return c, nil
}

// Execute runs the command tree until completion or interrupt.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := NewRootCommand()
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}

func versionString() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate)
}
