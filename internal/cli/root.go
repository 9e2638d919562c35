// Package cli wires config, logging, metrics and tracing around the
// bellmanford engine for the bellmanford command.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bfpath/config"
)

// Execute runs the root command and exits with status 1 on any error.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type flags struct {
	configPath string
	source     string
	workers    int
	debug      bool
	acyclic    bool
	trace      bool
	metrics    bool
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:           "bellmanford",
		Short:         "Single-source shortest paths with negative-cycle detection",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}

			logger := newLogger(cmd.ErrOrStderr(), cfg.Level())

			return run(cmd.Context(), cmd.OutOrStdout(), cfg, logger)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.configPath, "config", "", "path to a YAML config file")
	fl.StringVar(&f.source, "source", "v0", "source vertex")
	fl.IntVar(&f.workers, "workers", 1, "relaxation workers per pass (0 = one per CPU)")
	fl.BoolVar(&f.debug, "debug", false, "enable debug logging and post-run verification")
	fl.BoolVar(&f.acyclic, "acyclic", false, "drop the negative back edge from the reference graph")
	fl.BoolVar(&f.trace, "trace", false, "print a summary of the recorded trace span")
	fl.BoolVar(&f.metrics, "metrics", false, "print the gathered Prometheus metrics")

	return cmd
}

// resolveConfig loads the config file and overlays every flag the user set.
func resolveConfig(cmd *cobra.Command, f flags) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, err
	}

	fl := cmd.Flags()
	if fl.Changed("source") {
		cfg.Source = f.source
	}
	if fl.Changed("workers") {
		cfg.Workers = f.workers
	}
	if fl.Changed("acyclic") {
		cfg.Acyclic = f.acyclic
	}
	if fl.Changed("trace") {
		cfg.Trace = f.trace
	}
	if fl.Changed("metrics") {
		cfg.Metrics = f.metrics
	}
	if f.debug {
		cfg.LogLevel = "debug"
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}

	return cfg, cfg.Validate()
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}

	return ctx
}
