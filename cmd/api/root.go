package main

import (
	"context"

	"github.com/spf13/cobra"

	"example.com/listnotes-api/internal/config"
)

type runFunc func(ctx context.Context, cfg config.Config) error

// newRootCmd reads the environment first; flags that were set explicitly win.
func newRootCmd(run runFunc) *cobra.Command {
	cfg := config.Load()

	cmd := &cobra.Command{
		Use:          "api",
		Short:        "In-memory notes API",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg)
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfg.HTTPAddr, "addr", cfg.HTTPAddr, "listen address (env HTTP_ADDR)")
	f.StringVar(&cfg.SeedFile, "seed", cfg.SeedFile, "YAML file with the initial notes (env SEED_FILE)")
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "trace, debug, info, warn or error (env LOG_LEVEL)")
	f.BoolVar(&cfg.LogPretty, "log-pretty", cfg.LogPretty, "human-readable log output (env LOG_PRETTY)")
	f.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "graceful shutdown limit (env SHUTDOWN_TIMEOUT)")

	return cmd
}
