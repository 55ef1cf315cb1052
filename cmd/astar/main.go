// Command astar runs the archived puzzle solutions.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/puzzlearchive/astar/internal/config"
	"github.com/puzzlearchive/astar/puzzles"
)

// app holds what the commands share once flags and config are resolved.
type app struct {
	configPath string
	verbose    bool
	workers    int

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "astar",
		Short: "Solve archived puzzles with a best-first graph search",
		Long: `astar runs puzzle solutions built on a generic A*/Dijkstra engine.

Each input file is solved independently; several files are solved in
parallel on a bounded pool of workers.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("workers") {
				cfg.Workers = a.workers
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			a.cfg = cfg

			logger, err := newLogger(cfg.Logging.Level, a.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "astar.yaml", "path to the YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().IntVarP(&a.workers, "workers", "w", 0, "parallel inputs (0 = one per CPU)")

	rootCmd.AddCommand(newListCmd(), newRunCmd(a), newTraceCmd(a))
	return rootCmd
}

func newLogger(level string, verbose bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}

func (a *app) params() puzzles.Params {
	return puzzles.Params{
		UltraMin: a.cfg.Puzzles.Crucible.UltraMin,
		UltraMax: a.cfg.Puzzles.Crucible.UltraMax,
		Size:     a.cfg.Puzzles.Bytes.Size,
		Fallen:   a.cfg.Puzzles.Bytes.Fallen,
		Workers:  a.cfg.Workers,
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available puzzles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range puzzles.All() {
				parts := "1"
				if p.Part2 != nil {
					parts = "1,2"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %-32s parts %s\n", p.Name, p.Title, parts)
			}
			return nil
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
