package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/puzzlearchive/astar"
	"github.com/puzzlearchive/astar/internal/input"
	"github.com/puzzlearchive/astar/puzzles"
)

type job struct {
	path string
	part int
}

func newRunCmd(a *app) *cobra.Command {
	var part int
	cmd := &cobra.Command{
		Use:   "run <puzzle> <input>...",
		Short: "Solve a puzzle for one or more input files",
		Long: `Solves the named puzzle for every input file. Files are solved in
parallel; answers are printed in argument order.

Example:
  astar run crucible example.txt entry.txt --part 2`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPuzzle(cmd, args[0], args[1:], part)
		},
	}
	cmd.Flags().IntVarP(&part, "part", "p", 0, "part to solve: 1, 2 or 0 for both")
	return cmd
}

func (a *app) runPuzzle(cmd *cobra.Command, name string, paths []string, part int) error {
	puzzle, err := puzzles.Lookup(name)
	if err != nil {
		return err
	}

	var parts []int
	switch part {
	case 0:
		parts = []int{1}
		if puzzle.Part2 != nil {
			parts = append(parts, 2)
		}
	case 1, 2:
		parts = []int{part}
	default:
		return fmt.Errorf("part must be 0, 1 or 2, got %d", part)
	}

	var jobs []job
	for _, path := range paths {
		for _, p := range parts {
			jobs = append(jobs, job{path: path, part: p})
		}
	}

	params := a.params()
	answers, err := astar.Map(cmd.Context(), a.cfg.Workers, jobs, func(_ context.Context, j job) (string, error) {
		lines, err := input.ReadLines(j.path)
		if err != nil {
			return "", err
		}
		start := time.Now()
		answer, err := puzzle.Solve(j.part, lines, params)
		if err != nil {
			return "", fmt.Errorf("%s part %d: %w", j.path, j.part, err)
		}
		a.logger.Info("solved",
			zap.String("puzzle", puzzle.Name),
			zap.String("input", j.path),
			zap.Int("part", j.part),
			zap.Duration("elapsed", time.Since(start)),
		)
		return answer, nil
	})
	if err != nil {
		if errors.Is(err, puzzles.ErrNoPath) {
			a.logger.Warn("puzzle has no solution", zap.Error(err))
		}
		return err
	}

	for i, j := range jobs {
		fmt.Fprintf(cmd.OutOrStdout(), "%s part %d: %s\n", j.path, j.part, answers[i])
	}
	return nil
}
