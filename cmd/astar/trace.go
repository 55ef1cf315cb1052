package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/puzzlearchive/astar"
	"github.com/puzzlearchive/astar/grid"
	"github.com/puzzlearchive/astar/internal/input"
	"github.com/puzzlearchive/astar/puzzles"
)

func newTraceCmd(a *app) *cobra.Command {
	var maxSteps int
	cmd := &cobra.Command{
		Use:   "trace <maze-file>",
		Short: "Step through a maze search and draw what was explored",
		Long: `Runs the search on an S/E/# maze one expansion at a time. Each step is
logged at debug level. The final grid marks the path with O and every
other expanded cell with +.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.traceMaze(cmd, args[0], maxSteps)
		},
	}
	cmd.Flags().IntVar(&maxSteps, "steps", 0, "stop after this many expansions (0 = until done)")
	return cmd
}

func (a *app) traceMaze(cmd *cobra.Command, path string, maxSteps int) error {
	lines, err := input.ReadLines(path)
	if err != nil {
		return err
	}
	maze, err := puzzles.ParseMaze(lines)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	stepper := astar.NewStepper[grid.Point](maze, astar.WithLogger(a.logger))
	var snapshot astar.StepSnapshot[grid.Point]
	for !stepper.Done() {
		if maxSteps > 0 && snapshot.StepIndex >= maxSteps {
			break
		}
		snapshot = stepper.Step()
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, maze.Render(snapshot.Path, snapshot.Closed))
	switch {
	case snapshot.Found:
		fmt.Fprintf(out, "steps: %d, expanded: %d\n", int(snapshot.Cost), snapshot.StepIndex)
	case snapshot.Done:
		fmt.Fprintf(out, "no path, expanded: %d\n", snapshot.StepIndex)
	default:
		fmt.Fprintf(out, "stopped after %d expansions, open: %d\n", snapshot.StepIndex, len(snapshot.Open))
	}
	return nil
}
