package astar

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Map applies fn to every input on at most workers goroutines and returns the
// outputs in input order. A workers value below one means runtime.NumCPU().
// The first error cancels the context handed to the remaining calls and is
// returned wrapped with the index of the failing input.
func Map[In, Out any](
	ctx context.Context,
	workers int,
	inputs []In,
	fn func(context.Context, In) (Out, error),
) ([]Out, error) {
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	outputs := make([]Out, len(inputs))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)
	for i, input := range inputs {
		i, input := i, input
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			output, err := fn(groupCtx, input)
			if err != nil {
				return fmt.Errorf("input %d: %w", i, err)
			}
			outputs[i] = output
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return outputs, nil
}

// MapReduce runs Map and folds the ordered outputs with reduce.
func MapReduce[In, Out, Reduced any](
	ctx context.Context,
	workers int,
	inputs []In,
	fn func(context.Context, In) (Out, error),
	reduce func([]Out) Reduced,
) (Reduced, error) {
	outputs, err := Map(ctx, workers, inputs, fn)
	if err != nil {
		var zero Reduced
		return zero, err
	}
	return reduce(outputs), nil
}

// SolveBatch solves independent problems in parallel, one Solve per problem,
// on as many goroutines as WithWorkers allows.
func SolveBatch[StateType comparable](
	ctx context.Context,
	problems []Problem[StateType],
	options ...Option,
) ([]Result[StateType], error) {
	searchOptions := applyOptions(options)
	results, err := Map(ctx, searchOptions.NumberOfWorkers, problems,
		func(_ context.Context, problem Problem[StateType]) (Result[StateType], error) {
			return Solve(problem, options...), nil
		})
	if err != nil {
		return nil, err
	}

	found := 0
	for _, result := range results {
		if result.Found {
			found++
		}
	}
	searchOptions.Logger.Debug("batch finished",
		zap.Int("problems", len(problems)),
		zap.Int("found", found),
		zap.Int("workers", searchOptions.NumberOfWorkers),
	)
	return results, nil
}
