package astar

import (
	"context"
	"runtime"

	"go.uber.org/zap"
)

// Problem describes a state space to search.
// StateType must be comparable so it can be used in maps.
type Problem[StateType comparable] interface {
	// Neighbors returns every state reachable from state in one transition.
	Neighbors(state StateType) []StateType
	// Cost returns the non-negative cost of entering state.
	Cost(state StateType) float64
	IsStart(state StateType) bool
	IsEnd(state StateType) bool
	// StartStates seeds the frontier.
	StartStates() []StateType
}

// Estimator is implemented by a Problem that supplies an A* heuristic.
// The estimate must never exceed the true remaining cost to a goal.
type Estimator[StateType comparable] interface {
	Heuristic(state StateType) float64
}

// Graph is generic over node type N.
// N must be comparable so it can be used in maps.
type Graph[NodeType comparable] interface {
	Neighbors(node NodeType) []Neighbor[NodeType]
}

// Neighbor represents a reachable node with a cost.
type Neighbor[NodeType comparable] struct {
	ID   NodeType
	Cost float64
}

// Heuristic returns the estimated cost from node a to node b
type Heuristic[NodeType comparable] func(from NodeType, to NodeType) float64

// Result contains the outcome of a search
type Result[NodeType comparable] struct {
	Path          []NodeType
	TotalCost     float64
	ExpandedNodes int
	Found         bool
}

// PathSet contains every minimum-cost path found by SolveAll.
type PathSet[NodeType comparable] struct {
	Paths         [][]NodeType
	TotalCost     float64
	ExpandedNodes int
	Found         bool
}

// Options defines parameters for the search.
type Options struct {
	NumberOfWorkers int
	Logger          *zap.Logger
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithWorkers specifies how many goroutines SolveBatch runs searches on.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

// WithLogger sets the logger used for debug events. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(options *Options) {
		if logger != nil {
			options.Logger = logger
		}
	}
}

func applyOptions(options []Option) Options {
	searchOptions := Options{
		NumberOfWorkers: runtime.NumCPU(),
		Logger:          zap.NewNop(),
	}
	for _, option := range options {
		option(&searchOptions)
	}
	return searchOptions
}

// Solve returns a cheapest path from any start state to any goal state of
// problem. When no goal is reachable the Result has Found set to false and
// an empty Path.
func Solve[StateType comparable](problem Problem[StateType], options ...Option) Result[StateType] {
	searchOptions := applyOptions(options)

	run := newSearch(problemSpec(problem, false))
	for run.next() {
	}

	result := run.result()
	searchOptions.Logger.Debug("search finished",
		zap.Bool("found", result.Found),
		zap.Float64("cost", result.TotalCost),
		zap.Int("path_length", len(result.Path)),
		zap.Int("expanded", result.ExpandedNodes),
	)
	return result
}

// SolveAll returns every minimum-cost path from a start state to a goal
// state of problem. Once a goal is reached, candidates costlier than it are
// pruned and equal-cost predecessors are recorded so that alternative routes
// can be enumerated. An unreachable goal yields an empty PathSet.
func SolveAll[StateType comparable](problem Problem[StateType], options ...Option) PathSet[StateType] {
	searchOptions := applyOptions(options)

	run := newSearch(problemSpec(problem, true))
	for run.next() {
	}

	paths := run.allPaths()
	searchOptions.Logger.Debug("search finished",
		zap.Bool("found", paths.Found),
		zap.Float64("cost", paths.TotalCost),
		zap.Int("paths", len(paths.Paths)),
		zap.Int("goals", len(run.goals)),
		zap.Int("expanded", paths.ExpandedNodes),
	)
	return paths
}

// Search runs the search between startNode and goalNode over an
// edge-weighted graph. The context is checked between expansions; its
// error is the only error returned. An unreachable goal is reported with
// Found set to false and a nil error.
func Search[NodeType comparable](
	contextObject context.Context,
	graph Graph[NodeType],
	startNode NodeType,
	goalNode NodeType,
	heuristic Heuristic[NodeType],
	options ...Option,
) (Result[NodeType], error) {
	searchOptions := applyOptions(options)
	if heuristic == nil {
		heuristic = func(NodeType, NodeType) float64 { return 0 }
	}

	run := newSearch(searchSpec[NodeType]{
		expand:    graph.Neighbors,
		heuristic: func(node NodeType) float64 { return heuristic(node, goalNode) },
		isStart:   func(node NodeType) bool { return node == startNode },
		isEnd:     func(node NodeType) bool { return node == goalNode },
		starts:    []NodeType{startNode},
	})
	for {
		if err := contextObject.Err(); err != nil {
			return Result[NodeType]{ExpandedNodes: run.expanded}, err
		}
		if !run.next() {
			break
		}
	}

	result := run.result()
	searchOptions.Logger.Debug("graph search finished",
		zap.Bool("found", result.Found),
		zap.Float64("cost", result.TotalCost),
		zap.Int("expanded", result.ExpandedNodes),
	)
	return result, nil
}
