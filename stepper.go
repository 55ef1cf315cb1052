package astar

import (
	"go.uber.org/zap"
)

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot[NodeType comparable] struct {
	Current   NodeType
	Open      map[NodeType]bool
	Closed    map[NodeType]bool
	CameFrom  map[NodeType]NodeType
	Done      bool
	Found     bool
	Path      []NodeType
	Cost      float64
	StepIndex int
}

// Stepper runs the same single-path search as Solve, one expansion per Step.
type Stepper[NodeType comparable] struct {
	run       *search[NodeType]
	logger    *zap.Logger
	closedSet map[NodeType]bool
	stepCount int
	final     *StepSnapshot[NodeType]
}

// NewStepper creates a stepper over problem.
func NewStepper[NodeType comparable](problem Problem[NodeType], options ...Option) *Stepper[NodeType] {
	opts := applyOptions(options)
	return &Stepper[NodeType]{
		run:       newSearch(problemSpec(problem, false)),
		logger:    opts.Logger,
		closedSet: make(map[NodeType]bool),
	}
}

// Step advances the search by one node expansion and returns a snapshot.
// After the search is done every call returns the final snapshot.
func (s *Stepper[NodeType]) Step() StepSnapshot[NodeType] {
	if s.final != nil {
		return *s.final
	}

	if !s.run.next() {
		return s.finish()
	}

	s.stepCount++
	current := s.run.current
	s.closedSet[current] = true
	s.logger.Debug("step",
		zap.Int("step", s.stepCount),
		zap.Any("current", current),
		zap.Int("open", s.run.openSet.Len()),
	)

	if s.run.done {
		return s.finish()
	}
	return StepSnapshot[NodeType]{
		Current:   current,
		Open:      s.openSetToBoolMap(),
		Closed:    copyBoolMap(s.closedSet),
		CameFrom:  s.firstPredecessors(),
		StepIndex: s.stepCount,
	}
}

// Done reports whether the search has finished.
func (s *Stepper[NodeType]) Done() bool { return s.final != nil }

func (s *Stepper[NodeType]) finish() StepSnapshot[NodeType] {
	result := s.run.result()
	snapshot := StepSnapshot[NodeType]{
		Current:   s.run.current,
		Open:      s.openSetToBoolMap(),
		Closed:    copyBoolMap(s.closedSet),
		CameFrom:  s.firstPredecessors(),
		Done:      true,
		Found:     result.Found,
		Path:      result.Path,
		Cost:      result.TotalCost,
		StepIndex: s.stepCount,
	}
	s.final = &snapshot
	s.logger.Debug("stepper finished",
		zap.Bool("found", result.Found),
		zap.Float64("cost", result.TotalCost),
		zap.Int("steps", s.stepCount),
	)
	return snapshot
}

// openSetToBoolMap lists the nodes that still have a live frontier entry.
func (s *Stepper[NodeType]) openSetToBoolMap() map[NodeType]bool {
	m := make(map[NodeType]bool, s.run.openSet.Len())
	for _, item := range s.run.openSet {
		if item.GScore <= s.run.gScore[item.Node] {
			m[item.Node] = true
		}
	}
	return m
}

func (s *Stepper[NodeType]) firstPredecessors() map[NodeType]NodeType {
	c := make(map[NodeType]NodeType, len(s.run.cameFrom))
	for k, v := range s.run.cameFrom {
		if len(v) > 0 {
			c[k] = v[0]
		}
	}
	return c
}

func copyBoolMap[T comparable](m map[T]bool) map[T]bool {
	if m == nil {
		return nil
	}
	c := make(map[T]bool, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
