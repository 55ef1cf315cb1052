package astar

import (
	"container/heap"

	"github.com/puzzlearchive/astar/internal"
)

// searchSpec is the engine's view of a state space. Both Problem and Graph
// are lowered to it.
type searchSpec[NodeType comparable] struct {
	expand    func(NodeType) []Neighbor[NodeType]
	heuristic func(NodeType) float64
	isStart   func(NodeType) bool
	isEnd     func(NodeType) bool
	starts    []NodeType
	findAll   bool
}

func problemSpec[StateType comparable](problem Problem[StateType], findAll bool) searchSpec[StateType] {
	heuristic := func(StateType) float64 { return 0 }
	if estimator, ok := problem.(Estimator[StateType]); ok {
		heuristic = estimator.Heuristic
	}
	return searchSpec[StateType]{
		expand: func(state StateType) []Neighbor[StateType] {
			states := problem.Neighbors(state)
			neighbors := make([]Neighbor[StateType], len(states))
			for i, next := range states {
				neighbors[i] = Neighbor[StateType]{ID: next, Cost: problem.Cost(next)}
			}
			return neighbors
		},
		heuristic: heuristic,
		isStart:   problem.IsStart,
		isEnd:     problem.IsEnd,
		starts:    problem.StartStates(),
		findAll:   findAll,
	}
}

// search owns the frontier, score table and predecessor table of one
// invocation.
type search[NodeType comparable] struct {
	searchSpec[NodeType]

	openSet  PriorityQueue[NodeType]
	gScore   map[NodeType]float64
	cameFrom map[NodeType][]NodeType
	sequence int

	current  NodeType
	goals    []NodeType
	best     float64
	found    bool
	done     bool
	expanded int
}

func newSearch[NodeType comparable](spec searchSpec[NodeType]) *search[NodeType] {
	s := &search[NodeType]{
		searchSpec: spec,
		openSet:    make(PriorityQueue[NodeType], 0, len(spec.starts)),
		gScore:     make(map[NodeType]float64),
		cameFrom:   make(map[NodeType][]NodeType),
	}
	heap.Init(&s.openSet)
	for _, start := range spec.starts {
		if _, seen := s.gScore[start]; seen {
			continue
		}
		s.gScore[start] = 0
		s.push(start, 0)
	}
	return s
}

func (s *search[NodeType]) push(node NodeType, gScore float64) {
	s.sequence++
	heap.Push(&s.openSet, &PriorityQueueItem[NodeType]{
		Node:     node,
		GScore:   gScore,
		FCost:    gScore + s.heuristic(node),
		Sequence: s.sequence,
	})
}

// next expands one frontier entry and reports whether it did. The expanded
// node is left in s.current.
func (s *search[NodeType]) next() bool {
	for !s.done {
		if s.openSet.Len() == 0 {
			s.done = true
			break
		}

		currentItem := heap.Pop(&s.openSet).(*PriorityQueueItem[NodeType])
		if currentItem.GScore > s.gScore[currentItem.Node] {
			continue
		}
		// Every remaining entry costs more than the goals already reached.
		if s.found && currentItem.FCost > s.best {
			s.done = true
			break
		}

		s.current = currentItem.Node
		s.expanded++

		if s.isEnd(s.current) {
			s.reachGoal(s.current, currentItem.GScore)
			return true
		}

		for _, neighbor := range s.expand(s.current) {
			tentativeG := currentItem.GScore + neighbor.Cost
			if s.found && tentativeG > s.best {
				continue
			}
			knownG, seen := s.gScore[neighbor.ID]
			switch {
			case !seen || tentativeG < knownG:
				s.gScore[neighbor.ID] = tentativeG
				s.cameFrom[neighbor.ID] = append(s.cameFrom[neighbor.ID][:0], s.current)
				s.push(neighbor.ID, tentativeG)
			case s.findAll && tentativeG == knownG:
				s.addPredecessor(neighbor.ID, s.current)
			}
		}
		return true
	}
	return false
}

func (s *search[NodeType]) reachGoal(goal NodeType, gScore float64) {
	if !s.found || gScore < s.best {
		s.found = true
		s.best = gScore
		s.goals = s.goals[:0]
	}
	if gScore == s.best {
		s.goals = append(s.goals, goal)
	}
	if !s.findAll {
		s.done = true
	}
}

func (s *search[NodeType]) addPredecessor(node, previousNode NodeType) {
	for _, known := range s.cameFrom[node] {
		if known == previousNode {
			return
		}
	}
	s.cameFrom[node] = append(s.cameFrom[node], previousNode)
}

func (s *search[NodeType]) result() Result[NodeType] {
	if !s.found {
		return Result[NodeType]{ExpandedNodes: s.expanded}
	}
	return Result[NodeType]{
		Path:          internal.ReconstructPath(s.cameFrom, s.goals[0], s.isStart),
		TotalCost:     s.best,
		ExpandedNodes: s.expanded,
		Found:         true,
	}
}

func (s *search[NodeType]) allPaths() PathSet[NodeType] {
	if !s.found {
		return PathSet[NodeType]{ExpandedNodes: s.expanded}
	}
	return PathSet[NodeType]{
		Paths:         internal.ReconstructAll(s.cameFrom, s.goals, s.isStart),
		TotalCost:     s.best,
		ExpandedNodes: s.expanded,
		Found:         true,
	}
}
