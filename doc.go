// Package astar provides a generic best-first search engine.
//
// It exposes these entry points:
//
//   - Solve: shortest path from any start state to any goal state of a Problem.
//   - SolveAll: every minimum-cost path of a Problem.
//   - Search: the same engine over an edge-weighted Graph between two nodes.
//   - Stepper: iterate a search one expansion at a time to drive UIs or debugging tools.
//   - Map, MapReduce and SolveBatch: run independent searches on a bounded pool of goroutines.
//
// A Problem describes its state space through callbacks. The cost model is the
// cost of entering a state. When the Problem also implements Estimator the
// search is A*, otherwise the heuristic is zero and the search is Dijkstra.
// The heuristic must never overestimate the remaining cost; a heuristic that
// does still returns a valid path, just not necessarily a cheapest one.
package astar
