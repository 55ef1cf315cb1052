package puzzles

import (
	"strconv"

	"github.com/puzzlearchive/astar"
	"github.com/puzzlearchive/astar/grid"
)

// Maze is a walled grid walked orthogonally from S to E, one point per step.
type Maze struct {
	open       grid.Grid[bool]
	start, end grid.Point
}

func ParseMaze(lines []string) (*Maze, error) {
	open, start, end, err := parseWalls(lines)
	if err != nil {
		return nil, err
	}
	return &Maze{open: open, start: start, end: end}, nil
}

func (m *Maze) Neighbors(p grid.Point) []grid.Point {
	res := make([]grid.Point, 0, 4)
	for _, next := range p.Neighbors4() {
		if m.open.InBounds(next) && m.open.At(next) {
			res = append(res, next)
		}
	}
	return res
}

func (m *Maze) Cost(grid.Point) float64        { return 1 }
func (m *Maze) Heuristic(p grid.Point) float64 { return float64(p.Manhattan(m.end)) }
func (m *Maze) IsStart(p grid.Point) bool      { return p == m.start }
func (m *Maze) IsEnd(p grid.Point) bool        { return p == m.end }
func (m *Maze) StartStates() []grid.Point      { return []grid.Point{m.start} }

// Render draws the maze with path cells as 'O' and other visited cells as
// '+'. Either argument may be nil.
func (m *Maze) Render(path []grid.Point, visited map[grid.Point]bool) string {
	onPath := pathSet(path)
	return m.open.Render(func(p grid.Point, open bool) rune {
		switch {
		case p == m.start:
			return 'S'
		case p == m.end:
			return 'E'
		case !open:
			return '#'
		case onPath[p]:
			return 'O'
		case visited[p]:
			return '+'
		default:
			return '.'
		}
	})
}

func mazePart1(lines []string, _ Params) (string, error) {
	m, err := ParseMaze(lines)
	if err != nil {
		return "", err
	}
	result := astar.Solve[grid.Point](m)
	if !result.Found {
		return "", ErrNoPath
	}
	return strconv.Itoa(int(result.TotalCost)), nil
}

func mazePart2(lines []string, _ Params) (string, error) {
	m, err := ParseMaze(lines)
	if err != nil {
		return "", err
	}
	all := astar.SolveAll[grid.Point](m)
	if !all.Found {
		return "", ErrNoPath
	}
	return strconv.Itoa(len(all.Paths)), nil
}
