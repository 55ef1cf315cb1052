package puzzles

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/puzzlearchive/astar"
	"github.com/puzzlearchive/astar/grid"
	"github.com/puzzlearchive/astar/internal/input"
)

// ErrNeverBlocked is returned when every byte has fallen and the exit is
// still reachable.
var ErrNeverBlocked = errors.New("exit never blocked")

// MemorySpace is a size x size square with corrupted cells. The walk goes
// from 0,0 to size-1,size-1 one orthogonal step at a time.
type MemorySpace struct {
	size      int
	corrupted map[grid.Point]bool
}

func NewMemorySpace(size int) *MemorySpace {
	return &MemorySpace{size: size, corrupted: make(map[grid.Point]bool)}
}

// Corrupt marks p as unusable.
func (m *MemorySpace) Corrupt(p grid.Point) { m.corrupted[p] = true }

func (m *MemorySpace) exit() grid.Point { return grid.Point{X: m.size - 1, Y: m.size - 1} }

func (m *MemorySpace) Neighbors(p grid.Point) []grid.Point {
	res := make([]grid.Point, 0, 4)
	for _, next := range p.Neighbors4() {
		if next.X < 0 || next.Y < 0 || next.X >= m.size || next.Y >= m.size || m.corrupted[next] {
			continue
		}
		res = append(res, next)
	}
	return res
}

func (m *MemorySpace) Cost(grid.Point) float64        { return 1 }
func (m *MemorySpace) Heuristic(p grid.Point) float64 { return float64(p.Manhattan(m.exit())) }
func (m *MemorySpace) IsStart(p grid.Point) bool      { return p == grid.Point{} }
func (m *MemorySpace) IsEnd(p grid.Point) bool        { return p == m.exit() }
func (m *MemorySpace) StartStates() []grid.Point      { return []grid.Point{{}} }

func parseBytes(lines []string) ([]grid.Point, error) {
	var res []grid.Point
	for i, line := range lines {
		if line == "" {
			continue
		}
		values, err := input.Ints(line, ",")
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if len(values) != 2 {
			return nil, fmt.Errorf("line %d: want x,y: %w", i+1, ErrMalformed)
		}
		res = append(res, grid.Point{X: values[0], Y: values[1]})
	}
	return res, nil
}

func fallenSpace(lines []string, params Params) (*MemorySpace, []grid.Point, error) {
	falling, err := parseBytes(lines)
	if err != nil {
		return nil, nil, err
	}
	if params.Size < 1 {
		return nil, nil, fmt.Errorf("memory size %d is invalid", params.Size)
	}
	if params.Fallen > len(falling) {
		return nil, nil, fmt.Errorf("%d bytes fallen but only %d listed: %w", params.Fallen, len(falling), ErrMalformed)
	}
	space := NewMemorySpace(params.Size)
	for _, p := range falling[:params.Fallen] {
		space.Corrupt(p)
	}
	return space, falling, nil
}

func bytesPart1(lines []string, params Params) (string, error) {
	space, _, err := fallenSpace(lines, params)
	if err != nil {
		return "", err
	}
	result := astar.Solve[grid.Point](space)
	if !result.Found {
		return "", ErrNoPath
	}
	return strconv.Itoa(len(result.Path) - 1), nil
}

// bytesPart2 drops the remaining bytes one at a time. The search only runs
// again when a byte lands on the current shortest path.
func bytesPart2(lines []string, params Params) (string, error) {
	space, falling, err := fallenSpace(lines, params)
	if err != nil {
		return "", err
	}
	result := astar.Solve[grid.Point](space)
	if !result.Found {
		return "", ErrNoPath
	}
	onPath := pathSet(result.Path)

	for _, p := range falling[params.Fallen:] {
		space.Corrupt(p)
		if !onPath[p] {
			continue
		}
		result = astar.Solve[grid.Point](space)
		if !result.Found {
			return fmt.Sprintf("%d,%d", p.X, p.Y), nil
		}
		onPath = pathSet(result.Path)
	}
	return "", ErrNeverBlocked
}

func pathSet(path []grid.Point) map[grid.Point]bool {
	res := make(map[grid.Point]bool, len(path))
	for _, p := range path {
		res[p] = true
	}
	return res
}
