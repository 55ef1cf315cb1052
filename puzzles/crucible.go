package puzzles

import (
	"fmt"
	"strconv"

	"github.com/puzzlearchive/astar"
	"github.com/puzzlearchive/astar/grid"
)

// CrucibleState is a crucible position, its heading and how many cells it
// has moved in a straight line. Run is zero only before the first move.
type CrucibleState struct {
	Pos grid.Point
	Dir grid.Direction
	Run int
}

// Crucible moves across a heat loss map from the top left to the bottom
// right corner. It must travel at least minRun cells before turning or
// stopping and at most maxRun cells without turning.
type Crucible struct {
	heat   grid.Grid[int]
	end    grid.Point
	minRun int
	maxRun int
}

func NewCrucible(lines []string, minRun, maxRun int) (*Crucible, error) {
	heat, err := grid.Digits(lines)
	if err != nil {
		return nil, fmt.Errorf("heat map: %w", err)
	}
	if heat.Rows() == 0 || heat.Cols() == 0 {
		return nil, fmt.Errorf("heat map is empty: %w", ErrMalformed)
	}
	if minRun < 1 || maxRun < minRun {
		return nil, fmt.Errorf("run bounds %d..%d are invalid", minRun, maxRun)
	}
	return &Crucible{
		heat:   heat,
		end:    grid.Point{X: heat.Rows() - 1, Y: heat.Cols() - 1},
		minRun: minRun,
		maxRun: maxRun,
	}, nil
}

func (c *Crucible) Neighbors(s CrucibleState) []CrucibleState {
	res := make([]CrucibleState, 0, 3)
	if s.Run == 0 || s.Run >= c.minRun {
		for _, turn := range []grid.Direction{s.Dir.TurnClockwise(90), s.Dir.TurnCounterClockwise(90)} {
			res = append(res, CrucibleState{Pos: turn.Advance(s.Pos), Dir: turn, Run: 1})
		}
	}
	if s.Run < c.maxRun {
		res = append(res, CrucibleState{Pos: s.Dir.Advance(s.Pos), Dir: s.Dir, Run: s.Run + 1})
	}

	valid := res[:0]
	for _, next := range res {
		if c.heat.InBounds(next.Pos) {
			valid = append(valid, next)
		}
	}
	return valid
}

func (c *Crucible) Cost(s CrucibleState) float64 { return float64(c.heat.At(s.Pos)) }

// Heuristic is admissible because every cell loses at least one heat.
func (c *Crucible) Heuristic(s CrucibleState) float64 { return float64(s.Pos.Manhattan(c.end)) }

func (c *Crucible) IsStart(s CrucibleState) bool { return s.Run == 0 }
func (c *Crucible) IsEnd(s CrucibleState) bool   { return s.Pos == c.end && s.Run >= c.minRun }

func (c *Crucible) StartStates() []CrucibleState {
	return []CrucibleState{
		{Pos: grid.Point{}, Dir: grid.East},
		{Pos: grid.Point{}, Dir: grid.South},
	}
}

// HeatLoss returns the least heat lost reaching the factory.
func (c *Crucible) HeatLoss() (int, error) {
	result := astar.Solve[CrucibleState](c)
	if !result.Found {
		return 0, ErrNoPath
	}
	return int(result.TotalCost), nil
}

func cruciblePart1(lines []string, _ Params) (string, error) {
	c, err := NewCrucible(lines, 1, 3)
	if err != nil {
		return "", err
	}
	loss, err := c.HeatLoss()
	if err != nil {
		return "", err
	}
	return strconv.Itoa(loss), nil
}

func cruciblePart2(lines []string, params Params) (string, error) {
	c, err := NewCrucible(lines, params.UltraMin, params.UltraMax)
	if err != nil {
		return "", err
	}
	loss, err := c.HeatLoss()
	if err != nil {
		return "", err
	}
	return strconv.Itoa(loss), nil
}
