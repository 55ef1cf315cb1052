package puzzles

import (
	"fmt"
	"strconv"

	"github.com/puzzlearchive/astar"
	"github.com/puzzlearchive/astar/grid"
)

// RiskMap is a cave of risk levels 1-9. Entering a cell costs its level;
// the search runs from the top left to the bottom right corner.
type RiskMap struct {
	levels grid.Grid[int]
	end    grid.Point
}

// NewRiskMap parses the digit map and tiles it tiles x tiles times. Each
// tile step right or down raises every level by one, wrapping 9 back to 1.
func NewRiskMap(lines []string, tiles int) (*RiskMap, error) {
	base, err := grid.Digits(lines)
	if err != nil {
		return nil, fmt.Errorf("risk map: %w", err)
	}
	if base.Rows() == 0 || base.Cols() == 0 {
		return nil, fmt.Errorf("risk map is empty: %w", ErrMalformed)
	}
	if tiles < 1 {
		tiles = 1
	}

	levels := grid.New[int](base.Rows()*tiles, base.Cols()*tiles)
	for x := 0; x < levels.Rows(); x++ {
		for y := 0; y < levels.Cols(); y++ {
			v := base.At(grid.Point{X: x % base.Rows(), Y: y % base.Cols()})
			v += x/base.Rows() + y/base.Cols()
			levels.Set(grid.Point{X: x, Y: y}, (v-1)%9+1)
		}
	}
	return &RiskMap{
		levels: levels,
		end:    grid.Point{X: levels.Rows() - 1, Y: levels.Cols() - 1},
	}, nil
}

func (m *RiskMap) Neighbors(p grid.Point) []grid.Point {
	res := make([]grid.Point, 0, 4)
	for _, next := range p.Neighbors4() {
		if m.levels.InBounds(next) {
			res = append(res, next)
		}
	}
	return res
}

func (m *RiskMap) Cost(p grid.Point) float64      { return float64(m.levels.At(p)) }
func (m *RiskMap) Heuristic(p grid.Point) float64 { return float64(p.Manhattan(m.end)) }
func (m *RiskMap) IsStart(p grid.Point) bool      { return p == grid.Point{} }
func (m *RiskMap) IsEnd(p grid.Point) bool        { return p == m.end }
func (m *RiskMap) StartStates() []grid.Point      { return []grid.Point{{}} }

func riskPart(tiles int) Part {
	return func(lines []string, _ Params) (string, error) {
		m, err := NewRiskMap(lines, tiles)
		if err != nil {
			return "", err
		}
		result := astar.Solve[grid.Point](m)
		if !result.Found {
			return "", ErrNoPath
		}
		return strconv.Itoa(int(result.TotalCost)), nil
	}
}
