package puzzles

import (
	"strconv"

	"github.com/puzzlearchive/astar"
	"github.com/puzzlearchive/astar/grid"
)

const (
	stepScore = 1
	turnScore = 1000
)

// ReindeerState is a reindeer tile and heading. Turned is set when the state
// was entered by rotating in place, which is what makes it cost a turn.
type ReindeerState struct {
	Pos    grid.Point
	Dir    grid.Direction
	Turned bool
}

// ReindeerMaze scores moves forward at 1 point and quarter turns at 1000.
// The reindeer starts on S facing East.
type ReindeerMaze struct {
	open       grid.Grid[bool]
	start, end grid.Point
}

func ParseReindeerMaze(lines []string) (*ReindeerMaze, error) {
	open, start, end, err := parseWalls(lines)
	if err != nil {
		return nil, err
	}
	return &ReindeerMaze{open: open, start: start, end: end}, nil
}

func (m *ReindeerMaze) Neighbors(s ReindeerState) []ReindeerState {
	res := make([]ReindeerState, 0, 3)
	if ahead := s.Dir.Advance(s.Pos); m.open.InBounds(ahead) && m.open.At(ahead) {
		res = append(res, ReindeerState{Pos: ahead, Dir: s.Dir})
	}
	res = append(res,
		ReindeerState{Pos: s.Pos, Dir: s.Dir.TurnClockwise(90), Turned: true},
		ReindeerState{Pos: s.Pos, Dir: s.Dir.TurnCounterClockwise(90), Turned: true},
	)
	return res
}

func (m *ReindeerMaze) Cost(s ReindeerState) float64 {
	if s.Turned {
		return turnScore
	}
	return stepScore
}

// Heuristic charges the distance plus one turn unless the end lies straight
// ahead.
func (m *ReindeerMaze) Heuristic(s ReindeerState) float64 {
	d := m.end.Sub(s.Pos)
	h := s.Pos.Manhattan(m.end)
	if h == 0 {
		return 0
	}
	o := s.Dir.Offset()
	ahead := (o.X == 0 && d.X == 0 && d.Y*o.Y > 0) || (o.Y == 0 && d.Y == 0 && d.X*o.X > 0)
	if !ahead {
		h += turnScore
	}
	return float64(h)
}

func (m *ReindeerMaze) IsStart(s ReindeerState) bool {
	return s.Pos == m.start && s.Dir == grid.East && !s.Turned
}

func (m *ReindeerMaze) IsEnd(s ReindeerState) bool { return s.Pos == m.end }

func (m *ReindeerMaze) StartStates() []ReindeerState {
	return []ReindeerState{{Pos: m.start, Dir: grid.East}}
}

// BestSeats counts the tiles that are part of at least one best path.
func (m *ReindeerMaze) BestSeats() (int, error) {
	all := astar.SolveAll[ReindeerState](m)
	if !all.Found {
		return 0, ErrNoPath
	}
	seats := map[grid.Point]bool{}
	for _, path := range all.Paths {
		for _, s := range path {
			seats[s.Pos] = true
		}
	}
	return len(seats), nil
}

func reindeerPart1(lines []string, _ Params) (string, error) {
	m, err := ParseReindeerMaze(lines)
	if err != nil {
		return "", err
	}
	result := astar.Solve[ReindeerState](m)
	if !result.Found {
		return "", ErrNoPath
	}
	return strconv.Itoa(int(result.TotalCost)), nil
}

func reindeerPart2(lines []string, _ Params) (string, error) {
	m, err := ParseReindeerMaze(lines)
	if err != nil {
		return "", err
	}
	seats, err := m.BestSeats()
	if err != nil {
		return "", err
	}
	return strconv.Itoa(seats), nil
}
