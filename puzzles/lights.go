package puzzles

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/puzzlearchive/astar"
	"github.com/puzzlearchive/astar/internal/input"
)

var (
	lightsPattern = regexp.MustCompile(`\[([.#]+)\]`)
	buttonPattern = regexp.MustCompile(`\(([\d,]*)\)`)
)

// LightMachine is a row of indicator lights and buttons that toggle some of
// them. States are bitmasks of lit lights; every press costs one.
type LightMachine struct {
	Target  uint64
	Buttons []uint64
}

// ParseLightMachine reads "[.##.] (3) (1,3) ... {3,5,4,7}". The joltage
// block is ignored.
func ParseLightMachine(line string) (LightMachine, error) {
	lights := lightsPattern.FindStringSubmatch(line)
	if lights == nil {
		return LightMachine{}, fmt.Errorf("no light diagram in %q: %w", line, ErrMalformed)
	}
	if len(lights[1]) > 64 {
		return LightMachine{}, fmt.Errorf("%d lights do not fit a mask: %w", len(lights[1]), ErrMalformed)
	}

	var m LightMachine
	for i, c := range lights[1] {
		if c == '#' {
			m.Target |= 1 << i
		}
	}
	for _, button := range buttonPattern.FindAllStringSubmatch(line, -1) {
		indices, err := input.Ints(button[1], ",")
		if err != nil {
			return LightMachine{}, fmt.Errorf("button %q: %w", button[0], err)
		}
		var mask uint64
		for _, i := range indices {
			if i < 0 || i >= len(lights[1]) {
				return LightMachine{}, fmt.Errorf("button %q toggles light %d: %w", button[0], i, ErrMalformed)
			}
			mask |= 1 << i
		}
		m.Buttons = append(m.Buttons, mask)
	}
	return m, nil
}

func (m LightMachine) Neighbors(state uint64) []uint64 {
	seen := make(map[uint64]bool, len(m.Buttons))
	res := make([]uint64, 0, len(m.Buttons))
	for _, button := range m.Buttons {
		next := state ^ button
		if !seen[next] {
			seen[next] = true
			res = append(res, next)
		}
	}
	return res
}

func (m LightMachine) Cost(uint64) float64       { return 1 }
func (m LightMachine) IsStart(state uint64) bool { return state == 0 }
func (m LightMachine) IsEnd(state uint64) bool   { return state == m.Target }
func (m LightMachine) StartStates() []uint64     { return []uint64{0} }

// lightsPart1 sums the fewest presses of every machine. Machines are
// independent and solved in parallel.
func lightsPart1(lines []string, params Params) (string, error) {
	var problems []astar.Problem[uint64]
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		m, err := ParseLightMachine(line)
		if err != nil {
			return "", fmt.Errorf("line %d: %w", i+1, err)
		}
		problems = append(problems, m)
	}

	results, err := astar.SolveBatch(context.Background(), problems, astar.WithWorkers(params.Workers))
	if err != nil {
		return "", err
	}
	total := 0
	for i, result := range results {
		if !result.Found {
			return "", fmt.Errorf("machine %d: %w", i+1, ErrNoPath)
		}
		total += len(result.Path) - 1
	}
	return strconv.Itoa(total), nil
}
