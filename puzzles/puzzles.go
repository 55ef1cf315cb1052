// Package puzzles implements archived puzzle solutions on top of the astar
// engine. Every puzzle is registered under a short name and solves its two
// parts from the raw input lines.
package puzzles

import (
	"errors"
	"fmt"
	"sort"

	"github.com/puzzlearchive/astar/grid"
)

var (
	ErrUnknownPuzzle = errors.New("unknown puzzle")
	ErrNoPartTwo     = errors.New("puzzle has no part two")
	ErrNoPath        = errors.New("no path found")
	ErrMalformed     = errors.New("malformed input")
)

// Params carries the tunables some puzzles need.
type Params struct {
	// UltraMin and UltraMax bound the straight run of the ultra crucible.
	UltraMin, UltraMax int
	// Size is the side of the falling bytes memory space, Fallen the number
	// of bytes dropped before part one is measured.
	Size, Fallen int
	// Workers bounds parallel searches inside a single puzzle.
	Workers int
}

// DefaultParams matches the real puzzle inputs.
func DefaultParams() Params {
	return Params{UltraMin: 4, UltraMax: 10, Size: 71, Fallen: 1024}
}

// Part solves one half of a puzzle.
type Part func(lines []string, params Params) (string, error)

// Puzzle is a registered solution.
type Puzzle struct {
	Name  string
	Title string
	Part1 Part
	Part2 Part
}

// Solve runs part 1 or 2.
func (p Puzzle) Solve(part int, lines []string, params Params) (string, error) {
	switch part {
	case 1:
		return p.Part1(lines, params)
	case 2:
		if p.Part2 == nil {
			return "", fmt.Errorf("%s: %w", p.Name, ErrNoPartTwo)
		}
		return p.Part2(lines, params)
	default:
		return "", fmt.Errorf("%s: part %d does not exist", p.Name, part)
	}
}

var registry = map[string]Puzzle{
	"risk":     {Name: "risk", Title: "2021 day 15: Chiton", Part1: riskPart(1), Part2: riskPart(5)},
	"crucible": {Name: "crucible", Title: "2023 day 17: Clumsy Crucible", Part1: cruciblePart1, Part2: cruciblePart2},
	"reindeer": {Name: "reindeer", Title: "2024 day 16: Reindeer Maze", Part1: reindeerPart1, Part2: reindeerPart2},
	"bytes":    {Name: "bytes", Title: "2024 day 18: RAM Run", Part1: bytesPart1, Part2: bytesPart2},
	"lights":   {Name: "lights", Title: "2025 day 10: Factory", Part1: lightsPart1},
	"maze":     {Name: "maze", Title: "Plain S/E maze", Part1: mazePart1, Part2: mazePart2},
}

// Lookup finds a puzzle by name.
func Lookup(name string) (Puzzle, error) {
	p, ok := registry[name]
	if !ok {
		return Puzzle{}, fmt.Errorf("%q: %w", name, ErrUnknownPuzzle)
	}
	return p, nil
}

// All returns the registered puzzles sorted by name.
func All() []Puzzle {
	res := make([]Puzzle, 0, len(registry))
	for _, p := range registry {
		res = append(res, p)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res
}

// parseWalls reads a '#' walled map with one 'S' and one 'E'. The returned
// grid is true on open cells.
func parseWalls(lines []string) (open grid.Grid[bool], start, end grid.Point, err error) {
	open, err = grid.Parse(lines, func(r rune) (bool, error) {
		switch r {
		case '#':
			return false, nil
		case '.', 'S', 'E':
			return true, nil
		default:
			return false, fmt.Errorf("unexpected %q: %w", r, ErrMalformed)
		}
	})
	if err != nil {
		return open, start, end, err
	}
	runes, err := grid.Runes(lines)
	if err != nil {
		return open, start, end, err
	}

	var ok bool
	if start, ok = runes.Find(func(r rune) bool { return r == 'S' }); !ok {
		return open, start, end, fmt.Errorf("no start tile: %w", ErrMalformed)
	}
	if end, ok = runes.Find(func(r rune) bool { return r == 'E' }); !ok {
		return open, start, end, fmt.Errorf("no end tile: %w", ErrMalformed)
	}
	return open, start, end, nil
}
