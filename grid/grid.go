package grid

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRagged is returned when input lines do not all have the same length.
var ErrRagged = errors.New("grid: lines have different lengths")

// Grid is a dense rectangular grid indexed by Point.
type Grid[T any] struct {
	cells [][]T
}

// New returns a rows x cols grid of zero values.
func New[T any](rows, cols int) Grid[T] {
	cells := make([][]T, rows)
	for i := range cells {
		cells[i] = make([]T, cols)
	}
	return Grid[T]{cells: cells}
}

// Parse builds a grid from lines, converting each rune with convert.
// Empty trailing lines are ignored.
func Parse[T any](lines []string, convert func(rune) (T, error)) (Grid[T], error) {
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	cells := make([][]T, len(lines))
	width := -1
	for i, line := range lines {
		row := make([]T, 0, len(line))
		for j, r := range line {
			v, err := convert(r)
			if err != nil {
				return Grid[T]{}, fmt.Errorf("grid: cell %d,%d: %w", i, j, err)
			}
			row = append(row, v)
		}
		if width >= 0 && len(row) != width {
			return Grid[T]{}, fmt.Errorf("line %d has %d cells, want %d: %w", i, len(row), width, ErrRagged)
		}
		width = len(row)
		cells[i] = row
	}
	return Grid[T]{cells: cells}, nil
}

// Digits parses a grid of single decimal digits.
func Digits(lines []string) (Grid[int], error) {
	return Parse(lines, func(r rune) (int, error) {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%q is not a digit", r)
		}
		return int(r - '0'), nil
	})
}

// Runes parses a grid of raw characters.
func Runes(lines []string) (Grid[rune], error) {
	return Parse(lines, func(r rune) (rune, error) { return r, nil })
}

func (g Grid[T]) Rows() int { return len(g.cells) }

func (g Grid[T]) Cols() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

// InBounds reports whether p addresses a cell of g.
func (g Grid[T]) InBounds(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.Rows() && p.Y < g.Cols()
}

// At returns the value at p. p must be in bounds.
func (g Grid[T]) At(p Point) T { return g.cells[p.X][p.Y] }

// Set stores v at p. p must be in bounds.
func (g Grid[T]) Set(p Point, v T) { g.cells[p.X][p.Y] = v }

// Find returns the first cell, in row-major order, accepted by match.
func (g Grid[T]) Find(match func(T) bool) (Point, bool) {
	for i, row := range g.cells {
		for j, v := range row {
			if match(v) {
				return Point{i, j}, true
			}
		}
	}
	return Point{}, false
}

// Render draws the grid one line per row.
func (g Grid[T]) Render(draw func(Point, T) rune) string {
	var sb strings.Builder
	for i, row := range g.cells {
		for j, v := range row {
			sb.WriteRune(draw(Point{i, j}, v))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
