// Package grid holds the small geometry helpers shared by puzzle solvers:
// integer points, eight-way directions and rectangular grids parsed from
// text lines.
package grid

import "fmt"

// Point is a cell coordinate. X is the row and Y the column, so lines of
// input map to increasing X.
type Point struct {
	X, Y int
}

// Unit vectors in row-major orientation.
var (
	Up    = Point{-1, 0}
	Down  = Point{1, 0}
	Left  = Point{0, -1}
	Right = Point{0, 1}
)

// Cardinals lists the four axis-aligned unit vectors.
var Cardinals = []Point{Up, Right, Down, Left}

func (p Point) Add(o Point) Point      { return Point{p.X + o.X, p.Y + o.Y} }
func (p Point) Sub(o Point) Point      { return Point{p.X - o.X, p.Y - o.Y} }
func (p Point) Scale(factor int) Point { return Point{p.X * factor, p.Y * factor} }

// Manhattan is the L1 distance between p and o.
func (p Point) Manhattan(o Point) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

// Chebyshev is the L-infinity distance between p and o.
func (p Point) Chebyshev(o Point) int {
	return max(abs(p.X-o.X), abs(p.Y-o.Y))
}

// Neighbors4 returns the four orthogonal neighbours of p, unbounded.
func (p Point) Neighbors4() []Point {
	res := make([]Point, 0, 4)
	for _, d := range Cardinals {
		res = append(res, p.Add(d))
	}
	return res
}

// Neighbors8 returns the eight surrounding cells of p, unbounded.
func (p Point) Neighbors8() []Point {
	res := make([]Point, 0, 8)
	for d := North; d <= NorthWest; d++ {
		res = append(res, d.Advance(p))
	}
	return res
}

func (p Point) String() string { return fmt.Sprintf("(%d, %d)", p.X, p.Y) }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
