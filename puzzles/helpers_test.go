package puzzles

import "github.com/puzzlearchive/astar/grid"

func gridPoint(x, y int) grid.Point { return grid.Point{X: x, Y: y} }
