package puzzles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puzzlearchive/astar"
	"github.com/puzzlearchive/astar/grid"
)

const smallMaze = `
S..
.#.
..E`

func TestMaze(t *testing.T) {
	p, err := Lookup("maze")
	require.NoError(t, err)

	got, err := p.Solve(1, lines(smallMaze), DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, "4", got)

	got, err = p.Solve(2, lines(smallMaze), DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, "2", got)
}

func TestMaze_Blocked(t *testing.T) {
	_, err := mazePart1(lines("S#E"), DefaultParams())
	assert.ErrorIs(t, err, ErrNoPath)

	_, err = mazePart2(lines("S#E"), DefaultParams())
	assert.ErrorIs(t, err, ErrNoPath)
}

func TestMaze_Render(t *testing.T) {
	m, err := ParseMaze(lines(smallMaze))
	require.NoError(t, err)

	result := astar.Solve[grid.Point](m)
	require.True(t, result.Found)
	visited := map[grid.Point]bool{gridPoint(1, 0): true, gridPoint(0, 1): true}

	out := m.Render(result.Path, visited)
	assert.Len(t, lines(out), 4) // trailing newline
	assert.Equal(t, 'S', rune(out[0]))
	assert.Contains(t, out, "#")
	assert.Equal(t, 3, countRune(out, 'O'))
	assert.Equal(t, 1, countRune(out, '+'))
	assert.Equal(t, "S..\n.#.\n..E\n", m.Render(nil, nil))
}

func countRune(s string, r rune) int {
	n := 0
	for _, c := range s {
		if c == r {
			n++
		}
	}
	return n
}
