package grid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigits(t *testing.T) {
	g, err := Digits([]string{"123", "456", ""})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.Equal(t, 6, g.At(Point{1, 2}))
	assert.True(t, g.InBounds(Point{1, 2}))
	assert.False(t, g.InBounds(Point{2, 0}))
	assert.False(t, g.InBounds(Point{0, -1}))

	g.Set(Point{0, 0}, 9)
	assert.Equal(t, 9, g.At(Point{0, 0}))
}

func TestDigits_Invalid(t *testing.T) {
	_, err := Digits([]string{"12", "3x"})
	assert.ErrorContains(t, err, "cell 1,1")
}

func TestParse_Ragged(t *testing.T) {
	_, err := Runes([]string{"abc", "de"})
	assert.True(t, errors.Is(err, ErrRagged))
}

func TestGrid_Empty(t *testing.T) {
	g, err := Runes(nil)
	require.NoError(t, err)
	assert.Zero(t, g.Rows())
	assert.Zero(t, g.Cols())
	assert.False(t, g.InBounds(Point{}))
}

func TestGrid_FindAndRender(t *testing.T) {
	g, err := Runes([]string{"#.S", "E.#"})
	require.NoError(t, err)

	start, ok := g.Find(func(r rune) bool { return r == 'S' })
	require.True(t, ok)
	assert.Equal(t, Point{0, 2}, start)

	_, ok = g.Find(func(r rune) bool { return r == 'X' })
	assert.False(t, ok)

	out := g.Render(func(p Point, r rune) rune {
		if r == '.' {
			return 'o'
		}
		return r
	})
	assert.Equal(t, "#oS\nEo#\n", out)
}

func TestNew(t *testing.T) {
	g := New[bool](3, 4)
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 4, g.Cols())
	assert.False(t, g.At(Point{2, 3}))
}
