package puzzles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bytesExample = `
5,4
4,2
4,5
3,0
2,1
6,3
2,4
1,5
0,6
3,3
2,6
5,1
1,2
5,5
2,5
6,5
1,4
0,4
6,4
1,1
6,1
1,0
0,5
1,6
2,0`

func exampleParams() Params {
	params := DefaultParams()
	params.Size = 7
	params.Fallen = 12
	return params
}

func TestBytes(t *testing.T) {
	p, err := Lookup("bytes")
	require.NoError(t, err)

	got, err := p.Solve(1, lines(bytesExample), exampleParams())
	require.NoError(t, err)
	assert.Equal(t, "22", got)

	got, err = p.Solve(2, lines(bytesExample), exampleParams())
	require.NoError(t, err)
	assert.Equal(t, "6,1", got)
}

func TestBytes_NeverBlocked(t *testing.T) {
	params := exampleParams()
	params.Fallen = 1
	_, err := bytesPart2([]string{"1,1", "2,2"}, params)
	assert.ErrorIs(t, err, ErrNeverBlocked)
}

func TestBytes_Invalid(t *testing.T) {
	params := exampleParams()
	_, err := bytesPart1([]string{"1,2,3"}, params)
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = bytesPart1([]string{"1,1"}, params)
	assert.ErrorIs(t, err, ErrMalformed, "fewer bytes than fallen")

	params.Fallen = 0
	params.Size = 0
	_, err = bytesPart1(nil, params)
	assert.Error(t, err)
}
