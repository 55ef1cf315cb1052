package astar

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puzzlearchive/astar/grid"
)

func TestStepper_MatchesSolve(t *testing.T) {
	g := estimatedGrid{wallWithGap()}
	want := Solve[grid.Point](g)

	stepper := NewStepper[grid.Point](g)
	var snapshot StepSnapshot[grid.Point]
	for i := 1; !stepper.Done(); i++ {
		snapshot = stepper.Step()
		require.Equal(t, i, snapshot.StepIndex)
		require.Len(t, snapshot.Closed, snapshot.StepIndex)
		assert.True(t, snapshot.Closed[snapshot.Current])
		if !snapshot.Done {
			assert.False(t, snapshot.Open[snapshot.Current])
		}
	}

	assert.True(t, snapshot.Done)
	assert.True(t, snapshot.Found)
	assert.Equal(t, want.TotalCost, snapshot.Cost)
	assert.Equal(t, want.ExpandedNodes, snapshot.StepIndex)
	assert.Equal(t, g.goal, snapshot.Current)
	if diff := cmp.Diff(want.Path, snapshot.Path); diff != "" {
		t.Errorf("path mismatch (-solve +stepper):\n%s", diff)
	}

	for cur, prev := range snapshot.CameFrom {
		assert.Contains(t, g.Neighbors(prev), cur)
	}

	again := stepper.Step()
	assert.Equal(t, snapshot, again)
}

func TestStepper_Unreachable(t *testing.T) {
	g := wallWithGap()
	g.walls[grid.Point{X: 4, Y: 2}] = true

	stepper := NewStepper[grid.Point](g)
	var snapshot StepSnapshot[grid.Point]
	for !stepper.Done() {
		snapshot = stepper.Step()
	}

	assert.True(t, snapshot.Done)
	assert.False(t, snapshot.Found)
	assert.Empty(t, snapshot.Path)
	assert.Empty(t, snapshot.Open)
	// Everything left of the wall: 5 rows x 2 columns.
	assert.Len(t, snapshot.Closed, 10)
}
