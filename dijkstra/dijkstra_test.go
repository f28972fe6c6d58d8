package dijkstra

import (
	"testing"

	"github.com/lsynth/lsynth/dag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrivalLevelsNilArena(t *testing.T) {
	_, err := ArrivalLevels(nil)
	assert.ErrorIs(t, err, ErrNilArena)
}

func TestArrivalLevelsChain(t *testing.T) {
	a := dag.NewArena()
	x := a.AddPI("x")
	y := a.AddPI("y")
	and1, err := a.AddAnd(dag.E(x), dag.E(y))
	require.NoError(t, err)
	and2, err := a.AddAnd(dag.E(and1), dag.E(x))
	require.NoError(t, err)

	levels, err := ArrivalLevels(a)
	require.NoError(t, err)
	assert.Equal(t, int64(0), levels[x])
	assert.Equal(t, int64(0), levels[y])
	assert.Equal(t, int64(1), levels[and1])
	assert.Equal(t, int64(2), levels[and2])
}

func TestArrivalLevelsRespectsMaxLevel(t *testing.T) {
	a := dag.NewArena()
	x := a.AddPI("x")
	y := a.AddPI("y")
	and1, err := a.AddAnd(dag.E(x), dag.E(y))
	require.NoError(t, err)

	levels, err := ArrivalLevels(a, WithMaxLevel(0))
	require.NoError(t, err)
	assert.Equal(t, int64(0), levels[and1])
}

func TestRequiredLevelsOutputsAtMaxDepth(t *testing.T) {
	a := dag.NewArena()
	x := a.AddPI("x")
	y := a.AddPI("y")
	and1, err := a.AddAnd(dag.E(x), dag.E(y))
	require.NoError(t, err)
	and2, err := a.AddAnd(dag.E(and1), dag.E(x))
	require.NoError(t, err)
	a.AddPO("o", dag.E(and2))

	required, err := RequiredLevels(a)
	require.NoError(t, err)
	assert.Equal(t, int64(2), required[and2])
	assert.Equal(t, int64(1), required[and1])
	assert.LessOrEqual(t, required[x], int64(0))
}

func TestWithMaxLevelPanicsOnNegative(t *testing.T) {
	assert.PanicsWithValue(t, ErrBadMaxLevel.Error(), func() {
		WithMaxLevel(-1)
	})
}
