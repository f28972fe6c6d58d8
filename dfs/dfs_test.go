package dfs

import (
	"errors"
	"testing"

	"github.com/lsynth/lsynth/dag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildChain(t *testing.T) (*dag.Arena, dag.Ref, dag.Ref, dag.Ref) {
	t.Helper()
	a := dag.NewArena()
	x := a.AddPI("x")
	y := a.AddPI("y")
	and1, err := a.AddAnd(dag.E(x), dag.E(y))
	require.NoError(t, err)
	return a, x, y, and1
}

func TestWalkNilArena(t *testing.T) {
	_, err := Walk(nil, dag.Ref(1))
	assert.ErrorIs(t, err, ErrArenaNil)
}

func TestWalkInvalidStart(t *testing.T) {
	a := dag.NewArena()
	_, err := Walk(a, dag.Ref(99))
	assert.ErrorIs(t, err, ErrStartRefInvalid)
}

func TestWalkVisitsFaninsBeforeRoot(t *testing.T) {
	a, x, y, and1 := buildChain(t)
	res, err := Walk(a, and1)
	require.NoError(t, err)

	require.True(t, res.Visited[x])
	require.True(t, res.Visited[y])
	require.True(t, res.Visited[and1])
	assert.Equal(t, and1, res.Order[len(res.Order)-1], "root finishes last in post-order")
}

func TestWalkRespectsMaxDepth(t *testing.T) {
	a, x, _, and1 := buildChain(t)
	res, err := Walk(a, and1, WithMaxDepth(0))
	require.NoError(t, err)
	assert.False(t, res.Visited[x], "depth-0 walk should not descend into fanins")
}

func TestWalkFilterFaninCounts(t *testing.T) {
	a, x, y, and1 := buildChain(t)
	res, err := Walk(a, and1, WithFilterFanin(func(r dag.Ref) bool { return r != x }))
	require.NoError(t, err)
	assert.False(t, res.Visited[x])
	assert.True(t, res.Visited[y])
	assert.Equal(t, 1, res.SkippedFanins)
}

func TestWalkOnVisitError(t *testing.T) {
	a, _, _, and1 := buildChain(t)
	sentinel := errors.New("boom")
	_, err := Walk(a, and1, WithOnVisit(func(r dag.Ref) error { return sentinel }))
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel)
}

func TestDetectCycleOnAcyclicArena(t *testing.T) {
	a, _, _, _ := buildChain(t)
	found, cyc, err := DetectCycle(a)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, cyc)
}

func TestDetectCycleNilArena(t *testing.T) {
	found, cyc, err := DetectCycle(nil)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, cyc)
}

func TestFullWalkCoversAllPOs(t *testing.T) {
	a := dag.NewArena()
	x := a.AddPI("x")
	y := a.AddPI("y")
	z := a.AddPI("z")
	and1, err := a.AddAnd(dag.E(x), dag.E(y))
	require.NoError(t, err)
	a.AddPO("o1", dag.E(and1))
	a.AddPO("o2", dag.E(z))

	res, err := Walk(a, dag.NullRef, WithFullWalk())
	require.NoError(t, err)
	assert.True(t, res.Visited[and1])
	assert.True(t, res.Visited[z])
	assert.True(t, res.Visited[x])
	assert.True(t, res.Visited[y])
}
