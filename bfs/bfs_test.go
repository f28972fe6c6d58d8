package bfs

import (
	"errors"
	"testing"

	"github.com/lsynth/lsynth/dag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDiamond(t *testing.T) (a *dag.Arena, x, y, and1, and2 dag.Ref) {
	t.Helper()
	a = dag.NewArena()
	x = a.AddPI("x")
	y = a.AddPI("y")
	var err error
	and1, err = a.AddAnd(dag.E(x), dag.E(y))
	require.NoError(t, err)
	and2, err = a.AddAnd(dag.E(and1), dag.EC(x))
	require.NoError(t, err)
	return a, x, y, and1, and2
}

func TestRunNilArena(t *testing.T) {
	_, err := Run(nil, dag.Ref(1))
	assert.ErrorIs(t, err, ErrArenaNil)
}

func TestRunInvalidStart(t *testing.T) {
	a := dag.NewArena()
	_, err := Run(a, dag.Ref(99))
	assert.ErrorIs(t, err, ErrStartRefInvalid)
}

func TestRunLevelOrder(t *testing.T) {
	a, x, y, and1, and2 := buildDiamond(t)
	res, err := Run(a, and2)
	require.NoError(t, err)

	assert.Equal(t, 0, res.Depth[and2])
	assert.Equal(t, 1, res.Depth[and1])
	assert.Equal(t, 1, res.Depth[x], "and2 also fans into x directly at depth 1")
	assert.Equal(t, 2, res.Depth[y])
}

func TestRunMaxDepth(t *testing.T) {
	a, x, y, and1, and2 := buildDiamond(t)
	res, err := Run(a, and2, WithMaxDepth(1))
	require.NoError(t, err)
	assert.Contains(t, res.Depth, x, "x is reachable directly at depth 1")
	assert.Contains(t, res.Depth, and1, "and1 is reachable directly at depth 1")
	assert.NotContains(t, res.Depth, y, "y is only reachable via and1 at depth 2, beyond the limit")
}

func TestWithOptionViolation(t *testing.T) {
	a, _, _, _, and2 := buildDiamond(t)
	_, err := Run(a, and2, WithMaxDepth(-1))
	assert.ErrorIs(t, err, ErrOptionViolation)
}

func TestFilterFaninSkips(t *testing.T) {
	a, x, y, _, and2 := buildDiamond(t)
	res, err := Run(a, and2, WithFilterFanin(func(curr, fanin dag.Ref) bool { return fanin != y }))
	require.NoError(t, err)
	assert.Contains(t, res.Depth, x)
	assert.NotContains(t, res.Depth, y)
}

func TestOnVisitAbort(t *testing.T) {
	a, _, _, _, and2 := buildDiamond(t)
	sentinel := errors.New("boom")
	_, err := Run(a, and2, WithOnVisit(func(r dag.Ref, depth int) error { return sentinel }))
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel)
}

func TestPathTo(t *testing.T) {
	a, x, _, _, and2 := buildDiamond(t)
	res, err := Run(a, and2)
	require.NoError(t, err)
	path, err := res.PathTo(x)
	require.NoError(t, err)
	assert.Equal(t, and2, path[0])
	assert.Equal(t, x, path[len(path)-1])
}
