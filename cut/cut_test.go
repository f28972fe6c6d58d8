package cut

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lsynth/lsynth/dag"
)

// buildAndTree builds f = (a&b)&(c&d), four PIs feeding two AND gates
// feeding one root AND gate.
func buildAndTree(t *testing.T) (a *dag.Arena, root dag.Ref) {
	t.Helper()
	a = dag.NewArena()
	x0 := a.AddPI("x0")
	x1 := a.AddPI("x1")
	x2 := a.AddPI("x2")
	x3 := a.AddPI("x3")

	and1, err := a.AddAnd(dag.E(x0), dag.E(x1))
	require.NoError(t, err)
	and2, err := a.AddAnd(dag.E(x2), dag.E(x3))
	require.NoError(t, err)
	and3, err := a.AddAnd(dag.E(and1), dag.E(and2))
	require.NoError(t, err)

	a.AddPO("f", dag.E(and3))
	return a, and3
}

func TestEnumerateRejectsNilArena(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrNilArena)
}

func TestEnumerateRejectsBadOptions(t *testing.T) {
	a, _ := buildAndTree(t)
	_, err := New(a, WithK(0))
	assert.ErrorIs(t, err, ErrBadK)

	_, err = New(a, WithPriority(0))
	assert.ErrorIs(t, err, ErrBadPriority)
}

func TestEnumeratePIsGetOnlyTrivialCut(t *testing.T) {
	a, _ := buildAndTree(t)
	m, err := New(a, WithK(4))
	require.NoError(t, err)
	require.NoError(t, m.Enumerate())

	for _, pi := range a.PIs() {
		cuts, err := m.CutsFor(pi)
		require.NoError(t, err)
		require.Len(t, cuts, 1)
		assert.Equal(t, []dag.Ref{pi}, m.Leaves(cuts[0]))
	}
}

func TestEnumerateRootHasWholeTreeCutWhenKAllows(t *testing.T) {
	a, root := buildAndTree(t)
	m, err := New(a, WithK(4), WithPriority(8))
	require.NoError(t, err)
	require.NoError(t, m.Enumerate())

	cuts, err := m.CutsFor(root)
	require.NoError(t, err)

	found4Leaf := false
	for _, c := range cuts {
		if c.LeafCount == 4 {
			found4Leaf = true
			assert.Len(t, m.Leaves(c), 4)
		}
	}
	assert.True(t, found4Leaf, "expected a cut covering all four primary inputs")
}

func TestEnumerateRespectsKBound(t *testing.T) {
	a, root := buildAndTree(t)
	m, err := New(a, WithK(2), WithPriority(8))
	require.NoError(t, err)
	require.NoError(t, m.Enumerate())

	cuts, err := m.CutsFor(root)
	require.NoError(t, err)
	for _, c := range cuts {
		assert.LessOrEqual(t, c.LeafCount, 2)
	}
}

func TestEnumeratePriorityBound(t *testing.T) {
	a, root := buildAndTree(t)
	m, err := New(a, WithK(4), WithPriority(1))
	require.NoError(t, err)
	require.NoError(t, m.Enumerate())

	cuts, err := m.CutsFor(root)
	require.NoError(t, err)
	// the trivial cut is always appended even past the priority cap
	assert.LessOrEqual(t, len(cuts), 2)
}

func TestConeReconstructsInteriorNodes(t *testing.T) {
	a, root := buildAndTree(t)
	m, err := New(a, WithK(4))
	require.NoError(t, err)
	require.NoError(t, m.Enumerate())

	cuts, err := m.CutsFor(root)
	require.NoError(t, err)

	var whole Cut
	for _, c := range cuts {
		if c.LeafCount == 4 {
			whole = c
		}
	}
	require.NotZero(t, whole.LeafCount)

	cone, err := m.Cone(whole)
	require.NoError(t, err)
	assert.Contains(t, cone, root)
}

// buildXorChain builds f = x0^x1^x2^x3, a chain of three XOR gates each
// with a single consumer.
func buildXorChain(t *testing.T) (a *dag.Arena, root dag.Ref) {
	t.Helper()
	a = dag.NewArena()
	x0 := a.AddPI("x0")
	x1 := a.AddPI("x1")
	x2 := a.AddPI("x2")
	x3 := a.AddPI("x3")

	xor1, err := a.AddXor(dag.E(x0), dag.E(x1))
	require.NoError(t, err)
	xor2, err := a.AddXor(dag.E(xor1), dag.E(x2))
	require.NoError(t, err)
	xor3, err := a.AddXor(dag.E(xor2), dag.E(x3))
	require.NoError(t, err)

	a.AddPO("f", dag.E(xor3))
	return a, xor3
}

func TestEnumerateCollapsesXorChain(t *testing.T) {
	a, root := buildXorChain(t)
	m, err := New(a, WithK(4), WithIgnoreXorChains(true))
	require.NoError(t, err)
	require.NoError(t, m.Enumerate())

	cuts, err := m.CutsFor(root)
	require.NoError(t, err)

	found4Leaf := false
	for _, c := range cuts {
		if c.LeafCount == 4 {
			found4Leaf = true
		}
	}
	assert.True(t, found4Leaf, "collapsed XOR chain should expose all four leaves as one cut")

	// the chain's primary inputs still hold cuts of their own
	for _, pi := range a.PIs() {
		_, err := m.CutsFor(pi)
		require.NoError(t, err)
	}
}

func TestEnumerateWithoutChainCollapsingStillBoundsByK(t *testing.T) {
	a, root := buildXorChain(t)
	m, err := New(a, WithK(2))
	require.NoError(t, err)
	require.NoError(t, m.Enumerate())

	cuts, err := m.CutsFor(root)
	require.NoError(t, err)
	for _, c := range cuts {
		assert.LessOrEqual(t, c.LeafCount, 2)
	}
}
