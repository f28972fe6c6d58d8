package rewrite

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lsynth/lsynth/dag"
	"github.com/lsynth/lsynth/xmg"
)

// allAssignments returns every total boolean assignment of refs, for
// brute-force function-equivalence checking of small graphs.
func allAssignments(refs []dag.Ref) []map[dag.Ref]bool {
	n := len(refs)
	out := make([]map[dag.Ref]bool, 0, 1<<uint(n))
	for i := 0; i < 1<<uint(n); i++ {
		a := make(map[dag.Ref]bool, n)
		for j, r := range refs {
			a[r] = (i>>uint(j))&1 == 1
		}
		out = append(out, a)
	}
	return out
}

func TestRewriteCollapsesRedundantXorChainToItsMinimalForm(t *testing.T) {
	// y = x0 ^ x1 ^ x1, which always equals x0: a cone of two XOR gates
	// computing a function exact.Synthesize can realize with one.
	g := xmg.New()
	x0 := g.AddInput("x0")
	x1 := g.AddInput("x1")
	g1, err := g.Xor(x0, x1)
	require.NoError(t, err)
	g2, err := g.Xor(g1, x1)
	require.NoError(t, err)
	g.AddOutput("y", g2)

	before := g

	out, stats, err := Rewrite(g, NewCache())
	require.NoError(t, err)
	require.Equal(t, 1, stats.CutsRewritten)
	require.Greater(t, stats.GatesSaved, 0)
	require.Less(t, stats.NodesAfter, stats.NodesBefore)

	for _, assign := range allAssignments(before.Inputs()) {
		want, err := before.Simulate(before.Outputs()[0], assign)
		require.NoError(t, err)

		outAssign := make(map[dag.Ref]bool, len(out.Inputs()))
		for i, r := range out.Inputs() {
			outAssign[r] = assign[before.Inputs()[i]]
		}
		got, err := out.Simulate(out.Outputs()[0], outAssign)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestRewriteLeavesAlreadyMinimalGraphUnchanged(t *testing.T) {
	// A single MAJ gate is already as small as any 3-input cone can be;
	// no cut should yield a strictly smaller template.
	g := xmg.New()
	x0 := g.AddInput("x0")
	x1 := g.AddInput("x1")
	x2 := g.AddInput("x2")
	m, err := g.Maj(x0, x1, x2)
	require.NoError(t, err)
	g.AddOutput("y", m)

	out, stats, err := Rewrite(g, NewCache())
	require.NoError(t, err)
	require.Equal(t, 0, stats.CutsRewritten)
	require.Equal(t, stats.NodesBefore, stats.NodesAfter)

	for _, assign := range allAssignments(g.Inputs()) {
		want, err := g.Simulate(g.Outputs()[0], assign)
		require.NoError(t, err)

		outAssign := make(map[dag.Ref]bool, len(out.Inputs()))
		for i, r := range out.Inputs() {
			outAssign[r] = assign[g.Inputs()[i]]
		}
		got, err := out.Simulate(out.Outputs()[0], outAssign)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestRewriteRejectsNilGraph(t *testing.T) {
	_, _, err := Rewrite(nil, NewCache())
	require.ErrorIs(t, err, ErrNilGraph)
}
