package revsynth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lsynth/lsynth/cut"
	"github.com/lsynth/lsynth/dag"
	"github.com/lsynth/lsynth/xmg"
)

// buildAndThenXor builds f = (x0&x1)^x2: one AND-shaped LUT feeding one
// XOR-shaped LUT, so the pipeline exercises both a compute and an
// uncompute step.
func buildAndThenXor(t *testing.T) *xmg.XMG {
	t.Helper()
	g := xmg.New()
	x0 := g.AddInput("x0")
	x1 := g.AddInput("x1")
	x2 := g.AddInput("x2")

	and1, err := g.And(x0, x1)
	require.NoError(t, err)
	xor1, err := g.Xor(and1, x2)
	require.NoError(t, err)

	g.AddOutput("f", xor1)
	return g
}

func TestSynthesizeRejectsNilArgs(t *testing.T) {
	g := buildAndThenXor(t)
	cm, err := cut.New(g.Arena, cut.WithK(3))
	require.NoError(t, err)
	require.NoError(t, cm.Enumerate())

	_, err = Synthesize(nil, cm)
	assert.ErrorIs(t, err, ErrNilXMG)

	_, err = Synthesize(g, nil)
	assert.ErrorIs(t, err, ErrNilCutManager)
}

func TestSynthesizeMatchesOriginalFunction(t *testing.T) {
	g := buildAndThenXor(t)
	cm, err := cut.New(g.Arena, cut.WithK(3), cut.WithPriority(8))
	require.NoError(t, err)
	require.NoError(t, cm.Enumerate())

	circuit, err := Synthesize(g, cm, WithLUTSize(3))
	require.NoError(t, err)
	require.NotEmpty(t, circuit.Steps)

	outputLine := -1
	for _, step := range circuit.Steps {
		if step.Kind == StepPO {
			outputLine = step.Line
		}
	}
	require.NotEqual(t, -1, outputLine)

	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			for c := 0; c < 2; c++ {
				initial := make([]bool, circuit.NumLines)
				initial[0] = a == 1
				initial[1] = b == 1
				initial[2] = c == 1

				final, err := circuit.Simulate(initial)
				require.NoError(t, err)

				want := (a == 1 && b == 1) != (c == 1)
				assert.Equal(t, want, final[outputLine])
			}
		}
	}
}

func TestSynthesizeUncomputesIntermediateLUT(t *testing.T) {
	g := buildAndThenXor(t)
	cm, err := cut.New(g.Arena, cut.WithK(3), cut.WithPriority(8))
	require.NoError(t, err)
	require.NoError(t, cm.Enumerate())

	circuit, err := Synthesize(g, cm, WithLUTSize(3))
	require.NoError(t, err)

	hasUncompute := false
	for _, step := range circuit.Steps {
		if step.Kind == StepUncompute {
			hasUncompute = true
		}
	}
	assert.True(t, hasUncompute, "the AND intermediate's line should be uncomputed once the XOR LUT consumes it")
}

func TestSynthesizeRespectsAncillaBudget(t *testing.T) {
	g := buildAndThenXor(t)
	cm, err := cut.New(g.Arena, cut.WithK(3), cut.WithPriority(8))
	require.NoError(t, err)
	require.NoError(t, cm.Enumerate())

	_, err = Synthesize(g, cm, WithLUTSize(3), WithMaxAncilla(1))
	require.NoError(t, err)
}

func TestPickCutPrefersLargerFeasibleCut(t *testing.T) {
	g := buildAndThenXor(t)
	cm, err := cut.New(g.Arena, cut.WithK(4), cut.WithPriority(8))
	require.NoError(t, err)
	require.NoError(t, cm.Enumerate())

	var and1 dag.Ref
	for _, r := range g.Arena.Topo() {
		if g.Arena.Kind(r) == dag.KindMaj {
			and1 = r
			break
		}
	}
	cuts, err := cm.CutsFor(and1)
	require.NoError(t, err)

	best, ok := pickCut(cm, and1, cuts, 4)
	require.True(t, ok)
	assert.LessOrEqual(t, best.LeafCount, 4)
}
