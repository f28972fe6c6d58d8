package tbs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lsynth/lsynth/aig"
)

// cnotAIG builds f(a,b) = (a, a xor b), a classic reversible CNOT.
func cnotAIG(t *testing.T) *aig.AIG {
	t.Helper()
	g := aig.New()
	a := g.AddInput("a")
	b := g.AddInput("b")
	xor, err := g.Xor(a, b)
	require.NoError(t, err)
	g.AddOutput("a", a)
	g.AddOutput("a_xor_b", xor)
	return g
}

func TestSynthesizeRejectsNilAIG(t *testing.T) {
	_, err := Synthesize(nil)
	assert.ErrorIs(t, err, ErrNilAIG)
}

func TestSynthesizeRejectsWidthMismatch(t *testing.T) {
	g := aig.New()
	a := g.AddInput("a")
	g.AddInput("b")
	g.AddOutput("a", a)
	_, err := Synthesize(g)
	assert.ErrorIs(t, err, ErrWidthMismatch)
}

func TestSynthesizeMatchesCNOT(t *testing.T) {
	g := cnotAIG(t)
	c, err := Synthesize(g)
	require.NoError(t, err)
	require.Equal(t, 2, c.NumLines)

	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			initial := []bool{a == 1, b == 1}
			final, err := c.Simulate(initial)
			require.NoError(t, err)
			assert.Equal(t, a == 1, final[0])
			assert.Equal(t, (a == 1) != (b == 1), final[1])
		}
	}
}

func TestSynthesizeWithPairwiseSorterMatchesCNOT(t *testing.T) {
	g := cnotAIG(t)
	c, err := Synthesize(g, WithCardinality(PairwiseSorter))
	require.NoError(t, err)

	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			initial := []bool{a == 1, b == 1}
			final, err := c.Simulate(initial)
			require.NoError(t, err)
			assert.Equal(t, a == 1, final[0])
			assert.Equal(t, (a == 1) != (b == 1), final[1])
		}
	}
}

func TestSynthesizeIdentity(t *testing.T) {
	g := aig.New()
	a := g.AddInput("a")
	b := g.AddInput("b")
	g.AddOutput("a", a)
	g.AddOutput("b", b)

	c, err := Synthesize(g)
	require.NoError(t, err)

	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			initial := []bool{a == 1, b == 1}
			final, err := c.Simulate(initial)
			require.NoError(t, err)
			assert.Equal(t, a == 1, final[0])
			assert.Equal(t, b == 1, final[1])
		}
	}
}
