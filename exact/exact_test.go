package exact

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lsynth/lsynth/dag"
	"github.com/lsynth/lsynth/ttable"
)

func popcount3(i uint) int {
	n := 0
	for j := 0; j < 3; j++ {
		if (i>>uint(j))&1 == 1 {
			n++
		}
	}
	return n
}

func majorityTT() ttable.TT {
	tt := ttable.New(3)
	for i := uint(0); i < 8; i++ {
		tt = tt.SetBit(i, popcount3(i) >= 2)
	}
	return tt
}

func parityTT() ttable.TT {
	tt := ttable.New(3)
	for i := uint(0); i < 8; i++ {
		tt = tt.SetBit(i, popcount3(i)%2 == 1)
	}
	return tt
}

func TestSynthesizeMajorityMatchesS1(t *testing.T) {
	g, err := Synthesize(majorityTT(), 3, WithMaxGates(3))
	require.NoError(t, err)

	xorCount, majCount := g.CountNodesByKind()
	require.Equal(t, 0, xorCount)
	require.Equal(t, 1, majCount)

	leaves := make([]dag.Ref, len(g.Inputs()))
	for i, r := range g.Inputs() {
		leaves[i] = r
	}
	tt, err := g.ToTruthTable(g.Outputs()[0], leaves)
	require.NoError(t, err)
	require.True(t, tt.Equal(majorityTT()))
}

func TestSynthesizeParityMatchesS2(t *testing.T) {
	g, err := Synthesize(parityTT(), 3, WithMaxGates(3))
	require.NoError(t, err)

	xorCount, majCount := g.CountNodesByKind()
	require.Equal(t, 2, xorCount)
	require.Equal(t, 0, majCount)

	leaves := make([]dag.Ref, len(g.Inputs()))
	for i, r := range g.Inputs() {
		leaves[i] = r
	}
	tt, err := g.ToTruthTable(g.Outputs()[0], leaves)
	require.NoError(t, err)
	require.True(t, tt.Equal(parityTT()))
}

func TestSynthesizeRejectsWidthMismatch(t *testing.T) {
	_, err := Synthesize(majorityTT(), 4)
	require.ErrorIs(t, err, ErrTruthTableWidth)
}

func TestSynthesizeBudgetExhaustedWhenTooFewGatesAllowed(t *testing.T) {
	_, err := Synthesize(parityTT(), 3, WithStart(1), WithMaxGates(1))
	require.ErrorIs(t, err, ErrBudgetExhausted)
}

func TestSynthesizeAllFindsAtLeastOneWiring(t *testing.T) {
	results, err := SynthesizeAll(majorityTT(), 3, WithMaxGates(3))
	require.NoError(t, err)
	require.NotEmpty(t, results)
}
