package satenc

import (
	"testing"

	"github.com/irifrance/gini/z"
	"github.com/stretchr/testify/require"
)

func TestSinzExactlyOneOfThree(t *testing.T) {
	f := NewFormula()
	x1, x2, x3 := f.NewVar(), f.NewVar(), f.NewVar()
	require.NoError(t, f.BuildSinzExactly([]z.Lit{x1, x2, x3}, 1))

	// Forcing two of the three true must be UNSAT.
	f.Assume(x1, x2)
	require.Equal(t, Unsat, f.Solve())
}

func TestSinzExactlyOneOfThreeAcceptsSingleton(t *testing.T) {
	f := NewFormula()
	x1, x2, x3 := f.NewVar(), f.NewVar(), f.NewVar()
	require.NoError(t, f.BuildSinzExactly([]z.Lit{x1, x2, x3}, 1))

	f.Assume(x1, x2.Not(), x3.Not())
	require.Equal(t, Sat, f.Solve())
}

func TestSinzAtMostZeroForcesAllFalse(t *testing.T) {
	f := NewFormula()
	x1, x2 := f.NewVar(), f.NewVar()
	require.NoError(t, f.BuildSinzAtMost([]z.Lit{x1, x2}, 0))

	f.Assume(x1)
	require.Equal(t, Unsat, f.Solve())
}

func TestSinzAtMostVacuousWhenKGreaterEqualN(t *testing.T) {
	f := NewFormula()
	x1, x2 := f.NewVar(), f.NewVar()
	require.NoError(t, f.BuildSinzAtMost([]z.Lit{x1, x2}, 2))

	f.Assume(x1, x2)
	require.Equal(t, Sat, f.Solve())
}

func TestPairwiseAtMostOneOfThree(t *testing.T) {
	f := NewFormula()
	x1, x2, x3 := f.NewVar(), f.NewVar(), f.NewVar()
	require.NoError(t, f.BuildPairwiseAtMost([]z.Lit{x1, x2, x3}, 1))

	f.Assume(x1, x2)
	require.Equal(t, Unsat, f.Solve())
}

func TestBitVectorRoundTrip(t *testing.T) {
	f := NewFormula()
	bv, err := f.NewBitVector(4)
	require.NoError(t, err)
	f.AssertEqualsConstant(bv, 9) // 1001

	require.Equal(t, Sat, f.Solve())
	require.Equal(t, uint64(9), f.BitVectorValue(bv))
}

func TestAssertLessThanConstantExcludesHighValues(t *testing.T) {
	f := NewFormula()
	bv, err := f.NewBitVector(3)
	require.NoError(t, err)
	f.AssertLessThanConstant(bv, 5) // forbids 5,6,7
	f.AssertEqualsConstant(bv, 6)

	require.Equal(t, Unsat, f.Solve())
}

func TestNewBitVectorRejectsNonPositiveWidth(t *testing.T) {
	f := NewFormula()
	_, err := f.NewBitVector(0)
	require.ErrorIs(t, err, ErrNegativeWidth)
}

func TestLessThanOrdersBitVectors(t *testing.T) {
	f := NewFormula()
	a, err := f.NewBitVector(3)
	require.NoError(t, err)
	b, err := f.NewBitVector(3)
	require.NoError(t, err)
	lt := f.LessThan(a, b)
	f.AddClause(lt)
	f.AssertEqualsConstant(a, 5)
	f.AssertEqualsConstant(b, 3)

	require.Equal(t, Unsat, f.Solve())
}

func TestLessThanAllowsOrderedValues(t *testing.T) {
	f := NewFormula()
	a, err := f.NewBitVector(3)
	require.NoError(t, err)
	b, err := f.NewBitVector(3)
	require.NoError(t, err)
	lt := f.LessThan(a, b)
	f.AddClause(lt)
	f.AssertEqualsConstant(a, 2)
	f.AssertEqualsConstant(b, 5)

	require.Equal(t, Sat, f.Solve())
}
