package ttable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeRejectsTooManyVars(t *testing.T) {
	f := New(7)
	_, _, err := Canonicalize(f)
	assert.ErrorIs(t, err, ErrTooManyVars)
}

func TestCanonicalizeIsAFixedPoint(t *testing.T) {
	f := And(Var(0), Inv(Var(1))).Eval(2)
	canon, _, err := Canonicalize(f)
	require.NoError(t, err)
	recanon, _, err := Canonicalize(canon)
	require.NoError(t, err)
	assert.True(t, canon.Equal(recanon))
}

func TestCanonicalizeUnifiesPermutedVariables(t *testing.T) {
	f := And(Var(0), Inv(Var(1))).Eval(3)
	g := And(Var(1), Inv(Var(0))).Eval(3) // f with variables 0 and 1 swapped

	cf, _, err := Canonicalize(f)
	require.NoError(t, err)
	cg, _, err := Canonicalize(g)
	require.NoError(t, err)
	assert.True(t, cf.Equal(cg))
}

func TestCanonicalizeUnifiesAndOrViaDeMorgan(t *testing.T) {
	and := And(Var(0), Var(1)).Eval(2)
	or := Or(Var(0), Var(1)).Eval(2) // ¬(¬a ∧ ¬b): input-negate-both + output-negate of AND

	cAnd, _, err := Canonicalize(and)
	require.NoError(t, err)
	cOr, _, err := Canonicalize(or)
	require.NoError(t, err)
	assert.True(t, cAnd.Equal(cOr))
}

func TestCanonicalizeTransformReconstructsOriginal(t *testing.T) {
	f := Maj(Var(0), Var(1), Inv(Var(2))).Eval(3)
	canon, tr, err := Canonicalize(f)
	require.NoError(t, err)

	// Rebuild f from canon and the transform: f(x) = OutputNeg XOR
	// canon(z) where z_k = x_{Perm[k]} XOR (InputNeg bit k).
	for row := uint(0); row < f.Size(); row++ {
		var z uint
		for k, p := range tr.Perm {
			bit := (row >> uint(p)) & 1
			if tr.InputNeg&(uint64(1)<<uint(k)) != 0 {
				bit ^= 1
			}
			z |= bit << uint(k)
		}
		want := canon.Bit(z)
		if tr.OutputNeg {
			want = !want
		}
		assert.Equal(t, f.Bit(row), want, "row %d", row)
	}
}
