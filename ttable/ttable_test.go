package ttable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHexRoundTrip(t *testing.T) {
	for n := 1; n <= 6; n++ {
		f := Maj(Var(0), Var(1), Var(2)).Eval(n)
		hex := f.ToHex()
		g, err := FromHex(hex, n)
		require.NoError(t, err)
		require.True(t, f.Equal(g), "round trip mismatch at n=%d: %s", n, hex)
	}
}

func TestFromHexMalformed(t *testing.T) {
	_, err := FromHex("zz", 3)
	require.ErrorIs(t, err, ErrMalformedInput)
}

func TestCofactorComposition(t *testing.T) {
	f := Xor(And(Var(0), Var(1)), Var(2)).Eval(3)
	for i := 0; i < 3; i++ {
		c0 := f.Cofactor(i, 0)
		c1 := f.Cofactor(i, 1)
		varI := Var(i).Eval(3)
		recon := varI.And(c1).Or(varI.Not().And(c0))
		require.True(t, f.Equal(recon), "cofactor composition failed for var %d", i)
	}
}

func TestSupportAndMinbase(t *testing.T) {
	// f depends only on x0 and x2, not x1.
	f := And(Var(0), Var(2)).Eval(3)
	require.Equal(t, uint64(0b101), f.Support())

	g, perm := f.Minbase()
	require.Equal(t, 2, g.NumVars())
	require.Equal(t, []int{0, 2}, perm)
}

func TestMajorityExpressionKnownHex(t *testing.T) {
	f := Maj(Var(0), Var(1), Var(2)).Eval(3)
	require.Equal(t, "e8", f.ToHex())
}

func TestSOPSpecInconsistentPolarity(t *testing.T) {
	_, err := FromSOPSpec([]string{"1-- 1", "0-- 0"}, 3)
	require.ErrorIs(t, err, ErrInconsistentPolarity)
}

func TestSOPSpecOnSet(t *testing.T) {
	f, err := FromSOPSpec([]string{"111 1", "110 1", "101 1", "011 1"}, 3)
	require.NoError(t, err)
	require.Equal(t, "e8", f.ToHex())
}

func TestExorlinkPreservesXor(t *testing.T) {
	c1 := NewCube().With(0, 1).With(1, 1)
	c2 := NewCube().With(1, 1).With(2, 1)
	d := c1.Distance(c2)
	require.Equal(t, 2, d)
	pos := c1.Positions(c2)

	for g := 0; g < GroupCount(d); g++ {
		res := Exorlink(c1, c2, d, pos, g)
		require.Len(t, res, d)
		// c1 XOR c2 (as functions, restricted to the 3-variable domain)
		// must equal the XOR of all reshaped cubes.
		lhs := cubeTT(c1, 3).Xor(cubeTT(c2, 3))
		rhs := cubeTT(res[0], 3)
		for _, r := range res[1:] {
			rhs = rhs.Xor(cubeTT(r, 3))
		}
		require.True(t, lhs.Equal(rhs), "group %d broke the exorlink identity", g)
	}
}

// cubeTT evaluates a cube as the truth table of its conjunction of literals.
func cubeTT(c Cube, n int) TT {
	e := Expr{Kind: ExprConst, Val: true}
	first := true
	for i := 0; i < n; i++ {
		lit := c.Lit(i)
		if lit == -1 {
			continue
		}
		v := Var(i)
		if lit == 0 {
			v = Inv(v)
		}
		if first {
			e = v
			first = false
		} else {
			e = And(e, v)
		}
	}
	return e.Eval(n)
}

func TestTCountTable(t *testing.T) {
	require.Equal(t, 0, TCount(0, 5))
	require.Equal(t, 0, TCount(1, 5))
	require.Equal(t, 7, TCount(2, 5))
	require.Equal(t, 22, TCount(3, 5))
	require.Equal(t, 52, TCount(4, 5))
	require.Equal(t, 28, TCount(4, 7))
}

func TestWalshSpectrumBias(t *testing.T) {
	f := Const(false).Eval(2) // constant 0 function
	spec := f.WalshSpectrum()
	require.Equal(t, int64(4), spec[0])
}
