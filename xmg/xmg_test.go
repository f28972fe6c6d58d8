package xmg

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lsynth/lsynth/dag"
)

func TestMajTruthTableMatchesS1(t *testing.T) {
	// S1: 3-variable majority MAJ(x0,x1,x2) — row i is true iff at least
	// two of i's three bits are set (TT 0xE8 in ToTruthTable's row order).
	g := New()
	x0 := g.AddInput("x0")
	x1 := g.AddInput("x1")
	x2 := g.AddInput("x2")
	maj, err := g.Maj(x0, x1, x2)
	require.NoError(t, err)

	tt, err := g.ToTruthTable(maj, []dag.Ref{x0.Node, x1.Node, x2.Node})
	require.NoError(t, err)
	for i := uint(0); i < 8; i++ {
		bits := 0
		for j := 0; j < 3; j++ {
			if (i>>uint(j))&1 == 1 {
				bits++
			}
		}
		require.Equal(t, bits >= 2, tt.Bit(i), "row %d", i)
	}
}

func TestXorOfXorMatchesS2(t *testing.T) {
	// S2: XOR(x0, XOR(x1,x2)) — a 2-gate XMG realizing TT 0x96.
	g := New()
	x0 := g.AddInput("x0")
	x1 := g.AddInput("x1")
	x2 := g.AddInput("x2")
	inner, err := g.Xor(x1, x2)
	require.NoError(t, err)
	outer, err := g.Xor(x0, inner)
	require.NoError(t, err)

	tt, err := g.ToTruthTable(outer, []dag.Ref{x0.Node, x1.Node, x2.Node})
	require.NoError(t, err)
	for i := uint(0); i < 8; i++ {
		parity := 0
		for j := 0; j < 3; j++ {
			parity ^= int((i >> uint(j)) & 1)
		}
		require.Equal(t, parity == 1, tt.Bit(i), "row %d", i)
	}
}

func TestAndOrIdentities(t *testing.T) {
	g := New()
	a := g.AddInput("a")
	b := g.AddInput("b")
	and, err := g.And(a, b)
	require.NoError(t, err)
	or, err := g.Or(a, b)
	require.NoError(t, err)

	for _, av := range []bool{false, true} {
		for _, bv := range []bool{false, true} {
			assign := map[dag.Ref]bool{a.Node: av, b.Node: bv}
			gotAnd, err := g.Simulate(and, assign)
			require.NoError(t, err)
			require.Equal(t, av && bv, gotAnd)
			gotOr, err := g.Simulate(or, assign)
			require.NoError(t, err)
			require.Equal(t, av || bv, gotOr)
		}
	}
}

func TestSimulateMissingInputErrors(t *testing.T) {
	g := New()
	a := g.AddInput("a")
	b := g.AddInput("b")
	x, err := g.Xor(a, b)
	require.NoError(t, err)
	_, err = g.Simulate(x, map[dag.Ref]bool{a.Node: true})
	require.ErrorIs(t, err, ErrUnknownInput)
}

func TestCountNodesByKind(t *testing.T) {
	g := New()
	a := g.AddInput("a")
	b := g.AddInput("b")
	c := g.AddInput("c")
	_, err := g.Xor(a, b)
	require.NoError(t, err)
	_, err = g.Maj(a, b, c)
	require.NoError(t, err)
	xorCount, majCount := g.CountNodesByKind()
	require.Equal(t, 1, xorCount)
	require.Equal(t, 1, majCount)
}

func TestRefCount(t *testing.T) {
	g := New()
	a := g.AddInput("a")
	b := g.AddInput("b")
	c := g.AddInput("c")
	x, err := g.Xor(a, b)
	require.NoError(t, err)
	m, err := g.Maj(x, c, a)
	require.NoError(t, err)
	g.AddOutput("o", m)
	require.Equal(t, 1, g.RefCount(x.Node))
	require.Equal(t, 1, g.RefCount(m.Node))
}
