package tbs

import (
	"github.com/irifrance/gini/z"

	"github.com/lsynth/lsynth/aig"
	"github.com/lsynth/lsynth/dag"
	"github.com/lsynth/lsynth/satenc"
)

// encodeAIG Tseitin-encodes g's AND-inverter structure into f, binding
// the i-th primary input to xLits[i], and returns one literal per
// primary output in declaration order — the y_i <=> f_i(x) relation
// §4.H asserts once at initialization.
func encodeAIG(f *satenc.Formula, g *aig.AIG, xLits []z.Lit) []z.Lit {
	memo := make(map[dag.Ref]z.Lit, g.Arena.NumNodes())
	pis := g.Arena.PIs()
	for i, pi := range pis {
		memo[pi] = xLits[i]
	}
	memo[g.Arena.Const0()] = f.False()

	var lit func(dag.Ref) z.Lit
	lit = func(r dag.Ref) z.Lit {
		if l, ok := memo[r]; ok {
			return l
		}
		fanins := g.Arena.Fanins(r)
		a := edgeLit(lit(fanins[0].Node), fanins[0].Complem)
		b := edgeLit(lit(fanins[1].Node), fanins[1].Complem)
		l := f.And2(a, b)
		memo[r] = l
		return l
	}

	outs := g.Arena.POs()
	y := make([]z.Lit, len(outs))
	for i, po := range outs {
		y[i] = edgeLit(lit(po.Node), po.Complem)
	}
	return y
}

func edgeLit(l z.Lit, complem bool) z.Lit {
	if complem {
		return l.Not()
	}
	return l
}
