package xmg

import (
	"github.com/lsynth/lsynth/dag"
	"github.com/lsynth/lsynth/ttable"
)

// AddInput declares a new primary input named name.
func (g *XMG) AddInput(name string) dag.Edge {
	return dag.E(g.Arena.AddPI(name))
}

// AddOutput registers e as a primary output under name.
func (g *XMG) AddOutput(name string, e dag.Edge) {
	g.Arena.AddPO(name, e)
}

// Maj returns the majority-of-three of x, y, z.
func (g *XMG) Maj(x, y, z dag.Edge) (dag.Edge, error) {
	ref, err := g.Arena.AddMaj(x, y, z)
	if err != nil {
		return dag.Edge{}, err
	}
	return dag.E(ref), nil
}

// Xor returns the XOR of x and y.
func (g *XMG) Xor(x, y dag.Edge) (dag.Edge, error) {
	ref, err := g.Arena.AddXor(x, y)
	if err != nil {
		return dag.Edge{}, err
	}
	return dag.E(ref), nil
}

// And returns x∧y via the identity MAJ(0,a,b)=a∧b.
func (g *XMG) And(x, y dag.Edge) (dag.Edge, error) {
	return g.Maj(g.Zero(), x, y)
}

// Or returns x∨y via the identity MAJ(1,a,b)=a∨b.
func (g *XMG) Or(x, y dag.Edge) (dag.Edge, error) {
	return g.Maj(g.One(), x, y)
}

// RefCount returns the fanout reference count of ref.
func (g *XMG) RefCount(ref dag.Ref) int {
	return g.Arena.FanoutCount(ref)
}

// Simulate evaluates e under the given total assignment of primary
// inputs (keyed by input Ref, as returned from AddInput's dag.Edge.Node).
// Returns ErrUnknownInput if some reachable PI has no binding.
func (g *XMG) Simulate(e dag.Edge, assign map[dag.Ref]bool) (bool, error) {
	memo := make(map[dag.Ref]bool, g.Arena.NumNodes())
	v, err := g.evalRef(e.Node, assign, memo)
	if err != nil {
		return false, err
	}
	return v != e.Complem, nil
}

func (g *XMG) evalRef(r dag.Ref, assign map[dag.Ref]bool, memo map[dag.Ref]bool) (bool, error) {
	if v, ok := memo[r]; ok {
		return v, nil
	}
	var v bool
	switch g.Arena.Kind(r) {
	case dag.KindConst0:
		v = false
	case dag.KindPI:
		bound, ok := assign[r]
		if !ok {
			return false, ErrUnknownInput
		}
		v = bound
	case dag.KindXor:
		fanins := g.Arena.Fanins(r)
		left, err := g.evalRef(fanins[0].Node, assign, memo)
		if err != nil {
			return false, err
		}
		right, err := g.evalRef(fanins[1].Node, assign, memo)
		if err != nil {
			return false, err
		}
		v = (left != fanins[0].Complem) != (right != fanins[1].Complem)
	case dag.KindMaj:
		fanins := g.Arena.Fanins(r)
		vals := make([]bool, 3)
		for i, e := range fanins {
			x, err := g.evalRef(e.Node, assign, memo)
			if err != nil {
				return false, err
			}
			vals[i] = x != e.Complem
		}
		trueCount := 0
		for _, x := range vals {
			if x {
				trueCount++
			}
		}
		v = trueCount >= 2
	default:
		return false, ErrNotAnXMGNode
	}
	memo[r] = v
	return v, nil
}

// ToTruthTable evaluates e over every assignment of the given leaves (in
// the order supplied — leaves[j] maps to variable j of the result) and
// returns the resulting dense truth table. This is the join point
// functional hashing (§4.D) uses between a cut's cone and the NPN
// canonicalization machinery in ttable.
func (g *XMG) ToTruthTable(e dag.Edge, leaves []dag.Ref) (ttable.TT, error) {
	n := len(leaves)
	if n > 20 {
		return ttable.TT{}, ErrTooManyLeaves
	}
	tt := ttable.New(n)
	rows := uint(1) << uint(n)
	for i := uint(0); i < rows; i++ {
		// Seeding the memo with the leaf values stops evaluation at every
		// leaf, including leaves that are internal nodes of a cut.
		memo := make(map[dag.Ref]bool, n)
		for j := 0; j < n; j++ {
			memo[leaves[j]] = (i>>uint(j))&1 == 1
		}
		v, err := g.evalRef(e.Node, memo, memo)
		if err != nil {
			return ttable.TT{}, err
		}
		tt = tt.SetBit(i, v != e.Complem)
	}
	return tt, nil
}

// CountNodesByKind returns the number of XOR and MAJ nodes in the graph.
func (g *XMG) CountNodesByKind() (xorCount, majCount int) {
	for _, r := range g.Arena.Topo() {
		switch g.Arena.Kind(r) {
		case dag.KindXor:
			xorCount++
		case dag.KindMaj:
			majCount++
		}
	}
	return xorCount, majCount
}
