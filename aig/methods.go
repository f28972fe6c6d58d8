package aig

import "github.com/lsynth/lsynth/dag"

// AddInput declares a new primary input named name.
func (g *AIG) AddInput(name string) dag.Edge {
	return dag.E(g.Arena.AddPI(name))
}

// AddOutput registers e as a primary output under name.
func (g *AIG) AddOutput(name string, e dag.Edge) {
	g.Arena.AddPO(name, e)
}

// And returns the AND of x and y, strashed against any existing node
// with the same (unordered) fanin pair.
func (g *AIG) And(x, y dag.Edge) (dag.Edge, error) {
	ref, err := g.Arena.AddAnd(x, y)
	if err != nil {
		return dag.Edge{}, err
	}
	return dag.E(ref), nil
}

// Or returns x∨y as ¬(¬x∧¬y), De Morgan's law over the AND-only kernel.
func (g *AIG) Or(x, y dag.Edge) (dag.Edge, error) {
	e, err := g.And(x.Not(), y.Not())
	if err != nil {
		return dag.Edge{}, err
	}
	return e.Not(), nil
}

// Xor returns x⊕y as (x∧¬y)∨(¬x∧y), the two-AND decomposition named in §4
// as the canonical 3-input-XOR building block (S4's end-to-end scenario
// uses exactly this shape).
func (g *AIG) Xor(x, y dag.Edge) (dag.Edge, error) {
	a, err := g.And(x, y.Not())
	if err != nil {
		return dag.Edge{}, err
	}
	b, err := g.And(x.Not(), y)
	if err != nil {
		return dag.Edge{}, err
	}
	return g.Or(a, b)
}

// Mux returns the multiplexer sel?then:els, i.e. (sel∧then)∨(¬sel∧els).
func (g *AIG) Mux(sel, then, els dag.Edge) (dag.Edge, error) {
	a, err := g.And(sel, then)
	if err != nil {
		return dag.Edge{}, err
	}
	b, err := g.And(sel.Not(), els)
	if err != nil {
		return dag.Edge{}, err
	}
	return g.Or(a, b)
}

// RefCount returns the fanout reference count of ref, counting both
// internal consumers and primary-output references per §3's "each node
// has a reference count for reachability/coi queries".
func (g *AIG) RefCount(ref dag.Ref) int {
	return g.Arena.FanoutCount(ref)
}

// Simulate evaluates e under the given total assignment of primary
// inputs (keyed by input Ref, as returned from AddInput's dag.Edge.Node).
// Returns ErrUnknownInput if some reachable PI has no binding.
func (g *AIG) Simulate(e dag.Edge, assign map[dag.Ref]bool) (bool, error) {
	memo := make(map[dag.Ref]bool, g.Arena.NumNodes())
	v, err := g.evalRef(e.Node, assign, memo)
	if err != nil {
		return false, err
	}
	return v != e.Complem, nil
}

func (g *AIG) evalRef(r dag.Ref, assign map[dag.Ref]bool, memo map[dag.Ref]bool) (bool, error) {
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
	case dag.KindAnd:
		fanins := g.Arena.Fanins(r)
		left, err := g.evalRef(fanins[0].Node, assign, memo)
		if err != nil {
			return false, err
		}
		right, err := g.evalRef(fanins[1].Node, assign, memo)
		if err != nil {
			return false, err
		}
		v = (left != fanins[0].Complem) && (right != fanins[1].Complem)
	default:
		return false, ErrNotAnAIGNode
	}
	memo[r] = v
	return v, nil
}

// CountAndNodes returns the number of AND nodes in the graph (excluding
// the constant and primary inputs).
func (g *AIG) CountAndNodes() int {
	n := 0
	for _, r := range g.Arena.Topo() {
		if g.Arena.Kind(r) == dag.KindAnd {
			n++
		}
	}
	return n
}
