package rewrite

import (
	"github.com/lsynth/lsynth/dag"
	"github.com/lsynth/lsynth/xmg"
)

// spliceInto rebuilds tmpl's gates inside dst, binding tmpl's primary
// inputs (in declaration order) to inputs, and returns the edge in dst
// corresponding to tmpl's single primary output.
func spliceInto(dst *xmg.XMG, tmpl *xmg.XMG, inputs []dag.Edge) (dag.Edge, error) {
	tmplInputs := tmpl.Inputs()
	if len(tmplInputs) != len(inputs) {
		return dag.Edge{}, ErrLeafMismatch
	}

	built := make(map[dag.Ref]dag.Edge, tmpl.Arena.NumNodes())
	for i, pi := range tmplInputs {
		built[pi] = inputs[i]
	}

	for _, r := range tmpl.Arena.Topo() {
		if _, ok := built[r]; ok {
			continue
		}
		switch tmpl.Arena.Kind(r) {
		case dag.KindConst0:
			built[r] = dst.Zero()
		case dag.KindXor:
			fanins := tmpl.Arena.Fanins(r)
			e, err := dst.Xor(resolveEdge(built, fanins[0]), resolveEdge(built, fanins[1]))
			if err != nil {
				return dag.Edge{}, err
			}
			built[r] = e
		case dag.KindMaj:
			fanins := tmpl.Arena.Fanins(r)
			e, err := dst.Maj(resolveEdge(built, fanins[0]), resolveEdge(built, fanins[1]), resolveEdge(built, fanins[2]))
			if err != nil {
				return dag.Edge{}, err
			}
			built[r] = e
		default:
			return dag.Edge{}, xmg.ErrNotAnXMGNode
		}
	}

	outputs := tmpl.Outputs()
	return resolveEdge(built, outputs[0]), nil
}

func resolveEdge(built map[dag.Ref]dag.Edge, e dag.Edge) dag.Edge {
	b := built[e.Node]
	if e.Complem {
		return b.Not()
	}
	return b
}
