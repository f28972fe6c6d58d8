package rewrite

import (
	"github.com/lsynth/lsynth/cut"
	"github.com/lsynth/lsynth/dag"
	"github.com/lsynth/lsynth/ttable"
	"github.com/lsynth/lsynth/xmg"
)

// decision records a committed rewrite: node c.Root's cone is replaced by
// template, whose inputs are fed the cut's leaves permuted and negated
// per transform, and whose output is negated per transform.OutputNeg.
type decision struct {
	c         cut.Cut
	transform ttable.NPNTransform
	template  *xmg.XMG
}

// Rewrite performs one pass of cut-cost-guided functional hashing (§4.D)
// over g: every node's k-feasible cuts (cut.Manager) are NPN-canonicalized
// (ttable.Canonicalize) and matched against cache's minimum-gate template
// for that class. A cut is committed when its template is strictly
// smaller than the cone it would replace and every interior cone node
// (excluding the root and the cut's own leaves) has no fanout outside the
// cone — the same single-consumer safety cut itself requires before
// collapsing an XOR chain. Committed cuts never overlap: a node already
// consumed as part of another rewrite, or already itself a rewrite root,
// is never selected as an interior cone member again.
func Rewrite(g *xmg.XMG, cache *Cache, opts ...Option) (*xmg.XMG, Stats, error) {
	if g == nil || cache == nil {
		return nil, Stats{}, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cm, err := cut.New(g.Arena, cut.WithK(o.MaxLeaves))
	if err != nil {
		return nil, Stats{}, err
	}
	if err := cm.Enumerate(); err != nil {
		return nil, Stats{}, err
	}

	var stats Stats
	xorBefore, majBefore := g.CountNodesByKind()
	stats.NodesBefore = xorBefore + majBefore

	decisions := make(map[dag.Ref]decision)
	covered := make(map[dag.Ref]bool)
	rooted := make(map[dag.Ref]bool)

	for _, r := range g.Arena.Topo() {
		switch g.Arena.Kind(r) {
		case dag.KindPI, dag.KindConst0:
			continue
		}
		if covered[r] {
			continue
		}

		cuts, err := cm.CutsFor(r)
		if err != nil {
			continue
		}

		var (
			bestCone    []dag.Ref
			bestLeaves  map[dag.Ref]bool
			bestSaving  int
			bestDecided decision
			found       bool
		)

		for _, candidate := range cuts {
			if candidate.LeafCount < o.MinLeaves || candidate.LeafCount > o.MaxLeaves {
				continue
			}
			cone, err := cm.Cone(candidate)
			if err != nil {
				continue
			}
			leaves := cm.Leaves(candidate)
			leafSet := make(map[dag.Ref]bool, len(leaves))
			for _, l := range leaves {
				leafSet[l] = true
			}
			if !safeCone(g, cone, leafSet, r, covered, rooted) {
				continue
			}

			tt, err := g.ToTruthTable(dag.E(candidate.Root), leaves)
			if err != nil {
				continue
			}
			canon, transform, err := ttable.Canonicalize(tt)
			if err != nil {
				continue
			}
			tmpl, err := cache.TemplateFor(canon)
			if err != nil {
				continue
			}

			coneXor, coneMaj := coneGateCounts(g, cone, leafSet)
			tmplXor, tmplMaj := tmpl.CountNodesByKind()
			saving := (coneXor + coneMaj) - (tmplXor + tmplMaj)
			if saving > bestSaving {
				bestSaving = saving
				bestCone = cone
				bestLeaves = leafSet
				bestDecided = decision{c: candidate, transform: transform, template: tmpl}
				found = true
			}
		}

		if found && bestSaving > 0 {
			decisions[r] = bestDecided
			rooted[r] = true
			for _, n := range bestCone {
				if n != r && !bestLeaves[n] {
					covered[n] = true
				}
			}
			stats.CutsRewritten++
			stats.GatesSaved += bestSaving
		}
	}

	out, err := build(g, cm, decisions, covered)
	if err != nil {
		return nil, Stats{}, err
	}

	xorAfter, majAfter := out.CountNodesByKind()
	stats.NodesAfter = xorAfter + majAfter
	return out, stats, nil
}

// safeCone reports whether cone (rooted at root, with leaves in leafSet)
// may be replaced wholesale: every member other than root and the leaves
// must have exactly one fanout in g, and must not already belong to
// another committed rewrite (as a covered interior node or as a root of
// its own).
func safeCone(g *xmg.XMG, cone []dag.Ref, leafSet map[dag.Ref]bool, root dag.Ref, covered, rooted map[dag.Ref]bool) bool {
	for _, n := range cone {
		if n == root || leafSet[n] {
			continue
		}
		if covered[n] || rooted[n] {
			return false
		}
		if g.RefCount(n) != 1 {
			return false
		}
	}
	return true
}

// coneGateCounts counts the XOR/MAJ gates inside cone that are not
// themselves cut leaves — the gate cost a rewrite of this cone would
// actually remove.
func coneGateCounts(g *xmg.XMG, cone []dag.Ref, leafSet map[dag.Ref]bool) (xorCount, majCount int) {
	for _, n := range cone {
		if leafSet[n] {
			continue
		}
		switch g.Arena.Kind(n) {
		case dag.KindXor:
			xorCount++
		case dag.KindMaj:
			majCount++
		}
	}
	return xorCount, majCount
}

// build reconstructs g into a fresh XMG, skipping every covered node
// entirely (so it never occupies a slot in the new arena) and splicing
// each committed decision's template in place of its cone.
func build(g *xmg.XMG, cm *cut.Manager, decisions map[dag.Ref]decision, covered map[dag.Ref]bool) (*xmg.XMG, error) {
	out := xmg.New()
	built := make(map[dag.Ref]dag.Edge, g.Arena.NumNodes())

	for _, r := range g.Arena.Topo() {
		if covered[r] {
			continue
		}

		switch g.Arena.Kind(r) {
		case dag.KindConst0:
			built[r] = out.Zero()
			continue
		case dag.KindPI:
			built[r] = out.AddInput(g.Arena.Name(r))
			continue
		}

		if dec, ok := decisions[r]; ok {
			leaves := cm.Leaves(dec.c)
			leafEdges := make([]dag.Edge, len(leaves))
			for i, l := range leaves {
				leafEdges[i] = built[l]
			}
			tmplInputs := make([]dag.Edge, len(leafEdges))
			for k := range tmplInputs {
				e := leafEdges[dec.transform.Perm[k]]
				if dec.transform.InputNeg&(uint64(1)<<uint(k)) != 0 {
					e = e.Not()
				}
				tmplInputs[k] = e
			}
			res, err := spliceInto(out, dec.template, tmplInputs)
			if err != nil {
				return nil, err
			}
			if dec.transform.OutputNeg {
				res = res.Not()
			}
			built[r] = res
			continue
		}

		fanins := g.Arena.Fanins(r)
		resolved := make([]dag.Edge, len(fanins))
		for i, f := range fanins {
			b := built[f.Node]
			if f.Complem {
				b = b.Not()
			}
			resolved[i] = b
		}

		var e dag.Edge
		var err error
		switch g.Arena.Kind(r) {
		case dag.KindXor:
			e, err = out.Xor(resolved[0], resolved[1])
		case dag.KindMaj:
			e, err = out.Maj(resolved[0], resolved[1], resolved[2])
		default:
			err = xmg.ErrNotAnXMGNode
		}
		if err != nil {
			return nil, err
		}
		built[r] = e
	}

	poNames := g.Arena.PONames()
	for i, po := range g.Arena.POs() {
		b := built[po.Node]
		if po.Complem {
			b = b.Not()
		}
		out.AddOutput(poNames[i], b)
	}

	return out, nil
}
