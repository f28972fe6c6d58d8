package cut

import (
	"sort"

	"github.com/lsynth/lsynth/bfs"
	"github.com/lsynth/lsynth/dag"
)

// xorChain describes one collapsed XOR block: Root is the chain's
// outward-facing node (the one fed to a non-XOR consumer, to more than
// one consumer, or to no consumer at all), Internal lists every chain
// member including Root, and Leaves lists the block's external inputs
// in ascending ref order.
type xorChain struct {
	Root     dag.Ref
	Internal map[dag.Ref]bool
	Leaves   []dag.Ref
}

// isChainLink reports whether r is an interior XOR chain member: a XOR
// node used by exactly one consumer, itself also XOR.
func isChainLink(a *dag.Arena, fanouts map[dag.Ref][]dag.Ref, r dag.Ref) bool {
	if a.Kind(r) != dag.KindXor {
		return false
	}
	consumers := fanouts[r]
	return len(consumers) == 1 && a.Kind(consumers[0]) == dag.KindXor && a.FanoutCount(r) == 1
}

// findXorChains locates every maximal single-fanout XOR chain in a and
// returns one xorChain per chain root (§4.C's "XOR-blocks... internal
// XOR nodes are marked ignored").
func findXorChains(a *dag.Arena) ([]xorChain, error) {
	fanouts := a.Fanouts()

	var chains []xorChain
	for _, r := range a.Topo() {
		if a.Kind(r) != dag.KindXor || isChainLink(a, fanouts, r) {
			continue
		}

		res, err := bfs.Run(a, r, bfs.WithFilterFanin(func(_, fanin dag.Ref) bool {
			return isChainLink(a, fanouts, fanin)
		}))
		if err != nil {
			return nil, err
		}
		if len(res.Order) <= 1 {
			continue // nothing to collapse
		}

		internal := make(map[dag.Ref]bool, len(res.Order))
		for _, n := range res.Order {
			internal[n] = true
		}
		leafSet := make(map[dag.Ref]bool)
		for n := range internal {
			for _, fi := range a.Fanins(n) {
				if !internal[fi.Node] {
					leafSet[fi.Node] = true
				}
			}
		}
		leaves := make([]dag.Ref, 0, len(leafSet))
		for l := range leafSet {
			leaves = append(leaves, l)
		}
		sort.Slice(leaves, func(i, j int) bool { return leaves[i] < leaves[j] })
		chains = append(chains, xorChain{Root: r, Internal: internal, Leaves: leaves})
	}
	return chains, nil
}
