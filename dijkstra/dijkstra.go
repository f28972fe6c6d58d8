package dijkstra

import (
	"github.com/lsynth/lsynth/dag"
)

// ArrivalLevels computes, for every node in a, its longest-path distance
// (in node hops) from the nearest primary input: Arrival(pi)=0 for every
// PI, Arrival(n)=1+max(Arrival(fanin)) otherwise. Processing a's cached
// topological order once is both necessary and sufficient since every
// fanin of n precedes n in that order.
func ArrivalLevels(a *dag.Arena, opts ...Option) (map[dag.Ref]int64, error) {
	if a == nil {
		return nil, ErrNilArena
	}
	cfg := DefaultOptions()
	for _, fn := range opts {
		fn(&cfg)
	}

	levels := make(map[dag.Ref]int64, a.NumNodes())
	for _, r := range a.Topo() {
		if a.Kind(r) == dag.KindPI || a.Kind(r) == dag.KindConst0 {
			levels[r] = 0
			continue
		}
		var best int64
		for _, fanin := range a.Fanins(r) {
			if lv := levels[fanin.Node]; lv+1 > best {
				best = lv + 1
			}
		}
		if best > cfg.MaxLevel {
			best = cfg.MaxLevel
		}
		levels[r] = best
	}
	return levels, nil
}

// RequiredLevels computes, for every node in a, the latest level it can
// be scheduled at without delaying any primary output: Required(po)=depth
// for every node feeding a primary output (depth = the arena's maximum
// arrival level), Required(n)=min(Required(fanout))-1 otherwise,
// propagated by sweeping the topological order in reverse.
func RequiredLevels(a *dag.Arena, opts ...Option) (map[dag.Ref]int64, error) {
	if a == nil {
		return nil, ErrNilArena
	}
	arrival, err := ArrivalLevels(a, opts...)
	if err != nil {
		return nil, err
	}

	var depth int64
	for _, po := range a.POs() {
		if lv := arrival[po.Node]; lv > depth {
			depth = lv
		}
	}

	required := make(map[dag.Ref]int64, a.NumNodes())
	topo := a.Topo()
	for _, po := range a.POs() {
		required[po.Node] = depth
	}
	for i := len(topo) - 1; i >= 0; i-- {
		r := topo[i]
		if _, isOutput := required[r]; !isOutput {
			required[r] = depth
		}
		for _, fanin := range a.Fanins(r) {
			candidate := required[r] - 1
			if existing, ok := required[fanin.Node]; !ok || candidate < existing {
				required[fanin.Node] = candidate
			}
		}
	}
	return required, nil
}
