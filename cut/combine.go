package cut

import (
	"sort"

	"github.com/lsynth/lsynth/dag"
)

// uniqueSorted returns a sorted copy of refs with duplicates removed.
func uniqueSorted(refs []dag.Ref) []dag.Ref {
	cp := append([]dag.Ref(nil), refs...)
	sort.Slice(cp, func(i, j int) bool { return cp[i] < cp[j] })
	out := cp[:0]
	for i, r := range cp {
		if i == 0 || r != cp[i-1] {
			out = append(out, r)
		}
	}
	return out
}

// isSubset reports whether every element of a (both sorted) occurs in b.
func isSubset(a, b []dag.Ref) bool {
	bi := 0
	for _, x := range a {
		for bi < len(b) && b[bi] < x {
			bi++
		}
		if bi >= len(b) || b[bi] != x {
			return false
		}
	}
	return true
}

// buildCut allocates a new Cut for root with the given (already
// deduplicated) leaves, recording the deepest required-level among them
// as the cut's priority key.
func (m *Manager) buildCut(root dag.Ref, leaves []dag.Ref) Cut {
	id := m.leafPages.Add(leaves)
	var req int64
	first := true
	for _, l := range leaves {
		lv := m.required[l]
		if first || lv > req {
			req = lv
			first = false
		}
	}
	return Cut{Root: root, LeavesID: id, LeafCount: len(leaves), RequiredLevel: req}
}

// trivialCut returns the single-leaf cut {r} rooted at r.
func (m *Manager) trivialCut(r dag.Ref) Cut {
	return m.buildCut(r, []dag.Ref{r})
}

// combineFaninCuts builds every k-feasible union of one cut per fanin of
// r (the Cartesian product over each fanin's stored cut list), via
// pairwise union + k-feasibility filtering (§4.C).
func (m *Manager) combineFaninCuts(r dag.Ref) []Cut {
	fanins := m.arena.Fanins(r)
	lists := make([][]Cut, len(fanins))
	for i, e := range fanins {
		lists[i] = m.cuts[e.Node]
	}

	var results []Cut
	var recurse func(idx int, acc []dag.Ref)
	recurse = func(idx int, acc []dag.Ref) {
		if idx == len(lists) {
			leaves := uniqueSorted(acc)
			if len(leaves) > m.opts.K {
				return
			}
			results = append(results, m.buildCut(r, leaves))
			return
		}
		for _, c := range lists[idx] {
			next := append(append([]dag.Ref(nil), acc...), m.leafPages.Get(c.LeavesID)...)
			recurse(idx+1, next)
		}
	}
	recurse(0, nil)
	return results
}

// subsume discards any cut dominated by another (its leaf set is a
// superset of some other candidate's), keeping the lower-id cut when
// two cuts have identical leaf sets, and replaces any cut subsumed by a
// smaller new one — both directions of §4.C's subsumption rule collapse
// to the same "keep only non-dominated cuts" pass over the full
// candidate list.
func (m *Manager) subsume(cuts []Cut) []Cut {
	var kept []Cut
	for _, c := range cuts {
		cLeaves := m.leafPages.Get(c.LeavesID)
		dominated := false
		for _, o := range cuts {
			if o.LeavesID == c.LeavesID {
				continue
			}
			oLeaves := m.leafPages.Get(o.LeavesID)
			if len(oLeaves) > len(cLeaves) || !isSubset(oLeaves, cLeaves) {
				continue
			}
			if len(oLeaves) == len(cLeaves) {
				if o.LeavesID < c.LeavesID {
					dominated = true
					break
				}
				continue
			}
			dominated = true
			break
		}
		if !dominated {
			kept = append(kept, c)
		}
	}
	return kept
}

// sortByPriority orders cuts by deepest leaf required-level descending
// (more slack first), then by cut size ascending (§4.C).
func (m *Manager) sortByPriority(cuts []Cut) {
	sort.SliceStable(cuts, func(i, j int) bool {
		if cuts[i].RequiredLevel != cuts[j].RequiredLevel {
			return cuts[i].RequiredLevel > cuts[j].RequiredLevel
		}
		return cuts[i].LeafCount < cuts[j].LeafCount
	})
}
