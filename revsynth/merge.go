package revsynth

import "github.com/lsynth/lsynth/dag"

// groupOrder returns the distinct representatives of order's elements
// under find, in first-occurrence order.
func groupOrder(order []dag.Ref, find func(dag.Ref) dag.Ref) []dag.Ref {
	seen := make(map[dag.Ref]bool, len(order))
	var out []dag.Ref
	for _, r := range order {
		rep := find(r)
		if !seen[rep] {
			seen[rep] = true
			out = append(out, rep)
		}
	}
	return out
}

// dryRunPeak estimates the peak number of concurrently live LUT output
// lines, given groups processed in topological order and each group's
// leaves (some of which are themselves LUT-group representatives,
// named by isLUT). An output-node group never counts as released: its
// line must persist to the end (§4.G's order heuristic).
func dryRunPeak(groups []dag.Ref, leaves map[dag.Ref][]dag.Ref, isLUT, isOutput map[dag.Ref]bool) int {
	remaining := make(map[dag.Ref]int)
	for _, rep := range groups {
		for _, l := range leaves[rep] {
			if isLUT[l] {
				remaining[l]++
			}
		}
	}
	live, peak := 0, 0
	for _, rep := range groups {
		live++
		if live > peak {
			peak = live
		}
		for _, l := range leaves[rep] {
			if !isLUT[l] {
				continue
			}
			remaining[l]--
			if remaining[l] == 0 && !isOutput[l] {
				live--
			}
		}
	}
	return peak
}

// mergeUntilFeasible grows dsu groups (each identified by a
// representative dag.Ref) by absorbing a leaf LUT into its consumer
// whenever the dry-run peak exceeds maxAncilla, recomputing the merged
// group's leaf set (external inputs only) after each merge. It returns
// the final group order and each group's leaf set. maxAncilla == 0
// means unbounded (no merging performed).
func mergeUntilFeasible(
	order []dag.Ref,
	leavesOf map[dag.Ref][]dag.Ref,
	find func(dag.Ref) dag.Ref,
	union func(dag.Ref, dag.Ref) bool,
	isOutput map[dag.Ref]bool,
	maxAncilla int,
) ([]dag.Ref, map[dag.Ref][]dag.Ref, map[dag.Ref]dag.Ref, error) {
	leaves := make(map[dag.Ref][]dag.Ref, len(leavesOf))
	dominator := make(map[dag.Ref]dag.Ref, len(leavesOf))
	for k, v := range leavesOf {
		leaves[k] = append([]dag.Ref(nil), v...)
		dominator[k] = k
	}

	for {
		groups := groupOrder(order, find)
		isLUT := make(map[dag.Ref]bool, len(groups))
		for _, g := range groups {
			isLUT[g] = true
		}

		if maxAncilla == 0 || dryRunPeak(groups, leaves, isLUT, isOutput) <= maxAncilla {
			dom := make(map[dag.Ref]dag.Ref, len(groups))
			for _, g := range groups {
				dom[g] = dominator[g]
			}
			return groups, leaves, dom, nil
		}

		merged := false
		for _, rep := range groups {
			for _, l := range leaves[rep] {
				lrep := find(l)
				if lrep == rep || !isLUT[lrep] {
					continue
				}
				// rep consumes lrep (lrep appears in rep's leaf set), so
				// rep's node is always topologically downstream: its own
				// edge already composes lrep's logic once leaves absorb
				// lrep's external inputs.
				consumerDominator := dominator[rep]
				union(rep, lrep)
				newRep := find(rep)
				combined := uniqueMerge(leaves[rep], leaves[lrep])
				combined = without(combined, l)
				delete(leaves, rep)
				delete(leaves, lrep)
				delete(dominator, rep)
				delete(dominator, lrep)
				leaves[newRep] = combined
				dominator[newRep] = consumerDominator
				merged = true
				break
			}
			if merged {
				break
			}
		}
		if !merged {
			return nil, nil, nil, ErrAncillaExhausted
		}
	}
}

func uniqueMerge(a, b []dag.Ref) []dag.Ref {
	seen := make(map[dag.Ref]bool, len(a)+len(b))
	var out []dag.Ref
	for _, x := range a {
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}
	for _, x := range b {
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}
	return out
}

func without(a []dag.Ref, x dag.Ref) []dag.Ref {
	out := a[:0:0]
	for _, v := range a {
		if v != x {
			out = append(out, v)
		}
	}
	return out
}
