package lnn

import (
	"sort"

	"github.com/lsynth/lsynth/matrix"
	"github.com/lsynth/lsynth/revsynth"
)

type ctPair struct{ c, t int }

// nncCost is a single gate's nearest-neighbour-cost contribution under
// l2p: the number of SWAPs a naive per-gate route would need.
func nncCost(pair ctPair, l2p []int) int {
	d := abs(l2p[pair.c]-l2p[pair.t]) - 1
	if d < 0 {
		return 0
	}
	return d
}

func totalNNC(pairs []ctPair, l2p []int) int {
	total := 0
	for _, p := range pairs {
		total += nncCost(p, l2p)
	}
	return total
}

// lineImpacts fills a 1xn matrix.Grid with each logical line's total
// NNC contribution (§4.I: "per-line NNC impact, sum of |c−t|−1
// contributions"), attributed to both the control and the target of
// every gate touching that line.
func lineImpacts(pairs []ctPair, l2p []int, n int) (*matrix.Grid, error) {
	grid, err := matrix.NewGrid(1, n)
	if err != nil {
		return nil, err
	}
	for _, p := range pairs {
		cost := nncCost(p, l2p)
		if cost == 0 {
			continue
		}
		cur, _ := grid.At(0, p.c)
		if err := grid.Set(0, p.c, cur+cost); err != nil {
			return nil, err
		}
		cur, _ = grid.At(0, p.t)
		if err := grid.Set(0, p.t, cur+cost); err != nil {
			return nil, err
		}
	}
	return grid, nil
}

// searchGlobalPermutation iterates §4.I's global-reorder heuristic to
// a fixpoint: repeatedly relocate the highest-impact line to the
// current median physical position, keeping the move only if it
// lowers total NNC, until no candidate move improves further.
func searchGlobalPermutation(pairs []ctPair, n int) ([]int, error) {
	l2p := make([]int, n)
	p2l := make([]int, n)
	for i := range l2p {
		l2p[i] = i
		p2l[i] = i
	}

	for {
		grid, err := lineImpacts(pairs, l2p, n)
		if err != nil {
			return nil, err
		}
		impacts := grid.Row(0)

		order := make([]int, n)
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(i, j int) bool { return impacts[order[i]] > impacts[order[j]] })

		improved := false
		for _, line := range order {
			if impacts[line] == 0 {
				break
			}
			median := n / 2
			medianLine := p2l[median]
			if medianLine == line {
				continue
			}

			candidate := append([]int(nil), l2p...)
			lp, mp := candidate[line], candidate[medianLine]
			candidate[line], candidate[medianLine] = mp, lp

			if totalNNC(pairs, candidate) < totalNNC(pairs, l2p) {
				l2p = candidate
				for i, lg := range l2p {
					p2l[lg] = i
				}
				improved = true
				break
			}
		}
		if !improved {
			return l2p, nil
		}
	}
}

// globalReorder computes one persistent line permutation up front via
// searchGlobalPermutation, emits it as an adjacent-SWAP prologue, then
// rewrites every gate under that fixed mapping, with a local
// SWAP-in/gate/SWAP-out patch (as in naiveReorder) for any gate the
// permutation search left non-adjacent.
func globalReorder(c *revsynth.Circuit) (*revsynth.Circuit, []int, error) {
	n := c.NumLines
	pairs := make([]ctPair, len(c.Gates))
	for i, g := range c.Gates {
		control, target, err := controlTarget(g)
		if err != nil {
			return nil, nil, err
		}
		pairs[i] = ctPair{c: control, t: target}
	}

	l2p, err := searchGlobalPermutation(pairs, n)
	if err != nil {
		return nil, nil, err
	}

	p2l := make([]int, n)
	for logical, physical := range l2p {
		p2l[physical] = logical
	}

	out := newCircuitLike(c)
	for _, pr := range adjacentSwapsToPermutation(p2l) {
		out.AddGate(swapGate(pr[0], pr[1]))
	}

	for i, g := range c.Gates {
		pc, pt := l2p[pairs[i].c], l2p[pairs[i].t]
		if abs(pc-pt) <= 1 {
			moved, err := revsynth.NewToffoli(
				[]revsynth.Control{{Line: pc, Pol: g.Controls[0].Pol}}, pt,
			)
			if err != nil {
				return nil, nil, err
			}
			out.AddGate(moved)
			continue
		}

		finalControl, swaps := moveAdjacent(pc, pt)
		forward := emitSwaps(swaps)
		for _, sw := range forward {
			out.AddGate(sw)
		}
		moved, err := revsynth.NewToffoli(
			[]revsynth.Control{{Line: finalControl, Pol: g.Controls[0].Pol}}, pt,
		)
		if err != nil {
			return nil, nil, err
		}
		out.AddGate(moved)
		for i := len(forward) - 1; i >= 0; i-- {
			out.AddGate(forward[i])
		}
	}
	return out, l2p, nil
}
