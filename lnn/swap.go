package lnn

import "github.com/lsynth/lsynth/revsynth"

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// controlTarget validates that g is a single-control Toffoli and
// returns its control and target line indices.
func controlTarget(g revsynth.Gate) (int, int, error) {
	if g.Kind != revsynth.GateToffoli {
		return 0, 0, ErrUnsupportedGateKind
	}
	if len(g.Controls) != 1 {
		return 0, 0, ErrMultiControlGate
	}
	return g.Controls[0].Line, g.Target, nil
}

// swapGate builds an unconditional SWAP as a controlless Fredkin gate.
func swapGate(a, b int) revsynth.Gate {
	g, _ := revsynth.NewFredkin(nil, a, b)
	return g
}

// moveAdjacent returns the sequence of adjacent-position SWAPs (each a
// [2]int physical-position pair) that relocate whatever occupies
// position control, one step at a time, to the line adjacent to
// target — without ever touching target's own position — plus the
// resulting final control position.
func moveAdjacent(control, target int) (int, [][2]int) {
	switch {
	case control < target:
		var swaps [][2]int
		for p := control; p < target-1; p++ {
			swaps = append(swaps, [2]int{p, p + 1})
		}
		return target - 1, swaps
	case control > target:
		var swaps [][2]int
		for p := control; p > target+1; p-- {
			swaps = append(swaps, [2]int{p, p - 1})
		}
		return target + 1, swaps
	default:
		return control, nil
	}
}

// emitSwaps maps a [2]int position-pair list to SWAP gates.
func emitSwaps(pairs [][2]int) []revsynth.Gate {
	out := make([]revsynth.Gate, len(pairs))
	for i, p := range pairs {
		out[i] = swapGate(p[0], p[1])
	}
	return out
}

// newCircuitLike returns an empty circuit with src's line count and names.
func newCircuitLike(src *revsynth.Circuit) *revsynth.Circuit {
	return &revsynth.Circuit{
		NumLines:  src.NumLines,
		LineNames: append([]string(nil), src.LineNames...),
	}
}

// adjacentSwapsToPermutation returns the adjacent-position SWAPs that
// rearrange an initially-identity physical layout so that physical
// position i ends up holding logical line target[i], using each
// element's own march toward its destination one adjacent swap at a
// time — the prologue for global reordering, itself constrained to
// adjacent interactions like everything else this package emits.
func adjacentSwapsToPermutation(target []int) [][2]int {
	n := len(target)
	cur := make([]int, n)
	posOf := make([]int, n)
	for i := range cur {
		cur[i] = i
		posOf[i] = i
	}
	var swaps [][2]int
	for i := 0; i < n; i++ {
		want := target[i]
		for posOf[want] != i {
			p := posOf[want]
			var np int
			if p > i {
				np = p - 1
			} else {
				np = p + 1
			}
			cur[p], cur[np] = cur[np], cur[p]
			posOf[cur[p]] = p
			posOf[cur[np]] = np
			if p < np {
				swaps = append(swaps, [2]int{p, np})
			} else {
				swaps = append(swaps, [2]int{np, p})
			}
		}
	}
	return swaps
}
