package lnn

import "github.com/lsynth/lsynth/revsynth"

// naiveReorder SWAPs each gate's control adjacent to its target, emits
// the gate, then undoes the SWAPs — no line carries any persistent
// effect into the next gate, so the identity mapping always holds.
func naiveReorder(c *revsynth.Circuit) (*revsynth.Circuit, []int, error) {
	out := newCircuitLike(c)
	for _, g := range c.Gates {
		control, target, err := controlTarget(g)
		if err != nil {
			return nil, nil, err
		}
		if abs(control-target) <= 1 {
			out.AddGate(g)
			continue
		}

		finalControl, pairs := moveAdjacent(control, target)
		forward := emitSwaps(pairs)
		for _, sw := range forward {
			out.AddGate(sw)
		}
		moved, err := revsynth.NewToffoli(
			[]revsynth.Control{{Line: finalControl, Pol: g.Controls[0].Pol}}, target,
		)
		if err != nil {
			return nil, nil, err
		}
		out.AddGate(moved)
		for i := len(forward) - 1; i >= 0; i-- {
			out.AddGate(forward[i])
		}
	}
	return out, identityMapping(c.NumLines), nil
}

func identityMapping(n int) []int {
	m := make([]int, n)
	for i := range m {
		m[i] = i
	}
	return m
}
