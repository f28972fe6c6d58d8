package lnn

import "github.com/lsynth/lsynth/revsynth"

// linePermutation tracks which physical line each logical line
// currently occupies (l2p) and its inverse (p2l), updated in lockstep
// as SWAP gates are applied.
type linePermutation struct {
	l2p []int
	p2l []int
}

func newIdentityPermutation(n int) *linePermutation {
	l2p := make([]int, n)
	p2l := make([]int, n)
	for i := range l2p {
		l2p[i] = i
		p2l[i] = i
	}
	return &linePermutation{l2p: l2p, p2l: p2l}
}

func (p *linePermutation) swap(a, b int) {
	la, lb := p.p2l[a], p.p2l[b]
	p.p2l[a], p.p2l[b] = lb, la
	p.l2p[la], p.l2p[lb] = b, a
}

// localReorder SWAPs each gate's control adjacent to its target like
// naiveReorder, but never undoes a SWAP: the running permutation
// carries forward, so later gates are routed against wherever their
// logical lines physically ended up.
func localReorder(c *revsynth.Circuit) (*revsynth.Circuit, []int, error) {
	out := newCircuitLike(c)
	perm := newIdentityPermutation(c.NumLines)

	for _, g := range c.Gates {
		control, target, err := controlTarget(g)
		if err != nil {
			return nil, nil, err
		}
		pc, pt := perm.l2p[control], perm.l2p[target]

		if abs(pc-pt) > 1 {
			_, pairs := moveAdjacent(pc, pt)
			for _, pr := range pairs {
				perm.swap(pr[0], pr[1])
				out.AddGate(swapGate(pr[0], pr[1]))
			}
			pc = perm.l2p[control]
		}

		moved, err := revsynth.NewToffoli(
			[]revsynth.Control{{Line: pc, Pol: g.Controls[0].Pol}}, perm.l2p[target],
		)
		if err != nil {
			return nil, nil, err
		}
		out.AddGate(moved)
	}
	return out, perm.l2p, nil
}
