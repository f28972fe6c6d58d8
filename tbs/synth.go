package tbs

import (
	"github.com/irifrance/gini/z"

	"github.com/lsynth/lsynth/aig"
	"github.com/lsynth/lsynth/revsynth"
	"github.com/lsynth/lsynth/satenc"
)

// Synthesize builds an n-line Toffoli network realizing g, an n-input,
// n-output reversible relation (§4.H). No ancilla lines are introduced:
// x and y share the same n physical wires throughout.
func Synthesize(g *aig.AIG, opts ...Option) (*revsynth.Circuit, error) {
	if g == nil {
		return nil, ErrNilAIG
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	inputs := g.Inputs()
	outputs := g.Outputs()
	n := len(inputs)
	if n != len(outputs) {
		return nil, ErrWidthMismatch
	}

	var discovered []revsynth.Gate

weightLoop:
	for k := 0; k <= n; k++ {
		for {
			f := satenc.NewFormula()
			xLits := make([]z.Lit, n)
			for i := range xLits {
				xLits[i] = f.NewVar()
			}

			y := encodeAIG(f, g, xLits)
			for _, gt := range discovered {
				y = applyGateToVector(f, y, gt)
			}

			if err := buildCardinalityExactly(f, o.Cardinality, xLits, k); err != nil {
				return nil, err
			}

			diff := make([]z.Lit, n)
			for i := range diff {
				diff[i] = f.Xor2(xLits[i], y[i])
			}
			f.Assume(f.OrAll(diff))

			switch f.Solve() {
			case satenc.Unsat:
				continue weightLoop
			case satenc.Unknown:
				return nil, ErrSolverUnknown
			}

			var x1, y1, i10, i01 []int
			for i := 0; i < n; i++ {
				xi := f.Value(xLits[i])
				yi := f.Value(y[i])
				if xi {
					x1 = append(x1, i)
				}
				if yi {
					y1 = append(y1, i)
				}
				switch {
				case xi && !yi:
					i10 = append(i10, i)
				case !xi && yi:
					i01 = append(i01, i)
				}
			}

			for _, t := range i10 {
				gt, err := revsynth.NewToffoli(controlsFrom(y1), t)
				if err != nil {
					return nil, err
				}
				discovered = append(discovered, gt)
			}
			for _, t := range i01 {
				gt, err := revsynth.NewToffoli(controlsFrom(x1), t)
				if err != nil {
					return nil, err
				}
				discovered = append(discovered, gt)
			}
		}
	}

	return assemble(g, discovered), nil
}

// controlsFrom builds a positive-polarity control set from a sorted
// index list (the §4.H model only ever gates on a row's own 1-bits).
func controlsFrom(idx []int) []revsynth.Control {
	ctl := make([]revsynth.Control, len(idx))
	for i, l := range idx {
		ctl[i] = revsynth.Control{Line: l, Pol: revsynth.Positive}
	}
	return ctl
}

// applyGateToVector returns the vector obtained by simulating a single
// Toffoli gate's effect on v: w equals v except at gt.Target, which is
// XORed with the AND of v's bits at gt's control positions (under their
// polarity) — the Tseitin form of §4.H's "y_new := y_old XOR AND(controls)".
func applyGateToVector(f *satenc.Formula, v []z.Lit, gt revsynth.Gate) []z.Lit {
	ctlLits := make([]z.Lit, len(gt.Controls))
	for i, c := range gt.Controls {
		l := v[c.Line]
		if c.Pol == revsynth.Negative {
			l = l.Not()
		}
		ctlLits[i] = l
	}
	w := append([]z.Lit(nil), v...)
	w[gt.Target] = f.Xor2(v[gt.Target], f.AndAll(ctlLits))
	return w
}

// buildCardinalityExactly asserts "exactly k of lits are true" under the
// selected variant.
func buildCardinalityExactly(f *satenc.Formula, variant CardinalityVariant, lits []z.Lit, k int) error {
	switch variant {
	case PairwiseSorter:
		if err := f.BuildPairwiseAtMost(lits, k); err != nil {
			return err
		}
		neg := make([]z.Lit, len(lits))
		for i, l := range lits {
			neg[i] = l.Not()
		}
		return f.BuildPairwiseAtMost(neg, len(lits)-k)
	default:
		return f.BuildSinzExactly(lits, k)
	}
}

// assemble builds the final n-line Circuit: discovered's gates reversed
// (the loop transforms f(x) towards x; run forward, its reverse turns x
// into f(x)), plus PI/PO bookkeeping steps.
func assemble(g *aig.AIG, discovered []revsynth.Gate) *revsynth.Circuit {
	n := len(discovered)
	names := g.Arena.PIs()
	c := &revsynth.Circuit{NumLines: len(names), LineNames: make([]string, len(names))}
	for i := range names {
		c.LineNames[i] = g.Arena.Name(names[i])
		c.Steps = append(c.Steps, revsynth.Step{Kind: revsynth.StepPI, Line: i})
	}
	for i := n - 1; i >= 0; i-- {
		c.AddGate(discovered[i])
	}
	for i := range names {
		c.Steps = append(c.Steps, revsynth.Step{Kind: revsynth.StepPO, Line: i})
	}
	return c
}
