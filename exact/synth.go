package exact

import (
	"github.com/irifrance/gini/z"

	"github.com/lsynth/lsynth/satenc"
	"github.com/lsynth/lsynth/ttable"
	"github.com/lsynth/lsynth/xmg"
)

// Synthesize finds a minimal-gate-count XMG realizing target over
// numVars variables, via iterative deepening SAT search (§4.E): for each
// candidate gate count k starting at Options.Start, a fresh instance is
// built, every row of target is asserted against the last gate's output,
// and the formula is solved. The first satisfiable k yields the result.
func Synthesize(target ttable.TT, numVars int, opts ...Option) (*xmg.XMG, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if target.NumVars() != numVars {
		return nil, ErrTruthTableWidth
	}

	inst, _, err := search(target, numVars, o)
	if err != nil {
		return nil, err
	}
	return inst.extract(o.Invert)
}

// SynthesizeAll behaves like Synthesize but, once the minimal gate count
// is found, enumerates every distinct satisfying wiring at that gate
// count by adding a blocking clause after each model and re-solving,
// per Options.AllSolutions.
func SynthesizeAll(target ttable.TT, numVars int, opts ...Option) ([]*xmg.XMG, error) {
	o := DefaultOptions()
	o.AllSolutions = true
	for _, opt := range opts {
		opt(&o)
	}
	if target.NumVars() != numVars {
		return nil, ErrTruthTableWidth
	}

	inst, _, err := search(target, numVars, o)
	if err != nil {
		return nil, err
	}

	var results []*xmg.XMG
	for {
		g, err := inst.extract(o.Invert)
		if err != nil {
			return results, err
		}
		results = append(results, g)
		blockCurrentModel(inst)
		switch inst.f.Solve() {
		case satenc.Sat:
			continue
		case satenc.Unsat:
			return results, nil
		default:
			return results, ErrTimeout
		}
	}
}

// search runs the iterative-deepening loop shared by Synthesize and
// SynthesizeAll, returning the first satisfiable instance and its gate
// count with its model still loaded.
func search(target ttable.TT, numVars int, o Options) (*instance, int, error) {
	numRows := 1 << uint(numVars)
	for k := o.Start; o.MaxGates == 0 || k <= o.MaxGates; k++ {
		inst := newInstance(numVars, k, o)
		for level := 0; level < k; level++ {
			if err := inst.addGate(); err != nil {
				return nil, 0, err
			}
		}
		assertTarget(inst, target, numRows)

		switch inst.f.Solve() {
		case satenc.Sat:
			return inst, k, nil
		case satenc.Unsat:
			continue
		default:
			if o.SkipOnTimeout {
				continue
			}
			return nil, 0, ErrTimeout
		}
	}
	return nil, 0, ErrBudgetExhausted
}

// assertTarget pins the last gate's per-row output literals to target's
// bits, one unit clause per row.
func assertTarget(inst *instance, target ttable.TT, numRows int) {
	last := inst.outputs[len(inst.outputs)-1]
	for row := 0; row < numRows; row++ {
		if target.Bit(uint(row)) {
			inst.f.AddClause(last[row])
		} else {
			inst.f.AddClause(last[row].Not())
		}
	}
}

// blockCurrentModel adds a clause forbidding the exact combination of
// gate-level selector, negation, and type literals the current model
// assigned, so the next Solve call must find a different wiring.
func blockCurrentModel(inst *instance) {
	var clause []z.Lit
	for _, g := range inst.gates {
		for i := 0; i < 3; i++ {
			for _, l := range g.Inputs[i].Sel.Lits {
				if inst.f.Value(l) {
					clause = append(clause, l.Not())
				} else {
					clause = append(clause, l)
				}
			}
			if inst.f.Value(g.Inputs[i].Neg) {
				clause = append(clause, g.Inputs[i].Neg.Not())
			} else {
				clause = append(clause, g.Inputs[i].Neg)
			}
		}
		if inst.f.Value(g.Type) {
			clause = append(clause, g.Type.Not())
		} else {
			clause = append(clause, g.Type)
		}
	}
	inst.f.AddClause(clause...)
}
