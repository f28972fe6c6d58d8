package exact

import "github.com/irifrance/gini/z"

// applySymmetryBreaking adds the clauses that the enabled Flags want for
// the gate just allocated at level, comparing it against every earlier
// gate (xmg_exact.cpp's add_level(symmetry_breaking)).
func (inst *instance) applySymmetryBreaking(g gate) {
	f := inst.f
	isMaj := g.Type.Not()

	if inst.opts.Breaking.Commutativity {
		// sel[0]<sel[1] always; for MAJ additionally sel[1]<sel[2] (§4.E).
		lt01 := f.LessThan(g.Inputs[0].Sel, g.Inputs[1].Sel)
		f.AddClause(lt01)
		lt12 := f.LessThan(g.Inputs[1].Sel, g.Inputs[2].Sel)
		f.AddConditional([]z.Lit{isMaj}, lt12)
	}

	if inst.opts.Breaking.Inverters {
		// An XOR gate's inverters cancel (XOR(¬a,b)=XOR(a,¬b)=¬XOR(a,b)):
		// canonicalize to no inversion on either live input.
		f.AddConditional([]z.Lit{g.Type}, g.Inputs[0].Neg.Not())
		f.AddConditional([]z.Lit{g.Type}, g.Inputs[1].Neg.Not())
		// A MAJ gate is monotone in at most one inverted input at a time
		// for any fixed pair of selected inputs; forbid two-or-more.
		n0, n1, n2 := g.Inputs[0].Neg, g.Inputs[1].Neg, g.Inputs[2].Neg
		f.AddClause(isMaj.Not(), n0.Not(), n1.Not())
		f.AddClause(isMaj.Not(), n0.Not(), n2.Not())
		f.AddClause(isMaj.Not(), n1.Not(), n2.Not())
	}

	if inst.opts.Breaking.SupportRestriction && inst.opts.Support != nil {
		inst.blockUnsupported(g, isMaj)
	}

	if inst.opts.Breaking.StructuralHashing {
		for _, og := range inst.gates {
			inst.blockDuplicateGate(g, og)
		}
	}

	if inst.opts.Breaking.SymmetricBlocker {
		inst.blockAsymmetricPairs(g, isMaj)
	}
}

// blockUnsupported forbids any selector from choosing a primary input
// index the caller marked unsupported (the `t` flag).
func (inst *instance) blockUnsupported(g gate, isMaj z.Lit) {
	f := inst.f
	for idx, ok := range inst.opts.Support {
		if ok {
			continue
		}
		code := uint64(idx + 1) // primary inputs are coded 1..numVars
		f.AddClause(negateAll(g.Inputs[0].Sel.EqualsLiterals(code))...)
		f.AddClause(negateAll(g.Inputs[1].Sel.EqualsLiterals(code))...)
		mismatch2 := negateAll(g.Inputs[2].Sel.EqualsLiterals(code))
		f.AddClause(append([]z.Lit{isMaj.Not()}, mismatch2...)...)
	}
}

// blockDuplicateGate forbids g and an earlier gate og from sharing the
// same (sel,neg,type) tuple (§4.E: "no two gates can share sel/neg/type
// tuples"): the clause is satisfied as soon as any one field differs,
// type included, so a type mismatch alone already satisfies it.
func (inst *instance) blockDuplicateGate(g, og gate) {
	f := inst.f
	diffs := make([]z.Lit, 0, 3*inst.bw+3+1)
	for i := 0; i < 3; i++ {
		for bit := 0; bit < inst.bw; bit++ {
			diffs = append(diffs, f.Xnor2(g.Inputs[i].Sel.Lits[bit], og.Inputs[i].Sel.Lits[bit]).Not())
		}
		diffs = append(diffs, f.Xnor2(g.Inputs[i].Neg, og.Inputs[i].Neg).Not())
	}
	diffs = append(diffs, f.Xnor2(g.Type, og.Type).Not())
	f.AddClause(diffs...)
}

// blockAsymmetricPairs enforces, for every declared symmetric pair (p,q),
// that p's first use anywhere in the circuit never precedes q's first
// use: whenever this slot selects p, some earlier slot (in an earlier
// gate, or an earlier slot of this same gate) must already have
// selected q.
func (inst *instance) blockAsymmetricPairs(g gate, isMaj z.Lit) {
	f := inst.f
	for pi, pair := range inst.opts.Symmetries {
		pCode := uint64(pair.P + 1)
		qCode := uint64(pair.Q + 1)
		qSoFar, ok := inst.symAcc[pi]
		if !ok {
			qSoFar = f.False()
		}
		for slot := 0; slot < 3; slot++ {
			antecedent := g.Inputs[slot].Sel.EqualsLiterals(pCode)
			if slot == 2 {
				antecedent = append(append([]z.Lit(nil), antecedent...), isMaj)
			}
			f.AddConditional(antecedent, qSoFar)

			qHereAntecedent := g.Inputs[slot].Sel.EqualsLiterals(qCode)
			if slot == 2 {
				qHereAntecedent = append(append([]z.Lit(nil), qHereAntecedent...), isMaj)
			}
			qHere := f.AndAll(qHereAntecedent)
			qSoFar = f.Or2(qSoFar, qHere)
		}
		inst.symAcc[pi] = qSoFar
	}
}
