package unate

import "github.com/lsynth/lsynth/bdd"

type pairKey struct{ a, b bdd.Ref }

// compare orders two BDD nodes by implication: LT means a implies b,
// GT means b implies a, EQ means they're the same node, Incomparable
// means neither implication holds. It recurses on whichever node tests
// the higher-priority variable, treating the other side as unchanged
// across that variable's two branches — the same top-variable alignment
// bdd.Manager.Ite uses internally.
func compare(m *bdd.Manager, a, b bdd.Ref, memo map[pairKey]Verdict) Verdict {
	key := pairKey{a, b}
	if v, ok := memo[key]; ok {
		return v
	}

	v := compareUncached(m, a, b, memo)
	memo[key] = v
	return v
}

func compareUncached(m *bdd.Manager, a, b bdd.Ref, memo map[pairKey]Verdict) Verdict {
	switch {
	case a == b:
		return EQ
	case a == bdd.Zero:
		return LT
	case b == bdd.Zero:
		return GT
	case a == bdd.One:
		return GT
	case b == bdd.One:
		return LT
	}

	va, vb := m.Var(a), m.Var(b)
	top := va
	if vb < top {
		top = vb
	}

	aLo, aHi := a, a
	if va == top {
		aLo, aHi = m.Low(a), m.High(a)
	}
	bLo, bHi := b, b
	if vb == top {
		bLo, bHi = m.Low(b), m.High(b)
	}

	lo := compare(m, aLo, bLo, memo)
	hi := compare(m, aHi, bHi, memo)
	return combine(lo, hi)
}

// combine merges the two child verdicts from a top-variable recursion
// step. Verdicts that agree (or where one side is trivially EQ) carry
// through; a disagreement collapses to Incomparable.
func combine(lo, hi Verdict) Verdict {
	switch {
	case lo == hi:
		return lo
	case lo == EQ:
		return hi
	case hi == EQ:
		return lo
	default:
		return Incomparable
	}
}
