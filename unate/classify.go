package unate

import "github.com/lsynth/lsynth/bdd"

// Classify walks every node reachable from f once and classifies f's
// dependence on each of numVars variables. A variable is checked at
// every node that tests it (not just at the root), since distinct nodes
// sharing that level may disagree — agreement across all of them is
// required for a function-wide unate verdict (§4.B).
func Classify(m *bdd.Manager, f bdd.Ref, numVars int) ([]Class, error) {
	if m == nil {
		return nil, ErrNilManager
	}

	sawPos := make([]bool, numVars)
	sawNeg := make([]bool, numVars)
	sawOther := make([]bool, numVars)
	sawAny := make([]bool, numVars)

	memo := make(map[pairKey]Verdict)
	seen := make(map[bdd.Ref]bool)

	var walk func(r bdd.Ref)
	walk = func(r bdd.Ref) {
		if m.IsTerminal(r) || seen[r] {
			return
		}
		seen[r] = true

		v := m.Var(r)
		if v >= 0 && v < numVars {
			sawAny[v] = true
			switch compare(m, m.High(r), m.Low(r), memo) {
			case GT:
				sawPos[v] = true
			case LT:
				sawNeg[v] = true
			case EQ:
				// unreachable in a reduced manager: mk never creates a
				// node with low == high, and distinct refs compare EQ
				// only via the a == b base case.
			default:
				sawOther[v] = true
			}
		}

		walk(m.Low(r))
		walk(m.High(r))
	}
	walk(f)

	classes := make([]Class, numVars)
	for v := 0; v < numVars; v++ {
		switch {
		case !sawAny[v]:
			classes[v] = Independent
		case sawOther[v] || (sawPos[v] && sawNeg[v]):
			classes[v] = Binate
		case sawPos[v]:
			classes[v] = PositiveUnate
		default:
			classes[v] = NegativeUnate
		}
	}
	return classes, nil
}
