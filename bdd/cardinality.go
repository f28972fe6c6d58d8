package bdd

// eqKey memoizes make_eq's (position, remaining-count) recursion: the
// BDD for "exactly k of vars[pos:] are 1" depends only on how many
// variables are left and how many of them must still be set.
type eqKey struct {
	pos, k int
}

// MakeEq builds the BDD over vars (tested in the given order) that is 1
// exactly when precisely k of them are 1 (§4.B "make_eq(vars,k)"). The
// recursion is memoized per Manager call since the same (pos,k) subcount
// recurs across many branches of the variable list.
func (m *Manager) MakeEq(vars []int, k int) Ref {
	cache := make(map[eqKey]Ref)
	return m.makeEq(vars, 0, k, cache)
}

func (m *Manager) makeEq(vars []int, pos, k int, cache map[eqKey]Ref) Ref {
	remaining := len(vars) - pos
	if k < 0 || k > remaining {
		return Zero
	}
	if remaining == 0 {
		if k == 0 {
			return One
		}
		return Zero
	}
	key := eqKey{pos: pos, k: k}
	if r, ok := cache[key]; ok {
		return r
	}
	low := m.makeEq(vars, pos+1, k, cache)
	high := m.makeEq(vars, pos+1, k-1, cache)
	r := m.mk(vars[pos], low, high)
	cache[key] = r
	return r
}

// SatCount returns the number of satisfying assignments of f over a
// variable space of nVars levels (0..nVars-1), memoized in the
// manager's countCache (§4.B "round" family weighs simplification
// candidates by this count).
func (m *Manager) SatCount(f Ref, nVars int) float64 {
	return m.satCount(f, nVars)
}

func (m *Manager) satCount(f Ref, nVars int) float64 {
	if f == Zero {
		return 0
	}
	if f == One {
		return pow2(nVars)
	}
	if c, ok := m.countCache[f]; ok {
		return c
	}
	// Low and High do not depend on f's variable, so each child's full
	// count covers both values of it; f keeps exactly half of each.
	c := (m.satCount(m.Low(f), nVars) + m.satCount(m.High(f), nVars)) / 2
	m.countCache[f] = c
	return c
}

// levelsBelow counts the variable levels strictly between parent level v
// and child c, which is the number of free (don't-care) variables the
// reduced diagram skipped by eliding a redundant test.
func (m *Manager) levelsBelow(v int, c Ref, nVars int) int {
	if m.IsTerminal(c) {
		return nVars - v - 1
	}
	return m.Var(c) - v - 1
}

func pow2(n int) float64 {
	r := 1.0
	for i := 0; i < n; i++ {
		r *= 2
	}
	return r
}

// RoundDown returns an approximation of f obtained by replacing, at each
// node at or below the given level whose low child has no more
// satisfying assignments than its high child, the node with its low
// child — a one-sided simplification that only removes minterms, never
// adds them (§4.B "round_down"). nVars is the total variable count
// SatCount needs to weigh skipped (don't-care) levels correctly.
func (m *Manager) RoundDown(f Ref, level, nVars int) Ref {
	return m.roundDir(f, level, nVars, func(lowCount, highCount float64) bool { return lowCount <= highCount })
}

// RoundUp is the dual of RoundDown: it replaces the lighter child with
// its sibling (adding minterms) rather than keeping the strictly smaller
// side, ensuring the result implies no fewer assignments than f (§4.B
// "round_up").
func (m *Manager) RoundUp(f Ref, level, nVars int) Ref {
	return m.roundDir(f, level, nVars, func(lowCount, highCount float64) bool { return lowCount >= highCount })
}

func (m *Manager) roundDir(f Ref, level, nVars int, keepLow func(lowCount, highCount float64) bool) Ref {
	if m.IsTerminal(f) {
		return f
	}
	if m.Var(f) < level {
		lo := m.roundDir(m.Low(f), level, nVars, keepLow)
		hi := m.roundDir(m.High(f), level, nVars, keepLow)
		return m.mk(m.Var(f), lo, hi)
	}
	lowCount := m.satCount(m.Low(f), nVars)
	highCount := m.satCount(m.High(f), nVars)
	if keepLow(lowCount, highCount) {
		return m.Low(f)
	}
	return m.High(f)
}

// Round picks RoundDown or RoundUp according to which of f's own two
// top-level branch weights is larger, biasing toward the cheaper
// (lower-count) simplification (§4.B "round").
func (m *Manager) Round(f Ref, level, nVars int) Ref {
	if m.IsTerminal(f) {
		return f
	}
	lowCount := m.satCount(m.Low(f), nVars)
	highCount := m.satCount(m.High(f), nVars)
	if lowCount <= highCount {
		return m.RoundDown(f, level, nVars)
	}
	return m.RoundUp(f, level, nVars)
}

// Characteristic builds χ(x,y) = f(x) ⟺ y, the characteristic function
// relating the nInputs variables f is defined over to one fresh output
// variable y (§4.B "characteristic(f; inputs_first)"). When inputsFirst
// is true, y is numbered to sit immediately after x in the variable
// order (level nInputs); otherwise y is placed at level yLevel, ahead of
// or interleaved with x as the caller's numbering of x dictates. Callers
// building a multi-output characteristic relation invoke this once per
// output bit, each with its own y level, and conjoin the results.
func (m *Manager) Characteristic(f Ref, nInputs int, yLevel int, inputsFirst bool) Ref {
	if inputsFirst {
		yLevel = nInputs
	}
	y := m.MakeVar(yLevel)
	return m.Xor(m.Not(f), y) // f<=>y == not(f) xor y
}
