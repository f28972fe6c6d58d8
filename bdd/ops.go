package bdd

// Ite computes if-then-else(f,g,h), the single recursive primitive every
// other boolean combinator is built from. It recurses on the lowest
// (topmost) variable index among f, g, h and memoizes (f,g,h)->result in
// the manager's computed table.
func (m *Manager) Ite(f, g, h Ref) Ref {
	switch {
	case f == One:
		return g
	case f == Zero:
		return h
	case g == h:
		return g
	case g == One && h == Zero:
		return f
	}

	key := iteKey{f: f, g: g, h: h}
	if r, ok := m.iteCache[key]; ok {
		return r
	}

	v := m.topVar(f, g, h)
	f0, f1 := m.restrictVar(f, v, 0), m.restrictVar(f, v, 1)
	g0, g1 := m.restrictVar(g, v, 0), m.restrictVar(g, v, 1)
	h0, h1 := m.restrictVar(h, v, 0), m.restrictVar(h, v, 1)

	low := m.Ite(f0, g0, h0)
	high := m.Ite(f1, g1, h1)
	r := m.mk(v, low, high)
	m.iteCache[key] = r
	return r
}

// topVar returns the minimum variable index among f, g, h, treating a
// terminal as having no variable (skipped).
func (m *Manager) topVar(refs ...Ref) int {
	best := -1
	for _, r := range refs {
		if m.IsTerminal(r) {
			continue
		}
		v := m.Var(r)
		if best == -1 || v < best {
			best = v
		}
	}
	return best
}

// restrictVar returns the cofactor of r at variable v fixed to val (0 or
// 1): if r's top variable is v, descend into the matching child; if it
// comes after v, r does not depend on v and is returned as-is; otherwise
// both children are cofactored and the node is rebuilt.
func (m *Manager) restrictVar(r Ref, v int, val int) Ref {
	if m.IsTerminal(r) || m.Var(r) > v {
		return r
	}
	if m.Var(r) < v {
		return m.mk(m.Var(r), m.restrictVar(m.Low(r), v, val), m.restrictVar(m.High(r), v, val))
	}
	if val == 0 {
		return m.Low(r)
	}
	return m.High(r)
}

// And returns f∧g.
func (m *Manager) And(f, g Ref) Ref { return m.Ite(f, g, Zero) }

// Or returns f∨g.
func (m *Manager) Or(f, g Ref) Ref { return m.Ite(f, One, g) }

// Not returns ¬f.
func (m *Manager) Not(f Ref) Ref { return m.Ite(f, Zero, One) }

// Xor returns f⊕g.
func (m *Manager) Xor(f, g Ref) Ref { return m.Ite(f, m.Not(g), g) }

// Cof0 returns the Shannon cofactor of f at v=0.
func (m *Manager) Cof0(f Ref, v int) Ref { return m.restrictVar(f, v, 0) }

// Cof1 returns the Shannon cofactor of f at v=1.
func (m *Manager) Cof1(f Ref, v int) Ref { return m.restrictVar(f, v, 1) }

// varsOf collects the (sorted, deduplicated) set of decision variables
// reachable from r.
func (m *Manager) varsOf(r Ref, seen map[Ref]bool, out map[int]bool) {
	if m.IsTerminal(r) || seen[r] {
		return
	}
	seen[r] = true
	out[m.Var(r)] = true
	m.varsOf(m.Low(r), seen, out)
	m.varsOf(m.High(r), seen, out)
}

// ExistsVars returns ∃vars. f by successive cofactor-and-or elimination.
func (m *Manager) ExistsVars(f Ref, vars ...int) Ref {
	for _, v := range vars {
		f = m.Or(m.Cof0(f, v), m.Cof1(f, v))
	}
	return f
}

// ForallVars returns ∀vars. f by successive cofactor-and-and elimination.
func (m *Manager) ForallVars(f Ref, vars ...int) Ref {
	for _, v := range vars {
		f = m.And(m.Cof0(f, v), m.Cof1(f, v))
	}
	return f
}
