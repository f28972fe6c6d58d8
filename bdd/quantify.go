package bdd

// cubeVars walks a BDD cube g (a conjunction of positive-literal
// variables, as used to name a quantification set) and returns the
// variables it tests, by always following the branch leading to One.
func (m *Manager) cubeVars(g Ref) []int {
	var vars []int
	for !m.IsTerminal(g) {
		vars = append(vars, m.Var(g))
		if m.High(g) != Zero {
			g = m.High(g)
		} else {
			g = m.Low(g)
		}
	}
	return vars
}

// MakeCube returns the BDD conjunction of the given (positive) variables,
// suitable as the `g` quantification-set argument to Exists/Forall.
// Invariant #3 (§8): two calls with the same vars on the same manager
// return the same Ref, since mk's unique table is strong-canonical.
func (m *Manager) MakeCube(vars ...int) Ref {
	r := One
	for i := len(vars) - 1; i >= 0; i-- {
		r = m.mk(vars[i], Zero, r)
	}
	return r
}

// Exists returns ∃g. f where g names the quantified variables as a cube
// (§4.B "exists(f,g), forall(f,g) where g is the conjunction of
// quantified variables").
func (m *Manager) Exists(f, g Ref) Ref { return m.ExistsVars(f, m.cubeVars(g)...) }

// Forall returns ∀g. f, g as in Exists.
func (m *Manager) Forall(f, g Ref) Ref { return m.ForallVars(f, m.cubeVars(g)...) }

// Constrain implements the classical BDD generalized cofactor
// constrain(f,g): informally, f "steered" by g so that Constrain(f,g)
// agrees with f wherever g holds and is simplified (don't-care) where g
// does not. Recursion: constrain(f,0)=0 ... constrain(f,1)=f;
// constrain(1,g)=1, constrain(0,g)=0; otherwise split on the top variable
// of (f,g) and recurse on both branches, falling back to the other
// branch entirely if one cofactor of g is identically 0.
func (m *Manager) Constrain(f, g Ref) Ref {
	switch {
	case g == Zero:
		return Zero
	case g == One:
		return f
	case m.IsTerminal(f):
		return f
	}
	v := m.topVar(f, g)
	f0, f1 := m.restrictVar(f, v, 0), m.restrictVar(f, v, 1)
	g0, g1 := m.restrictVar(g, v, 0), m.restrictVar(g, v, 1)

	switch {
	case g0 == Zero:
		return m.Constrain(f1, g1)
	case g1 == Zero:
		return m.Constrain(f0, g0)
	default:
		return m.mk(v, m.Constrain(f0, g0), m.Constrain(f1, g1))
	}
}

// Restrict implements the classical generalized-cofactor restrict(f,g):
// like Constrain but additionally detects the "special case" where f
// does not depend on the top variable (both cofactors of f coincide), in
// which case that variable is quantified out of g (g0 ∨ g1) instead of
// introducing a split into the result (the "special case of the
// algorithm" named in §4.B).
func (m *Manager) Restrict(f, g Ref) Ref {
	switch {
	case g == Zero:
		return Zero
	case g == One:
		return f
	case m.IsTerminal(f):
		return f
	}
	v := m.topVar(f, g)
	f0, f1 := m.restrictVar(f, v, 0), m.restrictVar(f, v, 1)
	g0, g1 := m.restrictVar(g, v, 0), m.restrictVar(g, v, 1)

	switch {
	case g0 == Zero:
		return m.Restrict(f1, g1)
	case g1 == Zero:
		return m.Restrict(f0, g0)
	case f0 == f1:
		// special case: f does not depend on v, so v is dropped from g
		// rather than split on.
		return m.Restrict(f, m.Or(g0, g1))
	default:
		return m.mk(v, m.Restrict(f0, g0), m.Restrict(f1, g1))
	}
}
