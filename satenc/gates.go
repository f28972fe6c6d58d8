package satenc

import "github.com/irifrance/gini/z"

// True returns a literal asserted true for the lifetime of the formula,
// lazily creating and pinning it on first use.
func (f *Formula) True() z.Lit {
	if f.trueLit == z.LitNull {
		f.trueLit = f.NewVar()
		f.AddClause(f.trueLit)
	}
	return f.trueLit
}

// False returns a literal asserted false for the lifetime of the formula.
func (f *Formula) False() z.Lit { return f.True().Not() }

// And2 returns a fresh literal g with the full two-direction definition
// g⟺a∧b (the same three-clause Tseitin shape as the pairwise sorter's
// comparator, generalized here for reuse by bit-vector comparators).
func (f *Formula) And2(a, b z.Lit) z.Lit {
	g := f.NewVar()
	f.AddClause(g.Not(), a)
	f.AddClause(g.Not(), b)
	f.AddClause(g, a.Not(), b.Not())
	return g
}

// Or2 returns a fresh literal g with g⟺a∨b.
func (f *Formula) Or2(a, b z.Lit) z.Lit {
	g := f.NewVar()
	f.AddClause(g, a.Not())
	f.AddClause(g, b.Not())
	f.AddClause(g.Not(), a, b)
	return g
}

// Xnor2 returns a fresh literal g with g⟺¬(a⊕b), i.e. g holds iff a==b.
func (f *Formula) Xnor2(a, b z.Lit) z.Lit {
	g := f.NewVar()
	f.AddClause(g.Not(), a.Not(), b)
	f.AddClause(g.Not(), a, b.Not())
	f.AddClause(g, a, b)
	f.AddClause(g, a.Not(), b.Not())
	return g
}

// AndAll folds And2 across lits, returning True() for an empty list and
// the lone literal unchanged for a singleton.
func (f *Formula) AndAll(lits []z.Lit) z.Lit {
	if len(lits) == 0 {
		return f.True()
	}
	acc := lits[0]
	for _, l := range lits[1:] {
		acc = f.And2(acc, l)
	}
	return acc
}

// OrAll folds Or2 across lits, returning False() for an empty list and
// the lone literal unchanged for a singleton.
func (f *Formula) OrAll(lits []z.Lit) z.Lit {
	if len(lits) == 0 {
		return f.False()
	}
	acc := lits[0]
	for _, l := range lits[1:] {
		acc = f.Or2(acc, l)
	}
	return acc
}

// Xor2 returns a fresh literal g with g⟺a⊕b.
func (f *Formula) Xor2(a, b z.Lit) z.Lit { return f.Xnor2(a, b).Not() }

// Maj3 returns a fresh literal g with g⟺ the majority of a, b, c.
func (f *Formula) Maj3(a, b, c z.Lit) z.Lit {
	ab := f.And2(a, b)
	bc := f.And2(b, c)
	ac := f.And2(a, c)
	return f.Or2(f.Or2(ab, bc), ac)
}

// LessThan returns a fresh literal asserting a < b as unsigned integers
// over equal-width bit-vectors, via the standard lexicographic-from-MSB
// comparator: at each bit (from the most significant down), the pair is
// "less" if every higher bit has been equal so far and this bit is 0 in
// a, 1 in b.
func (f *Formula) LessThan(a, b BitVector) z.Lit {
	width := len(a.Lits)
	eqPrefix := f.True()
	lt := f.False()
	for i := width - 1; i >= 0; i-- {
		ai, bi := a.Lits[i], b.Lits[i]
		bitLt := f.And2(ai.Not(), bi)
		term := f.And2(eqPrefix, bitLt)
		lt = f.Or2(lt, term)
		bitEq := f.Xnor2(ai, bi)
		eqPrefix = f.And2(eqPrefix, bitEq)
	}
	return lt
}
