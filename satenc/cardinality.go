package satenc

import "github.com/irifrance/gini/z"

// BuildSinzAtMost asserts "at most k of lits are true" using Sinz's
// sequential counter: auxiliary literals s[i][j] meaning "at least j of
// lits[0..i] are true", chained so that reaching s[i][k] together with a
// further true literal is forbidden.
//
// Complexity: O(n*k) auxiliary variables and clauses.
func (f *Formula) BuildSinzAtMost(lits []z.Lit, k int) error {
	n := len(lits)
	if k < 0 || k > n {
		return ErrCardinalityBounds
	}
	if k >= n {
		return nil // constraint is vacuous
	}
	if k == 0 {
		for _, l := range lits {
			f.AddClause(l.Not())
		}
		return nil
	}

	// s[i][j] for i in [0,n-2], j in [0,k-1] (0-indexed: j represents
	// "at least j+1 true among lits[0..i]").
	s := make([][]z.Lit, n-1)
	for i := range s {
		s[i] = make([]z.Lit, k)
		for j := range s[i] {
			s[i][j] = f.NewVar()
		}
	}

	// i = 0
	f.AddImplication(lits[0], s[0][0])
	for j := 1; j < k; j++ {
		f.AddClause(s[0][j].Not())
	}

	for i := 1; i < n-1; i++ {
		f.AddImplication(lits[i], s[i][0])
		f.AddImplication(s[i-1][0], s[i][0])
		for j := 1; j < k; j++ {
			f.AddImplication(s[i-1][j], s[i][j])
			// lits[i] ∧ s[i-1][j-1] ⇒ s[i][j]
			f.AddClause(lits[i].Not(), s[i-1][j-1].Not(), s[i][j])
		}
		// lits[i] ∧ s[i-1][k-1] ⇒ false (would exceed k)
		f.AddClause(lits[i].Not(), s[i-1][k-1].Not())
	}

	// last literal: lits[n-1] ∧ s[n-2][k-1] ⇒ false
	f.AddClause(lits[n-1].Not(), s[n-2][k-1].Not())
	return nil
}

// BuildSinzAtLeast asserts "at least k of lits are true" by applying
// BuildSinzAtMost to the negated literals for (n-k).
func (f *Formula) BuildSinzAtLeast(lits []z.Lit, k int) error {
	n := len(lits)
	if k < 0 || k > n {
		return ErrCardinalityBounds
	}
	neg := make([]z.Lit, n)
	for i, l := range lits {
		neg[i] = l.Not()
	}
	return f.BuildSinzAtMost(neg, n-k)
}

// BuildSinzExactly asserts "exactly k of lits are true".
func (f *Formula) BuildSinzExactly(lits []z.Lit, k int) error {
	if err := f.BuildSinzAtMost(lits, k); err != nil {
		return err
	}
	return f.BuildSinzAtLeast(lits, k)
}

// comparator encodes hi = a∨b, lo = a∧b as two fresh literals with a
// full Tseitin definition, the building block of the pairwise sorting
// network used as an alternative to Sinz counters when the caller needs
// non-monotone weight probes (§4.H's "variant uses a pairwise sorter
// network instead of Sinz counters").
func (f *Formula) comparator(a, b z.Lit) (hi, lo z.Lit) {
	hi = f.NewVar()
	lo = f.NewVar()
	// hi <=> a∨b
	f.AddClause(hi.Not(), a, b)
	f.AddClause(a.Not(), hi)
	f.AddClause(b.Not(), hi)
	// lo <=> a∧b
	f.AddClause(lo, a.Not(), b.Not())
	f.AddClause(lo.Not(), a)
	f.AddClause(lo.Not(), b)
	return hi, lo
}

// BuildPairwiseAtMost asserts "at most k of lits are true" via an
// odd-even transposition sorting network: lits are sorted (descending)
// into a fresh output vector y, and y[k] is forced false.
//
// Complexity: O(n^2) comparators (a straightforward transposition
// network, not the O(n log^2 n) bitonic merge — adequate at the small n
// this module's gate-selection encodings use).
func (f *Formula) BuildPairwiseAtMost(lits []z.Lit, k int) error {
	n := len(lits)
	if k < 0 || k > n {
		return ErrCardinalityBounds
	}
	if k >= n {
		return nil
	}
	row := append([]z.Lit(nil), lits...)
	for pass := 0; pass < n; pass++ {
		start := pass % 2
		next := append([]z.Lit(nil), row...)
		for i := start; i+1 < n; i += 2 {
			hi, lo := f.comparator(row[i], row[i+1])
			next[i] = hi
			next[i+1] = lo
		}
		row = next
	}
	f.AddClause(row[k].Not())
	return nil
}
