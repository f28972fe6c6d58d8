package satenc

import "github.com/irifrance/gini/z"

// EqualsLiterals returns, for each bit of bv, the literal asserting that
// bit equals the corresponding bit of val: bv.Lits[i] if bit i of val is
// 1, its negation otherwise. The conjunction of the returned literals is
// true iff bv == val; used as the antecedent of a per-value definitional
// implication (exact's "sel==k ⇒ in == neg XOR value_at_k_for_row_j").
func (bv BitVector) EqualsLiterals(val uint64) []z.Lit {
	out := make([]z.Lit, len(bv.Lits))
	for i, l := range bv.Lits {
		if (val>>uint(i))&1 == 1 {
			out[i] = l
		} else {
			out[i] = l.Not()
		}
	}
	return out
}

// AddConditionalIff asserts that, whenever every literal in antecedent
// holds, a and b have the same truth value: (¬a1∨...∨¬an∨¬a∨b) and
// (¬a1∨...∨¬an∨a∨¬b).
func (f *Formula) AddConditionalIff(antecedent []z.Lit, a, b z.Lit) {
	neg := make([]z.Lit, len(antecedent))
	for i, l := range antecedent {
		neg[i] = l.Not()
	}
	f.AddClause(append(append([]z.Lit(nil), neg...), a.Not(), b)...)
	f.AddClause(append(append([]z.Lit(nil), neg...), a, b.Not())...)
}

// AddConditional asserts that whenever every literal in antecedent
// holds, consequent also holds: (¬a1∨...∨¬an∨consequent).
func (f *Formula) AddConditional(antecedent []z.Lit, consequent z.Lit) {
	neg := make([]z.Lit, len(antecedent))
	for i, l := range antecedent {
		neg[i] = l.Not()
	}
	f.AddClause(append(neg, consequent)...)
}
