package satenc

import (
	"github.com/irifrance/gini"
	"github.com/irifrance/gini/z"
)

// Status is the outcome of a Solve call.
type Status int

const (
	// Unknown means the solver could not decide within its budget.
	Unknown Status = iota
	// Sat means the assumptions are satisfiable; Value is meaningful.
	Sat
	// Unsat means the assumptions are unsatisfiable.
	Unsat
)

// BitVector is a fixed-width vector of literals encoding an unsigned
// integer in little-endian bit order (lits[0] is the LSB), used for
// exact's sel_{g,i} selector fields (§4.E) where gini's plain-CNF
// interface has no native bit-vector theory.
type BitVector struct {
	Lits []z.Lit
}

// Formula wraps one incremental gini solver instance together with the
// running variable counter ("sid" in §3's SAT-formula data model).
type Formula struct {
	solver  *gini.Gini
	nextID  int
	trueLit z.Lit
}

// NewFormula creates an empty formula with a fresh gini solver.
func NewFormula() *Formula {
	return &Formula{solver: gini.New(), nextID: 1}
}
