package satenc

import (
	"github.com/irifrance/gini/z"
)

// NewVar allocates a fresh Boolean variable and returns its positive literal.
func (f *Formula) NewVar() z.Lit {
	v := z.Var(f.nextID)
	f.nextID++
	return v.Pos()
}

// NewBitVector allocates width fresh Boolean variables as a little-endian
// bit-vector, for fields like exact's sel_{g,i} (§4.E) that need more
// than one bit of selection.
func (f *Formula) NewBitVector(width int) (BitVector, error) {
	if width <= 0 {
		return BitVector{}, ErrNegativeWidth
	}
	lits := make([]z.Lit, width)
	for i := range lits {
		lits[i] = f.NewVar()
	}
	return BitVector{Lits: lits}, nil
}

// AddClause adds a disjunctive clause over the given literals.
func (f *Formula) AddClause(lits ...z.Lit) {
	for _, l := range lits {
		f.solver.Add(l)
	}
	f.solver.Add(z.LitNull)
}

// AddImplication adds the clause (¬a ∨ b), i.e. a ⇒ b.
func (f *Formula) AddImplication(a, b z.Lit) {
	f.AddClause(a.Not(), b)
}

// AssertEqualsConstant constrains bv to equal the unsigned value val,
// asserting each bit as a unit clause — used to pin exact's type_g tag
// or a fixed selector value.
func (f *Formula) AssertEqualsConstant(bv BitVector, val uint64) {
	for i, l := range bv.Lits {
		bit := (val >> uint(i)) & 1
		if bit == 1 {
			f.AddClause(l)
		} else {
			f.AddClause(l.Not())
		}
	}
}

// AssertLessThanConstant forbids bv from representing any value >= bound,
// the "upper bound asserted" range clause §4.E's sel_{g,i} fields need
// (width = ceil(log2(n+k+2)) generally covers more values than are
// legal selectors, so illegal high values must be excluded explicitly).
// It works by forbidding every value v in [bound, 2^width) via one
// clause per forbidden value that blocks its exact bit pattern.
func (f *Formula) AssertLessThanConstant(bv BitVector, bound uint64) {
	width := uint(len(bv.Lits))
	limit := uint64(1) << width
	for v := bound; v < limit; v++ {
		lits := make([]z.Lit, 0, width)
		for i := uint(0); i < width; i++ {
			bit := (v >> i) & 1
			if bit == 1 {
				lits = append(lits, bv.Lits[i].Not())
			} else {
				lits = append(lits, bv.Lits[i])
			}
		}
		f.AddClause(lits...)
	}
}

// Assume sets the solving assumptions for the next Solve call.
func (f *Formula) Assume(lits ...z.Lit) {
	f.solver.Assume(lits...)
}

// Solve runs the solver under the currently-set assumptions.
func (f *Formula) Solve() Status {
	switch f.solver.Solve() {
	case 1:
		return Sat
	case -1:
		return Unsat
	default:
		return Unknown
	}
}

// Value reports the model value of lit after a Sat Solve call.
func (f *Formula) Value(lit z.Lit) bool {
	return f.solver.Value(lit)
}

// BitVectorValue decodes bv's unsigned value from the current model.
func (f *Formula) BitVectorValue(bv BitVector) uint64 {
	var v uint64
	for i, l := range bv.Lits {
		if f.Value(l) {
			v |= uint64(1) << uint(i)
		}
	}
	return v
}
