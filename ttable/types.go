package ttable

import (
	"github.com/bits-and-blooms/bitset"
)

// TT is a fixed-width truth table over n boolean variables x0..x_{n-1},
// stored as a 2^n-bit vector: bit i holds f's output on the assignment
// whose bit j equals (i>>j)&1. TT is a value type — Clone before mutating
// in place; the arithmetic methods (And/Or/Xor/...) always return a new TT.
type TT struct {
	n    int
	bits *bitset.BitSet
}

// NumVars reports the number of variables n.
func (f TT) NumVars() int { return f.n }

// Size reports the row count 2^n.
func (f TT) Size() uint { return uint(1) << uint(f.n) }

// New returns the all-zero truth table over n variables.
func New(n int) TT {
	return TT{n: n, bits: bitset.New(uint(1) << uint(n))}
}

// Bit reports output row i (0 <= i < Size()).
func (f TT) Bit(i uint) bool { return f.bits.Test(i) }

// SetBit returns a copy of f with row i set to v.
func (f TT) SetBit(i uint, v bool) TT {
	g := f.Clone()
	g.bits.SetTo(i, v)
	return g
}

// Clone returns an independent copy of f.
func (f TT) Clone() TT {
	return TT{n: f.n, bits: f.bits.Clone()}
}

// Equal reports whether f and g compute the same function (same n, same bits).
func (f TT) Equal(g TT) bool {
	return f.n == g.n && f.bits.Equal(g.bits)
}
