package ttable

import "math/bits"

// Cube is a product term over up to 64 variables, represented as (Bits,
// Mask): variable i is asserted positive iff Mask&Bits has bit i set,
// negative iff Mask has bit i set but Bits does not, and don't-care iff
// Mask does not have bit i set. The invariant Bits&^Mask == 0 (Bits ⊆
// Mask as sets) must hold for every Cube constructed via NewCube/With.
type Cube struct {
	Bits, Mask uint64
}

// NewCube returns the all-don't-care cube.
func NewCube() Cube { return Cube{} }

// With returns a copy of c with position i set to lit (0, 1, or -1 for
// don't-care).
func (c Cube) With(i int, lit int) Cube {
	bit := uint64(1) << uint(i)
	switch lit {
	case 0:
		return Cube{Bits: c.Bits &^ bit, Mask: c.Mask | bit}
	case 1:
		return Cube{Bits: c.Bits | bit, Mask: c.Mask | bit}
	default:
		return Cube{Bits: c.Bits &^ bit, Mask: c.Mask &^ bit}
	}
}

// Lit returns the literal at position i: 0, 1, or -1 for don't-care.
func (c Cube) Lit(i int) int {
	bit := uint64(1) << uint(i)
	if c.Mask&bit == 0 {
		return -1
	}
	if c.Bits&bit != 0 {
		return 1
	}
	return 0
}

// LiteralCount returns the number of asserted (non-don't-care) literals.
func (c Cube) LiteralCount() int { return bits.OnesCount64(c.Mask) }

// Positions returns the bitmask of positions at which c and other differ
// (differing literal value, or one don't-care and the other not).
func (c Cube) Positions(other Cube) uint64 {
	return (c.Bits ^ other.Bits) | (c.Mask ^ other.Mask)
}

// Distance returns the Hamming weight of Positions: the number of
// variables at which the two cubes disagree. Distance 0 means equal
// cubes; distance 1 means one absorbs the other (see Merge); distances
// 2, 3, 4 admit EXORLINK reshaping.
func (c Cube) Distance(other Cube) int {
	return bits.OnesCount64(c.Positions(other))
}

// Change implements §4.A `change(c1,c2,k)`: modifies position k of c1 to
// converge its literal toward c2's. "--"→c2's value, opposing
// values→don't-care, equal don't-care→c2's value (a no-op when already
// equal). A generic convergence operator distinct from Merge's XOR-
// absorption semantics below; the cube store's distance-1 insertion uses
// Merge, not Change.
func Change(c1, c2 Cube, k int) Cube {
	l1, l2 := c1.Lit(k), c2.Lit(k)
	switch {
	case l1 == -1:
		return c1.With(k, l2)
	case l2 == -1:
		return c1.With(k, -1)
	case l1 != l2:
		return c1.With(k, -1)
	default:
		return c1.With(k, l2)
	}
}

// Merge implements the distance-1 absorption rule used at cube-store
// insertion (§4.F): two values combine into don't-care, a don't-care and
// a value combine into the opposite value at the one differing position.
// Requires Distance(c1,c2) == 1 and pos to be that one differing
// position; returns c1 with position pos updated to absorb c2 (call as
// Merge(stored, incoming, pos) to update the stored cube in place).
func Merge(c1, c2 Cube, pos int) Cube {
	cbits := ^c1.Bits & ^c2.Bits
	cmask := c1.Mask ^ c2.Mask
	p := uint64(1) << uint(pos)
	return Cube{
		Bits: c1.Bits ^ ((cbits & p) ^ c1.Bits&p),
		Mask: c1.Mask ^ ((cmask & p) ^ c1.Mask&p),
	}
}
