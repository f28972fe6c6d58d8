package ttable

import "github.com/bits-and-blooms/bitset"

// Not returns ¬f.
func (f TT) Not() TT {
	return TT{n: f.n, bits: f.bits.Complement()}
}

// And returns f∧g. Panics if f and g have different variable counts; as
// with the rest of the boolean algebra this is a programmer error, not a
// recoverable condition (callers align widths beforehand, e.g. via Pad).
func (f TT) And(g TT) TT {
	f.requireSameWidth(g)
	return TT{n: f.n, bits: f.bits.Intersection(g.bits)}
}

// Or returns f∨g.
func (f TT) Or(g TT) TT {
	f.requireSameWidth(g)
	return TT{n: f.n, bits: f.bits.Union(g.bits)}
}

// Xor returns f⊕g.
func (f TT) Xor(g TT) TT {
	f.requireSameWidth(g)
	return TT{n: f.n, bits: f.bits.SymmetricDifference(g.bits)}
}

func (f TT) requireSameWidth(g TT) {
	if f.n != g.n {
		panic(ErrWidthMismatch)
	}
}

// rowHasVarHigh reports whether variable i is 1 in the given row index;
// Cofactor uses it to pick each row's source row.
func rowHasVarHigh(i int, row uint) bool {
	return (row>>uint(i))&1 == 1
}

// Cofactor returns f restricted to x_i = val (0 or 1): the result still
// has n variables, but is constant in x_i (every row pair differing only
// in bit i carries the same value).
func (f TT) Cofactor(i int, val int) TT {
	f.checkVar(i)
	out := bitset.New(f.Size())
	for row := uint(0); row < f.Size(); row++ {
		src := row
		if rowHasVarHigh(i, row) != (val == 1) {
			src = row ^ (uint(1) << uint(i))
		}
		out.SetTo(row, f.bits.Test(src))
	}
	return TT{n: f.n, bits: out}
}

// checkVar panics with ErrVarOutOfRange if i is not a valid variable index.
func (f TT) checkVar(i int) {
	if i < 0 || i >= f.n {
		panic(ErrVarOutOfRange)
	}
}

// Exist returns ∃x_i. f = cof0(f,i) ∨ cof1(f,i).
func (f TT) Exist(i int) TT {
	return f.Cofactor(i, 0).Or(f.Cofactor(i, 1))
}

// ForAll returns ∀x_i. f = cof0(f,i) ∧ cof1(f,i).
func (f TT) ForAll(i int) TT {
	return f.Cofactor(i, 0).And(f.Cofactor(i, 1))
}

// Flip negates variable i in place (semantically): f'(x) = f(x with x_i inverted).
func (f TT) Flip(i int) TT {
	f.checkVar(i)
	out := bitset.New(f.Size())
	mask := uint(1) << uint(i)
	for row := uint(0); row < f.Size(); row++ {
		out.SetTo(row, f.bits.Test(row^mask))
	}
	return TT{n: f.n, bits: out}
}

// Permute swaps variables i and j (by swapping their cofactors row-wise).
func (f TT) Permute(i, j int) TT {
	f.checkVar(i)
	f.checkVar(j)
	if i == j {
		return f.Clone()
	}
	out := bitset.New(f.Size())
	mi, mj := uint(1)<<uint(i), uint(1)<<uint(j)
	for row := uint(0); row < f.Size(); row++ {
		bi := (row & mi) != 0
		bj := (row & mj) != 0
		src := row
		if bi != bj {
			src ^= mi | mj
		}
		out.SetTo(row, f.bits.Test(src))
	}
	return TT{n: f.n, bits: out}
}

// Support returns a bitmask over [0,n) with bit i set iff f actually
// depends on variable i (cof0(f,i) != cof1(f,i)).
func (f TT) Support() uint64 {
	var mask uint64
	for i := 0; i < f.n; i++ {
		if !f.Cofactor(i, 0).Equal(f.Cofactor(i, 1)) {
			mask |= 1 << uint(i)
		}
	}
	return mask
}

// Minbase compacts f by moving every supported variable to the low
// indices (in ascending original order) and shrinking the width to the
// number of supported variables. Returns the compacted TT and the
// permutation applied: result variable k corresponds to original
// variable perm[k].
func (f TT) Minbase() (TT, []int) {
	support := f.Support()
	var perm []int
	for i := 0; i < f.n; i++ {
		if support&(1<<uint(i)) != 0 {
			perm = append(perm, i)
		}
	}
	g := New(len(perm))
	for row := uint(0); row < g.Size(); row++ {
		var src uint
		for k, orig := range perm {
			if row&(1<<uint(k)) != 0 {
				src |= 1 << uint(orig)
			}
		}
		g.bits.SetTo(row, f.bits.Test(src))
	}
	return g, perm
}

// Shrink returns f truncated to its first `to` variables (the invariant
// of §3 "Shrink"): a new table over `to` variables holding f's low 2^to
// rows. When to >= NumVars it returns a clone of f.
func (f TT) Shrink(to int) TT {
	if to >= f.n {
		return f.Clone()
	}
	out := bitset.New(uint(1) << uint(to))
	for row := uint(0); row < out.Len(); row++ {
		out.SetTo(row, f.bits.Test(row))
	}
	return TT{n: to, bits: out}
}
