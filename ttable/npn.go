package ttable

// NPNTransform records how Canonicalize mapped some function f onto its
// NPN-canonical representative canon: canon(x) = OutputNeg XOR f(z),
// where z_{Perm[k]} = x_k XOR InputNeg's bit k, for every k. Equivalently,
// to recover f(L) for original leaf values L (indexed by f's own
// variable order) from a network realizing canon, feed canon's input
// port k with L[Perm[k]] XOR (InputNeg bit k), then XOR the network's
// output with OutputNeg.
type NPNTransform struct {
	Perm      []int
	InputNeg  uint64
	OutputNeg bool
}

// Canonicalize finds f's NPN-canonical representative: the lexically
// smallest truth table (bits read row 0 upward, packed into a uint64)
// reachable from f by permuting variables, negating any subset of them,
// and/or negating the output. Two functions share a canonical form iff
// they are NPN-equivalent, which is exactly the equivalence functional
// hashing (§4.D) groups cut cones by before consulting its minimum-XMG
// cache.
//
// Supports at most 6 variables (ErrTooManyVars otherwise): the search is
// brute force over n! permutations times 2^n input negations times 2
// output negations, which is only cheap at the cut-leaf scale (§4.C's
// default K is 6) this is meant to run at.
func Canonicalize(f TT) (TT, NPNTransform, error) {
	n := f.NumVars()
	if n > 6 {
		return TT{}, NPNTransform{}, ErrTooManyVars
	}

	best := f
	bestVal := packed(f)
	bestT := NPNTransform{Perm: identityPerm(n)}

	perm := identityPerm(n)
	permutations(perm, 0, func(p []int) {
		g := applyPerm(f, p)
		for negMask := uint64(0); negMask < uint64(1)<<uint(n); negMask++ {
			h := g
			for i := 0; i < n; i++ {
				if negMask&(uint64(1)<<uint(i)) != 0 {
					h = h.Flip(i)
				}
			}
			for _, outNeg := range [2]bool{false, true} {
				cand := h
				if outNeg {
					cand = cand.Not()
				}
				if v := packed(cand); v < bestVal {
					bestVal = v
					best = cand
					bestT = NPNTransform{
						Perm:      append([]int(nil), p...),
						InputNeg:  negMask,
						OutputNeg: outNeg,
					}
				}
			}
		}
	})
	return best, bestT, nil
}

// packed reads f's (at most 64) rows into a uint64, bit i holding row i —
// a cheap, total order used only to pick a deterministic canonical
// representative among NPN-equivalent candidates.
func packed(f TT) uint64 {
	var v uint64
	for i := uint(0); i < f.Size(); i++ {
		if f.Bit(i) {
			v |= uint64(1) << i
		}
	}
	return v
}

// applyPerm returns g such that g's variable k plays the role of f's
// variable p[k]: g(x) = f(z) where z's bit p[k] equals x's bit k.
func applyPerm(f TT, p []int) TT {
	n := f.NumVars()
	out := New(n)
	for row := uint(0); row < f.Size(); row++ {
		var src uint
		for k := 0; k < n; k++ {
			if row&(uint(1)<<uint(k)) != 0 {
				src |= uint(1) << uint(p[k])
			}
		}
		out = out.SetBit(row, f.Bit(src))
	}
	return out
}

func identityPerm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return p
}

// permutations visits every permutation of a[k:] in place via Heap-style
// recursive swapping, calling visit once per full permutation of a.
func permutations(a []int, k int, visit func([]int)) {
	if k == len(a) {
		visit(a)
		return
	}
	for i := k; i < len(a); i++ {
		a[k], a[i] = a[i], a[k]
		permutations(a, k+1, visit)
		a[k], a[i] = a[i], a[k]
	}
}
