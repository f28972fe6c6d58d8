package ttable

// exorlinkGroups2/3/4 are the fixed group tables of §9: for distance d,
// group g is a d×d matrix of codes {0=keep from this cube, 1=take from
// the other cube, 2=take the value that appears in neither}. Carried
// verbatim from the original cirkit `exorcismq_manager::cube_groups`
// constant (see DESIGN.md and SPEC_FULL.md §C) rather than re-derived.
var exorlinkGroups2 = [2][4]int{
	{2, 0, 1, 2},
	{0, 2, 2, 1},
}

var exorlinkGroups3 = [6][9]int{
	{2, 0, 0, 1, 2, 0, 1, 1, 2},
	{2, 0, 0, 1, 0, 2, 1, 2, 1},
	{0, 2, 0, 2, 1, 0, 1, 1, 2},
	{0, 2, 0, 0, 1, 2, 2, 1, 1},
	{0, 0, 2, 2, 0, 1, 1, 2, 1},
	{0, 0, 2, 0, 2, 1, 2, 1, 1},
}

var exorlinkGroups4 = [24][16]int{
	{2, 0, 0, 0, 1, 2, 0, 0, 1, 1, 2, 0, 1, 1, 1, 2},
	{2, 0, 0, 0, 1, 2, 0, 0, 1, 1, 0, 2, 1, 1, 2, 1},
	{2, 0, 0, 0, 1, 0, 2, 0, 1, 2, 1, 0, 1, 1, 1, 2},
	{2, 0, 0, 0, 1, 0, 2, 0, 1, 0, 1, 2, 1, 2, 1, 1},
	{2, 0, 0, 0, 1, 0, 0, 2, 1, 2, 0, 1, 1, 1, 2, 1},
	{2, 0, 0, 0, 1, 0, 0, 2, 1, 0, 2, 1, 1, 2, 1, 1},
	{0, 2, 0, 0, 2, 1, 0, 0, 1, 1, 2, 0, 1, 1, 1, 2},
	{0, 2, 0, 0, 2, 1, 0, 0, 1, 1, 0, 2, 1, 1, 2, 1},
	{0, 2, 0, 0, 0, 1, 2, 0, 2, 1, 1, 0, 1, 1, 1, 2},
	{0, 2, 0, 0, 0, 1, 2, 0, 0, 1, 1, 2, 2, 1, 1, 1},
	{0, 2, 0, 0, 0, 1, 0, 2, 2, 1, 0, 1, 1, 1, 2, 1},
	{0, 2, 0, 0, 0, 1, 0, 2, 0, 1, 2, 1, 2, 1, 1, 1},
	{0, 0, 2, 0, 2, 0, 1, 0, 1, 2, 1, 0, 1, 1, 1, 2},
	{0, 0, 2, 0, 2, 0, 1, 0, 1, 0, 1, 2, 1, 2, 1, 1},
	{0, 0, 2, 0, 0, 2, 1, 0, 2, 1, 1, 0, 1, 1, 1, 2},
	{0, 0, 2, 0, 0, 2, 1, 0, 0, 1, 1, 2, 2, 1, 1, 1},
	{0, 0, 2, 0, 0, 0, 1, 2, 2, 0, 1, 1, 1, 2, 1, 1},
	{0, 0, 2, 0, 0, 0, 1, 2, 0, 2, 1, 1, 2, 1, 1, 1},
	{0, 0, 0, 2, 2, 0, 0, 1, 1, 2, 0, 1, 1, 1, 2, 1},
	{0, 0, 0, 2, 2, 0, 0, 1, 1, 0, 2, 1, 1, 2, 1, 1},
	{0, 0, 0, 2, 0, 2, 0, 1, 2, 1, 0, 1, 1, 1, 2, 1},
	{0, 0, 0, 2, 0, 2, 0, 1, 0, 1, 2, 1, 2, 1, 1, 1},
	{0, 0, 0, 2, 0, 0, 2, 1, 2, 0, 1, 1, 1, 2, 1, 1},
	{0, 0, 0, 2, 0, 0, 2, 1, 0, 2, 1, 1, 2, 1, 1, 1},
}

// GroupCount reports how many EXORLINK groups are defined for distance d
// (d must be 2, 3, or 4).
func GroupCount(d int) int {
	switch d {
	case 2:
		return len(exorlinkGroups2)
	case 3:
		return len(exorlinkGroups3)
	case 4:
		return len(exorlinkGroups4)
	default:
		return 0
	}
}

func groupRow(d, group int) []int {
	switch d {
	case 2:
		return exorlinkGroups2[group][:]
	case 3:
		return exorlinkGroups3[group][:]
	case 4:
		return exorlinkGroups4[group][:]
	default:
		panic("ttable: exorlink distance must be 2, 3 or 4")
	}
}

// Exorlink reshapes c1 and c2 (at the given Hamming distance d, over the
// positions mask `pos`, which must equal c1.Positions(c2) and have
// exactly d bits set) into d new cubes using groupIdx's code table,
// following the identity c1⊕c2 = res[0]⊕res[1]⊕...⊕res[d-1] (§3, §9).
//
// For each output cube i and each of the d differing positions (taken in
// ascending bit order), the code selects: 0 = keep c1's literal, 1 = take
// c2's literal, 2 = take the literal that is in neither (computed from
// the cubes' common don't-care complement).
func Exorlink(c1, c2 Cube, d int, pos uint64, groupIdx int) []Cube {
	group := groupRow(d, groupIdx)
	cbits := ^c1.Bits & ^c2.Bits
	cmask := c1.Mask ^ c2.Mask

	res := make([]Cube, d)
	for i := 0; i < d; i++ {
		tbits, tmask := c1.Bits, c1.Mask
		tpos := pos
		for j := 0; j < d; j++ {
			p := tpos & (-tpos)
			tpos &= tpos - 1

			switch group[i*d+j] {
			case 0:
				// keep c1's literal at this position.
			case 1:
				tbits ^= ((c2.Bits & p) ^ tbits) & p
				tmask ^= ((c2.Mask & p) ^ tmask) & p
			case 2:
				tbits ^= ((cbits & p) ^ tbits) & p
				tmask ^= ((cmask & p) ^ tmask) & p
			}
		}
		res[i] = Cube{Bits: tbits, Mask: tmask}
	}
	return res
}

// TCount implements the piecewise T-gate cost table of §9/SPEC_FULL.md §C
// for a cube with c literals over n variables.
func TCount(c, n int) int {
	switch {
	case c <= 1:
		return 0
	case c == 2:
		return 7
	case c == 3:
		return 22
	case c == 4:
		if n >= 7 {
			return 28
		}
		return 52
	default:
		if (n+1)/2 >= c {
			return 12*(c-2) + 4
		}
		return 24*(c-3) + 8
	}
}

// TCost returns the T-count cost of cube c over n variables.
func (c Cube) TCost(n int) int { return TCount(c.LiteralCount(), n) }
