package revsynth

import (
	"github.com/lsynth/lsynth/esop"
	"github.com/lsynth/lsynth/ttable"
)

// lutTemplate is a synthesized gate list over relative lines 0..k-1
// (inputs) and k (target), cached by the LUT's function so that
// repeated functions across a mapped network are built once. This
// stands in for §4.G's affine-equivalence-class template cache: rather
// than canonicalize under input permutation/negation and look up a
// precomputed optimum network, templates are cached by exact truth
// table, and every width is synthesized uniformly through the ESOP
// path below instead of only functions of width <= 4.
type lutTemplate struct {
	gates []Gate // relative: input i is line i, output is line len(inputs)
}

type lutCache map[string]lutTemplate

func newLUTCache() lutCache { return make(lutCache) }

func cacheKey(tt ttable.TT) string {
	return tt.ToHex()
}

// synthesizeLUT returns the gate list implementing tt, translated onto
// the caller-supplied absolute line numbers (inputLines[i] for variable
// i, target for the output), building and caching a relative template
// on first use (§4.F's ESOP cover feeds §3's Toffoli data model
// directly: a control set may have arbitrary size, so every product
// term of the cover becomes exactly one multi-controlled Toffoli).
func synthesizeLUT(cache lutCache, tt ttable.TT, inputLines []int, target int) ([]Gate, error) {
	key := cacheKey(tt)
	tmpl, ok := cache[key]
	if !ok {
		cover := esop.NewCover(tt.NumVars())
		if err := cover.InsertAll(rmCubes(tt)); err != nil {
			return nil, err
		}
		cover.Run(3)

		k := tt.NumVars()
		gates := make([]Gate, 0, len(cover.Cubes()))
		for _, cube := range cover.Cubes() {
			var controls []Control
			for i := 0; i < k; i++ {
				switch cube.Lit(i) {
				case 1:
					controls = append(controls, Control{Line: i, Pol: Positive})
				case 0:
					controls = append(controls, Control{Line: i, Pol: Negative})
				}
			}
			g, err := NewToffoli(controls, k)
			if err != nil {
				return nil, err
			}
			gates = append(gates, g)
		}
		tmpl = lutTemplate{gates: gates}
		cache[key] = tmpl
	}

	return relabelGates(tmpl.gates, inputLines, target), nil
}

// relabelGates maps a template's relative line numbers onto absolute
// circuit lines.
func relabelGates(gates []Gate, inputLines []int, target int) []Gate {
	k := len(inputLines)
	lineMap := func(l int) int {
		if l == k {
			return target
		}
		return inputLines[l]
	}
	out := make([]Gate, len(gates))
	for i, g := range gates {
		cp := Gate{Kind: g.Kind, Target: lineMap(g.Target), Target2: lineMap(g.Target2), Tag: g.Tag}
		cp.Controls = make([]Control, len(g.Controls))
		for j, c := range g.Controls {
			cp.Controls[j] = Control{Line: lineMap(c.Line), Pol: c.Pol}
		}
		out[i] = cp
	}
	return out
}
