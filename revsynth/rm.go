package revsynth

import "github.com/lsynth/lsynth/ttable"

// rmCubes computes tt's positive-polarity Reed-Muller (ESOP) expansion:
// f(x) = XOR over S, with coefficient a_S = 1, of AND_{i in S} x_i. The
// coefficients are obtained by the standard in-place XOR butterfly
// (a fast Mobius transform over GF(2)) run on tt's row vector; each
// nonzero coefficient becomes one all-positive-or-don't-care cube. This
// gives every classical function a valid (generally non-minimal) ESOP
// cover, which esop.Cover.Run then optimizes before gate extraction.
func rmCubes(tt ttable.TT) []ttable.Cube {
	n := tt.NumVars()
	rows := int(tt.Size())
	a := make([]bool, rows)
	for i := 0; i < rows; i++ {
		a[i] = tt.Bit(uint(i))
	}
	for i := 0; i < n; i++ {
		step := 1 << uint(i)
		for j := 0; j < rows; j++ {
			if j&step != 0 {
				a[j] = a[j] != a[j-step]
			}
		}
	}

	var cubes []ttable.Cube
	for s := 0; s < rows; s++ {
		if !a[s] {
			continue
		}
		c := ttable.NewCube()
		for i := 0; i < n; i++ {
			if s&(1<<uint(i)) != 0 {
				c = c.With(i, 1)
			}
		}
		cubes = append(cubes, c)
	}
	return cubes
}
