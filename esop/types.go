package esop

import "github.com/lsynth/lsynth/ttable"

type cubeEntry struct {
	cube  ttable.Cube
	valid bool
}

type pair struct {
	i, j int
}

// Cover is an ESOP cover over nVars variables: a cube store enforcing
// the distance-0/1 cancellation and absorption invariants at insertion,
// plus three pair queues (indexed by EXORLINK distance 2, 3, 4) used by
// the optimization loop.
type Cover struct {
	nVars   int
	entries []cubeEntry
	queues  map[int][]pair
}

// NewCover creates an empty cover over nVars variables.
func NewCover(nVars int) *Cover {
	return &Cover{
		nVars:  nVars,
		queues: map[int][]pair{2: nil, 3: nil, 4: nil},
	}
}

// NumVars reports the cover's variable count.
func (c *Cover) NumVars() int { return c.nVars }

// Cubes returns the live cubes of the cover, in insertion order.
func (c *Cover) Cubes() []ttable.Cube {
	out := make([]ttable.Cube, 0, len(c.entries))
	for _, e := range c.entries {
		if e.valid {
			out = append(out, e.cube)
		}
	}
	return out
}

// TotalTCost returns the summed T-count cost of every live cube.
func (c *Cover) TotalTCost() int {
	total := 0
	for _, e := range c.entries {
		if e.valid {
			total += e.cube.TCost(c.nVars)
		}
	}
	return total
}
