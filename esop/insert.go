package esop

import (
	"math/bits"

	"github.com/lsynth/lsynth/ttable"
)

// Insert adds cube to the cover, enforcing §4.F's insertion invariants:
// a stored cube at distance 0 cancels with the incoming one (both
// invalidated, nothing new stored); a stored cube at distance 1 absorbs
// the incoming one via ttable.Merge at the single differing position
// (the stored entry is replaced in place, the incoming cube never gets
// its own slot); otherwise the cube is appended and pair entries are
// recorded for every live cube at distance 2, 3, or 4.
//
// Returns ErrWidthMismatch if cube's mask/bits reach beyond nVars.
func (c *Cover) Insert(cube ttable.Cube) error {
	if c.nVars < 64 {
		hi := ^uint64(0) << uint(c.nVars)
		if cube.Mask&hi != 0 {
			return ErrWidthMismatch
		}
	}

	for i := range c.entries {
		if !c.entries[i].valid {
			continue
		}
		d := c.entries[i].cube.Distance(cube)
		switch d {
		case 0:
			c.entries[i].valid = false
			return nil
		case 1:
			k := bits.TrailingZeros64(c.entries[i].cube.Positions(cube))
			c.entries[i].cube = ttable.Merge(c.entries[i].cube, cube, k)
			return nil
		}
	}

	newIdx := len(c.entries)
	c.entries = append(c.entries, cubeEntry{cube: cube, valid: true})
	for i := 0; i < newIdx; i++ {
		if !c.entries[i].valid {
			continue
		}
		d := c.entries[i].cube.Distance(cube)
		if d >= 2 && d <= 4 {
			c.queues[d] = append(c.queues[d], pair{i, newIdx})
		}
	}
	return nil
}

// InsertAll inserts every cube of cubes in order.
func (c *Cover) InsertAll(cubes []ttable.Cube) error {
	for _, cb := range cubes {
		if err := c.Insert(cb); err != nil {
			return err
		}
	}
	return nil
}
