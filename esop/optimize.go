package esop

import "github.com/lsynth/lsynth/ttable"

// popPair pops and returns the most recently queued pair at distance d
// (LIFO, matching exorcismq's std::vector used as a stack), or ok=false
// if the queue is empty.
func (c *Cover) popPair(d int) (pair, bool) {
	q := c.queues[d]
	if len(q) == 0 {
		return pair{}, false
	}
	top := q[len(q)-1]
	c.queues[d] = q[:len(q)-1]
	return top, true
}

// reshapeCost computes the T-cost of the d cubes in reshaped, skipping
// any that reduce to the empty (all-don't-care-canceled) cube — an
// EXORLINK reshape can produce a literal-free cube that cancels out, so
// the cost comparison already reflects that collapse.
func reshapeCost(reshaped []ttable.Cube, nVars int) int {
	total := 0
	for _, r := range reshaped {
		total += r.TCost(nVars)
	}
	return total
}

// acceptPair replaces the two cubes at the given pair with the reshaped
// cubes, routing every new cube back through Insert so the store's
// distance-0/1 invariants apply to the freshly produced cubes too.
func (c *Cover) acceptPair(p pair, reshaped []ttable.Cube) error {
	c.entries[p.i].valid = false
	c.entries[p.j].valid = false
	return c.InsertAll(reshaped)
}

// Optimize runs one greedy-first-improvement pass over distances 2..
// maxDistance: for each queued pair, tries every EXORLINK group in turn
// and accepts the first one whose total T-cost is strictly lower than
// the pair's combined cost (or no worse, when strict is false — the
// "equality-accept" variant named in §4.F). Returns whether any reshape
// was accepted.
func (c *Cover) Optimize(maxDistance int, strict bool) bool {
	improved := false
	for d := 2; d <= maxDistance; d++ {
		for {
			p, ok := c.popPair(d)
			if !ok {
				break
			}
			if !c.entries[p.i].valid || !c.entries[p.j].valid {
				continue
			}
			c1, c2 := c.entries[p.i].cube, c.entries[p.j].cube
			pairCost := c1.TCost(c.nVars) + c2.TCost(c.nVars)
			pos := c1.Positions(c2)

			for g := 0; g < ttable.GroupCount(d); g++ {
				res := ttable.Exorlink(c1, c2, d, pos, g)
				cost := reshapeCost(res, c.nVars)
				if cost < pairCost || (!strict && cost == pairCost) {
					c.acceptPair(p, res)
					improved = true
					break
				}
			}
		}
	}
	return improved
}

// OptimizeWithBest runs one best-of-queue pass over distances 2..
// maxDistance: considers every (pair,group) combination at a given
// distance and accepts only the single strictly-improving reshape with
// the largest cost reduction, if any. Returns whether a reshape was
// accepted.
func (c *Cover) OptimizeWithBest(maxDistance int) bool {
	improved := false
	for d := 2; d <= maxDistance; d++ {
		bestImprovement := 0
		var bestPair pair
		var bestRes []ttable.Cube
		haveBest := false

		queue := append([]pair(nil), c.queues[d]...)
		c.queues[d] = nil
		for _, p := range queue {
			if !c.entries[p.i].valid || !c.entries[p.j].valid {
				continue
			}
			c1, c2 := c.entries[p.i].cube, c.entries[p.j].cube
			pairCost := c1.TCost(c.nVars) + c2.TCost(c.nVars)
			pos := c1.Positions(c2)

			for g := 0; g < ttable.GroupCount(d); g++ {
				res := ttable.Exorlink(c1, c2, d, pos, g)
				cost := reshapeCost(res, c.nVars)
				if cost < pairCost {
					if improvement := pairCost - cost; improvement > bestImprovement {
						bestImprovement = improvement
						bestPair = p
						bestRes = res
						haveBest = true
					}
				}
			}
		}

		if haveBest {
			c.acceptPair(bestPair, bestRes)
			improved = true
		}
	}
	return improved
}

// Run executes §4.F's full quality schedule: repeated greedy and
// best-of-queue rounds at distance 3, escalating to distance 4 (with an
// equality-accept fallback) after `quality` consecutive stagnant rounds,
// stopping once a full schedule pass fails to reduce T-cost.
//
// Grounded directly on exorcismq_manager::run() (see DESIGN.md).
func (c *Cover) Run(quality int) {
	for i := 0; i < 10; i++ {
		c.Optimize(4, true)
		c.OptimizeWithBest(4)
	}

	noImprovRound := 0
	for {
		improv := false
		for i := 0; i < 8; i++ {
			improv = c.Optimize(3, true) || improv
			improv = c.OptimizeWithBest(3) || improv
			if !improv {
				c.Optimize(3, false)
			}
		}

		if !improv {
			noImprovRound++
		}

		if noImprovRound == quality {
			improv = c.Optimize(4, true) || improv
			improv = c.OptimizeWithBest(4) || improv
			if !improv {
				c.Optimize(4, false)
				improv = c.Optimize(4, true) || improv
				improv = c.OptimizeWithBest(4) || improv
			}
		}

		if improv {
			noImprovRound = 0
		}

		if noImprovRound >= quality {
			break
		}
	}
}
