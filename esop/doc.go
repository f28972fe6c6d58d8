// Package esop implements §4.F's ESOP (Exclusive Sum of Products) cover
// minimization by EXORLINK cube reshaping: a cube store enforcing the
// distance-0/1 cancellation and absorption invariants at insertion, three
// pair queues indexed by EXORLINK distance (2, 3, 4), and the greedy /
// best-of-queue optimization loop that reshapes cube pairs to reduce
// total T-count.
//
// Grounded on the original cirkit exorcismq_manager (see DESIGN.md and
// SPEC_FULL.md §C): the cube store and pair-queue bookkeeping, and the
// "several rounds of greedy d∈{2,3,4}, escalate to equality-accept at
// d=4 after `quality` stagnant rounds" schedule are carried over as
// described in §4.F, transcribed from exorcismq.cpp's optimize/run loop
// rather than the teacher (which has no ESOP precedent) or any other
// pack example.
package esop
