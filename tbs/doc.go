// Package tbs implements §4.H's symbolic transformation-based synthesis:
// given a reversible n-input/n-output Boolean function packaged as an
// *aig.AIG, it builds an n-line Toffoli network realizing it without
// ever enumerating the 2^n-row truth table that exact (§4.E) requires.
//
// The target relation y_i <=> f_i(x) is Tseitin-encoded via encodeAIG,
// once per round into that round's fresh formula, mirroring aig.AIG's own And/Or/Xor decomposition but
// emitting satenc gates instead of dag nodes. The main loop walks
// Hamming weight k from 0 to n; at each weight, satenc.BuildSinzExactly
// pins the candidate input x to weight k and repeated Assume/Solve calls
// hunt for an x whose current working vector y (the target's value as
// seen through every gate synthesized so far) still disagrees with x.
// Each disagreement yields two multi-target Toffoli fixes — one gated on
// y's 1-bits to clear the positions where x=1,y=0, one gated on x's
// 1-bits to set the positions where x=0,y=1 — which provably never
// perturb the rows already matched at a lower Hamming weight (a control
// set built from a row's own 1-bits can only fire on that row and rows
// of greater-or-equal weight, and once x=y on a weight-j row it stays
// fixed because later gates only target strictly-greater-weight
// positions of THAT row's residual difference, which no longer exists).
//
// Gates are discovered in weight order and recorded in that order; the
// emitted circuit is their reverse, since the discovery loop transforms
// f(x) down to x one gate at a time and a network of involutions run
// backward undoes exactly what it built forward — run forward, the
// reversed list turns x back into f(x). y is never given its own SAT
// variables across rounds: each round re-derives y from a fresh
// encoding of f(x) plus every previously discovered gate applied to it
// via satenc.AndAll/Xor2, so no state needs to survive between solver
// instances.
//
// A fresh satenc.Formula per round (rather than one persistent instance
// across the whole weight sweep) is a documented simplification: see
// SPEC_FULL.md/DESIGN.md for why full cross-round incrementality is not
// attempted.
package tbs
