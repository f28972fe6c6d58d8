// Package lnn implements §4.I's linear-nearest-neighbour reordering
// pass: given a Toffoli network whose gates each carry a single control
// and a single target (the two-input case the architecture constraint
// applies to), it rewrites the network so every gate acts on physically
// adjacent lines, inserting SWAPs (modelled as unconditional Fredkin
// gates, revsynth.NewFredkin with no controls) to bring a gate's
// control next to its target.
//
// Three modes, reusing the reordering_mode CLI values named in §6:
//
//   - Naive: per gate, SWAP the control into the line adjacent to the
//     target, apply the gate there, then SWAP back — no persistent
//     effect on later gates.
//   - Local: the same per-gate SWAP-in, but the SWAPs are kept rather
//     than undone; a running logical-to-physical line map is threaded
//     through the rest of the circuit.
//   - Global: a one-time line permutation is searched for up front (by
//     repeatedly relocating the line with the largest total
//     nearest-neighbour-cost contribution to the median physical
//     position and keeping the move only if it lowers total cost), then
//     applied as a single SWAP prologue followed by every gate rewritten
//     under the converged permutation.
//
// A multi-control gate has no single control/target pair to route, so
// Reorder rejects it with ErrMultiControlGate rather than silently
// picking one control — decomposing multi-controlled Toffolis into a
// CNOT network is a separate concern this package does not take on.
package lnn
