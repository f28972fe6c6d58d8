// Package rewrite implements §4.D's functional hashing: for every node
// of an xmg.XMG, a k-feasible cut (cut.Manager) is selected, its cone's
// function is read off as a dense truth table (xmg.ToTruthTable), and
// NPN-canonicalized (ttable.Canonicalize). Canonical classes are cached
// against a minimum-gate-count XMG template synthesized on first sight
// via exact.Synthesize; whenever the cached template is strictly smaller
// than the cone it would replace, the cone is spliced out and the
// template spliced in (transformed back by the cut's own NPN mapping).
//
// This pass is kept in its own package rather than inside xmg itself:
// exact already imports xmg (Synthesize returns an *xmg.XMG), so wiring
// exact into xmg directly would form an import cycle. rewrite sits above
// both, consuming xmg, cut, exact and ttable without being imported back
// by any of them — a placement forced by Go's import graph rather than
// a stylistic choice (see DESIGN.md).
//
// Only cones whose internal (non-leaf, non-root) nodes have no fanout
// outside the cone are considered for replacement — the same
// single-consumer safety condition cut already applies to its own XOR-
// chain collapsing — so a rewrite never orphans a node some other part
// of the graph still depends on.
package rewrite
