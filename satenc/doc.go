// Package satenc provides the incremental SAT formula machinery shared by
// exact (§4.E) and tbs (§4.H): a thin wrapper over an
// github.com/irifrance/gini solver that tracks a running variable id
// ("sid" in §3's "SAT formula" data model), plus two cardinality
// encodings built on demand — Sinz's sequential counter and a pairwise
// sorting network — for "at most/exactly k of n literals" constraints.
//
// gini exposes a plain CNF interface (z.Lit literals, Add/Assume/Solve);
// it has no bit-vector theory, so callers needing multi-bit selector
// fields (exact's sel_{g,i}) build them here as plain Boolean literal
// vectors with explicit range clauses — see Formula.NewBitVector.
package satenc
