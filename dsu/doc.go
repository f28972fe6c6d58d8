// Package dsu implements a disjoint-set (union-find) structure over
// dag.Ref keys, with path compression and union by rank. The LUT-based
// reversible synthesis pipeline's merge-until-feasible fallback (§4.G)
// uses it to track which LUT-mapped node groups have already been
// coalesced while searching for a grouping within the ancilla budget.
//
// Complexity: amortized O(α(n)) per Find/Union call.
package dsu
