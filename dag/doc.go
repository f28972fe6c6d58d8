// Package dag provides the arena-indexed directed-acyclic-graph kernel
// shared by the aig and xmg packages.
//
// Nodes live in a single growable arena and are referred to only by a
// dense uint32 index (Ref), never by pointer. Fanin edges are stored
// inline on the node; fanout sets are a derived table rebuilt by a scan
// of the node table whenever the arena is mutated and then queried
// — there is no incrementally-maintained fanout list, matching the
// "recomputed on demand" design note of the specification this kernel
// implements (see the module's DESIGN.md). Handles (Ref values) are only
// valid for the lifetime of the Arena that produced them; no handle may
// outlive or cross into another Arena.
//
// Complexity: adding a node is O(1) amortized; Topo and Fanouts are
// O(V+E) and memoized until the next node addition invalidates them.
package dag
