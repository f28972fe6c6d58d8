// Package cut implements §4.C's k-feasible structural cut enumerator
// over an AIG or XMG: for every node, a bounded set of k-feasible cuts
// (subsets of nodes whose union dominates the root) is retained, each
// stored as a paged leaf-index-set, pruned by subsumption and capped at
// Options.Priority cuts per node.
//
// Arrival and required levels (the "[arrival,required] level range"
// §4.C opens with) are computed once via dijkstra.ArrivalLevels and
// dijkstra.RequiredLevels, which already implement exactly this DAG
// longest-path pair. A cut's cone — the set of nodes strictly between
// its leaves and its root — is recovered on demand with bfs.Run, using
// a fanin filter that stops descent at the cut's own leaves.
//
// For XMGs, XOR chains (maximal runs of single-fanout XOR nodes) are
// collapsed before enumeration: every interior link is marked ignored
// and the chain is treated, for cut purposes, as a single node whose
// leaves are the chain's external inputs (§4.C).
package cut
