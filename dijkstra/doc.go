// Package dijkstra computes arrival and required timing levels over a
// dag.Arena, the two bounds cut enumeration ranges a node's admissible
// level over (§4.C "[arrival, required] level range").
//
// Arrival(n) is the longest path (in node hops) from any primary input
// to n; Required(n) is the longest path from n to any primary output,
// subtracted from the arena's overall depth so that primary outputs sit
// at the arena's maximum level. Both are single-source longest-path
// problems over a DAG with unit edge weights, and on a DAG the classical
// Dijkstra priority-queue relaxation loop is unnecessary: a single pass
// over dag.Arena's cached topological order computes exact longest
// paths in O(V+E), strictly cheaper than the O((V+E) log V) heap-based
// algorithm this package is adapted from (see DESIGN.md). The functional
// Options surface, sentinel-error taxonomy, and MaxDistance-style
// exploration cap are kept from the original.
package dijkstra
