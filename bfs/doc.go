// Package bfs provides level-by-level (breadth-first) frontier traversal
// over a dag.Arena's fanin structure, returning per-ref depth (distance
// in fanin hops from the traversal root) and parent links.
//
// cut's k-feasible cut enumerator uses it for XOR-chain discovery and
// for cone reconstruction, both of which walk a frontier that grows one
// level at a time rather than depth-first, so this traversal is kept as
// its own package alongside dfs rather than folded into it.
//
// Complexity:
//
//   - Time:   O(V+E)
//   - Memory: O(V) for the queue, Depth map, and Parent map.
package bfs
