// Package dfs implements depth-first traversal and structural-cycle
// validation over a dag.Arena's fanin structure: pre-/post-order hooks,
// depth limiting, fanin filtering, and multi-root walks from every PO,
// plus DetectCycle for defensively validating that an arena's fanin
// edges contain no cycle (an invariant the arena is supposed to
// guarantee by construction, since addStructural only ever references
// already-existing refs — see dag/methods.go).
//
// Complexity:
//
//   - Walk:        Time O(V+E), Memory O(V) for the recursion stack and
//     visitation maps.
//   - DetectCycle: Time O(V+E), Memory O(V).
package dfs
