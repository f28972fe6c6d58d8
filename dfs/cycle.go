package dfs

import (
	"fmt"

	"github.com/lsynth/lsynth/dag"
)

// DetectCycle validates that a's fanin structure is acyclic. Arenas are
// supposed to guarantee this by construction (addStructural only takes
// fanins that are already-existing refs), so a positive result here
// indicates arena corruption or a bug in a structural-rewrite pass
// rather than a normal user-facing condition.
func DetectCycle(a *dag.Arena) (bool, []dag.Ref, error) {
	if a == nil {
		return false, nil, nil
	}

	state := make(map[dag.Ref]State, a.NumNodes())
	var path []dag.Ref

	for ref := dag.Ref(0); int(ref) < a.NumNodes(); ref++ {
		if state[ref] == White {
			if cyc, err := cycleVisit(a, ref, state, &path); err != nil {
				return false, nil, fmt.Errorf("dfs: DetectCycle: %w", err)
			} else if cyc != nil {
				return true, cyc, nil
			}
		}
	}
	return false, nil, nil
}

func cycleVisit(a *dag.Arena, r dag.Ref, state map[dag.Ref]State, path *[]dag.Ref) ([]dag.Ref, error) {
	state[r] = Gray
	*path = append(*path, r)

	for _, fanin := range a.Fanins(r) {
		child := fanin.Node
		switch state[child] {
		case White:
			if cyc, err := cycleVisit(a, child, state, path); err != nil {
				return nil, err
			} else if cyc != nil {
				return cyc, nil
			}
		case Gray:
			idx := indexOf(*path, child)
			return append(append([]dag.Ref(nil), (*path)[idx:]...), child), nil
		}
	}

	*path = (*path)[:len(*path)-1]
	state[r] = Black
	return nil, nil
}

func indexOf(path []dag.Ref, r dag.Ref) int {
	for i, x := range path {
		if x == r {
			return i
		}
	}
	return -1
}
