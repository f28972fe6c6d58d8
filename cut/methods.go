package cut

import (
	"github.com/lsynth/lsynth/bfs"
	"github.com/lsynth/lsynth/dag"
	"github.com/lsynth/lsynth/dijkstra"
)

// Manager enumerates and holds the k-feasible structural cuts of one
// dag.Arena (§4.C). Leaf sets are stored once in a shared PagedSet;
// cones are reconstructed on demand via Cone rather than stored.
type Manager struct {
	arena    *dag.Arena
	opts     Options
	arrival  map[dag.Ref]int64
	required map[dag.Ref]int64

	cuts      map[dag.Ref][]Cut
	leafPages *PagedSet

	ignored     map[dag.Ref]bool     // interior XOR chain links, skipped by Enumerate
	chainLeaves map[dag.Ref][]dag.Ref // chain root -> collapsed block leaves
}

// New builds a Manager over a, computing arrival/required levels via
// dijkstra and, when Options.IgnoreXorChains is set, locating XOR
// chains to collapse.
func New(a *dag.Arena, opts ...Option) (*Manager, error) {
	if a == nil {
		return nil, ErrNilArena
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.K <= 0 {
		return nil, ErrBadK
	}
	if o.Priority <= 0 {
		return nil, ErrBadPriority
	}

	arrival, err := dijkstra.ArrivalLevels(a)
	if err != nil {
		return nil, err
	}
	required, err := dijkstra.RequiredLevels(a)
	if err != nil {
		return nil, err
	}

	m := &Manager{
		arena:       a,
		opts:        o,
		arrival:     arrival,
		required:    required,
		cuts:        make(map[dag.Ref][]Cut),
		leafPages:   NewPagedSet(),
		ignored:     make(map[dag.Ref]bool),
		chainLeaves: make(map[dag.Ref][]dag.Ref),
	}

	if o.IgnoreXorChains {
		chains, err := findXorChains(a)
		if err != nil {
			return nil, err
		}
		for _, c := range chains {
			if len(c.Internal) <= 1 {
				continue
			}
			m.chainLeaves[c.Root] = c.Leaves
			for n := range c.Internal {
				if n != c.Root {
					m.ignored[n] = true
				}
			}
		}
	}

	return m, nil
}

// Enumerate computes the cut set of every node in topological order.
// Interior members of a collapsed XOR chain are skipped: they hold no
// cuts of their own and are reachable only through their chain root.
func (m *Manager) Enumerate() error {
	for _, r := range m.arena.Topo() {
		if m.ignored[r] {
			continue
		}

		kind := m.arena.Kind(r)
		if kind == dag.KindPI || kind == dag.KindConst0 {
			m.cuts[r] = []Cut{m.trivialCut(r)}
			continue
		}

		var candidates []Cut
		if leaves, ok := m.chainLeaves[r]; ok {
			candidates = append(candidates, m.buildCut(r, append([]dag.Ref(nil), leaves...)))
		} else {
			candidates = m.combineFaninCuts(r)
		}

		candidates = m.subsume(candidates)
		m.sortByPriority(candidates)
		if len(candidates) > m.opts.Priority {
			candidates = candidates[:m.opts.Priority]
		}

		triv := m.trivialCut(r)
		hasTrivial := false
		for _, c := range candidates {
			if c.LeafCount == 1 && m.leafPages.Get(c.LeavesID)[0] == r {
				hasTrivial = true
				break
			}
		}
		if !hasTrivial {
			candidates = append(candidates, triv)
		}

		m.cuts[r] = candidates
	}
	return nil
}

// CutsFor returns the retained cuts rooted at r, or ErrUnknownNode if r
// was never enumerated (including interior XOR-chain members).
func (m *Manager) CutsFor(r dag.Ref) ([]Cut, error) {
	cuts, ok := m.cuts[r]
	if !ok {
		return nil, ErrUnknownNode
	}
	return append([]Cut(nil), cuts...), nil
}

// Leaves returns a cut's leaf refs in ascending order.
func (m *Manager) Leaves(c Cut) []dag.Ref {
	return append([]dag.Ref(nil), m.leafPages.Get(c.LeavesID)...)
}

// Cone reconstructs the nodes of a cut's cone: the root, every node
// between it and the leaves, and the leaves themselves, by walking
// fanins backward from the root and stopping descent at the cut's own
// leaf set.
func (m *Manager) Cone(c Cut) ([]dag.Ref, error) {
	leaves := make(map[dag.Ref]bool, c.LeafCount)
	for _, l := range m.leafPages.Get(c.LeavesID) {
		leaves[l] = true
	}

	res, err := bfs.Run(m.arena, c.Root, bfs.WithFilterFanin(func(node, fanin dag.Ref) bool {
		return !leaves[node]
	}))
	if err != nil {
		return nil, err
	}
	return res.Order, nil
}
