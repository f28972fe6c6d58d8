package dag

import "sort"

// AddPI appends a new primary input node named name and returns its Ref.
// Complexity: O(1).
func (a *Arena) AddPI(name string) Ref {
	ref := Ref(len(a.nodes))
	a.nodes = append(a.nodes, node{kind: KindPI, name: name})
	a.pis = append(a.pis, ref)
	a.invalidate()
	return ref
}

// AddPO registers e as a (possibly complemented) primary output under name.
// Complexity: O(1).
func (a *Arena) AddPO(name string, e Edge) {
	a.pos = append(a.pos, e)
	a.poNames = append(a.poNames, name)
}

// canonOrder sorts the fanins of a commutative node (AND/XOR/MAJ) into a
// deterministic order so that structurally identical nodes strash to the
// same key regardless of the order callers passed fanins in.
func canonOrder(es []Edge) {
	sort.Slice(es, func(i, j int) bool {
		if es[i].Node != es[j].Node {
			return es[i].Node < es[j].Node
		}
		return !es[i].Complem && es[j].Complem
	})
}

// addStructural inserts (or finds, via strashing) a node of kind with the
// given fanins. Fanins are canonically ordered before hashing so that
// AND(a,b) and AND(b,a) share one node — the structural-hash behavior
// §3 requires for the AIG and XMG models. Only 2-fanin and 3-fanin kinds
// are supported.
//
// Returns ErrFaninCount if len(fanins) does not match the arity implied
// by kind (2 for And/Xor, 3 for Maj).
func (a *Arena) addStructural(kind Kind, fanins []Edge) (Ref, error) {
	want := 2
	if kind == KindMaj {
		want = 3
	}
	if len(fanins) != want {
		return NullRef, ErrFaninCount
	}

	ordered := append([]Edge(nil), fanins...)
	canonOrder(ordered)

	key := strashKey{kind: kind, a: ordered[0], b: ordered[1]}
	if want == 3 {
		key.c = ordered[2]
	}
	if ref, ok := a.strash[key]; ok {
		return ref, nil
	}

	ref := Ref(len(a.nodes))
	n := node{kind: kind, nFanin: want}
	copy(n.fanin[:], ordered)
	a.nodes = append(a.nodes, n)
	a.strash[key] = ref
	a.invalidate()
	return ref, nil
}

// AddAnd inserts (or reuses) a two-input AND node.
func (a *Arena) AddAnd(x, y Edge) (Ref, error) { return a.addStructural(KindAnd, []Edge{x, y}) }

// AddXor inserts (or reuses) a two-input XOR node.
func (a *Arena) AddXor(x, y Edge) (Ref, error) { return a.addStructural(KindXor, []Edge{x, y}) }

// AddMaj inserts (or reuses) a three-input MAJ node.
func (a *Arena) AddMaj(x, y, z Edge) (Ref, error) { return a.addStructural(KindMaj, []Edge{x, y, z}) }

// invalidate drops the memoized topo/fanout caches; called on every
// structural mutation.
func (a *Arena) invalidate() {
	a.mu.Lock()
	a.topoValid = false
	a.topoOrder = nil
	a.fanouts = nil
	a.parents = nil
	a.mu.Unlock()
}

// Topo returns a topological order over all live nodes (const0 first,
// PIs next in declaration order interleaved as encountered, then
// internal nodes such that every fanin precedes its user). The order is
// computed once per mutation epoch and cached.
//
// Complexity: O(V+E) on first call after a mutation, O(1) amortized after.
func (a *Arena) Topo() []Ref {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.topoValid {
		return a.topoOrder
	}

	state := make([]uint8, len(a.nodes)) // 0=white,1=gray,2=black
	order := make([]Ref, 0, len(a.nodes))

	var visit func(r Ref)
	visit = func(r Ref) {
		if state[r] == 2 {
			return
		}
		state[r] = 1
		n := a.nodes[r]
		for i := 0; i < n.nFanin; i++ {
			visit(n.fanin[i].Node)
		}
		state[r] = 2
		order = append(order, r)
	}
	for r := range a.nodes {
		visit(Ref(r))
	}

	a.topoOrder = order
	a.topoValid = true
	return order
}

// Fanouts returns, for each node, the set of nodes that use it directly as
// a fanin (the "parent set" of §9's design note). Rebuilt by scanning the
// node table on first access after a mutation.
//
// Complexity: O(V+E) on first call after a mutation, O(1) amortized after.
func (a *Arena) Fanouts() map[Ref][]Ref {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.fanouts != nil {
		return a.fanouts
	}
	fo := make(map[Ref][]Ref, len(a.nodes))
	for r, n := range a.nodes {
		for i := 0; i < n.nFanin; i++ {
			leaf := n.fanin[i].Node
			fo[leaf] = append(fo[leaf], Ref(r))
		}
	}
	a.fanouts = fo
	a.parents = fo
	return fo
}

// FanoutCount is a convenience accessor counting live fanout edges of ref,
// including primary-output references.
func (a *Arena) FanoutCount(ref Ref) int {
	n := len(a.Fanouts()[ref])
	for _, po := range a.pos {
		if po.Node == ref {
			n++
		}
	}
	return n
}
