package dsu

import "github.com/lsynth/lsynth/dag"

// DSU is a disjoint-set structure over dag.Ref elements. The zero value
// is not usable; use New.
type DSU struct {
	parent map[dag.Ref]dag.Ref
	rank   map[dag.Ref]int
}

// New creates a DSU with one singleton set per element of elems.
func New(elems []dag.Ref) *DSU {
	d := &DSU{
		parent: make(map[dag.Ref]dag.Ref, len(elems)),
		rank:   make(map[dag.Ref]int, len(elems)),
	}
	for _, e := range elems {
		d.parent[e] = e
		d.rank[e] = 0
	}
	return d
}

// Add inserts r as a new singleton set if it is not already tracked.
func (d *DSU) Add(r dag.Ref) {
	if _, ok := d.parent[r]; !ok {
		d.parent[r] = r
		d.rank[r] = 0
	}
}

// Find returns the representative of r's set, compressing the path
// traversed along the way.
func (d *DSU) Find(r dag.Ref) dag.Ref {
	for d.parent[r] != r {
		d.parent[r] = d.parent[d.parent[r]]
		r = d.parent[r]
	}
	return r
}

// Union merges the sets containing u and v, attaching the smaller-rank
// tree under the larger-rank root. Returns true if a merge happened
// (u and v were in different sets), false if they already were together.
func (d *DSU) Union(u, v dag.Ref) bool {
	rootU, rootV := d.Find(u), d.Find(v)
	if rootU == rootV {
		return false
	}
	switch {
	case d.rank[rootU] < d.rank[rootV]:
		d.parent[rootU] = rootV
	case d.rank[rootU] > d.rank[rootV]:
		d.parent[rootV] = rootU
	default:
		d.parent[rootV] = rootU
		d.rank[rootU]++
	}
	return true
}

// Connected reports whether u and v are in the same set.
func (d *DSU) Connected(u, v dag.Ref) bool {
	return d.Find(u) == d.Find(v)
}

// Groups returns the current partition as a map from each set's
// representative to its members.
func (d *DSU) Groups() map[dag.Ref][]dag.Ref {
	groups := make(map[dag.Ref][]dag.Ref, len(d.parent))
	for r := range d.parent {
		root := d.Find(r)
		groups[root] = append(groups[root], r)
	}
	return groups
}
