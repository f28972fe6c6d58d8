package cut

import "github.com/lsynth/lsynth/dag"

// pageEntry is one index-table row: the byte range [Offset,Offset+Len)
// of data a page's variable-length set occupies.
type pageEntry struct {
	Offset int
	Len    int
}

// PagedSet is the §3 "paged memory" kernel: a two-level arena holding
// per-node variable-length ref sets in one packed stream, addressed by
// an index table. Appends are the only mutation; lookups return slices
// borrowed from the backing stream, valid only while the PagedSet lives.
type PagedSet struct {
	data  []dag.Ref
	index []pageEntry
}

// NewPagedSet returns an empty paged set.
func NewPagedSet() *PagedSet {
	return &PagedSet{}
}

// Add appends items as one new page and returns its page id.
func (p *PagedSet) Add(items []dag.Ref) int {
	id := len(p.index)
	offset := len(p.data)
	p.data = append(p.data, items...)
	p.index = append(p.index, pageEntry{Offset: offset, Len: len(items)})
	return id
}

// Get returns the borrowed slice for page id.
func (p *PagedSet) Get(id int) []dag.Ref {
	e := p.index[id]
	return p.data[e.Offset : e.Offset+e.Len]
}

// Len reports the number of pages stored.
func (p *PagedSet) Len() int { return len(p.index) }
