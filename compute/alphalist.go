package compute

import "github.com/katalvlaran/moddecomp/fastset"

// AlphaLists is the per-vertex cross-edge table (the "alpha-list store"): a
// flat slice of sequences, preallocated to n entries at construction and
// never reallocated at the top level afterward, per the store's "not a map"
// design.
type AlphaLists struct {
	lists [][]int
}

// NewAlphaLists preallocates an empty AlphaLists for n vertices.
func NewAlphaLists(n int) *AlphaLists {
	return &AlphaLists{lists: make([][]int, n)}
}

// Append records that v has a cross-edge into u's subproblem (a directed
// record; symmetry is restored explicitly by Complete).
func (al *AlphaLists) Append(v, u int) {
	al.lists[v] = append(al.lists[v], u)
}

// Get returns v's current cross-edge sequence. Callers must not retain the
// slice across a call to Complete or Reset.
func (al *AlphaLists) Get(v int) []int { return al.lists[v] }

// Reset empties v's sequence, keeping its backing array for reuse.
func (al *AlphaLists) Reset(v int) { al.lists[v] = al.lists[v][:0] }

// Complete enforces symmetry and irredundance of alpha restricted to
// leaves: first every existing entry is mirrored, then each list is
// deduplicated in place using scratch (which callers own and reuse across
// phases).
func (al *AlphaLists) Complete(leaves []int, scratch *fastset.Set) {
	for _, u := range leaves {
		for _, a := range al.lists[u] {
			al.lists[a] = append(al.lists[a], u)
		}
	}
	for _, u := range leaves {
		scratch.Clear()
		list := al.lists[u]
		out := 0
		for _, x := range list {
			if scratch.Get(x) {
				continue
			}
			scratch.Set(x)
			list[out] = x
			out++
		}
		al.lists[u] = list[:out]
	}
}
