package mdtree

import (
	"sort"
	"strings"

	"github.com/katalvlaran/moddecomp/compute"
	"github.com/katalvlaran/moddecomp/forest"
)

// Tree is the modular-decomposition output: an arena of Node plus the
// handle of its root and the graph vertex at each left-to-right leaf
// position.
type Tree struct {
	arena    *forest.Arena[Node]
	root     int
	vertices []int
}

// FromComputeTree builds a Tree from a fully-reduced compute forest: every
// leaf under compRoot becomes a Node leaf, and every operator ancestor is
// rebuilt bottom-up (via the compute tree's BFS order processed in reverse,
// so every child is already mapped once its parent is visited) with a span
// covering its children's union.
func FromComputeTree(compTree *forest.Arena[compute.Payload], compRoot int) (*Tree, error) {
	leaves := compTree.Leaves(compRoot)
	n := len(leaves)
	if n == 0 {
		return nil, errorf("FromComputeTree", ErrMalformedComputeTree, "compute root %d has no leaves", compRoot)
	}

	arena := forest.New[Node](2 * n)
	vertices := make([]int, n)
	mapping := make(map[int]int, 2*n)

	for i, lh := range leaves {
		v := compTree.Payload(lh).Vertex
		vertices[i] = v
		mapping[lh] = arena.Create(Node{Vertex: v, VerticesBegin: i, VerticesEnd: i + 1})
	}

	bfsOrder := compTree.BFS(compRoot)
	for i := len(bfsOrder) - 1; i >= 0; i-- {
		ch := bfsOrder[i]
		pl := compTree.Payload(ch)
		if pl.IsVertex() {
			continue
		}
		if pl.IsProblem() {
			return nil, errorf("FromComputeTree", ErrMalformedComputeTree, "node %d is still a problem", ch)
		}

		children := compTree.Children(ch)
		idxBegin, idxEnd := n, 0
		for _, c := range children {
			cn := arena.Payload(mapping[c])
			if cn.VerticesBegin < idxBegin {
				idxBegin = cn.VerticesBegin
			}
			if cn.VerticesEnd > idxEnd {
				idxEnd = cn.VerticesEnd
			}
		}

		nodeIdx := arena.Create(Node{Op: pl.Op, Vertex: -1, VerticesBegin: idxBegin, VerticesEnd: idxEnd})
		for j := len(children) - 1; j >= 0; j-- {
			if err := arena.AttachAsFirstChild(nodeIdx, mapping[children[j]]); err != nil {
				return nil, err
			}
		}
		mapping[ch] = nodeIdx
	}

	return &Tree{arena: arena, root: mapping[compRoot], vertices: vertices}, nil
}

// Root returns the handle of the tree's root node.
func (t *Tree) Root() int { return t.root }

// NumVertices returns n, the number of leaves.
func (t *Tree) NumVertices() int { return len(t.vertices) }

// Vertex returns the graph vertex id at left-to-right leaf position i.
func (t *Tree) Vertex(i int) (int, error) {
	if i < 0 || i >= len(t.vertices) {
		return 0, errorf("Vertex", ErrIndexOutOfRange, "i=%d, n=%d", i, len(t.vertices))
	}
	return t.vertices[i], nil
}

// ModularWidth returns the maximum number of children over all PRIME
// internal nodes, or 0 if the tree has no PRIME node (including the
// single-vertex case).
func (t *Tree) ModularWidth() int {
	ret := 0
	for _, c := range t.arena.DFSPreRev(t.root) {
		n := t.arena.Payload(c)
		if !n.IsLeaf() && n.Op == compute.OpPrime {
			if nc := t.arena.NumChildren(c); nc > ret {
				ret = nc
			}
		}
	}
	return ret
}

// String renders the parenthesized form: every node, leaf or internal, is
// "(" + its own label + its children's renderings, in order + ")".
func (t *Tree) String() string {
	var sb strings.Builder
	t.writeNode(&sb, t.root)
	return sb.String()
}

func (t *Tree) writeNode(sb *strings.Builder, h int) {
	n := t.arena.Payload(h)
	sb.WriteByte('(')
	sb.WriteString(n.Label())
	for _, c := range t.arena.Children(h) {
		t.writeNode(sb, c)
	}
	sb.WriteByte(')')
}

// Sort canonicalizes sibling order: every internal node's children end up
// listed in increasing order of their smallest leaf vertex id. Vertex(i) and
// every internal node's span are kept consistent with the new order, so a
// second Sort call is a no-op.
func (t *Tree) Sort() {
	a := t.arena
	levelOrder := a.BFS(t.root)

	minLabel := make(map[int]int, len(levelOrder))
	for i := len(levelOrder) - 1; i >= 0; i-- {
		node := levelOrder[i]
		if pl := a.Payload(node); pl.IsLeaf() {
			minLabel[node] = pl.Vertex
		}
		if p := a.Parent(node); p != forest.None {
			if cur, ok := minLabel[p]; !ok || minLabel[node] < cur {
				minLabel[p] = minLabel[node]
			}
		}
	}

	for _, node := range levelOrder {
		children := a.Children(node)
		if len(children) < 2 {
			continue
		}
		ordered := append([]int(nil), children...)
		sort.Slice(ordered, func(i, j int) bool { return minLabel[ordered[i]] > minLabel[ordered[j]] })
		for _, c := range ordered {
			_ = a.MakeFirstChild(c)
		}
	}

	t.recomputeSpans()
}

// recomputeSpans rewrites every node's [VerticesBegin, VerticesEnd) and
// Tree.vertices from the arena's current left-to-right leaf order — the
// deviation from the source's sort() (see DESIGN.md) needed so internal
// spans stay consistent after reordering, not just the leaf array.
func (t *Tree) recomputeSpans() {
	a := t.arena
	leaves := a.Leaves(t.root)
	for i, lh := range leaves {
		n := a.Payload(lh)
		t.vertices[i] = n.Vertex
		n.VerticesBegin, n.VerticesEnd = i, i+1
	}

	bfsOrder := a.BFS(t.root)
	for i := len(bfsOrder) - 1; i >= 0; i-- {
		h := bfsOrder[i]
		n := a.Payload(h)
		if n.IsLeaf() {
			continue
		}
		idxBegin, idxEnd := len(leaves), 0
		for _, c := range a.Children(h) {
			cn := a.Payload(c)
			if cn.VerticesBegin < idxBegin {
				idxBegin = cn.VerticesBegin
			}
			if cn.VerticesEnd > idxEnd {
				idxEnd = cn.VerticesEnd
			}
		}
		n.VerticesBegin, n.VerticesEnd = idxBegin, idxEnd
	}
}
