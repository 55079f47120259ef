package mdtree

import (
	"strconv"

	"github.com/katalvlaran/moddecomp/compute"
)

// Node is the payload of the output forest: either a leaf (Vertex holds the
// graph vertex id, VerticesBegin+1 == VerticesEnd) or an internal operator
// node (Vertex == -1, Op one of compute.OpPrime/OpSeries/OpParallel) whose
// [VerticesBegin, VerticesEnd) span covers every leaf beneath it.
type Node struct {
	Op            compute.Op
	Vertex        int
	VerticesBegin int
	VerticesEnd   int
}

// IsLeaf reports whether this node's span covers exactly one vertex.
func (n Node) IsLeaf() bool { return n.VerticesBegin+1 == n.VerticesEnd }

// Size returns the number of leaves under this node.
func (n Node) Size() int { return n.VerticesEnd - n.VerticesBegin }

// Label renders this node's own symbol: its vertex id for a leaf, its
// operator letter (P/J/U) otherwise.
func (n Node) Label() string {
	if n.IsLeaf() {
		return strconv.Itoa(n.Vertex)
	}
	return n.Op.String()
}
