// Package mdtree wraps the result of compute.Compute into the external
// modular-decomposition tree: a forest.Arena[Node] with bottom-up leaf spans,
// the vertex order those spans index into, and the handful of queries a
// consumer of the decomposition actually needs.
//
// Why a separate forest from compute: the compute forest's Payload carries a
// pass's entire working state (comp/tree numbers, split marks, charge
// counters) that is meaningless once the pipeline has finished; mdtree.Node
// is the minimal, stable shape a caller should have to look at.
//
// Key Types:
//
//   - Node: a leaf (graph vertex) or operator (P/J/U) record with a
//     [VerticesBegin, VerticesEnd) leaf span.
//   - Tree: the arena plus its root handle and left-to-right vertex order.
//
// Complexity: FromComputeTree is O(n). ModularWidth and String are O(size of
// tree). Sort is O(n log n).
//
// Errors: ErrMalformedComputeTree (a problem node survived reduction),
// ErrIndexOutOfRange, ErrInvalidHandle (re-exported from forest).
package mdtree
