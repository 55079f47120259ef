// Package graph provides the Graph collaborator the decomposition engine
// (see compute) is built against: an undirected simple graph over integer
// vertex ids 0..n-1 with no self-loops, a pluggable dense-bitset or
// sparse-set adjacency backing, and an edge-list reader.
//
// Why pluggable backing? Dense graphs on a few thousand vertices are
// cheapest to query as bitsets; sparse graphs on 10^4-10^5 vertices would
// waste memory the same way. BackingAuto picks per n unless the caller
// overrides it with WithDenseBacking/WithSparseBacking.
//
// Key Types:
//
//   - Graph: the adjacency-set container.
//   - Option: functional configuration (WithDenseBacking, WithSparseBacking,
//     WithAutoBacking).
//
// Complexity: AddEdge/HasEdge/Degree are O(1) dense, O(log d) sparse.
// Neighbors is O(n/64) dense, O(d) sparse. ReadEdgeList is O(V+E).
//
// Errors: ErrSelfLoop, ErrVertexOutOfRange, ErrMalformedEdgeList,
// ErrBackingOverflow (only when WithDenseBacking is explicitly selected and
// n exceeds DenseBackingLimit).
package graph
