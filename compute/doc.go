// Package compute implements the modular-decomposition pipeline: the
// Compute Node Payload, the Alpha-List Store, and the four algorithmic
// passes (Pivot, Refine, Promote, Assemble) driven by a single pipeline
// loop, all sharing one forest.Arena[Payload].
//
// Why one arena for everything? Vertex nodes, subproblem headers, and
// constructed operation nodes are structurally identical as far as the
// forest is concerned (parent/children/siblings); only their Payload
// differs. Keeping them in the same arena lets every surgery (splice a
// subtree, collapse a degenerate parent, swap two layers) be a single
// forest call regardless of which kind of node it touches.
//
// Key Types:
//
//   - Payload: the tagged per-node record (vertex/problem/operation).
//   - AlphaLists: the per-vertex cross-edge table.
//
// Compute returns the arena itself plus the root handle of the compute
// tree; mdtree.FromComputeTree consumes that pair.
//
// Complexity: Compute runs in time linear in n+m for the passes' claimed
// bound; see each pass's own doc comment for its individual contribution.
//
// Errors: ErrInvalidHandle / ErrPreconditionViolated are re-exports of the
// identically-named forest sentinels — every fatal condition below them is
// an arena surgery precondition failure, which is always an internal bug,
// never a recoverable runtime state (see §5/§7 of the governing design).
//
// Functions: Compute, NewAlphaLists, NewVertexPayload/NewProblemPayload/
// NewOperationPayload.
package compute
