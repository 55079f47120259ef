// Package forest implements an intrusive, arena-backed, doubly-linked-sibling
// rooted forest addressed entirely by integer handles.
//
// Why an arena? Every consumer of this package (see compute) performs
// thousands of small, in-place surgeries per computation — detach a node,
// splice it before a sibling, swap two subtrees, collapse a degenerate
// parent. Modeling that with pointers and a garbage collector works, but
// handle-based slots let removed nodes be recycled without ever touching the
// allocator, and let every surgery be expressed as a handful of integer
// writes.
//
// Key Types:
//
//   - Arena[T]: the node store. T is the per-node payload; the arena itself
//     never inspects T, so payload-level bookkeeping (e.g. incrementing a
//     "children with this mark" counter) is the caller's responsibility and
//     happens around calls into the arena, not inside it.
//   - Handle: a plain int. None (-1) denotes "no node" in every field.
//
// Complexity: Create/Detach/MoveBefore/MoveAfter/Swap/Replace/
// AdoptChildrenOf/MakeFirstChild are all O(1). ReplaceByChildren/
// ReplaceChildren are O(children). Traversals are O(size of subtree).
//
// Errors: every surgery returns ErrInvalidHandle for a dead or unknown
// handle, or ErrPreconditionViolated (wrapped with call-specific context)
// for a violated precondition. These indicate a caller/algorithm bug, not a
// recoverable runtime condition — see compute's error-handling design.
//
// Functions: Create, Remove, Detach, AttachAsFirstChild, MoveBefore,
// MoveAfter, Swap, Replace, ReplaceByChildren, ReplaceChildren,
// AdoptChildrenOf, MakeFirstChild, Children, BFS, DFSPre, DFSPreRev, Leaves,
// Ancestors, RootOf, CheckConsistency.
package forest
