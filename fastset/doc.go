// Package fastset implements a fixed-capacity, generation-stamped integer
// set with O(1) Clear.
//
// Why not map[int]struct{} or a plain bool slice? A bool slice needs an
// O(capacity) memset on every Clear; a map pays hashing and allocation on
// every Set. The refinement pass (see compute) clears and repopulates a
// scratch set on the order of once per vertex processed, so paying
// O(capacity) per clear would turn the decomposition's linear-time claim
// into O(n^2). Stamping each slot with the current "generation" and bumping
// the generation counter on Clear amortizes that cost to O(1), at the price
// of an O(capacity) rewrite only when the generation counter itself wraps.
//
// Complexity: Set/Reset/Get are O(1). Clear is O(1) amortized, O(capacity)
// on generation overflow. Resize is O(capacity).
package fastset
