// SPDX-License-Identifier: MIT
// Package: moddecomp/graph
//
// errors.go — sentinel errors for the graph package.
//
// Error policy (explicit and strict), matching forest's:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using %w (see errorf below).

package graph

import (
	"errors"
	"fmt"
)

// ErrSelfLoop indicates AddEdge encountered u == v (the edge-list reader
// reports a self-loop as ErrMalformedEdgeList instead).
// Self-loops are rejected outright; the caller never sees a graph with one.
var ErrSelfLoop = errors.New("graph: self-loop is not allowed")

// ErrVertexOutOfRange indicates an operation referenced a vertex id outside
// [0, n).
var ErrVertexOutOfRange = errors.New("graph: vertex out of range")

// ErrMalformedEdgeList indicates ReadEdgeList encountered a line that is
// not zero or two whitespace-separated non-negative integers, or an
// underlying I/O error. A scanner error, if any, appears in the message
// text only; it is not part of the error chain.
var ErrMalformedEdgeList = errors.New("graph: malformed edge list")

// ErrBackingOverflow indicates the caller explicitly requested a dense
// (bitset) backing via WithDenseBacking but n exceeds DenseBackingLimit.
// This is the "Overflow" error kind: it only ever fires when a bounded
// dense backing was selected by the caller, never in auto mode.
var ErrBackingOverflow = errors.New("graph: n too large for dense backing")

func errorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
