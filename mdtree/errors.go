// SPDX-License-Identifier: MIT
// Package: moddecomp/mdtree
//
// errors.go — sentinel errors for the mdtree package.

package mdtree

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/moddecomp/forest"
)

// ErrInvalidHandle re-exports forest.ErrInvalidHandle.
var ErrInvalidHandle = forest.ErrInvalidHandle

// ErrMalformedComputeTree indicates FromComputeTree was handed a compute
// forest that still contains a problem node reachable from the given root —
// the compute pipeline did not fully reduce it.
var ErrMalformedComputeTree = errors.New("mdtree: compute tree still contains a problem node")

// ErrIndexOutOfRange indicates Vertex was called with i outside [0, n).
var ErrIndexOutOfRange = errors.New("mdtree: vertex index out of range")

func errorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
