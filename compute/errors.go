// SPDX-License-Identifier: MIT
// Package: moddecomp/compute
//
// errors.go — sentinel errors for the compute package.
//
// compute has no surgery primitives of its own; every fatal condition it can
// hit is either an arena precondition failure (re-exported from forest so
// callers need only import one error family per failure class) or the one
// condition specific to this package: a neighbor source reporting no
// vertices (n <= 0).

package compute

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/moddecomp/forest"
)

// ErrInvalidHandle re-exports forest.ErrInvalidHandle: every compute-level
// arena access failure is, definitionally, an arena-level one.
var ErrInvalidHandle = forest.ErrInvalidHandle

// ErrPreconditionViolated re-exports forest.ErrPreconditionViolated.
var ErrPreconditionViolated = forest.ErrPreconditionViolated

// ErrInconsistentSize indicates Compute was called with a neighbor source
// whose NumVertices is n <= 0 (an empty graph included). Neighbor ids are
// not range-checked against n.
var ErrInconsistentSize = errors.New("compute: inconsistent graph size")

func errorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
