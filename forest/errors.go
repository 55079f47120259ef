// SPDX-License-Identifier: MIT
// Package: moddecomp/forest
//
// errors.go — sentinel errors for the forest package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context using %w (see errorf below).

package forest

import (
	"errors"
	"fmt"
)

// ErrInvalidHandle indicates a surgery or query was given a handle that is
// either out of range or refers to a node that has already been removed.
// This is always a bug in the caller, not a recoverable runtime condition.
var ErrInvalidHandle = errors.New("forest: invalid handle")

// ErrPreconditionViolated indicates a surgery's structural precondition did
// not hold (e.g. swap called on two handles in the same tree, remove called
// on a node that still has children, move-before/after called with a root
// target). The wrapped context (via errorf) names the specific precondition.
var ErrPreconditionViolated = errors.New("forest: precondition violated")

// errorf wraps an inner error with call-specific context, preserving the
// sentinel for errors.Is.
func errorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
