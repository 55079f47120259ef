// SPDX-License-Identifier: MIT
// Package: moddecomp/graphgen
//
// errors.go — sentinel errors for the graphgen package.

package graphgen

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates a size parameter (n, numCenters, ...) fell
// below the minimum a constructor requires.
var ErrTooFewVertices = errors.New("graphgen: parameter too small")

// ErrInvalidDegree indicates RandomRegular was asked for a degree outside
// [0, n) or an (n, d) pair with an odd n*d, which no simple graph can
// realize.
var ErrInvalidDegree = errors.New("graphgen: invalid degree for n")

// ErrConstructFailed indicates RandomRegular exhausted its bounded
// stub-matching retries without finding a loop-free, multiedge-free
// pairing.
var ErrConstructFailed = errors.New("graphgen: construction failed")

func errorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
