// SPDX-License-Identifier: MIT
// Package: moddecomp/graphgen
//
// constructors.go — deterministic topology builders.

package graphgen

import (
	"math/rand"

	"github.com/katalvlaran/moddecomp/graph"
)

const (
	minPathVertices  = 2
	minStarVertices  = 2
	minCycleVertices = 3

	maxStubMatchingAttempts = 100000
)

// Path builds a simple path 0-1-2-...-(n-1).
// Complexity: O(n) vertices, O(n-1) edges.
func Path(n int, opts ...graph.Option) (*graph.Graph, error) {
	if n < minPathVertices {
		return nil, errorf("Path", ErrTooFewVertices, "n=%d < min=%d", n, minPathVertices)
	}
	g, err := graph.New(n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 1; i < n; i++ {
		if err := g.AddEdge(i-1, i); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Cycle builds a simple n-cycle (n >= 3).
// Complexity: O(n) vertices, O(n) edges.
func Cycle(n int, opts ...graph.Option) (*graph.Graph, error) {
	if n < minCycleVertices {
		return nil, errorf("Cycle", ErrTooFewVertices, "n=%d < min=%d", n, minCycleVertices)
	}
	g, err := graph.New(n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 1; i < n; i++ {
		if err := g.AddEdge(i-1, i); err != nil {
			return nil, err
		}
	}
	if err := g.AddEdge(n-1, 0); err != nil {
		return nil, err
	}
	return g, nil
}

// Complete builds the complete graph K_n (n >= 1).
// Complexity: O(n) vertices, O(n^2) edges.
func Complete(n int, opts ...graph.Option) (*graph.Graph, error) {
	if n < 1 {
		return nil, errorf("Complete", ErrTooFewVertices, "n=%d < min=1", n)
	}
	g, err := graph.New(n, opts...)
	if err != nil {
		return nil, err
	}
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if err := g.AddEdge(u, v); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// Edgeless builds an n-vertex graph with no edges (n >= 1).
// Complexity: O(n).
func Edgeless(n int, opts ...graph.Option) (*graph.Graph, error) {
	if n < 1 {
		return nil, errorf("Edgeless", ErrTooFewVertices, "n=%d < min=1", n)
	}
	return graph.New(n, opts...)
}

// Star builds a star with center 0 and n-1 leaves (n >= 2).
// Complexity: O(n) vertices, O(n-1) edges.
func Star(n int, opts ...graph.Option) (*graph.Graph, error) {
	if n < minStarVertices {
		return nil, errorf("Star", ErrTooFewVertices, "n=%d < min=%d", n, minStarVertices)
	}
	g, err := graph.New(n, opts...)
	if err != nil {
		return nil, err
	}
	for leaf := 1; leaf < n; leaf++ {
		if err := g.AddEdge(0, leaf); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// CaterpillarOfStars builds a spine of numCenters vertices (0..numCenters-1,
// connected as a path) with leavesPerCenter pendant leaves hanging off each
// spine vertex, in spine order. numCenters >= 1, leavesPerCenter >= 0.
// Complexity: O(n) where n = numCenters*(1+leavesPerCenter).
func CaterpillarOfStars(numCenters, leavesPerCenter int, opts ...graph.Option) (*graph.Graph, error) {
	if numCenters < 1 {
		return nil, errorf("CaterpillarOfStars", ErrTooFewVertices, "numCenters=%d < min=1", numCenters)
	}
	if leavesPerCenter < 0 {
		return nil, errorf("CaterpillarOfStars", ErrTooFewVertices, "leavesPerCenter=%d < 0", leavesPerCenter)
	}

	n := numCenters * (1 + leavesPerCenter)
	g, err := graph.New(n, opts...)
	if err != nil {
		return nil, err
	}
	for c := 1; c < numCenters; c++ {
		if err := g.AddEdge(c-1, c); err != nil {
			return nil, err
		}
	}
	leaf := numCenters
	for c := 0; c < numCenters; c++ {
		for k := 0; k < leavesPerCenter; k++ {
			if err := g.AddEdge(c, leaf); err != nil {
				return nil, err
			}
			leaf++
		}
	}
	return g, nil
}

// RandomRegular builds an undirected d-regular simple graph on n vertices
// via stub-matching: stubs are shuffled with a seeded RNG and re-shuffled on
// a pairing that would introduce a self-loop or a repeated edge, up to
// maxStubMatchingAttempts attempts.
//
// Requires 0 <= d < n and n*d even; n*d == 0 trivially succeeds with an
// edgeless graph.
// Complexity: O(n*d) per attempt, attempts constant-bounded.
func RandomRegular(n, d int, seed int64, opts ...graph.Option) (*graph.Graph, error) {
	if n < 1 {
		return nil, errorf("RandomRegular", ErrTooFewVertices, "n=%d < min=1", n)
	}
	if d < 0 || d >= n {
		return nil, errorf("RandomRegular", ErrInvalidDegree, "d=%d must be in [0,%d)", d, n)
	}
	if (n*d)%2 != 0 {
		return nil, errorf("RandomRegular", ErrInvalidDegree, "n*d must be even (n=%d, d=%d)", n, d)
	}

	g, err := graph.New(n, opts...)
	if err != nil {
		return nil, err
	}

	stubCount := n * d
	if stubCount == 0 {
		return g, nil
	}
	stubs := make([]int, stubCount)
	for i, pos := 0, 0; i < n; i++ {
		for k := 0; k < d; k++ {
			stubs[pos] = i
			pos++
		}
	}

	rng := rand.New(rand.NewSource(seed))
	for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
		rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

		valid := true
		seen := make(map[[2]int]struct{}, stubCount/2)
		for i := 0; i < stubCount; i += 2 {
			u, v := stubs[i], stubs[i+1]
			if u == v {
				valid = false
				break
			}
			if u > v {
				u, v = v, u
			}
			key := [2]int{u, v}
			if _, dup := seen[key]; dup {
				valid = false
				break
			}
			seen[key] = struct{}{}
		}
		if !valid {
			continue
		}

		for pair := range seen {
			if err := g.AddEdge(pair[0], pair[1]); err != nil {
				return nil, err
			}
		}
		return g, nil
	}

	return nil, errorf("RandomRegular", ErrConstructFailed, "no valid pairing after %d attempts (n=%d, d=%d)", maxStubMatchingAttempts, n, d)
}
