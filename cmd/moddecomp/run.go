// SPDX-License-Identifier: MIT
// Package: moddecomp/cmd/moddecomp
//
// run.go — the three-line stdout contract: modular width, elapsed seconds,
// parenthesized tree string. Grounded on original_source's modular-bench.cpp,
// which does exactly this around a single call to modular_decomposition_time.

package main

import (
	"fmt"
	"io"
	"time"

	charmlog "github.com/charmbracelet/log"

	"github.com/katalvlaran/moddecomp/compute"
	"github.com/katalvlaran/moddecomp/graph"
	"github.com/katalvlaran/moddecomp/mdtree"
)

// decompose reads an edge list from r, computes its modular decomposition,
// and writes the three-line result to out:
//
//	<modular width>
//	<elapsed seconds, %.10f>
//	<parenthesized tree string>
func decompose(r io.Reader, out io.Writer, cfg runConfig, logger *charmlog.Logger, runID string) error {
	var opts []graph.Option
	if cfg.DenseMaxN > 0 {
		opts = append(opts, graph.WithAutoBacking(cfg.DenseMaxN))
	}

	logger.Debug("reading edge list", "run_id", runID)
	g, err := graph.ReadEdgeList(r, opts...)
	if err != nil {
		return errorf("decompose", ErrBadInput, "%v", err)
	}
	logger.Debug("graph loaded", "run_id", runID, "n", g.NumVertices(), "m", g.NumEdges(), "backing", g.Backing())

	start := time.Now()
	compTree, root, err := compute.Compute(g)
	if err != nil {
		return err
	}
	tree, err := mdtree.FromComputeTree(compTree, root)
	if err != nil {
		return err
	}
	tree.Sort()
	elapsed := time.Since(start)
	logger.Debug("decomposition complete", "run_id", runID, "elapsed", elapsed)

	fmt.Fprintf(out, "%d\n", tree.ModularWidth())
	fmt.Fprintf(out, "%.10f\n", elapsed.Seconds())
	fmt.Fprintf(out, "%s\n", tree.String())
	return nil
}
