package compute

import (
	"github.com/katalvlaran/moddecomp/fastset"
	"github.com/katalvlaran/moddecomp/forest"
)

// NeighborSource is the minimal Graph capability the pipeline needs: vertex
// count and neighbor iteration. Kept this narrow, per §6, so compute never
// imports the graph package directly — any collaborator satisfying this
// (the real graph.Graph, a test fixture, a view over a subgraph) works.
type NeighborSource interface {
	NumVertices() int
	Neighbors(u int) []int
}

// state bundles every piece of mutable pipeline state threaded through the
// four passes: the shared arena, the input graph, the vertex-id-to-handle
// table, the alpha-list store, the visited set, and the fast-set scratch.
// Only Compute constructs one; every pass method hangs off *state so the
// passes read like the reference's free functions with an implicit first
// argument, not like independent subsystems.
type state struct {
	tree        *forest.Arena[Payload]
	g           NeighborSource
	vertexNodes []int
	alpha       *AlphaLists
	visited     []bool
	scratch     *fastset.Set
}

// Compute runs the full modular-decomposition pipeline against g: build the
// initial forest (n vertex leaves under one main problem), drive pivot /
// refine / promote / assemble to completion, and return the arena together
// with the handle of the resulting compute tree's root.
func Compute(g NeighborSource) (*forest.Arena[Payload], int, error) {
	n := g.NumVertices()
	if n <= 0 {
		return nil, forest.None, errorf("Compute", ErrInconsistentSize, "graph has %d vertices", n)
	}

	tree := forest.New[Payload](4 * n)
	mainProb := tree.Create(NewProblemPayload(false))

	vertexNodes := make([]int, n)
	for v := n - 1; v >= 0; v-- {
		h := tree.Create(NewVertexPayload(v))
		vertexNodes[v] = h
		if err := moveTo(tree, h, mainProb); err != nil {
			return nil, forest.None, err
		}
	}

	s := &state{
		tree:        tree,
		g:           g,
		vertexNodes: vertexNodes,
		alpha:       NewAlphaLists(n),
		visited:     make([]bool, n),
		scratch:     fastset.New(n),
	}

	result, err := s.run(mainProb)
	if err != nil {
		return nil, forest.None, err
	}
	return tree, result, nil
}

// run is the pipeline driver loop of §4.4. current_problem dives into
// unexplored subproblems via pivoting, and reduces finished ones via
// refine/promote/assemble/merge once every child is itself a solved
// problem, advancing to the right sibling (or up to the parent) each time.
func (s *state) run(mainProb int) (int, error) {
	t := s.tree
	currentProb := mainProb
	result := forest.None

	for currentProb != forest.None {
		fc := t.FirstChild(currentProb)
		if fc == forest.None {
			return forest.None, errorf("run", ErrPreconditionViolated, "problem %d has no children", currentProb)
		}
		t.Payload(currentProb).Active = true

		if !t.Payload(fc).IsProblem() {
			s.visited[t.Payload(fc).Vertex] = true

			if t.NumChildren(currentProb) == 1 {
				if err := s.processNeighbors(t.Payload(fc).Vertex, currentProb, forest.None); err != nil {
					return forest.None, err
				}
			} else {
				pivoted, err := s.doPivot(currentProb, t.Payload(fc).Vertex)
				if err != nil {
					return forest.None, err
				}
				next := t.FirstChild(pivoted)
				if next == forest.None {
					return forest.None, errorf("run", ErrPreconditionViolated, "pivoted problem %d ended childless", pivoted)
				}
				currentProb = next
				continue
			}
		} else {
			extra, err := s.removeExtraComponents(currentProb)
			if err != nil {
				return forest.None, err
			}
			if err := s.removeLayers(currentProb); err != nil {
				return forest.None, err
			}
			s.alpha.Complete(s.leafVertexIDs(currentProb), s.scratch)
			if err := s.refine(currentProb); err != nil {
				return forest.None, err
			}
			if err := s.promote(currentProb); err != nil {
				return forest.None, err
			}
			if err := s.assemble(currentProb); err != nil {
				return forest.None, err
			}
			s.clearDescendantState(currentProb)
			if err := s.mergeComponents(currentProb, extra); err != nil {
				return forest.None, err
			}
		}

		result = t.FirstChild(currentProb)
		if r := t.RightSibling(currentProb); r != forest.None {
			currentProb = r
		} else {
			currentProb = t.Parent(currentProb)
		}
	}

	if result == forest.None {
		return forest.None, errorf("run", ErrPreconditionViolated, "pipeline produced no result")
	}
	resultParent := t.Parent(result)
	if resultParent == forest.None {
		return forest.None, errorf("run", ErrPreconditionViolated, "result %d has no enclosing problem", result)
	}
	if err := t.Detach(result); err != nil {
		return forest.None, err
	}
	if err := t.Remove(resultParent); err != nil {
		return forest.None, err
	}
	return result, nil
}

// removeExtraComponents strips the last, unconnected sibling layer of prob
// (if any) and returns its single child — the detached MD subtree set
// aside for later reattachment by mergeComponents.
func (s *state) removeExtraComponents(prob int) (int, error) {
	t := s.tree
	subprob := t.FirstChild(prob)
	for subprob != forest.None && t.Payload(subprob).Connected {
		subprob = t.RightSibling(subprob)
	}
	if subprob == forest.None {
		return forest.None, nil
	}
	ret := t.FirstChild(subprob)
	if ret == forest.None {
		return forest.None, errorf("removeExtraComponents", ErrPreconditionViolated, "unconnected layer %d has no subtree", subprob)
	}
	if err := t.Detach(ret); err != nil {
		return forest.None, err
	}
	if err := t.Detach(subprob); err != nil {
		return forest.None, err
	}
	if err := t.Remove(subprob); err != nil {
		return forest.None, err
	}
	return ret, nil
}

// removeLayers replaces each subproblem child of prob by its single,
// already-computed MD subtree — the fast variant of §9: each pivoted
// subproblem is guaranteed exactly one child by the time its reduction
// reaches here.
func (s *state) removeLayers(prob int) error {
	t := s.tree
	for _, c := range t.Children(prob) {
		if err := t.ReplaceByChildren(c); err != nil {
			return err
		}
		if err := t.Remove(c); err != nil {
			return err
		}
	}
	return nil
}

// leafVertexIDs returns the graph vertex ids of prob's leaves, left to
// right — the key space AlphaLists.Complete operates on.
func (s *state) leafVertexIDs(prob int) []int {
	t := s.tree
	handles := t.Leaves(prob)
	ids := make([]int, len(handles))
	for i, h := range handles {
		ids[i] = t.Payload(h).Vertex
	}
	return ids
}

// mergeComponents reattaches the extra components detached earlier by
// removeExtraComponents, per §9's chosen variant: when newComponents is
// already a PARALLEL node, prob's result is folded into it (its children
// spliced in if it is PARALLEL too, otherwise moved in whole); otherwise
// both are wrapped under a freshly created PARALLEL root.
func (s *state) mergeComponents(prob, newComponents int) error {
	if newComponents == forest.None {
		return nil
	}
	t := s.tree
	fc := t.FirstChild(prob)
	if fc == forest.None {
		return errorf("mergeComponents", ErrPreconditionViolated, "problem %d has no result to merge into", prob)
	}
	if t.Payload(newComponents).Op == OpParallel {
		if t.Payload(fc).Op == OpParallel {
			if err := t.AdoptChildrenOf(newComponents, fc); err != nil {
				return err
			}
		} else if err := moveTo(t, fc, newComponents); err != nil {
			return err
		}
		return moveTo(t, newComponents, prob)
	}
	newRoot := t.Create(NewOperationPayload(OpParallel))
	if err := moveTo(t, newRoot, prob); err != nil {
		return err
	}
	if err := moveTo(t, newComponents, newRoot); err != nil {
		return err
	}
	return moveTo(t, fc, newRoot)
}

// clearDescendantState resets per-node payload scratch state on every
// descendant of prob's (now singular) result, keeping visited intact, and
// releases each leaf's now-fully-consumed alpha-list entry.
func (s *state) clearDescendantState(prob int) {
	t := s.tree
	root := t.FirstChild(prob)
	if root == forest.None {
		return
	}
	for _, c := range t.DFSPreRev(root) {
		pl := t.Payload(c)
		if t.IsLeaf(c) {
			s.alpha.Reset(pl.Vertex)
		}
		pl.Clear()
	}
}
