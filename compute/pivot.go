package compute

import "github.com/katalvlaran/moddecomp/forest"

// moveTo detaches node (if attached) and reattaches it as newParent's first
// child. This is the pipeline's most common surgery composite: nearly every
// pass phrases "move x under y" rather than caring about x's old position.
func moveTo(t *forest.Arena[Payload], node, newParent int) error {
	if err := t.Detach(node); err != nil {
		return err
	}
	return t.AttachAsFirstChild(newParent, node)
}

// doPivot implements the layering step of §4.5.1: it duplicates prob's
// payload into a new replacement node, demotes prob to a plain (soon
// possibly-empty) layer under replacement, carves out a connected layer for
// the pivot itself, and distributes p's neighbors via processNeighbors.
// Returns replacement's handle.
func (s *state) doPivot(prob, p int) (int, error) {
	t := s.tree
	replacement := t.Create(*t.Payload(prob))
	if err := t.Swap(prob, replacement); err != nil {
		return forest.None, err
	}
	if err := moveTo(t, prob, replacement); err != nil {
		return forest.None, err
	}
	t.Payload(replacement).Vertex = p

	pp := t.Payload(prob)
	pp.Active = false
	pp.Connected = false
	pp.Vertex = -1

	pivotProb := t.Create(NewProblemPayload(true))
	if err := moveTo(t, pivotProb, replacement); err != nil {
		return forest.None, err
	}
	if err := moveTo(t, s.vertexNodes[p], pivotProb); err != nil {
		return forest.None, err
	}

	nbrProb := t.Create(NewProblemPayload(true))
	if err := moveTo(t, nbrProb, replacement); err != nil {
		return forest.None, err
	}
	if err := s.processNeighbors(p, prob, nbrProb); err != nil {
		return forest.None, err
	}

	if t.NumChildren(prob) == 0 {
		if err := t.Detach(prob); err != nil {
			return forest.None, err
		}
		if err := t.Remove(prob); err != nil {
			return forest.None, err
		}
	}
	if t.NumChildren(nbrProb) == 0 {
		if err := t.Detach(nbrProb); err != nil {
			return forest.None, err
		}
		if err := t.Remove(nbrProb); err != nil {
			return forest.None, err
		}
	}
	return replacement, nil
}

// processNeighbors distributes p's graph neighbors across the layered
// forest per §4.3/§4.5.1. nbrProb may be forest.None only when called from
// the pipeline driver's base case, in which case every neighbor must be
// either already visited or destined for pull-forward (a singleton problem
// has no sibling to move into).
func (s *state) processNeighbors(p, currentProb, nbrProb int) error {
	t := s.tree
	for _, nbr := range s.g.Neighbors(p) {
		switch {
		case s.visited[nbr]:
			s.alpha.Append(nbr, p)
		case t.Parent(s.vertexNodes[nbr]) == currentProb:
			if nbrProb == forest.None {
				return errorf("processNeighbors", ErrPreconditionViolated, "neighbor %d shares the base-case layer but no neighbor subproblem exists", nbr)
			}
			if err := moveTo(t, s.vertexNodes[nbr], nbrProb); err != nil {
				return err
			}
		default:
			if err := s.pullForward(nbr); err != nil {
				return err
			}
		}
	}
	return nil
}

// isPivotLayer reports whether node is the singleton layer holding exactly
// the pivot vertex: its parent is a problem/replacement node whose fixed
// pivot equals node's own first child's vertex.
func (s *state) isPivotLayer(node int) bool {
	t := s.tree
	p := t.Parent(node)
	if p == forest.None {
		return false
	}
	fc := t.FirstChild(node)
	if fc == forest.None {
		return false
	}
	return t.Payload(p).IsProblem() && t.Payload(p).Vertex == t.Payload(fc).Vertex
}

// pullForward moves v one layer to the left, creating a new connected layer
// ahead of it first when the immediate left layer is already active or is
// the pivot's own layer (both of which must not gain new members mid-pass).
func (s *state) pullForward(v int) error {
	t := s.tree
	vh := s.vertexNodes[v]
	currentLayer := t.Parent(vh)
	if currentLayer == forest.None {
		return errorf("pullForward", ErrPreconditionViolated, "vertex %d has no enclosing layer", v)
	}
	if t.Payload(currentLayer).Connected {
		return nil
	}
	prevLayer := t.LeftSibling(currentLayer)
	if prevLayer == forest.None {
		return errorf("pullForward", ErrPreconditionViolated, "layer for vertex %d has no left neighbor", v)
	}
	if t.Payload(prevLayer).Active || s.isPivotLayer(prevLayer) {
		newLayer := t.Create(NewProblemPayload(true))
		if err := t.MoveBefore(newLayer, currentLayer); err != nil {
			return err
		}
		prevLayer = newLayer
	}
	if t.Payload(prevLayer).Connected {
		if err := moveTo(t, vh, prevLayer); err != nil {
			return err
		}
	}
	if t.NumChildren(currentLayer) == 0 {
		if err := t.Detach(currentLayer); err != nil {
			return err
		}
		return t.Remove(currentLayer)
	}
	return nil
}
