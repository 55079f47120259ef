package compute

import "github.com/katalvlaran/moddecomp/forest"

// promote is §4.5.3: lift every split-marked node to the fringe of its
// problem, LEFT sweep fully before RIGHT (the factorizing-permutation
// semantics depend on that ordering, not on interleaving the two).
func (s *state) promote(prob int) error {
	if err := s.promoteOneDirection(prob, SplitLeft); err != nil {
		return err
	}
	return s.promoteOneDirection(prob, SplitRight)
}

func (s *state) promoteOneDirection(prob int, dir Split) error {
	for _, c := range s.tree.Children(prob) {
		if err := s.promoteOneNode(c, dir); err != nil {
			return err
		}
	}
	return nil
}

type promoteFrame struct {
	forward bool
	node    int
}

// promoteOneNode walks node's subtree in pre-order with an explicit stack
// (mirroring the non-recursive reference implementation): on the forward
// visit of a split-marked node, lift it to become the left/right sibling of
// its own parent, then keep descending into what it used to contain; on the
// backward visit, collapse degenerate operation nodes left empty or
// single-childed by everything that got lifted out of them.
func (s *state) promoteOneNode(node int, dir Split) error {
	t := s.tree
	if t.FirstChild(node) == forest.None {
		return nil
	}
	stack := []promoteFrame{{false, node}, {true, t.FirstChild(node)}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.forward {
			nd := f.node
			if r := t.RightSibling(nd); r != forest.None {
				stack = append(stack, promoteFrame{true, r})
			}
			if t.Payload(nd).IsSplitMarked(dir) {
				p := t.Parent(nd)
				var err error
				if dir == SplitLeft {
					err = t.MoveBefore(nd, p)
				} else {
					err = t.MoveAfter(nd, p)
				}
				if err != nil {
					return err
				}
				if fc := t.FirstChild(nd); fc != forest.None {
					stack = append(stack, promoteFrame{false, nd}, promoteFrame{true, fc})
				}
			}
		} else {
			nd := f.node
			if t.IsLeaf(nd) && t.Payload(nd).IsOperation() {
				if err := t.Detach(nd); err != nil {
					return err
				}
				if err := t.Remove(nd); err != nil {
					return err
				}
			} else if t.NumChildren(nd) == 1 {
				if err := t.ReplaceByChildren(nd); err != nil {
					return err
				}
				if err := t.Remove(nd); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
