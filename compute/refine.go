package compute

import "github.com/katalvlaran/moddecomp/forest"

// isRootOperator reports whether h sits directly under a non-operation
// ancestor (a problem node, or has no parent at all) — i.e. it is the
// topmost node of its operation subtree.
func (s *state) isRootOperator(h int) bool {
	p := s.tree.Parent(h)
	return p == forest.None || !s.tree.Payload(p).IsOperation()
}

// numberByComp assigns comp_number to every node in prob's subtree. The
// pivot's own position flips the implicit top-level operation from SERIES
// to PARALLEL; a child matching that implicit op contributes one
// comp_number per one of ITS children (a "co-component"), everything else
// gets a single fresh comp_number for its whole subtree.
func (s *state) numberByComp(prob int) {
	t := s.tree
	compNumber := 0
	pivot := t.Payload(prob).Vertex
	op := OpSeries
	for _, c := range t.Children(prob) {
		if t.Payload(c).Vertex == pivot {
			op = OpParallel
		}
		if t.Payload(c).Op == op {
			for _, x := range t.Children(c) {
				for _, y := range t.DFSPreRev(x) {
					t.Payload(y).CompNumber = compNumber
				}
				compNumber++
			}
		} else {
			for _, y := range t.DFSPreRev(c) {
				t.Payload(y).CompNumber = compNumber
			}
			compNumber++
		}
	}
}

// numberByTree assigns a unique tree_number to each direct child of prob,
// propagated to every descendant — the layer index used throughout
// Assemble to talk about "earlier" vs "later" in the factorizing sequence.
func (s *state) numberByTree(prob int) {
	t := s.tree
	treeNumber := 0
	for _, c := range t.Children(prob) {
		for _, y := range t.DFSPreRev(c) {
			t.Payload(y).TreeNumber = treeNumber
		}
		treeNumber++
	}
}

// addSplitMark applies dir to h, incrementing its parent's nL/nR counter
// when this is the first time h carries dir. When shouldRecurse and h is a
// PRIME operation with not-yet-all children marked, propagate dir onto
// every unmarked child too — a single comp_number or mu computation later
// only has to look one level down, never arbitrarily deep.
func (s *state) addSplitMark(h int, dir Split, shouldRecurse bool) {
	t := s.tree
	pl := t.Payload(h)
	if !pl.IsSplitMarked(dir) {
		if p := t.Parent(h); p != forest.None && t.Payload(p).IsOperation() {
			t.Payload(p).IncrementSplitChildren(dir)
		}
		pl.SetSplitMark(dir)
	}
	if !shouldRecurse || pl.Op != OpPrime {
		return
	}
	if t.NumChildren(h) == pl.NumSplitChildren(dir) {
		return
	}
	for _, c := range t.Children(h) {
		if !t.Payload(c).IsSplitMarked(dir) {
			pl.IncrementSplitChildren(dir)
			t.Payload(c).SetSplitMark(dir)
		}
	}
}

// markAncestorsBySplit walks up from node, marking every ancestor with dir
// until it reaches a problem node or an ancestor that already carries dir
// (whose own ancestors must already carry it too, by induction).
func (s *state) markAncestorsBySplit(node int, dir Split) {
	t := s.tree
	for p := t.Parent(node); p != forest.None; p = t.Parent(p) {
		if t.Payload(p).IsProblem() {
			break
		}
		if t.Payload(p).IsSplitMarked(dir) {
			s.addSplitMark(p, dir, true)
			break
		}
		s.addSplitMark(p, dir, true)
	}
}

// isParentFullyCharged reports whether x's parent has accumulated as many
// charges as it has children — the charge/discharge terminal condition.
func (s *state) isParentFullyCharged(x int) bool {
	if s.isRootOperator(x) {
		return false
	}
	p := s.tree.Parent(x)
	return s.tree.NumChildren(p) == s.tree.Payload(p).Marks
}

// getMaxSubtrees finds the maximal subtrees whose leaf set is a subset of
// the given leaf handles, via charge/discharge: each leaf charges its
// parent; a parent that accumulates a charge per child is itself fully
// charged and charges its own parent in turn. The result is every fully
// charged node whose parent is not also fully charged — anything higher
// would over-claim leaves outside the input set.
func (s *state) getMaxSubtrees(leaves []int) []int {
	t := s.tree
	fullCharged := append([]int(nil), leaves...)
	var charged []int

	for idx := 0; idx < len(fullCharged); idx++ {
		x := fullCharged[idx]
		if s.isRootOperator(x) {
			continue
		}
		p := t.Parent(x)
		pl := t.Payload(p)
		if pl.Marks == 0 {
			charged = append(charged, p)
		}
		pl.AddMark()
		if t.NumChildren(p) == pl.Marks {
			fullCharged = append(fullCharged, p)
		}
	}

	var ret []int
	for _, x := range fullCharged {
		if !s.isParentFullyCharged(x) {
			ret = append(ret, x)
		}
	}
	for _, x := range charged {
		t.Payload(x).ClearMarks()
	}
	return ret
}

// groupSiblingNodes classifies maximal subtrees (no node an ancestor of
// another) into three shapes: (1) already a root operator — left alone;
// (2) the sole marked child of its parent — used directly, no new node;
// (3) one of several marked siblings — gathered under a freshly cloned
// parent so the group can be moved as a unit. Returns, per group, the
// group's handle and whether it is a newly-created PRIME (so callers know
// whether recursive mark propagation is safe).
func (s *state) groupSiblingNodes(nodes []int) []groupResult {
	t := s.tree
	var parents []int
	var out []groupResult

	for _, node := range nodes {
		if s.isRootOperator(node) {
			out = append(out, groupResult{handle: node, newPrime: false})
			continue
		}
		_ = t.MakeFirstChild(node)
		p := t.Parent(node)
		pl := t.Payload(p)
		if pl.Marks == 0 {
			parents = append(parents, p)
		}
		pl.AddMark()
	}

	for _, p := range parents {
		pl := t.Payload(p)
		c := t.FirstChild(p)
		if pl.Marks == 1 {
			out = append(out, groupResult{handle: c, newPrime: false})
		} else {
			grouped := t.Create(*pl)
			gl := t.Payload(grouped)
			gl.ClearMarks()
			for _, dir := range [...]Split{SplitLeft, SplitRight} {
				if gl.IsSplitMarked(dir) {
					pl.IncrementSplitChildren(dir)
				}
			}
			// Only the first pl.Marks children of p are candidates: a child
			// moved into `grouped` during this loop must never be revisited
			// as if it were still one of p's original children.
			children := t.Children(p)
			n := pl.Marks
			if n > len(children) {
				n = len(children)
			}
			for _, c := range children[:n] {
				cl := t.Payload(c)
				for _, dir := range [...]Split{SplitLeft, SplitRight} {
					if cl.IsSplitMarked(dir) {
						pl.DecrementSplitChildren(dir)
						gl.IncrementSplitChildren(dir)
					}
				}
				_ = moveTo(t, c, grouped)
			}
			_ = moveTo(t, grouped, p)
			out = append(out, groupResult{handle: grouped, newPrime: gl.Op == OpPrime})
		}
		pl.ClearMarks()
	}
	return out
}

type groupResult struct {
	handle   int
	newPrime bool
}

// getSplitType decides LEFT vs RIGHT for a subtree being refined by
// refiner relative to the fixed pivot: strictly before the pivot's layer,
// or strictly after the refiner's own layer, goes LEFT; everything else
// goes RIGHT.
func (s *state) getSplitType(refiner, pivot, node int) Split {
	t := s.tree
	pivotTN := t.Payload(s.vertexNodes[pivot]).TreeNumber
	refinerTN := t.Payload(s.vertexNodes[refiner]).TreeNumber
	currentTN := t.Payload(node).TreeNumber
	if currentTN < pivotTN || refinerTN < currentTN {
		return SplitLeft
	}
	return SplitRight
}

// refineOneNode implements §4.5.2 step (c): lift node out of a root-level
// parent by splitting the tree in two, clone a non-PRIME parent into two
// operators straddling node, or (parent already PRIME) leave structure
// alone and just mark — then propagate the mark upward.
func (s *state) refineOneNode(node int, dir Split, newPrime bool) error {
	t := s.tree
	if s.isRootOperator(node) {
		return nil
	}
	p := t.Parent(node)
	newSibling := forest.None

	if s.isRootOperator(p) {
		var err error
		if dir == SplitLeft {
			err = t.MoveBefore(node, p)
		} else {
			err = t.MoveAfter(node, p)
		}
		if err != nil {
			return err
		}
		nl := t.Payload(node)
		pl := t.Payload(p)
		for _, st := range [...]Split{SplitLeft, SplitRight} {
			if nl.IsSplitMarked(st) {
				pl.DecrementSplitChildren(st)
			}
		}
		newSibling = p
		if t.NumChildren(p) == 1 {
			if err := t.ReplaceByChildren(p); err != nil {
				return err
			}
			if err := t.Remove(p); err != nil {
				return err
			}
			newSibling = forest.None
		}
	} else if t.Payload(p).Op != OpPrime {
		replacement := t.Create(*t.Payload(p))
		if err := t.Replace(p, replacement); err != nil {
			return err
		}
		if err := moveTo(t, node, replacement); err != nil {
			return err
		}
		if err := moveTo(t, p, replacement); err != nil {
			return err
		}
		newSibling = p

		nl := t.Payload(node)
		pl := t.Payload(p)
		rl := t.Payload(replacement)
		for _, st := range [...]Split{SplitLeft, SplitRight} {
			if nl.IsSplitMarked(st) {
				pl.DecrementSplitChildren(st)
				rl.IncrementSplitChildren(st)
			}
			if pl.IsSplitMarked(st) {
				rl.IncrementSplitChildren(st)
			}
		}
	}

	s.addSplitMark(node, dir, newPrime)
	s.markAncestorsBySplit(node, dir)
	if newSibling != forest.None {
		s.addSplitMark(newSibling, dir, true)
	}
	return nil
}

// refineWith runs one refiner vertex's contribution to refine: find the
// maximal subtrees covered by its alpha-list, group them, and split-mark
// each group relative to pivot.
func (s *state) refineWith(refiner, pivot int) error {
	leafHandles := make([]int, 0, len(s.alpha.Get(refiner)))
	for _, x := range s.alpha.Get(refiner) {
		leafHandles = append(leafHandles, s.vertexNodes[x])
	}
	subtreeRoots := s.getMaxSubtrees(leafHandles)
	groups := s.groupSiblingNodes(subtreeRoots)
	for _, g := range groups {
		dir := s.getSplitType(refiner, pivot, g.handle)
		if err := s.refineOneNode(g.handle, dir, g.newPrime); err != nil {
			return err
		}
	}
	return nil
}

// refine is §4.5.2 end to end: number every node by component and by tree,
// then run refineWith for every leaf of prob, in left-to-right order.
func (s *state) refine(prob int) error {
	s.numberByComp(prob)
	s.numberByTree(prob)
	pivot := s.tree.Payload(prob).Vertex
	for _, v := range s.tree.Leaves(prob) {
		if err := s.refineWith(s.tree.Payload(v).Vertex, pivot); err != nil {
			return err
		}
	}
	return nil
}
