package compute

import "github.com/katalvlaran/moddecomp/forest"

// assemble is §4.5.4 end to end: build the factorizing permutation around
// the pivot, compute the flags and mu-values that drive delineation, walk
// outward from the pivot assembling a PRIME spine, collapse degenerate
// duplicate operators, and splice the result in as prob's sole child.
func (s *state) assemble(prob int) error {
	t := s.tree
	ps := t.Children(prob)
	pivot := t.Payload(prob).Vertex
	pivotIndex := -1
	for i, p := range ps {
		if t.Payload(p).Vertex == pivot {
			pivotIndex = i
			break
		}
	}
	if pivotIndex < 0 {
		return errorf("assemble", ErrPreconditionViolated, "problem %d has no pivot among its children", prob)
	}

	lcocomp := s.determineLeftCocompFragments(ps, pivotIndex)
	rcomp := s.determineRightCompFragments(ps, pivotIndex)
	rlayer := s.determineRightLayerNeighbor(ps, pivotIndex)
	neighbors := s.computeFactPermEdges(ps)
	mu := computeMu(ps, pivotIndex, neighbors)
	boundaries := delineate(pivotIndex, len(ps), lcocomp, rcomp, rlayer, mu)

	root, err := s.assembleTree(ps, pivotIndex, boundaries)
	if err != nil {
		return err
	}
	if err := s.removeDegenerateDuplicates(root); err != nil {
		return err
	}
	return t.ReplaceChildren(prob, root)
}

// determineLeftCocompFragments flags, for each i strictly between the first
// position and the pivot, whether P[i] shares its comp_number with P[i-1]
// (both came from the same co-component and so cannot be split apart by a
// module boundary).
func (s *state) determineLeftCocompFragments(ps []int, pivotIndex int) []bool {
	t := s.tree
	ret := make([]bool, len(ps))
	for i := 1; i < pivotIndex; i++ {
		if t.Payload(ps[i]).CompNumber < 0 {
			continue
		}
		ret[i] = t.Payload(ps[i-1]).CompNumber == t.Payload(ps[i]).CompNumber
	}
	return ret
}

// determineRightCompFragments is the mirror of determineLeftCocompFragments
// for the component side to the right of the pivot.
func (s *state) determineRightCompFragments(ps []int, pivotIndex int) []bool {
	t := s.tree
	ret := make([]bool, len(ps))
	for i := pivotIndex + 1; i < len(ps)-1; i++ {
		if t.Payload(ps[i]).CompNumber < 0 {
			continue
		}
		ret[i] = t.Payload(ps[i]).CompNumber == t.Payload(ps[i+1]).CompNumber
	}
	return ret
}

// determineRightLayerNeighbor flags, for each i right of the pivot, whether
// some leaf under P[i] has a cross-edge reaching into a strictly later
// layer — such a P[i] can never close off a module on its own.
func (s *state) determineRightLayerNeighbor(ps []int, pivotIndex int) []bool {
	t := s.tree
	ret := make([]bool, len(ps))
	hasFartherEdge := func(p int) bool {
		tn := t.Payload(p).TreeNumber
		for _, leaf := range t.Leaves(p) {
			v := t.Payload(leaf).Vertex
			for _, a := range s.alpha.Get(v) {
				if t.Payload(s.vertexNodes[a]).TreeNumber > tn {
					return true
				}
			}
		}
		return false
	}
	for i := pivotIndex + 1; i < len(ps); i++ {
		ret[i] = hasFartherEdge(ps[i])
	}
	return ret
}

// computeFactPermEdges finds, for each factorizing-permutation slot i, the
// set of slots j such that every leaf of P[i] is adjacent to every leaf of
// P[j] (a "join" between the two blocks) — the edges of the factorizing
// permutation's quotient graph.
func (s *state) computeFactPermEdges(ps []int) [][]int {
	t := s.tree
	k := len(ps)
	neighbors := make([][]int, k)
	elemSize := make([]int, k)

	for i, p := range ps {
		for _, leaf := range t.Leaves(p) {
			t.Payload(leaf).CompNumber = i
			elemSize[i]++
		}
	}

	for i, p := range ps {
		var candidates []int
		marks := make([]int, k)
		for _, leaf := range t.Leaves(p) {
			v := t.Payload(leaf).Vertex
			for _, a := range s.alpha.Get(v) {
				j := t.Payload(s.vertexNodes[a]).CompNumber
				candidates = append(candidates, j)
				marks[j]++
			}
		}
		for _, j := range candidates {
			if elemSize[i]*elemSize[j] == marks[j] {
				neighbors[i] = append(neighbors[i], j)
				marks[j] = 0
			}
		}
	}
	return neighbors
}

// computeMu derives, for each slot left of the pivot, the rightmost slot
// its neighborhood reaches (and propagates the corresponding "first time
// fully covered" bump for slots on the right) — the value delineate walks
// to find module boundaries.
func computeMu(ps []int, pivotIndex int, neighbors [][]int) []int {
	mu := make([]int, len(ps))
	for i := range mu {
		if i < pivotIndex {
			mu[i] = pivotIndex
		}
	}
	for i := 0; i < pivotIndex; i++ {
		for _, j := range neighbors[i] {
			if mu[j] == i {
				mu[j] = i + 1
			}
			if j > mu[i] {
				mu[i] = j
			}
		}
	}
	return mu
}

type delineateState struct {
	lb, rb                  int
	leftLastIn, rightLastIn int
}

// delineate finds module boundaries by repeatedly trying a series step, then
// a parallel step, then (if neither absorbs anything) a prime step that may
// itself discover the module spans the whole permutation.
func delineate(pivotIndex, k int, lcocomp, rcomp, rlayer []bool, mu []int) [][2]int {
	st := &delineateState{lb: pivotIndex - 1, rb: pivotIndex + 1, leftLastIn: pivotIndex, rightLastIn: pivotIndex}
	var ret [][2]int

	composeSeries := func() bool {
		absorbed := false
		for st.lb >= 0 && mu[st.lb] <= st.rightLastIn && !lcocomp[st.lb] {
			absorbed = true
			st.leftLastIn = st.lb
			st.lb--
		}
		return absorbed
	}
	composeParallel := func() bool {
		absorbed := false
		for st.rb < k && st.leftLastIn <= mu[st.rb] && !rcomp[st.rb] && !rlayer[st.rb] {
			absorbed = true
			st.rightLastIn = st.rb
			st.rb++
		}
		return absorbed
	}
	composePrime := func() bool {
		var leftQ, rightQ []int
		for {
			leftQ = append(leftQ, st.lb)
			st.leftLastIn = st.lb
			st.lb--
			if !lcocomp[st.leftLastIn] {
				break
			}
		}
		for len(leftQ) > 0 || len(rightQ) > 0 {
			for len(leftQ) > 0 {
				currentLeft := leftQ[0]
				leftQ = leftQ[1:]
				for st.rightLastIn < mu[currentLeft] {
					for {
						rightQ = append(rightQ, st.rb)
						st.rightLastIn = st.rb
						st.rb++
						if rlayer[st.rightLastIn] {
							return true
						}
						if !rcomp[st.rightLastIn] {
							break
						}
					}
				}
			}
			for len(rightQ) > 0 {
				currentRight := rightQ[0]
				rightQ = rightQ[1:]
				for mu[currentRight] < st.leftLastIn {
					for {
						leftQ = append(leftQ, st.lb)
						st.leftLastIn = st.lb
						st.lb--
						if !lcocomp[st.leftLastIn] {
							break
						}
					}
				}
			}
		}
		return false
	}

	step := func() {
		if composeSeries() {
			return
		}
		if composeParallel() {
			return
		}
		if composePrime() {
			st.leftLastIn = 0
			st.rightLastIn = k - 1
			st.lb = st.leftLastIn - 1
			st.rb = st.rightLastIn + 1
		}
	}

	for st.lb >= 0 && st.rb < k {
		step()
		ret = append(ret, [2]int{st.leftLastIn, st.rightLastIn})
	}
	return ret
}

// assembleTree walks the boundaries outward from the pivot, creating one
// PRIME spine node per boundary and folding in the left (neighbor) and
// right (non-neighbor) blocks it absorbed; a spine node that only ever
// absorbed one side degenerates to SERIES or PARALLEL.
func (s *state) assembleTree(ps []int, pivotIndex int, boundaries [][2]int) (int, error) {
	t := s.tree
	k := len(ps)
	lb, rb := pivotIndex-1, pivotIndex+1
	lastModule := ps[pivotIndex]

	for i := 0; lb >= 0 || rb < k; i++ {
		lbound, rbound := 0, k-1
		if i < len(boundaries) {
			lbound, rbound = boundaries[i][0], boundaries[i][1]
		}

		newModule := t.Create(NewOperationPayload(OpPrime))
		if err := moveTo(t, lastModule, newModule); err != nil {
			return forest.None, err
		}

		addedNbrs, addedNonNbrs := false, false
		for lb >= lbound {
			addedNbrs = true
			if err := moveTo(t, ps[lb], newModule); err != nil {
				return forest.None, err
			}
			lb--
		}
		for rb <= rbound {
			addedNonNbrs = true
			if err := moveTo(t, ps[rb], newModule); err != nil {
				return forest.None, err
			}
			rb++
		}

		switch {
		case addedNbrs && addedNonNbrs:
			t.Payload(newModule).Op = OpPrime
		case addedNbrs:
			t.Payload(newModule).Op = OpSeries
		default:
			t.Payload(newModule).Op = OpParallel
		}
		lastModule = newModule
	}
	return lastModule, nil
}

// removeDegenerateDuplicates splices a non-PRIME operation node's children
// directly into its same-labeled parent, bottom-up — a SERIES under a
// SERIES (or PARALLEL under PARALLEL) is always one flat operator, never
// two nested ones.
func (s *state) removeDegenerateDuplicates(node int) error {
	t := s.tree
	op := t.Payload(node).Op
	for _, c := range t.Children(node) {
		if err := s.removeDegenerateDuplicates(c); err != nil {
			return err
		}
		if t.Payload(c).Op == op && op != OpPrime {
			if err := t.ReplaceByChildren(c); err != nil {
				return err
			}
			if err := t.Remove(c); err != nil {
				return err
			}
		}
	}
	return nil
}
