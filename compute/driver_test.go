package compute

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/moddecomp/forest"
	"github.com/katalvlaran/moddecomp/graph"
	"github.com/katalvlaran/moddecomp/graphgen"
)

func buildGraph(t *testing.T, n int, edges [][2]int) *graph.Graph {
	t.Helper()
	g, err := graph.New(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	return g
}

// assertModuleCorrectness brute-forces §8's module-correctness property
// directly over a reduced compute forest: the leaf set under every
// non-leaf node must be a module of g (every outside vertex is adjacent to
// either all of it or none of it).
func assertModuleCorrectness(t *testing.T, g *graph.Graph, ct *forest.Arena[Payload], root int) {
	t.Helper()
	for _, h := range ct.DFSPre(root) {
		if ct.IsLeaf(h) {
			continue
		}
		members := ct.Leaves(h)
		vertices := make([]int, len(members))
		inModule := make(map[int]bool, len(members))
		for i, lh := range members {
			v := ct.Payload(lh).Vertex
			vertices[i] = v
			inModule[v] = true
		}
		for v := 0; v < g.NumVertices(); v++ {
			if inModule[v] {
				continue
			}
			adjacent := 0
			for _, m := range vertices {
				if g.HasEdge(v, m) {
					adjacent++
				}
			}
			require.True(t, adjacent == 0 || adjacent == len(vertices),
				"vertex %d is not uniformly adjacent to module %v", v, vertices)
		}
	}
}

// assertCompleteAndConsistent is the shared property check of §8:
// completeness (every vertex appears exactly once among the result's
// leaves) and self-consistency of the underlying arena.
func assertCompleteAndConsistent(t *testing.T, n int, edges [][2]int) (tree *forest.Arena[Payload], root int) {
	t.Helper()
	g := buildGraph(t, n, edges)
	ct, r, err := Compute(g)
	require.NoError(t, err)
	require.NoError(t, ct.CheckConsistency())

	var got []int
	for _, lh := range ct.Leaves(r) {
		pl := ct.Payload(lh)
		require.True(t, pl.IsVertex(), "leaf %d is not a vertex node", lh)
		got = append(got, pl.Vertex)
	}
	sort.Ints(got)
	want := make([]int, n)
	for i := range want {
		want[i] = i
	}
	require.Equal(t, want, got)

	for _, h := range ct.DFSPre(r) {
		require.False(t, ct.Payload(h).IsProblem(), "node %d is an un-reduced problem node", h)
	}
	return ct, r
}

func TestComputeCompletenessEdgeless(t *testing.T) {
	assertCompleteAndConsistent(t, 5, nil)
}

func TestComputeCompletenessComplete(t *testing.T) {
	var edges [][2]int
	for u := 0; u < 6; u++ {
		for v := u + 1; v < 6; v++ {
			edges = append(edges, [2]int{u, v})
		}
	}
	assertCompleteAndConsistent(t, 6, edges)
}

func TestComputeCompletenessPath(t *testing.T) {
	assertCompleteAndConsistent(t, 7, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}})
}

func TestComputeCompletenessStar(t *testing.T) {
	assertCompleteAndConsistent(t, 6, [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5}})
}

func TestComputeCompletenessMixedPrime(t *testing.T) {
	assertCompleteAndConsistent(t, 8, [][2]int{
		{0, 2}, {0, 3}, {0, 6}, {0, 7}, {1, 6}, {2, 3}, {2, 4}, {2, 5}, {2, 7},
		{3, 4}, {3, 5}, {4, 5}, {4, 6}, {4, 7}, {5, 6}, {5, 7},
	})
}

func TestComputeCompletenessDegenerateUnion(t *testing.T) {
	assertCompleteAndConsistent(t, 11, [][2]int{{0, 5}, {1, 3}, {1, 8}, {3, 8}, {4, 9}, {7, 8}, {8, 9}})
}

func TestComputeSingleVertex(t *testing.T) {
	ct, r := assertCompleteAndConsistent(t, 1, nil)
	require.True(t, ct.IsLeaf(r))
}

func TestComputeRejectsEmptyGraph(t *testing.T) {
	g, err := graph.New(0)
	require.NoError(t, err)
	_, _, err = Compute(g)
	require.Error(t, err)
}

// TestComputeModuleCorrectnessRandomRegular drives §8's module-correctness
// property over randomized graphs rather than only the hand-picked fixtures
// above, directly against the raw compute output (before mdtree wraps it).
func TestComputeModuleCorrectnessRandomRegular(t *testing.T) {
	cases := []struct {
		n, d int
		seed int64
	}{
		{n: 6, d: 2, seed: 2},
		{n: 8, d: 3, seed: 7},
		{n: 9, d: 4, seed: 11},
		{n: 13, d: 6, seed: 99},
	}
	for _, tc := range cases {
		g, err := graphgen.RandomRegular(tc.n, tc.d, tc.seed)
		require.NoError(t, err)
		ct, root, err := Compute(g)
		require.NoError(t, err)
		require.NoError(t, ct.CheckConsistency())
		assertModuleCorrectness(t, g, ct, root)
	}
}

// TestComputeModuleCorrectnessGraphgenFixtures pins the same property down
// over the deterministic constructors, complementing the randomized cases.
func TestComputeModuleCorrectnessGraphgenFixtures(t *testing.T) {
	complete, err := graphgen.Complete(7)
	require.NoError(t, err)
	edgeless, err := graphgen.Edgeless(7)
	require.NoError(t, err)
	caterpillar, err := graphgen.CaterpillarOfStars(4, 2)
	require.NoError(t, err)

	for _, g := range []*graph.Graph{complete, edgeless, caterpillar} {
		ct, root, err := Compute(g)
		require.NoError(t, err)
		assertModuleCorrectness(t, g, ct, root)
	}
}
