package graphgen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPath(t *testing.T) {
	g, err := Path(5)
	require.NoError(t, err)
	require.Equal(t, 4, g.NumEdges())
	require.True(t, g.HasEdge(0, 1))
	require.False(t, g.HasEdge(0, 2))
	require.Equal(t, 1, g.Degree(0))
	require.Equal(t, 2, g.Degree(2))
}

func TestPathTooFewVertices(t *testing.T) {
	_, err := Path(1)
	require.ErrorIs(t, err, ErrTooFewVertices)
}

func TestCycle(t *testing.T) {
	g, err := Cycle(4)
	require.NoError(t, err)
	require.Equal(t, 4, g.NumEdges())
	for v := 0; v < 4; v++ {
		require.Equal(t, 2, g.Degree(v))
	}
}

func TestComplete(t *testing.T) {
	g, err := Complete(5)
	require.NoError(t, err)
	require.Equal(t, 10, g.NumEdges())
	for v := 0; v < 5; v++ {
		require.Equal(t, 4, g.Degree(v))
	}
}

func TestEdgeless(t *testing.T) {
	g, err := Edgeless(6)
	require.NoError(t, err)
	require.Equal(t, 0, g.NumEdges())
	require.Equal(t, 6, g.NumVertices())
}

func TestStar(t *testing.T) {
	g, err := Star(6)
	require.NoError(t, err)
	require.Equal(t, 5, g.Degree(0))
	for leaf := 1; leaf < 6; leaf++ {
		require.Equal(t, 1, g.Degree(leaf))
	}
}

func TestCaterpillarOfStars(t *testing.T) {
	g, err := CaterpillarOfStars(3, 2)
	require.NoError(t, err)
	require.Equal(t, 9, g.NumVertices())
	// spine: 0-1-2, each with 2 pendant leaves.
	require.Equal(t, 3, g.Degree(0)) // 1 spine neighbor + 2 leaves
	require.Equal(t, 4, g.Degree(1)) // 2 spine neighbors + 2 leaves
	require.True(t, g.HasEdge(0, 1))
	require.True(t, g.HasEdge(1, 2))
	require.True(t, g.HasEdge(0, 3))
	require.True(t, g.HasEdge(0, 4))
	require.True(t, g.HasEdge(1, 5))
	require.True(t, g.HasEdge(1, 6))
	require.True(t, g.HasEdge(2, 7))
	require.True(t, g.HasEdge(2, 8))
}

func TestCaterpillarOfStarsSingleCenter(t *testing.T) {
	g, err := CaterpillarOfStars(1, 4)
	require.NoError(t, err)
	require.Equal(t, 5, g.NumVertices())
	require.Equal(t, 4, g.Degree(0))
}

func TestRandomRegularDegreeAndSimplicity(t *testing.T) {
	g, err := RandomRegular(10, 3, 42)
	require.NoError(t, err)
	for v := 0; v < 10; v++ {
		require.Equal(t, 3, g.Degree(v))
	}
}

func TestRandomRegularDeterministicForSeed(t *testing.T) {
	g1, err := RandomRegular(12, 4, 7)
	require.NoError(t, err)
	g2, err := RandomRegular(12, 4, 7)
	require.NoError(t, err)
	for u := 0; u < 12; u++ {
		for v := u + 1; v < 12; v++ {
			require.Equal(t, g1.HasEdge(u, v), g2.HasEdge(u, v))
		}
	}
}

func TestRandomRegularRejectsOddProduct(t *testing.T) {
	_, err := RandomRegular(5, 3, 1)
	require.ErrorIs(t, err, ErrInvalidDegree)
}

func TestRandomRegularRejectsDegreeTooLarge(t *testing.T) {
	_, err := RandomRegular(4, 4, 1)
	require.ErrorIs(t, err, ErrInvalidDegree)
}

func TestRandomRegularZeroDegree(t *testing.T) {
	g, err := RandomRegular(5, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 0, g.NumEdges())
}
