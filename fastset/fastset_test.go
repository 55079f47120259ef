package fastset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetGetReset(t *testing.T) {
	s := New(8)
	require.False(t, s.Get(3))
	s.Set(3)
	require.True(t, s.Get(3))
	require.Equal(t, 1, s.Size())
	s.Reset(3)
	require.False(t, s.Get(3))
	require.Equal(t, 0, s.Size())
}

func TestSetIdempotent(t *testing.T) {
	s := New(4)
	s.Set(0)
	s.Set(0)
	require.Equal(t, 1, s.Size())
}

func TestClearIsCheapAndCorrect(t *testing.T) {
	s := New(4)
	s.Set(0)
	s.Set(1)
	s.Clear()
	require.Equal(t, 0, s.Size())
	for i := 0; i < s.Capacity(); i++ {
		require.False(t, s.Get(i))
	}
	s.Set(2)
	require.True(t, s.Get(2))
	require.False(t, s.Get(0))
}

func TestResizeGrowPreservesMembership(t *testing.T) {
	s := New(2)
	s.Set(0)
	s.Resize(5)
	require.True(t, s.Get(0))
	s.Set(4)
	require.True(t, s.Get(4))
}

func TestGenerationOverflowRewrites(t *testing.T) {
	s := New(4)
	s.generation = int(^uint(0) >> 1) // math.MaxInt, set directly to exercise the wrap branch
	s.Set(1)
	require.True(t, s.Get(1))
	s.Clear()
	require.Equal(t, 1, s.generation)
	require.False(t, s.Get(1))
}
