package compute

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/moddecomp/fastset"
)

func TestAlphaListsAppendAndGet(t *testing.T) {
	al := NewAlphaLists(4)
	al.Append(0, 2)
	al.Append(0, 3)
	require.Equal(t, []int{2, 3}, al.Get(0))
	require.Empty(t, al.Get(1))
}

func TestAlphaListsCompleteMirrorsAndDedupes(t *testing.T) {
	al := NewAlphaLists(4)
	al.Append(0, 1)
	al.Append(0, 1) // duplicate, must collapse
	scratch := fastset.New(4)

	al.Complete([]int{0, 1, 2, 3}, scratch)
	require.Equal(t, []int{1}, al.Get(0))
	require.Equal(t, []int{0}, al.Get(1))
	require.Empty(t, al.Get(2))
}

func TestAlphaListsReset(t *testing.T) {
	al := NewAlphaLists(2)
	al.Append(0, 1)
	al.Reset(0)
	require.Empty(t, al.Get(0))
}
