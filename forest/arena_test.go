package forest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildChain(t *testing.T, a *Arena[string], root int, labels ...string) []int {
	t.Helper()
	handles := make([]int, len(labels))
	for i, l := range labels {
		h := a.Create(l)
		handles[i] = h
		require.NoError(t, a.AttachAsFirstChild(root, h))
	}
	// AttachAsFirstChild prepends, so reverse to get labels in the given order.
	for i, j := 0, len(handles)-1; i < j; i, j = i+1, j-1 {
		handles[i], handles[j] = handles[j], handles[i]
	}
	return handles
}

func TestCreateAndAttach(t *testing.T) {
	a := New[string](0)
	root := a.Create("root")
	children := buildChain(t, a, root, "a", "b", "c")
	require.Equal(t, 3, a.NumChildren(root))
	require.Equal(t, children, a.Children(root))
	require.NoError(t, a.CheckConsistency())
}

func TestDetachIdempotent(t *testing.T) {
	a := New[string](0)
	root := a.Create("root")
	children := buildChain(t, a, root, "a", "b")
	require.NoError(t, a.Detach(children[0]))
	require.Equal(t, 1, a.NumChildren(root))
	require.NoError(t, a.Detach(children[0])) // idempotent
	require.Equal(t, 1, a.NumChildren(root))
	require.NoError(t, a.CheckConsistency())
}

func TestRemoveRequiresDetachedAndChildless(t *testing.T) {
	a := New[string](0)
	root := a.Create("root")
	children := buildChain(t, a, root, "a")
	err := a.Remove(children[0])
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrPreconditionViolated))

	require.NoError(t, a.Detach(children[0]))
	require.NoError(t, a.Remove(children[0]))
	require.False(t, a.IsAlive(children[0]))
}

func TestMoveBeforeAndAfter(t *testing.T) {
	a := New[string](0)
	root := a.Create("root")
	children := buildChain(t, a, root, "a", "b", "c")

	x := a.Create("x")
	require.NoError(t, a.MoveBefore(x, children[1]))
	require.Equal(t, []int{children[0], x, children[1], children[2]}, a.Children(root))

	y := a.Create("y")
	require.NoError(t, a.MoveAfter(y, children[1]))
	require.Equal(t, []int{children[0], x, children[1], y, children[2]}, a.Children(root))
	require.NoError(t, a.CheckConsistency())
}

func TestMoveBeforeRejectsRootTarget(t *testing.T) {
	a := New[string](0)
	root := a.Create("root")
	x := a.Create("x")
	err := a.MoveBefore(x, root)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrPreconditionViolated))
}

func TestSwap(t *testing.T) {
	a := New[string](0)
	rootA := a.Create("rootA")
	rootB := a.Create("rootB")
	childrenA := buildChain(t, a, rootA, "a1", "a2")
	childrenB := buildChain(t, a, rootB, "b1")

	require.NoError(t, a.Swap(childrenA[0], childrenB[0]))
	require.Equal(t, []int{childrenB[0], childrenA[1]}, a.Children(rootA))
	require.Equal(t, []int{childrenA[0]}, a.Children(rootB))
	require.NoError(t, a.CheckConsistency())
}

func TestSwapRejectsSameTree(t *testing.T) {
	a := New[string](0)
	root := a.Create("root")
	children := buildChain(t, a, root, "a", "b")
	err := a.Swap(children[0], children[1])
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrPreconditionViolated))
}

func TestReplace(t *testing.T) {
	a := New[string](0)
	root := a.Create("root")
	children := buildChain(t, a, root, "a", "b", "c")
	repl := a.Create("repl")
	require.NoError(t, a.Replace(children[1], repl))
	require.Equal(t, []int{children[0], repl, children[2]}, a.Children(root))
	require.True(t, a.IsRoot(children[1]))
	require.NoError(t, a.CheckConsistency())
}

func TestReplaceByChildren(t *testing.T) {
	a := New[string](0)
	root := a.Create("root")
	children := buildChain(t, a, root, "a", "b", "c")
	mid := children[1]
	grandchildren := buildChain(t, a, mid, "x", "y")

	require.NoError(t, a.ReplaceByChildren(mid))
	require.Equal(t, []int{children[0], grandchildren[0], grandchildren[1], children[2]}, a.Children(root))
	require.True(t, a.IsRoot(mid))
	require.NoError(t, a.Remove(mid))
	require.NoError(t, a.CheckConsistency())
}

func TestReplaceByChildrenNoChildrenActsAsDetach(t *testing.T) {
	a := New[string](0)
	root := a.Create("root")
	children := buildChain(t, a, root, "a", "b")
	require.NoError(t, a.ReplaceByChildren(children[0]))
	require.Equal(t, []int{children[1]}, a.Children(root))
}

func TestAdoptChildrenOf(t *testing.T) {
	a := New[string](0)
	dst := a.Create("dst")
	src := a.Create("src")
	dstChildren := buildChain(t, a, dst, "d1")
	srcChildren := buildChain(t, a, src, "s1", "s2")

	require.NoError(t, a.AdoptChildrenOf(dst, src))
	require.Equal(t, append(srcChildren, dstChildren...), a.Children(dst))
	require.Equal(t, 0, a.NumChildren(src))
	require.NoError(t, a.CheckConsistency())
}

func TestMakeFirstChild(t *testing.T) {
	a := New[string](0)
	root := a.Create("root")
	children := buildChain(t, a, root, "a", "b", "c")
	require.NoError(t, a.MakeFirstChild(children[2]))
	require.Equal(t, []int{children[2], children[0], children[1]}, a.Children(root))
	require.NoError(t, a.MakeFirstChild(children[2])) // already first: no-op
	require.Equal(t, []int{children[2], children[0], children[1]}, a.Children(root))
	require.NoError(t, a.CheckConsistency())
}

func TestReplaceChildren(t *testing.T) {
	a := New[string](0)
	h := a.Create("h")
	oldChildren := buildChain(t, a, h, "old1", "old2")

	newRoot := a.Create("newRoot")
	newGrandchildren := buildChain(t, a, newRoot, "n1", "n2", "n3")

	require.NoError(t, a.ReplaceChildren(h, newRoot))
	require.Equal(t, []int{newRoot}, a.Children(h))
	require.Equal(t, newGrandchildren, a.Children(newRoot))
	for _, c := range oldChildren {
		require.True(t, a.IsRoot(c))
	}
	require.NoError(t, a.CheckConsistency())
}

func TestTraversals(t *testing.T) {
	a := New[string](0)
	root := a.Create("root")
	children := buildChain(t, a, root, "a", "b")
	aa := buildChain(t, a, children[0], "a1", "a2")

	require.Equal(t, []int{root, children[0], children[1], aa[0], aa[1]}, a.BFS(root))
	require.Equal(t, []int{root, children[0], aa[0], aa[1], children[1]}, a.DFSPre(root))
	require.Equal(t, []int{root, children[1], children[0], aa[1], aa[0]}, a.DFSPreRev(root))
	require.Equal(t, []int{aa[0], aa[1], children[1]}, a.Leaves(root))
	require.Equal(t, []int{children[0], root}, a.Ancestors(aa[0]))
	require.Equal(t, root, a.RootOf(aa[1]))
}

func TestInvalidHandle(t *testing.T) {
	a := New[string](0)
	root := a.Create("root")
	require.NoError(t, a.Remove(root))
	err := a.Detach(root)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidHandle))
}
