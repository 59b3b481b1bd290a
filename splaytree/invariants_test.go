package splaytree

import (
	"cmp"
	"maps"
	"math/rand"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkStructure walks the whole tree and fails the test if any parent
// back-reference, the size counter, or the key ordering is broken.
func checkStructure[K cmp.Ordered, V any](t *testing.T, tr *Tree[K, V]) {
	t.Helper()
	if tr.root == nil {
		require.Zero(t, tr.size, "empty tree with nonzero size")
		return
	}
	require.Nil(t, tr.root.parent, "root has a parent")

	count := 0
	var walk func(x *node[K, V])
	walk = func(x *node[K, V]) {
		count++
		if x.left != nil {
			require.Same(t, x, x.left.parent, "left child of %v has a stale parent link", x.key)
			walk(x.left)
		}
		if x.right != nil {
			require.Same(t, x, x.right.parent, "right child of %v has a stale parent link", x.key)
			walk(x.right)
		}
	}
	walk(tr.root)
	require.Equal(t, tr.size, count, "size %d does not match node count %d", tr.size, count)

	keys := inorderKeys(tr)
	for i := 1; i < len(keys); i++ {
		require.Less(t, keys[i-1], keys[i], "keys out of order in traversal: %v", keys)
	}
}

func TestRandomOperationsMatchMap(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	rng := rand.New(rand.NewSource(1))
	tr := New[int, int]()
	oracle := make(map[int]int)

	const (
		ops      = 5000
		keySpace = 200
	)
	for i := 0; i < ops; i++ {
		key := rng.Intn(keySpace)
		switch rng.Intn(3) {
		case 0:
			tr.Insert(key, i)
			oracle[key] = i
		case 1:
			v, found := tr.Find(key)
			wantV, want := oracle[key]
			assert.Equal(want, found, "op %d: find(%d) presence", i, key)
			if want {
				assert.Equal(wantV, v, "op %d: find(%d) value", i, key)
			}
		case 2:
			_, want := oracle[key]
			assert.Equal(want, tr.Delete(key), "op %d: delete(%d)", i, key)
			delete(oracle, key)
		}
		require.Equal(len(oracle), tr.Len(), "op %d: size diverged", i)
		if i%500 == 0 {
			checkStructure(t, tr)
		}
	}
	checkStructure(t, tr)

	assert.Equal(slices.Sorted(maps.Keys(oracle)), inorderKeys(tr), "final traversal diverges from the model")
	for k, v := range oracle {
		got, found := tr.Find(k)
		require.True(found, "find(%d) missed", k)
		require.Equal(v, got, "find(%d) value", k)
	}
}

func TestDeletePromotesPredecessor(t *testing.T) {
	assert := assert.New(t)

	tr := New[int, string]()
	for _, k := range []int{10, 5, 15, 3, 7} {
		tr.Insert(k, "")
	}

	assert.True(tr.Delete(10))
	// Removing a key with two subtrees joins them under the in-order
	// predecessor, which ends up as the root.
	assert.Equal(7, tr.root.key)
	assert.Equal([]int{3, 5, 7, 15}, inorderKeys(tr))
	checkStructure(t, tr)
}

func TestFailedDeleteLeavesShapeIntact(t *testing.T) {
	assert := assert.New(t)

	tr := New[int, string]()
	for _, k := range []int{10, 5, 15, 3, 7} {
		tr.Insert(k, "x")
	}
	before := tr.Dump()

	assert.False(tr.Delete(6))
	assert.Equal(before, tr.Dump(), "failed delete restructured the tree")

	_, found := tr.Find(6)
	assert.False(found)
	assert.NotEqual(before, tr.Dump(), "failed find should splay the search path")
	checkStructure(t, tr)
}

func TestInOrderEarlyStopAndRestart(t *testing.T) {
	assert := assert.New(t)

	tr := New[int, string]()
	for _, k := range []int{4, 2, 6, 1, 3, 5, 7} {
		tr.Insert(k, strconv.Itoa(k))
	}
	rootBefore := tr.root.key

	var first []int
	for k := range tr.InOrder() {
		first = append(first, k)
		if len(first) == 3 {
			break
		}
	}
	assert.Equal([]int{1, 2, 3}, first)

	// Ranging again restarts from the smallest key; iteration never splays.
	assert.Equal([]int{1, 2, 3, 4, 5, 6, 7}, inorderKeys(tr))
	assert.Equal(rootBefore, tr.root.key)
	checkStructure(t, tr)
}

func TestStructureAfterHeavyChurn(t *testing.T) {
	require := require.New(t)

	tr := New[int, int]()
	for i := 0; i < 512; i++ {
		tr.Insert(i, i)
	}
	// Delete every other key, then re-insert a shifted copy of them.
	for i := 0; i < 512; i += 2 {
		require.True(tr.Delete(i), "delete(%d)", i)
	}
	checkStructure(t, tr)
	for i := 0; i < 512; i += 2 {
		tr.Insert(i, -i)
	}
	checkStructure(t, tr)

	require.Equal(512, tr.Len())
	for i := 0; i < 512; i++ {
		v, found := tr.Find(i)
		require.True(found, "find(%d)", i)
		if i%2 == 0 {
			require.Equal(-i, v, "re-inserted value for %d", i)
		} else {
			require.Equal(i, v, "original value for %d", i)
		}
	}
}
