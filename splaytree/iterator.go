package splaytree

import "iter"

// InOrder returns an iterator over all entries in ascending key order. The
// sequence is lazy, stops early when the caller breaks, and can be restarted
// by ranging again. An in-order walk is a pure read: unlike Find it never
// splays. The tree must not be modified while iterating.
func (t *Tree[K, V]) InOrder() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t.root.inorder(yield)
	}
}

func (x *node[K, V]) inorder(yield func(K, V) bool) bool {
	if x == nil {
		return true // doesn't terminate further iteration
	}
	return x.left.inorder(yield) && yield(x.key, x.value) && x.right.inorder(yield)
}
