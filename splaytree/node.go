package splaytree

import "cmp"

// A node holds one key-value entry and its position in the tree. The left
// and right pointers own the subtrees; parent is a back-reference only and
// is nil on the root.
type node[K cmp.Ordered, V any] struct {
	key    K
	value  V
	left   *node[K, V]
	right  *node[K, V]
	parent *node[K, V]
}

// minNode returns the node with the smallest key in x's subtree.
// x must not be nil.
func (x *node[K, V]) minNode() *node[K, V] {
	for x.left != nil {
		x = x.left
	}
	return x
}

// maxNode returns the node with the largest key in x's subtree.
// x must not be nil.
func (x *node[K, V]) maxNode() *node[K, V] {
	for x.right != nil {
		x = x.right
	}
	return x
}

// height returns the number of edges on the longest path from x down to a
// leaf, or -1 when x is nil.
func (x *node[K, V]) height() int {
	if x == nil {
		return -1
	}
	return 1 + max(x.left.height(), x.right.height())
}
