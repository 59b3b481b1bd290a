// Package bst implements a plain, unbalanced binary search tree.
//
// Unlike the self-adjusting tree in splaytree, lookups never restructure
// anything, duplicates are allowed, and a sorted insertion order degrades
// the tree into a list.
package bst

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
)

// A Tree is a binary search tree holding ordered values. The zero value is
// an empty tree ready to use.
type Tree[E cmp.Ordered] struct {
	root *node[E]
}

type node[E cmp.Ordered] struct {
	value E
	left  *node[E]
	right *node[E]
}

// New returns an empty tree.
func New[E cmp.Ordered]() *Tree[E] {
	return &Tree[E]{}
}

// Insert adds each value to the tree. Duplicates are kept; an equal value
// goes into the right subtree.
func (t *Tree[E]) Insert(values ...E) {
	for _, v := range values {
		t.root = insertNode(t.root, v)
	}
}

func insertNode[E cmp.Ordered](x *node[E], value E) *node[E] {
	if x == nil {
		return &node[E]{value: value}
	}
	if value < x.value {
		x.left = insertNode(x.left, value)
	} else {
		x.right = insertNode(x.right, value)
	}
	return x
}

// Contains reports whether value is in the tree.
func (t *Tree[E]) Contains(value E) bool {
	for x := t.root; x != nil; {
		switch {
		case value < x.value:
			x = x.left
		case value > x.value:
			x = x.right
		default:
			return true
		}
	}
	return false
}

// Delete removes one occurrence of value and reports whether it was present.
func (t *Tree[E]) Delete(value E) bool {
	var removed bool
	t.root, removed = deleteNode(t.root, value)
	return removed
}

func deleteNode[E cmp.Ordered](x *node[E], value E) (*node[E], bool) {
	if x == nil {
		return nil, false
	}
	var removed bool
	switch {
	case value < x.value:
		x.left, removed = deleteNode(x.left, value)
	case value > x.value:
		x.right, removed = deleteNode(x.right, value)
	default:
		switch {
		case x.left == nil:
			return x.right, true
		case x.right == nil:
			return x.left, true
		default:
			// Two children: overwrite with the in-order successor and
			// remove that node from the right subtree instead.
			succ := x.right.min()
			x.value = succ
			x.right, _ = deleteNode(x.right, succ)
			return x, true
		}
	}
	return x, removed
}

// Min returns the smallest value in the tree. It reports false when the
// tree is empty.
func (t *Tree[E]) Min() (E, bool) {
	if t.root == nil {
		var zero E
		return zero, false
	}
	return t.root.min(), true
}

// Max returns the largest value in the tree. It reports false when the
// tree is empty.
func (t *Tree[E]) Max() (E, bool) {
	if t.root == nil {
		var zero E
		return zero, false
	}
	return t.root.max(), true
}

// IsEmpty reports whether the tree holds no values.
func (t *Tree[E]) IsEmpty() bool {
	return t.root == nil
}

// Len returns the number of values in the tree, counting duplicates.
func (t *Tree[E]) Len() int {
	return t.root.count()
}

// Height returns the number of edges on the longest root-to-leaf path,
// or -1 for an empty tree.
func (t *Tree[E]) Height() int {
	return t.root.height()
}

// InOrder returns an iterator over all values in ascending order.
func (t *Tree[E]) InOrder() iter.Seq[E] {
	return func(yield func(E) bool) {
		t.root.inorder(yield)
	}
}

// PreOrder returns an iterator visiting each node before its subtrees.
func (t *Tree[E]) PreOrder() iter.Seq[E] {
	return func(yield func(E) bool) {
		t.root.preorder(yield)
	}
}

// PostOrder returns an iterator visiting each node after its subtrees.
func (t *Tree[E]) PostOrder() iter.Seq[E] {
	return func(yield func(E) bool) {
		t.root.postorder(yield)
	}
}

// String renders the values in ascending order.
func (t *Tree[E]) String() string {
	return fmt.Sprint(slices.Collect(t.InOrder()))
}

// min returns the smallest value in x's subtree. x must not be nil.
func (x *node[E]) min() E {
	for x.left != nil {
		x = x.left
	}
	return x.value
}

// max returns the largest value in x's subtree. x must not be nil.
func (x *node[E]) max() E {
	for x.right != nil {
		x = x.right
	}
	return x.value
}

func (x *node[E]) count() int {
	if x == nil {
		return 0
	}
	return 1 + x.left.count() + x.right.count()
}

func (x *node[E]) height() int {
	if x == nil {
		return -1
	}
	return 1 + max(x.left.height(), x.right.height())
}

func (x *node[E]) inorder(yield func(E) bool) bool {
	if x == nil {
		return true
	}
	return x.left.inorder(yield) && yield(x.value) && x.right.inorder(yield)
}

func (x *node[E]) preorder(yield func(E) bool) bool {
	if x == nil {
		return true
	}
	return yield(x.value) && x.left.preorder(yield) && x.right.preorder(yield)
}

func (x *node[E]) postorder(yield func(E) bool) bool {
	if x == nil {
		return true
	}
	return x.left.postorder(yield) && x.right.postorder(yield) && yield(x.value)
}
