// Package splaytree provides a self-adjusting binary search tree keyed by
// any ordered type. Every operation that touches a node finishes by splaying
// that node to the root, so recently or frequently used keys are the
// cheapest to reach again. Insert, Find and Delete run in amortized O(log n)
// time; a single operation may cost O(n) on a badly shaped tree, and the
// splay it performs is what pays that cost down.
//
// A Tree is not safe for concurrent use. Callers that share one across
// goroutines must serialize access with a lock of their own, or shard by
// key range. Note that Find restructures the tree even when it fails, so a
// read lock is not enough.
package splaytree

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/xlab/treeprint"
)

// A Tree is an ordered map from K to V. The zero value is an empty tree
// ready to use.
type Tree[K cmp.Ordered, V any] struct {
	root *node[K, V]
	size int
}

// New returns an empty tree.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{}
}

// Insert stores value under key. If the key is already present its value is
// overwritten in place; no second entry is created. The touched node ends up
// at the root either way.
func (t *Tree[K, V]) Insert(key K, value V) {
	if t.root == nil {
		t.root = &node[K, V]{key: key, value: value}
		t.size++
		return
	}
	x := t.root
	for {
		switch c := cmp.Compare(key, x.key); {
		case c == 0:
			x.value = value
			t.splay(x)
			return
		case c < 0:
			if x.left == nil {
				x.left = &node[K, V]{key: key, value: value, parent: x}
				t.size++
				t.splay(x.left)
				return
			}
			x = x.left
		default:
			if x.right == nil {
				x.right = &node[K, V]{key: key, value: value, parent: x}
				t.size++
				t.splay(x.right)
				return
			}
			x = x.right
		}
	}
}

// Find returns the value stored under key. Find restructures the tree even
// when it fails: a hit splays the found node to the root, and a miss splays
// the last node visited on the way down, so later lookups near key start
// close to the root. Callers must not expect a failed Find to leave the
// tree untouched.
func (t *Tree[K, V]) Find(key K) (V, bool) {
	var zero V
	x := t.root
	if x == nil {
		return zero, false
	}
	for {
		switch c := cmp.Compare(key, x.key); {
		case c == 0:
			t.splay(x)
			return x.value, true
		case c < 0:
			if x.left == nil {
				t.splay(x)
				return zero, false
			}
			x = x.left
		default:
			if x.right == nil {
				t.splay(x)
				return zero, false
			}
			x = x.right
		}
	}
}

// lookup descends toward key without splaying and returns the matching
// node, or the last node visited when the key is absent. It returns nil
// only for an empty tree.
func (t *Tree[K, V]) lookup(key K) *node[K, V] {
	x := t.root
	if x == nil {
		return nil
	}
	for {
		switch c := cmp.Compare(key, x.key); {
		case c == 0:
			return x
		case c < 0:
			if x.left == nil {
				return x
			}
			x = x.left
		default:
			if x.right == nil {
				return x
			}
			x = x.right
		}
	}
}

// Delete removes key and reports whether it was present. Deleting an
// absent key leaves the tree unchanged.
func (t *Tree[K, V]) Delete(key K) bool {
	x := t.lookup(key)
	if x == nil || x.key != key {
		return false
	}
	t.splay(x)

	switch {
	case x.left == nil:
		t.root = x.right
		if t.root != nil {
			t.root.parent = nil
		}
	case x.right == nil:
		t.root = x.left
		t.root.parent = nil
	default:
		// Both children present: splay the in-order predecessor, the
		// largest key of the left subtree, up to the root. No key separates
		// the two, so x surfaces as its sole right child and is cut out by
		// adopting x's right subtree in its place.
		pred := x.left.maxNode()
		t.splay(pred)
		pred.right = x.right
		x.right.parent = pred
	}

	x.parent, x.left, x.right = nil, nil, nil
	t.size--
	return true
}

// Min returns the smallest key and its value. Min is a pure query: unlike
// Find, it does not splay.
func (t *Tree[K, V]) Min() (K, V, bool) {
	if t.root == nil {
		var k K
		var v V
		return k, v, false
	}
	x := t.root.minNode()
	return x.key, x.value, true
}

// Max returns the largest key and its value. Max is a pure query: unlike
// Find, it does not splay.
func (t *Tree[K, V]) Max() (K, V, bool) {
	if t.root == nil {
		var k K
		var v V
		return k, v, false
	}
	x := t.root.maxNode()
	return x.key, x.value, true
}

// IsEmpty reports whether the tree holds no entries.
func (t *Tree[K, V]) IsEmpty() bool {
	return t.root == nil
}

// Len returns the number of entries in the tree.
func (t *Tree[K, V]) Len() int {
	return t.size
}

// Height returns the number of edges on the longest root-to-leaf path, or
// -1 for an empty tree. A splay tree keeps no height bound, so this is a
// diagnostic for watching accesses reshape the tree, not a guarantee.
func (t *Tree[K, V]) Height() int {
	return t.root.height()
}

// splay rotates x up to the root. Depth-two cases rotate in the order that
// earns the amortized O(log n) bound: zig-zig rotates the grandparent
// before the parent, zig-zag rotates x twice.
func (t *Tree[K, V]) splay(x *node[K, V]) {
	for x.parent != nil {
		p := x.parent
		g := p.parent
		switch {
		case g == nil: // zig: p is the root
			if x == p.left {
				t.rotateRight(p)
			} else {
				t.rotateLeft(p)
			}
		case x == p.left && p == g.left: // zig-zig
			t.rotateRight(g)
			t.rotateRight(p)
		case x == p.right && p == g.right: // zig-zig
			t.rotateLeft(g)
			t.rotateLeft(p)
		case x == p.left && p == g.right: // zig-zag
			t.rotateRight(p)
			t.rotateLeft(g)
		default: // zig-zag, mirrored
			t.rotateLeft(p)
			t.rotateRight(g)
		}
	}
}

// rotateRight promotes x's left child into x's place, turning
// (x (y a b) c) into (y a (x b c)). Only a constant number of links change
// and the key order is preserved.
func (t *Tree[K, V]) rotateRight(x *node[K, V]) {
	y := x.left
	if y == nil {
		panic("splaytree: rotate right with no left child")
	}
	x.left = y.right
	if y.right != nil {
		y.right.parent = x
	}
	y.parent = x.parent
	switch p := x.parent; {
	case p == nil:
		t.root = y
	case x == p.right:
		p.right = y
	case x == p.left:
		p.left = y
	default:
		// unreachable
		panic("splaytree: corrupt tree")
	}
	y.right = x
	x.parent = y
}

// rotateLeft is the mirror of rotateRight, promoting x's right child.
func (t *Tree[K, V]) rotateLeft(x *node[K, V]) {
	y := x.right
	if y == nil {
		panic("splaytree: rotate left with no right child")
	}
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	y.parent = x.parent
	switch p := x.parent; {
	case p == nil:
		t.root = y
	case x == p.left:
		p.left = y
	case x == p.right:
		p.right = y
	default:
		// unreachable
		panic("splaytree: corrupt tree")
	}
	y.left = x
	x.parent = y
}

// Dump renders the current shape of the tree, one node per line, children
// tagged with the side they hang from. Handy for watching a splay move keys
// around.
func (t *Tree[K, V]) Dump() string {
	if t.root == nil {
		return "(empty)\n"
	}
	p := treeprint.NewWithRoot(fmt.Sprint(t.root.key))
	t.root.left.dump(p, "L")
	t.root.right.dump(p, "R")
	return p.String()
}

func (x *node[K, V]) dump(p treeprint.Tree, side string) {
	if x == nil {
		return
	}
	if x.left == nil && x.right == nil {
		p.AddMetaNode(side, fmt.Sprint(x.key))
		return
	}
	b := p.AddMetaBranch(side, fmt.Sprint(x.key))
	x.left.dump(b, "L")
	x.right.dump(b, "R")
}

// String lists the entries in ascending key order.
func (t *Tree[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for k, v := range t.InOrder() {
		if b.Len() > 1 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v:%v", k, v)
	}
	b.WriteByte(']')
	return b.String()
}
