// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avlmap

import "github.com/cockroachdb/errors"

// A Node is a node in the AVL tree.
//
// The left and right links own the subtrees below the node; parent is only
// a back-reference. The node whose parent is nil is the sentinel of its
// tree: it holds no entry and the root hangs off its left slot.
type Node[K, V any] struct {
	parent *Node[K, V]
	left   *Node[K, V]
	right  *Node[K, V]
	height int
	bal    int // left height - right height
	size   int // nodes in this subtree, including this one
	key    K
	val    V
}

// Key returns the node's key.
func (x *Node[K, V]) Key() K { return x.key }

// Value returns the value stored in the node.
func (x *Node[K, V]) Value() V { return x.val }

// SetValue replaces the value stored in the node.
func (x *Node[K, V]) SetValue(v V) { x.val = v }

// Height returns the height of the subtree rooted at x. A leaf has height 1.
func (x *Node[K, V]) Height() int { return x.safeHeight() }

// Balance returns the height of x's left subtree minus that of its right subtree.
func (x *Node[K, V]) Balance() int { return x.bal }

// Size returns the number of nodes in the subtree rooted at x.
func (x *Node[K, V]) Size() int { return x.safeSize() }

func (x *Node[K, V]) isSentinel() bool {
	return x.parent == nil
}

func (x *Node[K, V]) safeHeight() int {
	if x == nil {
		return 0
	}
	return x.height
}

func (x *Node[K, V]) safeSize() int {
	if x == nil {
		return 0
	}
	return x.size
}

// less reports whether x's key orders strictly before key.
func (x *Node[K, V]) less(key K, cmp func(K, K) int) bool {
	return cmp(x.key, key) < 0
}

// equal reports whether neither x's key nor key orders before the other.
func (x *Node[K, V]) equal(key K, cmp func(K, K) int) bool {
	return cmp(x.key, key) == 0
}

func (x *Node[K, V]) setLeft(y *Node[K, V]) {
	x.left = y
	if y != nil {
		y.parent = x
	}
}

func (x *Node[K, V]) setRight(y *Node[K, V]) {
	x.right = y
	if y != nil {
		y.parent = x
	}
}

// replaceChild puts y in the child slot of x that currently holds old.
func (x *Node[K, V]) replaceChild(old, y *Node[K, V]) {
	switch {
	case x.left == old:
		x.setLeft(y)
	case x.right == old:
		x.setRight(y)
	default:
		panic(errors.AssertionFailedf("corrupt avl: node is not a child of its parent"))
	}
}

func (x *Node[K, V]) isRightChild() bool {
	return x.parent != nil && x.parent.right == x
}

// update recomputes height, balance and size from x's children.
func (x *Node[K, V]) update() {
	lh, rh := x.left.safeHeight(), x.right.safeHeight()
	x.height = 1 + max(lh, rh)
	x.bal = lh - rh
	x.size = 1 + x.left.safeSize() + x.right.safeSize()
}

// rebalance restores the AVL property at x, whose children are balanced
// and whose metrics are current. It returns the node now occupying x's
// position in the tree.
func (x *Node[K, V]) rebalance() *Node[K, V] {
	switch {
	case x.bal > 1:
		if x.left.bal < 0 {
			x.left.rotateLeft()
		}
		return x.rotateRight()
	case x.bal < -1:
		if x.right.bal > 0 {
			x.right.rotateRight()
		}
		return x.rotateLeft()
	}
	return x
}

// rotateLeft rotates the subtree rooted at node x,
// turning (x a (y b c)) into (y (x a b) c).
func (x *Node[K, V]) rotateLeft() *Node[K, V] {
	// p -> (x a (y b c))
	p := x.parent
	y := x.right
	b := y.left

	p.replaceChild(x, y)
	y.setLeft(x)
	x.setRight(b)

	x.update()
	y.update()
	if !p.isSentinel() {
		p.update()
	}
	return y
}

// rotateRight rotates the subtree rooted at node y,
// turning (y (x a b) c) into (x a (y b c)).
func (y *Node[K, V]) rotateRight() *Node[K, V] {
	// p -> (y (x a b) c)
	p := y.parent
	x := y.left
	b := x.right

	p.replaceChild(y, x)
	x.setRight(y)
	y.setLeft(b)

	y.update()
	x.update()
	if !p.isSentinel() {
		p.update()
	}
	return x
}

func (x *Node[K, V]) min() *Node[K, V] {
	for x.left != nil {
		x = x.left
	}
	return x
}

func (x *Node[K, V]) max() *Node[K, V] {
	for x.right != nil {
		x = x.right
	}
	return x
}

// successor returns the next node in key order.
// The successor of the maximum is the sentinel, and so is the
// successor of the sentinel.
func (x *Node[K, V]) successor() *Node[K, V] {
	if x.right != nil {
		return x.right.min()
	}
	for x.isRightChild() {
		x = x.parent
	}
	if x.parent == nil {
		return x
	}
	return x.parent
}

// predecessor returns the previous node in key order.
// The predecessor of the sentinel is the maximum, and the predecessor
// of the minimum is the sentinel.
func (x *Node[K, V]) predecessor() *Node[K, V] {
	if x.left != nil {
		return x.left.max()
	}
	for x.parent != nil && !x.isRightChild() {
		x = x.parent
	}
	if x.parent == nil {
		return x
	}
	return x.parent
}
