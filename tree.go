// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avlmap

import (
	"bytes"
	"fmt"

	"github.com/cockroachdb/errors"
)

// A Tree is an AVL tree of unique keys ordered by a comparison function.
// Every Tree has its own sentinel node, returned by [Tree.End], whose
// left child is the root.
type Tree[K, V any] struct {
	end   *Node[K, V]
	cmp   func(K, K) int
	alloc Allocator[K, V]

	// gen counts structural changes; iterators use it to notice edits.
	gen        uint64
	hintMisses uint64
}

// An Option configures a Tree or a Map at construction.
type Option[K, V any] func(*Tree[K, V])

// WithAllocator makes the tree obtain and release its nodes through a.
func WithAllocator[K, V any](a Allocator[K, V]) Option[K, V] {
	return func(t *Tree[K, V]) {
		t.alloc = a
	}
}

// NewTree returns an empty tree ordered by cmp, which must return a
// negative number when a < b, a positive number when a > b and zero
// when a and b are equivalent.
func NewTree[K, V any](cmp func(K, K) int, opts ...Option[K, V]) *Tree[K, V] {
	t := &Tree[K, V]{
		end:   new(Node[K, V]),
		cmp:   cmp,
		alloc: HeapAllocator[K, V]{},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Compare returns the comparison function that orders t.
func (t *Tree[K, V]) Compare() func(K, K) int { return t.cmp }

// Allocator returns the allocator t draws its nodes from.
func (t *Tree[K, V]) Allocator() Allocator[K, V] { return t.alloc }

// Root returns the root node, or nil if t is empty.
func (t *Tree[K, V]) Root() *Node[K, V] { return t.end.left }

// End returns t's sentinel, the position one past the last node.
func (t *Tree[K, V]) End() *Node[K, V] { return t.end }

// Begin returns the node with the smallest key, or End if t is empty.
func (t *Tree[K, V]) Begin() *Node[K, V] { return t.end.min() }

// Last returns the node with the largest key, or End if t is empty.
func (t *Tree[K, V]) Last() *Node[K, V] { return t.end.predecessor() }

// Len returns the number of nodes in t.
func (t *Tree[K, V]) Len() int { return t.end.left.safeSize() }

// Height returns the height of t; an empty tree has height 0.
func (t *Tree[K, V]) Height() int { return t.end.left.safeHeight() }

// HintMisses returns the number of InsertHint calls whose hint was not
// adjacent to the key and therefore could not be used.
func (t *Tree[K, V]) HintMisses() uint64 { return t.hintMisses }

// Next returns the node following x in key order, or End.
func (t *Tree[K, V]) Next(x *Node[K, V]) *Node[K, V] { return x.successor() }

// Prev returns the node preceding x in key order, or End.
func (t *Tree[K, V]) Prev(x *Node[K, V]) *Node[K, V] { return x.predecessor() }

// Find returns the node holding key, or nil.
func (t *Tree[K, V]) Find(key K) *Node[K, V] {
	x := t.end.left
	for x != nil {
		if x.equal(key, t.cmp) {
			return x
		}
		if x.less(key, t.cmp) {
			x = x.right
		} else {
			x = x.left
		}
	}
	return nil
}

// locate returns the child slot holding key, or the empty slot where key
// belongs, together with the parent of that slot.
func (t *Tree[K, V]) locate(key K) (pos **Node[K, V], parent *Node[K, V]) {
	parent = t.end
	pos, x := &t.end.left, t.end.left
	for x != nil {
		c := t.cmp(key, x.key)
		if c == 0 {
			break
		}
		parent = x
		if c < 0 {
			pos, x = &x.left, x.left
		} else {
			pos, x = &x.right, x.right
		}
	}
	return pos, parent
}

// Insert adds key with value val. If key is already present, Insert
// leaves the tree unchanged and returns the existing node and false.
func (t *Tree[K, V]) Insert(key K, val V) (*Node[K, V], bool) {
	pos, parent := t.locate(key)
	if x := *pos; x != nil {
		return x, false
	}
	x := t.newNode(key, val, parent)
	*pos = x
	t.gen++
	t.rebalanceUp(parent)
	return x, true
}

// InsertHint inserts key directly next to hint when hint is the position
// key belongs before, that is when Prev(hint) < key < hint, treating End
// as greater than every key. If Prev(hint) or hint already holds key,
// that node is returned unchanged. Otherwise the hint is unusable:
// InsertHint counts a miss and returns End, and the caller should fall
// back to Insert.
func (t *Tree[K, V]) InsertHint(hint *Node[K, V], key K, val V) *Node[K, V] {
	if hint == nil {
		t.hintMisses++
		return t.end
	}
	if hint != t.end {
		c := t.cmp(key, hint.key)
		if c == 0 {
			return hint
		}
		if c > 0 {
			t.hintMisses++
			return t.end
		}
	}
	prev := hint.predecessor()
	if prev != t.end {
		c := t.cmp(prev.key, key)
		if c == 0 {
			return prev
		}
		if c > 0 {
			t.hintMisses++
			return t.end
		}
	}

	// prev < key < hint: the free slot is hint's left child or,
	// when hint has a left subtree, the right child of its maximum.
	parent := hint
	if hint.left != nil {
		parent = prev
	}
	x := t.newNode(key, val, parent)
	if parent == hint {
		hint.setLeft(x)
	} else {
		prev.setRight(x)
	}
	t.gen++
	t.rebalanceUp(parent)
	return x
}

// Erase removes key from t and reports whether it was present.
func (t *Tree[K, V]) Erase(key K) bool {
	x := t.Find(key)
	if x == nil {
		return false
	}
	t.EraseNode(x)
	return true
}

// EraseNode removes x's entry from t.
//
// If x has a left subtree, the entry of x's in-order predecessor is moved
// into x and the predecessor's node is freed instead; otherwise x itself
// is unlinked and freed. Either way exactly one node is released.
func (t *Tree[K, V]) EraseNode(x *Node[K, V]) {
	if x == nil || x.isSentinel() {
		panic(errors.AssertionFailedf("avlmap: erase of end"))
	}
	gone := x
	if x.left != nil {
		y := x.left.max()
		x.key, x.val = y.key, y.val
		gone = y
	}
	// gone has at most one child.
	child := gone.left
	if child == nil {
		child = gone.right
	}
	p := gone.parent
	p.replaceChild(gone, child)
	t.gen++
	t.rebalanceUp(p)
	t.free(gone)
}

// rebalanceUp recomputes metrics and restores balance on every node
// from x up to the sentinel.
func (t *Tree[K, V]) rebalanceUp(x *Node[K, V]) {
	for x != t.end {
		x.update()
		x = x.rebalance()
		x = x.parent
	}
}

// LowerBound returns the first node whose key is not before key, or End.
func (t *Tree[K, V]) LowerBound(key K) *Node[K, V] {
	best := t.end
	x := t.end.left
	for x != nil {
		if x.less(key, t.cmp) {
			x = x.right
		} else {
			best = x
			x = x.left
		}
	}
	return best
}

// UpperBound returns the first node whose key is after key, or End.
func (t *Tree[K, V]) UpperBound(key K) *Node[K, V] {
	best := t.end
	x := t.end.left
	for x != nil {
		if t.cmp(x.key, key) <= 0 {
			x = x.right
		} else {
			best = x
			x = x.left
		}
	}
	return best
}

// Select returns the node at position i in key order, or End if i is
// out of range.
func (t *Tree[K, V]) Select(i int) *Node[K, V] {
	if i < 0 || i >= t.Len() {
		return t.end
	}
	x := t.end.left
	for {
		n := x.left.safeSize()
		switch {
		case i < n:
			x = x.left
		case i > n:
			i -= n + 1
			x = x.right
		default:
			return x
		}
	}
}

// Rank returns the number of keys in t that order before key.
func (t *Tree[K, V]) Rank(key K) int {
	r := 0
	x := t.end.left
	for x != nil {
		if x.less(key, t.cmp) {
			r += x.left.safeSize() + 1
			x = x.right
		} else {
			x = x.left
		}
	}
	return r
}

// Clear removes every node from t.
func (t *Tree[K, V]) Clear() {
	t.freeAll(t.end.left)
	t.end.left = nil
	t.gen++
}

// freeAll releases the subtree rooted at x in post-order.
func (t *Tree[K, V]) freeAll(x *Node[K, V]) {
	if x == nil {
		return
	}
	t.freeAll(x.left)
	t.freeAll(x.right)
	t.free(x)
}

// Swap exchanges the contents, comparison functions and allocators of
// t and u. Each tree keeps its own sentinel.
func (t *Tree[K, V]) Swap(u *Tree[K, V]) {
	if t == u {
		return
	}
	t.end.left, u.end.left = u.end.left, t.end.left
	if t.end.left != nil {
		t.end.left.parent = t.end
	}
	if u.end.left != nil {
		u.end.left.parent = u.end
	}
	t.cmp, u.cmp = u.cmp, t.cmp
	t.alloc, u.alloc = u.alloc, t.alloc
	t.hintMisses, u.hintMisses = u.hintMisses, t.hintMisses
	t.gen++
	u.gen++
}

// Clone returns a new tree with the same comparison function, allocator
// and entries as t. Entries are re-inserted in order, so the clone shares
// no nodes with t.
func (t *Tree[K, V]) Clone() *Tree[K, V] {
	c := NewTree(t.cmp, WithAllocator(t.alloc))
	c.insertFrom(t)
	return c
}

// Assign replaces the contents of t with copies of src's entries and
// adopts src's comparison function and allocator.
func (t *Tree[K, V]) Assign(src *Tree[K, V]) {
	if t == src {
		return
	}
	t.Clear()
	t.cmp = src.cmp
	t.alloc = src.alloc
	t.insertFrom(src)
}

func (t *Tree[K, V]) insertFrom(src *Tree[K, V]) {
	for x := src.Begin(); x != src.end; x = x.successor() {
		t.Insert(x.key, x.val)
	}
}

func (t *Tree[K, V]) newNode(key K, val V, parent *Node[K, V]) *Node[K, V] {
	x := t.alloc.Alloc()
	*x = Node[K, V]{
		parent: parent,
		height: 1,
		size:   1,
		key:    key,
		val:    val,
	}
	return x
}

func (t *Tree[K, V]) free(x *Node[K, V]) {
	*x = Node[K, V]{}
	t.alloc.Free(x)
}

// Check verifies the structure of t: parent links, key order, and the
// stored height, balance and size of every node.
func (t *Tree[K, V]) Check() error {
	if t.end.parent != nil || t.end.right != nil {
		return errors.AssertionFailedf("sentinel has parent or right child")
	}
	_, err := t.check(t.end.left, t.end, nil, nil)
	return err
}

func (t *Tree[K, V]) check(x, parent, lo, hi *Node[K, V]) (height int, err error) {
	if x == nil {
		return 0, nil
	}
	if x.parent != parent {
		return 0, errors.AssertionFailedf("bad parent at %v", x.key)
	}
	if lo != nil && t.cmp(lo.key, x.key) >= 0 {
		return 0, errors.AssertionFailedf("key %v not after %v", x.key, lo.key)
	}
	if hi != nil && t.cmp(x.key, hi.key) >= 0 {
		return 0, errors.AssertionFailedf("key %v not before %v", x.key, hi.key)
	}
	lh, err := t.check(x.left, x, lo, x)
	if err != nil {
		return 0, err
	}
	rh, err := t.check(x.right, x, x, hi)
	if err != nil {
		return 0, err
	}
	switch {
	case x.height != 1+max(lh, rh):
		return 0, errors.AssertionFailedf("bad height %d at %v, want %d", x.height, x.key, 1+max(lh, rh))
	case x.bal != lh-rh:
		return 0, errors.AssertionFailedf("bad balance %d at %v, want %d", x.bal, x.key, lh-rh)
	case x.bal < -1 || x.bal > 1:
		return 0, errors.AssertionFailedf("unbalanced node %v: balance %d", x.key, x.bal)
	case x.size != 1+x.left.safeSize()+x.right.safeSize():
		return 0, errors.AssertionFailedf("bad size %d at %v", x.size, x.key)
	}
	return x.height, nil
}

// Dump returns a parenthesized rendering of t for debugging.
func (t *Tree[K, V]) Dump() string {
	var buf bytes.Buffer
	var walk func(*Node[K, V])
	walk = func(x *Node[K, V]) {
		if x == nil {
			fmt.Fprintf(&buf, "nil")
			return
		}
		fmt.Fprintf(&buf, "(h%d/b%+d %v:%v ", x.height, x.bal, x.key, x.val)
		walk(x.left)
		fmt.Fprintf(&buf, " ")
		walk(x.right)
		fmt.Fprintf(&buf, ")")
	}
	walk(t.end.left)
	return buf.String()
}
