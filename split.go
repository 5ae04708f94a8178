// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avlmap

import "github.com/cockroachdb/errors"

// Split, join and range deletion follow Blelloch, Ferizovic and Sun,
// "Just Join for Parallel Ordered Sets" (https://arxiv.org/pdf/1602.02120):
//
//	split(T,k) =
//	  if T = Leaf then (Leaf, false, Leaf)
//	  else
//	    (L,m,R) = expose(T)
//	    if k = m then (L, true, R)
//	    else if k < m then
//	      (LL, b, LR) = split(L, k)
//	      (LL, b, join(LR, m, R))
//	    else
//	      (RL, b, RR) = split(R, k)
//	      (join(L, m, RL), b, RR)
//
// The subtrees passed between these helpers are detached: their roots'
// parent links are stale and are reset when the subtree is attached again.
// t's sentinel is used as scratch space, so t must be empty (t.end.left == nil)
// while they run.

// Split removes from t every entry whose key orders after key and returns
// them as a new tree with t's comparison function and allocator.
// The entry for key itself, if present, is removed from t and its value
// returned.
func (t *Tree[K, V]) Split(key K) (val V, ok bool, after *Tree[K, V]) {
	l, mid, r := t.split(t.detachRoot(), key)
	after = NewTree(t.cmp, WithAllocator(t.alloc))
	after.end.setLeft(r)
	t.end.setLeft(l)
	if mid != nil {
		val, ok = mid.val, true
		t.free(mid)
	}
	t.gen++
	return val, ok, after
}

// Join moves every entry of u to the end of t, leaving u empty.
// Every key of u must order after every key of t.
// The moved nodes are later released through t's allocator.
func (t *Tree[K, V]) Join(u *Tree[K, V]) {
	if t == u {
		panic(errors.AssertionFailedf("avlmap: join of tree with itself"))
	}
	if u.end.left == nil {
		return
	}
	if t.end.left != nil && t.cmp(t.Last().key, u.Begin().key) >= 0 {
		panic(errors.AssertionFailedf("avlmap: join of overlapping trees"))
	}
	m := u.removeMin()
	r := u.detachRoot()
	l := t.detachRoot()
	t.join(l, m, r)
	t.gen++
	u.gen++
}

// DeleteRange removes every entry whose key k satisfies lo ≤ k ≤ hi.
// It takes O(log n) time plus the time to free the removed nodes.
func (t *Tree[K, V]) DeleteRange(lo, hi K) {
	if t.cmp(lo, hi) > 0 || t.end.left == nil {
		return
	}
	left, m1, rest := t.split(t.detachRoot(), lo)
	middle, m2, right := t.split(rest, hi)
	for _, x := range []*Node[K, V]{m1, m2} {
		if x != nil {
			t.free(x)
		}
	}
	t.freeAll(middle)

	if right == nil {
		t.end.setLeft(left)
	} else {
		t.end.setLeft(right)
		m := t.removeMin()
		right = t.detachRoot()
		t.join(left, m, right)
	}
	t.gen++
}

// detachRoot unhooks t's root from its sentinel and returns it.
func (t *Tree[K, V]) detachRoot() *Node[K, V] {
	root := t.end.left
	t.end.left = nil
	return root
}

// removeMin unlinks the first node of the non-empty tree t and returns it
// without freeing it.
func (t *Tree[K, V]) removeMin() *Node[K, V] {
	x := t.Begin()
	p := x.parent
	p.replaceChild(x, x.right)
	t.rebalanceUp(p)
	x.parent, x.right = nil, nil
	return x
}

// split divides the detached subtree x into the subtree of keys before key,
// the node holding key (or nil), and the subtree of keys after key.
func (t *Tree[K, V]) split(x *Node[K, V], key K) (l, mid, r *Node[K, V]) {
	if x == nil {
		return nil, nil, nil
	}
	xl, xr := x.left, x.right
	x.left, x.right = nil, nil

	c := t.cmp(key, x.key)
	switch {
	case c == 0:
		return xl, x, xr
	case c < 0:
		l, mid, r = t.split(xl, key)
		return l, mid, t.joinDetached(r, x, xr)
	default:
		l, mid, r = t.split(xr, key)
		return t.joinDetached(xl, x, l), mid, r
	}
}

func (t *Tree[K, V]) joinDetached(l, m, r *Node[K, V]) *Node[K, V] {
	t.join(l, m, r)
	return t.detachRoot()
}

// join hangs under t's sentinel a balanced tree holding the detached
// subtrees l and r and the detached node m between them. Every key of l
// must order before m and every key of r after it.
func (t *Tree[K, V]) join(l, m, r *Node[K, V]) {
	lh, rh := l.safeHeight(), r.safeHeight()
	switch {
	case lh > rh+1:
		// Descend l's right spine to the first subtree no taller than r;
		// m replaces it with a node at most one level taller.
		t.end.setLeft(l)
		x := l
		for x.right.safeHeight() > rh {
			x = x.right
		}
		m.setLeft(x.right)
		m.setRight(r)
		x.setRight(m)

	case rh > lh+1:
		t.end.setLeft(r)
		z := r
		for z.left.safeHeight() > lh {
			z = z.left
		}
		m.setLeft(l)
		m.setRight(z.left)
		z.setLeft(m)

	default:
		m.setLeft(l)
		m.setRight(r)
		t.end.setLeft(m)
	}
	t.rebalanceUp(m)
}
