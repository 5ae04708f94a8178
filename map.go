// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avlmap

import (
	"cmp"
	"iter"

	"rsc.io/avlmap/iterator"
)

// A Map is a map[K]V ordered by a comparison function.
// Use [New], [NewFunc], [NewLess] or [Collect] to create a Map.
// The zero value has no comparison function or tree; calling any method
// on it panics.
type Map[K, V any] struct {
	t *Tree[K, V]
}

// New returns an empty Map ordered according to K's standard Go ordering.
func New[K cmp.Ordered, V any](opts ...Option[K, V]) *Map[K, V] {
	return NewFunc(cmp.Compare[K], opts...)
}

// NewFunc returns an empty Map ordered according to cmp.
func NewFunc[K, V any](cmp func(K, K) int, opts ...Option[K, V]) *Map[K, V] {
	return &Map[K, V]{NewTree(cmp, opts...)}
}

// NewLess returns an empty Map ordered by the strict weak ordering less.
// Keys a and b are equivalent when neither less(a, b) nor less(b, a).
func NewLess[K, V any](less func(K, K) bool, opts ...Option[K, V]) *Map[K, V] {
	return NewFunc(CompareLess(less), opts...)
}

// CompareLess converts a strict weak ordering into a comparison function.
func CompareLess[K any](less func(K, K) bool) func(K, K) int {
	return func(a, b K) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return +1
		}
		return 0
	}
}

// Collect returns a Map holding the pairs of seq, ordered according to
// K's standard Go ordering. When a key repeats, its first value is kept.
func Collect[K cmp.Ordered, V any](seq iter.Seq2[K, V], opts ...Option[K, V]) *Map[K, V] {
	m := New(opts...)
	m.InsertSeq(seq)
	return m
}

// Tree returns the tree backing m.
func (m *Map[K, V]) Tree() *Tree[K, V] { return m.t }

// Compare returns the key comparison function of m.
func (m *Map[K, V]) Compare() func(K, K) int { return m.t.cmp }

// CompareEntries returns a function ordering entries by key under m's
// comparison function. Neither position may be End.
func (m *Map[K, V]) CompareEntries() func(a, b Iterator[K, V]) int {
	cmp := m.t.cmp
	return func(a, b Iterator[K, V]) int { return cmp(a.Key(), b.Key()) }
}

// Allocator returns the allocator m draws its nodes from.
func (m *Map[K, V]) Allocator() Allocator[K, V] { return m.t.alloc }

// Len returns the number of entries in m.
func (m *Map[K, V]) Len() int { return m.t.Len() }

// Empty reports whether m has no entries.
func (m *Map[K, V]) Empty() bool { return m.t.Root() == nil }

func (m *Map[K, V]) pos(x *Node[K, V]) Iterator[K, V] {
	if x == nil {
		x = m.t.end
	}
	return Iterator[K, V]{x}
}

// Begin returns the position of the first entry, or End if m is empty.
func (m *Map[K, V]) Begin() Iterator[K, V] { return m.pos(m.t.Begin()) }

// End returns the position one past the last entry.
func (m *Map[K, V]) End() Iterator[K, V] { return m.pos(m.t.end) }

// RBegin returns the start of a backward walk over m.
func (m *Map[K, V]) RBegin() iterator.Reverse[Iterator[K, V]] {
	return iterator.MakeReverse(m.End())
}

// REnd returns the end of a backward walk over m.
func (m *Map[K, V]) REnd() iterator.Reverse[Iterator[K, V]] {
	return iterator.MakeReverse(m.Begin())
}

// Insert adds key with value val unless key is already present.
// It returns the position of key and whether an insertion happened.
// An existing value is never overwritten.
func (m *Map[K, V]) Insert(key K, val V) (Iterator[K, V], bool) {
	x, ok := m.t.Insert(key, val)
	return m.pos(x), ok
}

// InsertHint is like Insert but first tries to place key just before
// hint, which is fast when hint is the position key belongs at.
func (m *Map[K, V]) InsertHint(hint Iterator[K, V], key K, val V) Iterator[K, V] {
	if x := m.t.InsertHint(hint.x, key, val); x != m.t.end {
		return m.pos(x)
	}
	x, _ := m.t.Insert(key, val)
	return m.pos(x)
}

// InsertSeq inserts every pair of seq, keeping existing values.
func (m *Map[K, V]) InsertSeq(seq iter.Seq2[K, V]) {
	for k, v := range seq {
		m.t.Insert(k, v)
	}
}

// Set sets m[key] = val, inserting key if needed.
func (m *Map[K, V]) Set(key K, val V) {
	x, _ := m.t.Insert(key, val)
	x.val = val
}

// Get returns m[key] and whether key is present.
func (m *Map[K, V]) Get(key K) (val V, ok bool) {
	x := m.t.Find(key)
	if x == nil {
		return
	}
	return x.val, true
}

// Index returns a pointer to m[key], first inserting key with the
// zero value if it is absent. The pointer is valid until the next erase.
func (m *Map[K, V]) Index(key K) *V {
	var zero V
	x, _ := m.t.Insert(key, zero)
	return &x.val
}

// Find returns the position of key, or End if key is absent.
func (m *Map[K, V]) Find(key K) Iterator[K, V] { return m.pos(m.t.Find(key)) }

// Contains reports whether key is present in m.
func (m *Map[K, V]) Contains(key K) bool { return m.t.Find(key) != nil }

// Count returns the number of entries with key: 0 or 1.
func (m *Map[K, V]) Count(key K) int {
	if m.Contains(key) {
		return 1
	}
	return 0
}

// Erase removes key from m and returns the number of entries removed.
func (m *Map[K, V]) Erase(key K) int {
	if m.t.Erase(key) {
		return 1
	}
	return 0
}

// Delete deletes m[key].
func (m *Map[K, V]) Delete(key K) { m.t.Erase(key) }

// EraseAt removes the entry at it, which must not be End, and returns
// the position that followed it.
func (m *Map[K, V]) EraseAt(it Iterator[K, V]) Iterator[K, V] {
	next := it.Next()
	m.t.EraseNode(it.x)
	return next
}

// EraseRange removes the entries in [first, last) and returns last.
func (m *Map[K, V]) EraseRange(first, last Iterator[K, V]) Iterator[K, V] {
	for first != last {
		first = m.EraseAt(first)
	}
	return last
}

// DeleteRange deletes m[k] for all keys k satisfying lo ≤ k ≤ hi.
func (m *Map[K, V]) DeleteRange(lo, hi K) { m.t.DeleteRange(lo, hi) }

// Split removes from m all keys after key and returns them in a new Map
// with the same ordering and allocator. If key is present, it is removed
// from m and its value returned.
func (m *Map[K, V]) Split(key K) (val V, ok bool, more *Map[K, V]) {
	val, ok, after := m.t.Split(key)
	return val, ok, &Map[K, V]{after}
}

// Join moves all entries of more into m, leaving more empty.
// Every key in more must order after every key in m.
func (m *Map[K, V]) Join(more *Map[K, V]) { m.t.Join(more.t) }

// LowerBound returns the position of the first key not before key.
func (m *Map[K, V]) LowerBound(key K) Iterator[K, V] { return m.pos(m.t.LowerBound(key)) }

// UpperBound returns the position of the first key after key.
func (m *Map[K, V]) UpperBound(key K) Iterator[K, V] { return m.pos(m.t.UpperBound(key)) }

// EqualRange returns LowerBound(key) and UpperBound(key).
// The range is empty when key is absent.
func (m *Map[K, V]) EqualRange(key K) (first, last Iterator[K, V]) {
	return m.LowerBound(key), m.UpperBound(key)
}

// At returns the position of the i'th entry in key order, or End.
func (m *Map[K, V]) At(i int) Iterator[K, V] { return m.pos(m.t.Select(i)) }

// Rank returns the number of keys in m that order before key.
func (m *Map[K, V]) Rank(key K) int { return m.t.Rank(key) }

// Clear removes all entries from m.
func (m *Map[K, V]) Clear() { m.t.Clear() }

// Clone returns a copy of m with the same ordering and allocator.
func (m *Map[K, V]) Clone() *Map[K, V] { return &Map[K, V]{m.t.Clone()} }

// Assign makes m a copy of src.
func (m *Map[K, V]) Assign(src *Map[K, V]) { m.t.Assign(src.t) }

// Swap exchanges the contents of m and o.
func (m *Map[K, V]) Swap(o *Map[K, V]) { m.t.Swap(o.t) }

// All returns an iterator over the map m in key order.
// If m is modified during the iteration, some keys may not be visited.
// No keys will be visited multiple times.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.scan(m.t.Begin(), nil, yield)
	}
}

// Scan returns an iterator over the map m
// limited to keys k satisfying lo ≤ k ≤ hi.
//
// If m is modified during the iteration, some keys may not be visited.
// No keys will be visited multiple times.
func (m *Map[K, V]) Scan(lo, hi K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.scan(m.t.LowerBound(lo), &hi, yield)
	}
}

func (m *Map[K, V]) scan(x *Node[K, V], hi *K, yield func(K, V) bool) {
	t := m.t
	for x != t.end {
		if hi != nil && t.cmp(x.key, *hi) > 0 {
			return
		}
		key, gen := x.key, t.gen
		if !yield(key, x.val) {
			return
		}
		if t.gen == gen {
			x = x.successor()
		} else {
			x = t.UpperBound(key)
		}
	}
}

// Backward returns an iterator over the map m in reverse key order.
// If m is modified during the iteration, some keys may not be visited.
// No keys will be visited multiple times.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t := m.t
		for x := t.Last(); x != t.end; {
			key, gen := x.key, t.gen
			if !yield(key, x.val) {
				return
			}
			if t.gen == gen {
				x = x.predecessor()
			} else {
				x = t.LowerBound(key).predecessor()
			}
		}
	}
}

// Keys returns an iterator over the keys of m in order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over the values of m in key order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Equal reports whether a and b hold the same keys with the same values,
// comparing both with ==.
func Equal[K, V comparable](a, b *Map[K, V]) bool {
	return EqualFunc(a, b, func(x, y V) bool { return x == y }) && sameKeys(a, b)
}

func sameKeys[K comparable, V any](a, b *Map[K, V]) bool {
	x, y := a.t.Begin(), b.t.Begin()
	for ; x != a.t.end; x, y = x.successor(), y.successor() {
		if x.key != y.key {
			return false
		}
	}
	return true
}

// EqualFunc reports whether a and b have the same length and hold
// equivalent keys, under a's ordering, with values equal under eq,
// entry by entry.
func EqualFunc[K, V1, V2 any](a *Map[K, V1], b *Map[K, V2], eq func(V1, V2) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	x, y := a.t.Begin(), b.t.Begin()
	for ; x != a.t.end; x, y = x.successor(), y.successor() {
		if a.t.cmp(x.key, y.key) != 0 || !eq(x.val, y.val) {
			return false
		}
	}
	return true
}

// CompareFunc compares a and b lexicographically, entry by entry,
// ordering keys with a's comparison function and values with cmpV.
// A map that is a prefix of the other orders first.
func CompareFunc[K, V any](a, b *Map[K, V], cmpV func(V, V) int) int {
	x, y := a.t.Begin(), b.t.Begin()
	for ; x != a.t.end && y != b.t.end; x, y = x.successor(), y.successor() {
		if c := a.t.cmp(x.key, y.key); c != 0 {
			return c
		}
		if c := cmpV(x.val, y.val); c != 0 {
			return c
		}
	}
	switch {
	case x != a.t.end:
		return +1
	case y != b.t.end:
		return -1
	}
	return 0
}

// Compare is CompareFunc with values ordered by cmp.Compare.
func Compare[K any, V cmp.Ordered](a, b *Map[K, V]) int {
	return CompareFunc(a, b, cmp.Compare[V])
}

// Less reports whether a orders before b under Compare.
func Less[K any, V cmp.Ordered](a, b *Map[K, V]) bool {
	return Compare(a, b) < 0
}
