// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avlmap

// An Iterator is a position in a [Map]: either an entry or the end.
// Iterators compare equal when they refer to the same position.
//
// Stepping past the last entry yields the end, and stepping back from
// the end yields the last entry. Dereferencing the end panics.
//
// Erasing an entry frees a node and zeroes it, so an iterator to an erased
// entry may report IsEnd, and so does the zero Iterator. Neither may be
// stepped or dereferenced.
type Iterator[K, V any] struct {
	x *Node[K, V]
}

// Next returns the position following it.
func (it Iterator[K, V]) Next() Iterator[K, V] { return Iterator[K, V]{it.x.successor()} }

// Prev returns the position preceding it.
func (it Iterator[K, V]) Prev() Iterator[K, V] { return Iterator[K, V]{it.x.predecessor()} }

// IsEnd reports whether it is the end position.
func (it Iterator[K, V]) IsEnd() bool { return it.x == nil || it.x.isSentinel() }

// Key returns the key at it.
func (it Iterator[K, V]) Key() K { return it.node().key }

// Value returns the value at it.
func (it Iterator[K, V]) Value() V { return it.node().val }

// SetValue replaces the value at it.
func (it Iterator[K, V]) SetValue(v V) { it.node().val = v }

// Ptr returns a pointer to the value at it. The pointer is valid until
// the next erase from the map, which may move entries between nodes.
func (it Iterator[K, V]) Ptr() *V { return &it.node().val }

// Node returns the tree node at it, which is the sentinel at the end.
func (it Iterator[K, V]) Node() *Node[K, V] { return it.x }

func (it Iterator[K, V]) node() *Node[K, V] {
	if it.IsEnd() {
		panic("avlmap: dereference of end iterator")
	}
	return it.x
}
