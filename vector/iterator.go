// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vector

// An Iterator is a position in a Vector. Iterators support random
// access; they are invalidated when the vector reallocates.
type Iterator[T any] struct {
	v *Vector[T]
	i int
}

// Index returns the element index at it.
func (it Iterator[T]) Index() int { return it.i }

// Next returns the following position.
func (it Iterator[T]) Next() Iterator[T] { return Iterator[T]{it.v, it.i + 1} }

// Prev returns the preceding position.
func (it Iterator[T]) Prev() Iterator[T] { return Iterator[T]{it.v, it.i - 1} }

// Add returns it moved n positions; n may be negative.
func (it Iterator[T]) Add(n int) Iterator[T] { return Iterator[T]{it.v, it.i + n} }

// Sub returns the number of positions from u to it.
func (it Iterator[T]) Sub(u Iterator[T]) int { return it.i - u.i }

// Less reports whether it is before u.
func (it Iterator[T]) Less(u Iterator[T]) bool { return it.i < u.i }

// Value returns the element at it. It panics if it is out of range.
func (it Iterator[T]) Value() T { return it.v.data[it.i] }

// Ptr returns a pointer to the element at it.
func (it Iterator[T]) Ptr() *T { return &it.v.data[it.i] }
