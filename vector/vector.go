// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vector implements a growable array whose capacity doubles
// when it fills up.
package vector

import (
	"cmp"
	"iter"

	"github.com/cockroachdb/errors"

	"rsc.io/avlmap/iterator"
)

// ErrOutOfRange is returned for an index outside a vector's elements.
var ErrOutOfRange = errors.New("vector: index out of range")

// A Vector is a sequence of elements stored contiguously.
// The zero value is an empty Vector ready to use.
type Vector[T any] struct {
	data []T // len(data) is the length, cap(data) the capacity
}

// New returns a Vector holding elems.
func New[T any](elems ...T) *Vector[T] {
	v := new(Vector[T])
	v.Reserve(len(elems))
	v.data = append(v.data, elems...)
	return v
}

// Repeat returns a Vector holding n copies of x.
func Repeat[T any](n int, x T) *Vector[T] {
	v := new(Vector[T])
	v.Resize(n, x)
	return v
}

// Len returns the number of elements in v.
func (v *Vector[T]) Len() int { return len(v.data) }

// Cap returns the number of elements v can hold without reallocating.
func (v *Vector[T]) Cap() int { return cap(v.data) }

// Empty reports whether v has no elements.
func (v *Vector[T]) Empty() bool { return len(v.data) == 0 }

// Reserve makes room for at least n elements.
func (v *Vector[T]) Reserve(n int) {
	if n <= cap(v.data) {
		return
	}
	data := make([]T, len(v.data), n)
	copy(data, v.data)
	v.data = data
}

// grow makes room for n more elements, doubling the capacity as needed.
func (v *Vector[T]) grow(n int) {
	need := len(v.data) + n
	if need <= cap(v.data) {
		return
	}
	c := max(cap(v.data), 1)
	for c < need {
		c *= 2
	}
	v.Reserve(c)
}

// Resize changes the length of v to n, filling new elements with x.
func (v *Vector[T]) Resize(n int, x T) {
	if n < len(v.data) {
		clear(v.data[n:])
		v.data = v.data[:n]
		return
	}
	v.grow(n - len(v.data))
	for len(v.data) < n {
		v.data = append(v.data, x)
	}
}

// At returns the i'th element.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.data) {
		var zero T
		return zero, errors.Wrapf(ErrOutOfRange, "index %d, length %d", i, len(v.data))
	}
	return v.data[i], nil
}

// Set replaces the i'th element.
func (v *Vector[T]) Set(i int, x T) error {
	if i < 0 || i >= len(v.data) {
		return errors.Wrapf(ErrOutOfRange, "index %d, length %d", i, len(v.data))
	}
	v.data[i] = x
	return nil
}

// Front returns the first element. v must not be empty.
func (v *Vector[T]) Front() T { return v.data[0] }

// Back returns the last element. v must not be empty.
func (v *Vector[T]) Back() T { return v.data[len(v.data)-1] }

// PushBack appends x.
func (v *Vector[T]) PushBack(x T) {
	v.grow(1)
	v.data = append(v.data, x)
}

// PopBack removes the last element, if any.
func (v *Vector[T]) PopBack() {
	if len(v.data) == 0 {
		return
	}
	var zero T
	v.data[len(v.data)-1] = zero
	v.data = v.data[:len(v.data)-1]
}

// Insert inserts xs before index i, where 0 ≤ i ≤ Len.
func (v *Vector[T]) Insert(i int, xs ...T) error {
	if i < 0 || i > len(v.data) {
		return errors.Wrapf(ErrOutOfRange, "insert at %d, length %d", i, len(v.data))
	}
	n := len(xs)
	v.grow(n)
	v.data = v.data[:len(v.data)+n]
	copy(v.data[i+n:], v.data[i:])
	copy(v.data[i:], xs)
	return nil
}

// Erase removes the elements in [i, j).
func (v *Vector[T]) Erase(i, j int) error {
	if i < 0 || j > len(v.data) || i > j {
		return errors.Wrapf(ErrOutOfRange, "erase [%d, %d), length %d", i, j, len(v.data))
	}
	n := copy(v.data[i:], v.data[j:])
	clear(v.data[i+n:])
	v.data = v.data[:i+n]
	return nil
}

// Assign replaces the contents of v with xs.
func (v *Vector[T]) Assign(xs ...T) {
	v.Clear()
	v.grow(len(xs))
	v.data = append(v.data, xs...)
}

// AssignRepeat replaces the contents of v with n copies of x.
func (v *Vector[T]) AssignRepeat(n int, x T) {
	v.Clear()
	v.Resize(n, x)
}

// Clear removes all elements, keeping the capacity.
func (v *Vector[T]) Clear() {
	clear(v.data)
	v.data = v.data[:0]
}

// Swap exchanges the contents of v and w.
func (v *Vector[T]) Swap(w *Vector[T]) {
	v.data, w.data = w.data, v.data
}

// Clone returns a copy of v with the same capacity.
func (v *Vector[T]) Clone() *Vector[T] {
	w := new(Vector[T])
	w.Reserve(cap(v.data))
	w.data = append(w.data, v.data...)
	return w
}

// All returns an iterator over the indexes and elements of v.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.data {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Backward returns an iterator over the indexes and elements of v,
// last element first.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := len(v.data) - 1; i >= 0; i-- {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}

// Begin returns an iterator at the first element.
func (v *Vector[T]) Begin() Iterator[T] { return Iterator[T]{v, 0} }

// End returns an iterator one past the last element.
func (v *Vector[T]) End() Iterator[T] { return Iterator[T]{v, len(v.data)} }

// RBegin returns the start of a backward walk over v.
func (v *Vector[T]) RBegin() iterator.Reverse[Iterator[T]] { return iterator.MakeReverse(v.End()) }

// REnd returns the end of a backward walk over v.
func (v *Vector[T]) REnd() iterator.Reverse[Iterator[T]] { return iterator.MakeReverse(v.Begin()) }

// Equal reports whether v and w hold equal elements in the same order.
func Equal[T comparable](v, w *Vector[T]) bool {
	if len(v.data) != len(w.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != w.data[i] {
			return false
		}
	}
	return true
}

// CompareFunc compares v and w lexicographically using cmp.
func CompareFunc[T any](v, w *Vector[T], cmp func(T, T) int) int {
	for i := 0; i < len(v.data) && i < len(w.data); i++ {
		if c := cmp(v.data[i], w.data[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(v.data) > len(w.data):
		return +1
	case len(v.data) < len(w.data):
		return -1
	}
	return 0
}

// Compare is CompareFunc with elements ordered by cmp.Compare.
func Compare[T cmp.Ordered](v, w *Vector[T]) int {
	return CompareFunc(v, w, cmp.Compare[T])
}
