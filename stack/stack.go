// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stack implements a last-in, first-out adapter over a
// sequence container.
package stack

import (
	"cmp"
	"iter"

	"github.com/cockroachdb/errors"

	"rsc.io/avlmap/vector"
)

// ErrEmpty is returned when popping or peeking an empty stack.
var ErrEmpty = errors.New("stack: empty")

// A Container is a sequence that can grow and shrink at its back.
// Back is only called on a non-empty container.
// All yields the elements from the bottom of the stack to the top.
type Container[T any] interface {
	PushBack(T)
	PopBack()
	Back() T
	Len() int
	Empty() bool
	All() iter.Seq2[int, T]
}

// A Stack is a LIFO view of a Container.
type Stack[T any] struct {
	c Container[T]
}

// New returns an empty stack backed by a [vector.Vector].
func New[T any]() *Stack[T] {
	return &Stack[T]{c: new(vector.Vector[T])}
}

// NewWith returns a stack backed by c. Elements already in c stay on
// the stack, with the last element of c on top.
func NewWith[T any](c Container[T]) *Stack[T] {
	return &Stack[T]{c: c}
}

// Container returns the container backing s.
func (s *Stack[T]) Container() Container[T] { return s.c }

// Len returns the number of elements on s.
func (s *Stack[T]) Len() int { return s.c.Len() }

// Empty reports whether s has no elements.
func (s *Stack[T]) Empty() bool { return s.c.Empty() }

// Push puts x on top of s.
func (s *Stack[T]) Push(x T) { s.c.PushBack(x) }

// Top returns the element on top of s.
func (s *Stack[T]) Top() (T, error) {
	if s.c.Empty() {
		var zero T
		return zero, ErrEmpty
	}
	return s.c.Back(), nil
}

// Pop removes and returns the element on top of s.
func (s *Stack[T]) Pop() (T, error) {
	x, err := s.Top()
	if err != nil {
		return x, err
	}
	s.c.PopBack()
	return x, nil
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *Stack[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	return CompareFunc(a, b, func(x, y T) int {
		if x == y {
			return 0
		}
		return 1
	}) == 0
}

// CompareFunc compares the containers of a and b lexicographically from
// the bottom of each stack, using cmp for elements.
func CompareFunc[T any](a, b *Stack[T], cmp func(T, T) int) int {
	next, stop := iter.Pull2(b.c.All())
	defer stop()
	for _, x := range a.c.All() {
		_, y, ok := next()
		if !ok {
			return +1
		}
		if c := cmp(x, y); c != 0 {
			return c
		}
	}
	if _, _, ok := next(); ok {
		return -1
	}
	return 0
}

// Compare is CompareFunc with elements ordered by cmp.Compare.
func Compare[T cmp.Ordered](a, b *Stack[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}
