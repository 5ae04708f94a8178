// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iterator provides position-based iterator helpers shared by
// the containers in this module.
//
// An iterator here is a small comparable value naming a position in a
// container. Stepping returns a new value; the receiver is unchanged.
package iterator

// Bidirectional is the set of iterator types I that can step forward
// and backward and compare equal at the same position.
type Bidirectional[I any] interface {
	comparable
	Next() I
	Prev() I
}

// A Reverse iterator walks its base iterator's container backward.
//
// A Reverse built from base refers to the element just before base,
// so the reverse of a container's end is the first position of the
// reversed walk and the reverse of its beginning is the reversed end.
type Reverse[I Bidirectional[I]] struct {
	base I
}

// MakeReverse returns the reverse iterator whose base is base.
func MakeReverse[I Bidirectional[I]](base I) Reverse[I] {
	return Reverse[I]{base}
}

// Base returns the underlying iterator, one position after Elem.
func (r Reverse[I]) Base() I { return r.base }

// Next advances r, moving its base backward.
func (r Reverse[I]) Next() Reverse[I] { return Reverse[I]{r.base.Prev()} }

// Prev retreats r, moving its base forward.
func (r Reverse[I]) Prev() Reverse[I] { return Reverse[I]{r.base.Next()} }

// Elem returns the forward iterator positioned at the element r refers to.
func (r Reverse[I]) Elem() I { return r.base.Prev() }

// Advance returns it moved n steps forward, or -n steps backward when
// n is negative.
func Advance[I Bidirectional[I]](it I, n int) I {
	for ; n > 0; n-- {
		it = it.Next()
	}
	for ; n < 0; n++ {
		it = it.Prev()
	}
	return it
}

// Distance returns the number of steps from first to last.
// last must be reachable from first by stepping forward.
func Distance[I Bidirectional[I]](first, last I) int {
	n := 0
	for ; first != last; first = first.Next() {
		n++
	}
	return n
}
