// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package avlmap implements in-memory ordered maps backed by an AVL tree.
//
// A [Map][K, V] stores unique keys in the order defined by a comparison
// function and offers logarithmic insert, lookup and delete, in-order
// iteration in both directions, and range queries ([Map.LowerBound],
// [Map.UpperBound], [Map.EqualRange]).
//
// The underlying [Tree] is exposed for callers that want to work with
// nodes directly. Every tree owns a sentinel node that is the parent of
// the root and the target of the end [Iterator], so walking off either
// end of the tree lands on the same well-defined position.
//
// Maps and trees are not safe for concurrent use.
//
// Erasing a node that has a left subtree moves the entry of its in-order
// predecessor into it and frees the predecessor's node instead.
// An iterator that referred to the erased entry may therefore observe a
// different key afterwards; iterators must not be reused across an erase
// of the entry they refer to.
package avlmap

// See Lewis & Denenberg, Data Structures and Their Algorithms,
// and Adelson-Velsky & Landis (1962).
