// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avlmap

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(lo, hi int) []int {
	var xs []int
	for i := lo; i <= hi; i++ {
		xs = append(xs, i)
	}
	return xs
}

func TestTreeSplit(t *testing.T) {
	tr := newIntTree()
	for _, k := range rand.Perm(100) {
		tr.Insert(k, k*10)
	}
	val, ok, after := tr.Split(50)
	require.NoError(t, tr.Check())
	require.NoError(t, after.Check())
	assert.True(t, ok)
	assert.Equal(t, 500, val)
	assert.Equal(t, seq(0, 49), inorder(tr))
	assert.Equal(t, seq(51, 99), inorder(after))
	assert.Equal(t, 49, after.Len())
	assert.Same(t, tr.End(), tr.Root().parent)
	assert.Same(t, after.End(), after.Root().parent)

	_, ok, after2 := tr.Split(-1)
	assert.False(t, ok)
	assert.Equal(t, 0, tr.Len())
	assert.Equal(t, seq(0, 49), inorder(after2))

	_, ok, empty := after.Split(1000)
	assert.False(t, ok)
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, 49, after.Len())
}

func TestTreeJoin(t *testing.T) {
	a, b := newIntTree(), newIntTree()
	for k := range 50 {
		a.Insert(k, k)
	}
	for k := 100; k < 103; k++ {
		b.Insert(k, k)
	}
	a.Join(b)
	require.NoError(t, a.Check())
	require.NoError(t, b.Check())
	assert.Equal(t, 53, a.Len())
	assert.Equal(t, 0, b.Len())
	assert.Nil(t, b.Root())
	assert.Equal(t, append(seq(0, 49), 100, 101, 102), inorder(a))

	// Short tree on the left.
	c := newIntTree()
	c.Insert(-1, -1)
	c.Join(a)
	require.NoError(t, c.Check())
	assert.Equal(t, 54, c.Len())
	assert.Equal(t, -1, c.Begin().Key())

	// Joining into an empty tree.
	d := newIntTree()
	d.Join(c)
	require.NoError(t, d.Check())
	assert.Equal(t, 54, d.Len())

	d.Join(newIntTree())
	assert.Equal(t, 54, d.Len())
}

func TestTreeJoinMisuse(t *testing.T) {
	a, b := newIntTree(), newIntTree()
	a.Insert(5, 5)
	b.Insert(5, 5)
	assert.Panics(t, func() { a.Join(b) })
	assert.Panics(t, func() { a.Join(a) })
}

func TestTreeSplitJoinRandom(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for range 200 {
		n := r.IntN(300)
		tr := newIntTree()
		for _, k := range r.Perm(n) {
			tr.Insert(2*k, k)
		}
		key := r.IntN(2*n + 2)
		_, ok, after := tr.Split(key)
		require.NoError(t, tr.Check())
		require.NoError(t, after.Check())
		assert.Equal(t, key%2 == 0 && key < 2*n, ok)
		if tr.Len() > 0 {
			assert.Less(t, tr.Last().Key(), key)
		}
		if after.Len() > 0 {
			assert.Greater(t, after.Begin().Key(), key)
		}
		want := tr.Len() + after.Len()

		tr.Join(after)
		require.NoError(t, tr.Check())
		require.Equal(t, want, tr.Len())
		assert.True(t, slices.IsSorted(inorder(tr)))
	}
}

func TestTreeDeleteRange(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	for range 200 {
		n := r.IntN(200)
		pool := new(PoolAllocator[int, int])
		tr := NewTree(cmp.Compare[int], WithAllocator[int, int](pool))
		for _, k := range r.Perm(n) {
			tr.Insert(k, k)
		}
		lo, hi := r.IntN(n+10)-5, r.IntN(n+10)-5
		tr.DeleteRange(lo, hi)
		require.NoError(t, tr.Check(), "DeleteRange(%d, %d) of 0..%d", lo, hi, n-1)

		var want []int
		for k := range n {
			if lo > hi || k < lo || k > hi {
				want = append(want, k)
			}
		}
		assert.Equal(t, want, inorder(tr))
		assert.Equal(t, tr.Len(), pool.InUse(), "removed nodes are freed")
	}
}

func TestMapSplitJoin(t *testing.T) {
	m := fill(100)
	val, ok, more := m.Split(40)
	assert.True(t, ok)
	assert.Equal(t, "hello", val)
	assert.Equal(t, 40, m.Len())
	assert.Equal(t, 59, more.Len())
	assert.Equal(t, 41, more.Begin().Key())
	require.NoError(t, m.Tree().Check())
	require.NoError(t, more.Tree().Check())

	more.Insert(1000, "x")
	m.Join(more)
	require.NoError(t, m.Tree().Check())
	assert.True(t, more.Empty())
	assert.Equal(t, 100, m.Len())
	assert.False(t, m.Contains(40))
	assert.True(t, m.Contains(1000))
}

func TestMapDeleteRangeDuringAll(t *testing.T) {
	m := fill(100)
	var got []int
	for k := range m.All() {
		got = append(got, k)
		if k == 10 {
			m.DeleteRange(11, 89)
		}
	}
	assert.Equal(t, append(seq(0, 10), seq(90, 99)...), got)
	require.NoError(t, m.Tree().Check())
}
