// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avlmap

import (
	"math/rand/v2"
	"testing"

	"github.com/google/btree"
)

// A mapper is the subset of map operations the benchmarks exercise.
type mapper[K, V any] interface {
	Get(K) (V, bool)
	Set(K, V)
	Delete(K)
}

type btreeEntry struct{ key, val int }

type btreeMap struct {
	t *btree.BTreeG[btreeEntry]
}

func newBTreeMap() mapper[int, int] {
	return btreeMap{btree.NewG(32, func(a, b btreeEntry) bool { return a.key < b.key })}
}

func (m btreeMap) Get(k int) (int, bool) {
	e, ok := m.t.Get(btreeEntry{key: k})
	return e.val, ok
}

func (m btreeMap) Set(k, v int) { m.t.ReplaceOrInsert(btreeEntry{k, v}) }

func (m btreeMap) Delete(k int) { m.t.Delete(btreeEntry{key: k}) }

var mappers = []struct {
	name string
	new  func() mapper[int, int]
}{
	{"avl", func() mapper[int, int] { return New[int, int]() }},
	{"avlpool", func() mapper[int, int] { return New(WithAllocator[int, int](new(PoolAllocator[int, int]))) }},
	{"btree", newBTreeMap},
}

func benchMaps(b *testing.B, bench func(b *testing.B, newMap func() mapper[int, int])) {
	for _, m := range mappers {
		b.Run(m.name, func(b *testing.B) { bench(b, m.new) })
	}
}

func BenchmarkGetRandRand(b *testing.B) {
	benchMaps(b, func(b *testing.B, newMap func() mapper[int, int]) {
		const N = 100000
		m := newMap()
		rand := rand.New(rand.NewPCG(1, 1))
		for _, v := range rand.Perm(N) {
			m.Set(v, v)
		}
		perm := rand.Perm(N)
		b.ResetTimer()
		n := 0
		for range b.N {
			m.Get(perm[n])
			n++
			if n == N {
				n = 0
			}
		}
	})
}

func BenchmarkGetSeqRand(b *testing.B) {
	benchMaps(b, func(b *testing.B, newMap func() mapper[int, int]) {
		const N = 100000
		rand := rand.New(rand.NewPCG(1, 1))
		m := newMap()
		for v := range N {
			m.Set(v, v)
		}
		perm := rand.Perm(N)
		b.ResetTimer()
		n := 0
		for range b.N {
			m.Get(perm[n])
			n++
			if n == N {
				n = 0
			}
		}
	})
}

func BenchmarkSetDelete(b *testing.B) {
	benchMaps(b, func(b *testing.B, newMap func() mapper[int, int]) {
		const N = 100000
		perm := rand.Perm(N)
		perm2 := rand.Perm(N)
		m := newMap()
		b.ResetTimer()
		n := 0
		for range b.N {
			if n < N {
				m.Set(perm[n], perm[n])
			} else {
				m.Delete(perm2[n-N])
			}
			n++
			if n == 2*N {
				n = 0
			}
		}
	})
}

func BenchmarkInsertHintAscending(b *testing.B) {
	const N = 10000
	for range b.N {
		m := New[int, int]()
		for i := range N {
			m.InsertHint(m.End(), i, i)
		}
	}
}

func BenchmarkIterate(b *testing.B) {
	const N = 10000
	m := New[int, int]()
	for i := range N {
		m.Insert(i, i)
	}
	b.Run("all", func(b *testing.B) {
		for range b.N {
			for range m.All() {
			}
		}
	})
	b.Run("iterator", func(b *testing.B) {
		for range b.N {
			for it := m.Begin(); !it.IsEnd(); it = it.Next() {
			}
		}
	})
}
