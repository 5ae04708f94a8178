// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package measure

import (
	"iter"

	"github.com/google/btree"

	"rsc.io/avlmap"
)

// The map baseline is a B-tree of key/value items ordered by key.
type item struct {
	key int
	val string
}

func itemLess(a, b item) bool { return a.key < b.key }

const btreeDegree = 32

func newBTree() *btree.BTreeG[item] { return btree.NewG(btreeDegree, itemLess) }

func fillBTree(n int) *btree.BTreeG[item] {
	t := newBTree()
	for i := range n {
		t.ReplaceOrInsert(item{i, "hello"})
	}
	return t
}

func fillMap(n int) *avlmap.Map[int, string] {
	m := avlmap.New[int, string]()
	for i := range n {
		m.Insert(i, "hello")
	}
	return m
}

// btreeLowerBound returns the first item at or after key.
func btreeLowerBound(t *btree.BTreeG[item], key int) (found item, ok bool) {
	t.AscendGreaterOrEqual(item{key: key}, func(it item) bool {
		found, ok = it, true
		return false
	})
	return found, ok
}

// btreeUpperBound returns the first item after key.
func btreeUpperBound(t *btree.BTreeG[item], key int) (found item, ok bool) {
	t.AscendGreaterOrEqual(item{key: key}, func(it item) bool {
		if it.key == key {
			return true
		}
		found, ok = it, true
		return false
	})
	return found, ok
}

var sink any

var mapCases = []Case{
	{"constructor default", func(cfg Config) (func(), func()) {
		return loop(cfg.Loops, func(int) { sink = avlmap.New[int, string]() }),
			loop(cfg.Loops, func(int) { sink = newBTree() })
	}},
	{"constructor range", func(cfg Config) (func(), func()) {
		pairs := make([]item, cfg.Elements)
		for i := range pairs {
			pairs[i] = item{i, "hello"}
		}
		var seq iter.Seq2[int, string] = func(yield func(int, string) bool) {
			for _, p := range pairs {
				if !yield(p.key, p.val) {
					return
				}
			}
		}
		return func() { sink = avlmap.Collect(seq) },
			func() {
				t := newBTree()
				for _, p := range pairs {
					t.ReplaceOrInsert(p)
				}
				sink = t
			}
	}},
	{"copy", func(cfg Config) (func(), func()) {
		m, t := fillMap(cfg.Elements), fillBTree(cfg.Elements)
		return func() { sink = m.Clone() },
			func() {
				c := newBTree()
				t.Ascend(func(it item) bool {
					c.ReplaceOrInsert(it)
					return true
				})
				sink = c
			}
	}},
	{"assign", func(cfg Config) (func(), func()) {
		m, t := fillMap(cfg.Elements), fillBTree(cfg.Elements)
		dst, bdst := avlmap.New[int, string](), newBTree()
		return func() { dst.Assign(m) },
			func() {
				bdst.Clear(false)
				t.Ascend(func(it item) bool {
					bdst.ReplaceOrInsert(it)
					return true
				})
			}
	}},
	{"begin", func(cfg Config) (func(), func()) {
		m, t := fillMap(cfg.Elements), fillBTree(cfg.Elements)
		return loop(cfg.Loops, func(int) { sink = m.Begin() }),
			loop(cfg.Loops, func(int) { sink, _ = t.Min() })
	}},
	{"end", func(cfg Config) (func(), func()) {
		m, t := fillMap(cfg.Elements), fillBTree(cfg.Elements)
		return loop(cfg.Loops, func(int) { sink = m.End() }),
			loop(cfg.Loops, func(int) { sink = t.Len() })
	}},
	{"rbegin", func(cfg Config) (func(), func()) {
		m, t := fillMap(cfg.Elements), fillBTree(cfg.Elements)
		return loop(cfg.Loops, func(int) { sink = m.RBegin().Elem() }),
			loop(cfg.Loops, func(int) { sink, _ = t.Max() })
	}},
	{"rend", func(cfg Config) (func(), func()) {
		m, t := fillMap(cfg.Elements), fillBTree(cfg.Elements)
		return loop(cfg.Loops, func(int) { sink = m.REnd() }),
			loop(cfg.Loops, func(int) { sink, _ = t.Min() })
	}},
	{"empty", func(cfg Config) (func(), func()) {
		m, t := fillMap(cfg.Elements), fillBTree(cfg.Elements)
		return loop(cfg.Loops, func(int) { sink = m.Empty() }),
			loop(cfg.Loops, func(int) { sink = t.Len() == 0 })
	}},
	{"size", func(cfg Config) (func(), func()) {
		m, t := fillMap(cfg.Elements), fillBTree(cfg.Elements)
		return loop(cfg.Loops, func(int) { sink = m.Len() }),
			loop(cfg.Loops, func(int) { sink = t.Len() })
	}},
	{"index", func(cfg Config) (func(), func()) {
		m, t := fillMap(cfg.Elements), fillBTree(cfg.Elements)
		return loop(cfg.Loops, func(i int) { sink = m.Index(i) }),
			loop(cfg.Loops, func(i int) {
				if _, ok := t.Get(item{key: i}); !ok {
					t.ReplaceOrInsert(item{key: i})
				}
			})
	}},
	{"insert", func(cfg Config) (func(), func()) {
		m, t := fillMap(cfg.Elements), fillBTree(cfg.Elements)
		return loop(cfg.Loops, func(i int) { m.Insert(i+1000, "hello") }),
			loop(cfg.Loops, func(i int) {
				if !t.Has(item{key: i + 1000}) {
					t.ReplaceOrInsert(item{i + 1000, "hello"})
				}
			})
	}},
	{"insert hint", func(cfg Config) (func(), func()) {
		m, t := avlmap.New[int, string](), newBTree()
		return loop(cfg.Loops, func(i int) { m.InsertHint(m.End(), i, "hello") }),
			loop(cfg.Loops, func(i int) { t.ReplaceOrInsert(item{i, "hello"}) })
	}},
	{"erase position", func(cfg Config) (func(), func()) {
		m, t := fillMap(cfg.Elements+100), fillBTree(cfg.Elements+100)
		n := min(cfg.Loops, cfg.Elements)
		return loop(n, func(int) { m.EraseAt(m.Begin()) }),
			loop(n, func(int) { t.DeleteMin() })
	}},
	{"erase key", func(cfg Config) (func(), func()) {
		m, t := fillMap(cfg.Elements+100), fillBTree(cfg.Elements+100)
		return loop(cfg.Loops, func(i int) { m.Erase(i) }),
			loop(cfg.Loops, func(i int) { t.Delete(item{key: i}) })
	}},
	{"erase range", func(cfg Config) (func(), func()) {
		m, t := fillMap(cfg.Elements), fillBTree(cfg.Elements)
		return func() { m.EraseRange(m.Begin(), m.End()) },
			func() {
				for t.Len() > 0 {
					t.DeleteMin()
				}
			}
	}},
	{"delete range", func(cfg Config) (func(), func()) {
		m, t := fillMap(cfg.Elements), fillBTree(cfg.Elements)
		lo, hi := cfg.Elements/4, 3*cfg.Elements/4
		return func() { m.DeleteRange(lo, hi) },
			func() {
				for i := lo; i <= hi; i++ {
					t.Delete(item{key: i})
				}
			}
	}},
	{"swap", func(cfg Config) (func(), func()) {
		m, m2 := fillMap(cfg.Elements), fillMap(cfg.Elements)
		t, t2 := fillBTree(cfg.Elements), fillBTree(cfg.Elements)
		return loop(cfg.Loops, func(int) { m.Swap(m2) }),
			loop(cfg.Loops, func(int) { t, t2 = t2, t })
	}},
	{"clear", func(cfg Config) (func(), func()) {
		m, t := fillMap(cfg.Elements), fillBTree(cfg.Elements)
		return m.Clear, func() { t.Clear(false) }
	}},
	{"find", func(cfg Config) (func(), func()) {
		m, t := fillMap(cfg.Elements), fillBTree(cfg.Elements)
		return loop(cfg.Loops, func(i int) { sink = m.Find(i) }),
			loop(cfg.Loops, func(i int) { sink, _ = t.Get(item{key: i}) })
	}},
	{"count", func(cfg Config) (func(), func()) {
		m, t := fillMap(cfg.Elements), fillBTree(cfg.Elements)
		return loop(cfg.Loops, func(i int) { sink = m.Count(i) }),
			loop(cfg.Loops, func(i int) { sink = t.Has(item{key: i}) })
	}},
	{"lower bound", func(cfg Config) (func(), func()) {
		m, t := fillMap(cfg.Elements), fillBTree(cfg.Elements)
		return loop(cfg.Loops, func(i int) { sink = m.LowerBound(i) }),
			loop(cfg.Loops, func(i int) { sink, _ = btreeLowerBound(t, i) })
	}},
	{"upper bound", func(cfg Config) (func(), func()) {
		m, t := fillMap(cfg.Elements), fillBTree(cfg.Elements)
		return loop(cfg.Loops, func(i int) { sink = m.UpperBound(i) }),
			loop(cfg.Loops, func(i int) { sink, _ = btreeUpperBound(t, i) })
	}},
	{"equal range", func(cfg Config) (func(), func()) {
		m, t := fillMap(cfg.Elements), fillBTree(cfg.Elements)
		return loop(cfg.Loops, func(i int) { sink, _ = m.EqualRange(i) }),
			loop(cfg.Loops, func(i int) {
				sink, _ = btreeLowerBound(t, i)
				sink, _ = btreeUpperBound(t, i)
			})
	}},
}
