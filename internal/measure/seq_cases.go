// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package measure

import (
	"slices"

	"rsc.io/avlmap/stack"
	"rsc.io/avlmap/vector"
)

// Vectors and stacks are measured against plain Go slices.

var vectorCases = []Case{
	{"constructor default", func(cfg Config) (func(), func()) {
		return loop(cfg.Loops, func(int) { sink = new(vector.Vector[int]) }),
			loop(cfg.Loops, func(int) { sink = new([]int) })
	}},
	{"constructor copy", func(cfg Config) (func(), func()) {
		v, s := vector.New(1, 2, 3), []int{1, 2, 3}
		return loop(cfg.Loops, func(int) { sink = v.Clone() }),
			loop(cfg.Loops, func(int) { sink = slices.Clone(s) })
	}},
	{"constructor range", func(cfg Config) (func(), func()) {
		src := make([]int, cfg.Elements)
		for i := range src {
			src[i] = i * i
		}
		return func() { sink = vector.New(src...) },
			func() { sink = append([]int(nil), src...) }
	}},
	{"constructor size value", func(cfg Config) (func(), func()) {
		n := cfg.Elements
		return func() { sink = vector.Repeat(n, n) },
			func() { sink = slices.Repeat([]int{n}, n) }
	}},
	{"assign", func(cfg Config) (func(), func()) {
		src := make([]int, cfg.Elements)
		v, s := new(vector.Vector[int]), []int(nil)
		return func() { v.Assign(src...) },
			func() { s = append(s[:0], src...) }
	}},
	{"push back", func(cfg Config) (func(), func()) {
		v, s := new(vector.Vector[int]), []int(nil)
		return loop(cfg.Loops, func(i int) { v.PushBack(i) }),
			loop(cfg.Loops, func(i int) { s = append(s, i) })
	}},
	{"at", func(cfg Config) (func(), func()) {
		v := vector.Repeat(cfg.Elements, 1)
		s := slices.Repeat([]int{1}, cfg.Elements)
		return loop(cfg.Loops, func(i int) { sink, _ = v.At(i % cfg.Elements) }),
			loop(cfg.Loops, func(i int) { sink = s[i%cfg.Elements] })
	}},
}

var stackCases = []Case{
	{"constructor default", func(cfg Config) (func(), func()) {
		return loop(cfg.Loops, func(int) { sink = stack.New[string]() }),
			loop(cfg.Loops, func(int) { sink = new([]string) })
	}},
	{"empty", func(cfg Config) (func(), func()) {
		st := stack.New[string]()
		st.Push("hello")
		s := []string{"hello"}
		return loop(cfg.Loops, func(int) { sink = st.Empty() }),
			loop(cfg.Loops, func(int) { sink = len(s) == 0 })
	}},
	{"size", func(cfg Config) (func(), func()) {
		st, s := stack.New[string](), []string(nil)
		for range cfg.Elements {
			st.Push("hello")
			s = append(s, "hello")
		}
		return loop(cfg.Loops, func(int) { sink = st.Len() }),
			loop(cfg.Loops, func(int) { sink = len(s) })
	}},
	{"top", func(cfg Config) (func(), func()) {
		st := stack.New[string]()
		st.Push("hello")
		s := []string{"hello"}
		return loop(cfg.Loops, func(int) { sink, _ = st.Top() }),
			loop(cfg.Loops, func(int) { sink = s[len(s)-1] })
	}},
	{"push", func(cfg Config) (func(), func()) {
		st, s := stack.New[string](), []string(nil)
		return loop(cfg.Loops, func(int) { st.Push("hello") }),
			loop(cfg.Loops, func(int) { s = append(s, "hello") })
	}},
	{"pop", func(cfg Config) (func(), func()) {
		st, s := stack.New[string](), []string(nil)
		for range cfg.Loops {
			st.Push("hello")
			s = append(s, "hello")
		}
		return loop(cfg.Loops, func(int) { sink, _ = st.Pop() }),
			loop(cfg.Loops, func(int) {
				sink = s[len(s)-1]
				s = s[:len(s)-1]
			})
	}},
}
