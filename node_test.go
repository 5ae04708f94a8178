// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avlmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaf(key int) *Node[int, int] {
	return &Node[int, int]{key: key, height: 1, size: 1}
}

func TestRotate(t *testing.T) {
	// end -> (x a (y b c))
	end := new(Node[int, int])
	a, x, b, y, c := leaf(1), leaf(2), leaf(3), leaf(4), leaf(5)
	end.setLeft(x)
	x.setLeft(a)
	x.setRight(y)
	y.setLeft(b)
	y.setRight(c)
	y.update()
	x.update()
	require.Equal(t, -1, x.Balance())

	top := x.rotateLeft()
	require.Same(t, y, top)
	assert.Same(t, y, end.left)
	assert.Same(t, end, y.parent)
	assert.Same(t, x, y.left)
	assert.Same(t, c, y.right)
	assert.Same(t, a, x.left)
	assert.Same(t, b, x.right)
	assert.Same(t, x, b.parent)
	assert.Equal(t, 2, x.Height())
	assert.Equal(t, 3, y.Height())
	assert.Equal(t, 3, x.Size())
	assert.Equal(t, 5, y.Size())
	assert.Equal(t, 1, y.Balance())

	top = y.rotateRight()
	require.Same(t, x, top)
	assert.Same(t, x, end.left)
	assert.Same(t, y, x.right)
	assert.Same(t, b, y.left)
	assert.Same(t, y, b.parent)
	assert.Equal(t, 3, x.Height())
	assert.Equal(t, 5, x.Size())
}

func TestRotateUpdatesParent(t *testing.T) {
	// end -> (p (x nil (y nil nil)) nil) after rotation keeps p's metrics current.
	end := new(Node[int, int])
	p, x, y := leaf(10), leaf(1), leaf(2)
	end.setLeft(p)
	p.setLeft(x)
	x.setRight(y)
	x.update()
	p.update()
	require.Equal(t, 3, p.Height())

	x.rotateLeft()
	assert.Same(t, y, p.left)
	assert.Equal(t, 3, p.Height())
	assert.Equal(t, 3, p.Size())
	assert.Equal(t, 2, p.Balance())
}

func TestRebalanceDouble(t *testing.T) {
	// Left-right case: (z (x nil y) nil) becomes (y x z).
	end := new(Node[int, int])
	x, y, z := leaf(1), leaf(2), leaf(3)
	end.setLeft(z)
	z.setLeft(x)
	x.setRight(y)
	x.update()
	z.update()
	require.Equal(t, 2, z.Balance())
	require.Equal(t, -1, x.Balance())

	top := z.rebalance()
	require.Same(t, y, top)
	assert.Same(t, y, end.left)
	assert.Same(t, x, y.left)
	assert.Same(t, z, y.right)
	for _, n := range []*Node[int, int]{x, y, z} {
		assert.Equal(t, 0, n.Balance(), "node %d", n.Key())
	}
	assert.Equal(t, 2, y.Height())

	// Right-left case: (x nil (z y nil)) becomes (y x z).
	end = new(Node[int, int])
	x, y, z = leaf(1), leaf(2), leaf(3)
	end.setLeft(x)
	x.setRight(z)
	z.setLeft(y)
	z.update()
	x.update()
	require.Equal(t, -2, x.Balance())

	top = x.rebalance()
	require.Same(t, y, top)
	assert.Same(t, x, y.left)
	assert.Same(t, z, y.right)
}

func TestRebalanceNoop(t *testing.T) {
	end := new(Node[int, int])
	x := leaf(1)
	end.setLeft(x)
	assert.Same(t, x, x.rebalance())
}

func TestReplaceChildPanics(t *testing.T) {
	p, stranger := leaf(1), leaf(2)
	assert.Panics(t, func() { p.replaceChild(stranger, nil) })
}

func TestNodeAccessors(t *testing.T) {
	var nilNode *Node[int, string]
	assert.Equal(t, 0, nilNode.Height())
	assert.Equal(t, 0, nilNode.Size())

	x := &Node[int, string]{key: 3, val: "three", height: 1, size: 1}
	assert.Equal(t, 3, x.Key())
	assert.Equal(t, "three", x.Value())
	x.SetValue("drei")
	assert.Equal(t, "drei", x.Value())
}
