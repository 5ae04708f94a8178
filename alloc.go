// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avlmap

// An Allocator supplies the nodes of a tree.
// Alloc returns a node the tree may overwrite entirely.
// Free receives a zeroed node the tree no longer references.
type Allocator[K, V any] interface {
	Alloc() *Node[K, V]
	Free(*Node[K, V])
}

// HeapAllocator allocates each node with new and leaves freed nodes
// to the garbage collector. It is the default allocator.
type HeapAllocator[K, V any] struct{}

func (HeapAllocator[K, V]) Alloc() *Node[K, V] { return new(Node[K, V]) }

func (HeapAllocator[K, V]) Free(*Node[K, V]) {}

// A PoolAllocator recycles freed nodes through a free list threaded
// through their parent links. It may be shared by several trees
// owned by the same goroutine.
type PoolAllocator[K, V any] struct {
	free      *Node[K, V]
	allocated int // nodes ever created
	idle      int // nodes on the free list
}

// Alloc returns a node from the free list, or a new one if the list is empty.
func (p *PoolAllocator[K, V]) Alloc() *Node[K, V] {
	x := p.free
	if x == nil {
		if p.idle != 0 {
			panic("pool corrupt")
		}
		p.allocated++
		return new(Node[K, V])
	}
	p.free = x.parent
	x.parent = nil
	p.idle--
	return x
}

// Free puts x on the free list.
func (p *PoolAllocator[K, V]) Free(x *Node[K, V]) {
	x.parent = p.free
	p.free = x
	p.idle++
}

// Allocated returns the number of nodes the pool has created.
func (p *PoolAllocator[K, V]) Allocated() int { return p.allocated }

// Idle returns the number of nodes waiting on the free list.
func (p *PoolAllocator[K, V]) Idle() int { return p.idle }

// InUse returns the number of nodes handed out and not yet freed.
func (p *PoolAllocator[K, V]) InUse() int { return p.allocated - p.idle }
