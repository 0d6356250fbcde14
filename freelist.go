// Copyright 2014-2022 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package forest

import "sync"

const (
	DefaultFreeListSize = 32
)

// Dropper is implemented by payloads that want to know when the node
// holding them is torn down by Tree.Drop, Forest.Drop or a FreeList.
// Drop is called exactly once per node.
type Dropper interface {
	Drop()
}

// FreeList represents a free list of tree nodes. Trees created by a FreeList
// and released back to it recycle their nodes instead of leaving them to
// the garbage collector.
// Several goroutines may share one FreeList.
type FreeList[T any] struct {
	mu       sync.Mutex
	freelist []*Node[T]
}

// NewFreeList creates a new free list.
// size is the maximum size of the returned free list.
func NewFreeList[T any](size int) *FreeList[T] {
	return &FreeList[T]{freelist: make([]*Node[T], 0, size)}
}

func (f *FreeList[T]) newNode() (n *Node[T]) {
	f.mu.Lock()
	index := len(f.freelist) - 1
	if index < 0 {
		f.mu.Unlock()
		return new(Node[T])
	}
	n = f.freelist[index]
	f.freelist[index] = nil
	f.freelist = f.freelist[:index]
	f.mu.Unlock()
	return
}

func (f *FreeList[T]) freeNode(n *Node[T]) (out bool) {
	f.mu.Lock()
	if len(f.freelist) < cap(f.freelist) {
		f.freelist = append(f.freelist, n)
		out = true
	}
	f.mu.Unlock()
	return
}

// Len returns the number of nodes waiting to be reused.
func (f *FreeList[T]) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.freelist)
}

// NewTree creates a single-node tree, reusing a free node if there is one.
func (f *FreeList[T]) NewTree(data T) *Tree[T] {
	n := f.newNode()
	n.init(data)
	return &Tree[T]{root: n}
}

// Release tears t down like Tree.Drop and keeps its nodes for reuse, until
// the free list is full.
func (f *FreeList[T]) Release(t *Tree[T]) {
	release(f, t.take())
}

// ReleaseForest pops every tree of fr and releases it. fr is left empty.
func (f *FreeList[T]) ReleaseForest(fr *Forest[T]) {
	releaseForest(f, fr)
}

func releaseForest[T any](fl *FreeList[T], f *Forest[T]) {
	h := f.hostNode()
	if h.child == nil {
		return
	}
	h.b.touch()
	for h.child != nil {
		release(fl, h.remove(h.child.next))
	}
}

// release tears down the subtree rooted at the standalone node n.
//
// The first child of the node on top of a heap-allocated stack is popped and
// pushed until a leaf is reached, which is then dropped. Stack use does not
// grow with the depth of the tree.
func release[T any](fl *FreeList[T], n *Node[T]) {
	n.b.touch()
	stack := []*Node[T]{n}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if c := top.shed(); c != nil {
			stack = append(stack, c)
			continue
		}
		stack[len(stack)-1] = nil
		stack = stack[:len(stack)-1]
		dropData(&top.Data)
		*top = Node[T]{} // clear to allow GC
		if fl != nil {
			fl.freeNode(top)
		}
	}
}

func dropData[T any](data *T) {
	if d, ok := any(*data).(Dropper); ok {
		d.Drop()
		return
	}
	if d, ok := any(data).(Dropper); ok {
		d.Drop()
	}
}
