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

// Size is the cached shape of a subtree.
//
// Degree counts direct children only. NodeCount counts the node itself plus
// all of its descendants. For a Forest, Degree is the number of trees and
// NodeCount the number of nodes in all of them.
type Size struct {
	Degree    int
	NodeCount int
}

// Node is a single element of a tree, holding its payload and owning its
// children.
//
// The children of a node form one circular, doubly-linked sibling ring and
// the node points at the last of them, so the first child is child.next.
// It must at all times maintain the invariants that
//   - a node outside of any ring has next == prev == itself
//   - size.Degree is the number of nodes on the children ring
//   - size.NodeCount == 1 + the sum of the children's NodeCount
//
// Nodes are only created through NewTree or a FreeList and are never
// shared by two owners.
type Node[T any] struct {
	Data T

	next, prev *Node[T]
	child      *Node[T] // tail of the children ring, nil for a leaf
	parent     *Node[T]
	size       Size
	host       bool // sentinel owning the trees of a Forest
	b          borrow
}

func newNode[T any](data T) *Node[T] {
	n := new(Node[T])
	n.init(data)
	return n
}

// init readies a zeroed node as a standalone leaf.
func (n *Node[T]) init(data T) {
	n.Data = data
	n.next, n.prev = n, n
	n.size = Size{NodeCount: 1}
}

// link inserts the standalone node n into a ring right after at.
func link[T any](at, n *Node[T]) {
	next := at.next
	n.prev = at
	n.next = next
	at.next = n
	next.prev = n
}

// unlink takes n out of its ring and leaves it self-looped.
func unlink[T any](n *Node[T]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next, n.prev = n, n
}

// grow adds degree to the degree of n, and count to the node count of n and
// every one of its ancestors.
func (n *Node[T]) grow(degree, count int) {
	n.size.Degree += degree
	for p := n; p != nil; p = p.parent {
		p.size.NodeCount += count
	}
}

// below returns the number of nodes hanging off the children ring.
func (n *Node[T]) below() int {
	if n.host {
		return n.size.NodeCount
	}
	return n.size.NodeCount - 1
}

// guardCycle panics if root is n or one of its ancestors.
func (n *Node[T]) guardCycle(root *Node[T]) {
	for p := n; p != nil; p = p.parent {
		if p == root {
			panic(ErrCycle)
		}
	}
}

func (n *Node[T]) attach(c *Node[T]) {
	c.parent = n
	n.grow(1, c.size.NodeCount)
}

func (n *Node[T]) pushFront(c *Node[T]) {
	if n.child == nil {
		n.child = c
	} else {
		link(n.child, c)
	}
	n.attach(c)
}

func (n *Node[T]) pushBack(c *Node[T]) {
	if n.child != nil {
		link(n.child, c)
	}
	n.child = c
	n.attach(c)
}

// insertAfter links c into the children ring of n right after at.
func (n *Node[T]) insertAfter(at, c *Node[T]) {
	link(at, c)
	if n.child == at {
		n.child = c
	}
	n.attach(c)
}

// insertBefore links c into the children ring of n right before at.
func (n *Node[T]) insertBefore(at, c *Node[T]) {
	link(at.prev, c)
	n.attach(c)
}

// remove takes the child c off the children ring of n and returns it as a
// standalone root.
func (n *Node[T]) remove(c *Node[T]) *Node[T] {
	if n.child == c {
		if c.prev == c {
			n.child = nil
		} else {
			n.child = c.prev
		}
	}
	unlink(c)
	c.parent = nil
	n.grow(-1, -c.size.NodeCount)
	return c
}

// splice moves the whole children ring of src onto n, in front of or behind
// the existing children. Only the ring ends are rewritten; the parent pass
// is linear in the number of moved roots.
func (n *Node[T]) splice(src *Node[T], back bool) {
	tail := src.child
	if tail == nil {
		return
	}
	degree, count := src.size.Degree, src.below()
	head := tail.next
	for c := head; ; c = c.next {
		c.parent = n
		if c == tail {
			break
		}
	}
	src.child = nil
	src.grow(-degree, -count)

	if n.child == nil {
		n.child = tail
	} else {
		last, first := n.child, n.child.next
		last.next, head.prev = head, last
		tail.next, first.prev = first, tail
		if back {
			n.child = tail
		}
	}
	n.grow(degree, count)
}

// shed pops the first child without maintaining sizes. It is only used while
// a subtree is being torn down.
func (n *Node[T]) shed() *Node[T] {
	if n.child == nil {
		return nil
	}
	c := n.child.next
	if c == n.child {
		n.child = nil
	} else {
		unlink(c)
	}
	c.parent = nil
	return c
}

// IsLeaf returns true if n has no children.
func (n *Node[T]) IsLeaf() bool {
	return n.child == nil
}

// Degree returns the number of direct children of n.
func (n *Node[T]) Degree() int {
	return n.size.Degree
}

// NodeCount returns the number of nodes in the subtree rooted at n,
// n included.
func (n *Node[T]) NodeCount() int {
	return n.size.NodeCount
}

// Size returns the cached degree and node count of n.
func (n *Node[T]) Size() Size {
	return n.size
}

// Parent returns the node n is a child of, or nil if n is the root of a tree
// or a top-level tree of a Forest.
func (n *Node[T]) Parent() *Node[T] {
	if n.parent == nil || n.parent.host {
		return nil
	}
	return n.parent
}

// Front returns the first child of n, or nil for a leaf.
func (n *Node[T]) Front() *Node[T] {
	if n.child == nil {
		return nil
	}
	return n.child.next
}

// Back returns the last child of n, or nil for a leaf.
func (n *Node[T]) Back() *Node[T] {
	return n.child
}

// NextSibling returns the sibling following n, or nil if n is the last one.
func (n *Node[T]) NextSibling() *Node[T] {
	if n.parent == nil || n.parent.child == n {
		return nil
	}
	return n.next
}

// PrevSibling returns the sibling preceding n, or nil if n is the first one.
func (n *Node[T]) PrevSibling() *Node[T] {
	if n.parent == nil || n.parent.child.next == n {
		return nil
	}
	return n.prev
}

// NthChild returns the child at index i, or nil if i is out of range.
// It walks from whichever end of the ring is closer.
func (n *Node[T]) NthChild(i int) *Node[T] {
	if i < 0 || i >= n.size.Degree {
		return nil
	}
	if i <= n.size.Degree/2 {
		c := n.child.next
		for ; i > 0; i-- {
			c = c.next
		}
		return c
	}
	c := n.child
	for i = n.size.Degree - 1 - i; i > 0; i-- {
		c = c.prev
	}
	return c
}

// PushFront makes the root of t the new first child of n. t is consumed.
func (n *Node[T]) PushFront(t *Tree[T]) {
	c := t.node()
	n.guardCycle(c)
	n.b.touch()
	t.root = nil
	n.pushFront(c)
}

// PushBack makes the root of t the new last child of n. t is consumed.
func (n *Node[T]) PushBack(t *Tree[T]) {
	c := t.node()
	n.guardCycle(c)
	n.b.touch()
	t.root = nil
	n.pushBack(c)
}

// PopFront removes the first child of n and returns it as a tree, or nil if
// n is a leaf.
func (n *Node[T]) PopFront() *Tree[T] {
	if n.child == nil {
		return nil
	}
	n.b.touch()
	return &Tree[T]{root: n.remove(n.child.next)}
}

// PopBack removes the last child of n and returns it as a tree, or nil if n
// is a leaf.
func (n *Node[T]) PopBack() *Tree[T] {
	if n.child == nil {
		return nil
	}
	n.b.touch()
	return &Tree[T]{root: n.remove(n.child)}
}

// Prepend moves every tree of f, in order, in front of the children of n.
// f is left empty.
func (n *Node[T]) Prepend(f *Forest[T]) {
	n.spliceForest(f, false)
}

// Append moves every tree of f, in order, behind the children of n.
// f is left empty.
func (n *Node[T]) Append(f *Forest[T]) {
	n.spliceForest(f, true)
}

// Adopt makes the trees of f children of n. It is Append under the name used
// for the inverse of Abandon.
func (n *Node[T]) Adopt(f *Forest[T]) {
	n.spliceForest(f, true)
}

func (n *Node[T]) spliceForest(f *Forest[T], back bool) {
	src := f.hostNode()
	n.guardCycle(src)
	if src.child == nil {
		return
	}
	src.b.touch()
	n.b.touch()
	n.splice(src, back)
}

// Abandon detaches all children of n and returns them as a Forest, leaving n
// a leaf.
func (n *Node[T]) Abandon() *Forest[T] {
	f := NewForest[T]()
	if n.child == nil {
		return f
	}
	n.b.touch()
	f.hostNode().splice(n, true)
	return f
}

// Detach removes n, with its subtree, from the node or Forest holding it
// and returns it as a tree. The root of a tree has nothing to be detached
// from; Detach returns nil for it.
func (n *Node[T]) Detach() *Tree[T] {
	p := n.parent
	if p == nil {
		return nil
	}
	p.b.touch()
	return &Tree[T]{root: p.remove(n)}
}

// InsertPrevSib inserts the root of t right before n. It returns false, and
// leaves t untouched, if n is the root of a tree.
func (n *Node[T]) InsertPrevSib(t *Tree[T]) bool {
	p := n.parent
	if p == nil {
		return false
	}
	c := t.node()
	p.guardCycle(c)
	p.b.touch()
	t.root = nil
	p.insertBefore(n, c)
	return true
}

// InsertNextSib inserts the root of t right after n. It returns false, and
// leaves t untouched, if n is the root of a tree.
func (n *Node[T]) InsertNextSib(t *Tree[T]) bool {
	p := n.parent
	if p == nil {
		return false
	}
	c := t.node()
	p.guardCycle(c)
	p.b.touch()
	t.root = nil
	p.insertAfter(n, c)
	return true
}
