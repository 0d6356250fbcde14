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

// Package forest implements ordered n-ary trees and forests.
//
// A Tree is a root node owning zero or more ordered children, each of them a
// tree itself. A Forest is an ordered, possibly empty, sequence of disjoint
// trees without a root of its own.
//
// The children of a node are linked into a circular, doubly-linked sibling
// ring and the node references the last of them, so that pushing or popping
// at either end is O(1), and splicing a whole forest in is a handful of
// pointer writes regardless of its size. Every node also keeps a pointer to
// its parent and a cached Size (degree and subtree node count) which every
// edit propagates to the ancestors of the edited node.
//
// Ownership is unique: structural operations move subtrees from one owner to
// another, they never alias them. A *Tree handed to an insert is consumed.
//
// The structure is not safe for concurrent mutation. Within one goroutine the
// aliasing rules are checked at runtime: a sibling ring that is being ranged
// over cannot be edited except through the OntoIter doing the ranging, and
// cursors fail fast when their ring changes under them. Violations panic
// with ErrBorrowed, ErrModified, ErrMoved, ErrCycle or ErrDeparted.
//
// Trees, forests and their iterators can be handed between goroutines when
// T can.
package forest

// Forest is an ordered sequence of trees.
//
// The zero value is an empty forest ready to use. A Forest must not be
// copied after first use.
type Forest[T any] struct {
	_ noCopy

	// host is a sentinel whose children are the trees of the forest. It is
	// never visible to callers; Parent of a top-level tree returns nil.
	host Node[T]
}

// noCopy lets go vet's copylocks check flag copies of a Forest, whose trees
// point back at its host.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// NewForest creates an empty forest.
func NewForest[T any]() *Forest[T] {
	return new(Forest[T])
}

func (f *Forest[T]) hostNode() *Node[T] {
	f.host.host = true
	return &f.host
}

// IsEmpty returns true if f holds no tree.
func (f *Forest[T]) IsEmpty() bool {
	return f.host.child == nil
}

// Degree returns the number of trees in f.
func (f *Forest[T]) Degree() int {
	return f.host.size.Degree
}

// NodeCount returns the number of nodes in all trees of f.
func (f *Forest[T]) NodeCount() int {
	return f.host.size.NodeCount
}

// Size returns the number of trees and the number of nodes of f.
func (f *Forest[T]) Size() Size {
	return f.host.size
}

// Front returns the root of the first tree, or nil if f is empty.
func (f *Forest[T]) Front() *Node[T] {
	return f.host.Front()
}

// Back returns the root of the last tree, or nil if f is empty.
func (f *Forest[T]) Back() *Node[T] {
	return f.host.Back()
}

// NthTree returns the root of the tree at index i, or nil if i is out of
// range.
func (f *Forest[T]) NthTree(i int) *Node[T] {
	return f.host.NthChild(i)
}

// PushFront makes t the first tree of f.
func (f *Forest[T]) PushFront(t *Tree[T]) {
	f.hostNode().PushFront(t)
}

// PushBack makes t the last tree of f.
func (f *Forest[T]) PushBack(t *Tree[T]) {
	f.hostNode().PushBack(t)
}

// PopFront removes the first tree of f, or returns nil if f is empty.
func (f *Forest[T]) PopFront() *Tree[T] {
	return f.hostNode().PopFront()
}

// PopBack removes the last tree of f, or returns nil if f is empty.
func (f *Forest[T]) PopBack() *Tree[T] {
	return f.hostNode().PopBack()
}

// Prepend moves the trees of o in front of the trees of f, leaving o empty.
func (f *Forest[T]) Prepend(o *Forest[T]) {
	f.hostNode().Prepend(o)
}

// Append moves the trees of o behind the trees of f, leaving o empty.
func (f *Forest[T]) Append(o *Forest[T]) {
	f.hostNode().Append(o)
}

// Iter returns a cursor over the roots of f.
func (f *Forest[T]) Iter() Iter[T] {
	return f.hostNode().Iter()
}

// OntoIter returns a cursor over the roots of f that can insert and remove
// trees around the current one.
func (f *Forest[T]) OntoIter() *OntoIter[T] {
	return f.hostNode().OntoIter()
}

// Drop pops and tears down every tree of f, calling Drop on every payload
// implementing Dropper. f is left empty.
func (f *Forest[T]) Drop() {
	releaseForest[T](nil, f)
}
