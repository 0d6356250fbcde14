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

// Tree owns exactly one root node and, through it, the whole subtree.
//
// Handing a *Tree to PushBack, PushFront, InsertNextSib or a Subnode insert
// moves its root into the receiving structure. The handle is then moved and
// every further method call panics with ErrMoved.
type Tree[T any] struct {
	root *Node[T]
}

// NewTree creates a tree made of a single leaf holding data.
func NewTree[T any](data T) *Tree[T] {
	return &Tree[T]{root: newNode(data)}
}

// node returns the root, panicking if the handle was moved.
func (t *Tree[T]) node() *Node[T] {
	if t == nil || t.root == nil {
		panic(ErrMoved)
	}
	return t.root
}

// take returns the root and marks the handle as moved.
func (t *Tree[T]) take() *Node[T] {
	n := t.node()
	t.root = nil
	return n
}

// Moved returns true if the root of t now belongs to another structure, or
// was dropped.
func (t *Tree[T]) Moved() bool {
	return t == nil || t.root == nil
}

// Root returns the root node of t.
func (t *Tree[T]) Root() *Node[T] {
	return t.node()
}

// Data returns the payload of the root node.
func (t *Tree[T]) Data() T {
	return t.node().Data
}

// Size returns the degree and node count of the root.
func (t *Tree[T]) Size() Size {
	return t.node().size
}

// PushFront makes c the first child of the root.
func (t *Tree[T]) PushFront(c *Tree[T]) {
	t.node().PushFront(c)
}

// PushBack makes c the last child of the root.
func (t *Tree[T]) PushBack(c *Tree[T]) {
	t.node().PushBack(c)
}

// PopFront removes the first child of the root, or returns nil if the root
// is a leaf.
func (t *Tree[T]) PopFront() *Tree[T] {
	return t.node().PopFront()
}

// PopBack removes the last child of the root, or returns nil if the root is
// a leaf.
func (t *Tree[T]) PopBack() *Tree[T] {
	return t.node().PopBack()
}

// Prepend moves the trees of f in front of the root's children.
func (t *Tree[T]) Prepend(f *Forest[T]) {
	t.node().Prepend(f)
}

// Append moves the trees of f behind the root's children.
func (t *Tree[T]) Append(f *Forest[T]) {
	t.node().Append(f)
}

// Abandon removes all children of the root and returns them as a Forest.
// The root is left a leaf.
func (t *Tree[T]) Abandon() *Forest[T] {
	return t.node().Abandon()
}

// Adopt makes the trees of f children of the root.
func (t *Tree[T]) Adopt(f *Forest[T]) {
	t.node().Adopt(f)
}

// Split consumes t and returns its root payload and its children.
func (t *Tree[T]) Split() (T, *Forest[T]) {
	n := t.take()
	return n.Data, n.Abandon()
}

// Drop tears t down, calling Drop on every payload implementing Dropper
// exactly once. t is moved afterwards.
func (t *Tree[T]) Drop() {
	release[T](nil, t.take())
}
