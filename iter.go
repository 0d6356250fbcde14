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

import "iter"

// Iter is a cursor over one sibling ring, bounded by its head and its tail
// and by the number of nodes left between them, so that it terminates on the
// circular list. It can be consumed from both ends.
//
// An Iter does not borrow the ring. Editing the ring while an Iter is in use
// makes its next call panic with ErrModified.
type Iter[T any] struct {
	owner      *Node[T]
	head, tail *Node[T]
	left       int
	stamp      uint64
}

// Iter returns a cursor over the children of n.
func (n *Node[T]) Iter() Iter[T] {
	it := Iter[T]{owner: n, left: n.size.Degree, stamp: n.b.stamp}
	if n.child != nil {
		it.head, it.tail = n.child.next, n.child
	}
	return it
}

func (it *Iter[T]) check() {
	if it.owner.b.stamp != it.stamp {
		panic(ErrModified)
	}
}

// Len returns the number of nodes not yet returned.
func (it *Iter[T]) Len() int {
	return it.left
}

// Next returns the next node from the front, or nil when exhausted.
func (it *Iter[T]) Next() *Node[T] {
	if it.left == 0 {
		return nil
	}
	it.check()
	n := it.head
	it.head = n.next
	it.left--
	return n
}

// NextBack returns the next node from the back, or nil when exhausted.
func (it *Iter[T]) NextBack() *Node[T] {
	if it.left == 0 {
		return nil
	}
	it.check()
	n := it.tail
	it.tail = n.prev
	it.left--
	return n
}

// Children returns an iterator over the children of n. The children ring is
// borrowed shared while the loop runs: reading is fine, editing the ring
// panics with ErrBorrowed.
func (n *Node[T]) Children() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		n.b.share()
		defer n.b.unshare()
		for it := n.Iter(); it.left > 0; {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// ChildrenMut returns an iterator over the children of n that borrows the
// ring exclusively while the loop runs. No other range over the same ring
// may be live. Payloads and grandchildren may be changed freely.
func (n *Node[T]) ChildrenMut() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		n.b.lock()
		defer n.b.unlock()
		for it := n.Iter(); it.left > 0; {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// Backward returns an iterator over the children of n from last to first,
// borrowing the ring shared like Children.
func (n *Node[T]) Backward() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		n.b.share()
		defer n.b.unshare()
		for it := n.Iter(); it.left > 0; {
			if !yield(it.NextBack()) {
				return
			}
		}
	}
}

// Children returns an iterator over the roots of f. See Node.Children.
func (f *Forest[T]) Children() iter.Seq[*Node[T]] {
	return f.hostNode().Children()
}

// ChildrenMut returns an iterator over the roots of f. See
// Node.ChildrenMut.
func (f *Forest[T]) ChildrenMut() iter.Seq[*Node[T]] {
	return f.hostNode().ChildrenMut()
}

// Backward returns an iterator over the roots of f from last to first.
func (f *Forest[T]) Backward() iter.Seq[*Node[T]] {
	return f.hostNode().Backward()
}
