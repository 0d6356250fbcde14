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

// OntoIter walks one sibling ring and lets the caller edit the ring around
// the node it is positioned on.
//
// The sweep covers exactly the nodes present when it started. Trees inserted
// through a Subnode are not visited by the same sweep, and departing the
// current node does not disturb it.
//
// Each step runs the same small state machine:
//  1. stop once every original node was yielded;
//  2. otherwise make the captured successor current;
//  3. capture the successor of the new current node before handing it out,
//     so edits made through its Subnode cannot redirect the sweep.
//
// Edits of the ring made other than through the current Subnode make the
// next step panic with ErrModified.
type OntoIter[T any] struct {
	owner      *Node[T]
	curr, next *Node[T]
	left       int
	stamp      uint64
	locked     bool // ring borrowed exclusively by All
}

// OntoIter returns an in-place editing cursor over the children of n.
func (n *Node[T]) OntoIter() *OntoIter[T] {
	it := &OntoIter[T]{owner: n, left: n.size.Degree, stamp: n.b.stamp}
	if n.child != nil {
		it.next = n.child.next
	}
	return it
}

// Next advances to the next original node and returns a Subnode positioned
// on it, or nil once the sweep is done.
func (it *OntoIter[T]) Next() *Subnode[T] {
	if it.owner.b.stamp != it.stamp {
		panic(ErrModified)
	}
	if it.left == 0 {
		it.curr = nil
		return nil
	}
	it.curr = it.next
	it.next = it.curr.next
	it.left--
	return &Subnode[T]{it: it, node: it.curr}
}

// All returns an iterator over the remaining Subnodes. The ring is borrowed
// exclusively while the loop runs, so the yielded Subnode is the only way
// to edit it.
func (it *OntoIter[T]) All() iter.Seq[*Subnode[T]] {
	return func(yield func(*Subnode[T]) bool) {
		it.owner.b.lock()
		it.locked = true
		defer func() {
			it.locked = false
			it.owner.b.unlock()
		}()
		for s := it.Next(); s != nil; s = it.Next() {
			if !yield(s) {
				return
			}
		}
	}
}

// edited records an edit made by the cursor itself.
func (it *OntoIter[T]) edited() {
	it.owner.b.stamp++
	it.stamp = it.owner.b.stamp
}

// Subnode is the node an OntoIter is positioned on, together with the means
// to edit the ring around it. It is only valid until the cursor advances.
type Subnode[T any] struct {
	it       *OntoIter[T]
	node     *Node[T]
	departed bool
}

func (s *Subnode[T]) check() {
	if s.departed {
		panic(ErrDeparted)
	}
	it := s.it
	if it.curr != s.node || it.owner.b.stamp != it.stamp {
		panic(ErrModified)
	}
	if b := &it.owner.b; b.shared > 0 || (b.exclusive && !it.locked) {
		panic(ErrBorrowed)
	}
}

// Node returns the current node.
func (s *Subnode[T]) Node() *Node[T] {
	return s.node
}

// InsertBefore inserts the root of t right before the current node.
// t is consumed and will not be visited by the current sweep.
func (s *Subnode[T]) InsertBefore(t *Tree[T]) {
	s.check()
	owner := s.it.owner
	c := t.node()
	owner.guardCycle(c)
	t.root = nil
	owner.insertBefore(s.node, c)
	s.it.edited()
}

// InsertAfter inserts the root of t right after the current node.
// t is consumed and will not be visited by the current sweep.
func (s *Subnode[T]) InsertAfter(t *Tree[T]) {
	s.check()
	owner := s.it.owner
	c := t.node()
	owner.guardCycle(c)
	t.root = nil
	owner.insertAfter(s.node, c)
	s.it.edited()
}

// Depart removes the current node, with its subtree, from the ring and
// returns it as a tree. The sweep carries on with the node that followed it.
func (s *Subnode[T]) Depart() *Tree[T] {
	s.check()
	s.departed = true
	t := &Tree[T]{root: s.it.owner.remove(s.node)}
	s.it.edited()
	return t
}
