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

// Package walk provides a manual depth-first cursor over trees and forests.
//
// The cursor emits Begin and End around every node with children and a
// single Leaf for every node without. It keeps no stack: it only follows
// the first-child, next-sibling and parent links of package forest.
package walk

import (
	"iter"

	"github.com/google/forest"
)

// Kind tells which side of a node a Visit is on.
type Kind int

const (
	Begin Kind = iota // entering a node with children
	End               // leaving a node with children
	Leaf              // a node without children
)

func (k Kind) String() string {
	switch k {
	case Begin:
		return "Begin"
	case End:
		return "End"
	case Leaf:
		return "Leaf"
	}
	return "Kind(?)"
}

// Visit is the event a Walk is positioned on.
type Visit[T any] struct {
	Kind Kind
	Node *forest.Node[T]
}

// Walk is a depth-first cursor. The structure must not be edited while the
// cursor is in use.
type Walk[T any] struct {
	top   *forest.Node[T] // node the walk is confined to, nil for a forest
	first *forest.Node[T]
	curr  Visit[T]
	depth int
	done  bool
}

// OfTree returns a cursor positioned on the root of t.
func OfTree[T any](t *forest.Tree[T]) *Walk[T] {
	return OfNode(t.Root())
}

// OfNode returns a cursor over the subtree rooted at n, positioned on n.
func OfNode[T any](n *forest.Node[T]) *Walk[T] {
	w := &Walk[T]{top: n, first: n}
	w.Reset()
	return w
}

// OfForest returns a cursor positioned on the root of the first tree of f.
func OfForest[T any](f *forest.Forest[T]) *Walk[T] {
	w := &Walk[T]{first: f.Front()}
	w.Reset()
	return w
}

func visit[T any](n *forest.Node[T]) Visit[T] {
	if n.IsLeaf() {
		return Visit[T]{Kind: Leaf, Node: n}
	}
	return Visit[T]{Kind: Begin, Node: n}
}

// Reset moves the cursor back to where it started.
func (w *Walk[T]) Reset() {
	w.depth = 0
	w.done = w.first == nil
	if !w.done {
		w.curr = visit(w.first)
	}
}

// Get returns the current visit, or false once the walk is over.
func (w *Walk[T]) Get() (Visit[T], bool) {
	if w.done {
		return Visit[T]{}, false
	}
	return w.curr, true
}

// Depth returns how many Begin visits enclose the current one.
func (w *Walk[T]) Depth() int {
	return w.depth
}

// Forward moves to the next visit in depth-first order.
func (w *Walk[T]) Forward() {
	if w.done {
		return
	}
	n := w.curr.Node
	if w.curr.Kind == Begin {
		w.depth++
		w.curr = visit(n.Front())
		return
	}
	if n == w.top {
		w.done = true
		return
	}
	if sib := n.NextSibling(); sib != nil {
		w.curr = visit(sib)
		return
	}
	if w.depth == 0 {
		w.done = true
		return
	}
	w.depth--
	w.curr = Visit[T]{Kind: End, Node: n.Parent()}
}

// Next moves forward and returns the new visit.
func (w *Walk[T]) Next() (Visit[T], bool) {
	w.Forward()
	return w.Get()
}

// ToParent moves to the End visit of the parent of the current node.
// It fails at the outermost level.
func (w *Walk[T]) ToParent() (Visit[T], bool) {
	if w.done || w.depth == 0 {
		return Visit[T]{}, false
	}
	w.depth--
	w.curr = Visit[T]{Kind: End, Node: w.curr.Node.Parent()}
	return w.curr, true
}

// ToChild moves from a Begin visit to the i-th child of its node.
func (w *Walk[T]) ToChild(i int) (Visit[T], bool) {
	if w.done || w.curr.Kind != Begin {
		return Visit[T]{}, false
	}
	c := w.curr.Node.NthChild(i)
	if c == nil {
		return Visit[T]{}, false
	}
	w.depth++
	w.curr = visit(c)
	return w.curr, true
}

// ToSib moves to the i-th sibling following the current node, re-entering
// the current node itself for i == 0.
func (w *Walk[T]) ToSib(i int) (Visit[T], bool) {
	if w.done || i < 0 {
		return Visit[T]{}, false
	}
	n := w.curr.Node
	if n == w.top && i > 0 {
		return Visit[T]{}, false
	}
	for ; i > 0 && n != nil; i-- {
		n = n.NextSibling()
	}
	if n == nil {
		return Visit[T]{}, false
	}
	w.curr = visit(n)
	return w.curr, true
}

// Revisit turns an End visit back into the Begin visit of the same node.
func (w *Walk[T]) Revisit() bool {
	if w.done || w.curr.Kind != End {
		return false
	}
	w.curr.Kind = Begin
	return true
}

// PreOrder returns an iterator over the subtree rooted at n, parents before
// children.
func PreOrder[T any](n *forest.Node[T]) iter.Seq[*forest.Node[T]] {
	return func(yield func(*forest.Node[T]) bool) {
		w := OfNode(n)
		for v, ok := w.Get(); ok; v, ok = w.Next() {
			if v.Kind != End && !yield(v.Node) {
				return
			}
		}
	}
}

// PostOrder returns an iterator over the subtree rooted at n, children
// before parents.
func PostOrder[T any](n *forest.Node[T]) iter.Seq[*forest.Node[T]] {
	return func(yield func(*forest.Node[T]) bool) {
		w := OfNode(n)
		for v, ok := w.Get(); ok; v, ok = w.Next() {
			if v.Kind != Begin && !yield(v.Node) {
				return
			}
		}
	}
}

// Events returns an iterator over every visit of w from its current
// position on.
func (w *Walk[T]) Events() iter.Seq[Visit[T]] {
	return func(yield func(Visit[T]) bool) {
		for v, ok := w.Get(); ok; v, ok = w.Next() {
			if !yield(v) {
				return
			}
		}
	}
}
