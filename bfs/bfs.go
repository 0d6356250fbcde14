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

// Package bfs flattens trees and forests into breadth-first streams of
// payloads annotated with their sizes, and rebuilds them from such streams.
//
// A stream is enough to rebuild the exact shape it came from, which makes it
// the exchange format between this package's pointer-linked trees and any
// other representation, such as the CBOR encoding in package codec.
package bfs

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/google/forest"
)

var (
	// ErrEmpty is returned when a tree is built from a stream without nodes.
	ErrEmpty = errors.New("bfs: empty stream")
	// ErrTruncated is returned when a stream announces more children than it
	// carries.
	ErrTruncated = errors.New("bfs: stream truncated")
	// ErrTrailing is returned when a stream carries nodes beyond the ones
	// announced by the degrees.
	ErrTrailing = errors.New("bfs: trailing visits in stream")
	// ErrSize is returned when the rebuilt structure does not have the size
	// the stream announced.
	ErrSize = errors.New("bfs: size mismatch")
	// ErrMalformed is returned when a stream announces a negative size.
	ErrMalformed = errors.New("bfs: malformed stream")
)

// maxPrealloc bounds the capacity reserved from sizes a stream announces.
const maxPrealloc = 1024

// Visit is one node of a breadth-first stream: its payload and its cached
// degree and node count.
type Visit[T any] struct {
	Data T
	Size forest.Size
}

// Stream is a breadth-first sequence of visits. Size is the size of the tree
// root, or of the forest, the stream was taken from.
type Stream[T any] struct {
	Size   forest.Size
	Visits iter.Seq[Visit[T]]
}

// OfTree returns the breadth-first stream of t.
func OfTree[T any](t *forest.Tree[T]) Stream[T] {
	root := t.Root()
	return Stream[T]{Size: root.Size(), Visits: visits([]*forest.Node[T]{root})}
}

// OfForest returns the breadth-first stream of f. The roots come first, in
// order, followed by every following generation.
func OfForest[T any](f *forest.Forest[T]) Stream[T] {
	roots := make([]*forest.Node[T], 0, f.Degree())
	for it := f.Iter(); it.Len() > 0; {
		roots = append(roots, it.Next())
	}
	return Stream[T]{Size: f.Size(), Visits: visits(roots)}
}

// FromVisits returns a stream replaying vs.
func FromVisits[T any](size forest.Size, vs []Visit[T]) Stream[T] {
	return Stream[T]{Size: size, Visits: slices.Values(vs)}
}

func visits[T any](roots []*forest.Node[T]) iter.Seq[Visit[T]] {
	return func(yield func(Visit[T]) bool) {
		queue := slices.Clone(roots)
		for i := 0; i < len(queue); i++ {
			n := queue[i]
			queue[i] = nil
			if !yield(Visit[T]{Data: n.Data, Size: n.Size()}) {
				return
			}
			for it := n.Iter(); it.Len() > 0; {
				queue = append(queue, it.Next())
			}
		}
	}
}

// Collect returns the visits of s as a slice.
func Collect[T any](s Stream[T]) []Visit[T] {
	return slices.Collect(s.Visits)
}

// Builder rebuilds trees and forests from streams. The zero value allocates
// every node; with Free set, nodes are taken from the free list.
type Builder[T any] struct {
	Free *forest.FreeList[T]
}

func (b Builder[T]) newTree(data T) *forest.Tree[T] {
	if b.Free != nil {
		return b.Free.NewTree(data)
	}
	return forest.NewTree(data)
}

// BuildTree rebuilds the tree s was taken from. Only NewTree and PushBack
// are used, so the result upholds every invariant of package forest.
func BuildTree[T any](s Stream[T]) (*forest.Tree[T], error) {
	return Builder[T]{}.Tree(s)
}

// BuildForest rebuilds the forest s was taken from. s.Size.Degree tells how
// many roots the stream starts with.
func BuildForest[T any](s Stream[T]) (*forest.Forest[T], error) {
	return Builder[T]{}.Forest(s)
}

// Tree is BuildTree taking nodes from b.
func (b Builder[T]) Tree(s Stream[T]) (*forest.Tree[T], error) {
	if err := checkSize(s.Size); err != nil {
		return nil, err
	}
	next, stop := iter.Pull(s.Visits)
	defer stop()

	v, ok := next()
	if !ok {
		return nil, ErrEmpty
	}
	if err := checkSize(v.Size); err != nil {
		return nil, err
	}
	t := b.newTree(v.Data)
	if err := b.build(next, []pending[T]{{t.Root(), v.Size.Degree}}); err != nil {
		b.drop(t)
		return nil, err
	}
	if s.Size != (forest.Size{}) && t.Size() != s.Size {
		err := fmt.Errorf("%w: built %+v, stream announced %+v", ErrSize, t.Size(), s.Size)
		b.drop(t)
		return nil, err
	}
	return t, nil
}

// Forest is BuildForest taking nodes from b.
func (b Builder[T]) Forest(s Stream[T]) (*forest.Forest[T], error) {
	if err := checkSize(s.Size); err != nil {
		return nil, err
	}
	next, stop := iter.Pull(s.Visits)
	defer stop()

	f := forest.NewForest[T]()
	queue := make([]pending[T], 0, min(s.Size.Degree, maxPrealloc))
	err := func() error {
		for i := 0; i < s.Size.Degree; i++ {
			v, ok := next()
			if !ok {
				return fmt.Errorf("%w: %d of %d roots", ErrTruncated, i, s.Size.Degree)
			}
			if err := checkSize(v.Size); err != nil {
				return err
			}
			f.PushBack(b.newTree(v.Data))
			queue = append(queue, pending[T]{f.Back(), v.Size.Degree})
		}
		if err := b.build(next, queue); err != nil {
			return err
		}
		if s.Size.NodeCount != 0 && f.NodeCount() != s.Size.NodeCount {
			return fmt.Errorf("%w: built %d nodes, stream announced %d", ErrSize, f.NodeCount(), s.Size.NodeCount)
		}
		return nil
	}()
	if err != nil {
		if b.Free != nil {
			b.Free.ReleaseForest(f)
		}
		return nil, err
	}
	return f, nil
}

func checkSize(sz forest.Size) error {
	if sz.Degree < 0 || sz.NodeCount < 0 {
		return fmt.Errorf("%w: size %+v", ErrMalformed, sz)
	}
	return nil
}

// drop hands the nodes of a tree that failed to build back to the free list.
func (b Builder[T]) drop(t *forest.Tree[T]) {
	if b.Free != nil {
		b.Free.Release(t)
	}
}

// pending is a node still waiting for its children.
type pending[T any] struct {
	node   *forest.Node[T]
	degree int
}

// build hands out the visits pulled from next, generation by generation, to
// the nodes of queue.
func (b Builder[T]) build(next func() (Visit[T], bool), queue []pending[T]) error {
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for i := 0; i < p.degree; i++ {
			v, ok := next()
			if !ok {
				return fmt.Errorf("%w: node %v is missing %d children", ErrTruncated, p.node.Data, p.degree-i)
			}
			if err := checkSize(v.Size); err != nil {
				return err
			}
			p.node.PushBack(b.newTree(v.Data))
			queue = append(queue, pending[T]{p.node.Back(), v.Size.Degree})
		}
	}
	if _, ok := next(); ok {
		return ErrTrailing
	}
	return nil
}
