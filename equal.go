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

import (
	"cmp"
	"reflect"
)

// Equaler is implemented by payloads that decide their own equality. It
// overrides the default comparison with reflect.DeepEqual.
type Equaler[T any] interface {
	Equal(other T) bool
}

func equal[T any](a, b T) bool {
	if a, ok := any(a).(Equaler[T]); ok {
		return a.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}

// Equal reports whether the subtrees rooted at n and o hold equal payloads
// in the same shape.
func (n *Node[T]) Equal(o *Node[T]) bool {
	return n.EqualFunc(o, equal[T])
}

// EqualFunc is like Equal but compares payloads with eq.
func (n *Node[T]) EqualFunc(o *Node[T], eq func(a, b T) bool) bool {
	if n.size != o.size || !eq(n.Data, o.Data) {
		return false
	}
	return equalRings(n.Iter(), o.Iter(), eq)
}

func equalRings[T any](a, b Iter[T], eq func(a, b T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for x, y := a.Next(), b.Next(); x != nil; x, y = a.Next(), b.Next() {
		if !x.EqualFunc(y, eq) {
			return false
		}
	}
	return true
}

// Equal reports whether t and o are equal trees.
func (t *Tree[T]) Equal(o *Tree[T]) bool {
	return t.node().Equal(o.node())
}

// EqualFunc is like Equal but compares payloads with eq.
func (t *Tree[T]) EqualFunc(o *Tree[T], eq func(a, b T) bool) bool {
	return t.node().EqualFunc(o.node(), eq)
}

// Equal reports whether f and o hold equal trees in the same order.
func (f *Forest[T]) Equal(o *Forest[T]) bool {
	return f.EqualFunc(o, equal[T])
}

// EqualFunc is like Equal but compares payloads with eq.
func (f *Forest[T]) EqualFunc(o *Forest[T], eq func(a, b T) bool) bool {
	return f.host.size == o.host.size && equalRings(f.Iter(), o.Iter(), eq)
}

// CompareFunc orders the subtrees rooted at a and b: payloads first, then
// children lexicographically, a missing child ordering before a present one.
func CompareFunc[T any](a, b *Node[T], cmp func(x, y T) int) int {
	if c := cmp(a.Data, b.Data); c != 0 {
		return c
	}
	return compareRings(a.Iter(), b.Iter(), cmp)
}

// Compare is CompareFunc for ordered payloads.
func Compare[T cmp.Ordered](a, b *Node[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareForests orders two forests lexicographically by their trees.
func CompareForests[T any](a, b *Forest[T], cmp func(x, y T) int) int {
	return compareRings(a.Iter(), b.Iter(), cmp)
}

func compareRings[T any](a, b Iter[T], cmp func(x, y T) int) int {
	for {
		x, y := a.Next(), b.Next()
		switch {
		case x == nil && y == nil:
			return 0
		case x == nil:
			return -1
		case y == nil:
			return +1
		}
		if c := CompareFunc(x, y, cmp); c != 0 {
			return c
		}
	}
}
