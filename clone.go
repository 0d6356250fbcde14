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

// Cloner is implemented by payloads that need a deep copy. Clone uses it
// when present and copies the payload by assignment otherwise.
type Cloner[T any] interface {
	Clone() T
}

func cloneData[T any](data T) T {
	if c, ok := any(data).(Cloner[T]); ok {
		return c.Clone()
	}
	return data
}

// Clone returns a deep copy of the subtree rooted at n as a new tree.
func (n *Node[T]) Clone() *Tree[T] {
	return &Tree[T]{root: cloneNode(n)}
}

func cloneNode[T any](n *Node[T]) *Node[T] {
	c := newNode(cloneData(n.Data))
	for it := n.Iter(); it.Len() > 0; {
		c.pushBack(cloneNode(it.Next()))
	}
	return c
}

// Clone returns a deep copy of t.
func (t *Tree[T]) Clone() *Tree[T] {
	return t.node().Clone()
}

// Clone returns a deep copy of f.
func (f *Forest[T]) Clone() *Forest[T] {
	c := NewForest[T]()
	h := c.hostNode()
	for it := f.Iter(); it.Len() > 0; {
		h.pushBack(cloneNode(it.Next()))
	}
	return c
}
