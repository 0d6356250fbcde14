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

package walk_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/forest"
	"github.com/google/forest/walk"
)

func tr[T any](data T, children ...*forest.Tree[T]) *forest.Tree[T] {
	t := forest.NewTree(data)
	for _, c := range children {
		t.PushBack(c)
	}
	return t
}

func example() *forest.Tree[int] {
	return tr(0, tr(1, tr(2), tr(3)), tr(4, tr(5), tr(6)))
}

// events renders every remaining visit of w as "Kind:data@depth".
func events[T any](w *walk.Walk[T]) []string {
	var out []string
	for v := range w.Events() {
		out = append(out, fmt.Sprintf("%v:%v@%d", v.Kind, v.Node.Data, w.Depth()))
	}
	return out
}

func TestTreeEvents(t *testing.T) {
	w := walk.OfTree(example())
	assert.Equal(t, []string{
		"Begin:0@0", "Begin:1@1", "Leaf:2@2", "Leaf:3@2", "End:1@1",
		"Begin:4@1", "Leaf:5@2", "Leaf:6@2", "End:4@1", "End:0@0",
	}, events(w))
	_, ok := w.Get()
	assert.False(t, ok)
	_, ok = w.Next()
	assert.False(t, ok)

	w.Reset()
	v, ok := w.Get()
	require.True(t, ok)
	assert.Equal(t, walk.Begin, v.Kind)
	assert.Equal(t, 0, v.Node.Data)
}

func TestForestEvents(t *testing.T) {
	f := forest.NewForest[string]()
	f.PushBack(tr("a", tr("b")))
	f.PushBack(tr("c"))
	assert.Equal(t, []string{"Begin:a@0", "Leaf:b@1", "End:a@0", "Leaf:c@0"}, events(walk.OfForest(f)))

	empty := walk.OfForest(forest.NewForest[string]())
	_, ok := empty.Get()
	assert.False(t, ok)
	assert.Empty(t, events(empty))
}

func TestSubtree(t *testing.T) {
	ex := example()
	four := ex.Root().Back()
	assert.Equal(t, []string{"Begin:4@0", "Leaf:5@1", "Leaf:6@1", "End:4@0"}, events(walk.OfNode(four)))
	assert.Equal(t, []string{"Leaf:5@0"}, events(walk.OfNode(four.Front())))
}

func TestOrders(t *testing.T) {
	ex := example()
	data := func(seq func(func(*forest.Node[int]) bool)) (out []int) {
		for n := range seq {
			out = append(out, n.Data)
		}
		return
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, data(walk.PreOrder(ex.Root())))
	assert.Equal(t, []int{2, 3, 1, 5, 6, 4, 0}, data(walk.PostOrder(ex.Root())))

	var firstThree []int
	for n := range walk.PreOrder(ex.Root()) {
		firstThree = append(firstThree, n.Data)
		if len(firstThree) == 3 {
			break
		}
	}
	assert.Equal(t, []int{0, 1, 2}, firstThree)
}

func TestManualMoves(t *testing.T) {
	w := walk.OfTree(example())

	v, ok := w.ToChild(1)
	require.True(t, ok)
	assert.Equal(t, walk.Visit[int]{Kind: walk.Begin, Node: v.Node}, v)
	assert.Equal(t, 4, v.Node.Data)
	assert.Equal(t, 1, w.Depth())

	_, ok = w.ToChild(5)
	assert.False(t, ok)
	_, ok = w.ToSib(1)
	assert.False(t, ok)

	v, ok = w.ToChild(0)
	require.True(t, ok)
	assert.Equal(t, walk.Leaf, v.Kind)
	assert.Equal(t, 5, v.Node.Data)
	_, ok = w.ToChild(0)
	assert.False(t, ok, "leaves have no children")

	v, ok = w.ToSib(1)
	require.True(t, ok)
	assert.Equal(t, 6, v.Node.Data)
	assert.False(t, w.Revisit(), "only End visits can be revisited")

	v, ok = w.ToParent()
	require.True(t, ok)
	assert.Equal(t, walk.End, v.Kind)
	assert.Equal(t, 4, v.Node.Data)
	assert.Equal(t, 1, w.Depth())

	v, ok = w.ToParent()
	require.True(t, ok)
	assert.Equal(t, 0, v.Node.Data)
	_, ok = w.ToParent()
	assert.False(t, ok)

	require.True(t, w.Revisit())
	v, _ = w.Get()
	assert.Equal(t, walk.Begin, v.Kind)
	_, ok = w.ToSib(1)
	assert.False(t, ok, "the root of a walk has no siblings")
	v, ok = w.ToSib(0)
	require.True(t, ok)
	assert.Equal(t, 0, v.Node.Data)
	_, ok = w.ToSib(-1)
	assert.False(t, ok)

	// A revisited node is walked again.
	w.ToChild(0)
	w.Forward()
	w.Forward()
	w.Forward()
	v, _ = w.Get()
	require.Equal(t, walk.End, v.Kind)
	require.True(t, w.Revisit())
	got := events(w)
	assert.Equal(t, "Begin:1@1", got[0])
	assert.Equal(t, "End:0@0", got[len(got)-1])
	assert.Len(t, got, 9)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Begin", walk.Begin.String())
	assert.Equal(t, "End", walk.End.String())
	assert.Equal(t, "Leaf", walk.Leaf.String())
	assert.Equal(t, "Kind(?)", walk.Kind(9).String())
}
