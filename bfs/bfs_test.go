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

package bfs_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/forest"
	"github.com/google/forest/bfs"
)

func tr(data int, children ...*forest.Tree[int]) *forest.Tree[int] {
	t := forest.NewTree(data)
	for _, c := range children {
		t.PushBack(c)
	}
	return t
}

func example() *forest.Tree[int] {
	return tr(0, tr(1, tr(2), tr(3)), tr(4, tr(5), tr(6)))
}

func data(vs []bfs.Visit[int]) (out []int) {
	for _, v := range vs {
		out = append(out, v.Data)
	}
	return
}

func TestOfTree(t *testing.T) {
	s := bfs.OfTree(example())
	assert.Equal(t, forest.Size{Degree: 2, NodeCount: 7}, s.Size)
	vs := bfs.Collect(s)
	assert.Equal(t, []int{0, 1, 4, 2, 3, 5, 6}, data(vs))
	assert.Equal(t, forest.Size{Degree: 2, NodeCount: 3}, vs[1].Size)
	assert.Equal(t, forest.Size{Degree: 0, NodeCount: 1}, vs[6].Size)

	// Streams can be replayed and stopped early.
	var first []int
	for v := range s.Visits {
		if len(first) == 3 {
			break
		}
		first = append(first, v.Data)
	}
	assert.Equal(t, []int{0, 1, 4}, first)
}

func TestOfForest(t *testing.T) {
	f := forest.NewForest[int]()
	f.PushBack(tr(1, tr(3, tr(5))))
	f.PushBack(tr(2, tr(4)))
	s := bfs.OfForest(f)
	assert.Equal(t, forest.Size{Degree: 2, NodeCount: 5}, s.Size)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, data(bfs.Collect(s)))

	assert.Empty(t, bfs.Collect(bfs.OfForest(forest.NewForest[int]())))
}

func TestBuildTreeRoundTrip(t *testing.T) {
	for _, src := range []*forest.Tree[int]{
		example(),
		tr(7),
		tr(0, tr(1, tr(2, tr(3, tr(4))))),
		tr(0, tr(1), tr(2), tr(3), tr(4, tr(5), tr(6, tr(7)))),
	} {
		got, err := bfs.BuildTree(bfs.OfTree(src))
		require.NoError(t, err)
		assert.True(t, src.Equal(got), "want %v, got %v", src, got)
	}
}

func TestBuildForestRoundTrip(t *testing.T) {
	f := forest.NewForest[int]()
	f.PushBack(example())
	f.PushBack(tr(10))
	f.PushBack(tr(20, tr(21)))
	got, err := bfs.BuildForest(bfs.OfForest(f))
	require.NoError(t, err)
	assert.True(t, f.Equal(got), "want %v, got %v", f, got)

	empty, err := bfs.BuildForest(bfs.OfForest(forest.NewForest[int]()))
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
}

func visit(d, degree int) bfs.Visit[int] {
	return bfs.Visit[int]{Data: d, Size: forest.Size{Degree: degree}}
}

func TestBuildErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		s    bfs.Stream[int]
		err  error
	}{
		{"empty", bfs.FromVisits[int](forest.Size{}, nil), bfs.ErrEmpty},
		{"truncated", bfs.FromVisits(forest.Size{}, []bfs.Visit[int]{visit(0, 2), visit(1, 0)}), bfs.ErrTruncated},
		{"trailing", bfs.FromVisits(forest.Size{}, []bfs.Visit[int]{visit(0, 1), visit(1, 0), visit(2, 0)}), bfs.ErrTrailing},
		{"size", bfs.FromVisits(forest.Size{Degree: 1, NodeCount: 3}, []bfs.Visit[int]{visit(0, 1), visit(1, 0)}), bfs.ErrSize},
		{"negative header", bfs.FromVisits(forest.Size{Degree: -1}, []bfs.Visit[int]{visit(0, 0)}), bfs.ErrMalformed},
		{"negative degree", bfs.FromVisits(forest.Size{}, []bfs.Visit[int]{visit(0, 1), visit(1, -3)}), bfs.ErrMalformed},
		{"huge degree", bfs.FromVisits(forest.Size{}, []bfs.Visit[int]{visit(0, 1<<60)}), bfs.ErrTruncated},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := bfs.BuildTree(tc.s)
			assert.ErrorIs(t, err, tc.err)
		})
	}

	_, err := bfs.BuildForest(bfs.FromVisits(forest.Size{Degree: 3}, []bfs.Visit[int]{visit(1, 0)}))
	assert.ErrorIs(t, err, bfs.ErrTruncated)
	_, err = bfs.BuildForest(bfs.FromVisits(forest.Size{Degree: 1, NodeCount: 5}, []bfs.Visit[int]{visit(1, 0)}))
	assert.ErrorIs(t, err, bfs.ErrSize)
	_, err = bfs.BuildForest(bfs.FromVisits(forest.Size{Degree: -1}, []bfs.Visit[int]{visit(1, 0)}))
	assert.ErrorIs(t, err, bfs.ErrMalformed)
	_, err = bfs.BuildForest(bfs.FromVisits(forest.Size{Degree: 1 << 60}, []bfs.Visit[int]{visit(1, 0)}))
	assert.ErrorIs(t, err, bfs.ErrTruncated)
	_, err = bfs.BuildForest(bfs.FromVisits(forest.Size{Degree: 1, NodeCount: -2}, []bfs.Visit[int]{visit(1, 0)}))
	assert.ErrorIs(t, err, bfs.ErrMalformed)
}

func TestBuilderFreeList(t *testing.T) {
	fl := forest.NewFreeList[int](forest.DefaultFreeListSize)
	b := bfs.Builder[int]{Free: fl}

	got, err := b.Tree(bfs.OfTree(example()))
	require.NoError(t, err)
	assert.True(t, got.Equal(example()))
	assert.Equal(t, 0, fl.Len())

	fl.Release(got)
	assert.Equal(t, 7, fl.Len())
	again, err := b.Tree(bfs.OfTree(example()))
	require.NoError(t, err)
	assert.True(t, again.Equal(example()))
	assert.Equal(t, 0, fl.Len(), "rebuild takes its nodes from the free list")

	f := forest.NewForest[int]()
	f.PushBack(tr(1, tr(2)))
	f.PushBack(tr(3))
	gf, err := b.Forest(bfs.OfForest(f))
	require.NoError(t, err)
	assert.True(t, gf.Equal(f))

	// A failed rebuild gives back the nodes it took.
	_, err = b.Tree(bfs.FromVisits(forest.Size{}, []bfs.Visit[int]{visit(0, 1), visit(1, 1)}))
	assert.ErrorIs(t, err, bfs.ErrTruncated)
	assert.Equal(t, 2, fl.Len())
	_, err = b.Forest(bfs.FromVisits(forest.Size{Degree: 2}, []bfs.Visit[int]{visit(5, 0), visit(6, 1)}))
	assert.ErrorIs(t, err, bfs.ErrTruncated)
	assert.Equal(t, 2, fl.Len())
}

func ExampleOfTree() {
	for v := range bfs.OfTree(example()).Visits {
		fmt.Print(v.Data, " ")
	}
	fmt.Println()
	// Output:
	// 0 1 4 2 3 5 6
}

func BenchmarkRoundTrip(b *testing.B) {
	t := forest.NewTree(0)
	for i := 0; i < 32; i++ {
		c := forest.NewTree(i)
		for j := 0; j < 32; j++ {
			c.PushBack(forest.NewTree(j))
		}
		t.PushBack(c)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bfs.BuildTree(bfs.OfTree(t)); err != nil {
			b.Fatal(err)
		}
	}
}
