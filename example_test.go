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

package forest_test

import (
	"fmt"

	"github.com/google/forest"
)

func ExampleTree() {
	t := forest.NewTree(0)
	for _, v := range []int{1, 4} {
		c := forest.NewTree(v)
		c.PushBack(forest.NewTree(v + 1))
		c.PushBack(forest.NewTree(v + 2))
		t.PushBack(c)
	}
	fmt.Println("tree:   ", t)
	fmt.Println("size:   ", t.Size())
	kids := t.Abandon()
	fmt.Println("root:   ", t)
	fmt.Println("forest: ", kids)
	t.Adopt(kids)
	fmt.Println("adopted:", t)
	// Output:
	// tree:    0( 1( 2 3 ) 4( 5 6 ) )
	// size:    {2 7}
	// root:    0
	// forest:  ( 1( 2 3 ) 4( 5 6 ) )
	// adopted: 0( 1( 2 3 ) 4( 5 6 ) )
}

func ExampleOntoIter() {
	f := forest.NewForest[int]()
	for i := 1; i <= 6; i++ {
		f.PushBack(forest.NewTree(i))
	}
	for s := range f.OntoIter().All() {
		switch v := s.Node().Data; {
		case v%3 == 0:
			s.Depart()
		case v%2 == 0:
			s.InsertAfter(forest.NewTree(v * 10))
		}
	}
	fmt.Println(f, f.Size())
	// Output:
	// ( 1 2 20 4 40 5 ) {6 6}
}

func ExampleNode_Children() {
	t := forest.NewTree("root")
	t.PushBack(forest.NewTree("a"))
	t.PushBack(forest.NewTree("b"))
	t.PushFront(forest.NewTree("z"))
	for c := range t.Root().Children() {
		fmt.Println(c.Data, c.Parent().Data)
	}
	// Output:
	// z root
	// a root
	// b root
}
