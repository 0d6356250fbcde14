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

package main

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/forest"
	"github.com/google/forest/bfs"
	"github.com/google/forest/codec"
	"github.com/google/forest/walk"
)

// doc is the document a command works on: either a single tree or a forest.
type doc struct {
	tree   *forest.Tree[string]
	forest *forest.Forest[string]
}

// owner is the ring interface shared by nodes and forests.
type owner interface {
	PushFront(t *forest.Tree[string])
	PushBack(t *forest.Tree[string])
	PopFront() *forest.Tree[string]
	PopBack() *forest.Tree[string]
	Prepend(f *forest.Forest[string])
	Append(f *forest.Forest[string])
	OntoIter() *forest.OntoIter[string]
	String() string
}

func (d *doc) size() forest.Size {
	if d.tree != nil {
		return d.tree.Size()
	}
	return d.forest.Size()
}

// String prints d in the notation decode reads back.
func (d *doc) String() string {
	if d.tree != nil {
		return codec.FormatTree(d.tree)
	}
	return codec.FormatForest(d.forest)
}

// roots returns the root of the tree or the roots of the forest.
func (d *doc) roots() []*forest.Node[string] {
	if d.tree != nil {
		return []*forest.Node[string]{d.tree.Root()}
	}
	var rs []*forest.Node[string]
	for n := range d.forest.Children() {
		rs = append(rs, n)
	}
	return rs
}

func (d *doc) walk() *walk.Walk[string] {
	if d.tree != nil {
		return walk.OfTree(d.tree)
	}
	return walk.OfForest(d.forest)
}

// resolve follows a "/"-separated list of child indices. For a forest the
// first index selects a tree and the empty path is the forest itself; for a
// tree the empty path is the root.
func (d *doc) resolve(path string) (owner, *forest.Node[string], error) {
	path = strings.Trim(path, "/")
	var n *forest.Node[string]
	if d.tree != nil {
		n = d.tree.Root()
	}
	if path == "" {
		if n == nil {
			return d.forest, nil, nil
		}
		return n, n, nil
	}
	for _, part := range strings.Split(path, "/") {
		i, err := strconv.Atoi(part)
		if err != nil {
			return nil, nil, fmt.Errorf("path %q: bad index %q", path, part)
		}
		var c *forest.Node[string]
		if n == nil {
			c = d.forest.NthTree(i)
		} else {
			c = n.NthChild(i)
		}
		if c == nil {
			return nil, nil, fmt.Errorf("path %q: index %d out of range", path, i)
		}
		n = c
	}
	return n, n, nil
}

func decode(kind string, data []byte, b bfs.Builder[string]) (*doc, error) {
	trimmed := bytes.TrimSpace(data)
	switch kind {
	case "notation":
		s := string(trimmed)
		if strings.HasPrefix(s, "(") {
			f, err := codec.ParseForest(s, codec.AsString)
			return &doc{forest: f}, err
		}
		t, err := codec.ParseTree(s, codec.AsString)
		return &doc{tree: t}, err
	case "json":
		if bytes.HasPrefix(trimmed, []byte("[")) {
			f, err := codec.UnmarshalForestJSON[string](trimmed)
			return &doc{forest: f}, err
		}
		t, err := codec.UnmarshalJSON[string](trimmed)
		return &doc{tree: t}, err
	case "yaml":
		if bytes.HasPrefix(trimmed, []byte("-")) || bytes.HasPrefix(trimmed, []byte("[")) {
			f, err := codec.UnmarshalForestYAML[string](trimmed)
			return &doc{forest: f}, err
		}
		t, err := codec.UnmarshalYAML[string](trimmed)
		return &doc{tree: t}, err
	case "cbor":
		// CBOR documents always carry a forest stream.
		s, err := codec.DecodeCBOR[string](data)
		if err != nil {
			return nil, err
		}
		f, err := b.Forest(s)
		return &doc{forest: f}, err
	}
	return nil, fmt.Errorf("unknown input format %q", kind)
}

func encode(kind string, d *doc) ([]byte, error) {
	switch kind {
	case "notation":
		return []byte(d.String() + "\n"), nil
	case "json":
		var b []byte
		var err error
		if d.tree != nil {
			b, err = codec.MarshalJSON(d.tree)
		} else {
			b, err = codec.MarshalForestJSON(d.forest)
		}
		return append(b, '\n'), err
	case "yaml":
		if d.tree != nil {
			return codec.MarshalYAML(d.tree)
		}
		return codec.MarshalForestYAML(d.forest)
	case "cbor":
		if d.tree != nil {
			f := forest.NewForest[string]()
			f.PushBack(d.tree.Clone())
			return codec.MarshalForestCBOR(f)
		}
		return codec.MarshalForestCBOR(d.forest)
	}
	return nil, fmt.Errorf("unknown output format %q", kind)
}
