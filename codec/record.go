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

// Package codec converts trees and forests to and from external formats:
// nested JSON and YAML records, a CBOR encoding of breadth-first streams,
// and the parenthesised notation printed by package forest.
//
// Everything here is built on the public API of packages forest and bfs.
package codec

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/google/forest"
)

// Record is the nested form of a tree. Children are a list, not a map,
// because their order matters.
type Record[T any] struct {
	Data     T           `json:"data" yaml:"data"`
	Children []Record[T] `json:"children,omitempty" yaml:"children,omitempty"`
}

// FromNode returns the record of the subtree rooted at n.
func FromNode[T any](n *forest.Node[T]) Record[T] {
	r := Record[T]{Data: n.Data}
	if !n.IsLeaf() {
		r.Children = make([]Record[T], 0, n.Degree())
		for it := n.Iter(); it.Len() > 0; {
			r.Children = append(r.Children, FromNode(it.Next()))
		}
	}
	return r
}

// FromForest returns the records of the trees of f.
func FromForest[T any](f *forest.Forest[T]) []Record[T] {
	rs := make([]Record[T], 0, f.Degree())
	for it := f.Iter(); it.Len() > 0; {
		rs = append(rs, FromNode(it.Next()))
	}
	return rs
}

// FromTree returns the record of t.
func FromTree[T any](t *forest.Tree[T]) Record[T] {
	return FromNode(t.Root())
}

// ToTree builds a new tree from r.
func ToTree[T any](r Record[T]) *forest.Tree[T] {
	t := forest.NewTree(r.Data)
	for _, c := range r.Children {
		t.PushBack(ToTree(c))
	}
	return t
}

// ToForest builds a new forest from rs.
func ToForest[T any](rs []Record[T]) *forest.Forest[T] {
	f := forest.NewForest[T]()
	for _, r := range rs {
		f.PushBack(ToTree(r))
	}
	return f
}

// MarshalJSON encodes t as a nested JSON record.
func MarshalJSON[T any](t *forest.Tree[T]) ([]byte, error) {
	return json.Marshal(FromTree(t))
}

// UnmarshalJSON decodes a tree encoded by MarshalJSON.
func UnmarshalJSON[T any](data []byte) (*forest.Tree[T], error) {
	var r Record[T]
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("codec: decoding JSON tree: %w", err)
	}
	return ToTree(r), nil
}

// MarshalForestJSON encodes f as a JSON array of records.
func MarshalForestJSON[T any](f *forest.Forest[T]) ([]byte, error) {
	return json.Marshal(FromForest(f))
}

// UnmarshalForestJSON decodes a forest encoded by MarshalForestJSON.
func UnmarshalForestJSON[T any](data []byte) (*forest.Forest[T], error) {
	var rs []Record[T]
	if err := json.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("codec: decoding JSON forest: %w", err)
	}
	return ToForest(rs), nil
}

// MarshalYAML encodes t as a nested YAML record.
func MarshalYAML[T any](t *forest.Tree[T]) ([]byte, error) {
	return yaml.Marshal(FromTree(t))
}

// UnmarshalYAML decodes a tree encoded by MarshalYAML.
func UnmarshalYAML[T any](data []byte) (*forest.Tree[T], error) {
	var r Record[T]
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("codec: decoding YAML tree: %w", err)
	}
	return ToTree(r), nil
}

// MarshalForestYAML encodes f as a YAML sequence of records.
func MarshalForestYAML[T any](f *forest.Forest[T]) ([]byte, error) {
	return yaml.Marshal(FromForest(f))
}

// UnmarshalForestYAML decodes a forest encoded by MarshalForestYAML.
func UnmarshalForestYAML[T any](data []byte) (*forest.Forest[T], error) {
	var rs []Record[T]
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("codec: decoding YAML forest: %w", err)
	}
	return ToForest(rs), nil
}
