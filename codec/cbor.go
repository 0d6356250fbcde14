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

package codec

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/google/forest"
	"github.com/google/forest/bfs"
)

// cborVisit is one breadth-first visit on the wire.
type cborVisit[T any] struct {
	Data      T   `cbor:"1,keyasint"`
	Degree    int `cbor:"2,keyasint"`
	NodeCount int `cbor:"3,keyasint"`
}

// cborStream is a breadth-first stream on the wire.
type cborStream[T any] struct {
	Degree    int            `cbor:"1,keyasint"`
	NodeCount int            `cbor:"2,keyasint"`
	Visits    []cborVisit[T] `cbor:"3,keyasint"`
}

var (
	encMode = mustEncMode()
	decMode = mustDecMode()
)

func mustEncMode() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}

func mustDecMode() cbor.DecMode {
	dm, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		panic(err)
	}
	return dm
}

// EncodeCBOR encodes a breadth-first stream with deterministic CBOR.
func EncodeCBOR[T any](s bfs.Stream[T]) ([]byte, error) {
	w := cborStream[T]{Degree: s.Size.Degree, NodeCount: s.Size.NodeCount}
	for v := range s.Visits {
		w.Visits = append(w.Visits, cborVisit[T]{Data: v.Data, Degree: v.Size.Degree, NodeCount: v.Size.NodeCount})
	}
	return encMode.Marshal(w)
}

// DecodeCBOR decodes a stream encoded by EncodeCBOR.
func DecodeCBOR[T any](data []byte) (bfs.Stream[T], error) {
	var w cborStream[T]
	if err := decMode.Unmarshal(data, &w); err != nil {
		return bfs.Stream[T]{}, fmt.Errorf("codec: decoding CBOR stream: %w", err)
	}
	if w.Degree < 0 || w.NodeCount < 0 {
		return bfs.Stream[T]{}, fmt.Errorf("codec: decoding CBOR stream: %w: size {%d %d}", bfs.ErrMalformed, w.Degree, w.NodeCount)
	}
	vs := make([]bfs.Visit[T], len(w.Visits))
	for i, v := range w.Visits {
		if v.Degree < 0 || v.NodeCount < 0 {
			return bfs.Stream[T]{}, fmt.Errorf("codec: decoding CBOR stream: %w: visit %d has size {%d %d}", bfs.ErrMalformed, i, v.Degree, v.NodeCount)
		}
		vs[i] = bfs.Visit[T]{Data: v.Data, Size: forest.Size{Degree: v.Degree, NodeCount: v.NodeCount}}
	}
	return bfs.FromVisits(forest.Size{Degree: w.Degree, NodeCount: w.NodeCount}, vs), nil
}

// MarshalCBOR encodes t as the CBOR form of its breadth-first stream.
func MarshalCBOR[T any](t *forest.Tree[T]) ([]byte, error) {
	return EncodeCBOR(bfs.OfTree(t))
}

// UnmarshalCBOR decodes a tree encoded by MarshalCBOR.
func UnmarshalCBOR[T any](data []byte) (*forest.Tree[T], error) {
	s, err := DecodeCBOR[T](data)
	if err != nil {
		return nil, err
	}
	return bfs.BuildTree(s)
}

// MarshalForestCBOR encodes f as the CBOR form of its breadth-first stream.
func MarshalForestCBOR[T any](f *forest.Forest[T]) ([]byte, error) {
	return EncodeCBOR(bfs.OfForest(f))
}

// UnmarshalForestCBOR decodes a forest encoded by MarshalForestCBOR.
func UnmarshalForestCBOR[T any](data []byte) (*forest.Forest[T], error) {
	s, err := DecodeCBOR[T](data)
	if err != nil {
		return nil, err
	}
	return bfs.BuildForest(s)
}
