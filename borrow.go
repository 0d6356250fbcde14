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

import "errors"

// Misuse of the aliasing rules is a programming error. The structure panics
// with one of these values rather than corrupting a sibling ring; callers that
// recover can match them with errors.Is.
var (
	// ErrBorrowed is raised when a ring is edited, or borrowed exclusively,
	// while another borrow of the same ring is live.
	ErrBorrowed = errors.New("forest: sibling ring is borrowed")
	// ErrModified is raised by a cursor whose ring was edited behind its back.
	ErrModified = errors.New("forest: sibling ring modified during iteration")
	// ErrMoved is raised when a tree handle is used after its root moved
	// into another structure.
	ErrMoved = errors.New("forest: use of moved tree")
	// ErrCycle is raised when a tree would become its own descendant.
	ErrCycle = errors.New("forest: tree inserted into itself")
	// ErrDeparted is raised when a Subnode is edited after Depart.
	ErrDeparted = errors.New("forest: subnode already departed")
)

// borrow tracks the live views of one sibling ring. shared counts readers,
// exclusive marks a single writer. stamp changes on every structural edit so
// that cursors can detect edits they did not make.
type borrow struct {
	shared    int32
	exclusive bool
	stamp     uint64
}

func (b *borrow) share() {
	if b.exclusive {
		panic(ErrBorrowed)
	}
	b.shared++
}

func (b *borrow) unshare() {
	b.shared--
}

func (b *borrow) lock() {
	if b.exclusive || b.shared > 0 {
		panic(ErrBorrowed)
	}
	b.exclusive = true
}

func (b *borrow) unlock() {
	b.exclusive = false
}

// touch must precede every structural edit of the ring made through the
// public API.
func (b *borrow) touch() {
	if b.exclusive || b.shared > 0 {
		panic(ErrBorrowed)
	}
	b.stamp++
}
