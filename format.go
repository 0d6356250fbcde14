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
	"fmt"
	"io"
	"strings"
)

// String formats the subtree rooted at n: a leaf prints as its payload, any
// other node as "data( child child )".
func (n *Node[T]) String() string {
	var sb strings.Builder
	n.format(&sb)
	return sb.String()
}

func (n *Node[T]) format(sb *strings.Builder) {
	fmt.Fprint(sb, n.Data)
	if n.child == nil {
		return
	}
	sb.WriteString("( ")
	for it := n.Iter(); it.Len() > 0; {
		it.Next().format(sb)
		sb.WriteByte(' ')
	}
	sb.WriteByte(')')
}

// String formats t like Node.String.
func (t *Tree[T]) String() string {
	return t.node().String()
}

// String formats f as "( tree tree )", or "()" when empty.
func (f *Forest[T]) String() string {
	if f.IsEmpty() {
		return "()"
	}
	var sb strings.Builder
	sb.WriteString("( ")
	for it := f.Iter(); it.Len() > 0; {
		it.Next().format(&sb)
		sb.WriteByte(' ')
	}
	sb.WriteByte(')')
	return sb.String()
}

// print is used for testing/debugging purposes.
func (n *Node[T]) print(w io.Writer, level int) {
	fmt.Fprintf(w, "%sNODE:%v %+v\n", strings.Repeat("  ", level), n.Data, n.size)
	for it := n.Iter(); it.Len() > 0; {
		it.Next().print(w, level+1)
	}
}
