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
	"strconv"
	"strings"
	"unicode"

	"github.com/google/forest"
)

// SyntaxError reports a malformed notation string.
type SyntaxError struct {
	Offset int // byte offset of the offending input
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("codec: notation: %s at offset %d", e.Msg, e.Offset)
}

// AsString is the payload converter for string trees.
func AsString(s string) (string, error) {
	return s, nil
}

// AsInt is the payload converter for int trees.
func AsInt(s string) (int, error) {
	return strconv.Atoi(s)
}

// FormatTree prints t in the notation read by ParseTree. It matches
// forest.Tree.String except that atoms which would not read back as one
// atom, such as "hello world" or "x(y)", are printed as Go quoted strings.
func FormatTree[T any](t *forest.Tree[T]) string {
	var sb strings.Builder
	formatNode(&sb, t.Root())
	return sb.String()
}

// FormatForest prints f in the notation read by ParseForest.
func FormatForest[T any](f *forest.Forest[T]) string {
	if f.IsEmpty() {
		return "()"
	}
	var sb strings.Builder
	sb.WriteString("( ")
	for it := f.Iter(); it.Len() > 0; {
		formatNode(&sb, it.Next())
		sb.WriteByte(' ')
	}
	sb.WriteByte(')')
	return sb.String()
}

func formatNode[T any](sb *strings.Builder, n *forest.Node[T]) {
	sb.WriteString(quoteAtom(fmt.Sprint(n.Data)))
	if n.IsLeaf() {
		return
	}
	sb.WriteString("( ")
	for it := n.Iter(); it.Len() > 0; {
		formatNode(sb, it.Next())
		sb.WriteByte(' ')
	}
	sb.WriteByte(')')
}

// quoteAtom quotes s unless it reads back as a bare atom.
func quoteAtom(s string) string {
	if s == "" || s[0] == '"' || strings.IndexFunc(s, isDelim) >= 0 {
		return strconv.Quote(s)
	}
	return s
}

func isDelim(r rune) bool {
	return unicode.IsSpace(r) || r == '(' || r == ')'
}

// ParseTree parses the notation printed by FormatTree, such as
// "0( 1( 2 3 ) 4( 5 6 ) )". Spaces around parentheses are optional. An atom
// is either a run of characters other than space and parentheses, or a Go
// double-quoted string. conv turns every atom into a payload.
func ParseTree[T any](s string, conv func(string) (T, error)) (*forest.Tree[T], error) {
	p := &parser[T]{src: s, conv: conv}
	t, err := p.tree()
	if err != nil {
		return nil, err
	}
	if err := p.end(); err != nil {
		return nil, err
	}
	return t, nil
}

// ParseForest parses the notation printed by FormatForest, such as
// "( a b( c ) )" or "()".
func ParseForest[T any](s string, conv func(string) (T, error)) (*forest.Forest[T], error) {
	p := &parser[T]{src: s, conv: conv}
	p.skip()
	if !p.eat('(') {
		return nil, p.errorf("expected '('")
	}
	f := forest.NewForest[T]()
	for {
		p.skip()
		if p.eat(')') {
			break
		}
		if p.pos == len(p.src) {
			return nil, p.errorf("unclosed forest")
		}
		t, err := p.tree()
		if err != nil {
			return nil, err
		}
		f.PushBack(t)
	}
	if err := p.end(); err != nil {
		return nil, err
	}
	return f, nil
}

type parser[T any] struct {
	src  string
	pos  int
	conv func(string) (T, error)
}

func (p *parser[T]) errorf(format string, args ...any) error {
	return &SyntaxError{Offset: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser[T]) skip() {
	for p.pos < len(p.src) && unicode.IsSpace(rune(p.src[p.pos])) {
		p.pos++
	}
}

func (p *parser[T]) eat(c byte) bool {
	if p.pos < len(p.src) && p.src[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

func (p *parser[T]) end() error {
	p.skip()
	if p.pos != len(p.src) {
		return p.errorf("unexpected %q", p.src[p.pos:])
	}
	return nil
}

func (p *parser[T]) tree() (*forest.Tree[T], error) {
	data, err := p.atom()
	if err != nil {
		return nil, err
	}
	t := forest.NewTree(data)
	p.skip()
	if !p.eat('(') {
		return t, nil
	}
	for {
		p.skip()
		if p.eat(')') {
			return t, nil
		}
		if p.pos == len(p.src) {
			return nil, p.errorf("unclosed children of %v", t.Data())
		}
		c, err := p.tree()
		if err != nil {
			return nil, err
		}
		t.PushBack(c)
	}
}

func (p *parser[T]) atom() (T, error) {
	var zero T
	p.skip()
	start := p.pos
	if p.pos == len(p.src) {
		return zero, p.errorf("expected atom, found end of input")
	}
	var text string
	switch c := p.src[p.pos]; {
	case c == '(' || c == ')':
		return zero, p.errorf("expected atom, found %q", c)
	case c == '"':
		end := p.pos + 1
		for end < len(p.src) && p.src[end] != '"' {
			if p.src[end] == '\\' {
				end++
			}
			end++
		}
		if end >= len(p.src) {
			return zero, p.errorf("unterminated string")
		}
		s, err := strconv.Unquote(p.src[p.pos : end+1])
		if err != nil {
			return zero, p.errorf("bad string: %v", err)
		}
		text = s
		p.pos = end + 1
	default:
		end := strings.IndexFunc(p.src[p.pos:], isDelim)
		if end < 0 {
			end = len(p.src) - p.pos
		}
		text = p.src[p.pos : p.pos+end]
		p.pos += end
	}
	data, err := p.conv(text)
	if err != nil {
		return zero, &SyntaxError{Offset: start, Msg: fmt.Sprintf("atom %q: %v", text, err)}
	}
	return data, nil
}
