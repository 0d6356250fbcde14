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
	"bufio"
	"bytes"
	"fmt"
	"os"
	"slices"

	"github.com/google/shlex"
	"github.com/spf13/cobra"

	"github.com/google/forest"
	"github.com/google/forest/bfs"
	"github.com/google/forest/codec"
)

func newScriptCmd(a *app) *cobra.Command {
	var (
		stmts  []string
		script string
	)
	cmd := &cobra.Command{
		Use:   "script [TREE]",
		Short: "Apply structural edits and print the result",
		Long: `Apply structural edits to the document and print the result.

Statements are given with -e or one per line in a --script file. Each names
an operation and a PATH of "/"-separated child indices; the empty path "/"
is the root of a tree or the forest itself.

  push-back PATH TREE         push-front PATH TREE
  pop-back PATH               pop-front PATH
  append PATH FOREST          prepend PATH FOREST
  insert-before PATH TREE     insert-after PATH TREE
  detach PATH                 abandon PATH
  depart-if PATH VALUE...     insert-after-each PATH TREE`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if script != "" {
				lines, err := readLines(script)
				if err != nil {
					return err
				}
				stmts = append(lines, stmts...)
			}
			d, err := a.load(cmd, args)
			if err != nil {
				return err
			}
			for i, stmt := range stmts {
				if err := a.apply(d, stmt); err != nil {
					return fmt.Errorf("statement %d %q: %w", i+1, stmt, err)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), d.String())
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&stmts, "exec", "e", nil, "statement to apply, may be repeated")
	cmd.Flags().StringVar(&script, "script", "", "file with one statement per line")
	return cmd
}

func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}

// arity is the number of arguments of every operation, negative for a
// minimum.
var arity = map[string]int{
	"push-back":         2,
	"push-front":        2,
	"pop-back":          1,
	"pop-front":         1,
	"append":            2,
	"prepend":           2,
	"insert-before":     2,
	"insert-after":      2,
	"insert-after-each": 2,
	"detach":            1,
	"abandon":           1,
	"depart-if":         -2,
}

// apply runs one statement against d.
func (a *app) apply(d *doc, stmt string) error {
	words, err := shlex.Split(stmt)
	if err != nil {
		return err
	}
	if len(words) == 0 {
		return nil
	}
	op, args := words[0], words[1:]
	want, known := arity[op]
	switch {
	case !known:
		return fmt.Errorf("unknown operation %q", op)
	case want < 0 && len(args) < -want:
		return fmt.Errorf("%s wants at least %d arguments, got %d", op, -want, len(args))
	case want > 0 && len(args) != want:
		return fmt.Errorf("%s wants %d arguments, got %d", op, want, len(args))
	}
	o, n, err := d.resolve(args[0])
	if err != nil {
		return err
	}
	log := a.log.With().Str("op", op).Str("path", args[0]).Logger()

	switch op {
	case "push-back", "push-front", "insert-before", "insert-after", "insert-after-each":
		t, err := codec.ParseTree(args[1], codec.AsString)
		if err != nil {
			return err
		}
		switch op {
		case "push-back":
			o.PushBack(t)
		case "push-front":
			o.PushFront(t)
		case "insert-before", "insert-after":
			if n == nil {
				return fmt.Errorf("%s needs a node, not the forest", op)
			}
			var ok bool
			if op == "insert-before" {
				ok = n.InsertPrevSib(t)
			} else {
				ok = n.InsertNextSib(t)
			}
			if !ok {
				return fmt.Errorf("%s: the root of a tree has no siblings", op)
			}
		case "insert-after-each":
			inserted := 0
			for sub := range o.OntoIter().All() {
				c, err := a.builder().Tree(bfs.OfTree(t))
				if err != nil {
					return err
				}
				sub.InsertAfter(c)
				inserted++
			}
			a.free.Release(t)
			log.Debug().Int("inserted", inserted).Msg("applied")
			return nil
		}
	case "append", "prepend":
		f, err := codec.ParseForest(args[1], codec.AsString)
		if err != nil {
			return err
		}
		if op == "append" {
			o.Append(f)
		} else {
			o.Prepend(f)
		}
	case "pop-back", "pop-front":
		var t *forest.Tree[string]
		if op == "pop-back" {
			t = o.PopBack()
		} else {
			t = o.PopFront()
		}
		if t == nil {
			return fmt.Errorf("%s: nothing to pop", op)
		}
		log.Debug().Stringer("tree", t).Msg("popped")
		a.free.Release(t)
	case "detach":
		var t *forest.Tree[string]
		if n != nil {
			t = n.Detach()
		}
		if t == nil {
			return fmt.Errorf("%s: the root of a tree cannot be detached", op)
		}
		log.Debug().Stringer("tree", t).Msg("detached")
		a.free.Release(t)
	case "abandon":
		if n == nil {
			return fmt.Errorf("%s needs a node, not the forest", op)
		}
		f := n.Abandon()
		log.Debug().Int("trees", f.Degree()).Int("nodes", f.NodeCount()).Msg("abandoned")
		a.free.ReleaseForest(f)
	case "depart-if":
		values := args[1:]
		departed := 0
		for sub := range o.OntoIter().All() {
			if slices.Contains(values, sub.Node().Data) {
				a.free.Release(sub.Depart())
				departed++
			}
		}
		log.Debug().Int("departed", departed).Msg("applied")
		return nil
	}
	log.Debug().Msg("applied")
	return nil
}
