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
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/google/forest"
	"github.com/google/forest/bfs"
	"github.com/google/forest/walk"
)

func newDFSCmd(a *app) *cobra.Command {
	var events, post bool
	cmd := &cobra.Command{
		Use:   "dfs [TREE]",
		Short: "Print the nodes in depth-first order",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.load(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if events {
				w := d.walk()
				for v := range w.Events() {
					fmt.Fprintf(out, "%s%s %s\n", strings.Repeat("  ", w.Depth()), v.Kind, v.Node.Data)
				}
				return nil
			}
			order := walk.PreOrder[string]
			if post {
				order = walk.PostOrder[string]
			}
			var data []string
			for _, r := range d.roots() {
				for n := range order(r) {
					data = append(data, n.Data)
				}
			}
			fmt.Fprintln(out, strings.Join(data, " "))
			return nil
		},
	}
	cmd.Flags().BoolVar(&events, "events", false, "print Begin, End and Leaf events")
	cmd.Flags().BoolVar(&post, "post", false, "print children before their parent")
	return cmd
}

func newBFSCmd(a *app) *cobra.Command {
	var sizes bool
	cmd := &cobra.Command{
		Use:   "bfs [TREE]",
		Short: "Print the nodes in breadth-first order",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.load(cmd, args)
			if err != nil {
				return err
			}
			var s bfs.Stream[string]
			if d.tree != nil {
				s = bfs.OfTree(d.tree)
			} else {
				s = bfs.OfForest(d.forest)
			}
			out := cmd.OutOrStdout()
			if sizes {
				for v := range s.Visits {
					fmt.Fprintf(out, "%s\t%d\t%d\n", v.Data, v.Size.Degree, v.Size.NodeCount)
				}
				return nil
			}
			var data []string
			for v := range s.Visits {
				data = append(data, v.Data)
			}
			fmt.Fprintln(out, strings.Join(data, " "))
			return nil
		},
	}
	cmd.Flags().BoolVar(&sizes, "sizes", false, "print the degree and node count of every node")
	return cmd
}

// stats summarises the shape of a document.
type stats struct {
	forest.Size
	Height int
	Leaves int
}

func measure(d *doc) stats {
	w := d.walk()
	s := stats{Size: d.size()}
	for v := range w.Events() {
		if v.Kind != walk.Leaf {
			continue
		}
		s.Leaves++
		s.Height = max(s.Height, w.Depth()+1)
	}
	return s
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [TREE]",
		Short: "Print degree, node count, height and leaf count",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.load(cmd, args)
			if err != nil {
				return err
			}
			s := measure(d)
			fmt.Fprintf(cmd.OutOrStdout(), "degree: %d\nnodes: %d\nheight: %d\nleaves: %d\n",
				s.Degree, s.NodeCount, s.Height, s.Leaves)
			return nil
		},
	}
}
