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

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/spf13/cobra"

	"github.com/google/forest"
)

func newRenderCmd(a *app) *cobra.Command {
	var enumerator string
	cmd := &cobra.Command{
		Use:   "render [TREE]",
		Short: "Draw the document as an indented tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.load(cmd, args)
			if err != nil {
				return err
			}
			if enumerator == "" {
				enumerator = a.cfg.Enumerator
			}
			t, err := render(d, enumerator, a.cfg.Color)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&enumerator, "enumerator", "", "branch style: default or rounded")
	return cmd
}

// render converts d into a lipgloss tree.
func render(d *doc, enumerator string, color bool) (*tree.Tree, error) {
	var t *tree.Tree
	if d.tree != nil {
		t = renderNode(d.tree.Root())
	} else {
		t = tree.New()
		for _, r := range d.roots() {
			t.Child(renderChild(r))
		}
	}
	switch enumerator {
	case "", "default":
		t.Enumerator(tree.DefaultEnumerator)
	case "rounded":
		t.Enumerator(tree.RoundedEnumerator)
	default:
		return nil, fmt.Errorf("unknown enumerator %q", enumerator)
	}
	if color {
		t.EnumeratorStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#8d8d8d")).MarginRight(1)).
			RootStyle(lipgloss.NewStyle().Bold(true))
	}
	return t, nil
}

func renderNode(n *forest.Node[string]) *tree.Tree {
	t := tree.Root(n.Data)
	for c := range n.Children() {
		t.Child(renderChild(c))
	}
	return t
}

func renderChild(n *forest.Node[string]) any {
	if n.IsLeaf() {
		return n.Data
	}
	return renderNode(n)
}
