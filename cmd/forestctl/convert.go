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
	"github.com/spf13/cobra"
)

func newConvertCmd(a *app) *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:   "convert [TREE]",
		Short: "Re-encode the document in another format",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.load(cmd, args)
			if err != nil {
				return err
			}
			b, err := encode(to, d)
			if err != nil {
				return err
			}
			a.log.Debug().Str("to", to).Int("bytes", len(b)).Msg("encoded")
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
	cmd.Flags().StringVar(&to, "to", "notation", "output format: notation, json, yaml or cbor")
	return cmd
}
