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
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/google/forest"
	"github.com/google/forest/bfs"
	"github.com/google/forest/internal/config"
	"github.com/google/forest/internal/logging"
)

// app carries the state shared by all commands.
type app struct {
	cfgPath  string
	logLevel string
	input    string
	file     string

	cfg  config.Config
	log  zerolog.Logger
	free *forest.FreeList[string] // nodes of dropped trees, reused by copies and rebuilds
}

func newRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop(), free: forest.NewFreeList[string](forest.DefaultFreeListSize)}
	root := &cobra.Command{
		Use:           "forestctl",
		Short:         "Inspect and edit ordered trees and forests",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "config file (YAML or JSON), defaults to $FORESTCTL_CONFIG")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	pf.StringVar(&a.input, "in", "", "input format: notation, json, yaml or cbor")
	pf.StringVarP(&a.file, "file", "f", "", "read the input from a file, - for stdin")

	root.AddCommand(
		newDFSCmd(a),
		newBFSCmd(a),
		newStatsCmd(a),
		newRenderCmd(a),
		newConvertCmd(a),
		newScriptCmd(a),
	)
	return root
}

// setup loads the configuration, lets flags override it and builds the
// logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if a.input != "" {
		cfg.Input = a.input
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.log, err = logging.New(cmd.ErrOrStderr(), logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Color:  cfg.Color,
	})
	if err != nil {
		return err
	}
	a.log.Debug().Str("input", cfg.Input).Str("cmd", cmd.Name()).Msg("configured")
	return nil
}

// read returns the raw input: the file named by --file, the arguments
// joined by spaces, or stdin.
func (a *app) read(cmd *cobra.Command, args []string) ([]byte, error) {
	switch {
	case a.file == "-" || (a.file == "" && len(args) == 0):
		return io.ReadAll(cmd.InOrStdin())
	case a.file != "":
		return os.ReadFile(a.file)
	}
	return []byte(strings.Join(args, " ")), nil
}

// builder rebuilds streams with nodes from the free list.
func (a *app) builder() bfs.Builder[string] {
	return bfs.Builder[string]{Free: a.free}
}

// load reads and decodes the input document.
func (a *app) load(cmd *cobra.Command, args []string) (*doc, error) {
	data, err := a.read(cmd, args)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	d, err := decode(a.cfg.Input, data, a.builder())
	if err != nil {
		return nil, err
	}
	a.log.Debug().Int("degree", d.size().Degree).Int("nodes", d.size().NodeCount).Msg("loaded")
	return d, nil
}
