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

// Package logging builds the zerolog loggers of forestctl.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

const (
	colorTeal   = "#3ddbd9"
	colorBlue   = "#4589ff"
	colorOrange = "#ff832b"
	colorRed    = "#da1e28"
	colorGray   = "#8d8d8d"
	colorWhite  = "#f4f4f4"
)

// Options selects the shape of a logger.
type Options struct {
	Level  string // zerolog level name, empty means info
	Format string // auto, console or json
	Color  bool   // style console output with lipgloss
}

// New returns a logger writing to w. Format "auto" picks the console writer
// when w is a terminal and JSON otherwise.
func New(w io.Writer, opts Options) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if opts.Level != "" {
		l, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("logging: %w", err)
		}
		level = l
	}
	switch opts.Format {
	case "", "auto":
		if IsTerminal(w) {
			w = ConsoleWriter(w, opts.Color)
		}
	case "console":
		w = ConsoleWriter(w, opts.Color && IsTerminal(w))
	case "json":
	default:
		return zerolog.Nop(), fmt.Errorf("logging: unknown format %q", opts.Format)
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ConsoleWriter returns a human-readable writer. With color set, levels are
// rendered as lipgloss badges.
func ConsoleWriter(w io.Writer, color bool) zerolog.ConsoleWriter {
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05", NoColor: !color}
	if !color {
		return cw
	}
	cw.FormatLevel = func(i any) string {
		lvl := strings.ToLower(fmt.Sprint(i))
		if len(lvl) > 3 {
			lvl = lvl[:3]
		}
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color(levelColor(lvl))).
			Padding(0, 1).
			Render(strings.ToUpper(lvl))
	}
	cw.FormatTimestamp = func(i any) string {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(colorGray)).Render(fmt.Sprint(i))
	}
	cw.FormatMessage = func(i any) string {
		if i == nil {
			return ""
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(colorWhite)).Render(fmt.Sprint(i))
	}
	return cw
}

func levelColor(lvl string) string {
	switch lvl {
	case "tra", "deb":
		return colorTeal
	case "inf":
		return colorBlue
	case "war":
		return colorOrange
	case "err", "fat", "pan":
		return colorRed
	}
	return colorGray
}
