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

package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, Options{Level: "debug", Format: "json"})
	require.NoError(t, err)
	log.Debug().Int("nodes", 7).Msg("loaded")
	assert.Contains(t, buf.String(), `"level":"debug"`)
	assert.Contains(t, buf.String(), `"nodes":7`)
	assert.Contains(t, buf.String(), `"message":"loaded"`)
}

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, Options{Level: "WARN"})
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, log.GetLevel())
	log.Info().Msg("hidden")
	assert.Empty(t, buf.String())
	log.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")

	log, err = New(&buf, Options{})
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
}

func TestAutoFormatIsJSONOffTerminal(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, Options{Format: "auto", Color: true})
	require.NoError(t, err)
	log.Info().Msg("hello")
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("{")), buf.String())
	assert.False(t, IsTerminal(&buf))
}

func TestConsole(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, Options{Format: "console", Color: true})
	require.NoError(t, err)
	log.Info().Str("op", "push-back").Msg("applied")
	out := buf.String()
	assert.Contains(t, out, "INF")
	assert.Contains(t, out, "applied")
	assert.Contains(t, out, "op=")
	assert.NotContains(t, out, "{")
}

func TestStyledConsoleWriter(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(ConsoleWriter(&buf, true))
	log.Error().Msg("boom")
	assert.Contains(t, buf.String(), "ERR")
	assert.Contains(t, buf.String(), "boom")

	assert.Equal(t, colorTeal, levelColor("deb"))
	assert.Equal(t, colorRed, levelColor("fat"))
	assert.Equal(t, colorGray, levelColor("???"))
}

func TestNewErrors(t *testing.T) {
	_, err := New(&bytes.Buffer{}, Options{Level: "loud"})
	assert.Error(t, err)
	_, err = New(&bytes.Buffer{}, Options{Format: "xml"})
	assert.Error(t, err)
}
