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

// Package config loads the settings of forestctl: defaults, then an optional
// YAML or JSON file, then FORESTCTL_* environment variables.
package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "FORESTCTL_"

// Config holds the forestctl settings.
type Config struct {
	LogLevel   string `mapstructure:"log_level"`  // trace, debug, info, warn, error
	LogFormat  string `mapstructure:"log_format"` // auto, console or json
	Input      string `mapstructure:"input"`      // notation, json, yaml or cbor
	Enumerator string `mapstructure:"enumerator"` // default or rounded
	Color      bool   `mapstructure:"color"`
}

var (
	logFormats  = []string{"auto", "console", "json"}
	inputs      = []string{"notation", "json", "yaml", "cbor"}
	enumerators = []string{"default", "rounded"}
)

// Default returns the settings used when nothing overrides them.
func Default() Config {
	return Config{
		LogLevel:   "warn",
		LogFormat:  "auto",
		Input:      "notation",
		Enumerator: "default",
		Color:      true,
	}
}

// Load returns the defaults overridden by the file at path and then by the
// environment. An empty path falls back to $FORESTCTL_CONFIG; if that is
// unset too, no file is read.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvPrefix + "CONFIG")
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}
	cfg.LogLevel = GetEnvStr(EnvPrefix+"LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = GetEnvStr(EnvPrefix+"LOG_FORMAT", cfg.LogFormat)
	cfg.Input = GetEnvStr(EnvPrefix+"INPUT", cfg.Input)
	cfg.Enumerator = GetEnvStr(EnvPrefix+"ENUMERATOR", cfg.Enumerator)
	cfg.Color = GetEnvBool(EnvPrefix+"COLOR", cfg.Color)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadFile decodes a YAML or JSON file over cfg. JSON is read by the YAML
// decoder as well.
func (cfg *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}

// Validate checks that every enumerated setting has a known value.
func (cfg Config) Validate() error {
	if !slices.Contains(logFormats, cfg.LogFormat) {
		return fmt.Errorf("config: unknown log format %q", cfg.LogFormat)
	}
	if !slices.Contains(inputs, cfg.Input) {
		return fmt.Errorf("config: unknown input format %q", cfg.Input)
	}
	if !slices.Contains(enumerators, cfg.Enumerator) {
		return fmt.Errorf("config: unknown enumerator %q", cfg.Enumerator)
	}
	return nil
}
