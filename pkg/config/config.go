// Copyright 2025 walteh LLC
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

package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for preset file parsers
type Parser interface {
	// 📝 Parse parses a preset from bytes
	Parse(ctx context.Context, data []byte) (*Preset, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config is the fully resolved configuration for one run
type Config struct {
	Root      string // directory to scan for .txt files
	Target    string // literal string to search for
	Swap      string // replacement string
	Prepend   string // text added at the start of each file
	Append    string // text added at the end of each file
	Recursive bool   // descend into subdirectories
	Output    string // output root for mirrored writes (empty means in-place)

	// Target and Swap may legitimately be empty strings, so presence is
	// tracked separately from the values themselves.
	HasTarget bool
	HasSwap   bool
}

// 📦 Preset holds optional defaults loaded from a .capedit.yaml/.hcl file.
// Nil fields were absent from the file.
type Preset struct {
	Target    *string
	Swap      *string
	Prepend   *string
	Append    *string
	Recursive *bool
	Output    *string
}

// 🎯 LoadPreset loads a preset from a file, picking a parser by extension
func LoadPreset(ctx context.Context, path string) (*Preset, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading preset")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading preset file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	preset, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing preset: %w", err)
	}

	return preset, nil
}

// 🔄 ApplyPreset fills any field the command line left unset from the preset.
// Values already set on the Config (flags) always win.
func (cfg *Config) ApplyPreset(p *Preset) {
	if !cfg.HasTarget && p.Target != nil {
		cfg.Target = *p.Target
		cfg.HasTarget = true
	}
	if !cfg.HasSwap && p.Swap != nil {
		cfg.Swap = *p.Swap
		cfg.HasSwap = true
	}
	if cfg.Prepend == "" && p.Prepend != nil {
		cfg.Prepend = *p.Prepend
	}
	if cfg.Append == "" && p.Append != nil {
		cfg.Append = *p.Append
	}
	if !cfg.Recursive && p.Recursive != nil {
		cfg.Recursive = *p.Recursive
	}
	if cfg.Output == "" && p.Output != nil {
		cfg.Output = *p.Output
	}
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if cfg.Root == "" {
		return errors.New("--path is required")
	}

	info, err := os.Stat(cfg.Root)
	if err != nil {
		return errors.Errorf("path %s does not exist: %w", cfg.Root, err)
	}
	if !info.IsDir() {
		return errors.Errorf("path %s is not a directory", cfg.Root)
	}

	if !cfg.HasTarget {
		return errors.New("--target is required (it may be an empty string)")
	}
	if !cfg.HasSwap {
		return errors.New("--swap is required (it may be an empty string)")
	}

	// Clean up paths
	cfg.Root = filepath.Clean(cfg.Root)
	if cfg.Output != "" {
		cfg.Output = filepath.Clean(cfg.Output)
	}

	return nil
}
