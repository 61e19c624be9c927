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
	"bytes"
	"context"
	"strings"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

func init() {
	Register(&YAMLParser{})
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

// 📝 Parse parses a preset from YAML
func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Preset, error) {
	// Define YAML schema
	type yamlPreset struct {
		Target    *string `yaml:"target,omitempty"`
		Swap      *string `yaml:"swap,omitempty"`
		Prepend   *string `yaml:"prepend,omitempty"`
		Append    *string `yaml:"append,omitempty"`
		Recursive *bool   `yaml:"recursive,omitempty"`
		Output    *string `yaml:"output,omitempty"`
	}

	// Parse YAML
	var yamlCfg yamlPreset
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&yamlCfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	return &Preset{
		Target:    yamlCfg.Target,
		Swap:      yamlCfg.Swap,
		Prepend:   yamlCfg.Prepend,
		Append:    yamlCfg.Append,
		Recursive: yamlCfg.Recursive,
		Output:    yamlCfg.Output,
	}, nil
}
