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
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

// 📝 Parse parses a preset from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Preset, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "preset.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Create evaluation context
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	// Define HCL schema
	type hclPreset struct {
		Target    *string `hcl:"target,optional"`
		Swap      *string `hcl:"swap,optional"`
		Prepend   *string `hcl:"prepend,optional"`
		Append    *string `hcl:"append,optional"`
		Recursive *bool   `hcl:"recursive,optional"`
		Output    *string `hcl:"output,optional"`
	}

	// Decode HCL
	var hclCfg hclPreset
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	return &Preset{
		Target:    hclCfg.Target,
		Swap:      hclCfg.Swap,
		Prepend:   hclCfg.Prepend,
		Append:    hclCfg.Append,
		Recursive: hclCfg.Recursive,
		Output:    hclCfg.Output,
	}, nil
}
