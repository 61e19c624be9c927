package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	tests := []struct {
		name      string
		cfg       Config
		wantError string
	}{
		{
			name: "valid",
			cfg:  Config{Root: dir, HasTarget: true, HasSwap: true},
		},
		{
			name: "valid_with_empty_target_and_swap",
			cfg:  Config{Root: dir, Target: "", Swap: "", HasTarget: true, HasSwap: true},
		},
		{
			name:      "missing_path",
			cfg:       Config{HasTarget: true, HasSwap: true},
			wantError: "--path is required",
		},
		{
			name:      "nonexistent_path",
			cfg:       Config{Root: filepath.Join(dir, "nope"), HasTarget: true, HasSwap: true},
			wantError: "does not exist",
		},
		{
			name:      "path_is_a_file",
			cfg:       Config{Root: file, HasTarget: true, HasSwap: true},
			wantError: "not a directory",
		},
		{
			name:      "target_not_provided",
			cfg:       Config{Root: dir, HasSwap: true},
			wantError: "--target is required",
		},
		{
			name:      "swap_not_provided",
			cfg:       Config{Root: dir, HasTarget: true},
			wantError: "--swap is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()

			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestLoadPreset(t *testing.T) {
	tests := []struct {
		name      string
		filename  string
		content   string
		want      Preset
		wantError string
	}{
		{
			name:     "yaml_preset",
			filename: "preset.yaml",
			content: `target: "Hello"
swap: "Hi"
prepend: "DISCLAIMER: "
recursive: true
`,
			want: Preset{
				Target:    strPtr("Hello"),
				Swap:      strPtr("Hi"),
				Prepend:   strPtr("DISCLAIMER: "),
				Recursive: boolPtr(true),
			},
		},
		{
			name:     "yaml_empty_strings_are_present",
			filename: "preset.yml",
			content: `target: ""
swap: ""
`,
			want: Preset{
				Target: strPtr(""),
				Swap:   strPtr(""),
			},
		},
		{
			name:     "hcl_preset",
			filename: "preset.hcl",
			content: `target = "Hello"
swap   = "Hi"
append = "\nEND"
output = "out"
`,
			want: Preset{
				Target: strPtr("Hello"),
				Swap:   strPtr("Hi"),
				Append: strPtr("\nEND"),
				Output: strPtr("out"),
			},
		},
		{
			name:      "unknown_extension",
			filename:  "preset.toml",
			content:   `target = "Hello"`,
			wantError: "no parser found",
		},
		{
			name:      "yaml_unknown_field",
			filename:  "preset.yaml",
			content:   `targt: "typo"`,
			wantError: "parsing preset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.filename)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			got, err := LoadPreset(context.Background(), path)

			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestConfig_ApplyPreset(t *testing.T) {
	t.Run("preset_fills_unset_fields", func(t *testing.T) {
		cfg := Config{Root: "r"}
		cfg.ApplyPreset(&Preset{
			Target:    strPtr("Hello"),
			Swap:      strPtr("Hi"),
			Prepend:   strPtr("P"),
			Recursive: boolPtr(true),
			Output:    strPtr("out"),
		})

		assert.True(t, cfg.HasTarget)
		assert.True(t, cfg.HasSwap)
		assert.Equal(t, "Hello", cfg.Target)
		assert.Equal(t, "Hi", cfg.Swap)
		assert.Equal(t, "P", cfg.Prepend)
		assert.True(t, cfg.Recursive)
		assert.Equal(t, "out", cfg.Output)
	})

	t.Run("flags_win_over_preset", func(t *testing.T) {
		cfg := Config{
			Root:      "r",
			Target:    "flagged",
			Swap:      "",
			HasTarget: true,
			HasSwap:   true,
			Prepend:   "flag-prepend",
		}
		cfg.ApplyPreset(&Preset{
			Target:  strPtr("preset-target"),
			Swap:    strPtr("preset-swap"),
			Prepend: strPtr("preset-prepend"),
		})

		assert.Equal(t, "flagged", cfg.Target)
		assert.Equal(t, "", cfg.Swap, "empty swap set on the command line must survive")
		assert.Equal(t, "flag-prepend", cfg.Prepend)
	})
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
