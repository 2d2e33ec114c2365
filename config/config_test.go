// SPDX-FileCopyrightText: © 2021 The mlg authors <https://github.com/golangee/mlg/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/r3labs/diff/v2"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		text    string
		want    *Config
		wantErr string
	}{
		{
			name: "yaml",
			file: "mlg.yaml",
			text: "version: v1.2.0\ninclude: [\"content/**/*.math\"]\nexclude: [\"drafts/**\"]\nworkers: 2\nwarningsAsErrors: true\ncolor: never\n",
			want: &Config{
				Version:          "v1.2.0",
				Include:          []string{"content/**/*.math"},
				Exclude:          []string{"drafts/**"},
				Workers:          2,
				WarningsAsErrors: true,
				Color:            ColorNever,
			},
		},
		{
			name: "toml",
			file: "mlg.toml",
			text: "version = \"v0.3.1\"\nworkers = 4\nwarnings_as_errors = true\n",
			want: &Config{
				Version:          "v0.3.1",
				Include:          []string{"**/*.math"},
				Workers:          4,
				WarningsAsErrors: true,
				Color:            ColorAuto,
			},
		},
		{
			name:    "unsupported major version",
			file:    "mlg.yml",
			text:    "version: v2.0.0\nworkers: 1\n",
			wantErr: "not supported",
		},
		{
			name:    "invalid version",
			file:    "mlg.yml",
			text:    "version: \"1.0\"\nworkers: 1\n",
			wantErr: "not a semantic version",
		},
		{
			name:    "invalid color",
			file:    "mlg.toml",
			text:    "color = \"pink\"\nworkers = 1\n",
			wantErr: "color must be",
		},
		{
			name:    "absolute pattern",
			file:    "mlg.yaml",
			text:    "include: [\"/etc/*\"]\nworkers: 1\n",
			wantErr: "must be relative",
		},
		{
			name:    "malformed pattern",
			file:    "mlg.yaml",
			text:    "include: [\"content/[a\"]\nworkers: 1\n",
			wantErr: "is malformed",
		},
		{
			name:    "unknown format",
			file:    "mlg.json",
			text:    "{}",
			wantErr: "unsupported config format",
		},
		{
			name:    "broken yaml",
			file:    "mlg.yaml",
			text:    "workers: [",
			wantErr: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, []byte(tt.text), 0o644); err != nil {
				t.Fatal(err)
			}

			cfg, err := Load(path)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected an error containing %q but got %v", tt.wantErr, err)
				}

				return
			}

			if err != nil {
				t.Fatal(err)
			}

			changes, err := diff.Diff(tt.want, cfg)
			if err != nil {
				t.Fatal(err)
			}

			if len(changes) != 0 {
				t.Fatalf("unexpected changes: %v", changes)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Version != "v1.0.0" || cfg.Include[0] != "**/*.math" || cfg.Workers < 1 || cfg.Color != ColorAuto {
		t.Fatalf("unexpected defaults %#v", cfg)
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("MLG_WORKERS", "7")
	t.Setenv("MLG_COLOR", ColorAlways)

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Workers != 7 || cfg.Color != ColorAlways {
		t.Fatalf("environment not applied: %#v", cfg)
	}

	t.Setenv("MLG_WORKERS", "many")

	if _, err := Load(""); err == nil {
		t.Fatal("expected an error")
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error")
	}
}
