// SPDX-FileCopyrightText: © 2021 The mlg authors <https://github.com/golangee/mlg/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package config loads the project settings of the mlg tool.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// Color modes of the console output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the settings of a project.
type Config struct {
	// Version of the notation the documents are written in, like v1.2.0.
	Version string `yaml:"version" toml:"version"`
	// Include are the patterns of the documents, relative to the project directory.
	Include []string `yaml:"include" toml:"include"`
	// Exclude are patterns of paths to skip, even if included.
	Exclude []string `yaml:"exclude" toml:"exclude"`
	// Workers is the amount of documents parsed in parallel.
	Workers int `yaml:"workers" toml:"workers"`
	// WarningsAsErrors makes the check fail on warnings.
	WarningsAsErrors bool `yaml:"warningsAsErrors" toml:"warnings_as_errors"`
	// Color is one of auto, always or never.
	Color string `yaml:"color" toml:"color"`
}

// Default returns the settings used without a config file.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()

	return cfg
}

// Load reads a YAML (.yaml, .yml) or TOML (.toml) file. An empty path returns
// the defaults. In both cases the environment variables MLG_WORKERS and
// MLG_COLOR take precedence and the result is validated.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		buf, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("cannot read config: %w", err)
		}

		switch ext := strings.ToLower(filepath.Ext(path)); ext {
		case ".yaml", ".yml":
			if err := yaml.Unmarshal(buf, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case ".toml":
			if _, err := toml.Decode(string(buf), cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		default:
			return nil, fmt.Errorf("unsupported config format '%s'", ext)
		}
	}

	cfg.applyDefaults()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Version == "" {
		c.Version = "v1.0.0"
	}

	if len(c.Include) == 0 {
		c.Include = []string{"**/*.math"}
	}

	if c.Workers == 0 {
		c.Workers = runtime.NumCPU()
	}

	if c.Color == "" {
		c.Color = ColorAuto
	}
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("MLG_WORKERS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid MLG_WORKERS: %w", err)
		}

		c.Workers = n
	}

	if v, ok := os.LookupEnv("MLG_COLOR"); ok {
		c.Color = v
	}

	return nil
}

// Validate returns the first problem of the settings.
func (c *Config) Validate() error {
	if !semver.IsValid(c.Version) {
		return fmt.Errorf("version '%s' is not a semantic version like v1.0.0", c.Version)
	}

	if major := semver.Major(c.Version); major != "v0" && major != "v1" {
		return fmt.Errorf("version '%s' is not supported, expected v0 or v1", c.Version)
	}

	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be %s, %s or %s, got '%s'", ColorAuto, ColorAlways, ColorNever, c.Color)
	}

	for _, p := range append(append([]string{}, c.Include...), c.Exclude...) {
		if strings.HasPrefix(p, "/") {
			return fmt.Errorf("pattern '%s' must be relative", p)
		}

		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("pattern '%s' is malformed", p)
		}
	}

	return nil
}
