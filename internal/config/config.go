// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the qrpng command's YAML defaults file.
package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/unixdj/qrpng/coding"
)

// maxSide is the largest image side in pixels that qrpng renders.
const maxSide = 32767 * 8

// A Config holds defaults for command line flags.
type Config struct {
	Scale   int    `yaml:"scale"`   // image pixels per module
	Margin  int    `yaml:"margin"`  // quiet zone width in modules
	Type    string `yaml:"type"`    // output type; empty picks by TTY
	Scoring string `yaml:"scoring"` // "runs" or "all"
	Latin1  bool   `yaml:"latin1"`  // convert input to ISO 8859-1
}

// Defaults returns a Config populated with all default values.
func Defaults() *Config {
	return &Config{
		Scale:   4,
		Margin:  4,
		Scoring: coding.RunsAndBoxes.String(),
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/qrpng/config.yaml, or the
// platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "qrpng", "config.yaml"), nil
}

// Load reads the file at path over the defaults.  An empty file yields
// the defaults.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Validate checks the numeric ranges and the scoring name.
func (c *Config) Validate() error {
	if c.Scale < 1 || c.Scale > maxSide {
		return errors.Errorf("scale %d out of range", c.Scale)
	}
	if c.Margin < 0 || c.Margin > maxSide {
		return errors.Errorf("margin %d out of range", c.Margin)
	}
	if _, err := c.Rules(); err != nil {
		return err
	}
	return nil
}

// Rules returns the mask scoring named by c.Scoring.
func (c *Config) Rules() (coding.Scoring, error) {
	for _, s := range []coding.Scoring{coding.RunsAndBoxes, coding.AllRules} {
		if c.Scoring == s.String() {
			return s, nil
		}
	}
	return 0, errors.Errorf("unknown scoring %q", c.Scoring)
}
