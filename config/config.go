// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package config loads the configuration of the material compiler.
//
// The configuration is a JSON file named zonetool.json or .zonetoolrc. It is
// searched for in the starting directory and its parents. Relative paths in
// the file are relative to the directory containing it.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the contents of a configuration file. All fields are optional.
type Config struct {
	// SearchPath is the directory containing techsets/, techniques/,
	// statemaps/ and images/.
	SearchPath string `json:"searchPath,omitempty"`
	// Database is the zone database materials are written to.
	Database string `json:"database,omitempty"`
	// EffectTemplate enables the effect material template.
	EffectTemplate *bool `json:"effectTemplate,omitempty"`
	Verbose        *bool `json:"verbose,omitempty"`
}

// FileNames are the names of configuration files, in order of preference.
var FileNames = []string{
	"zonetool.json",
	".zonetoolrc",
}

// Settings are the effective settings after applying a configuration and
// command line flags to the defaults.
type Settings struct {
	SearchPath     string
	Database       string
	EffectTemplate bool
	Verbose        bool
}

func DefaultSettings() Settings {
	return Settings{
		SearchPath: ".",
		Database:   "zone.db",
	}
}

// Load searches for a configuration file in startDir and its parents. It
// returns a nil Config if there is none.
func Load(startDir string) (*Config, string, error) {
	dir := startDir
	for {
		for _, name := range FileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				cfg, err := LoadFile(path)
				return cfg, path, err
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, "", nil
		}
		dir = parent
	}
}

// LoadFile loads the configuration file at path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("couldn't parse %s: %w", path, err)
	}
	dir := filepath.Dir(path)
	cfg.SearchPath = resolve(dir, cfg.SearchPath)
	cfg.Database = resolve(dir, cfg.Database)
	return &cfg, nil
}

func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// Apply returns s with the fields set in c. A nil Config changes nothing.
func (c *Config) Apply(s Settings) Settings {
	if c == nil {
		return s
	}
	if c.SearchPath != "" {
		s.SearchPath = c.SearchPath
	}
	if c.Database != "" {
		s.Database = c.Database
	}
	if c.EffectTemplate != nil {
		s.EffectTemplate = *c.EffectTemplate
	}
	if c.Verbose != nil {
		s.Verbose = *c.Verbose
	}
	return s
}
