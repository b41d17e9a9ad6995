// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles modelgen project configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// FileName is the name of the configuration file looked up in the working directory.
const FileName = "modelgen.yaml"

// Defaults applied by WithDefaults.
const (
	DefaultTarget = "dart"
	DefaultOutput = "models"
	DefaultJobs   = 4
)

// Config represents the modelgen.yaml configuration file.
type Config struct {
	Version    int               `yaml:"version"`
	Target     string            `yaml:"target,omitempty"`
	Output     string            `yaml:"output,omitempty"`
	Suffix     string            `yaml:"suffix,omitempty"`
	Capability string            `yaml:"capability,omitempty"`
	ByteArrays bool              `yaml:"byteArrays,omitempty"`
	Preamble   *bool             `yaml:"preamble,omitempty"`
	Imports    []string          `yaml:"imports,omitempty"`
	Types      map[string]string `yaml:"types,omitempty"`
	Jobs       int               `yaml:"jobs,omitempty"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{Version: CurrentConfigVersion}
	cfg.WithDefaults()
	return cfg
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// WithDefaults fills unset fields with their default values.
func (c *Config) WithDefaults() *Config {
	if c.Target == "" {
		c.Target = DefaultTarget
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Jobs == 0 {
		c.Jobs = DefaultJobs
	}
	return c
}

// PreambleEnabled reports whether generated files start with the banner,
// imports and part directive. It defaults to true.
func (c *Config) PreambleEnabled() bool {
	return c.Preamble == nil || *c.Preamble
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", c.Jobs)
	}
	for from, to := range c.Types {
		if from == "" || to == "" {
			return fmt.Errorf("type alias %q: %q must name both types", from, to)
		}
	}
	for _, imp := range c.Imports {
		if imp == "" {
			return errors.New("imports must not contain empty entries")
		}
	}
	return nil
}
