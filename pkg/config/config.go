package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config names the three files kept in sync. Relative paths are
// resolved against the project root.
type Config struct {
	Constants string `json:"constants,omitempty" yaml:"constants,omitempty"`
	Manifest  string `json:"manifest,omitempty" yaml:"manifest,omitempty"`
	Changelog string `json:"changelog,omitempty" yaml:"changelog,omitempty"`
}

// Default returns the conventional file layout.
func Default() Config {
	return Config{
		Constants: filepath.Join("src", "version.rs"),
		Manifest:  "Cargo.toml",
		Changelog: "VERSION_MANAGEMENT.md",
	}
}

// probeNames are the config files looked for at the project root when
// no explicit config path is given.
var probeNames = []string{".versync.yaml", ".versync.yml", ".versync.json"}

// Load loads and parses a config file, trying YAML first and JSON second.
// Fields left empty fall back to the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	if len(data) == 0 {
		return Config{}, fmt.Errorf("config file is empty: %s", path)
	}

	var cfg Config
	if errYAML := yaml.Unmarshal(data, &cfg); errYAML != nil {
		if errJSON := json.Unmarshal(data, &cfg); errJSON != nil {
			return Config{}, fmt.Errorf("parsing config file %s: %w", path, errYAML)
		}
	}

	return cfg.withDefaults(), nil
}

// LoadOrDefault resolves the effective configuration for a project root
// by probing it for a .versync config file; the conventional defaults
// apply when none exists. All paths in the result are anchored at root.
func LoadOrDefault(root string) (Config, error) {
	for _, name := range probeNames {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := Load(path)
		if err != nil {
			return Config{}, err
		}
		return cfg.Resolve(root), nil
	}

	return Default().Resolve(root), nil
}

// Resolve anchors relative paths at the project root.
func (c Config) Resolve(root string) Config {
	c.Constants = resolvePath(root, c.Constants)
	c.Manifest = resolvePath(root, c.Manifest)
	c.Changelog = resolvePath(root, c.Changelog)
	return c
}

func (c Config) withDefaults() Config {
	d := Default()
	if c.Constants == "" {
		c.Constants = d.Constants
	}
	if c.Manifest == "" {
		c.Manifest = d.Manifest
	}
	if c.Changelog == "" {
		c.Changelog = d.Changelog
	}
	return c
}

func resolvePath(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
