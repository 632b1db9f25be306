// Package config loads repository-local ignoresync configuration from YAML.
package config

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the optional config file looked up in the repository root.
const FileName = ".ignoresync.yaml"

// Config holds the per-repository options.
type Config struct {
	// IgnoreFile is the ignore file maintained by sync runs.
	IgnoreFile string `yaml:"ignore_file"`
	// Journal enables recording sync runs in the run journal.
	Journal bool `yaml:"journal"`
	// Exclude lists glob patterns for untracked paths that must never
	// be appended to the ignore file.
	Exclude []string `yaml:"exclude"`
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	return &Config{
		IgnoreFile: ".gitignore",
		Journal:    true,
	}
}

// Load reads the config file from the repository root. A missing file
// yields the defaults; a malformed file is an error.
func Load(root string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Join(root, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	if cfg.IgnoreFile == "" {
		cfg.IgnoreFile = ".gitignore"
	}
	return cfg, nil
}

// Excluded reports whether p matches one of the configured exclude
// patterns. Directory entries are matched with and without their
// trailing slash.
func (c *Config) Excluded(p string) bool {
	trimmed := strings.TrimSuffix(p, "/")
	for _, pattern := range c.Exclude {
		if ok, err := path.Match(pattern, p); err == nil && ok {
			return true
		}
		if ok, err := path.Match(pattern, trimmed); err == nil && ok {
			return true
		}
	}
	return false
}
