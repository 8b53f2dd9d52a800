// Package config loads the optional .minic.yaml driver configuration.
// The language itself is not configurable: the keyword set and the rule
// table are fixed at compile time. Configuration covers presentation
// and logging only.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up by Discover.
const FileName = ".minic.yaml"

// Config holds the complete driver configuration.
type Config struct {
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// OutputConfig holds presentation settings.
type OutputConfig struct {
	Format  string `yaml:"format"`
	NoColor bool   `yaml:"no_color"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// Discover locates a configuration file and loads it. The MINIC_CONFIG
// environment variable wins, then the working directory, then $HOME.
// When no file exists anywhere, Discover returns Default rather than
// an error: the file is optional.
func Discover() (*Config, error) {
	if path := os.Getenv("MINIC_CONFIG"); path != "" {
		return Load(path)
	}

	candidates := []string{FileName}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, FileName))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	return Default(), nil
}

func (c *Config) applyDefaults() {
	if c.Output.Format == "" {
		c.Output.Format = "table"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

func (c *Config) validate() error {
	switch c.Output.Format {
	case "table", "list", "json":
	default:
		return fmt.Errorf("unknown output format %q", c.Output.Format)
	}
	return nil
}
