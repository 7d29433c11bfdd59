// Package config loads the CLI configuration file. Everything has a working
// default so the tool runs with no config at all, falling back to the
// embedded template and taxonomy.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors the YAML configuration file.
type Config struct {
	// Template is the path to the hazard log template. Empty means the
	// embedded default.
	Template string `yaml:"template"`

	// Taxonomy is the path to the hazard types taxonomy. Empty means the
	// embedded default.
	Taxonomy string `yaml:"taxonomy"`

	// OutputDir is where generated drafts land.
	OutputDir string `yaml:"output_dir"`

	// Renderer names the default renderer.
	Renderer string `yaml:"renderer"`

	// LogLevel is a zerolog level name.
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		OutputDir: "hazard-drafts",
		Renderer:  "markdown",
		LogLevel:  "info",
	}
}

// Load reads and parses the YAML file at path, layering it over the
// defaults. An empty path returns the defaults; a missing or malformed file
// is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	defaults := Default()
	if cfg.OutputDir == "" {
		cfg.OutputDir = defaults.OutputDir
	}
	if cfg.Renderer == "" {
		cfg.Renderer = defaults.Renderer
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}
	return cfg, nil
}
