// Package config loads the YAML-backed configuration cmd/stimpl and
// internal/repl read at startup, following the YAML config loading
// pattern used elsewhere in this codebase for structured config files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls driver behavior left as an implementation choice:
// whether to dump the final environment after a run, whether to color
// terminal output, and where the REPL keeps its readline history.
type Config struct {
	Debug       bool   `yaml:"debug"`
	Color       bool   `yaml:"color"`
	HistoryFile string `yaml:"history_file"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		Debug:       false,
		Color:       true,
		HistoryFile: ".stimpl_history",
	}
}

// Load reads a YAML config file at path, falling back to Default()
// values for any field the file omits.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
