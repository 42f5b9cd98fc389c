package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional YAML config file for the CLI.
//
//	paths:
//	  - Data/INI
//	extensions: [".ini"]
//	version: zerohour
type Config struct {
	Paths      []string `yaml:"paths"`
	Extensions []string `yaml:"extensions"`
	Version    string   `yaml:"version"`
}

// LoadConfig reads the config file at path. An empty path returns an empty
// config; a missing file at an explicit path is an error.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
