// Package config loads playback defaults from an optional YAML file.
// Command-line flags override anything set here.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config carries file-sourced defaults for playback options. Zero
// values mean unset.
type Config struct {
	Duration   string   `yaml:"duration"`
	FPS        int      `yaml:"fps"`
	Effect     string   `yaml:"effect"`
	Easing     string   `yaml:"easing"`
	Palette    string   `yaml:"palette"`
	Gradient   string   `yaml:"gradient"`
	Font       string   `yaml:"font"`
	FigletArgs []string `yaml:"figlet_args"`
	ArtFile    string   `yaml:"art_file"`
	Loop       bool     `yaml:"loop"`
	Chime      bool     `yaml:"chime"`
}

// Load reads a YAML config file. An explicit path must exist and
// parse. With an empty path the default location is probed instead,
// and a missing file yields an empty config without error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return &Config{}, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// DefaultPath locates the per-user config file, or returns empty when
// the home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "marquee", "config.yaml")
}
