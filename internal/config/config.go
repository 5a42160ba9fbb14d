// Package config loads optional CLI defaults from a TOML or YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyPath is returned when Load receives an empty path.
	ErrEmptyPath = errors.New("config: path is empty")
	// ErrUnknownFormat is returned for extensions other than .toml, .yaml and .yml.
	ErrUnknownFormat = errors.New("config: unknown file format")
	// ErrUnknownKey is returned when a TOML file sets keys this version does not know.
	ErrUnknownKey = errors.New("config: unknown key")
)

// FileConfig is the on-disk configuration. Nil fields mean "not set".
type FileConfig struct {
	Calibration CalibrationConfig `toml:"calibration" yaml:"calibration"`
	NearMatch   NearMatchConfig   `toml:"nearmatch" yaml:"nearmatch"`
}

// CalibrationConfig maps frequency settings.
type CalibrationConfig struct {
	Initial       *int `toml:"initial" yaml:"initial"`
	MaxIterations *int `toml:"max-iterations" yaml:"max-iterations"`
}

// NearMatchConfig maps near-match settings.
type NearMatchConfig struct {
	Truncate *bool `toml:"truncate" yaml:"truncate"`
}

// Load reads the config at path. A missing file is not an error.
func Load(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, ErrEmptyPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("config: read %q: %w", path, err)
	}

	var cfg FileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return FileConfig{}, fmt.Errorf("config: decode %q: %w", path, err)
		}
		if keys := md.Undecoded(); len(keys) > 0 {
			return FileConfig{}, fmt.Errorf("%w: %v in %q", ErrUnknownKey, keys, path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return FileConfig{}, fmt.Errorf("config: decode %q: %w", path, err)
		}
	default:
		return FileConfig{}, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	return cfg, nil
}

// XDGConfigHome returns $XDG_CONFIG_HOME or ~/.config.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultPath returns the default config location.
func DefaultPath() string {
	return filepath.Join(XDGConfigHome(), "aoc2018", "config.toml")
}
