// Package config loads the optional YAML settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"bmfont-resolver/internal/atlas"
	"bmfont-resolver/internal/charmap"
	"bmfont-resolver/internal/glyphfs"
	"bmfont-resolver/internal/logging"
	"bmfont-resolver/internal/resolve"
)

// DefaultFile is read from the working directory when no path is given.
const DefaultFile = ".bmfont.yaml"

// Config holds resolver settings.
type Config struct {
	// ImagePattern selects glyph images inside a folder.
	ImagePattern string `yaml:"image_pattern"`
	// MappingFile is the mapping file name inside a folder.
	MappingFile string `yaml:"mapping_file"`
	// ManifestSuffix names the written glyph manifest.
	ManifestSuffix  string `yaml:"manifest_suffix"`
	SuggestionLimit int    `yaml:"suggestion_limit"`
	LogLevel        string `yaml:"log_level"`
	LogFormat       string `yaml:"log_format"`
}

// Default returns a Config with every default applied.
func Default() *Config {
	c := &Config{}
	applyDefaults(c)

	return c
}

// LoadFile reads path. A missing file is not an error when optional is set.
func LoadFile(path string, optional bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var c Config

	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&c)

	return &c, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(c *Config) {
	if c.ImagePattern == "" {
		c.ImagePattern = glyphfs.DefaultPattern
	}

	if c.MappingFile == "" {
		c.MappingFile = charmap.FileName
	}

	if c.ManifestSuffix == "" {
		c.ManifestSuffix = atlas.DefaultSuffix
	}

	if c.SuggestionLimit <= 0 {
		c.SuggestionLimit = resolve.DefaultSuggestionLimit
	}

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	if c.LogFormat == "" {
		c.LogFormat = logging.FormatText
	}
}
