// Package config loads the parameters of a path selection run from YAML or
// TOML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a configuration or topology file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ErrUnknownFormat indicates a file extension that is neither YAML nor TOML.
var ErrUnknownFormat = errors.New("config: unknown file format")

// FormatFromPath returns the format matching the extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Decode strictly decodes data into v: unknown keys are rejected.
func Decode(data []byte, format Format, v any) error {
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to parse yaml: %w", err)
		}
		return nil
	case FormatTOML:
		md, err := toml.Decode(string(data), v)
		if err != nil {
			return fmt.Errorf("failed to parse toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("failed to parse toml: unknown key %q", undecoded[0].String())
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Config holds the parameters of a path selection run.
type Config struct {
	// Number of candidate paths examined per border pair.
	SampleSize int `yaml:"sample_size" toml:"sample_size"`

	// Seed of the first trial.
	Seed int64 `yaml:"seed" toml:"seed"`

	// Number of independent trials, the best one is kept.
	Trials int `yaml:"trials" toml:"trials"`

	// Size of the pool running the trials, 0 for one worker per CPU.
	Workers int `yaml:"workers" toml:"workers"`

	// Maximum number of edges of an enumerated candidate path, 0 for no
	// limit.
	MaxHops int `yaml:"max_hops" toml:"max_hops"`

	// First label assigned to the selected paths.
	LabelStart int `yaml:"label_start" toml:"label_start"`

	LogLevel  string `yaml:"log_level" toml:"log_level"`
	LogFormat string `yaml:"log_format" toml:"log_format"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		SampleSize: 10,
		Seed:       42,
		Trials:     1,
		Workers:    0,
		MaxHops:    0,
		LabelStart: 100,
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// Load reads the configuration file at path. Values missing from the file
// keep their default value.
func Load(path string) (*Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a configuration.
func Parse(data []byte, format Format) (*Config, error) {
	cfg := Default()
	if err := Decode(data, format, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks that all parameters are in range.
func (c *Config) Validate() error {
	if c.SampleSize < 1 {
		return fmt.Errorf("sample_size must be at least 1, got %d", c.SampleSize)
	}
	if c.Trials < 1 {
		return fmt.Errorf("trials must be at least 1, got %d", c.Trials)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", c.Workers)
	}
	if c.MaxHops < 0 {
		return fmt.Errorf("max_hops must be non-negative, got %d", c.MaxHops)
	}
	if c.LabelStart < 0 {
		return fmt.Errorf("label_start must be non-negative, got %d", c.LabelStart)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("invalid log_format: %s (must be text or json)", c.LogFormat)
	}
	return nil
}
