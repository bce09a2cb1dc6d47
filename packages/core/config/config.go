package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the expect output configuration
type Config struct {
	NoColor        *bool `json:"noColor,omitempty" yaml:"noColor,omitempty"`
	Verbose        *bool `json:"verbose,omitempty" yaml:"verbose,omitempty"`
	DiffContext    int   `json:"diffContext,omitempty" yaml:"diffContext,omitempty"`       // unchanged lines around each diff hunk
	MaxValueLength int   `json:"maxValueLength,omitempty" yaml:"maxValueLength,omitempty"` // truncation of rendered values
}

// Environment variables that override file settings
const (
	EnvNoColor = "EXPECT_NO_COLOR"
	EnvVerbose = "EXPECT_VERBOSE"
)

// BoolPtr returns a pointer to a bool value
func BoolPtr(b bool) *bool {
	return &b
}

// getBool returns the value of a bool pointer, or the default if nil
func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// GetNoColor returns the no color setting, defaulting to false
func (c *Config) GetNoColor() bool {
	return getBool(c.NoColor, false)
}

// GetVerbose returns the verbose setting, defaulting to false
func (c *Config) GetVerbose() bool {
	return getBool(c.Verbose, false)
}

// ConfigFilenames contains the possible config file names
var ConfigFilenames = []string{
	".expect.json",
	"expect.json",
	".expect.yaml",
	".expect.yml",
}

// LoadConfig loads configuration from the specified path or searches for config files
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		return loadConfigFromFile(path)
	}

	// Search from the current directory upwards
	return FindAndLoadConfig(".")
}

// FindAndLoadConfig searches for a config file in dir and then in each of its
// parents, so a file at the module root applies to every package.
func FindAndLoadConfig(dir string) (*Config, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	for {
		for _, filename := range ConfigFilenames {
			configPath := filepath.Join(abs, filename)
			if _, err := os.Stat(configPath); err == nil {
				return loadConfigFromFile(configPath)
			}
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			break
		}
		abs = parent
	}

	// Return defaults if no config file found
	return DefaultConfig(), nil
}

// loadConfigFromFile loads configuration from a specific file
func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, config)
	default:
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return config, nil
}

// Merge merges another config into this one, with other taking precedence
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	result := *c // Copy

	if other.DiffContext > 0 {
		result.DiffContext = other.DiffContext
	}
	if other.MaxValueLength > 0 {
		result.MaxValueLength = other.MaxValueLength
	}

	// Boolean flags - only override if explicitly set in other config
	if other.NoColor != nil {
		result.NoColor = other.NoColor
	}
	if other.Verbose != nil {
		result.Verbose = other.Verbose
	}

	return &result
}

// ApplyEnv returns a copy of the config with environment overrides applied.
// lookup is usually os.LookupEnv. Values that do not parse as booleans are
// ignored.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) *Config {
	override := &Config{}
	if v, ok := lookup(EnvNoColor); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			override.NoColor = BoolPtr(b)
		}
	}
	if v, ok := lookup(EnvVerbose); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			override.Verbose = BoolPtr(b)
		}
	}
	return c.Merge(override)
}
