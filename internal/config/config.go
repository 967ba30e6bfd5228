// Package config provides configuration management for colframe columns and tables
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config represents the global configuration for column and table operations
type Config struct {
	// Logging Configuration
	LogLevel  string `json:"log_level" yaml:"log_level"`   // debug, info, warn or error
	LogFormat string `json:"log_format" yaml:"log_format"` // text or json
	SeqURL    string `json:"seq_url" yaml:"seq_url"`       // Optional Seq ingestion endpoint

	// Diagnostics Configuration
	MetricsCollection bool `json:"metrics_collection" yaml:"metrics_collection"` // Record per-operation metrics
	MaxDisplayValues  int  `json:"max_display_values" yaml:"max_display_values"` // Values shown per column in debug strings (-1 = no limit)

	// Memory Configuration
	CheckedAllocator bool `json:"checked_allocator" yaml:"checked_allocator"` // Track arrow allocations for leak detection
}

// Default configuration values
const (
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultMaxDisplayValues = 20

	// UnlimitedDisplay disables elision in debug strings
	UnlimitedDisplay = -1
)

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

var validLogFormats = map[string]bool{"text": true, "json": true}

// Global configuration instance
var (
	globalConfig Config
	configMutex  sync.RWMutex
)

// Initialize global configuration with defaults
func init() {
	globalConfig = NewConfig()
}

// NewConfig creates a new configuration with default values
func NewConfig() Config {
	return Config{
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,

		MetricsCollection: false,
		MaxDisplayValues:  DefaultMaxDisplayValues,

		CheckedAllocator: false,
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("LogLevel must be one of debug, info, warn, error, got %q", c.LogLevel)
	}

	if !validLogFormats[c.LogFormat] {
		return fmt.Errorf("LogFormat must be text or json, got %q", c.LogFormat)
	}

	if c.MaxDisplayValues < UnlimitedDisplay {
		return fmt.Errorf("MaxDisplayValues must be -1 or greater, got %d", c.MaxDisplayValues)
	}

	if c.SeqURL != "" && !strings.HasPrefix(c.SeqURL, "http://") && !strings.HasPrefix(c.SeqURL, "https://") {
		return fmt.Errorf("SeqURL must be an http(s) URL, got %q", c.SeqURL)
	}

	return nil
}

// WithDefaults returns a new configuration with default values filled in for zero values
func (c Config) WithDefaults() Config {
	defaults := NewConfig()

	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = defaults.LogFormat
	}
	if c.MaxDisplayValues == 0 {
		c.MaxDisplayValues = defaults.MaxDisplayValues
	}

	// Boolean fields keep their zero values so an explicit false is preserved

	return c
}

// SetGlobalConfig sets the global configuration
func SetGlobalConfig(config Config) {
	configMutex.Lock()
	defer configMutex.Unlock()
	globalConfig = config
}

// GetGlobalConfig returns the current global configuration
func GetGlobalConfig() Config {
	configMutex.RLock()
	defer configMutex.RUnlock()
	return globalConfig
}

// LoadFromJSON loads configuration from JSON data
func LoadFromJSON(data []byte) (Config, error) {
	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("parsing JSON configuration: %w", err)
	}
	return config.WithDefaults(), nil
}

// LoadFromYAML loads configuration from YAML data
func LoadFromYAML(data []byte) (Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("parsing YAML configuration: %w", err)
	}
	return config.WithDefaults(), nil
}

// LoadFromFile loads configuration from a file (supports JSON and YAML)
func LoadFromFile(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file %s: %w", filename, err)
	}

	var config Config
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".json":
		config, err = LoadFromJSON(data)
	case ".yaml", ".yml":
		config, err = LoadFromYAML(data)
	default:
		return Config{}, fmt.Errorf("unsupported config file format: %s", ext)
	}

	if err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w", filename, err)
	}

	return config, nil
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() Config {
	return ApplyEnv(NewConfig())
}

// ApplyEnv overrides fields of base with any COLFRAME_* environment variables.
// Unparseable numeric and boolean values are ignored.
func ApplyEnv(base Config) Config {
	config := base

	if val := os.Getenv("COLFRAME_LOG_LEVEL"); val != "" {
		config.LogLevel = strings.ToLower(val)
	}

	if val := os.Getenv("COLFRAME_LOG_FORMAT"); val != "" {
		config.LogFormat = strings.ToLower(val)
	}

	if val := os.Getenv("COLFRAME_SEQ_URL"); val != "" {
		config.SeqURL = val
	}

	if val := os.Getenv("COLFRAME_METRICS_COLLECTION"); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			config.MetricsCollection = parsed
		}
	}

	if val := os.Getenv("COLFRAME_MAX_DISPLAY_VALUES"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			config.MaxDisplayValues = parsed
		}
	}

	if val := os.Getenv("COLFRAME_CHECKED_ALLOCATOR"); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			config.CheckedAllocator = parsed
		}
	}

	return config
}
