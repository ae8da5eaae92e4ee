// Package config provides configuration loading and management for rasterhull.
// It handles loading configuration from YAML files and provides default values.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	"rasterhull/pkg/extract"
)

// Config represents the application configuration loaded from YAML
type Config struct {
	// Processing parameters
	Processing struct {
		// Strategy selects the extraction scheme: seq, threads or tasks
		Strategy string `yaml:"strategy"`

		// NumWorkers specifies how many goroutines extraction may use
		NumWorkers int `yaml:"numWorkers"`

		// Grain is the number of rows per task for the tasks strategy (0 = automatic)
		Grain int `yaml:"grain"`
	} `yaml:"processing"`

	// Input parameters
	Input struct {
		// Threshold is the luminance at or above which a pixel is foreground
		Threshold int `yaml:"threshold"`

		// Invert treats dark pixels as foreground instead
		Invert bool `yaml:"invert"`
	} `yaml:"input"`

	// Output parameters
	Output struct {
		// Capacity bounds how many hull vertices are reported (0 = all)
		Capacity int `yaml:"capacity"`

		// OverlayFile is an optional image path for a rendering of the hull
		OverlayFile string `yaml:"overlayFile"`

		// Verbose controls the level of logging output
		Verbose bool `yaml:"verbose"`
	} `yaml:"output"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Processing.Strategy = extract.Threads.String()
	cfg.Processing.NumWorkers = runtime.NumCPU()
	cfg.Processing.Grain = 0

	cfg.Input.Threshold = 128
	cfg.Input.Invert = false

	cfg.Output.Capacity = 0
	cfg.Output.Verbose = false

	return cfg
}

// Strategy returns the parsed extraction strategy
func (c *Config) Strategy() (extract.Strategy, error) {
	return extract.ParseStrategy(c.Processing.Strategy)
}

// Validate reports every invalid setting
func (c *Config) Validate() error {
	var errs []error

	if _, err := c.Strategy(); err != nil {
		errs = append(errs, err)
	}
	if c.Processing.NumWorkers < 0 {
		errs = append(errs, fmt.Errorf("numWorkers must be non-negative, got %d", c.Processing.NumWorkers))
	}
	if c.Processing.Grain < 0 {
		errs = append(errs, fmt.Errorf("grain must be non-negative, got %d", c.Processing.Grain))
	}
	if c.Input.Threshold < 0 || c.Input.Threshold > 255 {
		errs = append(errs, fmt.Errorf("threshold must be within 0-255, got %d", c.Input.Threshold))
	}
	if c.Output.Capacity < 0 {
		errs = append(errs, fmt.Errorf("capacity must be non-negative, got %d", c.Output.Capacity))
	}

	return errors.Join(errs...)
}

// LoadConfig loads configuration from a YAML file
// If the file doesn't exist, it returns the default configuration
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	// Check if config file exists
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// CreateDefaultConfigFile creates a default configuration file at the specified path
func CreateDefaultConfigFile(configPath string) error {
	return SaveConfig(DefaultConfig(), configPath)
}
