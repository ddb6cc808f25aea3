package config

import (
	"os"
	"time"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
	path   string
}

// NewLoader creates a new configuration loader.
// The YAML file, if any, is taken from DP_CONFIG.
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
		path:   os.Getenv("DP_CONFIG"),
	}
}

// WithFile sets the YAML file to read, replacing DP_CONFIG
func (l *Loader) WithFile(path string) *Loader {
	if path != "" {
		l.path = path
	}
	return l
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the YAML file, when one is configured
// 3. Override with environment variables
// 4. Override with command line flags (LoadWithOverrides)
func (l *Loader) Load() (*Config, error) {
	if l.path != "" {
		if err := l.config.LoadFromFile(l.path); err != nil {
			return nil, err
		}
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		config.ApplyOverrides(overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigOverrides holds command line flag overrides.
// A nil field leaves the loaded value unchanged.
type ConfigOverrides struct {
	// Calendar overrides
	Timezone *string

	// Store overrides
	StoreBackend      *string
	StoreQueryTimeout *time.Duration
	StoreWriteTimeout *time.Duration

	// Validation overrides
	TaskNameMinLength    *int
	TaskNameMaxLength    *int
	DescriptionMaxLength *int

	// Display overrides
	TimeFormat *string
	Prompt     *string

	// Application overrides
	Timeout *time.Duration
	Verbose *bool
}

// ApplyOverrides applies command line overrides to the configuration
func (c *Config) ApplyOverrides(overrides *ConfigOverrides) {
	if overrides.Timezone != nil {
		c.Calendar.Timezone = *overrides.Timezone
	}

	if overrides.StoreBackend != nil {
		c.Store.Backend = *overrides.StoreBackend
	}
	if overrides.StoreQueryTimeout != nil {
		c.Store.QueryTimeout = *overrides.StoreQueryTimeout
	}
	if overrides.StoreWriteTimeout != nil {
		c.Store.WriteTimeout = *overrides.StoreWriteTimeout
	}

	if overrides.TaskNameMinLength != nil {
		c.Validation.TaskNameMinLength = *overrides.TaskNameMinLength
	}
	if overrides.TaskNameMaxLength != nil {
		c.Validation.TaskNameMaxLength = *overrides.TaskNameMaxLength
	}
	if overrides.DescriptionMaxLength != nil {
		c.Validation.DescriptionMaxLength = *overrides.DescriptionMaxLength
	}

	if overrides.TimeFormat != nil {
		c.Display.TimeFormat = *overrides.TimeFormat
	}
	if overrides.Prompt != nil {
		c.Display.Prompt = *overrides.Prompt
	}

	if overrides.Timeout != nil {
		c.Application.Timeout = *overrides.Timeout
	}
	if overrides.Verbose != nil {
		c.Application.Verbose = *overrides.Verbose
	}
}
