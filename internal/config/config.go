package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"gopkg.in/yaml.v3"

	"day-planner/internal/store"
)

// Config holds all configuration options for the day planner
type Config struct {
	Calendar    CalendarConfig    `yaml:"calendar"`
	Store       StoreConfig       `yaml:"store"`
	Validation  ValidationConfig  `yaml:"validation"`
	Display     DisplayConfig     `yaml:"display"`
	Application ApplicationConfig `yaml:"application"`
}

// CalendarConfig holds the reference location used to group tasks by day
type CalendarConfig struct {
	// Timezone is an IANA name, "Local" or "UTC".
	Timezone string `yaml:"timezone" env:"DP_TIMEZONE"`
}

// StoreConfig holds task store configuration
type StoreConfig struct {
	Backend      string        `yaml:"backend" env:"DP_STORE_BACKEND"`
	QueryTimeout time.Duration `yaml:"query_timeout" env:"DP_STORE_QUERY_TIMEOUT"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"DP_STORE_WRITE_TIMEOUT"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TaskNameMinLength    int `yaml:"task_name_min_length" env:"DP_VALIDATION_TASK_NAME_MIN"`
	TaskNameMaxLength    int `yaml:"task_name_max_length" env:"DP_VALIDATION_TASK_NAME_MAX"`
	DescriptionMaxLength int `yaml:"description_max_length" env:"DP_VALIDATION_DESCRIPTION_MAX"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	TimeFormat string `yaml:"time_format" env:"DP_DISPLAY_TIME_FORMAT"`
	Prompt     string `yaml:"prompt" env:"DP_DISPLAY_PROMPT"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	// Timeout bounds each command, not the whole session.
	Timeout time.Duration `yaml:"timeout" env:"DP_APP_TIMEOUT"`
	Verbose bool          `yaml:"verbose" env:"DP_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Calendar: CalendarConfig{
			Timezone: "Local",
		},
		Store: StoreConfig{
			Backend:      store.BackendMemory,
			QueryTimeout: 10 * time.Second,
			WriteTimeout: 5 * time.Second,
		},
		Validation: ValidationConfig{
			TaskNameMinLength:    1,
			TaskNameMaxLength:    255,
			DescriptionMaxLength: 1024,
		},
		Display: DisplayConfig{
			TimeFormat: "15:04",
			Prompt:     "dp> ",
		},
		Application: ApplicationConfig{
			Timeout: 30 * time.Second,
			Verbose: false,
		},
	}
}

// Location resolves the calendar timezone
func (c *Config) Location() (*time.Location, error) {
	switch tz := strings.TrimSpace(c.Calendar.Timezone); tz {
	case "", "Local", "local":
		return time.Local, nil
	default:
		return time.LoadLocation(tz)
	}
}

// LoadFromFile overlays the values present in a YAML file onto the configuration
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &ConfigError{Field: "config", Message: err.Error()}
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return &ConfigError{Field: "config", Message: fmt.Sprintf("parse %s: %v", path, err)}
	}
	return nil
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Calendar configuration
	if tz := os.Getenv("DP_TIMEZONE"); tz != "" {
		c.Calendar.Timezone = tz
	}

	// Store configuration
	if backend := os.Getenv("DP_STORE_BACKEND"); backend != "" {
		c.Store.Backend = backend
	}
	if err := envDuration("DP_STORE_QUERY_TIMEOUT", "store.query_timeout", &c.Store.QueryTimeout); err != nil {
		return err
	}
	if err := envDuration("DP_STORE_WRITE_TIMEOUT", "store.write_timeout", &c.Store.WriteTimeout); err != nil {
		return err
	}

	// Validation configuration
	if err := envInt("DP_VALIDATION_TASK_NAME_MIN", "validation.task_name_min_length", &c.Validation.TaskNameMinLength); err != nil {
		return err
	}
	if err := envInt("DP_VALIDATION_TASK_NAME_MAX", "validation.task_name_max_length", &c.Validation.TaskNameMaxLength); err != nil {
		return err
	}
	if err := envInt("DP_VALIDATION_DESCRIPTION_MAX", "validation.description_max_length", &c.Validation.DescriptionMaxLength); err != nil {
		return err
	}

	// Display configuration
	if format := os.Getenv("DP_DISPLAY_TIME_FORMAT"); format != "" {
		c.Display.TimeFormat = format
	}
	if prompt, ok := os.LookupEnv("DP_DISPLAY_PROMPT"); ok {
		c.Display.Prompt = prompt
	}

	// Application configuration
	if err := envDuration("DP_APP_TIMEOUT", "application.timeout", &c.Application.Timeout); err != nil {
		return err
	}
	if verbose := os.Getenv("DP_APP_VERBOSE"); verbose != "" {
		b, err := strconv.ParseBool(verbose)
		if err != nil {
			return &ConfigError{Field: "application.verbose", Message: fmt.Sprintf("DP_APP_VERBOSE: %v", err)}
		}
		c.Application.Verbose = b
	}

	return nil
}

func envDuration(name, field string, dst *time.Duration) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return &ConfigError{Field: field, Message: fmt.Sprintf("%s: %v", name, err)}
	}
	*dst = d
	return nil
}

func envInt(name, field string, dst *int) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return &ConfigError{Field: field, Message: fmt.Sprintf("%s: %v", name, err)}
	}
	*dst = n
	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate calendar configuration
	if _, err := c.Location(); err != nil {
		return &ConfigError{Field: "calendar.timezone", Message: fmt.Sprintf("unknown timezone %q", c.Calendar.Timezone)}
	}

	// Validate store configuration
	if c.Store.Backend != store.BackendMemory && c.Store.Backend != store.BackendSQLite {
		return &ConfigError{Field: "store.backend", Message: fmt.Sprintf("backend must be one of %v, got %q", store.Backends(), c.Store.Backend)}
	}
	if c.Store.QueryTimeout <= 0 {
		return &ConfigError{Field: "store.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Store.WriteTimeout <= 0 {
		return &ConfigError{Field: "store.write_timeout", Message: "write timeout must be positive"}
	}

	// Validate validation configuration
	if c.Validation.TaskNameMinLength < 1 {
		return &ConfigError{Field: "validation.task_name_min_length", Message: "task name minimum length must be at least 1"}
	}
	if c.Validation.TaskNameMaxLength < c.Validation.TaskNameMinLength {
		return &ConfigError{Field: "validation.task_name_max_length", Message: "task name maximum length must be greater than minimum length"}
	}
	if c.Validation.DescriptionMaxLength < 0 {
		return &ConfigError{Field: "validation.description_max_length", Message: "description maximum length cannot be negative"}
	}

	// Validate display configuration
	if c.Display.TimeFormat == "" {
		return &ConfigError{Field: "display.time_format", Message: "time format cannot be empty"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
