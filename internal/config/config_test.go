package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "Local", cfg.Calendar.Timezone)
	assert.Equal(t, "memory", cfg.Store.Backend)
	assert.Equal(t, 10*time.Second, cfg.Store.QueryTimeout)
	assert.Equal(t, 5*time.Second, cfg.Store.WriteTimeout)
	assert.Equal(t, 1, cfg.Validation.TaskNameMinLength)
	assert.Equal(t, 255, cfg.Validation.TaskNameMaxLength)
	assert.Equal(t, 1024, cfg.Validation.DescriptionMaxLength)
	assert.Equal(t, "15:04", cfg.Display.TimeFormat)
	assert.Equal(t, "dp> ", cfg.Display.Prompt)
	assert.Equal(t, 30*time.Second, cfg.Application.Timeout)
	assert.False(t, cfg.Application.Verbose)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Location(t *testing.T) {
	tests := []struct {
		timezone string
		expected string
		wantErr  bool
	}{
		{"", "Local", false},
		{"Local", "Local", false},
		{"UTC", "UTC", false},
		{"Asia/Tokyo", "Asia/Tokyo", false},
		{"Mars/Olympus_Mons", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.timezone, func(t *testing.T) {
			cfg := NewConfig()
			cfg.Calendar.Timezone = tt.timezone

			loc, err := cfg.Location()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, loc.String())
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"unknown timezone", func(c *Config) { c.Calendar.Timezone = "Nowhere/Special" }, "calendar.timezone"},
		{"unknown backend", func(c *Config) { c.Store.Backend = "postgres" }, "store.backend"},
		{"zero query timeout", func(c *Config) { c.Store.QueryTimeout = 0 }, "store.query_timeout"},
		{"negative write timeout", func(c *Config) { c.Store.WriteTimeout = -time.Second }, "store.write_timeout"},
		{"zero name minimum", func(c *Config) { c.Validation.TaskNameMinLength = 0 }, "validation.task_name_min_length"},
		{"max below min", func(c *Config) { c.Validation.TaskNameMinLength = 5; c.Validation.TaskNameMaxLength = 4 }, "validation.task_name_max_length"},
		{"negative description max", func(c *Config) { c.Validation.DescriptionMaxLength = -1 }, "validation.description_max_length"},
		{"empty time format", func(c *Config) { c.Display.TimeFormat = "" }, "display.time_format"},
		{"zero app timeout", func(c *Config) { c.Application.Timeout = 0 }, "application.timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			var configErr *ConfigError
			require.ErrorAs(t, err, &configErr)
			assert.Equal(t, tt.field, configErr.Field)
		})
	}
}

func TestConfig_LoadFromEnvironment(t *testing.T) {
	t.Setenv("DP_TIMEZONE", "UTC")
	t.Setenv("DP_STORE_BACKEND", "sqlite")
	t.Setenv("DP_STORE_QUERY_TIMEOUT", "3s")
	t.Setenv("DP_STORE_WRITE_TIMEOUT", "2s")
	t.Setenv("DP_VALIDATION_TASK_NAME_MIN", "2")
	t.Setenv("DP_VALIDATION_TASK_NAME_MAX", "40")
	t.Setenv("DP_VALIDATION_DESCRIPTION_MAX", "80")
	t.Setenv("DP_DISPLAY_TIME_FORMAT", "3:04PM")
	t.Setenv("DP_DISPLAY_PROMPT", "")
	t.Setenv("DP_APP_TIMEOUT", "1m")
	t.Setenv("DP_APP_VERBOSE", "true")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, "UTC", cfg.Calendar.Timezone)
	assert.Equal(t, "sqlite", cfg.Store.Backend)
	assert.Equal(t, 3*time.Second, cfg.Store.QueryTimeout)
	assert.Equal(t, 2*time.Second, cfg.Store.WriteTimeout)
	assert.Equal(t, 2, cfg.Validation.TaskNameMinLength)
	assert.Equal(t, 40, cfg.Validation.TaskNameMaxLength)
	assert.Equal(t, 80, cfg.Validation.DescriptionMaxLength)
	assert.Equal(t, "3:04PM", cfg.Display.TimeFormat)
	assert.Equal(t, "", cfg.Display.Prompt)
	assert.Equal(t, time.Minute, cfg.Application.Timeout)
	assert.True(t, cfg.Application.Verbose)
}

func TestConfig_LoadFromEnvironment_Malformed(t *testing.T) {
	tests := []struct {
		env   string
		value string
		field string
	}{
		{"DP_STORE_QUERY_TIMEOUT", "soon", "store.query_timeout"},
		{"DP_VALIDATION_TASK_NAME_MAX", "many", "validation.task_name_max_length"},
		{"DP_APP_VERBOSE", "loud", "application.verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv(tt.env, tt.value)

			err := NewConfig().LoadFromEnvironment()
			var configErr *ConfigError
			require.ErrorAs(t, err, &configErr)
			assert.Equal(t, tt.field, configErr.Field)
			assert.Contains(t, configErr.Error(), tt.env)
		})
	}
}

func TestConfig_LoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dp.yaml")
	content := `
calendar:
  timezone: Europe/London
store:
  backend: sqlite
  query_timeout: 250ms
validation:
  task_name_max_length: 64
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromFile(path))

	assert.Equal(t, "Europe/London", cfg.Calendar.Timezone)
	assert.Equal(t, "sqlite", cfg.Store.Backend)
	assert.Equal(t, 250*time.Millisecond, cfg.Store.QueryTimeout)
	assert.Equal(t, 64, cfg.Validation.TaskNameMaxLength)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, 5*time.Second, cfg.Store.WriteTimeout)
	assert.Equal(t, 1, cfg.Validation.TaskNameMinLength)
	assert.Equal(t, "15:04", cfg.Display.TimeFormat)
}

func TestConfig_LoadFromFile_Errors(t *testing.T) {
	dir := t.TempDir()

	err := NewConfig().LoadFromFile(filepath.Join(dir, "missing.yaml"))
	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "config", configErr.Field)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("store: [not, a, map"), 0o600))
	err = NewConfig().LoadFromFile(bad)
	require.ErrorAs(t, err, &configErr)
	assert.Contains(t, configErr.Message, "parse")
}

func TestConfigError_Error(t *testing.T) {
	err := &ConfigError{Field: "store.backend", Message: "bad"}
	assert.Equal(t, "store.backend: bad", err.Error())
}
