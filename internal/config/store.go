package config

import (
	"fmt"

	"day-planner/internal/domain"
	"day-planner/internal/repository/sqlite"
	"day-planner/internal/store"
)

// StoreOptions returns the repository timeouts for the sqlite backend
func (c *Config) StoreOptions() sqlite.Options {
	return sqlite.Options{
		QueryTimeout: c.Store.QueryTimeout,
		WriteTimeout: c.Store.WriteTimeout,
	}
}

// NewNormalizer creates the normalizer for the configured calendar timezone
func (c *Config) NewNormalizer() (*domain.Normalizer, error) {
	loc, err := c.Location()
	if err != nil {
		return nil, &ConfigError{Field: "calendar.timezone", Message: err.Error()}
	}
	return domain.NewNormalizer(loc), nil
}

// CreateStore creates an empty store of the configured backend, filing tasks with n
func CreateStore(config *Config, n *domain.Normalizer) (store.Store, error) {
	s, err := store.Open(config.Store.Backend, n, config.StoreOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s store: %w", config.Store.Backend, err)
	}
	return s, nil
}
