// Package store provides the session-scoped task stores behind the API.
//
// Both backends keep tasks only for the lifetime of the process: the memory
// backend is a registry.TaskRegistry and the sqlite backend is a private
// in-memory SQLite database.
package store

import (
	"context"
	"fmt"

	"day-planner/internal/domain"
	"day-planner/internal/registry"
	"day-planner/internal/repository/sqlite"
)

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Store files tasks under normalized date keys.
type Store interface {
	// Append adds task to the end of key's tasks.
	Append(ctx context.Context, key domain.DateKey, task domain.Task) error
	// List returns key's tasks in insertion order. The result is never nil.
	List(ctx context.Context, key domain.DateKey) ([]domain.Task, error)
	// Keys returns every key with at least one task, ascending.
	Keys(ctx context.Context) ([]domain.DateKey, error)
	Close() error
}

// Backends lists the supported backend names.
func Backends() []string {
	return []string{BackendMemory, BackendSQLite}
}

// Open creates an empty store of the named backend. Tasks are filed by n's
// reference location; opts applies to the sqlite backend only.
func Open(backend string, n *domain.Normalizer, opts sqlite.Options) (Store, error) {
	if n == nil {
		n = domain.NewNormalizer(nil)
	}

	switch backend {
	case BackendMemory:
		return NewMemory(registry.New(n)), nil
	case BackendSQLite:
		s, err := OpenSQLite(opts, n.Location())
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, &UnknownBackendError{Name: backend}
	}
}

// UnknownBackendError reports a backend name Open does not recognise.
type UnknownBackendError struct {
	Name string
}

func (e *UnknownBackendError) Error() string {
	return fmt.Sprintf("unknown store backend %q (expected one of %v)", e.Name, Backends())
}
