package store

import (
	"context"

	"day-planner/internal/domain"
	"day-planner/internal/registry"
)

// Memory is a Store backed by a TaskRegistry.
type Memory struct {
	registry *registry.TaskRegistry
}

// NewMemory wraps reg. A nil reg gets a fresh registry normalizing in time.Local.
func NewMemory(reg *registry.TaskRegistry) *Memory {
	if reg == nil {
		reg = registry.New(nil)
	}
	return &Memory{registry: reg}
}

// Registry returns the wrapped registry.
func (m *Memory) Registry() *registry.TaskRegistry {
	return m.registry
}

func (m *Memory) Append(ctx context.Context, key domain.DateKey, task domain.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.registry.AddTaskForKey(key, task)
	return nil
}

func (m *Memory) List(ctx context.Context, key domain.DateKey) ([]domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return m.registry.TasksForKey(key), nil
}

func (m *Memory) Keys(ctx context.Context) ([]domain.DateKey, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return m.registry.Dates(), nil
}

// Close is a no-op; the registry is released with the Memory value.
func (m *Memory) Close() error {
	return nil
}
