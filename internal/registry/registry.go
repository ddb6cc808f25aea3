// Package registry holds the in-memory, date-indexed task registry.
//
// A TaskRegistry files every task under the DateKey of the timestamp it was
// added with. Keys come from a domain.Normalizer whose reference location is
// fixed at construction, so all timestamps on one calendar day in that
// location share a key. The registry lives as long as its owner holds it;
// nothing is persisted.
package registry

import (
	"sort"
	"sync"
	"time"

	"day-planner/internal/domain"
)

// TaskRegistry maps each DateKey to its tasks in insertion order.
// Every key present in the map has at least one task.
type TaskRegistry struct {
	normalizer  *domain.Normalizer
	mu          sync.RWMutex
	tasksByDate map[domain.DateKey][]domain.Task
}

// New creates an empty registry normalizing with n.
// A nil n normalizes in time.Local.
func New(n *domain.Normalizer) *TaskRegistry {
	if n == nil {
		n = domain.NewNormalizer(nil)
	}
	return &TaskRegistry{
		normalizer:  n,
		tasksByDate: make(map[domain.DateKey][]domain.Task),
	}
}

// Normalizer returns the normalizer the registry files tasks with.
func (r *TaskRegistry) Normalizer() *domain.Normalizer {
	return r.normalizer
}

// AddTask appends task to the tasks of date's calendar day.
// No validation is performed; empty names and descriptions are stored as given.
func (r *TaskRegistry) AddTask(date time.Time, task domain.Task) {
	r.AddTaskForKey(r.normalizer.Key(date), task)
}

// AddTaskForKey appends task under an already normalized key.
func (r *TaskRegistry) AddTaskForKey(key domain.DateKey, task domain.Task) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasksByDate[key] = append(r.tasksByDate[key], task)
}

// GetTasksForDate returns the tasks of date's calendar day in insertion order.
// The result is a copy and is never nil.
func (r *TaskRegistry) GetTasksForDate(date time.Time) []domain.Task {
	return r.TasksForKey(r.normalizer.Key(date))
}

// TasksForKey returns a copy of the tasks filed under key, never nil.
func (r *TaskRegistry) TasksForKey(key domain.DateKey) []domain.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := r.tasksByDate[key]
	out := make([]domain.Task, len(tasks))
	copy(out, tasks)
	return out
}

// Dates returns every key that has tasks, oldest first.
func (r *TaskRegistry) Dates() []domain.DateKey {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]domain.DateKey, 0, len(r.tasksByDate))
	for key := range r.tasksByDate {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Len returns the number of tasks across all days.
func (r *TaskRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, tasks := range r.tasksByDate {
		n += len(tasks)
	}
	return n
}
