package domain

import "time"

// Task represents a single user task in the domain model.
// This is a pure domain model without storage-specific concerns.
type Task struct {
	Name        string
	Time        time.Time
	Description string
}

// NewTask creates a new Task with the given fields.
func NewTask(name string, at time.Time, description string) Task {
	return Task{
		Name:        name,
		Time:        at,
		Description: description,
	}
}

// Equal reports whether two tasks carry the same name, instant and description.
// Time is compared with time.Time.Equal so the location does not matter.
func (t Task) Equal(other Task) bool {
	return t.Name == other.Name &&
		t.Description == other.Description &&
		t.Time.Equal(other.Time)
}

// String returns the task name for display purposes.
func (t Task) String() string {
	return t.Name
}
