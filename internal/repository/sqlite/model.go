package sqlite

import "time"

// Task is a row of the tasks table.
// DateKey is the normalized YYYY-MM-DD day the task is filed under.
type Task struct {
	ID          int64
	DateKey     string
	Name        string
	TaskTime    time.Time
	Description string
}
