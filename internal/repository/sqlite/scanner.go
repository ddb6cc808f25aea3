package sqlite

import (
	"fmt"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTask scans a single task from a database row
func ScanTask(scanner Scanner) (*Task, error) {
	task := &Task{}
	var taskTime string

	err := scanner.Scan(
		&task.ID,
		&task.DateKey,
		&task.Name,
		&taskTime,
		&task.Description,
	)
	if err != nil {
		return nil, err
	}

	task.TaskTime, err = ParseTimeFromDB(taskTime)
	if err != nil {
		return nil, fmt.Errorf("task %d has malformed task_time %q: %w", task.ID, taskTime, err)
	}

	return task, nil
}

// ScanTasks scans multiple tasks from database rows
func ScanTasks(rows Rows) ([]*Task, error) {
	tasks := []*Task{}
	for rows.Next() {
		task, err := ScanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// ScanDateKeys scans a single string column of date keys
func ScanDateKeys(rows Rows) ([]string, error) {
	keys := []string{}
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return keys, nil
}
