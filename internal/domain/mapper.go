package domain

import (
	"day-planner/internal/repository/sqlite"
)

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task filed under key to a database Task.
func (m *TaskMapper) ToDatabase(key DateKey, domainTask Task) sqlite.Task {
	return sqlite.Task{
		DateKey:     string(key),
		Name:        domainTask.Name,
		TaskTime:    domainTask.Time,
		Description: domainTask.Description,
	}
}

// FromDatabase converts a database Task to a domain Task.
func (m *TaskMapper) FromDatabase(dbTask sqlite.Task) Task {
	return Task{
		Name:        dbTask.Name,
		Time:        dbTask.TaskTime,
		Description: dbTask.Description,
	}
}

// FromDatabaseSlice converts a slice of database Tasks to domain Tasks.
// The result is never nil.
func (m *TaskMapper) FromDatabaseSlice(dbTasks []*sqlite.Task) []Task {
	domainTasks := make([]Task, len(dbTasks))
	for i, task := range dbTasks {
		domainTasks[i] = m.FromDatabase(*task)
	}
	return domainTasks
}

// DateKeyMapper converts stored date_key columns back into DateKeys.
type DateKeyMapper struct{}

// NewDateKeyMapper creates a new DateKeyMapper instance.
func NewDateKeyMapper() *DateKeyMapper {
	return &DateKeyMapper{}
}

// FromDatabaseSlice converts stored keys, rejecting anything that is not YYYY-MM-DD.
func (m *DateKeyMapper) FromDatabaseSlice(keys []string) ([]DateKey, error) {
	result := make([]DateKey, len(keys))
	for i, k := range keys {
		key, err := ParseDateKey(k)
		if err != nil {
			return nil, err
		}
		result[i] = key
	}
	return result, nil
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Task    *TaskMapper
	DateKey *DateKeyMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task:    NewTaskMapper(),
		DateKey: NewDateKeyMapper(),
	}
}
