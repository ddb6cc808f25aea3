package store

import (
	"context"
	stderrors "errors"
	"time"

	"day-planner/internal/domain"
	"day-planner/internal/errors"
	"day-planner/internal/logging"
	"day-planner/internal/repository/sqlite"
)

// SQLite is a Store backed by the SQLite repository.
type SQLite struct {
	repo   sqlite.Repository
	mapper *domain.Mapper
	loc    *time.Location
}

// NewSQLite wraps repo. Loaded task times are converted to loc so they match
// what was appended; a nil loc means time.Local.
func NewSQLite(repo sqlite.Repository, loc *time.Location) *SQLite {
	if loc == nil {
		loc = time.Local
	}
	return &SQLite{
		repo:   repo,
		mapper: domain.NewMapper(),
		loc:    loc,
	}
}

// OpenSQLite opens a private in-memory database with the given timeouts.
func OpenSQLite(opts sqlite.Options, loc *time.Location) (*SQLite, error) {
	repo, err := sqlite.NewWithOptions(sqlite.MemoryDSN, opts)
	if err != nil {
		return nil, err
	}
	return NewSQLite(repo, loc), nil
}

func (s *SQLite) Append(ctx context.Context, key domain.DateKey, task domain.Task) error {
	row := s.mapper.Task.ToDatabase(key, task)
	if err := s.repo.CreateTask(ctx, &row); err != nil {
		return err
	}
	logging.Debugf("stored task %d under %s\n", row.ID, key)
	return nil
}

func (s *SQLite) List(ctx context.Context, key domain.DateKey) ([]domain.Task, error) {
	rows, err := s.repo.ListTasksByDate(ctx, key.String())
	if err != nil {
		return nil, err
	}

	tasks := s.mapper.Task.FromDatabaseSlice(rows)
	for i := range tasks {
		tasks[i].Time = tasks[i].Time.In(s.loc)
	}
	return tasks, nil
}

func (s *SQLite) Keys(ctx context.Context) ([]domain.DateKey, error) {
	keys, err := s.repo.ListDateKeys(ctx)
	if err != nil {
		return nil, err
	}
	dateKeys, err := s.mapper.DateKey.FromDatabaseSlice(keys)
	if err != nil {
		var dateErr *domain.InvalidDateError
		input := ""
		if stderrors.As(err, &dateErr) {
			input = dateErr.Input
		}
		return nil, errors.NewInvalidDateError(input, err)
	}
	return dateKeys, nil
}

// Close closes the database; its contents are discarded.
func (s *SQLite) Close() error {
	return s.repo.Close()
}
