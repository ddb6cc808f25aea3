package sqlite

import (
	"context"
	"database/sql"
	"time"

	"day-planner/internal/errors"
	"day-planner/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// MemoryDSN opens a private database that disappears when the connection closes.
const MemoryDSN = ":memory:"

// Options holds per-operation timeouts for the repository.
type Options struct {
	QueryTimeout time.Duration
	WriteTimeout time.Duration
}

// DefaultOptions returns the timeouts used by New.
func DefaultOptions() Options {
	return Options{
		QueryTimeout: 10 * time.Second,
		WriteTimeout: 5 * time.Second,
	}
}

// Repository defines the interface for database operations
type Repository interface {
	// Create operations
	CreateTask(ctx context.Context, task *Task) error

	// Read operations
	ListTasksByDate(ctx context.Context, dateKey string) ([]*Task, error)
	ListDateKeys(ctx context.Context) ([]string, error)
	CountTasks(ctx context.Context) (int, error)

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db   *sql.DB
	opts Options
}

// New creates a new SQLite repository instance with default timeouts
func New(dsn string) (*SQLiteRepository, error) {
	return NewWithOptions(dsn, DefaultOptions())
}

// NewWithOptions creates a new SQLite repository instance.
// The pool is pinned to one connection: every connection to :memory: is a
// separate database, and SQLite allows a single writer anyway.
func NewWithOptions(dsn string, opts Options) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db, opts: opts}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateTask inserts a task and sets its ID
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	ctx, cancel := r.withTimeout(ctx, r.opts.WriteTimeout)
	defer cancel()

	query := `
	INSERT INTO tasks (date_key, name, task_time, description)
	VALUES (?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query, task.DateKey, task.Name, FormatTimeForDB(task.TaskTime), task.Description)
	if err != nil {
		return err
	}

	task.ID = id
	return nil
}

// ListTasksByDate retrieves the tasks filed under dateKey in insertion order
func (r *SQLiteRepository) ListTasksByDate(ctx context.Context, dateKey string) ([]*Task, error) {
	ctx, cancel := r.withTimeout(ctx, r.opts.QueryTimeout)
	defer cancel()

	query := `
	SELECT id, date_key, name, task_time, description
	FROM tasks
	WHERE date_key = ?
	ORDER BY id ASC`

	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks", dateKey)
}

// ListDateKeys retrieves every date key that has at least one task, ascending
func (r *SQLiteRepository) ListDateKeys(ctx context.Context) ([]string, error) {
	ctx, cancel := r.withTimeout(ctx, r.opts.QueryTimeout)
	defer cancel()

	query := `SELECT DISTINCT date_key FROM tasks ORDER BY date_key ASC`
	return QueryMultiple(ctx, r.db, query, ScanDateKeys, "date keys")
}

// CountTasks returns the number of stored tasks
func (r *SQLiteRepository) CountTasks(ctx context.Context) (int, error) {
	ctx, cancel := r.withTimeout(ctx, r.opts.QueryTimeout)
	defer cancel()

	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&count); err != nil {
		return 0, HandleDatabaseError("count tasks", err)
	}
	return count, nil
}

func (r *SQLiteRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
