package sqlite

import (
	"context"
	"database/sql"

	"day-planner/internal/errors"
)

// HandleDatabaseError converts database errors to structured app errors.
// Context deadlines and cancellations become timeout errors.
func HandleDatabaseError(operation string, err error) error {
	if errors.IsDeadline(err) {
		timeoutErr := errors.NewTimeoutError(operation, nil)
		timeoutErr.Cause = err
		return timeoutErr
	}
	return errors.NewDatabaseError(operation, err)
}

// ExecuteWithLastInsertID executes a query and returns the last insert ID
func ExecuteWithLastInsertID(ctx context.Context, db *sql.DB, query string, args ...interface{}) (int64, error) {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, HandleDatabaseError("execute query", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, HandleDatabaseError("get last insert ID", err)
	}

	return id, nil
}

// QueryMultiple executes a query that returns multiple rows and scans them
func QueryMultiple[T any](ctx context.Context, db *sql.DB, query string, scanFunc func(Rows) ([]T, error), entityType string, args ...interface{}) ([]T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, HandleDatabaseError("query "+entityType, err)
	}
	defer rows.Close()

	results, err := scanFunc(rows)
	if err != nil {
		return nil, HandleDatabaseError("scan "+entityType, err)
	}

	return results, nil
}
