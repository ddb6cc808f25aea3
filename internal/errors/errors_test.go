package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

// dateErr stands in for a parser error carrying its own type.
type dateErr struct{ input string }

func (e *dateErr) Error() string { return fmt.Sprintf("invalid date %q", e.input) }

func TestNewValidationError(t *testing.T) {
	cause := errors.New("field is required")
	err := NewValidationError("validation failed", cause)

	if err.Type != ErrorTypeValidation {
		t.Errorf("NewValidationError type = %v, want %v", err.Type, ErrorTypeValidation)
	}
	if err.Message != "validation failed" {
		t.Errorf("NewValidationError message = %v, want %v", err.Message, "validation failed")
	}
	if err.Code != "VALIDATION_FAILED" {
		t.Errorf("NewValidationError code = %v, want %v", err.Code, "VALIDATION_FAILED")
	}
	if err.Cause != cause {
		t.Errorf("NewValidationError cause = %v, want %v", err.Cause, cause)
	}
}

func TestNewInvalidInputError(t *testing.T) {
	err := NewInvalidInputError("command", "frobnicate", "unknown command")

	if err.Type != ErrorTypeInvalidInput {
		t.Errorf("NewInvalidInputError type = %v, want %v", err.Type, ErrorTypeInvalidInput)
	}
	if err.Message != "invalid input for command: unknown command" {
		t.Errorf("NewInvalidInputError message = %v", err.Message)
	}
	if err.Code != "INVALID_INPUT" {
		t.Errorf("NewInvalidInputError code = %v, want %v", err.Code, "INVALID_INPUT")
	}

	value, ok := err.GetContext("value")
	if !ok || value != "frobnicate" {
		t.Errorf("NewInvalidInputError should set value context")
	}
}

func TestNewInvalidDateError(t *testing.T) {
	cause := &dateErr{input: "soon"}
	err := NewInvalidDateError("soon", cause)

	if err.Type != ErrorTypeInvalidDate {
		t.Errorf("NewInvalidDateError type = %v, want %v", err.Type, ErrorTypeInvalidDate)
	}
	if err.Code != "INVALID_DATE" {
		t.Errorf("NewInvalidDateError code = %v, want %v", err.Code, "INVALID_DATE")
	}
	if err.Message != `invalid date "soon"` {
		t.Errorf("NewInvalidDateError message = %v", err.Message)
	}

	var target *dateErr
	if !errors.As(err, &target) || target != cause {
		t.Errorf("NewInvalidDateError should keep the cause reachable through errors.As")
	}

	input, ok := err.GetContext("input")
	if !ok || input != "soon" {
		t.Errorf("NewInvalidDateError should set input context")
	}

	noCause := NewInvalidDateError("later", nil)
	if noCause.Message != `invalid date: "later"` {
		t.Errorf("NewInvalidDateError without cause message = %v", noCause.Message)
	}
}

func TestNewDatabaseError(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := NewDatabaseError("insert task", cause)

	if err.Type != ErrorTypeDatabase {
		t.Errorf("NewDatabaseError type = %v, want %v", err.Type, ErrorTypeDatabase)
	}
	if err.Message != "database operation failed: insert task" {
		t.Errorf("NewDatabaseError message = %v", err.Message)
	}
	if err.Cause != cause {
		t.Errorf("NewDatabaseError cause = %v, want %v", err.Cause, cause)
	}

	operation, ok := err.GetContext("operation")
	if !ok || operation != "insert task" {
		t.Errorf("NewDatabaseError should set operation context")
	}
}

func TestNewTimeoutError(t *testing.T) {
	err := NewTimeoutError("list tasks", "5s")

	if err.Type != ErrorTypeTimeout {
		t.Errorf("NewTimeoutError type = %v, want %v", err.Type, ErrorTypeTimeout)
	}
	if err.Message != "operation timed out: list tasks" {
		t.Errorf("NewTimeoutError message = %v", err.Message)
	}
	timeout, ok := err.GetContext("timeout")
	if !ok || timeout != "5s" {
		t.Errorf("NewTimeoutError should set timeout context")
	}
}

func TestWrapError(t *testing.T) {
	cause := errors.New("boom")
	err := WrapError(cause, ErrorTypeDatabase, "wrapped")

	if err.Code != "database" {
		t.Errorf("WrapError code = %v, want %v", err.Code, "database")
	}
	if !errors.Is(err, cause) {
		t.Errorf("WrapError should keep the cause")
	}
}

func TestIsAppError(t *testing.T) {
	if !IsAppError(fmt.Errorf("outer: %w", NewValidationError("x", nil))) {
		t.Errorf("IsAppError should find a wrapped AppError")
	}
	if IsAppError(errors.New("plain")) {
		t.Errorf("IsAppError should be false for a plain error")
	}
}

func TestAsAppError(t *testing.T) {
	original := NewTimeoutError("query", "1s")
	appErr, ok := AsAppError(fmt.Errorf("outer: %w", original))
	if !ok || appErr != original {
		t.Errorf("AsAppError should return the wrapped AppError")
	}

	_, ok = AsAppError(errors.New("plain"))
	if ok {
		t.Errorf("AsAppError should be false for a plain error")
	}
}

func TestIsErrorType(t *testing.T) {
	err := NewInvalidDateError("x", nil)
	if !IsErrorType(err, ErrorTypeInvalidDate) {
		t.Errorf("IsErrorType should match the error type")
	}
	if IsErrorType(err, ErrorTypeDatabase) {
		t.Errorf("IsErrorType should not match a different type")
	}
	if IsErrorType(errors.New("plain"), ErrorTypeValidation) {
		t.Errorf("IsErrorType should be false for a plain error")
	}
}

func TestIsDeadline(t *testing.T) {
	if !IsDeadline(context.DeadlineExceeded) {
		t.Errorf("IsDeadline should match context.DeadlineExceeded")
	}
	if !IsDeadline(fmt.Errorf("query: %w", context.Canceled)) {
		t.Errorf("IsDeadline should match a wrapped context.Canceled")
	}
	if IsDeadline(errors.New("other")) {
		t.Errorf("IsDeadline should not match other errors")
	}
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Validation error",
			err:      NewValidationError("invalid input", nil),
			expected: "invalid input",
		},
		{
			name:     "Invalid input error",
			err:      NewInvalidInputError("command", "x", "unknown command"),
			expected: "invalid input for command: unknown command",
		},
		{
			name:     "Invalid date error",
			err:      NewInvalidDateError("soon", &dateErr{input: "soon"}),
			expected: `invalid date "soon"`,
		},
		{
			name:     "Database error",
			err:      NewDatabaseError("query", errors.New("timeout")),
			expected: "A database error occurred. Please try again.",
		},
		{
			name:     "Timeout error",
			err:      NewTimeoutError("query", "5s"),
			expected: "The operation timed out. Please try again.",
		},
		{
			name:     "Regular error",
			err:      errors.New("regular error"),
			expected: "regular error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetUserMessage(tt.err)
			if result != tt.expected {
				t.Errorf("GetUserMessage() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if GetErrorCode(NewInvalidDateError("x", nil)) != "INVALID_DATE" {
		t.Errorf("GetErrorCode should return correct code for AppError")
	}
	if GetErrorCode(errors.New("regular error")) != "UNKNOWN_ERROR" {
		t.Errorf("GetErrorCode should return UNKNOWN_ERROR for regular error")
	}
}

func TestShouldLogError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"Validation error", NewValidationError("invalid input", nil), false},
		{"Invalid input error", NewInvalidInputError("date", "x", "format"), false},
		{"Invalid date error", NewInvalidDateError("x", nil), false},
		{"Database error", NewDatabaseError("query", errors.New("timeout")), true},
		{"Timeout error", NewTimeoutError("query", "5s"), true},
		{"Regular error", errors.New("regular error"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ShouldLogError(tt.err)
			if result != tt.expected {
				t.Errorf("ShouldLogError() = %v, want %v", result, tt.expected)
			}
		})
	}
}
