package cli

import (
	"fmt"

	"day-planner/internal/errors"
	"day-planner/internal/validation"
)

// ErrorHandler provides centralized error handling for session commands
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle provides user-friendly error messages for validation and other errors
func (eh *ErrorHandler) Handle(operation string, err error) error {
	return fmt.Errorf("failed to %s: %s", operation, eh.Message(err))
}

// HandleSimple provides user-friendly error messages without operation context
func (eh *ErrorHandler) HandleSimple(err error) error {
	return fmt.Errorf("%s", eh.Message(err))
}

// Message returns the text shown to the user for err
func (eh *ErrorHandler) Message(err error) string {
	if _, ok := errors.AsAppError(err); ok {
		return errors.GetUserMessage(err)
	}

	if validationErr, ok := validation.AsValidationError(err); ok {
		return validationErr.GetUserFriendlyMessage()
	}

	return err.Error()
}

// IsValidationError checks if an error is a validation error
func (eh *ErrorHandler) IsValidationError(err error) bool {
	if validation.IsValidationError(err) {
		return true
	}
	return errors.IsErrorType(err, errors.ErrorTypeValidation)
}

// IsInvalidDateError checks if an error came from unparseable date or time input
func (eh *ErrorHandler) IsInvalidDateError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeInvalidDate)
}

// IsDatabaseError checks if an error is a database error
func (eh *ErrorHandler) IsDatabaseError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeDatabase)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}
