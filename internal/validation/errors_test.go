package validation

import (
	"fmt"
	"strings"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name        string
		errors      []FieldError
		expectError string
		contains    bool
	}{
		{"No errors", []FieldError{}, "validation error", false},
		{"Single error", []FieldError{{Field: "task_name", Message: "task_name is required"}}, "validation error for field 'task_name': task_name is required", false},
		{"Multiple errors", []FieldError{
			{Field: "task_name", Message: "task_name is required"},
			{Field: "description", Message: "description contains invalid characters"},
		}, "multiple validation errors", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := &ValidationError{Errors: tt.errors}
			result := ve.Error()

			if tt.contains {
				if !strings.Contains(result, tt.expectError) {
					t.Errorf("ValidationError.Error() = %v, expected to contain %v", result, tt.expectError)
				}
			} else if result != tt.expectError {
				t.Errorf("ValidationError.Error() = %v, expected %v", result, tt.expectError)
			}
		})
	}
}

func TestValidationError_ErrOrNil(t *testing.T) {
	ve := NewValidationError()
	if err := ve.ErrOrNil(); err != nil {
		t.Errorf("ErrOrNil() = %v, expected nil for empty error", err)
	}

	ve.AddRequiredError("task_name")
	if err := ve.ErrOrNil(); err != ve {
		t.Errorf("ErrOrNil() = %v, expected the ValidationError itself", err)
	}
}

func TestValidationError_Merge(t *testing.T) {
	first := NewValidationError()
	first.AddRequiredError("task_name")

	second := NewValidationError()
	second.AddInvalidCharacterError("description", "a\tb")

	merged := NewValidationError()
	merged.Merge(first)
	merged.Merge(fmt.Errorf("wrapped: %w", second))
	merged.Merge(nil)
	merged.Merge(fmt.Errorf("unrelated"))

	if len(merged.Errors) != 2 {
		t.Fatalf("Expected 2 merged errors, got %d", len(merged.Errors))
	}
	if merged.Errors[0].Field != "task_name" || merged.Errors[1].Field != "description" {
		t.Errorf("Merged errors out of order: %+v", merged.Errors)
	}
}

func TestValidationError_AddRequiredError(t *testing.T) {
	ve := NewValidationError()

	ve.AddRequiredError("task_name")

	if len(ve.Errors) != 1 {
		t.Fatalf("Expected 1 error, got %d", len(ve.Errors))
	}
	if ve.Errors[0].Type != ErrorTypeRequired {
		t.Errorf("Expected error type %v, got %v", ErrorTypeRequired, ve.Errors[0].Type)
	}
	if ve.Errors[0].Message != "task_name is required" {
		t.Errorf("Unexpected message %q", ve.Errors[0].Message)
	}
}

func TestValidationError_AddInvalidFormatError(t *testing.T) {
	ve := NewValidationError()

	ve.AddInvalidFormatError("time", "25:00", "HH:MM")

	if ve.Errors[0].Type != ErrorTypeInvalidFormat {
		t.Errorf("Expected error type %v, got %v", ErrorTypeInvalidFormat, ve.Errors[0].Type)
	}
	if !strings.Contains(ve.Errors[0].Message, "HH:MM") {
		t.Errorf("Expected message to contain expected format, got %s", ve.Errors[0].Message)
	}
}

func TestValidationError_AddInvalidLengthError(t *testing.T) {
	tests := []struct {
		min, max int
		expected string
	}{
		{2, 50, "between 2 and 50"},
		{2, 0, "at least 2"},
		{0, 50, "at most 50"},
		{0, 0, "invalid length"},
	}

	for _, tt := range tests {
		ve := NewValidationError()
		ve.AddInvalidLengthError("task_name", "a", tt.min, tt.max)

		if ve.Errors[0].Type != ErrorTypeInvalidLength {
			t.Errorf("Expected error type %v, got %v", ErrorTypeInvalidLength, ve.Errors[0].Type)
		}
		if !strings.Contains(ve.Errors[0].Message, tt.expected) {
			t.Errorf("AddInvalidLengthError(%d, %d) message = %s, expected to contain %q", tt.min, tt.max, ve.Errors[0].Message, tt.expected)
		}
	}
}

func TestValidationError_AddInvalidCharacterError(t *testing.T) {
	ve := NewValidationError()

	ve.AddInvalidCharacterError("task_name", "line\nbreak")

	if ve.Errors[0].Type != ErrorTypeInvalidCharacter {
		t.Errorf("Expected error type %v, got %v", ErrorTypeInvalidCharacter, ve.Errors[0].Type)
	}
	if ve.Errors[0].Value != "line\nbreak" {
		t.Errorf("Expected offending value to be kept, got %v", ve.Errors[0].Value)
	}
}

func TestValidationError_GetFieldErrors(t *testing.T) {
	ve := NewValidationError()

	ve.AddInvalidLengthError("task_name", "", 1, 50)
	ve.AddInvalidCharacterError("task_name", "")
	ve.AddInvalidCharacterError("description", "")

	if n := len(ve.GetFieldErrors("task_name")); n != 2 {
		t.Errorf("Expected 2 errors for 'task_name', got %d", n)
	}
	if n := len(ve.GetFieldErrors("description")); n != 1 {
		t.Errorf("Expected 1 error for 'description', got %d", n)
	}
	if n := len(ve.GetFieldErrors("missing")); n != 0 {
		t.Errorf("Expected 0 errors for 'missing', got %d", n)
	}
}

func TestValidationError_GetUserFriendlyMessage(t *testing.T) {
	tests := []struct {
		name     string
		errors   []FieldError
		expected string
	}{
		{"No errors", []FieldError{}, "Input validation failed"},
		{"Single error", []FieldError{{Field: "task_name", Message: "task_name is required"}}, "task_name is required"},
		{"Multiple errors", []FieldError{
			{Field: "task_name", Message: "task_name is required"},
			{Field: "description", Message: "description contains invalid characters"},
		}, "Multiple validation errors occurred:\n- task_name is required\n- description contains invalid characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := &ValidationError{Errors: tt.errors}
			if result := ve.GetUserFriendlyMessage(); result != tt.expected {
				t.Errorf("GetUserFriendlyMessage() = %q, expected %q", result, tt.expected)
			}
		})
	}
}

func TestIsValidationError(t *testing.T) {
	ve := NewValidationError()
	ve.AddRequiredError("task_name")

	if !IsValidationError(ve) {
		t.Errorf("IsValidationError() = false, expected true for ValidationError")
	}
	if !IsValidationError(fmt.Errorf("add task: %w", ve)) {
		t.Errorf("IsValidationError() = false, expected true for wrapped ValidationError")
	}

	regularError := &FieldError{Field: "test", Message: "error"}
	if IsValidationError(regularError) {
		t.Errorf("IsValidationError() = true, expected false for regular error")
	}
}

func TestAsValidationError(t *testing.T) {
	ve := NewValidationError()
	ve.AddRequiredError("task_name")

	got, ok := AsValidationError(fmt.Errorf("add task: %w", ve))
	if !ok || got != ve {
		t.Errorf("AsValidationError() = %v, %v, expected the wrapped ValidationError", got, ok)
	}

	if got, ok := AsValidationError(fmt.Errorf("plain")); ok || got != nil {
		t.Errorf("AsValidationError() = %v, %v, expected nil, false", got, ok)
	}
}

func TestNewValidationError(t *testing.T) {
	ve := NewValidationError()

	if ve.Errors == nil {
		t.Error("NewValidationError() returned ValidationError with nil Errors slice")
	}
	if ve.HasErrors() {
		t.Errorf("NewValidationError() returned ValidationError with %d errors, expected 0", len(ve.Errors))
	}
}
