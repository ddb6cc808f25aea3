package validation

import (
	"day-planner/internal/config"
	"day-planner/internal/domain"
)

// TaskValidator checks task fields typed by a user before they reach a store.
// The registry itself accepts any task.
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator with default limits
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithConfig creates a task validator using the configured limits
func NewTaskValidatorWithConfig(cfg *config.Config) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// ValidateTaskName validates a task name
func (tv *TaskValidator) ValidateTaskName(name string) error {
	validationError := NewValidationError()

	trimmedName := tv.validator.TrimAndValidateString(name)

	if !tv.validator.IsNonEmptyString(trimmedName) {
		validationError.AddRequiredError("task_name")
		return validationError
	}

	if !tv.validator.IsValidTaskNameLength(trimmedName) {
		validationError.AddInvalidLengthError("task_name", trimmedName,
			tv.validator.TaskNameMinLength(), tv.validator.TaskNameMaxLength())
	}

	if !tv.validator.HasNoControlCharacters(trimmedName) {
		validationError.AddInvalidCharacterError("task_name", trimmedName)
	}

	return validationError.ErrOrNil()
}

// ValidateDescription validates an optional task description
func (tv *TaskValidator) ValidateDescription(description string) error {
	validationError := NewValidationError()

	if !tv.validator.IsValidDescriptionLength(description) {
		validationError.AddInvalidLengthError("description", description, 0, tv.validator.DescriptionMaxLength())
	}

	if !tv.validator.HasNoControlCharacters(description) {
		validationError.AddInvalidCharacterError("description", description)
	}

	return validationError.ErrOrNil()
}

// ValidateTaskFields validates a name and description together, reporting
// every failing field
func (tv *TaskValidator) ValidateTaskFields(name, description string) error {
	validationError := NewValidationError()
	validationError.Merge(tv.ValidateTaskName(name))
	validationError.Merge(tv.ValidateDescription(description))
	return validationError.ErrOrNil()
}

// ValidateTask validates a domain.Task
func (tv *TaskValidator) ValidateTask(task domain.Task) error {
	validationError := NewValidationError()
	validationError.Merge(tv.ValidateTaskFields(task.Name, task.Description))

	if task.Time.IsZero() {
		validationError.AddRequiredError("time")
	}

	return validationError.ErrOrNil()
}

// GetValidTaskName returns a cleaned task name if valid
func (tv *TaskValidator) GetValidTaskName(name string) (string, error) {
	if err := tv.ValidateTaskName(name); err != nil {
		return "", err
	}
	return tv.validator.TrimAndValidateString(name), nil
}

// GetValidDescription returns a cleaned description if valid
func (tv *TaskValidator) GetValidDescription(description string) (string, error) {
	if err := tv.ValidateDescription(description); err != nil {
		return "", err
	}
	return tv.validator.TrimAndValidateString(description), nil
}
