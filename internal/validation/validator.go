package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"day-planner/internal/config"
)

// Default limits used when no configuration is supplied
const (
	DefaultTaskNameMinLength    = 1
	DefaultTaskNameMaxLength    = 255
	DefaultDescriptionMaxLength = 1024
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance using the default limits
func NewValidator() *Validator {
	return &Validator{}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{config: cfg}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if the trimmed string has between min and max
// characters. A max of zero means no upper limit.
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := utf8.RuneCountInString(strings.TrimSpace(s))
	return length >= min && (max <= 0 || length <= max)
}

// IsValidTaskNameLength checks if a task name length is within configured limits
func (v *Validator) IsValidTaskNameLength(name string) bool {
	return v.IsValidStringLength(name, v.TaskNameMinLength(), v.TaskNameMaxLength())
}

// IsValidDescriptionLength checks a description against the configured maximum
func (v *Validator) IsValidDescriptionLength(description string) bool {
	return v.IsValidStringLength(description, 0, v.DescriptionMaxLength())
}

// HasNoControlCharacters reports whether s is valid UTF-8 without control
// characters such as newlines and tabs.
func (v *Validator) HasNoControlCharacters(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// TaskNameMinLength returns configured minimum task name length or default
func (v *Validator) TaskNameMinLength() int {
	if v.config != nil {
		return v.config.Validation.TaskNameMinLength
	}
	return DefaultTaskNameMinLength
}

// TaskNameMaxLength returns configured maximum task name length or default
func (v *Validator) TaskNameMaxLength() int {
	if v.config != nil {
		return v.config.Validation.TaskNameMaxLength
	}
	return DefaultTaskNameMaxLength
}

// DescriptionMaxLength returns configured maximum description length or default.
// Zero means unlimited.
func (v *Validator) DescriptionMaxLength() int {
	if v.config != nil {
		return v.config.Validation.DescriptionMaxLength
	}
	return DefaultDescriptionMaxLength
}
