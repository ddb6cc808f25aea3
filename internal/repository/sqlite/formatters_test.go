package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimeForDB(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{
			name:     "Valid time",
			input:    time.Date(2024, 1, 15, 10, 30, 45, 0, time.UTC),
			expected: "2024-01-15T10:30:45Z",
		},
		{
			name:     "Zero time",
			input:    time.Time{},
			expected: "0001-01-01T00:00:00Z",
		},
		{
			name:     "Time with timezone",
			input:    time.Date(2024, 6, 15, 14, 30, 0, 0, time.FixedZone("EST", -5*3600)),
			expected: "2024-06-15T14:30:00-05:00",
		},
		{
			name:     "Time with nanoseconds",
			input:    time.Date(2024, 3, 10, 9, 15, 30, 123456789, time.UTC),
			expected: "2024-03-10T09:15:30.123456789Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatTimeForDB(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseTimeFromDB(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    time.Time
		expectError bool
	}{
		{
			name:     "Whole seconds",
			input:    "2024-01-15T10:30:45Z",
			expected: time.Date(2024, 1, 15, 10, 30, 45, 0, time.UTC),
		},
		{
			name:     "Nanoseconds",
			input:    "2024-03-10T09:15:30.123456789Z",
			expected: time.Date(2024, 3, 10, 9, 15, 30, 123456789, time.UTC),
		},
		{
			name:     "Offset",
			input:    "2024-06-15T14:30:00-05:00",
			expected: time.Date(2024, 6, 15, 19, 30, 0, 0, time.UTC),
		},
		{
			name:        "Date only",
			input:       "2024-06-15",
			expectError: true,
		},
		{
			name:        "Empty",
			input:       "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseTimeFromDB(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(result), "expected %v, got %v", tt.expected, result)
		})
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	at := time.Date(2024, 11, 3, 1, 30, 0, 42, time.FixedZone("", -4*3600))

	parsed, err := ParseTimeFromDB(FormatTimeForDB(at))
	require.NoError(t, err)
	assert.True(t, at.Equal(parsed))
	assert.Equal(t, FormatTimeForDB(at), FormatTimeForDB(parsed))
}
