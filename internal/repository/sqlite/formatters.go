package sqlite

import (
	"time"
)

// FormatTimeForDB formats a time.Time value as RFC3339 with nanoseconds for consistent database storage
func FormatTimeForDB(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

// ParseTimeFromDB parses an RFC3339 formatted time string from the database.
// Fractional seconds are optional.
func ParseTimeFromDB(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
