package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateKeyLayout is the layout of a DateKey: an ISO calendar date.
const DateKeyLayout = "2006-01-02"

// MinYear and MaxYear bound the timestamps a DateKey and a stored task time
// can represent: four-digit years only.
const (
	MinYear = 0
	MaxYear = 9999
)

// DateKey is the normalized calendar day a task is filed under.
// Keys compare and sort as plain strings, which keeps them usable as map
// keys and keeps lexical order equal to chronological order.
type DateKey string

// String returns the key as YYYY-MM-DD.
func (k DateKey) String() string {
	return string(k)
}

// ParseDateKey validates s as a YYYY-MM-DD key.
func ParseDateKey(s string) (DateKey, error) {
	if _, err := time.Parse(DateKeyLayout, s); err != nil {
		return "", &InvalidDateError{Field: "date", Input: s, Reason: "expected YYYY-MM-DD"}
	}
	return DateKey(s), nil
}

// InvalidDateError reports date or time input that cannot be turned into a DateKey.
type InvalidDateError struct {
	Field  string
	Input  string
	Reason string
}

// Error implements the error interface for InvalidDateError
func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Input, e.Reason)
}

// dateLayouts are tried in order when parsing date input without a zone.
var dateLayouts = []string{
	DateKeyLayout,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// timeOfDayLayouts are tried in order against upper-cased input.
var timeOfDayLayouts = []string{
	"15:04",
	"15:04:05",
	"3:04PM",
	"3:04 PM",
	"3PM",
	"3 PM",
}

// Normalizer maps timestamps onto DateKeys in a fixed reference location.
// The location is chosen at construction and never changes.
type Normalizer struct {
	loc *time.Location
}

// NewNormalizer creates a Normalizer for loc. A nil loc means time.Local.
func NewNormalizer(loc *time.Location) *Normalizer {
	if loc == nil {
		loc = time.Local
	}
	return &Normalizer{loc: loc}
}

// Location returns the reference location used for every key.
func (n *Normalizer) Location() *time.Location {
	return n.loc
}

// Key returns the calendar day of t in the reference location.
func (n *Normalizer) Key(t time.Time) DateKey {
	return DateKey(t.In(n.loc).Format(DateKeyLayout))
}

// CheckRange returns an InvalidDateError for field when t falls outside
// MinYear..MaxYear, either in its own location or in the reference location.
func (n *Normalizer) CheckRange(field string, t time.Time) error {
	if inYearRange(t.Year()) && inYearRange(t.In(n.loc).Year()) {
		return nil
	}
	return &InvalidDateError{
		Field:  field,
		Input:  t.Format(time.RFC3339Nano),
		Reason: fmt.Sprintf("year must be between %04d and %04d", MinYear, MaxYear),
	}
}

func inYearRange(year int) bool {
	return year >= MinYear && year <= MaxYear
}

// Day returns midnight of key's calendar day in the reference location.
func (n *Normalizer) Day(key DateKey) (time.Time, error) {
	t, err := time.ParseInLocation(DateKeyLayout, string(key), n.loc)
	if err != nil {
		return time.Time{}, &InvalidDateError{Field: "date", Input: string(key), Reason: "expected YYYY-MM-DD"}
	}
	return t, nil
}

// ParseDate parses user date input. The words today, tomorrow and yesterday
// resolve against now; layouts without a zone are read in the reference location.
func (n *Normalizer) ParseDate(input string, now time.Time) (time.Time, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return time.Time{}, &InvalidDateError{Field: "date", Input: input, Reason: "date is required"}
	}

	today := now.In(n.loc)
	switch strings.ToLower(s) {
	case "today":
		return startOfDay(today), nil
	case "tomorrow":
		return startOfDay(today.AddDate(0, 0, 1)), nil
	case "yesterday":
		return startOfDay(today.AddDate(0, 0, -1)), nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, n.loc); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}

	return time.Time{}, &InvalidDateError{
		Field:  "date",
		Input:  input,
		Reason: "expected YYYY-MM-DD, YYYY-MM-DDTHH:MM, RFC3339, today, tomorrow or yesterday",
	}
}

// ParseTimeOfDay parses a clock time such as 09:00 or 5:30pm and places it on
// day's calendar date in the reference location.
func (n *Normalizer) ParseTimeOfDay(day time.Time, input string) (time.Time, error) {
	s := strings.ToUpper(strings.TrimSpace(input))
	if s == "" {
		return time.Time{}, &InvalidDateError{Field: "time", Input: input, Reason: "time is required"}
	}

	for _, layout := range timeOfDayLayouts {
		clock, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		d := day.In(n.loc)
		return time.Date(d.Year(), d.Month(), d.Day(), clock.Hour(), clock.Minute(), clock.Second(), 0, n.loc), nil
	}

	return time.Time{}, &InvalidDateError{Field: "time", Input: input, Reason: "expected HH:MM, HH:MM:SS or H:MMpm"}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
