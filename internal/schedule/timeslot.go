package schedule

import (
	"strings"
	"time"
)

const (
	// DateLayout is the canonical date form used in storage and APIs.
	DateLayout = "2006-01-02"
	// TimeLayout is the canonical 24-hour time form. Every slot time is
	// normalized to it at the boundary; there is no dual-format lookup.
	TimeLayout = "15:04"

	clockLayout12 = "3:04 PM"
)

// GridTimes are the bookable wall-clock times of one facility-day,
// already in canonical form. Nine per day, skipping the 13:00 hour.
var GridTimes = []string{
	"09:00", "10:00", "11:00", "12:00",
	"14:00", "15:00", "16:00", "17:00", "18:00",
}

// ParseTime normalizes a wall-clock string to canonical 24-hour "HH:MM".
// It accepts either the canonical form or a 12-hour label like "9:00 AM".
// Anything else fails with ErrInvalidTimeFormat; unparsable values are
// never passed through.
func ParseTime(s string) (string, error) {
	trimmed := strings.TrimSpace(s)

	if t, err := time.Parse(TimeLayout, trimmed); err == nil {
		return t.Format(TimeLayout), nil
	}
	if t, err := time.Parse(clockLayout12, strings.ToUpper(trimmed)); err == nil {
		return t.Format(TimeLayout), nil
	}

	return "", ErrInvalidTimeFormat
}

// Format12Hour converts a canonical "HH:MM" time to a 12-hour display
// label such as "2:00 PM".
func Format12Hour(canonical string) (string, error) {
	t, err := time.Parse(TimeLayout, strings.TrimSpace(canonical))
	if err != nil {
		return "", ErrInvalidTimeFormat
	}
	return t.Format(clockLayout12), nil
}

// ParseDate validates a date string against the canonical layout.
func ParseDate(s string) (string, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return "", ErrInvalidDateFormat
	}
	return t.Format(DateLayout), nil
}
