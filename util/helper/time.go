package helper_util

import (
	"fmt"
	"time"
)

// Helper function to parse time
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	return t, err
}

// ParseDate parses a calendar date in YYYY-MM-DD form.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// FormatHumanTime renders a timestamp the way it appears in notification
// messages, e.g. "11:30 PM on Jan 2, 2006".
func FormatHumanTime(t time.Time) string {
	return t.Format("3:04 PM on Jan 2, 2006")
}
