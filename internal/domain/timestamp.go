package domain

import (
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is the wall-clock layout used for human-facing output.
const TimestampLayout = "2006-01-02T15:04:05"

// localLayouts carry no zone and are interpreted in the caller's location.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseTimestamp parses s as RFC 3339 or as a zone-less wall-clock time in loc.
// RFC 3339 input keeps its own offset.
func ParseTimestamp(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrMissingTimestamp
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}

	if loc == nil {
		loc = time.Local
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
}

// FormatTimestamp renders t with its weekday, e.g. "2024-07-09T14:00:00 (Tuesday)".
func FormatTimestamp(t time.Time) string {
	return fmt.Sprintf("%s (%s)", t.Format(TimestampLayout), t.Weekday())
}
