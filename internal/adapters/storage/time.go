package storage

import (
	"fmt"
	"time"
)

// timeLayout is the canonical storage format for timestamps.
const timeLayout = "2006-01-02T15:04:05.999999999Z07:00"

// FormatTime renders a timestamp in the canonical storage format.
func FormatTime(t time.Time) string {
	return t.Format(timeLayout)
}

// ParseTime parses a stored timestamp, tolerating the formats older
// rows were written with.
func ParseTime(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse time: %s", s)
}
