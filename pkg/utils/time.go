package utils

import (
	"fmt"
	"time"
)

const dateOnlyLayout = "2006-01-02"

// ParseUserTime parses the time bounds of audit queries. Accepts full
// RFC3339 timestamps or bare YYYY-MM-DD dates; a bare date used as an
// upper bound resolves to the end of that day so the whole day is
// included in the window.
func ParseUserTime(timeStr string, isEndTime bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, timeStr); err == nil {
		return t, nil
	}

	t, err := time.Parse(dateOnlyLayout, timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time format, expected RFC3339 or YYYY-MM-DD, got %s", timeStr)
	}

	if isEndTime {
		t = t.Add(24*time.Hour - time.Second)
	}
	return t, nil
}
