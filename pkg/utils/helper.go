package utils

import (
	"strconv"
	"strings"
	"time"
)

// ParseInt converts a query value to int, falling back to def when the value
// is missing, malformed, or below min.
func ParseInt(value string, def, min int) int {
	if value == "" {
		return def
	}

	result, err := strconv.Atoi(value)
	if err != nil || result < min {
		return def
	}

	return result
}

// ParseFloat converts a query value to float64; ok is false when the value is
// missing or malformed.
func ParseFloat(value string) (float64, bool) {
	if value == "" {
		return 0, false
	}

	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}

	return result, true
}

// ParseDate parses a YYYY-MM-DD query value; ok is false when missing or
// malformed.
func ParseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}

	result, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, false
	}

	return result, true
}

// SplitCSV splits a comma-separated query value, trimming blanks.
func SplitCSV(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
