package normalize

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

const isoDateLayout = "2006-01-02"

// NormalizeDate parses a heterogeneous date string and returns the UTC calendar
// date portion (YYYY-MM-DD). Inputs without an explicit zone are read as UTC;
// inputs carrying an offset are converted to UTC first, so the day may shift.
func NormalizeDate(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", &InvalidFormatError{Field: "date", Input: input}
	}

	parsed, err := dateparse.ParseIn(trimmed, time.UTC)
	if err != nil {
		return "", &InvalidFormatError{Field: "date", Input: input}
	}

	return parsed.UTC().Format(isoDateLayout), nil
}
