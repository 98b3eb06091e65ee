package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	clock24Pattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	clock12Pattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*(AM|PM)$`)
)

// NormalizeTime converts "H:MM", "HH:MM", "H:MM AM" or "HH:MM PM" (meridiem is
// case-insensitive, the space before it optional) into 24-hour "HH:MM".
func NormalizeTime(input string) (string, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(input))

	if m := clock24Pattern.FindStringSubmatch(trimmed); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		if hours > 23 || minutes > 59 {
			return "", &InvalidFormatError{Field: "time", Input: input}
		}
		return formatClock(hours, minutes), nil
	}

	if m := clock12Pattern.FindStringSubmatch(trimmed); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		if hours < 1 || hours > 12 || minutes > 59 {
			return "", &InvalidFormatError{Field: "time", Input: input}
		}

		switch {
		case m[3] == "PM" && hours != 12:
			hours += 12
		case m[3] == "AM" && hours == 12:
			hours = 0
		}
		return formatClock(hours, minutes), nil
	}

	return "", &InvalidFormatError{Field: "time", Input: input}
}

func formatClock(hours, minutes int) string {
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}
