package challenge

import (
	"fmt"
	"strings"
	"time"
)

// ParseTimeSpec parses a wall-clock time with an optional IANA timezone.
// Accepted shapes:
//
//	"21:00"
//	"9:00 PM"
//	"21:00 America/St_Johns"
//	"9:00 PM America/St_Johns"
//
// The timezone defaults to UTC when absent.
func ParseTimeSpec(spec string) (hour, minute int, timezone string, err error) {
	parts := strings.Fields(spec)
	if len(parts) == 0 {
		return 0, 0, "", fmt.Errorf("invalid time format")
	}

	var timePart, tzPart string
	hasMeridiem := len(parts) >= 2 && isMeridiem(parts[1])
	if hasMeridiem {
		timePart = parts[0] + " " + parts[1]
		tzPart = strings.Join(parts[2:], " ")
	} else {
		timePart = parts[0]
		tzPart = strings.Join(parts[1:], " ")
	}
	if tzPart == "" {
		tzPart = "UTC"
	}

	var parsed time.Time
	if hasMeridiem {
		parsed, err = time.Parse("3:04 PM", strings.ToUpper(timePart))
	} else {
		parsed, err = time.Parse("15:04", timePart)
	}
	if err != nil {
		return 0, 0, "", fmt.Errorf("invalid time format")
	}

	if _, err := time.LoadLocation(tzPart); err != nil {
		return 0, 0, "", fmt.Errorf("unknown timezone: %s", tzPart)
	}

	return parsed.Hour(), parsed.Minute(), tzPart, nil
}

func isMeridiem(s string) bool {
	upper := strings.ToUpper(s)
	return upper == "AM" || upper == "PM"
}
