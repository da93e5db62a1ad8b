package timeutil

import "time"

// CompactTime layouts accepted for calendar deep-link date tokens,
// e.g. 20250101T090000Z as consumed by the Google Calendar render URL.
var compactLayouts = []string{
	"20060102T150405Z",
	"20060102T150405",
}

// DayStart truncates a timestamp to midnight in its own location. The result
// is used purely as a calendar-day equality/ordering key.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsSameDay reports whether two timestamps fall on the same calendar day
func IsSameDay(a, b time.Time) bool {
	return DayStart(a).Equal(DayStart(b))
}

// IsYesterday reports whether a falls exactly one calendar day before b
func IsYesterday(a, b time.Time) bool {
	return DayStart(a).AddDate(0, 0, 1).Equal(DayStart(b))
}

// IsCompactTime reports whether s is a compact calendar date-time token
// (YYYYMMDDTHHMMSS with optional trailing Z)
func IsCompactTime(s string) bool {
	for _, layout := range compactLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}
