package tracker

import (
	"strings"
	"time"
)

// DisplayDateLayout is the rendering entries are stored and served with.
const DisplayDateLayout = "Mon Jan 02 2006"

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	DisplayDateLayout,
	"January 2, 2006",
	"Jan 2, 2006",
	"2006/01/02",
}

// NormalizeDate resolves a client-supplied date string to a calendar day.
// Empty or unparseable input falls back to today; entry creation never
// rejects a date.
func NormalizeDate(input string) time.Time {
	if day, ok := ParseDate(input); ok {
		return day
	}
	return truncateToDay(time.Now())
}

// ParseDate attempts a raw parse with no fallback. Query-range bounds go
// through this directly: a bound that does not parse is ignored by the
// caller, not defaulted.
func ParseDate(input string) (time.Time, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, input); err == nil {
			return truncateToDay(t), true
		}
	}

	return time.Time{}, false
}

// FormatDate renders a day for storage and responses.
func FormatDate(t time.Time) string {
	return t.Format(DisplayDateLayout)
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
