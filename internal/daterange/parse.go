package daterange

import (
	"fmt"
	"strings"
	"time"
)

// ParseDate parses a date expression relative to the current time.
func ParseDate(s string) (*time.Time, error) {
	return parseDate(s, time.Now())
}

// parseDate parses a date expression relative to now.
// Supports: "today", "tomorrow", "monday", "next tuesday",
// "2024-01-15", "Jan 2", "Jan 2 2006", "January 2", "January 2 2006",
// "2 Jan", "2 Jan 2006", "2 January", "2 January 2006".
func parseDate(s string, now time.Time) (*time.Time, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	// Relative dates
	switch s {
	case "today":
		d := truncateToDay(now)
		return &d, nil
	case "tomorrow":
		d := truncateToDay(now).AddDate(0, 0, 1)
		return &d, nil
	}

	// Weekday names (with optional "next " prefix)
	cleaned := strings.TrimPrefix(s, "next ")
	if wd, ok := parseWeekdayName(cleaned); ok {
		d := nextWeekday(now, wd)
		return &d, nil
	}

	// Absolute date formats. Layout month tokens must be the capitalized
	// reference forms; the lowercased input still matches because Go's
	// name scanning ignores case.
	layouts := []string{
		"2006-01-02",
		"Jan 2",
		"Jan 2 2006",
		"January 2",
		"January 2 2006",
		"2 Jan",
		"2 Jan 2006",
		"2 January",
		"2 January 2006",
	}

	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			// For layouts without a year, use the current year
			if !strings.Contains(layout, "2006") {
				t = time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			}
			return &t, nil
		}
	}

	return nil, fmt.Errorf("unrecognized date %q", s)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday maps a weekday name (case-insensitive) to its time.Weekday.
func ParseWeekday(s string) (time.Weekday, error) {
	wd, ok := parseWeekdayName(strings.TrimSpace(strings.ToLower(s)))
	if !ok {
		return 0, fmt.Errorf("unrecognized weekday %q", s)
	}
	return wd, nil
}

func parseWeekdayName(s string) (time.Weekday, bool) {
	wd, ok := weekdayNames[s]
	return wd, ok
}

// nextWeekday returns the next occurrence of the given weekday after now.
// If now is that weekday, it returns the following week.
func nextWeekday(now time.Time, wd time.Weekday) time.Time {
	today := truncateToDay(now)
	daysAhead := int(wd) - int(today.Weekday())
	if daysAhead <= 0 {
		daysAhead += 7
	}
	return today.AddDate(0, 0, daysAhead)
}

// ParseRangeExpr parses a "START..END" expression into a Range.
func ParseRangeExpr(s string) (Range, error) {
	parts := strings.SplitN(s, "..", 2)
	if len(parts) != 2 {
		return Range{}, fmt.Errorf("invalid range %q, expected START..END", s)
	}
	return Parse(parts[0], parts[1])
}
