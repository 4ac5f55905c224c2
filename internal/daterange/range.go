package daterange

import (
	"errors"
	"fmt"
	"time"
)

// ErrEndBeforeStart is returned when a range's end date precedes its start.
var ErrEndBeforeStart = errors.New("end date is before start date")

// Range is an inclusive calendar date range. Both bounds are stored at UTC
// midnight.
type Range struct {
	Start time.Time
	End   time.Time
}

// New builds a Range from two timestamps, truncating both to UTC midnight.
// Returns ErrEndBeforeStart when end < start.
func New(start, end time.Time) (Range, error) {
	s := truncateToDay(start)
	e := truncateToDay(end)
	if e.Before(s) {
		return Range{}, fmt.Errorf("%w: %s > %s", ErrEndBeforeStart, ymd(s), ymd(e))
	}
	return Range{Start: s, End: e}, nil
}

// Parse builds a Range from two date expressions (see ParseDate).
func Parse(startStr, endStr string) (Range, error) {
	start, err := ParseDate(startStr)
	if err != nil {
		return Range{}, fmt.Errorf("start date: %w", err)
	}
	end, err := ParseDate(endStr)
	if err != nil {
		return Range{}, fmt.Errorf("end date: %w", err)
	}
	return New(*start, *end)
}

// Days returns the inclusive number of calendar days in the range.
func (r Range) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// Contains reports whether t (truncated to its date) falls within the range.
func (r Range) Contains(t time.Time) bool {
	d := truncateToDay(t)
	return !d.Before(r.Start) && !d.After(r.End)
}

// Label returns a human-readable description of the range, used for document
// headings and default file names.
func (r Range) Label() string {
	if r.Start.Equal(r.End) {
		return r.Start.Format("January 2, 2006")
	}
	return fmt.Sprintf("%s — %s", r.Start.Format("January 2, 2006"), r.End.Format("January 2, 2006"))
}

func (r Range) String() string {
	return ymd(r.Start) + ".." + ymd(r.End)
}

func ymd(t time.Time) string {
	return t.Format("2006-01-02")
}
