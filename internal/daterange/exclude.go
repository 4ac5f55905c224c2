package daterange

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

// Options controls how a Range is enumerated.
type Options struct {
	// Format is the strftime-style date format applied by FormatDate.
	Format string
	// ExcludedWeekdays are dropped from the enumeration.
	ExcludedWeekdays []time.Weekday
	// ExcludedRanges are sub-ranges whose dates are dropped. They may extend
	// beyond the enumerated range; only the intersection matters.
	ExcludedRanges []Range
	// ExcludedRules are recurrence expressions (natural language or raw
	// RRULE) whose occurrences are dropped.
	ExcludedRules []string
	// MaxDays caps the inclusive day count before exclusions. Zero means
	// no cap.
	MaxDays int
}

// DefaultFormat is the strftime format applied when none is configured.
const DefaultFormat = "%a. %b. %d"

// DefaultExcludedWeekdays returns the factory weekday exclusions.
func DefaultExcludedWeekdays() []time.Weekday {
	return []time.Weekday{time.Saturday, time.Sunday}
}

// Enumerate returns every date in r in ascending order, one per calendar
// day, inclusive of both endpoints, minus the exclusions in opts.
func Enumerate(r Range, opts Options) ([]time.Time, error) {
	if opts.MaxDays > 0 && r.Days() > opts.MaxDays {
		return nil, fmt.Errorf("range spans %d days, maximum allowed is %d", r.Days(), opts.MaxDays)
	}

	excludedWeekdays := make(map[time.Weekday]bool, len(opts.ExcludedWeekdays))
	for _, wd := range opts.ExcludedWeekdays {
		excludedWeekdays[wd] = true
	}

	excludedDates, err := expandExcludedRules(opts.ExcludedRules, r)
	if err != nil {
		return nil, err
	}
	for _, er := range opts.ExcludedRanges {
		for d := er.Start; !d.After(er.End); d = d.AddDate(0, 0, 1) {
			excludedDates[ymd(d)] = true
		}
	}

	var dates []time.Time
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		if excludedWeekdays[d.Weekday()] {
			continue
		}
		if excludedDates[ymd(d)] {
			continue
		}
		dates = append(dates, d)
	}
	return dates, nil
}

// expandExcludedRules evaluates recurrence expressions over the range window
// and returns the set of matched dates keyed by "2006-01-02".
func expandExcludedRules(rules []string, r Range) (map[string]bool, error) {
	excluded := make(map[string]bool)
	for _, rule := range rules {
		rr, err := ParseRecurrence(rule)
		if err != nil {
			return nil, err
		}
		// Anchor unbounded rules at the range start so Between() covers
		// the requested window.
		opts := rr.OrigOptions
		if opts.Dtstart.IsZero() {
			opts.Dtstart = r.Start
		}
		anchored, err := rrule.NewRRule(opts)
		if err != nil {
			return nil, err
		}
		for _, d := range anchored.Between(r.Start, r.End, true) {
			excluded[ymd(d)] = true
		}
	}
	return excluded, nil
}

var everyNDays = regexp.MustCompile(`^every (\d+) days?$`)

// ParseRecurrence parses a natural language or raw RRULE recurrence string.
func ParseRecurrence(s string) (*rrule.RRule, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	// Raw RRULE passthrough
	if isRawRRule(s) {
		raw := strings.ToUpper(s)
		raw = strings.TrimPrefix(raw, "RRULE:")
		r, err := rrule.StrToRRule(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid RRULE %q: %w", raw, err)
		}
		return r, nil
	}

	// Natural language patterns
	switch s {
	case "every day", "daily":
		return rrule.NewRRule(rrule.ROption{
			Freq: rrule.DAILY,
		})

	case "every weekday", "weekdays":
		return rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Byweekday: []rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR},
		})

	case "every weekend", "weekends":
		return rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Byweekday: []rrule.Weekday{rrule.SA, rrule.SU},
		})

	case "every other day", "every second day":
		return rrule.NewRRule(rrule.ROption{
			Freq:     rrule.DAILY,
			Interval: 2,
		})
	}

	if strings.HasPrefix(s, "every ") {
		// "every N days"
		if m := everyNDays.FindStringSubmatch(s); m != nil {
			n := 0
			_, _ = fmt.Sscanf(m[1], "%d", &n)
			return rrule.NewRRule(rrule.ROption{
				Freq:     rrule.DAILY,
				Interval: n,
			})
		}

		// "every monday", "every tuesday", etc.
		dayName := strings.TrimPrefix(s, "every ")
		if wd, ok := rruleWeekdayName(dayName); ok {
			return rrule.NewRRule(rrule.ROption{
				Freq:      rrule.WEEKLY,
				Byweekday: []rrule.Weekday{wd},
			})
		}
	}

	return nil, fmt.Errorf("unrecognized recurrence %q", s)
}

func isRawRRule(s string) bool {
	upper := strings.ToUpper(s)
	return strings.HasPrefix(upper, "RRULE:") || strings.HasPrefix(upper, "FREQ=")
}

var rruleWeekdays = map[string]rrule.Weekday{
	"sunday":    rrule.SU,
	"monday":    rrule.MO,
	"tuesday":   rrule.TU,
	"wednesday": rrule.WE,
	"thursday":  rrule.TH,
	"friday":    rrule.FR,
	"saturday":  rrule.SA,
}

func rruleWeekdayName(s string) (rrule.Weekday, bool) {
	wd, ok := rruleWeekdays[s]
	return wd, ok
}
