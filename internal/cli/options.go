package cli

import (
	"fmt"
	"time"

	"github.com/megabyte6/WordDateGenerator/internal/config"
	"github.com/megabyte6/WordDateGenerator/internal/daterange"
)

// rangeFlags holds the flags shared by generate and preview that describe
// the range and its exclusions.
type rangeFlags struct {
	Start           string
	End             string
	Format          string
	ExcludeDays     []string
	ExcludeRanges   []string
	ExcludeRules    []string
	IncludeWeekends bool
}

// resolveOptions merges the persisted defaults with the given flags into
// enumeration options. Flag weekdays replace the configured ones;
// --include-weekends clears the configured default when no weekday flags
// are given.
func resolveOptions(cfg config.Config, flags rangeFlags) (daterange.Options, error) {
	opts := daterange.Options{
		Format:  cfg.DefaultFormat,
		MaxDays: cfg.MaxDays,
	}

	if flags.Format != "" {
		if err := daterange.ValidFormat(flags.Format); err != nil {
			return daterange.Options{}, err
		}
		opts.Format = flags.Format
	}

	switch {
	case len(flags.ExcludeDays) > 0:
		for _, name := range flags.ExcludeDays {
			wd, err := daterange.ParseWeekday(name)
			if err != nil {
				return daterange.Options{}, err
			}
			opts.ExcludedWeekdays = append(opts.ExcludedWeekdays, wd)
		}
	case flags.IncludeWeekends:
		// leave empty
	default:
		weekdays, err := cfg.Weekdays()
		if err != nil {
			return daterange.Options{}, err
		}
		opts.ExcludedWeekdays = weekdays
	}

	for _, expr := range flags.ExcludeRanges {
		r, err := daterange.ParseRangeExpr(expr)
		if err != nil {
			return daterange.Options{}, fmt.Errorf("--exclude-range: %w", err)
		}
		opts.ExcludedRanges = append(opts.ExcludedRanges, r)
	}

	// Validate rules up front so a bad one fails before any picker work.
	for _, rule := range flags.ExcludeRules {
		if _, err := daterange.ParseRecurrence(rule); err != nil {
			return daterange.Options{}, fmt.Errorf("--exclude: %w", err)
		}
	}
	opts.ExcludedRules = flags.ExcludeRules

	return opts, nil
}

// resolveRange parses the start/end flags. Both must be present; the caller
// decides whether a missing pair means "open the picker" or an error.
func resolveRange(flags rangeFlags) (daterange.Range, error) {
	return daterange.Parse(flags.Start, flags.End)
}

// hasRangeFlags reports whether both range bounds were given.
func (f rangeFlags) hasRange() bool {
	return f.Start != "" && f.End != ""
}

// enumerate resolves and enumerates in one step, rejecting an empty result.
func enumerateRange(rng daterange.Range, opts daterange.Options) ([]time.Time, error) {
	dates, err := daterange.Enumerate(rng, opts)
	if err != nil {
		return nil, err
	}
	if len(dates) == 0 {
		return nil, fmt.Errorf("no dates left in %s after exclusions", rng)
	}
	return dates, nil
}
