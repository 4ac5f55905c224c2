package cli

import (
	"testing"
	"time"

	"github.com/megabyte6/WordDateGenerator/internal/config"
	"github.com/megabyte6/WordDateGenerator/internal/daterange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveOptionsFactoryDefaults(t *testing.T) {
	opts, err := resolveOptions(config.Factory(), rangeFlags{})

	require.NoError(t, err)
	assert.Equal(t, daterange.DefaultFormat, opts.Format)
	assert.Equal(t, []time.Weekday{time.Saturday, time.Sunday}, opts.ExcludedWeekdays)
	assert.Equal(t, config.FactoryMaxDays, opts.MaxDays)
}

func TestResolveOptionsFlagWeekdaysReplaceConfigured(t *testing.T) {
	flags := rangeFlags{ExcludeDays: []string{"monday", "friday"}}
	opts, err := resolveOptions(config.Factory(), flags)

	require.NoError(t, err)
	assert.Equal(t, []time.Weekday{time.Monday, time.Friday}, opts.ExcludedWeekdays)
}

func TestResolveOptionsIncludeWeekendsClearsDefaults(t *testing.T) {
	flags := rangeFlags{IncludeWeekends: true}
	opts, err := resolveOptions(config.Factory(), flags)

	require.NoError(t, err)
	assert.Empty(t, opts.ExcludedWeekdays)
}

func TestResolveOptionsFlagFormatWins(t *testing.T) {
	cfg := config.Factory()
	cfg.DefaultFormat = "%Y-%m-%d"

	opts, err := resolveOptions(cfg, rangeFlags{Format: "%A, %B %e"})

	require.NoError(t, err)
	assert.Equal(t, "%A, %B %e", opts.Format)
}

func TestResolveOptionsRejectsFormatWithoutTokens(t *testing.T) {
	_, err := resolveOptions(config.Factory(), rangeFlags{Format: "no tokens here"})

	require.Error(t, err)
}

func TestResolveOptionsParsesExcludedRanges(t *testing.T) {
	flags := rangeFlags{ExcludeRanges: []string{"2025-07-01..2025-07-14"}}
	opts, err := resolveOptions(config.Factory(), flags)

	require.NoError(t, err)
	require.Len(t, opts.ExcludedRanges, 1)
	assert.Equal(t, "2025-07-01..2025-07-14", opts.ExcludedRanges[0].String())
}

func TestResolveOptionsRejectsBadRange(t *testing.T) {
	flags := rangeFlags{ExcludeRanges: []string{"not-a-range"}}
	_, err := resolveOptions(config.Factory(), flags)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--exclude-range")
}

func TestResolveOptionsRejectsBadRecurrence(t *testing.T) {
	flags := rangeFlags{ExcludeRules: []string{"whenever I feel like it"}}
	_, err := resolveOptions(config.Factory(), flags)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--exclude")
}

func TestResolveOptionsRejectsBadWeekday(t *testing.T) {
	flags := rangeFlags{ExcludeDays: []string{"someday"}}
	_, err := resolveOptions(config.Factory(), flags)

	require.Error(t, err)
}

func TestEnumerateRangeRejectsEmptyResult(t *testing.T) {
	rng, err := daterange.Parse("2025-03-15", "2025-03-16")
	require.NoError(t, err)

	opts := daterange.Options{ExcludedWeekdays: daterange.DefaultExcludedWeekdays()}
	_, err = enumerateRange(rng, opts)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no dates left in 2025-03-15..2025-03-16")
}

func TestHasRange(t *testing.T) {
	assert.False(t, rangeFlags{}.hasRange())
	assert.False(t, rangeFlags{Start: "2025-01-01"}.hasRange())
	assert.True(t, rangeFlags{Start: "2025-01-01", End: "2025-01-02"}.hasRange())
}
