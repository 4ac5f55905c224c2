package stringutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple lowercase", "hello", "hello"},
		{"mixed case", "My Dates", "my-dates"},
		{"range label", "March 10, 2025 — March 14, 2025", "march-10-2025-march-14-2025"},
		{"consecutive specials", "foo---bar", "foo-bar"},
		{"leading trailing specials", "---foo---", "foo"},
		{"numbers preserved", "week123", "week123"},
		{"spaces replaced", "my date table", "my-date-table"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestSlugifyOr(t *testing.T) {
	assert.Equal(t, "march-2025", SlugifyOr("March 2025", "dates"))
	assert.Equal(t, "dates", SlugifyOr("——", "dates"))
	assert.Equal(t, "dates", SlugifyOr("", "dates"))
}
