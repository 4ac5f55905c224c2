package stringutil

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts a string to a filesystem-friendly slug.
// It lowercases the input, replaces non-alphanumeric characters with hyphens,
// collapses consecutive hyphens, and trims leading/trailing hyphens.
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return s
}

// SlugifyOr returns Slugify(name), or fallback when the slug comes out
// empty. File names derived from range labels must never be empty.
func SlugifyOr(name, fallback string) string {
	if s := Slugify(name); s != "" {
		return s
	}
	return fallback
}
