package models

import "regexp"

var slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

// ValidSlug reports whether s can be used as a slug in catalog URLs.
func ValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}
