package utils

import (
	"regexp"
	"strings"
)

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// MakeSlug derives a human-friendly URL slug from a title plus a short id
// suffix so slugs stay unique across renames.
func MakeSlug(title, id string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugStrip.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > 60 {
		s = s[:60]
	}
	suffix := id
	if len(suffix) > 8 {
		suffix = suffix[len(suffix)-8:]
	}
	if s == "" {
		return suffix
	}
	return s + "-" + suffix
}
