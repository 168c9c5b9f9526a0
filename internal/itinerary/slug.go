package itinerary

import (
	"regexp"
	"strings"
)

var (
	slugInvalidRe = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaceRe   = regexp.MustCompile(`\s+`)
	slugHyphensRe = regexp.MustCompile(`-+`)
)

// Slugify derives a URL-safe identifier from a title.
//
//	Slugify("Weekend in Paris!") == "weekend-in-paris"
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = slugInvalidRe.ReplaceAllString(s, "")
	s = slugSpaceRe.ReplaceAllString(strings.TrimSpace(s), "-")
	s = slugHyphensRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
