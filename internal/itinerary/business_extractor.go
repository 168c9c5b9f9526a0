package itinerary

import (
	"regexp"
	"sort"
	"strings"
)

const (
	venueWords   = `Hotel|Restaurant|Café|Cafe|Museum|Theater|Theatre|Gallery|Bar|Pub|Club`
	capWord      = `\p{Lu}[\p{L}\p{N}'’&-]*`
	longCapWord  = `\p{Lu}[\p{L}\p{N}'’&-]+`
	notLetter    = `[^\p{L}\p{N}]`
	streetSuffix = `Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd`
)

var (
	bracketNameRe = regexp.MustCompile(`\[([^\[\]\n]+)\](?:\((https?://[^)\s]+)\))?`)
	venuePrefixRe = regexp.MustCompile(`\b((?:` + venueWords + `)(?:[ \t]+` + capWord + `){1,4})`)
	venueSuffixRe = regexp.MustCompile(`(?:^|` + notLetter + `)((?:` + capWord + `[ \t]+){1,4}(?:` + venueWords + `))(?:` + notLetter + `|$)`)
	properNounRe  = regexp.MustCompile(`(?:^|` + notLetter + `)(` + longCapWord + `(?:[ \t]+` + longCapWord + `){1,5})`)
	streetAfterRe = regexp.MustCompile(`^[ \t]+(?:` + streetSuffix + `)\b`)
	streetWordRe  = regexp.MustCompile(`^(?:` + streetSuffix + `)\.?$`)
	chainNameRe   = regexp.MustCompile(`\b(` + chainAlternation() + `)\b`)
)

// knownVenues are landmark names matched literally.
var knownVenues = []string{
	"Eiffel Tower",
	"Louvre",
	"Colosseum",
	"Sagrada Familia",
	"Central Park",
	"Times Square",
	"Big Ben",
	"Tower Bridge",
	"Golden Gate Bridge",
	"Statue of Liberty",
	"Empire State Building",
	"Burj Khalifa",
	"Sydney Opera House",
	"Taj Mahal",
	"Brandenburg Gate",
	"Notre-Dame",
	"Machu Picchu",
}

// nameMatch is one candidate business name. start and end cover the text the
// match consumes; for bracketed names that includes the brackets and an
// inline link target.
type nameMatch struct {
	start, end int
	name       string
	href       string
}

// ExtractBusinessNames finds venue and business names in activity text.
// Bracketed names are the strongest signal: when any are present only they
// are returned. Results keep first-appearance order without exact duplicates.
func ExtractBusinessNames(text string) []string {
	if brackets := bracketMatches(text); len(brackets) > 0 {
		return uniqueNames(brackets)
	}
	return uniqueNames(patternMatches(text))
}

func bracketMatches(text string) []nameMatch {
	var out []nameMatch
	for _, loc := range bracketNameRe.FindAllStringSubmatchIndex(text, -1) {
		name := strings.TrimSpace(text[loc[2]:loc[3]])
		if name == "" {
			continue
		}
		m := nameMatch{start: loc[0], end: loc[1], name: name}
		if loc[4] >= 0 {
			m.href = text[loc[4]:loc[5]]
		}
		out = append(out, m)
	}
	return out
}

// patternMatches runs every non-bracket pattern and returns the candidates
// ordered by position, pattern order breaking ties.
func patternMatches(text string) []nameMatch {
	var out []nameMatch
	out = append(out, groupMatches(venuePrefixRe, text)...)
	out = append(out, groupMatches(venueSuffixRe, text)...)
	out = append(out, groupMatches(chainNameRe, text)...)
	for _, m := range groupMatches(properNounRe, text) {
		if looksLikeStreet(m.name) || streetAfterRe.MatchString(text[m.end:]) {
			continue
		}
		out = append(out, m)
	}
	out = append(out, knownVenueMatches(text)...)

	sort.SliceStable(out, func(i, j int) bool { return out[i].start < out[j].start })
	return out
}

func groupMatches(re *regexp.Regexp, text string) []nameMatch {
	var out []nameMatch
	for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
		start, end := loc[2], loc[3]
		if start < 0 {
			continue
		}
		out = append(out, nameMatch{start: start, end: end, name: text[start:end]})
	}
	return out
}

func knownVenueMatches(text string) []nameMatch {
	var out []nameMatch
	for _, venue := range knownVenues {
		offset := 0
		for {
			idx := strings.Index(text[offset:], venue)
			if idx < 0 {
				break
			}
			start := offset + idx
			out = append(out, nameMatch{start: start, end: start + len(venue), name: venue})
			offset = start + len(venue)
		}
	}
	return out
}

func looksLikeStreet(name string) bool {
	words := strings.Fields(name)
	return len(words) > 0 && streetWordRe.MatchString(words[len(words)-1])
}

func uniqueNames(matches []nameMatch) []string {
	seen := make(map[string]bool, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if seen[m.name] {
			continue
		}
		seen[m.name] = true
		out = append(out, m.name)
	}
	return out
}
