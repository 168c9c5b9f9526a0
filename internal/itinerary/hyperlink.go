package itinerary

import (
	"net/url"
	"regexp"
	"sort"
	"strings"
)

type SpanKind string

const (
	SpanPlain SpanKind = "plain"
	SpanLink  SpanKind = "link"
)

// Span is a run of plain text or a link inside annotated activity text.
type Span struct {
	Kind SpanKind `json:"kind"`
	Text string   `json:"text"`
	Href string   `json:"href,omitempty"`
}

type chain struct {
	name     string
	keywords []string
	homepage string
}

var hotelChains = []chain{
	{name: "Marriott", keywords: []string{"marriott"}, homepage: "https://www.marriott.com"},
	{name: "Hilton", keywords: []string{"hilton"}, homepage: "https://www.hilton.com"},
	{name: "Hyatt", keywords: []string{"hyatt"}, homepage: "https://www.hyatt.com"},
	{name: "Sheraton", keywords: []string{"sheraton"}, homepage: "https://www.marriott.com/sheraton"},
	{name: "Westin", keywords: []string{"westin"}, homepage: "https://www.marriott.com/westin"},
	{name: "Ritz-Carlton", keywords: []string{"ritz-carlton", "ritz carlton"}, homepage: "https://www.ritzcarlton.com"},
	{name: "Four Seasons", keywords: []string{"four seasons"}, homepage: "https://www.fourseasons.com"},
	{name: "Holiday Inn", keywords: []string{"holiday inn"}, homepage: "https://www.ihg.com/holidayinn"},
	{name: "InterContinental", keywords: []string{"intercontinental"}, homepage: "https://www.ihg.com/intercontinental"},
	{name: "Best Western", keywords: []string{"best western"}, homepage: "https://www.bestwestern.com"},
	{name: "Radisson", keywords: []string{"radisson"}, homepage: "https://www.radissonhotels.com"},
	{name: "Novotel", keywords: []string{"novotel"}, homepage: "https://novotel.accor.com"},
	{name: "Ibis", keywords: []string{"ibis"}, homepage: "https://ibis.accor.com"},
}

var fastFoodChains = []chain{
	{name: "McDonald's", keywords: []string{"mcdonald"}, homepage: "https://www.mcdonalds.com"},
	{name: "Starbucks", keywords: []string{"starbucks"}, homepage: "https://www.starbucks.com"},
	{name: "Burger King", keywords: []string{"burger king"}, homepage: "https://www.bk.com"},
	{name: "KFC", keywords: []string{"kfc"}, homepage: "https://www.kfc.com"},
	{name: "Subway", keywords: []string{"subway"}, homepage: "https://www.subway.com"},
	{name: "Pizza Hut", keywords: []string{"pizza hut"}, homepage: "https://www.pizzahut.com"},
	{name: "Domino's", keywords: []string{"domino's", "dominos"}, homepage: "https://www.dominos.com"},
	{name: "Taco Bell", keywords: []string{"taco bell"}, homepage: "https://www.tacobell.com"},
	{name: "Wendy's", keywords: []string{"wendy's"}, homepage: "https://www.wendys.com"},
	{name: "Dunkin", keywords: []string{"dunkin"}, homepage: "https://www.dunkindonuts.com"},
}

var absoluteURLRe = regexp.MustCompile(`(?i)^https?://\S+$`)

const (
	webSearchURL  = "https://www.google.com/search?q="
	mapsSearchURL = "https://www.google.com/maps/search/?api=1&query="
)

func chainAlternation() string {
	all := append(append([]chain{}, hotelChains...), fastFoodChains...)
	names := make([]string, 0, len(all))
	for _, c := range all {
		names = append(names, regexp.QuoteMeta(c.name))
	}
	// longest first so "Holiday Inn" is tried before any shorter prefix
	sort.SliceStable(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })
	return strings.Join(names, "|")
}

func chainHomepage(chains []chain, lower string) (string, bool) {
	for _, c := range chains {
		for _, kw := range c.keywords {
			if strings.Contains(lower, kw) {
				return c.homepage, true
			}
		}
	}
	return "", false
}

// ResolveVenueURL returns the outbound link for a venue name: the name itself
// when it already is a URL, a chain homepage for known hotel and fast-food
// chains, otherwise a web search.
func ResolveVenueURL(name string) string {
	return resolveURL(name, webSearchURL)
}

// ResolveMapsURL is ResolveVenueURL with a maps search as the fallback, used
// for free-standing location lookups.
func ResolveMapsURL(name string) string {
	return resolveURL(name, mapsSearchURL)
}

func resolveURL(name, searchBase string) string {
	trimmed := strings.TrimSpace(name)
	if absoluteURLRe.MatchString(trimmed) {
		return trimmed
	}
	lower := strings.ToLower(trimmed)
	if home, ok := chainHomepage(hotelChains, lower); ok {
		return home
	}
	if home, ok := chainHomepage(fastFoodChains, lower); ok {
		return home
	}
	return searchBase + url.QueryEscape(trimmed)
}

// Annotate splits activity text into plain and link spans. The first line is
// always a link. Business names in the rest become links left to right, and a
// match starting inside an accepted one is dropped.
func Annotate(text string) []Span {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	first, rest, hasRest := strings.Cut(text, "\n")
	first = strings.TrimSpace(first)
	spans := []Span{{Kind: SpanLink, Text: first, Href: ResolveVenueURL(first)}}
	if !hasRest {
		return spans
	}

	spans = append(spans, Span{Kind: SpanPlain, Text: "\n"})
	return append(spans, annotateBody(rest)...)
}

func annotateBody(text string) []Span {
	candidates := append(bracketMatches(text), patternMatches(text)...)
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].start != candidates[j].start {
			return candidates[i].start < candidates[j].start
		}
		return candidates[i].end > candidates[j].end
	})

	var spans []Span
	cursor := 0
	for _, m := range candidates {
		if m.start < cursor {
			continue
		}
		if m.start > cursor {
			spans = append(spans, Span{Kind: SpanPlain, Text: text[cursor:m.start]})
		}
		href := m.href
		if href == "" {
			href = ResolveVenueURL(m.name)
		}
		spans = append(spans, Span{Kind: SpanLink, Text: m.name, Href: href})
		cursor = m.end
	}
	if cursor < len(text) {
		spans = append(spans, Span{Kind: SpanPlain, Text: text[cursor:]})
	}
	return spans
}
