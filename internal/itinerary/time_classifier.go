package itinerary

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// TimeClassification is the bucket and readable label for a time expression.
type TimeClassification struct {
	Bucket TimeOfDay `json:"bucket"`
	Label  string    `json:"label"`
}

type keywordRule[T any] struct {
	keywords []string
	result   T
}

var timeKeywordRules = []keywordRule[TimeOfDay]{
	{keywords: []string{"morning", "breakfast"}, result: Morning},
	{keywords: []string{"afternoon", "lunch"}, result: Afternoon},
	{keywords: []string{"evening", "dinner", "night"}, result: Evening},
}

var (
	clockRe    = regexp.MustCompile(`(?i)(\d{1,2})(?::(\d{2}))?\s*(am|pm)?`)
	bareHourRe = regexp.MustCompile(`^\d{1,2}$`)
)

var periodWords = map[string]string{
	"morning":   "Morning",
	"afternoon": "Afternoon",
	"evening":   "Evening",
	"night":     "Night",
}

// firstMatch walks the rules in order and returns the result of the first rule
// with a keyword contained in lower.
func firstMatch[T any](rules []keywordRule[T], lower string, fallback T) T {
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.result
			}
		}
	}
	return fallback
}

// ClassifyTimeOfDay maps a free-form time expression to a time-of-day bucket.
// Hours from midnight to 4:59 count as Evening so late-night plans stay with
// the evening that started them. Unrecognized input lands in Morning with an
// empty label.
func ClassifyTimeOfDay(t string) TimeClassification {
	lower := strings.ToLower(strings.TrimSpace(t))

	if bucket := firstMatch(timeKeywordRules, lower, TimeOfDay("")); bucket != "" {
		return TimeClassification{Bucket: bucket, Label: string(bucket)}
	}

	hour, minute, ok := parseClock(lower)
	if !ok {
		return TimeClassification{Bucket: Morning}
	}

	return TimeClassification{
		Bucket: bucketForHour(hour),
		Label:  formatClock(hour, minute),
	}
}

// parseClock extracts a 24-hour hour and minute from the first clock-like
// token in s.
func parseClock(s string) (int, int, bool) {
	m := clockRe.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil || hour > 23 {
		return 0, 0, false
	}
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
		if minute > 59 {
			return 0, 0, false
		}
	}

	switch strings.ToLower(m[3]) {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	return hour, minute, true
}

func bucketForHour(hour int) TimeOfDay {
	switch {
	case hour >= 5 && hour < 12:
		return Morning
	case hour >= 12 && hour < 18:
		return Afternoon
	default:
		return Evening
	}
}

// formatClock renders a 24-hour time as "H:MM AM|PM".
func formatClock(hour, minute int) string {
	return fmt.Sprintf("%d:%02d %s", displayHour(hour), minute, meridiem(hour))
}

// FormatTimeDisplay renders a bare hour as "H:00 AM|PM" and capitalizes a
// lone day-period word. Anything else is assumed to be formatted already.
func FormatTimeDisplay(t string) string {
	trimmed := strings.TrimSpace(t)

	if bareHourRe.MatchString(trimmed) {
		hour, _ := strconv.Atoi(trimmed)
		if hour > 23 {
			return t
		}
		return fmt.Sprintf("%d:00 %s", displayHour(hour), meridiem(hour))
	}

	if word, ok := periodWords[strings.ToLower(trimmed)]; ok {
		return word
	}
	return t
}

func displayHour(hour int) int {
	if h := hour % 12; h != 0 {
		return h
	}
	return 12
}

func meridiem(hour int) string {
	if hour >= 12 {
		return "PM"
	}
	return "AM"
}

// bucketDefaultMinutes places keyword-only times inside their bucket when
// sorting.
var bucketDefaultMinutes = map[TimeOfDay]int{
	Morning:   9 * 60,
	Afternoon: 13 * 60,
	Evening:   19 * 60,
}

// MinutesOfDay returns a sort key for a time expression within a day. Clock
// times past midnight sort after the evening they belong to.
func MinutesOfDay(t string) int {
	lower := strings.ToLower(strings.TrimSpace(t))
	if bucket := firstMatch(timeKeywordRules, lower, TimeOfDay("")); bucket != "" {
		return bucketDefaultMinutes[bucket]
	}
	hour, minute, ok := parseClock(lower)
	if !ok {
		return bucketDefaultMinutes[Morning]
	}
	if hour < 5 {
		hour += 24
	}
	return hour*60 + minute
}
