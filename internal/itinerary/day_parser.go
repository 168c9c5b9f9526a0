package itinerary

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	dayHeadingRe = regexp.MustCompile(`(?mi)^[ \t]*##[ \t]*Day\b([^\n]*)`)
	dayNumberRe  = regexp.MustCompile(`\d+`)
	timedLineRe  = regexp.MustCompile(`(\d{1,2}:\d{2}(?:[ \t]*[AaPp][Mm]\b)?)(?:[ \t]*[:\-–—][ \t]*|[ \t]+)([^,;\n]+)`)
	bulletLineRe = regexp.MustCompile(`(?m)^[ \t]*[-*][ \t]+(.+)$`)
)

// syntheticStartHour is the first slot handed to bullet-only days.
const syntheticStartHour = 9

// segmentActivities extracts the activities of one day body; tests replace it.
var segmentActivities = extractActivities

// ParseItineraryDays splits an itinerary document on "## Day N" headings and
// extracts the activities of each day. Day dates count from start, or from
// now when start is nil. Days without activities are dropped. An empty result
// means the text could not be structured and should be rendered as is.
func ParseItineraryDays(raw string, start *time.Time) (days []Day) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("itinerary parse failed", zap.Any("panic", r))
			days = []Day{}
		}
	}()

	base := time.Now()
	if start != nil {
		base = *start
	}

	days = []Day{}
	for i, seg := range splitDaySegments(strings.ReplaceAll(raw, "**", "")) {
		number := seg.number
		if number <= 0 {
			number = i + 1
		}

		activities := segmentActivities(seg.body)
		if len(activities) == 0 {
			zap.L().Debug("dropping day without activities", zap.Int("day", number))
			continue
		}

		days = append(days, Day{
			DayNumber:  number,
			Date:       base.AddDate(0, 0, number-1),
			Activities: activities,
		})
	}
	return days
}

type daySegment struct {
	number int
	body   string
}

func splitDaySegments(raw string) []daySegment {
	locs := dayHeadingRe.FindAllStringSubmatchIndex(raw, -1)
	segments := make([]daySegment, 0, len(locs))
	for i, loc := range locs {
		end := len(raw)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		segments = append(segments, daySegment{
			number: headingDayNumber(raw[loc[2]:loc[3]]),
			body:   raw[loc[1]:end],
		})
	}
	return segments
}

func headingDayNumber(rest string) int {
	digits := dayNumberRe.FindString(rest)
	if digits == "" {
		return 0
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}

// extractActivities tries clock-time lines first and falls back to bullets
// with synthetic half-hour slots from 9:00.
func extractActivities(body string) []Activity {
	if activities := timedActivities(body); len(activities) > 0 {
		return activities
	}
	return bulletActivities(body)
}

func timedActivities(body string) []Activity {
	var out []Activity
	for _, m := range timedLineRe.FindAllStringSubmatch(body, -1) {
		text := strings.TrimSpace(m[2])
		if text == "" {
			continue
		}
		out = append(out, newActivity(strings.TrimSpace(m[1]), text))
	}
	return out
}

func bulletActivities(body string) []Activity {
	var out []Activity
	for _, m := range bulletLineRe.FindAllStringSubmatch(body, -1) {
		text := strings.TrimSpace(m[1])
		if text == "" {
			continue
		}
		i := len(out)
		slot := fmt.Sprintf("%d:%02d", syntheticStartHour+i/2, (i%2)*30)
		out = append(out, newActivity(slot, text))
	}
	return out
}

func newActivity(t, text string) Activity {
	return Activity{
		Time:             t,
		ActivityText:     text,
		InterestCategory: ClassifyInterest(text),
	}
}
