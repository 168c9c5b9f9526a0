package itinerary

import (
	"sort"

	"tripweaver/internal/itinerary/persona"
)

// Enrich derives every display field of an activity. Classification runs on
// the normalized text so markdown residue never changes a category.
func Enrich(a Activity, p persona.Persona) EnrichedActivity {
	text := Normalize(a.ActivityText)
	title, detail := splitTitle(text)
	tc := ClassifyTimeOfDay(a.Time)
	activityType := ClassifyActivityType(text)

	interest := a.InterestCategory
	if interest == "" {
		interest = ClassifyInterest(text)
	}

	enriched := EnrichedActivity{
		Activity:     a,
		Title:        title,
		Detail:       detail,
		TimeOfDay:    tc.Bucket,
		DisplayTime:  FormatTimeDisplay(a.Time),
		ActivityType: activityType,
		ColorBucket:  ColorBucket(tc.Bucket),
		TagBucket:    TagBucket(interest),
		Icon:         IconFor(interest),
		ActivityIcon: IconForActivityType(activityType),
		Narrative:    persona.Describe(text, string(activityType), string(interest), p),
		Businesses:   ExtractBusinessNames(text),
		Spans:        Annotate(text),
	}
	enriched.InterestCategory = interest
	return enriched
}

// EnrichDays enriches a parsed schedule, keeping day order and dates.
func EnrichDays(days []Day, p persona.Persona) []EnrichedDay {
	out := make([]EnrichedDay, 0, len(days))
	for _, d := range days {
		activities := make([]EnrichedActivity, 0, len(d.Activities))
		for _, a := range d.Activities {
			activities = append(activities, Enrich(a, p))
		}
		out = append(out, EnrichedDay{
			DayNumber:  d.DayNumber,
			Date:       d.Date,
			Activities: activities,
		})
	}
	return out
}

// TimeBucket is one time-of-day section of a day.
type TimeBucket struct {
	TimeOfDay  TimeOfDay          `json:"time_of_day"`
	Activities []EnrichedActivity `json:"activities"`
}

// GroupByTimeOfDay buckets activities into Morning, Afternoon and Evening, in
// that order, each sorted by clock time. Empty buckets are kept so callers
// can render a fixed layout.
func GroupByTimeOfDay(activities []EnrichedActivity) []TimeBucket {
	buckets := []TimeBucket{
		{TimeOfDay: Morning},
		{TimeOfDay: Afternoon},
		{TimeOfDay: Evening},
	}
	index := map[TimeOfDay]int{Morning: 0, Afternoon: 1, Evening: 2}

	for _, a := range activities {
		i, ok := index[a.TimeOfDay]
		if !ok {
			i = 0
		}
		buckets[i].Activities = append(buckets[i].Activities, a)
	}

	for i := range buckets {
		acts := buckets[i].Activities
		sort.SliceStable(acts, func(x, y int) bool {
			return MinutesOfDay(acts[x].Time) < MinutesOfDay(acts[y].Time)
		})
	}
	return buckets
}
