package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripweaver/internal/itinerary/persona"
)

func TestEnrichSingleLine(t *testing.T) {
	a := Activity{Time: "7:30 PM", ActivityText: "**Dinner** at [Chez Pierre] restaurant", InterestCategory: InterestFood}

	got := Enrich(a, persona.RickSteves)

	assert.Equal(t, a, got.Activity)
	assert.Equal(t, "Dinner at [Chez Pierre] restaurant", got.Title)
	assert.Empty(t, got.Detail)
	assert.Equal(t, Evening, got.TimeOfDay)
	assert.Equal(t, "7:30 PM", got.DisplayTime)
	assert.Equal(t, ActivityDining, got.ActivityType)
	assert.Equal(t, ColorEvening, got.ColorBucket)
	assert.Equal(t, TagFood, got.TagBucket)
	assert.Equal(t, IconUtensils, got.Icon)
	assert.Equal(t, IconUtensils, got.ActivityIcon)
	assert.Equal(t, persona.Narrative("dining", "Food", persona.RickSteves), got.Narrative)
	assert.Equal(t, []string{"Chez Pierre"}, got.Businesses)
	require.Len(t, got.Spans, 1)
	assert.Equal(t, SpanLink, got.Spans[0].Kind)
}

func TestEnrichMultiLineKeepsModelDetail(t *testing.T) {
	a := Activity{Time: "10", ActivityText: "Louvre Museum\nSee the Mona Lisa early."}

	got := Enrich(a, persona.Monocle)

	assert.Equal(t, "Louvre Museum", got.Title)
	assert.Equal(t, "See the Mona Lisa early.", got.Detail)
	assert.Equal(t, "Louvre Museum\nSee the Mona Lisa early.", got.Narrative)
	assert.Equal(t, IconCamera, got.ActivityIcon)
	assert.Equal(t, "10:00 AM", got.DisplayTime)
	assert.Equal(t, InterestCulture, got.InterestCategory)
	assert.Equal(t, Morning, got.TimeOfDay)
}

func TestEnrichDays(t *testing.T) {
	days := ParseItineraryDays("## Day 1\n- Coffee\n- Museum\n## Day 2\n- Beach", tripStart())

	enriched := EnrichDays(days, persona.Default)
	require.Len(t, enriched, 2)
	assert.Equal(t, days[1].Date, enriched[1].Date)
	assert.Len(t, enriched[0].Activities, 2)
	assert.Equal(t, "Beach", enriched[1].Activities[0].Title)
}

func TestGroupByTimeOfDay(t *testing.T) {
	var acts []EnrichedActivity
	for _, tm := range []string{"7:00 PM", "9:00 AM", "8:00 AM", "1:00 AM", "2:00 PM"} {
		acts = append(acts, Enrich(Activity{Time: tm, ActivityText: "Walk"}, persona.Default))
	}

	buckets := GroupByTimeOfDay(acts)
	require.Len(t, buckets, 3)

	times := func(b TimeBucket) []string {
		var out []string
		for _, a := range b.Activities {
			out = append(out, a.Time)
		}
		return out
	}
	assert.Equal(t, Morning, buckets[0].TimeOfDay)
	assert.Equal(t, []string{"8:00 AM", "9:00 AM"}, times(buckets[0]))
	assert.Equal(t, []string{"2:00 PM"}, times(buckets[1]))
	assert.Equal(t, []string{"7:00 PM", "1:00 AM"}, times(buckets[2]))
}

func TestGroupByTimeOfDayKeepsEmptyBuckets(t *testing.T) {
	buckets := GroupByTimeOfDay(nil)
	require.Len(t, buckets, 3)
	for _, b := range buckets {
		assert.Empty(t, b.Activities)
	}
}
