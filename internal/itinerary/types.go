// Package itinerary turns free-text itineraries produced by a language model
// into a day/activity schedule and derives display data for every activity.
package itinerary

import "time"

type InterestCategory string

const (
	InterestFood        InterestCategory = "Food"
	InterestCulture     InterestCategory = "Culture"
	InterestAdventure   InterestCategory = "Adventure"
	InterestRelaxation  InterestCategory = "Relaxation"
	InterestShopping    InterestCategory = "Shopping"
	InterestNightlife   InterestCategory = "Nightlife"
	InterestSightseeing InterestCategory = "Sightseeing"
)

type TimeOfDay string

const (
	Morning   TimeOfDay = "Morning"
	Afternoon TimeOfDay = "Afternoon"
	Evening   TimeOfDay = "Evening"
)

type ActivityType string

const (
	ActivityDining      ActivityType = "dining"
	ActivityNightlife   ActivityType = "nightlife"
	ActivitySightseeing ActivityType = "sightseeing"
	ActivityEducational ActivityType = "educational"
	ActivityOther       ActivityType = "other"
)

// Activity is one scheduled item as extracted from the source text.
type Activity struct {
	Time             string           `json:"time"`
	ActivityText     string           `json:"activity_text"`
	InterestCategory InterestCategory `json:"interest_category"`
}

// Day is one calendar day of a trip. Parsed days always hold at least one
// activity.
type Day struct {
	DayNumber  int        `json:"day_number"`
	Date       time.Time  `json:"date"`
	Activities []Activity `json:"activities"`
}

// GeneratedItineraryContent is the model output normalized for storage.
type GeneratedItineraryContent struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Slug        string `json:"slug"`
}

// EnrichedActivity carries everything the presentation layer renders for an
// activity. All fields are derived from Activity and a persona.
type EnrichedActivity struct {
	Activity

	Title        string       `json:"title"`
	Detail       string       `json:"detail,omitempty"`
	TimeOfDay    TimeOfDay    `json:"time_of_day"`
	DisplayTime  string       `json:"display_time"`
	ActivityType ActivityType `json:"activity_type"`
	ColorBucket  ColorID      `json:"color_bucket"`
	TagBucket    TagID        `json:"tag_bucket"`
	Icon         IconID       `json:"icon"`
	ActivityIcon IconID       `json:"activity_icon"`
	Narrative    string       `json:"narrative"`
	Businesses   []string     `json:"businesses,omitempty"`
	Spans        []Span       `json:"spans"`
}

type EnrichedDay struct {
	DayNumber  int                `json:"day_number"`
	Date       time.Time          `json:"date"`
	Activities []EnrichedActivity `json:"activities"`
}
