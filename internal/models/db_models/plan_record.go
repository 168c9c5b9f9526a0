package db_models

import "tripweaver/internal/itinerary"

// PlanRecord is a saved itinerary inside the travel_plans document.
type PlanRecord struct {
	Slug          string                              `json:"slug"`
	ItineraryData itinerary.GeneratedItineraryContent `json:"itineraryData"`
	Preferences   itinerary.TravelPreferences         `json:"preferences"`
	CreatedAt     int64                               `json:"createdAt"`
}
