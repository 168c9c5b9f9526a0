package request_models

import (
	"tripweaver/internal/itinerary"
	"tripweaver/pkg/utils"
)

type GenerateItineraryRequest struct {
	Destinations []string `json:"destinations" binding:"required,min=1"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	Interests    []string `json:"interests"`
	Budget       string   `json:"budget"`
	Travelers    int      `json:"travelers"`
	Persona      string   `json:"persona"`
	Notes        string   `json:"notes"`
}

// ToPreferences parses the request dates. Missing dates stay zero.
func (r GenerateItineraryRequest) ToPreferences() (itinerary.TravelPreferences, error) {
	prefs := itinerary.TravelPreferences{
		Destinations: r.Destinations,
		Interests:    r.Interests,
		Budget:       r.Budget,
		Travelers:    r.Travelers,
		Persona:      r.Persona,
		Notes:        r.Notes,
	}

	start, err := utils.ParseDate(r.StartDate)
	if err != nil {
		return prefs, err
	}
	end, err := utils.ParseDate(r.EndDate)
	if err != nil {
		return prefs, err
	}
	if start != nil {
		prefs.StartDate = *start
	}
	if end != nil {
		prefs.EndDate = *end
	}
	return prefs, nil
}

type ParseItineraryRequest struct {
	Content   string `json:"content" binding:"required"`
	StartDate string `json:"start_date"`
	Persona   string `json:"persona"`
}

type AnnotateRequest struct {
	Text string `json:"text" binding:"required"`
}

type SettingRequest struct {
	Value string `json:"value"`
}

type AdminTokenRequest struct {
	Password string `json:"password" binding:"required"`
}
