package itinerary

import (
	"errors"
	"strings"
	"time"
)

// TravelPreferences is what a traveler asks the generator for.
type TravelPreferences struct {
	Destinations []string  `json:"destinations"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Interests    []string  `json:"interests"`
	Budget       string    `json:"budget"`
	Travelers    int       `json:"travelers"`
	Persona      string    `json:"persona"`
	Notes        string    `json:"notes,omitempty"`
}

var (
	errNoDestination = errors.New("at least one destination is required")
	errDateRange     = errors.New("end date is before start date")
)

// Validate checks the fields the prompt cannot do without.
func (p TravelPreferences) Validate() error {
	if len(p.DestinationList()) == 0 {
		return errNoDestination
	}
	if !p.StartDate.IsZero() && !p.EndDate.IsZero() && p.EndDate.Before(p.StartDate) {
		return errDateRange
	}
	return nil
}

// DestinationList returns the destinations trimmed, empties removed.
func (p TravelPreferences) DestinationList() []string {
	out := make([]string, 0, len(p.Destinations))
	for _, d := range p.Destinations {
		if d = strings.TrimSpace(d); d != "" {
			out = append(out, d)
		}
	}
	return out
}

// TripDays is the inclusive day count between start and end, at least one.
func (p TravelPreferences) TripDays() int {
	if p.StartDate.IsZero() || p.EndDate.IsZero() {
		return 1
	}
	days := int(p.EndDate.Sub(p.StartDate).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}
