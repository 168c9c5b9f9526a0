package response_models

import (
	"time"

	"tripweaver/internal/itinerary"
	"tripweaver/internal/models/db_models"
	"tripweaver/pkg/utils"
)

type AnnotateResponse struct {
	Spans []itinerary.Span `json:"spans"`
}

type VenueLinkResponse struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
	URL  string `json:"url"`
}

type PlanSummary struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedAt   int64  `json:"createdAt"`
	SavedAt     string `json:"savedAt,omitempty"`
}

func NewPlanSummary(p db_models.PlanRecord) PlanSummary {
	summary := PlanSummary{
		Slug:        p.Slug,
		Title:       p.ItineraryData.Title,
		Description: p.ItineraryData.Description,
		CreatedAt:   p.CreatedAt,
	}
	if saved := utils.FromUnixMillis(p.CreatedAt); !saved.IsZero() {
		summary.SavedAt = saved.Format(time.RFC3339)
	}
	return summary
}

type DestinationImageResponse struct {
	Query    string `json:"query"`
	ImageURL string `json:"image_url"`
}

type SettingResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}
