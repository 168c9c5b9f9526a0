package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"tripweaver/internal/itinerary"
	"tripweaver/internal/models/db_models"
	"tripweaver/internal/repositories"
	"tripweaver/pkg/utils"
)

const defaultPlanSlug = "trip"

type PlanServiceInterface interface {
	SavePlan(ctx context.Context, content itinerary.GeneratedItineraryContent, prefs itinerary.TravelPreferences) (*db_models.PlanRecord, error)
	ListPlans(ctx context.Context) ([]db_models.PlanRecord, error)
	GetPlan(ctx context.Context, slug string) (*db_models.PlanRecord, error)
	DeletePlan(ctx context.Context, slug string) error
}

func NewPlanService(planRepo repositories.IPlanRepository) PlanServiceInterface {
	return &PlanService{
		planRepo: planRepo,
		now:      utils.NowUnixMillis,
	}
}

type PlanService struct {
	planRepo repositories.IPlanRepository
	now      func() int64

	// serializes read-modify-write of the plans document
	mu sync.Mutex
}

// SavePlan stores content under its slug. A taken slug gets the first free
// "-2", "-3"... suffix; the stored record carries the final slug.
func (p *PlanService) SavePlan(ctx context.Context, content itinerary.GeneratedItineraryContent, prefs itinerary.TravelPreferences) (*db_models.PlanRecord, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	plans, err := p.planRepo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	base := content.Slug
	if base == "" {
		base = itinerary.Slugify(content.Title)
	}
	if base == "" {
		base = defaultPlanSlug
	}
	slug := base
	for n := 2; ; n++ {
		if _, taken := plans[slug]; !taken {
			break
		}
		slug = fmt.Sprintf("%s-%d", base, n)
	}

	content.Slug = slug
	record := db_models.PlanRecord{
		Slug:          slug,
		ItineraryData: content,
		Preferences:   prefs,
		CreatedAt:     p.now(),
	}
	plans[slug] = record

	if err := p.planRepo.SaveAll(ctx, plans); err != nil {
		return nil, err
	}
	return &record, nil
}

// ListPlans returns every plan, newest first.
func (p *PlanService) ListPlans(ctx context.Context) ([]db_models.PlanRecord, error) {
	plans, err := p.planRepo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]db_models.PlanRecord, 0, len(plans))
	for _, plan := range plans {
		out = append(out, plan)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt != out[j].CreatedAt {
			return out[i].CreatedAt > out[j].CreatedAt
		}
		return out[i].Slug < out[j].Slug
	})
	return out, nil
}

func (p *PlanService) GetPlan(ctx context.Context, slug string) (*db_models.PlanRecord, error) {
	plans, err := p.planRepo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	plan, ok := plans[slug]
	if !ok {
		return nil, utils.ErrPlanNotFound
	}
	return &plan, nil
}

func (p *PlanService) DeletePlan(ctx context.Context, slug string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	plans, err := p.planRepo.LoadAll(ctx)
	if err != nil {
		return err
	}
	if _, ok := plans[slug]; !ok {
		return utils.ErrPlanNotFound
	}
	delete(plans, slug)
	return p.planRepo.SaveAll(ctx, plans)
}
