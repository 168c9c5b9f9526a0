package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"tripweaver/internal/models/db_models"
	"tripweaver/pkg/utils"
)

// TravelPlansKey holds every saved plan as one JSON object keyed by slug.
const TravelPlansKey = "travel_plans"

type IPlanRepository interface {
	LoadAll(ctx context.Context) (map[string]db_models.PlanRecord, error)
	SaveAll(ctx context.Context, plans map[string]db_models.PlanRecord) error
}

type PlanRepository struct {
	store KVStore
}

func NewPlanRepository(store KVStore) IPlanRepository {
	return &PlanRepository{store: store}
}

// LoadAll returns the stored plans. A document that does not decode is logged
// and read as empty so the next save replaces it.
func (p *PlanRepository) LoadAll(ctx context.Context) (map[string]db_models.PlanRecord, error) {
	raw, ok, err := p.store.Get(ctx, TravelPlansKey)
	if err != nil {
		return nil, err
	}
	plans := make(map[string]db_models.PlanRecord)
	if !ok || raw == "" {
		return plans, nil
	}

	if err := json.Unmarshal([]byte(raw), &plans); err != nil {
		zap.L().Warn("discarding stored plans",
			zap.Error(fmt.Errorf("%w: %v", utils.ErrMalformedPersistedPlan, err)))
		return make(map[string]db_models.PlanRecord), nil
	}
	return plans, nil
}

func (p *PlanRepository) SaveAll(ctx context.Context, plans map[string]db_models.PlanRecord) error {
	data, err := json.Marshal(plans)
	if err != nil {
		return fmt.Errorf("encode plans: %w", err)
	}
	return p.store.Set(ctx, TravelPlansKey, string(data))
}
