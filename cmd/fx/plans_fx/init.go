package plans_fx

import (
	"go.uber.org/fx"

	"tripweaver/internal/repositories"
	"tripweaver/internal/services"
)

var Module = fx.Provide(providePlanRepo, providePlanService)

func providePlanRepo(store repositories.KVStore) repositories.IPlanRepository {
	return repositories.NewPlanRepository(store)
}

func providePlanService(planRepo repositories.IPlanRepository) services.PlanServiceInterface {
	return services.NewPlanService(planRepo)
}
