package itinerary_fx

import (
	"go.uber.org/fx"

	"tripweaver/internal/config"
	"tripweaver/internal/services"
	"tripweaver/pkg/utils"
)

var Module = fx.Provide(provideItineraryService)

func provideItineraryService(
	cfg *config.Config,
	settings services.SettingsServiceInterface,
	plans services.PlanServiceInterface,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(cfg, settings, plans, utils.NewTextGenerator)
}
