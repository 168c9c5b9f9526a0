package destination_fx

import (
	"net/http"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripweaver/internal/config"
	"tripweaver/internal/services"
	"tripweaver/pkg/places"
)

var Module = fx.Provide(provideDestinationService)

func provideDestinationService(cfg *config.Config, settings services.SettingsServiceInterface, logger *zap.Logger) services.DestinationServiceInterface {
	httpClient := &http.Client{Timeout: 10 * time.Second}
	return services.NewDestinationService(cfg, settings, func(apiKey string) services.PlacesLookup {
		return places.NewClient(apiKey, httpClient, logger.Named("places"))
	})
}
