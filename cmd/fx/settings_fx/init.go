package settings_fx

import (
	"context"

	"go.uber.org/fx"

	"tripweaver/internal/repositories"
	"tripweaver/internal/services"
)

var Module = fx.Options(
	fx.Provide(provideSettingsService),
	fx.Invoke(loadSettings),
)

func provideSettingsService(store repositories.KVStore) services.SettingsServiceInterface {
	return services.NewSettingsService(store)
}

func loadSettings(lc fx.Lifecycle, settings services.SettingsServiceInterface) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return settings.Load(ctx)
		},
	})
}
