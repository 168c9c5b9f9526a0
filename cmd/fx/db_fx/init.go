package db_fx

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripweaver/internal/config"
	"tripweaver/internal/infra"
	"tripweaver/internal/models/db_models"
	"tripweaver/internal/repositories"
	mem "tripweaver/pkg/memcache"
)

var Module = fx.Provide(provideStore)

// provideStore opens the backend named by STORE_BACKEND and closes it when
// the app stops.
func provideStore(lc fx.Lifecycle, cfg *config.Config, memStore *mem.KVStore) (repositories.KVStore, error) {
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		db, err := infra.InitPostgresql(cfg.PostgresURL)
		if err != nil {
			return nil, err
		}
		if err := db.AutoMigrate(&db_models.Setting{}); err != nil {
			infra.ClosePostgresql(db)
			return nil, fmt.Errorf("migrate settings: %w", err)
		}
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				infra.ClosePostgresql(db)
				return nil
			},
		})
		zap.L().Info("using postgres store")
		return repositories.NewSettingsRepository(db), nil

	case config.BackendRedis:
		client, err := infra.InitRedis(context.Background(), cfg.RedisAddr)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				infra.CloseRedis(client)
				return nil
			},
		})
		zap.L().Info("using redis store", zap.String("addr", cfg.RedisAddr))
		return repositories.NewRedisSettingsRepository(client), nil

	case config.BackendMemory, "":
		zap.L().Info("using in-memory store")
		return memStore, nil

	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}
}
