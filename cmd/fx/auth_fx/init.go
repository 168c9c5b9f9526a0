package auth_fx

import (
	"errors"
	"time"

	"go.uber.org/fx"

	"tripweaver/internal/config"
	"tripweaver/internal/services"
	"tripweaver/pkg/utils"
)

const tokenTTL = 24 * time.Hour

var Module = fx.Provide(provideTokenIssuer, provideAuthService)

func provideTokenIssuer(cfg *config.Config) (*utils.TokenIssuer, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}
	return utils.NewTokenIssuer(cfg.JWTSecret, tokenTTL), nil
}

func provideAuthService(cfg *config.Config, issuer *utils.TokenIssuer) services.AuthServiceInterface {
	return services.NewAuthService(cfg, issuer)
}
