package config_fx

import (
	"go.uber.org/fx"

	"tripweaver/internal/config"
)

var Module = fx.Provide(config.Load)
