package controllers_fx

import (
	"go.uber.org/fx"

	"tripweaver/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewPlanController),
	fx.Provide(controllers.NewDestinationController),
	fx.Provide(controllers.NewSettingsController),
	fx.Provide(controllers.NewAuthController))
