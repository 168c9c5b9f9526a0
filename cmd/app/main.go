package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"tripweaver/cmd/fx/auth_fx"
	"tripweaver/cmd/fx/config_fx"
	"tripweaver/cmd/fx/controllers_fx"
	"tripweaver/cmd/fx/db_fx"
	"tripweaver/cmd/fx/destination_fx"
	"tripweaver/cmd/fx/itinerary_fx"
	"tripweaver/cmd/fx/memcache_fx"
	"tripweaver/cmd/fx/plans_fx"
	"tripweaver/cmd/fx/settings_fx"
	"tripweaver/internal/api/controllers"
	"tripweaver/internal/config"
	"tripweaver/pkg/middleware"
	"tripweaver/pkg/utils"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	app := fx.New(appOptions(logger))
	app.Run()
}

func appOptions(logger *zap.Logger) fx.Option {
	return fx.Options(
		fx.Supply(logger),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		config_fx.Module,
		memcache_fx.Module,
		db_fx.Module,
		settings_fx.Module,
		auth_fx.Module,
		plans_fx.Module,
		itinerary_fx.Module,
		destination_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				zap.L().Info("starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					zap.L().Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			zap.L().Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

const loginRatePerMin = 10

type RouterParams struct {
	fx.In

	Config                *config.Config
	Issuer                *utils.TokenIssuer
	ItineraryController   *controllers.ItineraryController
	PlanController        *controllers.PlanController
	DestinationController *controllers.DestinationController
	SettingsController    *controllers.SettingsController
	AuthController        *controllers.AuthController
}

func ProvideRouter(p RouterParams) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, p)

	return r
}

func RegisterRoutes(r *gin.Engine, p RouterParams) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	limiter := middleware.NewRateLimiter(p.Config.GenerateRatePerMin)
	loginLimiter := middleware.NewRateLimiter(loginRatePerMin)

	r.POST("/auth/token", loginLimiter.Limit(), p.AuthController.TokenHandler)

	itineraryGroup := r.Group("/itineraries")
	itineraryGroup.POST("/generate", limiter.Limit(), p.ItineraryController.GenerateHandler)
	itineraryGroup.POST("/parse", p.ItineraryController.ParseHandler)
	itineraryGroup.POST("/annotate", p.ItineraryController.AnnotateHandler)

	r.GET("/venues/link", p.ItineraryController.VenueLinkHandler)

	plansGroup := r.Group("/plans")
	plansGroup.GET("", p.PlanController.ListPlansHandler)
	plansGroup.GET("/:slug", p.PlanController.GetPlanHandler)
	plansGroup.DELETE("/:slug", p.PlanController.DeletePlanHandler)

	destinationsGroup := r.Group("/destinations")
	destinationsGroup.GET("/image", p.DestinationController.ImageHandler)
	destinationsGroup.GET("/predictions", p.DestinationController.PredictionsHandler)

	settingsGroup := r.Group("/settings")
	settingsGroup.GET("/:key", p.SettingsController.GetSettingHandler)
	adminOnly := []gin.HandlerFunc{middleware.JWTAuthMiddleware(p.Issuer), middleware.RoleMiddleware(utils.RoleAdmin)}
	settingsGroup.PUT("/:key", append(adminOnly, p.SettingsController.PutSettingHandler)...)
	settingsGroup.DELETE("/:key", append(adminOnly, p.SettingsController.DeleteSettingHandler)...)
}
