package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"naturapi/cmd/fx/config_fx"
	"naturapi/cmd/fx/controllers_fx"
	"naturapi/cmd/fx/db_fx"
	"naturapi/cmd/fx/fauna_fx"
	"naturapi/cmd/fx/flora_fx"
	"naturapi/cmd/fx/image_fx"
	"naturapi/cmd/fx/logger_fx"
	"naturapi/cmd/fx/metrics_fx"
	"naturapi/cmd/fx/pois_fx"
	"naturapi/cmd/fx/storage_fx"
	"naturapi/internal/api"
	"naturapi/internal/config"
	"naturapi/pkg/logger"
	"naturapi/pkg/metrics"
)

func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		metrics_fx.Module,
		db_fx.Module,
		storage_fx.Module,
		pois_fx.Module,
		flora_fx.Module,
		fauna_fx.Module,
		image_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func ProvideRouter(cfg *config.Config, log *logger.Logger, m *metrics.Manager, ctrl api.Controllers) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	return api.NewRouter(cfg, log, m, ctrl)
}

func StartServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, cfg *config.Config, log *logger.Logger, engine *gin.Engine) {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("Starting HTTP server", "addr", cfg.Addr)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("Failed to start server", "error", err)
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping HTTP server")
			ctx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout())
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
}
