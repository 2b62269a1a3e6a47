package logger_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"naturapi/internal/config"
	"naturapi/pkg/logger"
)

var Module = fx.Options(
	fx.Provide(provideLogger),
	fx.WithLogger(func(log *logger.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: log.Zap()}
	}),
)

func provideLogger(lc fx.Lifecycle, cfg *config.Config) (*logger.Logger, error) {
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Sync()
			return nil
		},
	})
	return log, nil
}
