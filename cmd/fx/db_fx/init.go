package db_fx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"naturapi/internal/config"
	"naturapi/internal/infra"
	"naturapi/pkg/logger"
)

var Module = fx.Provide(
	provideDB)

func provideDB(lc fx.Lifecycle, cfg *config.Config, log *logger.Logger) (*gorm.DB, error) {
	db, err := infra.InitPostgresql(cfg, log)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db, log)
			return nil
		},
	})
	return db, nil
}
