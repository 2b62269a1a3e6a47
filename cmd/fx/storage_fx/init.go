package storage_fx

import (
	"context"

	"go.uber.org/fx"

	"naturapi/internal/config"
	"naturapi/internal/storage"
	"naturapi/internal/storage/gcs"
	"naturapi/internal/storage/local"
	"naturapi/pkg/logger"
)

var Module = fx.Provide(provideImageStorage)

func provideImageStorage(lc fx.Lifecycle, cfg *config.Config, log *logger.Logger) (storage.ImageStorage, error) {
	if cfg.StorageBackend == config.StorageBackendLocal {
		store, err := local.New(cfg.LocalImageDir, cfg.PublicBaseURL, log)
		if err != nil {
			return nil, err
		}
		return store, nil
	}

	ctx := context.Background()
	store, err := gcs.New(ctx, gcs.Config{
		Bucket:        cfg.GCSBucket,
		Credentials:   cfg.GCSCredentials,
		EmulatorHost:  cfg.GCSEmulatorHost,
		PublicBaseURL: cfg.GCSPublicBaseURL,
	}, log)
	if err != nil {
		return nil, err
	}

	if cfg.GCSConfigureCORS {
		if err := store.ConfigureCORS(ctx); err != nil {
			log.Warn("Could not configure bucket CORS", "bucket", cfg.GCSBucket, "error", err)
		}
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return store.Close()
		},
	})
	return store, nil
}
