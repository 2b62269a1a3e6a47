package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"naturapi/internal/config"
	"naturapi/internal/models/db_models"
	"naturapi/pkg/logger"
)

func InitPostgresql(cfg *config.Config, log *logger.Logger) (*gorm.DB, error) {
	connectionPool, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Error("Error connecting to database", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrConnect, err)
	}

	sqlDB, err := connectionPool.DB()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnect, err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime())

	if cfg.DBAutoMigrate {
		if err := Migrate(connectionPool); err != nil {
			return nil, err
		}
		log.Info("Database schema migrated")
	}

	return connectionPool, nil
}

// Migrate creates or updates the tables of every model.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(db_models.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func ClosePostgresql(db *gorm.DB, log *logger.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error("Error getting database instance", "error", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Error("Error closing database connection", "error", err)
	} else {
		log.Info("PostgreSQL database connection closed successfully")
	}
}
