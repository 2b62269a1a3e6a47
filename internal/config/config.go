// Package config holds the service configuration and its loader.
package config

import "time"

// Config contains process configuration. Keys follow the koanf tags, env vars
// use the NATURAPI_ prefix (NATURAPI_DATABASE_URL -> database_url).
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8000".
	Addr string `koanf:"addr"`

	// GinMode is passed to gin.SetMode: debug, release or test.
	GinMode string `koanf:"gin_mode"`

	// LogMode selects the zap preset: development or production.
	LogMode string `koanf:"log_mode"`

	DatabaseURL          string `koanf:"database_url"`
	DBMaxOpenConns       int    `koanf:"db_max_open_conns"`
	DBMaxIdleConns       int    `koanf:"db_max_idle_conns"`
	DBConnMaxLifetimeSec int    `koanf:"db_conn_max_lifetime_sec"`
	DBAutoMigrate        bool   `koanf:"db_auto_migrate"`

	// StorageBackend is either "gcs" or "local".
	StorageBackend   string `koanf:"storage_backend"`
	GCSBucket        string `koanf:"gcs_bucket"`
	GCSCredentials   string `koanf:"gcs_credentials"`
	GCSEmulatorHost  string `koanf:"gcs_emulator_host"`
	GCSConfigureCORS bool   `koanf:"gcs_configure_cors"`
	GCSPublicBaseURL string `koanf:"gcs_public_base_url"`

	// PublicBaseURL prefixes URLs of images kept by the local backend.
	PublicBaseURL string `koanf:"public_base_url"`
	LocalImageDir string `koanf:"local_image_dir"`

	// CORSOrigins lists allowed origins, "*" allows any origin. From the
	// environment it is read as a comma separated value.
	CORSOrigins []string `koanf:"cors_origins"`

	ShutdownTimeoutSec int `koanf:"shutdown_timeout_sec"`
}

const (
	StorageBackendGCS   = "gcs"
	StorageBackendLocal = "local"
)

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Addr:                 ":8000",
		GinMode:              "release",
		LogMode:              "development",
		DBMaxOpenConns:       10,
		DBMaxIdleConns:       5,
		DBConnMaxLifetimeSec: 300,
		DBAutoMigrate:        true,
		StorageBackend:       StorageBackendLocal,
		PublicBaseURL:        "http://localhost:8000",
		LocalImageDir:        "./data/images",
		CORSOrigins:          []string{"*"},
		ShutdownTimeoutSec:   10,
	}
}

func (c *Config) ConnMaxLifetime() time.Duration {
	return time.Duration(c.DBConnMaxLifetimeSec) * time.Second
}

func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSec) * time.Second
}
