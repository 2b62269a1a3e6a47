package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix     = "NATURAPI_"
	configFileEnv = "NATURAPI_CONFIG"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. .env file in the working directory, if any
//  3. file (YAML) if NATURAPI_CONFIG is set
//  4. env (prefix NATURAPI_)
//
// DATABASE_URL is honoured when database_url is not set any other way.
func Load() (*Config, error) {
	base := New()

	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	k := koanf.New(".")

	if path := os.Getenv(configFileEnv); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	envProvider := env.ProviderWithValue(envPrefix, ".", func(key, value string) (string, interface{}) {
		key = strings.TrimPrefix(strings.ToLower(key), strings.ToLower(envPrefix))
		if key == "cors_origins" {
			return key, splitList(value)
		}
		return key, value
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first problem found in c.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("%w: database_url must be set", ErrInvalidConfig)
	}
	switch c.StorageBackend {
	case StorageBackendGCS:
		if c.GCSBucket == "" {
			return fmt.Errorf("%w: gcs_bucket must be set for the gcs storage backend", ErrInvalidConfig)
		}
	case StorageBackendLocal:
		if c.LocalImageDir == "" {
			return fmt.Errorf("%w: local_image_dir must be set for the local storage backend", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown storage_backend %q", ErrInvalidConfig, c.StorageBackend)
	}
	if c.ShutdownTimeoutSec <= 0 {
		return fmt.Errorf("%w: shutdown_timeout_sec must be positive", ErrInvalidConfig)
	}
	return nil
}

func splitList(value string) []string {
	out := make([]string, 0)
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
