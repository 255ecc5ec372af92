// Package config loads runtime settings from the environment. Flags on the
// CLI override individual values after loading.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/slivka2007/golfing-grouper/internal/logger"
)

// Config is the full runtime configuration. Every field has a usable
// default except the secrets, which stay empty until provided.
type Config struct {
	// DatabaseURL is the Postgres DSN. Empty selects the snapshot store.
	DatabaseURL string `envconfig:"DATABASE_URL"`

	// DataDir holds the snapshot store when no database is configured.
	DataDir string `envconfig:"DATA_DIR" default:"~/.golfing-grouper"`

	// PlatformsFile is the JSON registry seed.
	PlatformsFile string `envconfig:"PLATFORMS_FILE" default:"platforms.json"`

	// EncryptionPassphrase decrypts API keys in the registry seed. Empty
	// means the seed stores keys in the clear.
	EncryptionPassphrase string `envconfig:"ENCRYPTION_PASSPHRASE"`

	// WorkerLocations are the zip codes the periodic sweep searches.
	WorkerLocations []string `envconfig:"WORKER_LOCATIONS" default:"90210"`

	// WorkerDaysAhead is the rolling date window for sweeps.
	WorkerDaysAhead int `envconfig:"WORKER_DAYS_AHEAD" default:"7"`

	// WorkerInterval is the pause between sweeps.
	WorkerInterval time.Duration `envconfig:"WORKER_INTERVAL" default:"1h"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads configuration from GG_-prefixed environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("gg", &cfg); err != nil {
		return Config{}, fmt.Errorf("loading config from environment: %w", err)
	}
	return cfg, nil
}

// LoggerLevel maps the configured level string onto the logger's levels,
// defaulting to info for anything unrecognized.
func (c Config) LoggerLevel() logger.Level {
	switch c.LogLevel {
	case "debug":
		return logger.LevelDebug
	case "warn":
		return logger.LevelWarn
	case "error":
		return logger.LevelError
	default:
		return logger.LevelInfo
	}
}
