package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const defaultJWTSecret = "dev-secret-change-in-production"

var (
	ErrDefaultSecretInProduction = errors.New("JWT_SECRET must be set in production environment")
	ErrInvalidJWTTTL             = errors.New("JWT_TTL must be a positive number of minutes")
	ErrUnsupportedDriver         = errors.New("DATABASE_DRIVER must be mysql or sqlite")
)

// Config holds the runtime settings. JWTTTL is in minutes.
type Config struct {
	Port           string `env:"PORT"                  envDefault:"8080"`
	Env            string `env:"ENV"                   envDefault:"development"`
	DatabaseDriver string `env:"DATABASE_DRIVER"       envDefault:"mysql"`
	DatabaseDSN    string `env:"DATABASE_DSN"          envDefault:"root:password@tcp(127.0.0.1:3306)/carsapi?parseTime=true"`
	AutoMigrate    bool   `env:"DATABASE_AUTO_MIGRATE" envDefault:"true"`
	JWTSecret      string `env:"JWT_SECRET"            envDefault:"dev-secret-change-in-production"`
	JWTTTL         int    `env:"JWT_TTL"               envDefault:"60"`
	RedisURL       string `env:"REDIS_URL"`
}

// Load reads the configuration from the environment and rejects unusable combinations.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Env == "production" && cfg.JWTSecret == defaultJWTSecret {
		return Config{}, ErrDefaultSecretInProduction
	}
	if cfg.JWTTTL <= 0 {
		return Config{}, ErrInvalidJWTTTL
	}
	switch cfg.DatabaseDriver {
	case "mysql", "sqlite":
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.DatabaseDriver)
	}

	return cfg, nil
}

// JWTExpiry returns the token lifetime as a duration.
func (c Config) JWTExpiry() time.Duration {
	return time.Duration(c.JWTTTL) * time.Minute
}
