package config

import (
	"errors"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port      string        `env:"PORT"       envDefault:"8080"`
	DBDSN     string        `env:"DB_DSN"     envDefault:"studenthub.db"` // sqlite file in project root
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL"  envDefault:"24h"`
	LogFile   string        `env:"LOG_FILE"   envDefault:"./studenthub.log"`
}

// Load parses process configuration from the environment. The signing key has
// no default: running without one would mint tokens any other instance could
// forge, so its absence is fatal here rather than a per-request error later.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("config: JWT_SECRET is required")
	}
	log.Printf("[config] PORT=%s DB_DSN=%s TOKEN_TTL=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.TokenTTL, cfg.LogFile)
	return cfg, nil
}
