package config

import (
	"errors"
	"strconv"
)

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
}

// Load reads configuration from the process environment. The JWT secret has
// no default: issuing tokens against a compiled-in key is not allowed.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        strconv.Itoa(GetEnvAsInt("PORT", 3000)),
		DatabaseURL: GetEnvAsString("DATABASE_URL", ""),
		JWTSecret:   GetEnvAsString("JWT_SECRET", ""),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL must be set")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}

	return cfg, nil
}
