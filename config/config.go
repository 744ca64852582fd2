package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the server reads from the environment. A .env
// file, if present, is loaded by main before this is parsed.
type Config struct {
	ListenAddr     string        `env:"LISTEN_ADDR" envDefault:":6969"`
	CatalogDBPath  string        `env:"CATALOG_DB_PATH" envDefault:"./students.db"`
	StoreDBPath    string        `env:"STORE_DB_PATH" envDefault:"./attendance.db"`
	JWTSecret      string        `env:"JWT_SECRET" envDefault:"dev-secret-change-me"`
	JWTTTL         time.Duration `env:"JWT_TTL" envDefault:"24h"`
	AllowedOrigins []string      `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return &cfg, nil
}
