package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Config is the process configuration, decoded from the environment once at
// start and passed down explicitly.
type Config struct {
	Port     string `env:"PORT,default=8080"`
	LogLevel string `env:"LOG_LEVEL,default=info"`

	DBDriver    string `env:"DB_DRIVER,default=sqlite"`
	DatabaseURL string `env:"DATABASE_URL,default=data/app.db"`
	SeedPath    string `env:"SEED_PATH,default=data/seeds/listings.json"`

	// Base URL of the geocode proxy consumed by the resolver. Empty means
	// this process's own listener.
	GeocodeBaseURL string        `env:"GEOCODE_BASE_URL"`
	GeocodeTimeout time.Duration `env:"GEOCODE_TIMEOUT,default=10s"`

	CacheBackend string        `env:"CACHE_BACKEND,default=memory"`
	RedisAddr    string        `env:"REDIS_ADDR,default=localhost:6379"`
	RedisTTL     time.Duration `env:"REDIS_TTL,default=24h"`

	NominatimURL       string `env:"NOMINATIM_URL,default=https://nominatim.openstreetmap.org"`
	NominatimUserAgent string `env:"NOMINATIM_USER_AGENT,default=HobbiesApp/1.0 (info@hobbiies.dk)"`
}

// Load reads an optional .env file and decodes the environment into Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load config: read .env: %w", err)
	}

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("load config: decode environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks enumerated settings and fills derived defaults.
func (c *Config) Validate() error {
	switch c.CacheBackend {
	case CacheMemory, CacheRedis:
	default:
		return fmt.Errorf("config: CACHE_BACKEND must be %q or %q, got %q", CacheMemory, CacheRedis, c.CacheBackend)
	}

	if c.GeocodeTimeout <= 0 {
		return fmt.Errorf("config: GEOCODE_TIMEOUT must be positive, got %s", c.GeocodeTimeout)
	}

	if strings.TrimSpace(c.GeocodeBaseURL) == "" {
		c.GeocodeBaseURL = "http://localhost:" + c.Port
	}
	c.GeocodeBaseURL = strings.TrimRight(c.GeocodeBaseURL, "/")

	return nil
}

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
