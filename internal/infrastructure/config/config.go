package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth  AuthConfig
	Mongo MongoConfig
	Redis RedisConfig
}

// AuthConfig holds token signing and throttling settings. Expiry values use
// the compact duration form, e.g. "24h", "30d", "900s".
type AuthConfig struct {
	JWTSecret     string `env:"JWT_SECRET, required"`
	AdminExpiry   string `env:"JWT_EXPIRY,         default=24h"`
	ClientExpiry  string `env:"CLIENT_JWT_EXPIRY,  default=30d"`
	RefreshExpiry string `env:"JWT_REFRESH_EXPIRY, default=30d"`

	RateLimit  int    `env:"AUTH_RATE_LIMIT,  default=200"`
	RateWindow string `env:"AUTH_RATE_WINDOW, default=1m"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=trexgym"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
