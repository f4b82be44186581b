package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port           string `env:"PORT" envDefault:"9020"`
	JWTSecretKey   string `env:"JWT_SECRET_KEY,required"`
	JWTAlgorithm   string `env:"JWT_ALGORITHM" envDefault:"HS256"`
	MongoURI       string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDatabase  string `env:"MONGO_DB" envDefault:"customers"`
	RedisAddr      string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisSessionDB int    `env:"REDIS_DB_SESSION" envDefault:"0"`
	LogFile        string `env:"LOG_FILE"`
	LogFormat      string `env:"LOG_FORMAT" envDefault:"text"`
}

// Load reads configuration from the environment, with .env as a
// fallback for local development.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	switch cfg.JWTAlgorithm {
	case "HS256", "HS384", "HS512":
	default:
		return nil, fmt.Errorf("unsupported JWT_ALGORITHM %q", cfg.JWTAlgorithm)
	}

	return cfg, nil
}
