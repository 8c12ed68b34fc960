package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`

	// OpenRouter settings
	OpenRouterAPIKey   string `env:"OPENROUTER_API_KEY,required"`
	OpenRouterBaseURL  string `env:"OPENROUTER_BASE_URL" envDefault:"https://openrouter.ai/api/v1"`
	OpenRouterReferrer string `env:"OPENROUTER_REFERRER"`
	OpenRouterTitle    string `env:"OPENROUTER_TITLE"`

	// S3 website storage
	S3Bucket    string `env:"S3_BUCKET" envDefault:"website-generator"`
	S3Region    string `env:"AWS_REGION" envDefault:"us-east-1"`
	S3Endpoint  string `env:"S3_ENDPOINT,required"`
	S3AccessKey string `env:"AWS_ACCESS_KEY_ID,required"`
	S3SecretKey string `env:"AWS_SECRET_ACCESS_KEY,required"`

	// Generation schedule (cron expression, UTC)
	GenerateCron string `env:"GENERATE_CRON" envDefault:"0 0 * * *"`

	RateLimit       int           `env:"RATE_LIMIT" envDefault:"100"`
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`

	PostgresUser     string `env:"POSTGRES_USER" envDefault:"website"`
	PostgresPassword string `env:"POSTGRES_PASSWORD" envDefault:"password"`
	PostgresHost     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	PostgresPort     string `env:"POSTGRES_PORT" envDefault:"5432"`
	PostgresDatabase string `env:"POSTGRES_DATABASE" envDefault:"website_generator"`
	PostgresSSLMode  string `env:"POSTGRES_SSL_MODE" envDefault:"disable"`
}

func Load() (*Config, error) {
	// .env is optional; real deployments use the environment directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
