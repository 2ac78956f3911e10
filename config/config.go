package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port            string   `envconfig:"PORT" default:"5000"`
	MongoURI        string   `envconfig:"MONGODB_URI" required:"true"`
	DBName          string   `envconfig:"DB_NAME" default:"fastGrocer"`
	JWTSecret       string   `envconfig:"ACCESS_TOKEN_SECRET" required:"true"`
	StripeSecretKey string   `envconfig:"STRIPE_SECRET_KEY"`
	LogLevel        string   `envconfig:"LOG_LEVEL" default:"info"`
	AllowOrigins    []string `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
}

// Load reads .env when present and then parses the environment into a
// Config. All credentials come from the environment; nothing is baked in.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file loaded, relying on process environment")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}
