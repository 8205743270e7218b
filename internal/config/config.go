package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config gathers everything the service reads from the environment.
// DATABASE_URL and AMQP_URL are optional: without them the service
// falls back to in-memory repositories and a no-op event publisher.
type Config struct {
	Port        string
	DatabaseURL string
	AMQPURL     string
	JWTSecret   string
}

func Load() (*Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg := &Config{
		Port:        getEnv("PORT", "8000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		AMQPURL:     os.Getenv("AMQP_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
	}

	for name, value := range map[string]string{
		"JWT_SECRET": cfg.JWTSecret,
	} {
		if value == "" {
			return nil, fmt.Errorf("missing env var: %s", name)
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
