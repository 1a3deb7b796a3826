package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration for the fetcher.
type Config struct {
	ServiceName string
	Env         string // e.g. "dev", "uat", "prod"
	Region      string // AWS region; empty means ask the operator
	LogLevel    string
}

// Load loads configuration from environment variables and optional .env file.
// The default log level is warn so the interactive session stays quiet
// unless diagnostics are explicitly requested.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServiceName: getEnv("SERVICE_NAME", "aws-secrets-manager-fetcher"),
		Env:         getEnv("ENV", "dev"),
		Region:      getEnv("AWS_DEFAULT_REGION", ""),
		LogLevel:    getEnv("LOG_LEVEL", "warn"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
