// Package config handles configuration loading for the todo service.
package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds all configuration for the todo service. The JWT secret has
// no default baked into source; the process refuses to start without one.
type Config struct {
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSSLMode       string
	JWTSecret       string
	JWTAccessExpiry time.Duration
	Port            string
	Environment     string
}

// Load reads configuration from environment variables. It returns an error
// when a required variable is missing.
func Load() (*Config, error) {
	cfg := &Config{
		DBSSLMode:       getEnv("DB_SSL_MODE", "disable"),
		JWTAccessExpiry: parseDuration(getEnv("JWT_ACCESS_EXPIRY", "15m"), 15*time.Minute),
		Port:            getEnv("PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
	}

	var err error
	if cfg.DBHost, err = getEnvRequired("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.DBPort, err = getEnvRequired("DB_PORT"); err != nil {
		return nil, err
	}
	if cfg.DBUser, err = getEnvRequired("DB_USER"); err != nil {
		return nil, err
	}
	if cfg.DBPassword, err = getEnvRequired("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.DBName, err = getEnvRequired("DB_NAME"); err != nil {
		return nil, err
	}
	if cfg.JWTSecret, err = getEnvRequired("JWT_SECRET"); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvRequired(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("required environment variable %s is not set", key)
	}
	return value, nil
}

func parseDuration(value string, defaultValue time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
