package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Port           string
	AllowedOrigins []string
	LogLevel       string
	QueryAPIURL    string
	QueryTimeout   time.Duration
	QueryMaxWait   int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:5173"), ","),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		QueryAPIURL:    getEnv("QUERY_API_URL", "http://localhost:9000/query"),
	}

	// Client-side HTTP timeout for the analytics endpoint
	queryTimeout, err := strconv.Atoi(getEnv("QUERY_TIMEOUT", "90"))
	if err != nil {
		return nil, fmt.Errorf("invalid QUERY_TIMEOUT: %w", err)
	}
	config.QueryTimeout = time.Duration(queryTimeout) * time.Second

	// Server-side wait bound sent with every query
	config.QueryMaxWait, err = strconv.Atoi(getEnv("QUERY_MAX_WAIT", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid QUERY_MAX_WAIT: %w", err)
	}

	// Trim spaces from allowed origins
	for i, origin := range config.AllowedOrigins {
		config.AllowedOrigins[i] = strings.TrimSpace(origin)
	}

	return config, nil
}

// getEnv gets an environment variable with a fallback default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
