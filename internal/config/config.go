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
	Server ServerConfig
	Degiro DegiroConfig
	CORS   CORSConfig
	Env    string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DegiroConfig holds the brokerage endpoint configuration. BaseURL is only
// overridden in tests and local stubs; the default is the production trader
// endpoint.
type DegiroConfig struct {
	BaseURL string
	Timeout time.Duration
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	timeoutSeconds, err := strconv.Atoi(getEnv("DEGIRO_TIMEOUT_SECONDS", "30"))
	if err != nil || timeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid DEGIRO_TIMEOUT_SECONDS: %q", os.Getenv("DEGIRO_TIMEOUT_SECONDS"))
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Degiro: DegiroConfig{
			BaseURL: getEnv("DEGIRO_BASE_URL", ""),
			Timeout: time.Duration(timeoutSeconds) * time.Second,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitOrigins(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost")),
		},
		Env: getEnv("ENV", "development"),
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// IsProduction reports whether the server runs with the production log level.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func splitOrigins(value string) []string {
	parts := strings.Split(value, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
