package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Square SquareConfig `json:"square"`
	Mocks  MocksConfig  `json:"mocks"`
	Server ServerConfig `json:"server"`
}

type SquareConfig struct {
	AccessToken string `json:"access_token"`
	Environment string `json:"environment"` // "sandbox" or "production"
	BaseURL     string `json:"base_url"`    // overrides the environment-derived URL
}

type MocksConfig struct {
	// Enable makes mock data the default for requests that carry no
	// mock-mode cookie. Lets the service run without upstream credentials.
	Enable bool `json:"enable"`
}

type ServerConfig struct {
	Addr     string `json:"addr"`
	LogLevel string `json:"log_level"`
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	config := &Config{
		Square: SquareConfig{
			AccessToken: os.Getenv("SQUARE_ACCESS_TOKEN"),
			Environment: getEnvOrDefault("SQUARE_ENVIRONMENT", "sandbox"),
			BaseURL:     os.Getenv("SQUARE_BASE_URL"),
		},
		Mocks: MocksConfig{
			Enable: getEnvBool("MOCK_MODE_DEFAULT", false),
		},
		Server: ServerConfig{
			Addr:     getEnvOrDefault("ADDR", ":8080"),
			LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
		},
	}

	return config, nil
}

// MissingCredentialError marks configuration problems so the route layer can
// tell "misconfigured" apart from a genuine bug.
type MissingCredentialError struct {
	Name string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("%s environment variable is required", e.Name)
}

func (c SquareConfig) Validate() error {
	if strings.TrimSpace(c.AccessToken) == "" {
		return &MissingCredentialError{Name: "SQUARE_ACCESS_TOKEN"}
	}
	return nil
}

func (c ServerConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
