// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the storefront and the reference backend
type Config struct {
	App     AppConfig
	Client  ClientConfig
	Server  ServerConfig
	Logging LoggingConfig
}

// AppConfig contains application-level configuration
type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

// ClientConfig contains everything the storefront needs to reach the backend
type ClientConfig struct {
	BaseURL     string
	UserID      string
	HTTPTimeout time.Duration
}

// ServerConfig contains HTTP server configuration for the reference backend
type ServerConfig struct {
	Port                string
	ReadTimeout         time.Duration
	WriteTimeout        time.Duration
	IdleTimeout         time.Duration
	CORSAllowedOrigins  []string
	StaticDir           string
	NthOrderForDiscount int
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}

	config := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Storefront"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Client: ClientConfig{
			BaseURL:     getEnv("BACKEND_BASE_URL", "http://localhost:8000"),
			UserID:      getEnv("DEMO_USER_ID", "demo_user"),
			HTTPTimeout: getEnvAsDuration("HTTP_TIMEOUT", 15*time.Second),
		},
		Server: ServerConfig{
			Port:         getEnv("APP_PORT", "8000"),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getEnvAsDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS",
				[]string{"http://localhost:5173", "http://localhost:5174"}),
			StaticDir:           getEnv("STATIC_DIR", "."),
			NthOrderForDiscount: getEnvAsInt("NTH_ORDER_FOR_DISCOUNT", 5),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Client.BaseURL == "" {
		return fmt.Errorf("BACKEND_BASE_URL is required")
	}
	if c.Client.UserID == "" {
		return fmt.Errorf("DEMO_USER_ID is required")
	}
	if c.Server.Port == "" {
		return fmt.Errorf("APP_PORT is required")
	}
	if c.Server.NthOrderForDiscount < 1 {
		return fmt.Errorf("NTH_ORDER_FOR_DISCOUNT must be at least 1")
	}
	return nil
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds) * time.Second
		}
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		for i, part := range parts {
			parts[i] = strings.TrimSpace(part)
		}
		return parts
	}
	return defaultValue
}
