package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Catalog  CatalogConfig
	Pricing  PricingConfig
	Recorder RecorderConfig
	OpenAI   OpenAIConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	AllowedOrigins string
}

// CatalogConfig holds vehicle catalog source configuration. When DSN is set
// the catalog is read from PostgreSQL, otherwise from the CSV file.
type CatalogConfig struct {
	CSVPath            string
	DSN                string
	MaxConnections     int
	MaxIdleConnections int
}

// PricingConfig holds fuel-price provider configuration
type PricingConfig struct {
	APIBase string
	APIKey  string
	Timeout int
	Enabled bool
}

// RecorderConfig holds selection-log recorder configuration. An empty
// SQLitePath disables recording.
type RecorderConfig struct {
	SQLitePath string
}

// OpenAIConfig holds the OpenAI-compatible API configuration used by the
// refinement adapter
type OpenAIConfig struct {
	APIKey      string
	APIBase     string
	ChatModel   string
	Temperature float64
	MaxTokens   int
	Timeout     int
	Enabled     bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Catalog: CatalogConfig{
			CSVPath:            getEnv("CATALOG_CSV_PATH", "data/toyota.csv"),
			DSN:                getEnv("DATABASE_URL", getEnv("CATALOG_DSN", "")),
			MaxConnections:     getEnvAsInt("PG_MAX_CONNECTIONS", 25),
			MaxIdleConnections: getEnvAsInt("PG_MAX_IDLE_CONNECTIONS", 5),
		},
		Pricing: PricingConfig{
			APIBase: getEnv("GAS_PRICE_API_BASE", "https://api.collectapi.com"),
			APIKey:  getEnv("COLLECTAPI_API_KEY", ""),
			Timeout: getEnvAsInt("GAS_PRICE_TIMEOUT", 10),
			Enabled: getEnv("COLLECTAPI_API_KEY", "") != "",
		},
		Recorder: RecorderConfig{
			SQLitePath: getEnv("RECORDER_SQLITE_PATH", ""),
		},
		OpenAI: OpenAIConfig{
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			APIBase:     getEnv("OPENAI_API_BASE", "https://api.openai.com/v1"),
			ChatModel:   getEnv("OPENAI_CHAT_MODEL", "gpt-4o-mini"),
			Temperature: getEnvAsFloat("OPENAI_CHAT_TEMPERATURE", 0.2),
			MaxTokens:   getEnvAsInt("OPENAI_CHAT_MAX_TOKENS", 512),
			Timeout:     getEnvAsInt("OPENAI_TIMEOUT", 30),
			Enabled:     getEnv("OPENAI_API_KEY", "") != "",
		},
	}

	return cfg, nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default %f", key, defaultValue)
		return defaultValue
	}
	return value
}
