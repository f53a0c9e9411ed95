package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
// Following 12-factor app principles, all config is loaded from environment variables
type Config struct {
	Server   ServerConfig
	Auth     AuthConfig
	App      AppConfig
	AI       AIConfig
	Store    StoreConfig
	Order    OrderConfig
	LogLevel string
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
	RequestTimeout  int
}

type AuthConfig struct {
	APIKeys []string // Accepted X-API-Key values; empty disables the check
}

type AppConfig struct {
	Env       string // development or production
	StaticDir string
}

// AIConfig selects the translation/image provider. The active provider's
// key gates online mode; without it the offline adapters are used.
type AIConfig struct {
	Provider         string
	OpenAIAPIKey     string
	OpenAIBaseURL    string
	OpenAIChatModel  string
	OpenAIImageModel string
	GeminiAPIKey     string
	GeminiTextModel  string
	GeminiImageModel string
	Timeout          int // seconds, per outbound provider call
}

type StoreConfig struct {
	Driver     string // mongo or memory
	MongoURI   string
	Database   string
	Collection string
}

type OrderConfig struct {
	BasePrice float64
}

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	StoreMongo  = "mongo"
	StoreMemory = "memory"

	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 150),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
			RequestTimeout:  getEnvAsInt("REQUEST_TIMEOUT", 120),
		},
		Auth: AuthConfig{
			APIKeys: getEnvAsSlice("API_KEYS", nil),
		},
		App: AppConfig{
			Env:       strings.ToLower(getEnv("APP_ENV", EnvDevelopment)),
			StaticDir: getEnv("STATIC_DIR", "web"),
		},
		AI: AIConfig{
			Provider:         strings.ToLower(getEnv("AI_PROVIDER", ProviderOpenAI)),
			OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
			OpenAIBaseURL:    getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			OpenAIChatModel:  getEnv("OPENAI_CHAT_MODEL", "gpt-4o-mini"),
			OpenAIImageModel: getEnv("OPENAI_IMAGE_MODEL", "dall-e-3"),
			GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
			GeminiTextModel:  getEnv("GEMINI_TEXT_MODEL", "gemini-2.0-flash"),
			GeminiImageModel: getEnv("GEMINI_IMAGE_MODEL", "imagen-3.0-generate-002"),
			Timeout:          getEnvAsInt("PROVIDER_TIMEOUT", 90),
		},
		Store: StoreConfig{
			Driver:     strings.ToLower(getEnv("ORDER_STORE", StoreMongo)),
			MongoURI:   os.Getenv("MONGODB_URI"),
			Database:   getEnv("MONGODB_DATABASE", "tshirt_designer"),
			Collection: getEnv("MONGODB_COLLECTION", "orders"),
		},
		Order: OrderConfig{
			BasePrice: getEnvAsFloat("ORDER_BASE_PRICE", 89.99),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	switch c.App.Env {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("invalid APP_ENV: %s (must be development or production)", c.App.Env)
	}

	switch c.AI.Provider {
	case ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("invalid AI_PROVIDER: %s (must be openai or gemini)", c.AI.Provider)
	}

	switch c.Store.Driver {
	case StoreMongo, StoreMemory:
	default:
		return fmt.Errorf("invalid ORDER_STORE: %s (must be mongo or memory)", c.Store.Driver)
	}

	if c.Order.BasePrice <= 0 {
		return fmt.Errorf("ORDER_BASE_PRICE must be positive, got %v", c.Order.BasePrice)
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// IsDevelopment reports whether error details may be exposed to clients.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == EnvDevelopment
}

// ProviderKey returns the credential of the selected AI provider.
func (c AIConfig) ProviderKey() string {
	if c.Provider == ProviderGemini {
		return c.GeminiAPIKey
	}
	return c.OpenAIAPIKey
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
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
		return defaultValue
	}
	return value
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	parts := strings.Split(valueStr, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			values = append(values, p)
		}
	}
	return values
}
