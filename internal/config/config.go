package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dongycare/checker-backend/internal/entity"
	pkgRetry "github.com/dongycare/checker-backend/internal/pkg/retry"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr string `env:"SERVER_ADDR" envDefault:":8080"`

	// Gemini provider configuration
	GeminiCfg GeminiConnectorConfig `envPrefix:"GEMINI_"`

	// Rate limiting configuration
	RateLimitCfg RateLimitConfig `envPrefix:"RATE_LIMIT_"`

	// Image upload configuration
	UploadCfg UploadConfig `envPrefix:"UPLOAD_"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`

	// Symptom catalog (loaded from JSON file, never mutated at runtime)
	SymptomGroups []entity.SymptomGroup

	// Environment (set from flag, not from env var)
	Environment string
}

// GeminiConnectorConfig configures the generateContent call.
// The API key is deliberately not required at startup: its absence is a
// per-request configuration error, matching the relay contract.
type GeminiConnectorConfig struct {
	HTTPClientConfig
	APIKey string          `env:"API_KEY"`
	Model  string          `env:"MODEL" envDefault:"gemini-2.5-flash-preview-05-20"`
	Retry  pkgRetry.Config `envPrefix:"RETRY_"`
}

type HTTPClientConfig struct {
	Url                   string        `env:"SERVICE_URL" envDefault:"https://generativelanguage.googleapis.com"`
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"90s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"10s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"90s"`
}

// RateLimitConfig holds the per-IP token bucket parameters.
type RateLimitConfig struct {
	Rate     float64 `env:"RATE" envDefault:"3"`
	Capacity int64   `env:"CAPACITY" envDefault:"1000"`
}

// UploadConfig holds image upload limits.
type UploadConfig struct {
	MaxImageSize int64 `env:"MAX_IMAGE_SIZE" envDefault:"5242880"` // 5 MiB, exclusive
}

// symptomCatalog represents the structure of symptom_groups.json
type symptomCatalog struct {
	Groups []entity.SymptomGroup `json:"groups"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = *envFlag

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := loadSymptomGroups(cfg); err != nil {
		return nil, fmt.Errorf("load symptom groups: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.RateLimitCfg.Rate <= 0 {
		return fmt.Errorf("RATE_LIMIT_RATE must be positive, got %v", cfg.RateLimitCfg.Rate)
	}
	if cfg.RateLimitCfg.Capacity < 1 {
		return fmt.Errorf("RATE_LIMIT_CAPACITY must be at least 1, got %d", cfg.RateLimitCfg.Capacity)
	}
	if cfg.UploadCfg.MaxImageSize < 1 {
		return fmt.Errorf("UPLOAD_MAX_IMAGE_SIZE must be positive, got %d", cfg.UploadCfg.MaxImageSize)
	}
	if cfg.GeminiCfg.Model == "" {
		return fmt.Errorf("GEMINI_MODEL must not be empty")
	}
	return nil
}

func loadSymptomGroups(cfg *Config) error {
	catalogPath := filepath.Join("internal", "config", "symptom_groups.json")

	if _, err := os.Stat(catalogPath); os.IsNotExist(err) {
		fmt.Printf("Warning: symptom catalog not found at %s, using built-in catalog\n", catalogPath)
		cfg.SymptomGroups = DefaultSymptomGroups()
		return nil
	}

	data, err := os.ReadFile(catalogPath)
	if err != nil {
		return fmt.Errorf("read symptom catalog: %w", err)
	}

	var catalog symptomCatalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return fmt.Errorf("parse symptom catalog JSON: %w", err)
	}

	if len(catalog.Groups) == 0 {
		return fmt.Errorf("symptom catalog contains no groups: %s", catalogPath)
	}

	cfg.SymptomGroups = catalog.Groups

	fmt.Printf("Loaded %d symptom groups from %s\n", len(cfg.SymptomGroups), catalogPath)
	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
