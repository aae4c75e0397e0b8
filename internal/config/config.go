package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v10"
)

const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"

	LLMProviderGenAI    = "genai"
	LLMProviderOpenAI   = "openai"
	LLMProviderDisabled = "disabled"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort        string `env:"HTTP_PORT" envDefault:"8080"`
	StorageBackend  string `env:"STORAGE_BACKEND" envDefault:"memory"`
	DatasetKey      string `env:"DATASET_KEY" envDefault:"reviewmine:dataset"`
	SeedURL         string `env:"SEED_URL"`
	DatabaseURL     string `env:"DATABASE_URL"`
	RedisAddr       string `env:"REDIS_ADDR"`
	RedisPassword   string `env:"REDIS_PASSWORD"`
	RedisDB         int    `env:"REDIS_DB" envDefault:"0"`
	LLMProvider     string `env:"LLM_PROVIDER" envDefault:"genai"`
	LLMAPIKey       string `env:"LLM_API_KEY"`
	LLMBaseURL      string `env:"LLM_BASE_URL" envDefault:"https://api.openai.com/v1"`
	LLMModel        string `env:"LLM_MODEL" envDefault:"gemini-3-flash-preview"`
	SelfProfileID   string `env:"SELF_PROFILE_ID" envDefault:"me"`
	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"en"`
	PageSize        int    `env:"PAGE_SIZE" envDefault:"10"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate revisa combinaciones que env no puede expresar con tags.
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case StorageMemory:
	case StorageRedis:
		if c.RedisAddr == "" {
			return errors.New("REDIS_ADDR is required for redis storage")
		}
	case StoragePostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required for postgres storage")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.StorageBackend)
	}

	switch c.LLMProvider {
	case LLMProviderGenAI, LLMProviderOpenAI:
		if c.LLMAPIKey == "" {
			return fmt.Errorf("LLM_API_KEY is required for provider %q", c.LLMProvider)
		}
	case LLMProviderDisabled:
	default:
		return fmt.Errorf("unknown llm provider %q", c.LLMProvider)
	}

	if c.PageSize <= 0 {
		return fmt.Errorf("invalid page size %d", c.PageSize)
	}
	if c.DatasetKey == "" {
		return errors.New("DATASET_KEY must not be empty")
	}
	return nil
}
