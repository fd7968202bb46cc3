package common

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	LLM     LLMConfig
	Extract ExtractConfig
}

// LLMConfig holds model-client configuration
type LLMConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	StrongModel string
	Temperature float32
	Timeout     time.Duration
}

// ExtractConfig holds extraction-pipeline configuration
type ExtractConfig struct {
	DefaultCurrencySymbol string
	AuditDBPath           string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			BaseURL:     getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			StrongModel: getEnv("DOCFIELDS_STRONG_MODEL", "gpt-4o"),
			Temperature: getEnvAsFloat32("OPENAI_TEMPERATURE", 0.0),
			Timeout:     getEnvAsDuration("OPENAI_TIMEOUT", 45*time.Second),
		},
		Extract: ExtractConfig{
			DefaultCurrencySymbol: getEnv("DOCFIELDS_DEFAULT_CURRENCY", "$"),
			AuditDBPath:           getEnv("DOCFIELDS_AUDIT_DB", ""),
		},
	}
}

// fileConfig mirrors Config for the optional YAML overlay. Zero values mean
// "keep whatever the environment provided".
type fileConfig struct {
	LLM struct {
		APIKey      string  `yaml:"api_key"`
		BaseURL     string  `yaml:"base_url"`
		Model       string  `yaml:"model"`
		StrongModel string  `yaml:"strong_model"`
		Temperature float32 `yaml:"temperature"`
		Timeout     string  `yaml:"timeout"`
	} `yaml:"llm"`
	Extract struct {
		DefaultCurrencySymbol string `yaml:"default_currency_symbol"`
		AuditDBPath           string `yaml:"audit_db_path"`
	} `yaml:"extract"`
}

// ApplyFile overlays values from a YAML config file onto c.
func (c *Config) ApplyFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return WrapError(err, "read config file")
	}
	var fc fileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return WrapError(err, "parse config file")
	}

	if fc.LLM.APIKey != "" {
		c.LLM.APIKey = fc.LLM.APIKey
	}
	if fc.LLM.BaseURL != "" {
		c.LLM.BaseURL = fc.LLM.BaseURL
	}
	if fc.LLM.Model != "" {
		c.LLM.Model = fc.LLM.Model
	}
	if fc.LLM.StrongModel != "" {
		c.LLM.StrongModel = fc.LLM.StrongModel
	}
	if fc.LLM.Temperature != 0 {
		c.LLM.Temperature = fc.LLM.Temperature
	}
	if fc.LLM.Timeout != "" {
		d, err := time.ParseDuration(fc.LLM.Timeout)
		if err != nil {
			return NewAppError("CONFIG_ERROR", fmt.Sprintf("invalid llm.timeout %q", fc.LLM.Timeout), ErrInvalidInput)
		}
		c.LLM.Timeout = d
	}
	if fc.Extract.DefaultCurrencySymbol != "" {
		c.Extract.DefaultCurrencySymbol = fc.Extract.DefaultCurrencySymbol
	}
	if fc.Extract.AuditDBPath != "" {
		c.Extract.AuditDBPath = fc.Extract.AuditDBPath
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate checks the loaded configuration. A missing API key is not
// an error: extraction degrades to the non-model paths.
func (c *Config) Validate() error {
	if c.LLM.Model == "" || c.LLM.StrongModel == "" {
		return NewAppError("CONFIG_ERROR", "model names must not be empty", ErrInvalidInput)
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return NewAppError("CONFIG_ERROR", "OPENAI_TEMPERATURE must be within 0..2", ErrInvalidInput)
	}
	if c.LLM.Timeout <= 0 {
		return NewAppError("CONFIG_ERROR", "OPENAI_TIMEOUT must be positive", ErrInvalidInput)
	}
	return nil
}
