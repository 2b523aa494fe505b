package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultLLMEndpoint is the Cerebras chat completions endpoint.
	DefaultLLMEndpoint = "https://api.cerebras.ai/v1/chat/completions"
	// DefaultLLMModel is the model requested when CEREBRAS_MODEL is unset.
	DefaultLLMModel = "llama-3.3-70b"
)

// LLMConfig holds chat-completion endpoint settings.
type LLMConfig struct {
	APIKey   string
	Endpoint string
	Model    string
}

// Configured reports whether a credential is available.
func (c LLMConfig) Configured() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// SessionConfig controls the in-memory session store.
type SessionConfig struct {
	MaxIdleMin int
}

// MaxIdle returns the idle eviction window.
func (c SessionConfig) MaxIdle() time.Duration {
	return time.Duration(c.MaxIdleMin) * time.Minute
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost     string
	Port        string
	LogTimezone string
	LLM         LLMConfig
	Session     SessionConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
//
// The API key is resolved once here. CEREBRAS_API_KEY wins over the secrets file
// named by CEREBRAS_API_KEY_FILE.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:     getEnv("APP_HOST", "localhost:8080"),
		Port:        getEnv("PORT", "8080"),
		LogTimezone: getEnv("LOG_TIMEZONE", "UTC"),
		LLM: LLMConfig{
			APIKey:   resolveSecret("CEREBRAS_API_KEY", "CEREBRAS_API_KEY_FILE"),
			Endpoint: getEnv("CEREBRAS_API_URL", DefaultLLMEndpoint),
			Model:    getEnv("CEREBRAS_MODEL", DefaultLLMModel),
		},
		Session: SessionConfig{
			MaxIdleMin: getEnvInt("SESSION_MAX_IDLE_MIN", 60),
		},
	}
}

// Location returns the configured log timezone, falling back to UTC.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.LogTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func resolveSecret(key, fileKey string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	path := os.Getenv(fileKey)
	if path == "" {
		return ""
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
