package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server ServerConfig
	LLM    LLMConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr            string
	CORSOrigins     string
	MaxUploadBytes  int
	ShutdownTimeout time.Duration
}

// LLMConfig holds remote model provider configuration
type LLMConfig struct {
	APIKey          string
	BaseURL         string
	GenerateModel   string
	EditModel       string
	TranscribeModel string
	Temperature     float32
	Timeout         time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            getEnv("HTTP_ADDR", ":8000"),
			CORSOrigins:     getEnv("CORS_ORIGINS", "http://localhost:8000, http://127.0.0.1:8000"),
			MaxUploadBytes:  getEnvAsInt("MAX_UPLOAD_BYTES", 25*1024*1024),
			ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		LLM: LLMConfig{
			APIKey:          getEnv("OPENAI_API_KEY", ""),
			BaseURL:         getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			GenerateModel:   getEnv("OPENAI_MODEL", "gpt-4o"),
			EditModel:       getEnv("OPENAI_EDIT_MODEL", "gpt-4o-mini"),
			TranscribeModel: getEnv("OPENAI_TRANSCRIBE_MODEL", "whisper-1"),
			Temperature:     getEnvAsFloat32("OPENAI_TEMPERATURE", 0.0),
			Timeout:         getEnvAsDuration("OPENAI_TIMEOUT", 90*time.Second),
		},
	}
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
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
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

// Validate fails fast on configuration the process cannot run without.
func (c *Config) Validate() error {
	if c.LLM.APIKey == "" {
		return ConfigurationError("OPENAI_API_KEY is required", nil)
	}
	if c.Server.Addr == "" {
		return ConfigurationError("HTTP_ADDR is required", nil)
	}
	return nil
}
