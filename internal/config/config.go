package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// ServiceName is the fixed service identifier reported by the health check.
const ServiceName = "Whisper Transcription API"

// Config holds the full server configuration, sourced from environment
// variables (optionally seeded from a .env file).
type Config struct {
	Host        string `validate:"required"`
	Port        string `validate:"required,numeric"`
	Environment string `validate:"oneof=development production test"`

	// WhisperBinary is the path to the whisper.cpp executable.
	WhisperBinary string `validate:"required"`
	// WhisperModel is the path to the ggml model weights file.
	WhisperModel string `validate:"required"`
	// Language is the fixed language hint passed to every inference call.
	Language string `validate:"required"`

	// TempDir is the scratch directory for per-request upload files.
	TempDir string `validate:"required"`
	// MaxUploadMB caps the accepted upload size.
	MaxUploadMB int `validate:"min=1"`
}

// LoadEnv loads environment variables from a .env file if one exists.
// Missing files are not an error; variables may be set system-wide.
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	return nil
}

// Load reads the configuration from the environment and validates it.
// Fails fast: a missing whisper binary or model path is a startup error,
// not something to discover on the first request.
func Load() (*Config, error) {
	cfg := &Config{
		Host:          getEnvOrDefault("HOST", "0.0.0.0"),
		Port:          getEnvOrDefault("PORT", "8000"),
		Environment:   getEnvOrDefault("ENVIRONMENT", "development"),
		WhisperBinary: strings.TrimSpace(os.Getenv("WHISPER_BINARY")),
		WhisperModel:  strings.TrimSpace(os.Getenv("WHISPER_MODEL")),
		Language:      getEnvOrDefault("WHISPER_LANGUAGE", "en"),
		TempDir:       getEnvOrDefault("TEMP_DIR", os.TempDir()),
		MaxUploadMB:   100,
	}

	if raw := os.Getenv("MAX_UPLOAD_MB"); raw != "" {
		maxMB, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid MAX_UPLOAD_MB %q: %w", raw, err)
		}
		cfg.MaxUploadMB = maxMB
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// ModelName derives the model variant name from the weights filename,
// e.g. "models/ggml-tiny.bin" -> "tiny".
func (c *Config) ModelName() string {
	base := filepath.Base(c.WhisperModel)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.TrimPrefix(base, "ggml-")
	if base == "" {
		return "unknown"
	}
	return base
}

// MaxUploadBytes returns the upload cap in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

// Addr returns the host:port listen address.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
