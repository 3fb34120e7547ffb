package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("WHISPER_BINARY", "/usr/local/bin/whisper-cli")
	t.Setenv("WHISPER_MODEL", "/models/ggml-tiny.bin")

	// shield the test from ambient configuration
	for _, key := range []string{"HOST", "PORT", "ENVIRONMENT", "WHISPER_LANGUAGE", "TEMP_DIR", "MAX_UPLOAD_MB"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, 100, cfg.MaxUploadMB)
	assert.NotEmpty(t, cfg.TempDir)
}

func TestLoad_PortOverride(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9090", cfg.Addr())
}

func TestLoad_MissingModelPaths(t *testing.T) {
	t.Setenv("WHISPER_BINARY", "")
	t.Setenv("WHISPER_MODEL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoad_InvalidMaxUpload(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MAX_UPLOAD_MB", "not-a-number")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_InvalidEnvironment(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ENVIRONMENT", "staging")

	_, err := Load()
	require.Error(t, err)
}

func TestModelName(t *testing.T) {
	tests := []struct {
		name      string
		modelPath string
		want      string
	}{
		{"ggml tiny", "/models/ggml-tiny.bin", "tiny"},
		{"ggml base english", "/models/ggml-base.en.bin", "base.en"},
		{"quantized", "models/ggml-large-v3-turbo.bin", "large-v3-turbo"},
		{"plain filename", "tiny.bin", "tiny"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{WhisperModel: tt.modelPath}
			assert.Equal(t, tt.want, cfg.ModelName())
		})
	}
}

func TestMaxUploadBytes(t *testing.T) {
	cfg := &Config{MaxUploadMB: 2}
	assert.Equal(t, int64(2*1024*1024), cfg.MaxUploadBytes())
}
