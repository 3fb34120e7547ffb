package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"whisper-api/internal/config"
)

type stubTranscriber struct{}

func (stubTranscriber) Transcript(ctx context.Context, inputFilePath string) (string, error) {
	return "stub transcript", nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := &config.Config{
		Host:          "127.0.0.1",
		Port:          "0",
		Environment:   "test",
		WhisperBinary: "/usr/local/bin/whisper-cli",
		WhisperModel:  "/models/ggml-tiny.bin",
		Language:      "en",
		TempDir:       t.TempDir(),
		MaxUploadMB:   10,
	}
	return NewServer(cfg, stubTranscriber{}, zap.NewNop())
}

func TestServer_HealthRoute(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)
	assert.Contains(t, rec.Body.String(), `"model":"tiny"`)
}

func TestServer_MetricsRoute(t *testing.T) {
	srv := newTestServer(t)

	// hit an instrumented route first so the counter has a series to expose
	warmup := httptest.NewRecorder()
	srv.Router().ServeHTTP(warmup, httptest.NewRequest(http.MethodGet, "/", nil))

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "whisper_api_http_requests_total")
}

func TestServer_RequestIDHeader(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestServer_UnknownRoute(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_Shutdown(t *testing.T) {
	srv := newTestServer(t)

	done := make(chan error, 1)
	go func() {
		done <- srv.Start()
	}()

	require.NoError(t, srv.Shutdown(context.Background()))
	assert.NoError(t, <-done)
}
