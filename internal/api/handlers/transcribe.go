package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"whisper-api/internal/api/dto"
	"whisper-api/internal/api/errors"
	"whisper-api/internal/api/middleware"
	"whisper-api/internal/app/api"
	"whisper-api/internal/app/util/files"
	"whisper-api/internal/config"
	"whisper-api/internal/metrics"
)

// allowedExtensions is the upload allow-list, matched case-insensitively.
var allowedExtensions = []string{".mp3", ".wav", ".m4a"}

// TranscribeHandler services the health check and the upload-and-transcribe
// endpoint. The transcriber handle is shared read-only across requests.
type TranscribeHandler struct {
	transcriber api.Transcriber
	cfg         *config.Config
	logger      *zap.Logger
}

// NewTranscribeHandler creates a new transcribe handler.
func NewTranscribeHandler(transcriber api.Transcriber, cfg *config.Config, logger *zap.Logger) *TranscribeHandler {
	return &TranscribeHandler{
		transcriber: transcriber,
		cfg:         cfg,
		logger:      logger,
	}
}

// Health handles GET /
//
// @Summary Health check
// @Description Reports service status and the configured model variant
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service is healthy"
// @Router / [get]
func (h *TranscribeHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "healthy",
		Service: config.ServiceName,
		Model:   h.cfg.ModelName(),
	})
}

// Transcribe handles POST /transcribe
//
// @Summary Transcribe an audio file
// @Description Uploads an audio file (.mp3, .wav, .m4a) and returns the transcribed text
// @Tags transcriptions
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Audio file to transcribe"
// @Success 200 {object} dto.TranscriptionResponse "Transcription result"
// @Failure 400 {object} errors.APIError "Unsupported file type or invalid upload"
// @Failure 500 {object} errors.APIError "Transcription failed"
// @Router /transcribe [post]
func (h *TranscribeHandler) Transcribe(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		middleware.HandleError(c, errors.NewBadRequestError("No file uploaded"))
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !lo.Contains(allowedExtensions, ext) {
		metrics.TranscriptionsTotal.WithLabelValues("rejected").Inc()
		middleware.HandleError(c, errors.NewBadRequestError(fmt.Sprintf(
			"Unsupported file type: %s. Supported types: %s",
			ext, strings.Join(allowedExtensions, ", "),
		)))
		return
	}

	// zero-byte uploads carry nothing to transcribe
	if fileHeader.Size == 0 {
		metrics.TranscriptionsTotal.WithLabelValues("rejected").Inc()
		middleware.HandleError(c, errors.NewBadRequestError("Empty file uploaded"))
		return
	}

	if fileHeader.Size > h.cfg.MaxUploadBytes() {
		metrics.TranscriptionsTotal.WithLabelValues("rejected").Inc()
		middleware.HandleError(c, errors.NewBadRequestError(fmt.Sprintf(
			"File too large: %d bytes. Maximum size: %d MB",
			fileHeader.Size, h.cfg.MaxUploadMB,
		)))
		return
	}

	tempPath, err := files.SaveUpload(fileHeader, h.cfg.TempDir)
	if err != nil {
		h.logger.Error("failed to store upload",
			zap.String("filename", fileHeader.Filename),
			zap.Error(err),
		)
		metrics.TranscriptionsTotal.WithLabelValues("failed").Inc()
		middleware.HandleError(c, errors.NewInternalError("Failed to store upload"))
		return
	}
	defer func() {
		if err := os.Remove(tempPath); err != nil {
			h.logger.Warn("failed to delete temp file",
				zap.String("path", tempPath),
				zap.Error(err),
			)
		}
	}()

	h.logger.Info("processing file",
		zap.String("request_id", c.GetString("request_id")),
		zap.String("filename", fileHeader.Filename),
		zap.Int64("size_bytes", fileHeader.Size),
	)

	start := time.Now()
	text, err := h.transcriber.Transcript(c.Request.Context(), tempPath)
	if err != nil {
		h.logger.Error("transcription error",
			zap.String("request_id", c.GetString("request_id")),
			zap.String("filename", fileHeader.Filename),
			zap.Error(err),
		)
		metrics.TranscriptionsTotal.WithLabelValues("failed").Inc()
		middleware.HandleError(c, errors.NewInternalError("Transcription failed: "+err.Error()))
		return
	}

	metrics.TranscriptionsTotal.WithLabelValues("succeeded").Inc()
	metrics.TranscriptionDuration.Observe(time.Since(start).Seconds())

	text = strings.TrimSpace(text)
	h.logger.Info("transcription completed",
		zap.String("request_id", c.GetString("request_id")),
		zap.Int("chars", len(text)),
	)

	c.JSON(http.StatusOK, dto.TranscriptionResponse{Text: text})
}
