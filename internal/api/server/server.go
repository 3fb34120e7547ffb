package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "whisper-api/docs" // generated swagger docs
	"whisper-api/internal/api/handlers"
	"whisper-api/internal/api/middleware"
	"whisper-api/internal/app/api"
	"whisper-api/internal/config"
	"whisper-api/internal/metrics"
)

// Server wraps the gin router and the underlying http.Server.
type Server struct {
	cfg        *config.Config
	router     *gin.Engine
	httpServer *http.Server
	logger     *zap.Logger
}

// NewServer wires the middleware chain and routes around a shared transcriber.
func NewServer(cfg *config.Config, transcriber api.Transcriber, logger *zap.Logger) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.Environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogging(logger))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	router.Use(metrics.InstrumentHandler())

	handler := handlers.NewTranscribeHandler(transcriber, cfg, logger)
	router.GET("/", handler.Health)
	router.POST("/transcribe", handler.Transcribe)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	httpServer := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 10 * time.Minute, // inference is slow on large uploads
		IdleTimeout:  120 * time.Second,
	}

	return &Server{
		cfg:        cfg,
		router:     router,
		httpServer: httpServer,
		logger:     logger,
	}
}

// Start begins serving and blocks until the listener fails or is shut down.
func (s *Server) Start() error {
	s.logger.Info("starting server",
		zap.String("address", s.httpServer.Addr),
		zap.String("environment", s.cfg.Environment),
		zap.String("model", s.cfg.ModelName()),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("forced shutdown", zap.Error(err))
		return err
	}

	s.logger.Info("server shutdown complete")
	return nil
}

// Router returns the gin router, useful for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
