//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"whisper-api/internal/api/server"
	"whisper-api/internal/app/api"
	"whisper-api/internal/app/api/whisper_cpp"
	"whisper-api/internal/config"
)

// provideLocalTranscriber builds the whisper.cpp transcriber from the server
// configuration. Fails if the binary or model file is missing.
func provideLocalTranscriber(cfg *config.Config, logger *zap.Logger) (*whisper_cpp.LocalTranscriber, error) {
	return whisper_cpp.NewLocalTranscriber(whisper_cpp.Config{
		BinaryPath: cfg.WhisperBinary,
		ModelPath:  cfg.WhisperModel,
		Language:   cfg.Language,
		TempDir:    cfg.TempDir,
	}, logger)
}

// InitializeServer assembles the HTTP server with its transcriber dependency.
func InitializeServer(cfg *config.Config, logger *zap.Logger) (*server.Server, error) {
	wire.Build(
		server.NewServer,
		provideLocalTranscriber,
		wire.Bind(new(api.Transcriber), new(*whisper_cpp.LocalTranscriber)),
	)
	return nil, nil
}
