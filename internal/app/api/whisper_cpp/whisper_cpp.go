package whisper_cpp

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"whisper-api/internal/app/audio"
	"whisper-api/internal/app/util/files"
)

// Config holds everything the local transcriber needs to run whisper.cpp.
type Config struct {
	// BinaryPath is the whisper.cpp executable.
	BinaryPath string
	// ModelPath is the ggml weights file, selected once at startup.
	ModelPath string
	// Language is the fixed language hint for every inference call.
	Language string
	// TempDir holds per-call output files and conversion artifacts.
	TempDir string
}

// LocalTranscriber runs inference through a local whisper.cpp binary.
// It is constructed once at startup and is safe for concurrent use:
// every call works on caller-private input and a uniquely named output.
type LocalTranscriber struct {
	config Config
	logger *zap.Logger
}

// NewLocalTranscriber validates the binary and model paths and returns a
// ready transcriber. Validation failure here aborts startup; a server
// without a model cannot serve any request.
func NewLocalTranscriber(config Config, logger *zap.Logger) (*LocalTranscriber, error) {
	if config.Language == "" {
		config.Language = "en"
	}
	if config.TempDir == "" {
		config.TempDir = os.TempDir()
	}

	if _, err := os.Stat(config.BinaryPath); err != nil {
		return nil, fmt.Errorf("whisper.cpp binary not found at %s: %w", config.BinaryPath, err)
	}
	if _, err := os.Stat(config.ModelPath); err != nil {
		return nil, fmt.Errorf("whisper model not found at %s: %w", config.ModelPath, err)
	}

	logger.Info("whisper model loaded",
		zap.String("binary", config.BinaryPath),
		zap.String("model", config.ModelPath),
		zap.String("language", config.Language),
	)

	return &LocalTranscriber{
		config: config,
		logger: logger,
	}, nil
}

// Transcript runs whisper.cpp over the input file and returns the transcribed
// text. Inputs that are not already 16 kHz WAV are converted first; every
// intermediate artifact is removed before returning.
func (lt *LocalTranscriber) Transcript(ctx context.Context, inputFilePath string) (string, error) {
	wavPath := inputFilePath

	is16kHzWav, err := audio.Is16kHzWav(ctx, inputFilePath)
	if err != nil {
		return "", fmt.Errorf("probing input file: %w", err)
	}

	if !is16kHzWav {
		converted, err := audio.ConvertTo16kHzWav(ctx, inputFilePath)
		if err != nil {
			return "", fmt.Errorf("converting input file: %w", err)
		}
		defer os.Remove(converted)
		wavPath = converted
	}

	// unique output path so concurrent calls never clobber each other
	outputBase := filepath.Join(lt.config.TempDir, uuid.New().String())
	outputFile := outputBase + ".txt"
	defer os.Remove(outputFile)

	args := []string{
		"-m", lt.config.ModelPath,
		"-l", lt.config.Language,
		"-np",
		"-otxt",
		"-f", wavPath,
		"-of", outputBase,
	}

	command := exec.CommandContext(ctx, lt.config.BinaryPath, args...)
	var stderr bytes.Buffer
	command.Stderr = &stderr

	lt.logger.Debug("running whisper.cpp",
		zap.String("input", wavPath),
		zap.Strings("args", args),
	)

	if err := command.Run(); err != nil {
		return "", fmt.Errorf("whisper.cpp execution failed: %w, stderr: %s", err, stderr.String())
	}

	text, err := files.ReadOutputFile(outputFile)
	if err != nil {
		return "", fmt.Errorf("reading transcription output: %w", err)
	}

	return text, nil
}
