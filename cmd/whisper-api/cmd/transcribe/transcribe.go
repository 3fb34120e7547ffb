package transcribe

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"whisper-api/internal/app/api/whisper_cpp"
	"whisper-api/internal/config"
	"whisper-api/internal/logger"
)

var language string

// Cmd represents the transcribe command
var Cmd = &cobra.Command{
	Use:   "transcribe <audio-file>",
	Short: "Transcribe a local audio file and print the text",
	Args:  cobra.ExactArgs(1),
	RunE:  run,
}

func init() {
	Cmd.Flags().StringVarP(&language, "language", "l", "", "language hint (defaults to WHISPER_LANGUAGE)")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if language != "" {
		cfg.Language = language
	}

	log := logger.MustNew(cfg.Environment)
	defer log.Sync()

	transcriber, err := whisper_cpp.NewLocalTranscriber(whisper_cpp.Config{
		BinaryPath: cfg.WhisperBinary,
		ModelPath:  cfg.WhisperModel,
		Language:   cfg.Language,
		TempDir:    cfg.TempDir,
	}, log)
	if err != nil {
		return err
	}

	start := time.Now()
	text, err := transcriber.Transcript(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("transcription failed: %w", err)
	}

	fmt.Println(text)
	fmt.Fprintf(cmd.ErrOrStderr(), "transcribed in %s\n", time.Since(start).Round(time.Millisecond))
	return nil
}
