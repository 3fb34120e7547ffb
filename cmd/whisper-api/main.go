package main

import (
	"fmt"
	"os"

	"whisper-api/cmd/whisper-api/cmd"
	"whisper-api/internal/config"
)

// @title Whisper Transcription API
// @version 1.0.0
// @description HTTP service that transcribes uploaded audio files with a local whisper.cpp model.
// @BasePath /
func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "configuration warning: %v\n", err)
	}

	cmd.Execute()
}
