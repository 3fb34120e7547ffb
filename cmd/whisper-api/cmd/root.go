package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"whisper-api/cmd/whisper-api/cmd/serve"
	"whisper-api/cmd/whisper-api/cmd/transcribe"
	"whisper-api/cmd/whisper-api/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "whisper-api",
	Short: "An HTTP API for transcribing audio files with whisper.cpp",
	Long: `An HTTP API for transcribing audio files with a local whisper.cpp model.
- serve starts the HTTP server with health, transcribe and metrics endpoints
- transcribe runs a one-off transcription of a local file from the CLI`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(transcribe.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
