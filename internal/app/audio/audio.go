package audio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// whisper.cpp only accepts 16 kHz mono s16le WAV input.
const targetSampleRate = 16000

// ffprobeOutput is the subset of `ffprobe -show_streams` JSON we care about.
type ffprobeOutput struct {
	Streams []struct {
		CodecType  string `json:"codec_type"`
		CodecName  string `json:"codec_name"`
		SampleRate int    `json:"sample_rate,string"`
	} `json:"streams"`
}

// Is16kHzWav reports whether the file already is a 16 kHz s16le WAV.
func Is16kHzWav(ctx context.Context, filePath string) (bool, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "quiet",
		"-print_format", "json",
		"-show_streams",
		filePath,
	)
	output, err := cmd.Output()
	if err != nil {
		return false, fmt.Errorf("ffprobe failed for %s: %w", filePath, err)
	}

	var probe ffprobeOutput
	if err := json.Unmarshal(output, &probe); err != nil {
		return false, fmt.Errorf("parsing ffprobe output: %w", err)
	}

	for _, stream := range probe.Streams {
		if stream.CodecType == "audio" && stream.CodecName == "pcm_s16le" && stream.SampleRate == targetSampleRate {
			return true, nil
		}
	}

	return false, nil
}

// ConvertTo16kHzWav converts an audio file to a 16 kHz mono WAV next to the
// input and returns the new path. The caller owns the resulting file.
func ConvertTo16kHzWav(ctx context.Context, inputFilePath string) (string, error) {
	outputFilePath := strings.TrimSuffix(inputFilePath, filepath.Ext(inputFilePath)) + "_16khz.wav"

	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-y",
		"-i", inputFilePath,
		"-ar", fmt.Sprintf("%d", targetSampleRate),
		"-ac", "1",
		"-c:a", "pcm_s16le",
		outputFilePath,
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("ffmpeg error: %w, stderr: %s", err, stderr.String())
	}

	return outputFilePath, nil
}
