package audio

import (
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFFProbeOutputParsing(t *testing.T) {
	raw := `{
		"streams": [
			{"codec_type": "video", "codec_name": "h264"},
			{"codec_type": "audio", "codec_name": "pcm_s16le", "sample_rate": "16000"}
		]
	}`

	var probe ffprobeOutput
	require.NoError(t, json.Unmarshal([]byte(raw), &probe))

	require.Len(t, probe.Streams, 2)
	assert.Equal(t, "pcm_s16le", probe.Streams[1].CodecName)
	assert.Equal(t, 16000, probe.Streams[1].SampleRate)
}

func TestIs16kHzWav_MissingFile(t *testing.T) {
	if _, err := exec.LookPath("ffprobe"); err != nil {
		t.Skip("ffprobe not installed")
	}

	_, err := Is16kHzWav(context.Background(), "/nonexistent/audio.wav")
	assert.Error(t, err)
}

func TestConvertTo16kHzWav_RoundTrip(t *testing.T) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		t.Skip("ffmpeg not installed")
	}
	if _, err := exec.LookPath("ffprobe"); err != nil {
		t.Skip("ffprobe not installed")
	}

	ctx := context.Background()
	dir := t.TempDir()

	// synthesize one second of 44.1kHz audio
	source := filepath.Join(dir, "tone.wav")
	gen := exec.CommandContext(ctx, "ffmpeg",
		"-f", "lavfi", "-i", "sine=frequency=440:duration=1",
		"-ar", "44100", source,
	)
	require.NoError(t, gen.Run())

	is16k, err := Is16kHzWav(ctx, source)
	require.NoError(t, err)
	assert.False(t, is16k)

	converted, err := ConvertTo16kHzWav(ctx, source)
	require.NoError(t, err)
	defer os.Remove(converted)

	assert.Equal(t, filepath.Join(dir, "tone_16khz.wav"), converted)

	is16k, err = Is16kHzWav(ctx, converted)
	require.NoError(t, err)
	assert.True(t, is16k)
}
