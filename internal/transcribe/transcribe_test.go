package transcribe

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dylan-ru/sub-lator/internal/srt"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Format
	}{
		{"srt", FormatSRT},
		{"SRT", FormatSRT},
		{".srt", FormatSRT},
		{"vtt", FormatVTT},
		{"txt", FormatText},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		require.Equal(t, tt.want, got)
	}

	_, err := ParseFormat("ass")
	require.Error(t, err)
	require.Contains(t, err.Error(), `unsupported output format "ass"`)
}

func TestOutputPath(t *testing.T) {
	t.Parallel()

	require.Equal(t, filepath.Join("media", "clip.srt"),
		OutputPath(filepath.Join("media", "clip.mp4"), FormatSRT))
	require.Equal(t, filepath.Join("media", "clip.vtt"),
		OutputPath(filepath.Join("media", "clip.mkv"), FormatVTT))
	require.Equal(t, filepath.Join("media", "clip.txt"),
		OutputPath(filepath.Join("media", "clip.webm"), FormatText))
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	cues := []srt.Cue{
		{Index: 1, Start: time.Second, End: 2 * time.Second, Text: "Hello there"},
		{Index: 2, Start: 3 * time.Second, End: 4 * time.Second, Text: "General Kenobi"},
	}

	dir := t.TempDir()

	srtPath := filepath.Join(dir, "out.srt")
	require.NoError(t, WriteFile(srtPath, cues, FormatSRT))
	data, err := os.ReadFile(srtPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "00:00:01,000 --> 00:00:02,000")

	vttPath := filepath.Join(dir, "out.vtt")
	require.NoError(t, WriteFile(vttPath, cues, FormatVTT))
	data, err = os.ReadFile(vttPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "WEBVTT")
	require.Contains(t, string(data), "00:00:01.000 --> 00:00:02.000")

	txtPath := filepath.Join(dir, "out.txt")
	require.NoError(t, WriteFile(txtPath, cues, FormatText))
	data, err = os.ReadFile(txtPath)
	require.NoError(t, err)
	require.Equal(t, "Hello there\nGeneral Kenobi\n", string(data))
}
