// Package media shells out to ffmpeg and ffprobe for audio extraction and
// duration probing. Both binaries must be on PATH.
package media

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/dylan-ru/sub-lator/internal/ctxlog"
)

// ExtractAudio converts any media file into a mono 16 kHz WAV suitable for
// voice activity analysis. It returns the temp file path and a cleanup
// function that removes it.
func ExtractAudio(ctx context.Context, inputPath string) (string, func(), error) {
	logger := ctxlog.FromContext(ctx)

	tmp, err := os.CreateTemp("", "sublator-*.wav")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temp wav file: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()
	cleanup := func() { os.Remove(tmpPath) }

	// ffmpeg refuses to overwrite without -y, and the temp file already exists.
	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-i", inputPath,
		"-ac", "1", "-ar", "16000",
		"-hide_banner", "-loglevel", "error",
		"-y", tmpPath,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	logger.Debug("Extracting audio track.", "input", inputPath, "output", tmpPath)
	if err := cmd.Run(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("ffmpeg failed for %s: %w (%s)", inputPath, err, strings.TrimSpace(stderr.String()))
	}

	return tmpPath, cleanup, nil
}

// Duration asks ffprobe for the media duration in seconds.
func Duration(ctx context.Context, path string) (float64, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	out, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe failed for %s: %w", path, err)
	}

	seconds, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil {
		return 0, fmt.Errorf("ffprobe returned unparseable duration %q: %w", strings.TrimSpace(string(out)), err)
	}
	return seconds, nil
}
