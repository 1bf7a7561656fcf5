// Package transcribe turns video and audio files into subtitle documents
// through the Groq audio API or the AssemblyAI SDK.
package transcribe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dylan-ru/sub-lator/internal/srt"
)

// VideoExtensions are the media file extensions considered for batch
// transcription when a directory is given.
var VideoExtensions = []string{".mp4", ".mkv", ".avi", ".mov", ".wmv", ".flv", ".webm"}

// Format selects the output document type.
type Format string

const (
	FormatSRT  Format = "srt"
	FormatVTT  Format = "vtt"
	FormatText Format = "txt"
)

// ParseFormat validates a user-supplied output format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimPrefix(s, "."))) {
	case FormatSRT:
		return FormatSRT, nil
	case FormatVTT:
		return FormatVTT, nil
	case FormatText:
		return FormatText, nil
	}
	return "", fmt.Errorf("unsupported output format %q (expected srt, vtt, or txt)", s)
}

// Transcriber is the contract both backends implement: produce cues for one
// media file.
type Transcriber interface {
	Transcribe(ctx context.Context, mediaPath string) ([]srt.Cue, error)
}

// OutputPath places the subtitle document next to the input media with the
// format's extension.
func OutputPath(mediaPath string, format Format) string {
	base := strings.TrimSuffix(mediaPath, filepath.Ext(mediaPath))
	return base + "." + string(format)
}

// WriteFile renders cues into the requested format at the given path.
func WriteFile(path string, cues []srt.Cue, format Format) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	switch format {
	case FormatSRT:
		err = srt.Write(f, cues)
	case FormatVTT:
		err = srt.WriteVTT(f, cues)
	case FormatText:
		err = srt.WriteText(f, cues)
	default:
		err = fmt.Errorf("unsupported output format %q", format)
	}
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
