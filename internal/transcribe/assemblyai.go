package transcribe

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"

	"github.com/dylan-ru/sub-lator/internal/ctxlog"
	"github.com/dylan-ru/sub-lator/internal/keystore"
	"github.com/dylan-ru/sub-lator/internal/srt"
)

// AssemblyAIClient transcribes media through the AssemblyAI SDK. Unlike the
// Groq path, AssemblyAI returns word-level timings, so cues carry real
// timestamps when sentences are available.
type AssemblyAIClient struct {
	keys *keystore.Manager

	// newClient builds the SDK client for a key; tests substitute a fake.
	newClient func(key string) sdkClient
}

// sdkClient is the slice of the AssemblyAI SDK this package uses.
type sdkClient interface {
	TranscribeFile(ctx context.Context, path string) (text string, sentences []TimedSentence, err error)
}

// TimedSentence is one sentence with millisecond timings.
type TimedSentence struct {
	Text  string
	Start int64
	End   int64
}

// NewAssemblyAIClient builds an AssemblyAI transcription client.
func NewAssemblyAIClient(keys *keystore.Manager) *AssemblyAIClient {
	return &AssemblyAIClient{
		keys:      keys,
		newClient: newRealSDKClient,
	}
}

// Transcribe runs the file through AssemblyAI and converts the result to
// cues. When sentence timings come back they are used directly; otherwise
// the plain transcript gets estimated timestamps.
func (c *AssemblyAIClient) Transcribe(ctx context.Context, mediaPath string) ([]srt.Cue, error) {
	logger := ctxlog.FromContext(ctx).With("file", filepath.Base(mediaPath))

	key, err := c.keys.Next()
	if err != nil {
		return nil, fmt.Errorf("no API key available for assemblyai: %w", err)
	}

	logger.Info("▶️ Uploading media for transcription", "provider", "assemblyai", "key", keystore.Mask(key))

	text, sentences, err := c.newClient(key).TranscribeFile(ctx, mediaPath)
	if err != nil {
		return nil, fmt.Errorf("assemblyai transcription failed: %w", err)
	}

	if len(sentences) > 0 {
		cues := make([]srt.Cue, len(sentences))
		for i, s := range sentences {
			cues[i] = srt.Cue{
				Index: i + 1,
				Start: time.Duration(s.Start) * time.Millisecond,
				End:   time.Duration(s.End) * time.Millisecond,
				Text:  s.Text,
			}
		}
		logger.Info("✅ Transcription received", "cues", len(cues), "timed", true)
		return cues, nil
	}

	cues := srt.FromTranscript(text, srt.DefaultSecondsPerLine)
	logger.Info("✅ Transcription received", "cues", len(cues), "timed", false)
	return cues, nil
}

// realSDKClient adapts the official SDK to the narrow sdkClient interface.
type realSDKClient struct {
	client *aai.Client
}

func newRealSDKClient(key string) sdkClient {
	return &realSDKClient{client: aai.NewClient(key)}
}

func (r *realSDKClient) TranscribeFile(ctx context.Context, path string) (string, []TimedSentence, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	transcript, err := r.client.Transcripts.TranscribeFromReader(ctx, f, nil)
	if err != nil {
		return "", nil, err
	}
	if transcript.Status == aai.TranscriptStatusError {
		msg := "unknown error"
		if transcript.Error != nil {
			msg = *transcript.Error
		}
		return "", nil, errors.New(msg)
	}

	text := ""
	if transcript.Text != nil {
		text = *transcript.Text
	}

	var sentences []TimedSentence
	if transcript.ID != nil {
		resp, err := r.client.Transcripts.GetSentences(ctx, *transcript.ID)
		// Sentence timings are an enrichment; the plain transcript still
		// produces a usable document when the extra call fails.
		if err == nil {
			for _, s := range resp.Sentences {
				if s.Text == nil || s.Start == nil || s.End == nil {
					continue
				}
				sentences = append(sentences, TimedSentence{
					Text:  *s.Text,
					Start: *s.Start,
					End:   *s.End,
				})
			}
		}
	}

	return text, sentences, nil
}
