package transcribe

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"resty.dev/v3"

	"github.com/dylan-ru/sub-lator/internal/ctxlog"
	"github.com/dylan-ru/sub-lator/internal/keystore"
	"github.com/dylan-ru/sub-lator/internal/provider"
	"github.com/dylan-ru/sub-lator/internal/srt"
)

// GroqClient transcribes media through the Groq audio transcriptions
// endpoint. The endpoint returns plain text; timestamps are estimated.
type GroqClient struct {
	keys *keystore.Manager
	http *resty.Client

	endpoint string // test override
}

// NewGroqClient builds a Groq transcription client.
func NewGroqClient(keys *keystore.Manager) *GroqClient {
	return &GroqClient{
		keys: keys,
		http: resty.New(),
	}
}

// Close releases the underlying HTTP client resources.
func (c *GroqClient) Close() error {
	return c.http.Close()
}

// WithEndpoint redirects requests to the given URL. Tests point this at an
// httptest server.
func (c *GroqClient) WithEndpoint(url string) *GroqClient {
	c.endpoint = url
	return c
}

func (c *GroqClient) url() string {
	if c.endpoint != "" {
		return c.endpoint
	}
	return provider.Groq.TranscriptionsURL
}

// Transcribe uploads the media file and converts the plain text response
// into estimated-timestamp cues. Keys get a short cooldown after use and a
// longer one after an error, since Groq rate-limits audio uploads harder
// than chat requests.
func (c *GroqClient) Transcribe(ctx context.Context, mediaPath string) ([]srt.Cue, error) {
	logger := ctxlog.FromContext(ctx).With("file", filepath.Base(mediaPath))

	key, err := c.keys.Next()
	if err != nil {
		return nil, fmt.Errorf("no API key available for groq: %w", err)
	}

	logger.Info("▶️ Uploading media for transcription",
		"model", provider.Groq.TranscriptionModel, "key", keystore.Mask(key))

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(key).
		SetFile("file", mediaPath).
		SetFormData(map[string]string{
			"model":           provider.Groq.TranscriptionModel,
			"response_format": "text",
		}).
		Post(c.url())

	if err != nil {
		c.keys.MarkUsed(key, provider.Groq.ErrorCooldown)
		return nil, fmt.Errorf("transcription request failed: %w", err)
	}
	if resp.IsError() {
		c.keys.MarkUsed(key, provider.Groq.ErrorCooldown)
		return nil, fmt.Errorf("groq API error: %s", apiErrorMessage(resp))
	}
	c.keys.MarkUsed(key, provider.Groq.UseCooldown)

	cues := srt.FromTranscript(resp.String(), srt.DefaultSecondsPerLine)
	logger.Info("✅ Transcription received", "cues", len(cues))
	return cues, nil
}

// apiErrorMessage pulls the error.message field out of a Groq error body,
// falling back to the HTTP status.
func apiErrorMessage(resp *resty.Response) string {
	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(resp.Bytes(), &body); err == nil && body.Error.Message != "" {
		return body.Error.Message
	}
	return resp.Status()
}
