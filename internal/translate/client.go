// Package translate sends SRT documents through OpenAI-compatible chat
// completion APIs and writes the translated result next to the source.
package translate

import (
	"context"
	"fmt"

	"resty.dev/v3"

	"github.com/dylan-ru/sub-lator/internal/ctxlog"
	"github.com/dylan-ru/sub-lator/internal/keystore"
	"github.com/dylan-ru/sub-lator/internal/provider"
)

// Request/response shapes for the chat completions endpoint. Only the
// fields this client reads or writes are modeled.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

const (
	temperature = 0.7
	maxTokens   = 4000
)

// Client translates subtitle documents through one provider's chat
// completions endpoint, rotating API keys via the key manager.
type Client struct {
	provider *provider.Provider
	keys     *keystore.Manager
	http     *resty.Client

	// endpoint overrides the provider URL when set; used by tests.
	endpoint string
}

// NewClient builds a translation client for the given provider. The provider
// must support translation.
func NewClient(p *provider.Provider, keys *keystore.Manager) (*Client, error) {
	if !p.Can(provider.Translate) {
		return nil, fmt.Errorf("provider %q does not support translation", p.Name)
	}
	return &Client{
		provider: p,
		keys:     keys,
		http:     resty.New(),
	}, nil
}

// Close releases the underlying HTTP client resources.
func (c *Client) Close() error {
	return c.http.Close()
}

// WithEndpoint redirects requests to the given URL. Tests point this at an
// httptest server.
func (c *Client) WithEndpoint(url string) *Client {
	c.endpoint = url
	return c
}

func (c *Client) url() string {
	if c.endpoint != "" {
		return c.endpoint
	}
	return c.provider.ChatCompletionsURL
}

// Translate sends an entire SRT document to the model and returns the
// translated document. The system prompt instructs the model to preserve
// indices and timecodes and to translate only the text content.
func (c *Client) Translate(ctx context.Context, content, language, model string) (string, error) {
	logger := ctxlog.FromContext(ctx)

	key, err := c.keys.Next()
	if err != nil {
		return "", fmt.Errorf("no API key available for %s: %w", c.provider.Name, err)
	}

	if model == "" {
		model = c.provider.DefaultModel
	}

	body := chatRequest{
		Model: model,
		Messages: []chatMessage{
			{
				Role: "system",
				Content: fmt.Sprintf(
					"You are a subtitle translator assistant. Translate the given SRT subtitles to %s, "+
						"preserving all numbers, timecodes, and formatting exactly as they appear. "+
						"Only translate the text content.", language),
			},
			{
				Role:    "user",
				Content: buildUserPrompt(content, language),
			},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	logger.Debug("Sending translation request.",
		"provider", c.provider.Name, "model", model, "language", language,
		"key", keystore.Mask(key))

	var result chatResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(key).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&result).
		SetError(&result).
		Post(c.url())

	c.keys.MarkUsed(key, 0)

	if err != nil {
		return "", fmt.Errorf("translation request failed: %w", err)
	}
	if resp.IsError() {
		if result.Error != nil && result.Error.Message != "" {
			return "", fmt.Errorf("%s API error: %s", c.provider.Name, result.Error.Message)
		}
		return "", fmt.Errorf("%s API error: unexpected status %s", c.provider.Name, resp.Status())
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("%s API returned no choices", c.provider.Name)
	}

	return result.Choices[0].Message.Content, nil
}

// buildUserPrompt wraps the SRT content with explicit formatting rules. The
// rules matter: without them models renumber cues or localize timecodes.
func buildUserPrompt(content, language string) string {
	return fmt.Sprintf("Translate the following SRT subtitles to %s. "+
		"Important rules:\n"+
		"1. Preserve all numbers exactly as they are\n"+
		"2. Preserve all timecodes exactly as they are\n"+
		"3. Only translate the text content\n"+
		"4. Maintain the exact same line breaks and format\n\n%s",
		language, content)
}
