package translate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dylan-ru/sub-lator/internal/ctxlog"
)

// Options controls how a batch of subtitle files is translated.
type Options struct {
	Language string // canonical language name, e.g. "Spanish"
	Suffix   string // file name suffix, e.g. "ES"
	Model    string // empty selects the provider default
	// OutputDir receives translated files. Empty writes each file next to
	// its source.
	OutputDir string
}

// Translator turns one .srt file into its translated sibling.
type Translator struct {
	client *Client
	opts   Options
}

// NewTranslator pairs a client with batch options.
func NewTranslator(client *Client, opts Options) *Translator {
	return &Translator{client: client, opts: opts}
}

// OutputPath computes where the translation of the given input file lands:
// {base}-{SUFFIX}.srt, either next to the source or inside OutputDir.
func (t *Translator) OutputPath(inputPath string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	dir := t.opts.OutputDir
	if dir == "" {
		dir = filepath.Dir(inputPath)
	}
	return filepath.Join(dir, fmt.Sprintf("%s-%s.srt", base, t.opts.Suffix))
}

// TranslateFile reads an SRT file, translates it, and writes the result.
// It returns the output path.
func (t *Translator) TranslateFile(ctx context.Context, inputPath string) (string, error) {
	logger := ctxlog.FromContext(ctx).With("file", filepath.Base(inputPath))
	logger.Info("▶️ Translating subtitle file", "language", t.opts.Language)

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", inputPath, err)
	}

	translated, err := t.client.Translate(ctx, strings.TrimSpace(string(data)), t.opts.Language, t.opts.Model)
	if err != nil {
		return "", fmt.Errorf("error processing file %s: %w", inputPath, err)
	}

	outputPath := t.OutputPath(inputPath)
	if err := os.WriteFile(outputPath, []byte(translated), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	logger.Info("✅ Translation written", "output", outputPath)
	return outputPath, nil
}
