package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dylan-ru/sub-lator/internal/srt"
	"github.com/dylan-ru/sub-lator/internal/syncer"
)

// runSync executes the sync command for one subtitle/media pair.
func (a *App) runSync(ctx context.Context) error {
	return a.syncOne(ctx, syncSpec{
		subtitle:  a.config.SubtitlePath,
		media:     a.config.MediaPath,
		output:    a.config.OutputPath,
		maxOffset: a.config.MaxOffset,
		useDTW:    a.config.UseDTW,
	})
}

// syncSpec carries one sync operation's parameters.
type syncSpec struct {
	subtitle  string
	media     string
	output    string
	maxOffset float64
	useDTW    bool
}

// syncOne aligns one subtitle file against one media file.
func (a *App) syncOne(ctx context.Context, spec syncSpec) error {
	f, err := os.Open(spec.subtitle)
	if err != nil {
		return fmt.Errorf("failed to open subtitle file: %w", err)
	}
	cues, err := srt.Parse(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", spec.subtitle, err)
	}

	s := syncer.New(syncer.Options{
		MaxOffsetSeconds: spec.maxOffset,
		UseDTW:           spec.useDTW,
	})
	adjusted, err := s.Synchronize(ctx, spec.media, cues)
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	outputPath := spec.output
	if outputPath == "" {
		base := strings.TrimSuffix(spec.subtitle, filepath.Ext(spec.subtitle))
		outputPath = base + "-synced.srt"
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outputPath, err)
	}
	defer out.Close()
	if err := srt.Write(out, adjusted); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	a.logger.Info("✅ Synchronized subtitles written", "output", outputPath)
	return nil
}
