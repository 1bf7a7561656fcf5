package syncer

import (
	"context"
	"path/filepath"

	"github.com/dylan-ru/sub-lator/internal/ctxlog"
	"github.com/dylan-ru/sub-lator/internal/media"
	"github.com/dylan-ru/sub-lator/internal/srt"
)

// Options tunes the synchronization pipeline.
type Options struct {
	WindowMS         int     // analysis window; 0 means DefaultWindowMS
	MaxOffsetSeconds float64 // 0 means DefaultMaxOffsetSeconds
	UseDTW           bool    // enable the quadratic refinement pass
}

// Synchronizer aligns subtitle cues with the speech in a media file.
type Synchronizer struct {
	opts Options

	// extractAudio and probeDuration are swappable for tests so the
	// pipeline can run without ffmpeg installed.
	extractAudio  func(ctx context.Context, path string) (string, func(), error)
	probeDuration func(ctx context.Context, path string) (float64, error)
}

// New builds a Synchronizer with the given options.
func New(opts Options) *Synchronizer {
	if opts.WindowMS <= 0 {
		opts.WindowMS = DefaultWindowMS
	}
	if opts.MaxOffsetSeconds <= 0 {
		opts.MaxOffsetSeconds = DefaultMaxOffsetSeconds
	}
	return &Synchronizer{
		opts:          opts,
		extractAudio:  media.ExtractAudio,
		probeDuration: media.Duration,
	}
}

// Synchronize adjusts cue timings against the media file's audio track. On
// analysis failure the original cues are returned unchanged with a warning,
// matching the tool's batch semantics where one bad file must not abort a
// run or leave it without output.
func (s *Synchronizer) Synchronize(ctx context.Context, mediaPath string, cues []srt.Cue) ([]srt.Cue, error) {
	logger := ctxlog.FromContext(ctx).With("file", filepath.Base(mediaPath))

	if len(cues) == 0 {
		logger.Warn("No cues to synchronize.")
		return cues, nil
	}

	wavPath, cleanup, err := s.extractAudio(ctx, mediaPath)
	if err != nil {
		logger.Warn("Audio extraction failed, keeping original timings.", "error", err)
		return cues, nil
	}
	defer cleanup()

	audio, err := VoiceActivity(wavPath, s.opts.WindowMS)
	if err != nil {
		logger.Warn("Voice activity detection failed, keeping original timings.", "error", err)
		return cues, nil
	}

	duration, err := s.probeDuration(ctx, mediaPath)
	if err != nil {
		// Estimate from the analyzed signal when ffprobe is unavailable.
		duration = float64(len(audio)) * float64(s.opts.WindowMS) / 1000
		logger.Warn("Duration probe failed, estimating from audio signal.", "duration", duration, "error", err)
	}

	intervals := srt.Intervals(cues)
	subtitle := SubtitleSignal(intervals, duration, s.opts.WindowMS)

	offset := GlobalOffset(audio, subtitle, s.opts.WindowMS, s.opts.MaxOffsetSeconds)
	logger.Info("Global offset found.", "offset_seconds", offset)

	var path [][2]int
	if s.opts.UseDTW {
		path = s.dtwRefinement(ctx, audio, subtitle, offset)
	}

	adjusted := AdjustTimings(intervals, offset, path, s.opts.WindowMS, duration)
	logger.Info("✅ Subtitle timings adjusted.", "cues", len(adjusted), "dtw", len(path) > 0)
	return srt.ApplyIntervals(cues, adjusted), nil
}

// dtwRefinement shifts the subtitle signal by the already-found global
// offset, trims both signals to a common length, and warps what remains.
func (s *Synchronizer) dtwRefinement(ctx context.Context, audio, subtitle []float64, offset float64) [][2]int {
	logger := ctxlog.FromContext(ctx)

	offsetWindows := int(offset * 1000 / float64(s.opts.WindowMS))
	shifted := shiftSignal(subtitle, offsetWindows)

	n := len(audio)
	if len(shifted) < n {
		n = len(shifted)
	}
	if n == 0 {
		return nil
	}

	logger.Debug("Running DTW refinement.", "windows", n)
	return DTWPath(audio[:n], shifted[:n])
}

// shiftSignal moves a binary signal right (positive) or left (negative) by
// the given number of windows, keeping its length.
func shiftSignal(signal []float64, windows int) []float64 {
	if windows == 0 || len(signal) == 0 {
		return signal
	}
	out := make([]float64, len(signal))
	for i := range signal {
		src := i - windows
		if src >= 0 && src < len(signal) {
			out[i] = signal[src]
		}
	}
	return out
}
