package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dylan-ru/sub-lator/internal/ctxlog"
	"github.com/dylan-ru/sub-lator/internal/executor"
	"github.com/dylan-ru/sub-lator/internal/media"
	"github.com/dylan-ru/sub-lator/internal/provider"
	"github.com/dylan-ru/sub-lator/internal/tracker"
	"github.com/dylan-ru/sub-lator/internal/transcribe"
)

// runTranscribe executes the transcribe command.
func (a *App) runTranscribe(ctx context.Context) error {
	p, err := provider.ByName(a.config.Provider)
	if err != nil {
		return err
	}

	tasks, closeClient, err := a.transcribeTasks(transcribeSpec{
		inputs:   a.config.Inputs,
		format:   a.config.Format,
		provider: p,
	})
	if err != nil {
		return err
	}
	defer closeClient()

	exec := executor.New(a.config.WorkerCount)
	if err := exec.Run(ctx, tasks); err != nil {
		return fmt.Errorf("transcription failed: %w", err)
	}
	return nil
}

// transcribeSpec carries one transcribe batch's parameters.
type transcribeSpec struct {
	inputs   []string
	format   string
	provider *provider.Provider
}

// transcribeTasks builds one executor task per media file and threads a
// shared progress tracker through the batch.
func (a *App) transcribeTasks(spec transcribeSpec) ([]executor.Task, func(), error) {
	format, err := transcribe.ParseFormat(spec.format)
	if err != nil {
		return nil, nil, err
	}

	files, err := collectFiles(spec.inputs, transcribe.VideoExtensions)
	if err != nil {
		return nil, nil, err
	}

	var backend transcribe.Transcriber
	closeClient := func() {}
	switch spec.provider.Name {
	case provider.Groq.Name:
		client := transcribe.NewGroqClient(a.Keys(provider.Groq.Name))
		backend = client
		closeClient = func() { _ = client.Close() }
	case provider.AssemblyAI.Name:
		backend = transcribe.NewAssemblyAIClient(a.Keys(provider.AssemblyAI.Name))
	default:
		return nil, nil, fmt.Errorf("provider %q does not support transcription", spec.provider.Name)
	}

	progress := tracker.New(len(files))

	tasks := make([]executor.Task, len(files))
	for i, file := range files {
		file := file
		tasks[i] = executor.Task{
			ID: "transcribe:" + filepath.Base(file),
			Run: func(ctx context.Context) error {
				return a.transcribeOne(ctx, backend, progress, file, format)
			},
		}
	}
	return tasks, closeClient, nil
}

// transcribeOne handles a single media file: probe, transcribe, format,
// write, and report batch progress.
func (a *App) transcribeOne(ctx context.Context, backend transcribe.Transcriber, progress *tracker.Tracker, file string, format transcribe.Format) error {
	logger := ctxlog.FromContext(ctx)

	// Duration is only used for ETA math; a probe failure is not fatal.
	duration, err := media.Duration(ctx, file)
	if err != nil {
		logger.Debug("Duration probe failed.", "file", file, "error", err)
		duration = 0
	}

	progress.StartPhase(tracker.PhaseTranscription, file, duration)
	cues, err := backend.Transcribe(ctx, file)
	progress.EndPhase(tracker.PhaseTranscription, file, err == nil)
	if err != nil {
		return err
	}

	progress.StartPhase(tracker.PhaseFormatting, file, duration)
	outputPath := transcribe.OutputPath(file, format)
	err = transcribe.WriteFile(outputPath, cues, format)
	progress.EndPhase(tracker.PhaseFormatting, file, err == nil)
	if err != nil {
		return err
	}

	progress.CompleteItem(file)
	logger.Info("✅ Subtitle document written", "output", outputPath)

	if remaining, confidence, ok := progress.Remaining(0); ok && remaining > 0 {
		logger.Info("Batch progress.",
			"completed", progress.Completed(),
			"remaining", tracker.RemainingText(remaining, confidence))
	}
	return nil
}
