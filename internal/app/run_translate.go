package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dylan-ru/sub-lator/internal/executor"
	"github.com/dylan-ru/sub-lator/internal/provider"
	"github.com/dylan-ru/sub-lator/internal/translate"
)

// runTranslate executes the translate command: collect .srt files, fan them
// out to workers, one API call per file.
func (a *App) runTranslate(ctx context.Context) error {
	p, err := provider.ByName(a.config.Provider)
	if err != nil {
		return err
	}

	tasks, closeClient, err := a.translateTasks(translateSpec{
		inputs:    a.config.Inputs,
		language:  a.config.Language,
		model:     a.config.Model,
		outputDir: a.config.OutputDir,
		provider:  p,
	})
	if err != nil {
		return err
	}
	defer closeClient()

	exec := executor.New(a.config.WorkerCount)
	if err := exec.Run(ctx, tasks); err != nil {
		return fmt.Errorf("translation failed: %w", err)
	}
	return nil
}

// translateSpec carries one translate batch's parameters; built from flags
// or from a job file block.
type translateSpec struct {
	inputs    []string
	language  string
	model     string
	outputDir string
	provider  *provider.Provider
}

// translateTasks builds one executor task per subtitle file. The returned
// closer releases the shared HTTP client once the batch is done.
func (a *App) translateTasks(spec translateSpec) ([]executor.Task, func(), error) {
	language, suffix, err := translate.ResolveLanguage(spec.language)
	if err != nil {
		return nil, nil, err
	}

	files, err := collectFiles(spec.inputs, []string{".srt"})
	if err != nil {
		return nil, nil, err
	}

	client, err := translate.NewClient(spec.provider, a.Keys(spec.provider.Name))
	if err != nil {
		return nil, nil, err
	}
	translator := translate.NewTranslator(client, translate.Options{
		Language:  language,
		Suffix:    suffix,
		Model:     spec.model,
		OutputDir: spec.outputDir,
	})

	tasks := make([]executor.Task, len(files))
	for i, file := range files {
		file := file
		tasks[i] = executor.Task{
			ID: "translate:" + filepath.Base(file),
			Run: func(ctx context.Context) error {
				_, err := translator.TranslateFile(ctx, file)
				return err
			},
		}
	}

	closeClient := func() { _ = client.Close() }
	return tasks, closeClient, nil
}
