package app

import (
	"context"
	"fmt"

	"github.com/dylan-ru/sub-lator/internal/executor"
	"github.com/dylan-ru/sub-lator/internal/job"
	"github.com/dylan-ru/sub-lator/internal/provider"
)

// runJob loads a declarative job file and executes every operation it
// defines on one shared worker pool.
func (a *App) runJob(ctx context.Context) error {
	loaded, err := job.Load(a.config.JobPath)
	if err != nil {
		return err
	}
	a.logger.Info("Job loaded.",
		"translates", len(loaded.Translates),
		"transcribes", len(loaded.Transcribes),
		"syncs", len(loaded.Syncs))

	var tasks []executor.Task
	var closers []func()
	defer func() {
		for _, c := range closers {
			c()
		}
	}()

	for _, block := range loaded.Translates {
		p, err := provider.ByName(block.Provider)
		if err != nil {
			return fmt.Errorf("translate %q: %w", block.Name, err)
		}
		blockTasks, closeClient, err := a.translateTasks(translateSpec{
			inputs:    block.Inputs,
			language:  block.Language,
			model:     block.Model,
			outputDir: block.OutputDir,
			provider:  p,
		})
		if err != nil {
			return fmt.Errorf("translate %q: %w", block.Name, err)
		}
		closers = append(closers, closeClient)
		tasks = append(tasks, prefixTasks(block.Name, blockTasks)...)
	}

	for _, block := range loaded.Transcribes {
		p, err := provider.ByName(block.Provider)
		if err != nil {
			return fmt.Errorf("transcribe %q: %w", block.Name, err)
		}
		blockTasks, closeClient, err := a.transcribeTasks(transcribeSpec{
			inputs:   block.Inputs,
			format:   block.Format,
			provider: p,
		})
		if err != nil {
			return fmt.Errorf("transcribe %q: %w", block.Name, err)
		}
		closers = append(closers, closeClient)
		tasks = append(tasks, prefixTasks(block.Name, blockTasks)...)
	}

	for _, block := range loaded.Syncs {
		block := block
		tasks = append(tasks, executor.Task{
			ID: fmt.Sprintf("%s:sync:%s", block.Name, block.Subtitle),
			Run: func(ctx context.Context) error {
				return a.syncOne(ctx, syncSpec{
					subtitle:  block.Subtitle,
					media:     block.Media,
					output:    block.Output,
					maxOffset: block.MaxOffset,
					useDTW:    block.DTW,
				})
			},
		})
	}

	exec := executor.New(a.config.WorkerCount)
	if err := exec.Run(ctx, tasks); err != nil {
		return fmt.Errorf("job execution failed: %w", err)
	}
	return nil
}

// prefixTasks namespaces task IDs with their job block name so interleaved
// logs stay attributable.
func prefixTasks(name string, tasks []executor.Task) []executor.Task {
	for i := range tasks {
		tasks[i].ID = name + ":" + tasks[i].ID
	}
	return tasks
}
