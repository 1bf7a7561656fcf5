// Package executor fans batch tasks out to a pool of concurrent workers
// with fast-fail semantics: the first task failure cancels the shared
// context and the remaining queued tasks are skipped.
package executor

import (
	"context"
	"sync"

	"github.com/dylan-ru/sub-lator/internal/ctxlog"
)

// Task is one unit of batch work.
type Task struct {
	// ID identifies the task in logs, e.g. "translate:movie.srt".
	ID string
	// Run performs the work. It must honor ctx cancellation.
	Run func(ctx context.Context) error
}

// Executor runs tasks on a fixed-size worker pool.
type Executor struct {
	workers int
}

// New creates an executor with the given worker count. Counts below one are
// raised to one.
func New(workers int) *Executor {
	if workers < 1 {
		workers = 1
	}
	return &Executor{workers: workers}
}

// Run executes every task and blocks until all have finished or been
// skipped. It returns the first error encountered.
func (e *Executor) Run(ctx context.Context, tasks []Task) error {
	logger := ctxlog.FromContext(ctx)
	if len(tasks) == 0 {
		logger.Warn("No tasks to execute.")
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	taskChan := make(chan Task)

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)

	for id := 0; id < e.workers; id++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			e.worker(ctx, taskChan, workerID, func(err error) {
				errOnce.Do(func() {
					firstErr = err
					cancel()
				})
			})
		}(id)
	}

	logger.Info("🚀 Starting concurrent execution...", "tasks", len(tasks), "workers", e.workers)

feed:
	for _, task := range tasks {
		select {
		case taskChan <- task:
		case <-ctx.Done():
			break feed
		}
	}
	close(taskChan)
	wg.Wait()

	if firstErr != nil {
		logger.Error("Execution failed.", "error", firstErr)
		return firstErr
	}
	logger.Info("🏁 Execution finished.")
	return nil
}

// worker is the core processing loop for a single concurrent worker.
func (e *Executor) worker(ctx context.Context, taskChan chan Task, workerID int, fail func(error)) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Worker started.", "workerID", workerID)

	for task := range taskChan {
		taskLogger := logger.With("workerID", workerID, "taskID", task.ID)

		if ctx.Err() != nil {
			taskLogger.Debug("Skipping task, run already cancelled.")
			continue
		}

		taskLogger.Debug("Worker picked up task for execution.")
		if err := task.Run(ctx); err != nil {
			taskLogger.Error("Task execution failed.", "error", err)
			fail(err)
			continue
		}
		taskLogger.Debug("Task execution succeeded.")
	}

	logger.Debug("Worker finished.", "workerID", workerID)
}
