package executor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunAllTasks(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	ran := make(map[string]bool)

	var tasks []Task
	for i := 0; i < 10; i++ {
		id := fmt.Sprintf("task-%d", i)
		tasks = append(tasks, Task{
			ID: id,
			Run: func(ctx context.Context) error {
				mu.Lock()
				defer mu.Unlock()
				ran[id] = true
				return nil
			},
		})
	}

	err := New(4).Run(context.Background(), tasks)
	require.NoError(t, err)
	require.Len(t, ran, 10)
}

func TestRunReturnsFirstError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	tasks := []Task{
		{ID: "ok", Run: func(ctx context.Context) error { return nil }},
		{ID: "bad", Run: func(ctx context.Context) error { return boom }},
	}

	err := New(1).Run(context.Background(), tasks)
	require.ErrorIs(t, err, boom)
}

func TestRunFastFailSkipsRemaining(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var executed int

	tasks := []Task{
		{ID: "bad", Run: func(ctx context.Context) error {
			mu.Lock()
			executed++
			mu.Unlock()
			return errors.New("boom")
		}},
	}
	for i := 0; i < 50; i++ {
		tasks = append(tasks, Task{
			ID: fmt.Sprintf("after-%d", i),
			Run: func(ctx context.Context) error {
				mu.Lock()
				executed++
				mu.Unlock()
				return nil
			},
		})
	}

	err := New(1).Run(context.Background(), tasks)
	require.Error(t, err)

	// With a single worker the failure cancels the feed before the tail of
	// the queue is handed out.
	mu.Lock()
	defer mu.Unlock()
	require.Less(t, executed, len(tasks))
}

func TestRunHonorsCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var mu sync.Mutex
	var executed int
	tasks := []Task{{ID: "task", Run: func(ctx context.Context) error {
		mu.Lock()
		executed++
		mu.Unlock()
		return nil
	}}}

	err := New(2).Run(ctx, tasks)
	require.NoError(t, err)
	mu.Lock()
	defer mu.Unlock()
	require.Zero(t, executed)
}

func TestRunNoTasks(t *testing.T) {
	t.Parallel()

	require.NoError(t, New(4).Run(context.Background(), nil))
}

func TestNewRaisesWorkerCount(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1, New(0).workers)
	require.Equal(t, 1, New(-3).workers)
	require.Equal(t, 8, New(8).workers)
}
