package sections

import (
	"context"
	"sync"
)

type task[T any] struct {
	fn   func(*Engine[T]) error
	done chan error
}

// Worker owns an engine on a single goroutine.
// Every task runs on that goroutine, so a task can compute a refresh and apply it inline
// while other callers wait their turn.
type Worker[T any] struct {
	engine  *Engine[T]
	tasks   chan task[T]
	stopped chan struct{}
	once    sync.Once
}

// NewWorker creates a worker for engine with room for queue waiting tasks.
func NewWorker[T any](engine *Engine[T], queue int) *Worker[T] {
	if queue < 0 {
		queue = 0
	}
	return &Worker[T]{
		engine:  engine,
		tasks:   make(chan task[T], queue),
		stopped: make(chan struct{}),
	}
}

// Run executes tasks until ctx is done. It must be called exactly once.
func (w *Worker[T]) Run(ctx context.Context) error {
	defer w.once.Do(func() { close(w.stopped) })
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case t := <-w.tasks:
			t.done <- t.fn(w.engine)
		}
	}
}

// Do runs fn on the worker goroutine and waits for its result.
func (w *Worker[T]) Do(ctx context.Context, fn func(*Engine[T]) error) error {
	t := task[T]{fn: fn, done: make(chan error, 1)}

	select {
	case w.tasks <- t:
	case <-w.stopped:
		return ErrWorkerStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-t.done:
		return err
	case <-w.stopped:
		return ErrWorkerStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stopped is closed once Run returns.
func (w *Worker[T]) Stopped() <-chan struct{} {
	return w.stopped
}
