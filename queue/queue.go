// Package queue runs background jobs decoupled from the request cycle.
// Jobs live in a buffered channel consumed by a fixed pool of workers;
// enqueueing never blocks a request.
package queue

import (
	"context"
	"sync"
	"time"

	"agenda.link/configs/configslog"

	"go.uber.org/zap"
)

// Handler processes one job payload. Errors are logged, not retried;
// delivery guarantees beyond at-most-once are out of scope here.
type Handler func(ctx context.Context, payload any) error

type job struct {
	kind    string
	payload any
}

type Queue struct {
	jobs     chan job
	handlers map[string]Handler
	wg       sync.WaitGroup

	mu      sync.Mutex
	started bool
	closed  bool
}

func New(size int) *Queue {
	if size < 1 {
		size = 1
	}
	return &Queue{
		jobs:     make(chan job, size),
		handlers: make(map[string]Handler),
	}
}

// Register binds a handler to a job kind. Must happen before Start.
func (q *Queue) Register(kind string, h Handler) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.started {
		configslog.SLog.Warnf("queue: handler for %q registered after start, ignored", kind)
		return
	}
	q.handlers[kind] = h
}

// Start launches the worker pool.
func (q *Queue) Start(workers int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.started {
		return
	}
	q.started = true
	if workers < 1 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		q.wg.Add(1)
		go q.worker()
	}
	configslog.SLog.Infof("queue: %d worker(s) started", workers)
}

func (q *Queue) worker() {
	defer q.wg.Done()
	for j := range q.jobs {
		h, ok := q.handlers[j.kind]
		if !ok {
			configslog.Log.Warn("queue: no handler for job", zap.String("kind", j.kind))
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := h(ctx, j.payload); err != nil {
			configslog.Log.Error("queue: job failed",
				zap.String("kind", j.kind), zap.Error(err))
		}
		cancel()
	}
}

// Enqueue submits a job and returns immediately. When the buffer is full
// the job is dropped with a warning; callers treat submission as
// fire-and-forget.
func (q *Queue) Enqueue(kind string, payload any) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		configslog.Log.Warn("queue: enqueue after shutdown", zap.String("kind", kind))
		return
	}
	q.mu.Unlock()

	select {
	case q.jobs <- job{kind: kind, payload: payload}:
	default:
		configslog.Log.Warn("queue: buffer full, job dropped", zap.String("kind", kind))
	}
}

// Shutdown stops accepting jobs and waits for in-flight ones, up to the
// context deadline.
func (q *Queue) Shutdown(ctx context.Context) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	close(q.jobs)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
