package runner

import (
	"github.com/okian/fungo/pkg/logger"
)

// QueueOption applies a configuration option to the InMemoryQueue.
type QueueOption func(*InMemoryQueue)

// WithCapacity bounds the job queue.
func WithCapacity(n int) QueueOption {
	return func(q *InMemoryQueue) {
		if n > 0 {
			q.capacity = n
		}
	}
}

// Option applies a configuration option to the InMemoryWorker.
type Option func(*InMemoryWorker)

// WithName sets the worker name for identification and logging.
func WithName(name string) Option {
	return func(w *InMemoryWorker) {
		if name != "" {
			w.name = name
		}
	}
}

// WithLogger sets a custom logger for the worker.
func WithLogger(l logger.Logger) Option {
	return func(w *InMemoryWorker) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithOnResult registers a callback invoked after every processed job,
// successful or not. The callback may be invoked from multiple workers
// concurrently and must be safe for that.
func WithOnResult(fn func(Result)) Option {
	return func(w *InMemoryWorker) {
		w.onResult = fn
	}
}
