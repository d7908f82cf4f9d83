package runner

import (
	"context"
	"fmt"

	"github.com/okian/fungo/internal/domain/model"
	"github.com/okian/fungo/pkg/logger"
	"github.com/okian/fungo/pkg/metrics"
)

// Evaluator simulates a batting order over a number of games.
type Evaluator interface {
	EvaluateLineup(ctx context.Context, order []string, games int, seed int64) (model.LineupScoreSummary, error)
}

// Ranker records a finished evaluation in the leaderboard.
type Ranker interface {
	Insert(ctx context.Context, order []string, meanRuns float64, games int) (bool, error)
}

// JobSource defines how workers receive jobs.
type JobSource interface {
	Dequeue(ctx context.Context) <-chan Job
}

// Result is delivered to the optional result callback after each job.
type Result struct {
	Job     Job
	Summary model.LineupScoreSummary
	Err     error
}

// Worker processes jobs until its source drains or it is shut down.
type Worker interface {
	// Run starts the worker loop until ctx is canceled.
	Run(ctx context.Context)

	// Shutdown gracefully stops the worker.
	Shutdown(ctx context.Context) error
}

// InMemoryWorker implements Worker for evaluating lineup jobs.
type InMemoryWorker struct {
	source    JobSource
	evaluator Evaluator
	ranker    Ranker
	onResult  func(Result)
	name      string

	// Shutdown control
	shutdown chan struct{}
	done     chan struct{}

	logger logger.Logger
}

// NewInMemoryWorker creates a new worker with configuration options.
func NewInMemoryWorker(source JobSource, evaluator Evaluator, ranker Ranker, opts ...Option) *InMemoryWorker {
	w := &InMemoryWorker{
		source:    source,
		evaluator: evaluator,
		ranker:    ranker,
		name:      "worker",
		shutdown:  make(chan struct{}),
		done:      make(chan struct{}),
		logger:    logger.Get().Named("worker"),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.name != "worker" {
		w.logger = w.logger.Named(w.name)
	}
	return w
}

// Run starts the worker loop.
func (w *InMemoryWorker) Run(ctx context.Context) {
	metrics.AddWorkerActive(1)
	defer func() {
		metrics.AddWorkerActive(-1)
		close(w.done)
	}()

	jobChan := w.source.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.shutdown:
			return
		case job, ok := <-jobChan:
			if !ok {
				// Channel closed, worker should stop
				return
			}
			if err := w.processJob(ctx, job); err != nil {
				w.logger.Error(ctx, "error processing job", logger.Error(err))
			}
		}
	}
}

// Shutdown gracefully stops the worker.
func (w *InMemoryWorker) Shutdown(ctx context.Context) error {
	close(w.shutdown)

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		w.logger.Warn(ctx, "shutdown timed out")
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

// processJob evaluates one lineup and records the outcome. A failed job
// is reported and does not stop the worker.
func (w *InMemoryWorker) processJob(ctx context.Context, job Job) error {
	summary, err := w.evaluator.EvaluateLineup(ctx, job.Order, job.Games, job.Seed)
	if err != nil {
		metrics.RecordSimulationError("runner")
		w.logger.Error(ctx, "evaluation failed",
			logger.String("job", job.Name),
			logger.Error(err),
		)
		w.deliver(Result{Job: job, Err: err})
		return fmt.Errorf("evaluate lineup %s: %w", job.Name, err)
	}

	if w.ranker != nil {
		if _, err := w.ranker.Insert(ctx, job.Order, summary.MeanRuns, summary.Games); err != nil {
			metrics.RecordSimulationError("leaderboard")
			w.logger.Error(ctx, "leaderboard insert failed",
				logger.String("job", job.Name),
				logger.Error(err),
			)
			w.deliver(Result{Job: job, Summary: summary, Err: err})
			return fmt.Errorf("rank lineup %s: %w", job.Name, err)
		}
	}

	w.deliver(Result{Job: job, Summary: summary})
	return nil
}

func (w *InMemoryWorker) deliver(r Result) {
	if w.onResult != nil {
		w.onResult(r)
	}
}
