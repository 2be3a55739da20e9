package async

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/om-scorecard/internal/common"
	"github.com/joseph-ayodele/om-scorecard/internal/extract"
	"github.com/joseph-ayodele/om-scorecard/internal/pipeline"
)

// ErrQueueClosed is returned by Enqueue after Shutdown.
var ErrQueueClosed = errors.New("queue is shutting down")

// Builder is the part of the pipeline a worker drives.
type Builder interface {
	Build(ctx context.Context, req pipeline.Request) (pipeline.Result, error)
}

// Outcome reports a finished job.
type Outcome struct {
	Job    Job
	Result pipeline.Result
	Err    error
}

var _ Queue = (*BuildQueue)(nil)

// BuildQueue runs scorecard builds on a fixed worker pool.
type BuildQueue struct {
	builder  Builder
	logger   *slog.Logger
	workers  int
	timeout  time.Duration
	onResult func(Outcome)

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*BuildQueue)

func WithWorkers(n int) Option {
	return func(q *BuildQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *BuildQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}

func WithProcessTimeout(d time.Duration) Option {
	return func(q *BuildQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

// WithResultHandler is called from the worker goroutine after every job.
func WithResultHandler(fn func(Outcome)) Option {
	return func(q *BuildQueue) {
		q.onResult = fn
	}
}

func NewBuildQueue(b Builder, logger *slog.Logger, opts ...Option) *BuildQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &BuildQueue{
		builder: b,
		logger:  logger,
		workers: 2,
		timeout: 3 * time.Minute,
		ch:      make(chan Job, 64),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *BuildQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Debug("queue.worker.started", "worker_id", workerID)
				for job := range q.ch {
					q.run(workerID, job)
				}
				q.logger.Debug("queue.worker.stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *BuildQueue) run(workerID int, job Job) {
	ctx, cancel := context.WithTimeout(common.WithRequestID(context.Background(), job.RequestID), q.timeout)
	defer cancel()

	res, err := q.builder.Build(ctx, pipeline.Request{
		Source:    extract.FileSource{Path: job.Path},
		OutputDir: job.OutputDir,
	})
	if err != nil {
		q.logger.Error("queue.job.failed", "worker_id", workerID, "req_id", job.RequestID, "path", job.Path, "err", err)
	} else {
		q.logger.Info("queue.job.ok",
			"worker_id", workerID,
			"req_id", job.RequestID,
			"path", job.Path,
			"output", res.OutputPath,
			"queued_ms", time.Since(job.SubmittedAt).Milliseconds(),
		)
	}
	if q.onResult != nil {
		q.onResult(Outcome{Job: job, Result: res, Err: err})
	}
}

// Enqueue blocks while the queue is full, until ctx is done.
func (q *BuildQueue) Enqueue(ctx context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("queue.enqueue.closed", "path", job.Path)
		return ErrQueueClosed
	}
	if job.RequestID == "" {
		job.RequestID = uuid.NewString()
	}
	if job.SubmittedAt.IsZero() {
		job.SubmittedAt = time.Now()
	}
	select {
	case q.ch <- job:
	default:
		q.logger.Warn("queue.full", "path", job.Path)
		select {
		case q.ch <- job:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	q.logger.Info("queue.enqueued", "req_id", job.RequestID, "path", job.Path)
	return nil
}

// Shutdown stops intake and waits for queued jobs to finish or ctx to end.
func (q *BuildQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("queue.shutdown.interrupted")
	case <-done:
		q.logger.Info("queue.shutdown.drained")
	}
}
