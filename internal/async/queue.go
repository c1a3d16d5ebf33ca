// Package async runs extraction jobs on a bounded worker pool so the gRPC
// surface can accept a job and return immediately.
package async

import (
	"context"
	"errors"
	"sync"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/platewise/menu-extractor/internal/entity"
)

// ErrQueueClosed is returned by Enqueue after Shutdown has begun. Callers
// must surface it; an accepted job that never runs would sit in DRAFT forever.
var ErrQueueClosed = errors.New("extraction queue is shut down")

// Job is one queued extraction run.
type Job struct {
	JobID       uuid.UUID
	Documents   []entity.Document
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

// Runner executes one extraction run. Satisfied by *pipeline.Pipeline.
type Runner interface {
	Run(ctx context.Context, jobID uuid.UUID, docs []entity.Document) (*entity.ExtractionResults, error)
}

type PipelineQueue struct {
	pipe    Runner
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	// mu guards closed and, via read-locked senders, the channel close:
	// Shutdown's write lock cannot proceed while any send holds a read lock.
	mu     sync.RWMutex
	closed bool
}

type Option func(*PipelineQueue)

func WithWorkers(n int) Option {
	return func(q *PipelineQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *PipelineQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}
func WithRunTimeout(d time.Duration) Option {
	return func(q *PipelineQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewPipelineQueue(pipe Runner, logger *slog.Logger, opts ...Option) *PipelineQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &PipelineQueue{
		pipe:    pipe,
		logger:  logger,
		workers: 4,
		timeout: 10 * time.Minute,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *PipelineQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					results, err := q.pipe.Run(ctx, job.JobID, job.Documents)
					cancel()

					if err != nil {
						q.logger.Error("extraction failed", "worker_id", workerID, "job_id", job.JobID, "error", err)
					} else {
						q.logger.Info("extraction complete", "worker_id", workerID, "job_id", job.JobID, "items", results.TotalItems)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

// Enqueue hands a job to the workers, blocking for channel space when the
// queue is full. The read lock is held across the send so Shutdown cannot
// close the channel under a sender.
func (q *PipelineQueue) Enqueue(ctx context.Context, job Job) error {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		q.logger.Warn("enqueue rejected: queue is shutting down", "job_id", job.JobID)
		return ErrQueueClosed
	}
	select {
	case q.ch <- job:
	default:
		q.logger.Warn("queue full, applying backpressure", "job_id", job.JobID)
		select {
		case q.ch <- job:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	q.logger.Info("queued job for extraction", "job_id", job.JobID, "documents", len(job.Documents))
	return nil
}

func (q *PipelineQueue) Shutdown(ctx context.Context) {
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
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
