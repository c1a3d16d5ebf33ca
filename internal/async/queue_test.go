package async

import (
	"context"
	"sync"
	"testing"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/platewise/menu-extractor/internal/entity"
)

type fakeRunner struct {
	mu    sync.Mutex
	ran   []uuid.UUID
	block chan struct{}
}

func (f *fakeRunner) Run(ctx context.Context, jobID uuid.UUID, docs []entity.Document) (*entity.ExtractionResults, error) {
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	f.mu.Lock()
	f.ran = append(f.ran, jobID)
	f.mu.Unlock()
	return &entity.ExtractionResults{}, nil
}

func (f *fakeRunner) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.ran)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestEnqueueAfterShutdownReturnsError(t *testing.T) {
	runner := &fakeRunner{}
	q := NewPipelineQueue(runner, discardLogger(), WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	err := q.Enqueue(context.Background(), Job{JobID: uuid.New()})
	require.ErrorIs(t, err, ErrQueueClosed)
	require.Equal(t, 0, runner.count())
}

func TestShutdownDrainsBufferedJobs(t *testing.T) {
	runner := &fakeRunner{block: make(chan struct{})}
	q := NewPipelineQueue(runner, discardLogger(), WithWorkers(1), WithQueueSize(8))

	for i := 0; i < 5; i++ {
		require.NoError(t, q.Enqueue(context.Background(), Job{JobID: uuid.New()}))
	}
	close(runner.block)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	require.Equal(t, 5, runner.count())
}

func TestShutdownIsIdempotent(t *testing.T) {
	q := NewPipelineQueue(&fakeRunner{}, discardLogger(), WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)
	q.Shutdown(ctx)
}
