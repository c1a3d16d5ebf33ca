// Package filestore uploads document bytes to the model provider's file
// store and tracks the resulting remote handles in a bounded, age-evicted
// cache. The cache is an injectable instance owned by the composition root;
// one process-wide instance is shared across jobs.
package filestore

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/platewise/menu-extractor/internal/common"
	"github.com/platewise/menu-extractor/internal/fetch"
)

// RemoteFileHandle describes one uploaded document in the provider's store.
type RemoteFileHandle struct {
	DocumentID string
	URI        string
	RemoteName string
	MIMEType   string
	UploadedAt time.Time
	SizeBytes  int64
}

// Uploader is the raw provider transport, stubbed in tests.
type Uploader interface {
	Upload(ctx context.Context, displayName, mimeType, path string) (*RemoteFileHandle, error)
	Delete(ctx context.Context, remoteName string) error
}

// LogicalDocumentID keys the cache. It is job-scoped on purpose: two jobs
// referencing identical bytes get independent uploads, so cache entries never
// outlive their job's access rights on the remote store.
func LogicalDocumentID(jobID uuid.UUID, docName string) string {
	return jobID.String() + "/" + docName
}

type inflight struct {
	done   chan struct{}
	handle *RemoteFileHandle
	err    error
}

type Cache struct {
	uploader Uploader
	logger   *slog.Logger

	mu      sync.Mutex
	entries map[string]*RemoteFileHandle
	pending map[string]*inflight
}

func NewCache(uploader Uploader, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{
		uploader: uploader,
		logger:   logger,
		entries:  make(map[string]*RemoteFileHandle),
		pending:  make(map[string]*inflight),
	}
}

// UploadDocument uploads one local document, deduplicating against both the
// cache and in-flight uploads: concurrent callers for the same logical
// document id await the same operation and receive the same handle.
func (c *Cache) UploadDocument(ctx context.Context, docID string, local fetch.LocalDocument) (*RemoteFileHandle, error) {
	c.mu.Lock()
	if h, ok := c.entries[docID]; ok {
		c.mu.Unlock()
		c.logger.Debug("filestore.cache_hit", "document_id", docID)
		return h, nil
	}
	if op, ok := c.pending[docID]; ok {
		c.mu.Unlock()
		select {
		case <-op.done:
			return op.handle, op.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	op := &inflight{done: make(chan struct{})}
	c.pending[docID] = op
	c.mu.Unlock()

	handle, err := c.uploader.Upload(ctx, local.Document.Name, local.Document.MIMEType, local.Path)
	if err != nil {
		err = fmt.Errorf("%w: %q: %v", common.ErrUpload, local.Document.Name, err)
	} else {
		handle.DocumentID = docID
	}

	c.mu.Lock()
	op.handle, op.err = handle, err
	if err == nil {
		c.entries[docID] = handle
	}
	delete(c.pending, docID)
	c.mu.Unlock()
	close(op.done)

	return handle, err
}

// UploadAllDocuments uploads every document concurrently and waits for all to
// settle. A single failure fails the batch; retrying individual documents is
// the caller's decision.
func (c *Cache) UploadAllDocuments(ctx context.Context, jobID uuid.UUID, locals []fetch.LocalDocument) ([]*RemoteFileHandle, error) {
	handles := make([]*RemoteFileHandle, len(locals))
	errs := make([]error, len(locals))

	var wg sync.WaitGroup
	for i, local := range locals {
		wg.Add(1)
		go func(i int, local fetch.LocalDocument) {
			defer wg.Done()
			docID := LogicalDocumentID(jobID, local.Document.Name)
			handles[i], errs[i] = c.UploadDocument(ctx, docID, local)
		}(i, local)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return handles, nil
}

// DeleteOldFiles evicts cache entries older than maxAge. Individual remote
// deletion failures are counted but never abort the sweep.
func (c *Cache) DeleteOldFiles(ctx context.Context, maxAge time.Duration) (deleted, failed int) {
	cutoff := time.Now().Add(-maxAge)

	c.mu.Lock()
	var stale []*RemoteFileHandle
	for id, h := range c.entries {
		if h.UploadedAt.Before(cutoff) {
			stale = append(stale, h)
			delete(c.entries, id)
		}
	}
	c.mu.Unlock()

	for _, h := range stale {
		if err := c.uploader.Delete(ctx, h.RemoteName); err != nil {
			failed++
			c.logger.Warn("filestore.evict_failed", "remote_name", h.RemoteName, "error", err)
			continue
		}
		deleted++
	}
	if deleted+failed > 0 {
		c.logger.Info("filestore.evicted", "deleted", deleted, "failed", failed)
	}
	return deleted, failed
}

// DeleteJobFiles drains one job's entries at end of run, best-effort per
// file. Entries of other jobs are untouched; the cache is shared across
// concurrent runs.
func (c *Cache) DeleteJobFiles(ctx context.Context, jobID uuid.UUID) (deleted, failed int) {
	prefix := jobID.String() + "/"

	c.mu.Lock()
	var owned []*RemoteFileHandle
	for id, h := range c.entries {
		if strings.HasPrefix(id, prefix) {
			owned = append(owned, h)
			delete(c.entries, id)
		}
	}
	c.mu.Unlock()

	for _, h := range owned {
		if err := c.uploader.Delete(ctx, h.RemoteName); err != nil {
			failed++
			c.logger.Warn("filestore.evict_failed", "remote_name", h.RemoteName, "error", err)
			continue
		}
		deleted++
	}
	if deleted+failed > 0 {
		c.logger.Info("filestore.job_drained", "job_id", jobID, "deleted", deleted, "failed", failed)
	}
	return deleted, failed
}

// DeleteAllFiles drains the whole cache, best-effort per file. Called at
// daemon shutdown so no remote files outlive the process.
func (c *Cache) DeleteAllFiles(ctx context.Context) (deleted, failed int) {
	return c.DeleteOldFiles(ctx, -time.Second)
}

// Len reports the number of cached handles.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
