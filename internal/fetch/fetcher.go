// Package fetch resolves document references to local scratch files.
package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/platewise/menu-extractor/constants"
	"github.com/platewise/menu-extractor/internal/common"
	"github.com/platewise/menu-extractor/internal/entity"
)

// LocalDocument is a fetched document on disk, ready for upload.
type LocalDocument struct {
	Document entity.Document
	Path     string
	Size     int64
}

type Fetcher struct {
	client     *http.Client
	scratchDir string
	logger     *slog.Logger
}

func NewFetcher(client *http.Client, scratchDir string, logger *slog.Logger) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	if scratchDir == "" {
		scratchDir = os.TempDir()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{client: client, scratchDir: scratchDir, logger: logger}
}

// FetchAll retrieves every document into a run-scoped scratch directory.
// A single failure aborts the whole set: a partial document set would produce
// a misleadingly incomplete menu. The returned cleanup removes the scratch
// directory and must run on every exit path, including cancellation.
func (f *Fetcher) FetchAll(ctx context.Context, jobID uuid.UUID, docs []entity.Document) ([]LocalDocument, func(), error) {
	dir, err := os.MkdirTemp(f.scratchDir, "menux-"+jobID.String()+"-*")
	if err != nil {
		return nil, func() {}, fmt.Errorf("%w: create scratch dir: %v", common.ErrFetch, err)
	}
	cleanup := func() {
		if rmErr := os.RemoveAll(dir); rmErr != nil {
			f.logger.Warn("fetch.cleanup_failed", "dir", dir, "error", rmErr)
		}
	}

	out := make([]LocalDocument, 0, len(docs))
	for i, doc := range docs {
		local, err := f.fetchOne(ctx, dir, jobID, i, doc)
		if err != nil {
			cleanup()
			return nil, func() {}, err
		}
		out = append(out, local)
	}
	return out, cleanup, nil
}

func (f *Fetcher) fetchOne(ctx context.Context, dir string, jobID uuid.UUID, ordinal int, doc entity.Document) (LocalDocument, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, doc.URL, nil)
	if err != nil {
		return LocalDocument{}, fmt.Errorf("%w: build request for %q: %v", common.ErrFetch, doc.Name, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Error("fetch.request_failed", "name", doc.Name, "error", err)
		return LocalDocument{}, fmt.Errorf("%w: %q: %v", common.ErrFetch, doc.Name, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			f.logger.Warn("fetch.body_close_failed", "name", doc.Name, "error", cerr)
		}
	}()

	if resp.StatusCode/100 != 2 {
		return LocalDocument{}, fmt.Errorf("%w: %q: status %d", common.ErrFetch, doc.Name, resp.StatusCode)
	}

	// collision-resistant scratch name: job + ordinal + timestamp
	name := fmt.Sprintf("%s-%d-%d%s", jobID, ordinal, time.Now().UnixNano(), constants.ExtForMIME(doc.MIMEType))
	path := filepath.Join(dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return LocalDocument{}, fmt.Errorf("%w: create scratch file: %v", common.ErrFetch, err)
	}
	written, err := io.Copy(dst, resp.Body)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return LocalDocument{}, fmt.Errorf("%w: write %q: %v", common.ErrFetch, doc.Name, err)
	}

	f.logger.Info("fetch.document_ok",
		"name", doc.Name,
		"bytes", written,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return LocalDocument{Document: doc, Path: path, Size: written}, nil
}
