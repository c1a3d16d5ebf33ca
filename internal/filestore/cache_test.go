package filestore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/menu-extractor/internal/common"
	"github.com/platewise/menu-extractor/internal/entity"
	"github.com/platewise/menu-extractor/internal/fetch"
)

type fakeUploader struct {
	mu       sync.Mutex
	uploads  atomic.Int64
	deletes  []string
	failNext map[string]error
	delay    time.Duration
}

func (f *fakeUploader) Upload(ctx context.Context, displayName, mimeType, path string) (*RemoteFileHandle, error) {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	f.mu.Lock()
	err := f.failNext[displayName]
	f.mu.Unlock()
	if err != nil {
		return nil, err
	}
	n := f.uploads.Add(1)
	return &RemoteFileHandle{
		URI:        fmt.Sprintf("https://files.example/%s/%d", displayName, n),
		RemoteName: fmt.Sprintf("files/%s-%d", displayName, n),
		MIMEType:   mimeType,
		UploadedAt: time.Now(),
		SizeBytes:  1,
	}, nil
}

func (f *fakeUploader) Delete(ctx context.Context, remoteName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failNext[remoteName]; err != nil {
		return err
	}
	f.deletes = append(f.deletes, remoteName)
	return nil
}

func localDoc(name string) fetch.LocalDocument {
	return fetch.LocalDocument{
		Document: entity.Document{URL: "https://example.com/" + name, Name: name, MIMEType: "application/pdf"},
		Path:     "/tmp/" + name,
	}
}

func TestUploadDocumentCacheHit(t *testing.T) {
	up := &fakeUploader{}
	c := NewCache(up, nil)
	docID := LogicalDocumentID(uuid.New(), "menu.pdf")

	h1, err := c.UploadDocument(context.Background(), docID, localDoc("menu.pdf"))
	require.NoError(t, err)
	h2, err := c.UploadDocument(context.Background(), docID, localDoc("menu.pdf"))
	require.NoError(t, err)

	assert.Same(t, h1, h2)
	assert.Equal(t, int64(1), up.uploads.Load())
	assert.Equal(t, docID, h1.DocumentID)
}

func TestUploadDocumentConcurrentDedup(t *testing.T) {
	up := &fakeUploader{delay: 20 * time.Millisecond}
	c := NewCache(up, nil)
	docID := LogicalDocumentID(uuid.New(), "menu.pdf")

	const callers = 8
	handles := make([]*RemoteFileHandle, callers)
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			handles[i], errs[i] = c.UploadDocument(context.Background(), docID, localDoc("menu.pdf"))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int64(1), up.uploads.Load(), "exactly one network upload")
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Same(t, handles[0], handles[i])
	}
}

func TestUploadDocumentFailureNotCached(t *testing.T) {
	up := &fakeUploader{failNext: map[string]error{"menu.pdf": errors.New("quota")}}
	c := NewCache(up, nil)
	docID := LogicalDocumentID(uuid.New(), "menu.pdf")

	_, err := c.UploadDocument(context.Background(), docID, localDoc("menu.pdf"))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUpload)
	assert.Zero(t, c.Len())

	// failure must clear the in-flight entry so a retry can proceed
	up.mu.Lock()
	delete(up.failNext, "menu.pdf")
	up.mu.Unlock()
	_, err = c.UploadDocument(context.Background(), docID, localDoc("menu.pdf"))
	assert.NoError(t, err)
}

func TestUploadAllDocumentsBatchFailure(t *testing.T) {
	up := &fakeUploader{failNext: map[string]error{"drinks.png": errors.New("rejected")}}
	c := NewCache(up, nil)

	_, err := c.UploadAllDocuments(context.Background(), uuid.New(), []fetch.LocalDocument{
		localDoc("menu.pdf"),
		localDoc("drinks.png"),
	})
	assert.ErrorIs(t, err, common.ErrUpload)
}

func TestDeleteOldFilesSweep(t *testing.T) {
	up := &fakeUploader{}
	c := NewCache(up, nil)
	jobID := uuid.New()

	_, err := c.UploadAllDocuments(context.Background(), jobID, []fetch.LocalDocument{
		localDoc("menu.pdf"),
		localDoc("drinks.png"),
	})
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	// nothing old enough yet
	deleted, failed := c.DeleteOldFiles(context.Background(), time.Hour)
	assert.Zero(t, deleted)
	assert.Zero(t, failed)
	assert.Equal(t, 2, c.Len())

	deleted, failed = c.DeleteAllFiles(context.Background())
	assert.Equal(t, 2, deleted)
	assert.Zero(t, failed)
	assert.Zero(t, c.Len())
	assert.Len(t, up.deletes, 2)
}

func TestDeleteJobFilesKeepsOtherJobs(t *testing.T) {
	up := &fakeUploader{}
	c := NewCache(up, nil)
	jobA := uuid.New()
	jobB := uuid.New()

	_, err := c.UploadAllDocuments(context.Background(), jobA, []fetch.LocalDocument{
		localDoc("menu.pdf"),
		localDoc("drinks.png"),
	})
	require.NoError(t, err)
	_, err = c.UploadAllDocuments(context.Background(), jobB, []fetch.LocalDocument{
		localDoc("wine.pdf"),
	})
	require.NoError(t, err)
	require.Equal(t, 3, c.Len())

	deleted, failed := c.DeleteJobFiles(context.Background(), jobA)
	assert.Equal(t, 2, deleted)
	assert.Zero(t, failed)
	assert.Equal(t, 1, c.Len(), "the other job's upload survives")

	deleted, _ = c.DeleteJobFiles(context.Background(), jobA)
	assert.Zero(t, deleted, "second drain finds nothing")
}

func TestDeleteOldFilesBestEffort(t *testing.T) {
	up := &fakeUploader{failNext: map[string]error{}}
	c := NewCache(up, nil)
	jobID := uuid.New()

	h1, err := c.UploadDocument(context.Background(), LogicalDocumentID(jobID, "a.pdf"), localDoc("a.pdf"))
	require.NoError(t, err)
	_, err = c.UploadDocument(context.Background(), LogicalDocumentID(jobID, "b.pdf"), localDoc("b.pdf"))
	require.NoError(t, err)

	up.mu.Lock()
	up.failNext[h1.RemoteName] = errors.New("remote gone")
	up.mu.Unlock()

	deleted, failed := c.DeleteAllFiles(context.Background())
	assert.Equal(t, 1, deleted)
	assert.Equal(t, 1, failed)
	assert.Zero(t, c.Len(), "sweep drains the cache even when deletions fail")
}
