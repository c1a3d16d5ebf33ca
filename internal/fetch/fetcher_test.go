package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/menu-extractor/internal/common"
	"github.com/platewise/menu-extractor/internal/entity"
)

func TestFetchAllWritesScratchFiles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("%PDF-1.4 fake menu bytes"))
	}))
	defer srv.Close()

	f := NewFetcher(srv.Client(), t.TempDir(), nil)
	jobID := uuid.New()
	docs := []entity.Document{
		{URL: srv.URL + "/a", Name: "menu.pdf", MIMEType: "application/pdf"},
		{URL: srv.URL + "/b", Name: "drinks.png", MIMEType: "image/png"},
	}

	locals, cleanup, err := f.FetchAll(context.Background(), jobID, docs)
	require.NoError(t, err)
	require.Len(t, locals, 2)

	for _, l := range locals {
		st, err := os.Stat(l.Path)
		require.NoError(t, err)
		assert.Equal(t, l.Size, st.Size())
		assert.Contains(t, l.Path, jobID.String())
	}
	assert.NotEqual(t, locals[0].Path, locals[1].Path)

	cleanup()
	_, err = os.Stat(locals[0].Path)
	assert.True(t, os.IsNotExist(err), "cleanup must remove scratch files")
}

func TestFetchAllAbortsWholeRunOnSingleFailure(t *testing.T) {
	var served int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		served++
		_, _ = w.Write([]byte("bytes"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	f := NewFetcher(srv.Client(), dir, nil)
	docs := []entity.Document{
		{URL: srv.URL + "/ok", Name: "menu.pdf", MIMEType: "application/pdf"},
		{URL: srv.URL + "/missing", Name: "gone.pdf", MIMEType: "application/pdf"},
	}

	locals, _, err := f.FetchAll(context.Background(), uuid.New(), docs)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrFetch)
	assert.Nil(t, locals)

	// the partially fetched file must not survive the failed run
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFetchAllUnreachableHost(t *testing.T) {
	f := NewFetcher(nil, t.TempDir(), nil)
	docs := []entity.Document{{URL: "http://127.0.0.1:1/menu.pdf", Name: "menu.pdf", MIMEType: "application/pdf"}}

	_, _, err := f.FetchAll(context.Background(), uuid.New(), docs)
	assert.ErrorIs(t, err, common.ErrFetch)
}
