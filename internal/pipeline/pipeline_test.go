package pipeline

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/menu-extractor/constants"
	"github.com/platewise/menu-extractor/internal/common"
	"github.com/platewise/menu-extractor/internal/entity"
	"github.com/platewise/menu-extractor/internal/fetch"
	"github.com/platewise/menu-extractor/internal/filestore"
	"github.com/platewise/menu-extractor/internal/ingest"
	"github.com/platewise/menu-extractor/internal/llm"
	"github.com/platewise/menu-extractor/internal/normalize"
)

type fakeJobs struct {
	mu       sync.Mutex
	statuses []string
	results  entity.ExtractionResults
	failMsg  string

	// failSuccess makes FinishSuccess return an error; ctxSensitive makes
	// the terminal writes honor a dead context the way the real repository
	// does once the connection context is gone.
	failSuccess  bool
	ctxSensitive bool
}

func (f *fakeJobs) Create(context.Context, string) (*entity.ExtractionJob, error) {
	return nil, errors.New("not used")
}

func (f *fakeJobs) GetByID(context.Context, uuid.UUID) (*entity.ExtractionJob, error) {
	return nil, errors.New("not used")
}

func (f *fakeJobs) SetProcessing(context.Context, uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses = append(f.statuses, string(constants.JobStatusProcessing))
	return nil
}

func (f *fakeJobs) FinishSuccess(ctx context.Context, _ uuid.UUID, results entity.ExtractionResults) error {
	if f.ctxSensitive && ctx.Err() != nil {
		return ctx.Err()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSuccess {
		return errors.New("connection reset")
	}
	f.statuses = append(f.statuses, string(constants.JobStatusComplete))
	f.results = results
	return nil
}

func (f *fakeJobs) FinishFailure(ctx context.Context, _ uuid.UUID, message string, results entity.ExtractionResults) error {
	if f.ctxSensitive && ctx.Err() != nil {
		return ctx.Err()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses = append(f.statuses, string(constants.JobStatusFailed))
	f.failMsg = message
	f.results = results
	return nil
}

func (f *fakeJobs) lastStatus() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.statuses) == 0 {
		return ""
	}
	return f.statuses[len(f.statuses)-1]
}

type fakeItems struct {
	mu        sync.Mutex
	names     []string
	created   []normalize.NewItem
	sizeRows  int
	groupRows int
	failItems bool
}

func (f *fakeItems) ListItemNames(context.Context, uuid.UUID) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.names...), nil
}

func (f *fakeItems) ListMenu(context.Context, uuid.UUID) ([]*entity.MenuItem, map[uuid.UUID][]entity.ItemSize, map[uuid.UUID][]entity.ItemModifierGroup, error) {
	return nil, nil, nil, nil
}

func (f *fakeItems) CreateItems(_ context.Context, _ uuid.UUID, items []normalize.NewItem) ([]uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failItems {
		return nil, errors.New("connection reset")
	}
	ids := make([]uuid.UUID, len(items))
	for i, it := range items {
		ids[i] = uuid.New()
		f.names = append(f.names, it.Name)
	}
	f.created = append(f.created, items...)
	return ids, nil
}

func (f *fakeItems) CreateSizes(_ context.Context, _ []uuid.UUID, items []normalize.NewItem) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, it := range items {
		f.sizeRows += len(it.Sizes)
	}
	return f.sizeRows, nil
}

func (f *fakeItems) CreateModifierGroups(_ context.Context, _ []uuid.UUID, items []normalize.NewItem) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, it := range items {
		f.groupRows += len(it.Modifiers)
	}
	return f.groupRows, nil
}

type fakeUploader struct {
	mu      sync.Mutex
	uploads int
}

func (f *fakeUploader) Upload(_ context.Context, displayName, mimeType, _ string) (*filestore.RemoteFileHandle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads++
	return &filestore.RemoteFileHandle{
		URI:        "https://files.example/v1beta/files/" + displayName,
		RemoteName: "files/" + displayName,
		MIMEType:   mimeType,
		UploadedAt: time.Now(),
	}, nil
}

func (f *fakeUploader) Delete(context.Context, string) error { return nil }

type fakeExtractor struct {
	items []llm.ExtractedItem
	err   error
}

func (f *fakeExtractor) ExtractItems(context.Context, llm.ExtractRequest) ([]llm.ExtractedItem, []byte, error) {
	if f.err != nil {
		return nil, nil, f.err
	}
	return f.items, []byte("[]"), nil
}

// hangingExtractor blocks until the run context expires.
type hangingExtractor struct{}

func (hangingExtractor) ExtractItems(ctx context.Context, _ llm.ExtractRequest) ([]llm.ExtractedItem, []byte, error) {
	<-ctx.Done()
	return nil, nil, fmt.Errorf("%w: %v", common.ErrExtraction, ctx.Err())
}

type stageRecorder struct {
	mu     sync.Mutex
	stages []string
}

func (r *stageRecorder) Stage(_ uuid.UUID, stage string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stages = append(r.stages, stage)
}

const menuCSV = "name,price\nMargherita Pizza,12.50\nCaesar Salad,9.00\nTiramisu,7.25\n"

func menuServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(menuCSV))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testDocs(baseURL string) []entity.Document {
	return []entity.Document{
		{URL: baseURL + "/menus/dinner.csv", Name: "dinner.csv", MIMEType: "text/csv"},
		{URL: baseURL + "/menus/drinks.csv", Name: "drinks.csv", MIMEType: "text/csv"},
	}
}

func extractedFixture() []llm.ExtractedItem {
	return []llm.ExtractedItem{
		{
			Name:     "Margherita Pizza",
			Category: "Pizza",
			Sizes: []llm.SizeEntry{
				{Size: "Medium", Price: "12.50"},
				{Size: "Large", Price: "16.00"},
			},
			Modifiers: []llm.ModifierEntry{
				{GroupName: "Toppings", Options: []string{"Extra cheese (+$2)", "Mushrooms +$1.50"}},
			},
		},
		{
			Name:     "Caesar Salad",
			Category: "Salads",
			Sizes:    []llm.SizeEntry{{Size: "", Price: "9.00"}},
		},
		// duplicate of the first under whitespace and case noise
		{Name: "  margherita pizza ", Category: "Pizza"},
	}
}

func newTestPipeline(jobs *fakeJobs, items *fakeItems, uploader *fakeUploader, ex llm.MenuExtractor, rec ProgressReporter) (*Pipeline, *filestore.Cache) {
	cache := filestore.NewCache(uploader, nil)
	p := New(
		Config{BatchSize: 8},
		jobs, items,
		fetch.NewFetcher(nil, "", nil),
		ingest.NewExtractor(ingest.Config{}, nil),
		cache,
		ex,
		rec,
		nil,
	)
	return p, cache
}

func TestRunSuccess(t *testing.T) {
	srv := menuServer(t)
	jobs := &fakeJobs{}
	items := &fakeItems{}
	uploader := &fakeUploader{}
	rec := &stageRecorder{}
	p, cache := newTestPipeline(jobs, items, uploader, &fakeExtractor{items: extractedFixture()}, rec)

	results, err := p.Run(context.Background(), uuid.New(), testDocs(srv.URL))
	require.NoError(t, err)

	assert.True(t, results.Success)
	assert.Equal(t, 2, results.TotalItems)
	assert.Equal(t, 2, results.TotalDocuments)
	assert.Equal(t, ModeText, results.ExtractionMode)
	assert.Greater(t, results.TotalCost, 0.0)
	assert.ElementsMatch(t, []string{"dinner.csv", "drinks.csv"}, results.ProcessedFileNames)
	assert.Equal(t, map[string]int{"Pizza": 1, "Salads": 1}, results.CategoryBreakdown)

	assert.Equal(t, []string{"PROCESSING", "COMPLETE"}, jobs.statuses)
	assert.Equal(t, results.TotalItems, len(items.created))
	assert.Equal(t, 3, items.sizeRows) // Medium, Large, and the defaulted Regular
	assert.Equal(t, 1, items.groupRows)
	assert.Equal(t, 2, uploader.uploads)

	// the deferred sweep drains the remote scratch files
	assert.Equal(t, 0, cache.Len())

	assert.Equal(t, []string{"fetch", "classify", "upload", "extract", "normalize", "persist"}, rec.stages)
}

func TestRunSecondRunAddsNothing(t *testing.T) {
	srv := menuServer(t)
	jobs := &fakeJobs{}
	items := &fakeItems{}
	p, _ := newTestPipeline(jobs, items, &fakeUploader{}, &fakeExtractor{items: extractedFixture()}, nil)

	jobID := uuid.New()
	first, err := p.Run(context.Background(), jobID, testDocs(srv.URL))
	require.NoError(t, err)
	require.Equal(t, 2, first.TotalItems)

	second, err := p.Run(context.Background(), jobID, testDocs(srv.URL))
	require.NoError(t, err)

	assert.True(t, second.Success)
	assert.Equal(t, 0, second.TotalItems)
	assert.Equal(t, 2, len(items.created)) // unchanged from the first run
	assert.Equal(t, "COMPLETE", jobs.lastStatus())
}

func TestRunFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)

	jobs := &fakeJobs{}
	items := &fakeItems{}
	uploader := &fakeUploader{}
	p, _ := newTestPipeline(jobs, items, uploader, &fakeExtractor{items: extractedFixture()}, nil)

	results, err := p.Run(context.Background(), uuid.New(), testDocs(srv.URL))
	require.Error(t, err)

	assert.True(t, errors.Is(err, common.ErrFetch))
	assert.Equal(t, "fetch", common.StageOf(err))
	assert.False(t, results.Success)
	assert.Equal(t, "FAILED", jobs.lastStatus())
	assert.NotEmpty(t, jobs.failMsg)
	assert.Empty(t, items.created)
	assert.Equal(t, 0, uploader.uploads)
}

func TestRunExtractionFailure(t *testing.T) {
	srv := menuServer(t)
	jobs := &fakeJobs{}
	items := &fakeItems{}
	ex := &fakeExtractor{err: fmt.Errorf("%w: deadline exceeded", common.ErrExtraction)}
	p, cache := newTestPipeline(jobs, items, &fakeUploader{}, ex, nil)

	results, err := p.Run(context.Background(), uuid.New(), testDocs(srv.URL))
	require.Error(t, err)

	assert.Equal(t, "extraction", common.StageOf(err))
	assert.False(t, results.Success)
	assert.Equal(t, "FAILED", jobs.lastStatus())
	assert.Empty(t, items.created)
	// uploaded files are still swept on the failure path
	assert.Equal(t, 0, cache.Len())
}

func TestRunPersistenceFailureNamesSubStage(t *testing.T) {
	srv := menuServer(t)
	jobs := &fakeJobs{}
	items := &fakeItems{failItems: true}
	p, _ := newTestPipeline(jobs, items, &fakeUploader{}, &fakeExtractor{items: extractedFixture()}, nil)

	_, err := p.Run(context.Background(), uuid.New(), testDocs(srv.URL))
	require.Error(t, err)

	assert.Equal(t, "persistence", common.StageOf(err))
	assert.Contains(t, err.Error(), "items")
	assert.Equal(t, "FAILED", jobs.lastStatus())
}

func TestRunTimeoutStillMarksFailed(t *testing.T) {
	srv := menuServer(t)
	jobs := &fakeJobs{ctxSensitive: true}
	p, _ := newTestPipeline(jobs, &fakeItems{}, &fakeUploader{}, hangingExtractor{}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	_, err := p.Run(ctx, uuid.New(), testDocs(srv.URL))
	require.Error(t, err)
	assert.Equal(t, "extraction", common.StageOf(err))

	// the run context is dead but the terminal write must still land
	assert.Equal(t, "FAILED", jobs.lastStatus())
	assert.NotEmpty(t, jobs.failMsg)
}

func TestRunSuccessWriteFailureMarksFailed(t *testing.T) {
	srv := menuServer(t)
	jobs := &fakeJobs{failSuccess: true}
	p, _ := newTestPipeline(jobs, &fakeItems{}, &fakeUploader{}, &fakeExtractor{items: extractedFixture()}, nil)

	_, err := p.Run(context.Background(), uuid.New(), testDocs(srv.URL))
	require.Error(t, err)

	assert.Equal(t, "persistence", common.StageOf(err))
	assert.Equal(t, "FAILED", jobs.lastStatus())
	assert.Contains(t, jobs.failMsg, "record job success")
}

func TestRunNoDocuments(t *testing.T) {
	jobs := &fakeJobs{}
	p, _ := newTestPipeline(jobs, &fakeItems{}, &fakeUploader{}, &fakeExtractor{}, nil)

	_, err := p.Run(context.Background(), uuid.New(), nil)
	require.Error(t, err)
	assert.Equal(t, "FAILED", jobs.lastStatus())
}

func TestRunImageDocumentsPickImageMode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write([]byte{0xFF, 0xD8, 0xFF, 0xE0})
	}))
	t.Cleanup(srv.Close)

	jobs := &fakeJobs{}
	docs := []entity.Document{{URL: srv.URL + "/scan.jpg", Name: "scan.jpg", MIMEType: "image/jpeg"}}
	p, _ := newTestPipeline(jobs, &fakeItems{}, &fakeUploader{}, &fakeExtractor{items: extractedFixture()[:1]}, nil)

	results, err := p.Run(context.Background(), uuid.New(), docs)
	require.NoError(t, err)
	assert.Equal(t, ModeImage, results.ExtractionMode)
	assert.Equal(t, "COMPLETE", jobs.lastStatus())
}
