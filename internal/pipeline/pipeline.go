package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/platewise/menu-extractor/constants"
	"github.com/platewise/menu-extractor/internal/classify"
	"github.com/platewise/menu-extractor/internal/common"
	"github.com/platewise/menu-extractor/internal/cost"
	"github.com/platewise/menu-extractor/internal/entity"
	"github.com/platewise/menu-extractor/internal/fetch"
	"github.com/platewise/menu-extractor/internal/filestore"
	"github.com/platewise/menu-extractor/internal/ingest"
	"github.com/platewise/menu-extractor/internal/llm"
	"github.com/platewise/menu-extractor/internal/normalize"
	"github.com/platewise/menu-extractor/internal/repository"
)

// Extraction modes recorded on the job results payload.
const (
	ModeText  = "text"
	ModeImage = "image"
	ModeMixed = "mixed"
)

// ProgressReporter receives a checkpoint at the entry of each stage. The
// zero-value NopProgress is used when the caller does not care.
type ProgressReporter interface {
	Stage(jobID uuid.UUID, stage string)
}

type NopProgress struct{}

func (NopProgress) Stage(uuid.UUID, string) {}

type Config struct {
	BatchSize    int
	Tier         cost.Tier
	DeepAnalysis bool
}

// Pipeline drives one extraction run end to end: fetch, classify, upload,
// extract, normalize, persist, and finalize the job row either way.
type Pipeline struct {
	cfg       Config
	jobs      repository.JobRepository
	items     repository.ItemRepository
	fetcher   *fetch.Fetcher
	ingestor  *ingest.Extractor
	files     *filestore.Cache
	extractor llm.MenuExtractor
	progress  ProgressReporter
	logger    *slog.Logger
}

func New(cfg Config, jobs repository.JobRepository, items repository.ItemRepository,
	fetcher *fetch.Fetcher, ingestor *ingest.Extractor, files *filestore.Cache,
	extractor llm.MenuExtractor, progress ProgressReporter, logger *slog.Logger) *Pipeline {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 8
	}
	if cfg.Tier == "" {
		cfg.Tier = cost.TierFlash
	}
	if progress == nil {
		progress = NopProgress{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		cfg:       cfg,
		jobs:      jobs,
		items:     items,
		fetcher:   fetcher,
		ingestor:  ingestor,
		files:     files,
		extractor: extractor,
		progress:  progress,
		logger:    logger,
	}
}

// Run executes the extraction for one job. The job row always reaches a
// terminal status: COMPLETE with a results payload, or FAILED with the stage
// error recorded. The returned results mirror what was persisted.
func (p *Pipeline) Run(ctx context.Context, jobID uuid.UUID, docs []entity.Document) (*entity.ExtractionResults, error) {
	start := time.Now()
	log := p.logger.With("job_id", jobID)
	log.Info("pipeline.run.start", "documents", len(docs))

	if err := p.jobs.SetProcessing(ctx, jobID); err != nil {
		return nil, fmt.Errorf("%w: mark job processing: %v", common.ErrPersistence, err)
	}
	if len(docs) == 0 {
		err := fmt.Errorf("%w: no documents to process", common.ErrFetch)
		return p.fail(ctx, jobID, entity.ExtractionResults{}, err)
	}

	results := entity.ExtractionResults{TotalDocuments: len(docs)}

	// Uploaded remote files are job-scoped scratch state. Drain this job's
	// entries on every exit path with a fresh context so cancellation cannot
	// strand them.
	defer func() {
		sweepCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
		defer cancel()
		deleted, failed := p.files.DeleteJobFiles(sweepCtx, jobID)
		if deleted > 0 || failed > 0 {
			log.Info("pipeline.filestore_drain", "deleted", deleted, "failed", failed)
		}
	}()

	p.progress.Stage(jobID, "fetch")
	locals, cleanup, err := p.fetcher.FetchAll(ctx, jobID, docs)
	if err != nil {
		return p.fail(ctx, jobID, results, err)
	}
	defer cleanup()
	for _, l := range locals {
		results.ProcessedFileNames = append(results.ProcessedFileNames, l.Document.Name)
	}

	p.progress.Stage(jobID, "classify")
	counts := p.classifyAll(ctx, locals, &results)

	p.progress.Stage(jobID, "upload")
	handles, err := p.files.UploadAllDocuments(ctx, jobID, locals)
	if err != nil {
		return p.fail(ctx, jobID, results, err)
	}

	p.progress.Stage(jobID, "extract")
	extracted, _, err := p.extractor.ExtractItems(ctx, llm.ExtractRequest{
		Files:             handles,
		AllowedCategories: constants.AllCategories(),
		AllowedSizes:      constants.AllowedSizes,
	})
	if err != nil {
		return p.fail(ctx, jobID, results, err)
	}
	log.Info("pipeline.extract.done", "items", len(extracted))

	p.progress.Stage(jobID, "normalize")
	existing, err := p.items.ListItemNames(ctx, jobID)
	if err != nil {
		return p.fail(ctx, jobID, results, fmt.Errorf("%w: list existing items: %v", common.ErrPersistence, err))
	}
	plan := normalize.Plan(extracted, existing, log)
	if plan.Duplicates > 0 {
		log.Info("pipeline.normalize.duplicates_skipped", "count", plan.Duplicates)
	}

	p.progress.Stage(jobID, "persist")
	if err := p.persist(ctx, jobID, plan); err != nil {
		return p.fail(ctx, jobID, results, err)
	}

	counts.Items = len(plan.Items)
	counts.ModelCalls = (len(handles) + p.cfg.BatchSize - 1) / p.cfg.BatchSize
	counts.Tier = p.cfg.Tier
	counts.DeepModifierAnalysis = p.cfg.DeepAnalysis
	breakdown := cost.Estimate(counts)

	results.Success = true
	results.TotalItems = len(plan.Items)
	results.TotalCost = breakdown.Total
	results.CategoryBreakdown = categoryBreakdown(plan.Items)

	if err := p.jobs.FinishSuccess(ctx, jobID, results); err != nil {
		// A job must not stay in PROCESSING; fall back to the failure write.
		return p.fail(ctx, jobID, results, fmt.Errorf("%w: record job success: %v", common.ErrPersistence, err))
	}
	log.Info("pipeline.run.done",
		"items", results.TotalItems,
		"mode", results.ExtractionMode,
		"estimated_cost", breakdown.Total,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return &results, nil
}

// classifyAll runs best-effort local text extraction over the fetched
// documents to pick the extraction mode and gather page and image counts for
// the cost estimate. Ingest failures are advisory: the document still goes to
// the model as an image.
func (p *Pipeline) classifyAll(ctx context.Context, locals []fetch.LocalDocument, results *entity.ExtractionResults) cost.Counts {
	counts := cost.Counts{Documents: len(locals)}
	textDocs := 0
	for _, l := range locals {
		tr, err := p.ingestor.ExtractText(ctx, l.Path, l.Document.MIMEType)
		if err != nil {
			p.logger.Warn("pipeline.classify.text_extract_failed",
				"name", l.Document.Name, "error", err)
		}
		res := classify.Classify(tr.Text)
		if res.HasText {
			textDocs++
			counts.Pages += max(tr.Pages, 1)
		} else {
			counts.Images++
		}
		p.logger.Debug("pipeline.classify.document",
			"name", l.Document.Name,
			"has_text", res.HasText,
			"confidence", res.Confidence,
			"words", res.WordCount,
		)
	}
	switch {
	case textDocs == len(locals):
		results.ExtractionMode = ModeText
	case textDocs == 0:
		results.ExtractionMode = ModeImage
	default:
		results.ExtractionMode = ModeMixed
	}
	return counts
}

// persist writes items, then sizes, then modifier groups. The writes are not
// transactional; a failure names the sub-stage so operators can tell a
// partial menu from a missing one.
func (p *Pipeline) persist(ctx context.Context, jobID uuid.UUID, plan normalize.InsertPlan) error {
	ids, err := p.items.CreateItems(ctx, jobID, plan.Items)
	if err != nil {
		return fmt.Errorf("%w: items: %v", common.ErrPersistence, err)
	}
	if _, err := p.items.CreateSizes(ctx, ids, plan.Items); err != nil {
		return fmt.Errorf("%w: sizes: %v", common.ErrPersistence, err)
	}
	if _, err := p.items.CreateModifierGroups(ctx, ids, plan.Items); err != nil {
		return fmt.Errorf("%w: modifier_groups: %v", common.ErrPersistence, err)
	}
	return nil
}

// fail records the terminal failure on the job row. The original stage error
// is returned so callers can still inspect it with errors.Is.
func (p *Pipeline) fail(ctx context.Context, jobID uuid.UUID, results entity.ExtractionResults, stageErr error) (*entity.ExtractionResults, error) {
	stage := common.StageOf(stageErr)
	p.logger.Error("pipeline.run.failed", "job_id", jobID, "stage", stage, "error", stageErr)

	results.Success = false
	results.Error = stageErr.Error()

	// The run context is often the reason we are here (timeout, cancellation);
	// the terminal write must survive it or the job stays in PROCESSING.
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := p.jobs.FinishFailure(writeCtx, jobID, stageErr.Error(), results); err != nil {
		p.logger.Error("pipeline.record_failure_failed", "job_id", jobID, "error", err)
	}
	return &results, stageErr
}

func categoryBreakdown(items []normalize.NewItem) map[string]int {
	if len(items) == 0 {
		return nil
	}
	out := make(map[string]int)
	for _, it := range items {
		out[string(it.Subcategory)]++
	}
	return out
}
