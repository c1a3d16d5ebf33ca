// runextract runs one extraction synchronously against an existing job:
//
//	runextract <job-id-uuid> <doc-url> [doc-url...]
//
// Useful for reprocessing a job without going through the gRPC surface.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/platewise/menu-extractor/internal/common"
	"github.com/platewise/menu-extractor/internal/entity"
	"github.com/platewise/menu-extractor/internal/fetch"
	"github.com/platewise/menu-extractor/internal/filestore"
	"github.com/platewise/menu-extractor/internal/ingest"
	"github.com/platewise/menu-extractor/internal/llm/gemini"
	"github.com/platewise/menu-extractor/internal/pipeline"
	repo "github.com/platewise/menu-extractor/internal/repository"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) < 3 {
		logger.Error("usage", "cmd", "runextract <job-id-uuid> <doc-url> [doc-url...]")
		os.Exit(2)
	}
	jobID, err := uuid.Parse(os.Args[1])
	if err != nil {
		logger.Error("invalid job id (must be UUID)", "arg", os.Args[1], "error", err)
		os.Exit(2)
	}

	var docs []entity.Document
	for _, raw := range os.Args[2:] {
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			logger.Error("document URL must be http(s)", "url", raw)
			os.Exit(2)
		}
		name := u.Path[strings.LastIndex(u.Path, "/")+1:]
		if name == "" {
			name = u.Host
		}
		docs = append(docs, entity.Document{URL: raw, Name: name})
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        10,
		MinConns:        1,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		DialTimeout:     3 * time.Second,
	}, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	jobsRepo := repo.NewJobRepository(entc, logger)
	itemsRepo := repo.NewItemRepository(entc, logger)

	fetcher := fetch.NewFetcher(&http.Client{Timeout: cfg.Pipeline.FetchTimeout}, cfg.Pipeline.ScratchDir, logger)
	ingestor := ingest.NewExtractor(ingest.Config{Pdftotext: cfg.Pipeline.PdftotextPath}, logger)
	uploader := filestore.NewGeminiUploader(filestore.GeminiConfig{
		APIKey:  cfg.LLM.APIKey,
		Timeout: cfg.FileStore.UploadTimeout,
	}, logger)
	extractor := gemini.NewClient(gemini.Config{
		APIKey:          cfg.LLM.APIKey,
		Model:           cfg.LLM.Model,
		Temperature:     cfg.LLM.Temperature,
		MaxOutputTokens: cfg.LLM.MaxOutputTokens,
		BatchSize:       cfg.Pipeline.BatchSize,
		Timeout:         cfg.LLM.Timeout,
	}, logger)

	p := pipeline.New(pipeline.Config{
		BatchSize: cfg.Pipeline.BatchSize,
	}, jobsRepo, itemsRepo, fetcher, ingestor, filestore.NewCache(uploader, logger), extractor, nil, logger)

	start := time.Now()
	results, err := p.Run(ctx, jobID, docs)
	dur := time.Since(start)

	if err != nil {
		logger.Error("extraction failed",
			"job_id", jobID, "stage", common.StageOf(err), "error", err, "duration_ms", dur.Milliseconds())
		os.Exit(1)
	}

	logger.Info("extraction OK",
		"job_id", jobID,
		"items", results.TotalItems,
		"mode", results.ExtractionMode,
		"estimated_cost", results.TotalCost,
		"duration_ms", dur.Milliseconds(),
	)
}
