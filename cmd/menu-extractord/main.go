package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/platewise/menu-extractor/gen/proto/menuextract/v1"
	"github.com/platewise/menu-extractor/internal/async"
	"github.com/platewise/menu-extractor/internal/common"
	"github.com/platewise/menu-extractor/internal/export"
	"github.com/platewise/menu-extractor/internal/fetch"
	"github.com/platewise/menu-extractor/internal/filestore"
	"github.com/platewise/menu-extractor/internal/ingest"
	"github.com/platewise/menu-extractor/internal/llm/gemini"
	"github.com/platewise/menu-extractor/internal/pipeline"
	repo "github.com/platewise/menu-extractor/internal/repository"
	svc "github.com/platewise/menu-extractor/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbConfig := repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}
	entc, pool, err := repo.Open(ctx, dbConfig, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	jobsRepo := repo.NewJobRepository(entc, logger)
	itemsRepo := repo.NewItemRepository(entc, logger)

	fetcher := fetch.NewFetcher(&http.Client{Timeout: cfg.Pipeline.FetchTimeout}, cfg.Pipeline.ScratchDir, logger)
	ingestor := ingest.NewExtractor(ingest.Config{Pdftotext: cfg.Pipeline.PdftotextPath}, logger)
	uploader := filestore.NewGeminiUploader(filestore.GeminiConfig{
		APIKey:  cfg.LLM.APIKey,
		Timeout: cfg.FileStore.UploadTimeout,
	}, logger)
	fileCache := filestore.NewCache(uploader, logger)
	extractor := gemini.NewClient(gemini.Config{
		APIKey:          cfg.LLM.APIKey,
		Model:           cfg.LLM.Model,
		Temperature:     cfg.LLM.Temperature,
		MaxOutputTokens: cfg.LLM.MaxOutputTokens,
		BatchSize:       cfg.Pipeline.BatchSize,
		Timeout:         cfg.LLM.Timeout,
	}, logger)

	pipe := pipeline.New(pipeline.Config{
		BatchSize: cfg.Pipeline.BatchSize,
	}, jobsRepo, itemsRepo, fetcher, ingestor, fileCache, extractor, nil, logger)

	// safety net behind the per-job drain: evict anything a crashed or
	// wedged run left behind once it crosses the age limit
	if cfg.FileStore.MaxFileAge > 0 {
		go func() {
			ticker := time.NewTicker(cfg.FileStore.MaxFileAge)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					sweepCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
					fileCache.DeleteOldFiles(sweepCtx, cfg.FileStore.MaxFileAge)
					cancel()
				}
			}
		}()
	}

	queue := async.NewPipelineQueue(pipe, logger,
		async.WithWorkers(4),
		async.WithQueueSize(256),
		async.WithRunTimeout(10*time.Minute),
	)

	extractionService := svc.NewExtractionService(jobsRepo, queue, logger)
	v1.RegisterExtractionServiceServer(grpcServer, extractionService)

	exportService := export.NewService(itemsRepo, logger)
	exportServer := svc.NewExportServer(exportService, logger)
	v1.RegisterExportServiceServer(grpcServer, exportServer)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("menu-extractor listening", "addr", cfg.Server.GRPCAddr, "model", cfg.LLM.Model)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	queue.Shutdown(shutdownCtx)
	fileCache.DeleteAllFiles(shutdownCtx)
	grpcServer.GracefulStop()
}
