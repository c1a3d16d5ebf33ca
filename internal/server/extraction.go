package server

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/platewise/menu-extractor/gen/ent"
	v1 "github.com/platewise/menu-extractor/gen/proto/menuextract/v1"
	"github.com/platewise/menu-extractor/internal/async"
	"github.com/platewise/menu-extractor/internal/entity"
	"github.com/platewise/menu-extractor/internal/repository"
)

type ExtractionService struct {
	v1.UnimplementedExtractionServiceServer
	jobs   repository.JobRepository
	queue  async.Queue
	logger *slog.Logger
}

func NewExtractionService(jobs repository.JobRepository, queue async.Queue, logger *slog.Logger) *ExtractionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractionService{jobs: jobs, queue: queue, logger: logger}
}

// StartExtraction implements v1.ExtractionServiceServer
func (s *ExtractionService) StartExtraction(ctx context.Context, req *v1.StartExtractionRequest) (*v1.StartExtractionResponse, error) {
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		s.logger.Error("start extraction request missing name")
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}
	if len(req.GetDocuments()) == 0 {
		s.logger.Error("start extraction request has no documents", "name", name)
		return nil, status.Error(codes.InvalidArgument, "at least one document is required")
	}

	docs := make([]entity.Document, 0, len(req.GetDocuments()))
	for i, d := range req.GetDocuments() {
		rawURL := strings.TrimSpace(d.GetUrl())
		u, err := url.Parse(rawURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return nil, status.Errorf(codes.InvalidArgument, "documents[%d].url must be an http(s) URL", i)
		}
		docName := strings.TrimSpace(d.GetName())
		if docName == "" {
			docName = u.Path[strings.LastIndex(u.Path, "/")+1:]
		}
		if docName == "" {
			return nil, status.Errorf(codes.InvalidArgument, "documents[%d].name is required when the URL has no file name", i)
		}
		docs = append(docs, entity.Document{
			URL:      rawURL,
			Name:     docName,
			MIMEType: strings.TrimSpace(d.GetMimeType()),
		})
	}

	job, err := s.jobs.Create(ctx, name)
	if err != nil {
		s.logger.Error("job create failed", "name", name, "error", err)
		return nil, status.Error(codes.Internal, "create job failed")
	}

	if err := s.queue.Enqueue(ctx, async.Job{
		JobID:       job.ID,
		Documents:   docs,
		SubmittedAt: time.Now(),
	}); err != nil {
		s.logger.Error("enqueue failed", "job_id", job.ID, "error", err)
		if errors.Is(err, async.ErrQueueClosed) {
			return nil, status.Error(codes.Unavailable, "server is shutting down")
		}
		return nil, status.Error(codes.Internal, "queue job failed")
	}

	s.logger.Info("extraction queued", "job_id", job.ID, "documents", len(docs))
	return &v1.StartExtractionResponse{
		JobId:  job.ID.String(),
		Status: job.Status,
	}, nil
}

// GetJob implements v1.ExtractionServiceServer
func (s *ExtractionService) GetJob(ctx context.Context, req *v1.GetJobRequest) (*v1.GetJobResponse, error) {
	jobID, err := uuid.Parse(strings.TrimSpace(req.GetJobId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "job_id must be a UUID")
	}

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "job not found")
		}
		s.logger.Error("get job failed", "job_id", jobID, "error", err)
		return nil, status.Error(codes.Internal, "get job failed")
	}

	return &v1.GetJobResponse{Job: toProtoJob(job)}, nil
}

func toProtoJob(j *entity.ExtractionJob) *v1.Job {
	out := &v1.Job{
		Id:        j.ID.String(),
		Name:      j.Name,
		Status:    j.Status,
		CreatedAt: j.CreatedAt.Format(time.RFC3339),
		UpdatedAt: j.UpdatedAt.Format(time.RFC3339),
	}
	if j.StartedAt != nil {
		out.StartedAt = j.StartedAt.Format(time.RFC3339)
	}
	if j.FinishedAt != nil {
		out.FinishedAt = j.FinishedAt.Format(time.RFC3339)
	}
	if j.ErrorMessage != nil {
		out.ErrorMessage = *j.ErrorMessage
	}
	if len(j.Results) > 0 {
		out.ResultsJson = string(j.Results)
	}
	return out
}
