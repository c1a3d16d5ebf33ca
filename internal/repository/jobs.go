package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/platewise/menu-extractor/constants"
	"github.com/platewise/menu-extractor/gen/ent"
	"github.com/platewise/menu-extractor/internal/entity"
)

type JobRepository interface {
	Create(ctx context.Context, name string) (*entity.ExtractionJob, error)
	GetByID(ctx context.Context, jobID uuid.UUID) (*entity.ExtractionJob, error)
	SetProcessing(ctx context.Context, jobID uuid.UUID) error
	FinishSuccess(ctx context.Context, jobID uuid.UUID, results entity.ExtractionResults) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string, results entity.ExtractionResults) error
}

type jobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewJobRepository(entc *ent.Client, log *slog.Logger) JobRepository {
	return &jobRepo{ent: entc, log: log}
}

func (r *jobRepo) Create(ctx context.Context, name string) (*entity.ExtractionJob, error) {
	job, err := r.ent.Job.
		Create().
		SetName(name).
		SetStatus(string(constants.JobStatusDraft)).
		Save(ctx)
	if err != nil {
		r.log.Error("job create failed", "name", name, "err", err)
		return nil, err
	}
	r.log.Info("job created", "job_id", job.ID, "name", name)
	return toJob(job), nil
}

func (r *jobRepo) GetByID(ctx context.Context, jobID uuid.UUID) (*entity.ExtractionJob, error) {
	job, err := r.ent.Job.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return toJob(job), nil
}

func (r *jobRepo) SetProcessing(ctx context.Context, jobID uuid.UUID) error {
	_, err := r.ent.Job.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusProcessing)).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("job start failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("job started", "job_id", jobID)
	return nil
}

func (r *jobRepo) FinishSuccess(ctx context.Context, jobID uuid.UUID, results entity.ExtractionResults) error {
	payload, err := json.Marshal(results)
	if err != nil {
		return err
	}
	_, err = r.ent.Job.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusComplete)).
		SetFinishedAt(time.Now()).
		SetResults(payload).
		ClearErrorMessage().
		Save(ctx)
	if err != nil {
		r.log.Error("job finish(COMPLETE) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("job finished (COMPLETE)", "job_id", jobID,
		"total_items", results.TotalItems, "total_documents", results.TotalDocuments)
	return nil
}

func (r *jobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string, results entity.ExtractionResults) error {
	results.Success = false
	results.Error = message
	payload, err := json.Marshal(results)
	if err != nil {
		return err
	}
	_, err = r.ent.Job.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusFailed)).
		SetFinishedAt(time.Now()).
		SetErrorMessage(message).
		SetResults(payload).
		Save(ctx)
	if err != nil {
		r.log.Error("job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}

func toJob(j *ent.Job) *entity.ExtractionJob {
	out := &entity.ExtractionJob{
		ID:           j.ID,
		Name:         j.Name,
		Status:       j.Status,
		StartedAt:    j.StartedAt,
		FinishedAt:   j.FinishedAt,
		ErrorMessage: j.ErrorMessage,
		Results:      j.Results,
		CreatedAt:    j.CreatedAt,
		UpdatedAt:    j.UpdatedAt,
	}
	return out
}
