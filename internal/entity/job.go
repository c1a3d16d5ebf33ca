package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ExtractionJob represents a job row for data transfer between layers.
type ExtractionJob struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Status       string          `json:"status"`
	StartedAt    *time.Time      `json:"started_at,omitempty"`
	FinishedAt   *time.Time      `json:"finished_at,omitempty"`
	ErrorMessage *string         `json:"error_message,omitempty"`
	Results      json.RawMessage `json:"results,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ExtractionResults is the terminal payload recorded on a job. Success and
// failure share the shape; Success=false carries Error and nothing else
// meaningful.
type ExtractionResults struct {
	Success            bool           `json:"success"`
	Error              string         `json:"error,omitempty"`
	ExtractionMode     string         `json:"extraction_mode"`
	TotalItems         int            `json:"total_items"`
	TotalDocuments     int            `json:"total_documents"`
	TotalCost          float64        `json:"total_cost"`
	ProcessedFileNames []string       `json:"processed_file_names"`
	CategoryBreakdown  map[string]int `json:"category_breakdown,omitempty"`
}
