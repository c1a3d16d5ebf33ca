package filestore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"
)

const defaultFilesBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiConfig configures the Gemini Files API transport.
type GeminiConfig struct {
	APIKey  string
	BaseURL string // Optional override for testing
	Timeout time.Duration
}

// GeminiUploader implements Uploader against the Gemini Files API.
type GeminiUploader struct {
	cfg    GeminiConfig
	client *http.Client
	logger *slog.Logger
}

func NewGeminiUploader(cfg GeminiConfig, logger *slog.Logger) *GeminiUploader {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultFilesBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &GeminiUploader{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

type fileResponse struct {
	File struct {
		Name        string `json:"name"`
		DisplayName string `json:"displayName"`
		MimeType    string `json:"mimeType"`
		SizeBytes   string `json:"sizeBytes"`
		URI         string `json:"uri"`
		CreateTime  string `json:"createTime"`
	} `json:"file"`
}

// Upload pushes raw document bytes via the media upload endpoint and returns
// the remote handle.
func (g *GeminiUploader) Upload(ctx context.Context, displayName, mimeType, path string) (*RemoteFileHandle, error) {
	start := time.Now()

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	// /v1beta -> /upload/v1beta for raw media upload
	base := g.cfg.BaseURL
	if strings.Contains(base, "/v1beta") {
		base = strings.Replace(base, "/v1beta", "/upload/v1beta", 1)
	}
	url := fmt.Sprintf("%s/files?key=%s", base, g.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", mimeType)
	req.Header.Set("X-Goog-Upload-Protocol", "raw")
	req.Header.Set("X-Goog-File-Name", displayName)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute upload request: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			g.logger.Warn("filestore.upload_body_close_failed", "error", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("upload failed: %s - %s", resp.Status, string(body))
	}

	var fr fileResponse
	if err := json.NewDecoder(resp.Body).Decode(&fr); err != nil {
		return nil, fmt.Errorf("decode upload response: %w", err)
	}

	g.logger.Info("filestore.upload_ok",
		"display_name", displayName,
		"remote_name", fr.File.Name,
		"bytes", len(content),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	return &RemoteFileHandle{
		URI:        fr.File.URI,
		RemoteName: fr.File.Name,
		MIMEType:   mimeType,
		UploadedAt: time.Now(),
		SizeBytes:  int64(len(content)),
	}, nil
}

// Delete removes a remote file by resource name (format: files/xxx).
func (g *GeminiUploader) Delete(ctx context.Context, remoteName string) error {
	url := fmt.Sprintf("%s/%s?key=%s", g.cfg.BaseURL, remoteName, g.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("build delete request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("execute delete request: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			g.logger.Warn("filestore.delete_body_close_failed", "error", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("delete failed: %s - %s", resp.Status, string(body))
	}

	g.logger.Debug("filestore.delete_ok", "remote_name", remoteName)
	return nil
}
