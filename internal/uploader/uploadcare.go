// Package uploader stores remote binaries in Uploadcare via its from_url
// flow: start the fetch, then poll the status endpoint until the file is
// durable.
package uploader

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"coverage_migrator/internal/domain"
)

// Config holds Uploadcare client configuration.
type Config struct {
	BaseURI      string
	PublicKey    string
	Timeout      time.Duration
	PollInterval time.Duration
	MaxPolls     int
}

type UploadcareClient struct {
	httpClient   *http.Client
	baseURI      string
	publicKey    string
	pollInterval time.Duration
	maxPolls     int
	logger       *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *UploadcareClient {
	if cfg.PollInterval == 0 {
		cfg.PollInterval = time.Second
	}
	if cfg.MaxPolls == 0 {
		cfg.MaxPolls = 30
	}
	return &UploadcareClient{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURI:      cfg.BaseURI,
		publicKey:    cfg.PublicKey,
		pollInterval: cfg.PollInterval,
		maxPolls:     cfg.MaxPolls,
		logger:       logger.With("uploader", "uploadcare"),
	}
}

type statusResponse struct {
	Status   string `json:"status"`
	Error    string `json:"error"`
	UUID     string `json:"uuid"`
	Size     int64  `json:"size"`
	IsImage  bool   `json:"is_image"`
	MimeType string `json:"mime_type"`
	Filename string `json:"filename"`
}

// UploadFromURL asks Uploadcare to fetch sourceURL and store it, and
// waits for the fetch to finish. A source-side 404 or timeout surfaces
// as an error from the status poll.
func (c *UploadcareClient) UploadFromURL(ctx context.Context, sourceURL, filename string) (*domain.UploadedFile, error) {
	form := url.Values{}
	form.Set("pub_key", c.publicKey)
	form.Set("source_url", sourceURL)
	form.Set("store", "1")
	form.Set("filename", filename)

	var started struct {
		Type  string `json:"type"`
		Token string `json:"token"`
		statusResponse
	}
	if err := c.postForm(ctx, "/from_url/", form, &started); err != nil {
		return nil, fmt.Errorf("start upload: %w", err)
	}

	// Small files may come back already stored.
	if started.Type == "file_info" {
		return fileFromStatus(&started.statusResponse, filename), nil
	}

	for poll := 0; poll < c.maxPolls; poll++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.pollInterval):
		}

		status, err := c.pollStatus(ctx, started.Token)
		if err != nil {
			return nil, err
		}

		switch status.Status {
		case "success":
			return fileFromStatus(status, filename), nil
		case "error", "failed":
			return nil, fmt.Errorf("upload failed: %s", status.Error)
		}
	}

	return nil, fmt.Errorf("upload of %s did not finish after %d polls", sourceURL, c.maxPolls)
}

func (c *UploadcareClient) pollStatus(ctx context.Context, token string) (*statusResponse, error) {
	query := url.Values{}
	query.Set("token", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURI+"/from_url/status/?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create status request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("poll upload status: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read status response: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("status endpoint returned %d: %s", resp.StatusCode, body)
	}

	var status statusResponse
	if err := json.Unmarshal(body, &status); err != nil {
		return nil, fmt.Errorf("decode status response: %w", err)
	}
	return &status, nil
}

func (c *UploadcareClient) postForm(ctx context.Context, path string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURI+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.URL.RawQuery = form.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}

	return json.Unmarshal(body, out)
}

func fileFromStatus(status *statusResponse, filename string) *domain.UploadedFile {
	name := status.Filename
	if name == "" {
		name = filename
	}
	return &domain.UploadedFile{
		UUID:     status.UUID,
		Size:     status.Size,
		IsImage:  status.IsImage,
		MimeType: status.MimeType,
		Filename: name,
	}
}
