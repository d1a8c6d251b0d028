package prezly

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"coverage_migrator/internal/domain"
)

// Config holds Prezly client configuration.
type Config struct {
	BaseURI     string
	AccessToken string
	Timeout     time.Duration
}

// Client talks to the Prezly coverage API.
type Client struct {
	httpClient  *http.Client
	baseURI     string
	accessToken string
	logger      *slog.Logger
}

// New creates a new Prezly client.
func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURI:     cfg.BaseURI,
		accessToken: cfg.AccessToken,
		logger:      logger.With("destination", "prezly"),
	}
}

// GetCoverageByExternalReferenceID looks up the non-deleted coverage
// record carrying the given external reference id. Returns (nil, nil)
// when none exists.
func (c *Client) GetCoverageByExternalReferenceID(ctx context.Context, id string) (*domain.Coverage, error) {
	query := url.Values{}
	query.Set("external_reference_id", id)
	query.Set("limit", "1")

	var envelope listEnvelope
	if err := c.do(ctx, http.MethodGet, "/v2/coverage", query, nil, &envelope); err != nil {
		return nil, err
	}

	for i := range envelope.Coverage {
		if !envelope.Coverage[i].IsDeleted {
			return &envelope.Coverage[i], nil
		}
	}
	return nil, nil
}

// SearchCoverage lists coverage records matching the given filter
// expression, optionally including soft-deleted rows.
func (c *Client) SearchCoverage(ctx context.Context, filter map[string]any, includeDeleted bool, limit int) ([]domain.Coverage, error) {
	encoded, err := json.Marshal(filter)
	if err != nil {
		return nil, fmt.Errorf("encode filter: %w", err)
	}

	query := url.Values{}
	query.Set("query", string(encoded))
	query.Set("limit", strconv.Itoa(limit))
	if includeDeleted {
		query.Set("include_deleted", "on")
	}

	var envelope listEnvelope
	if err := c.do(ctx, http.MethodGet, "/v2/coverage", query, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Coverage, nil
}

// CreateCoverage creates one coverage record.
func (c *Client) CreateCoverage(ctx context.Context, req *domain.CoverageCreateRequest) (*domain.Coverage, error) {
	var envelope struct {
		Coverage domain.Coverage `json:"coverage"`
	}
	if err := c.do(ctx, http.MethodPost, "/v2/coverage", nil, req, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Coverage, nil
}

// DeleteCoverage soft-deletes one coverage record.
func (c *Client) DeleteCoverage(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/v2/coverage/%d", id), nil, nil, nil)
}

type listEnvelope struct {
	Coverage []domain.Coverage `json:"coverage"`
	Total    int               `json:"total"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	uri := c.baseURI + path
	if len(query) > 0 {
		uri += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, uri, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return newAPIError(resp.StatusCode, payload)
	}

	if out != nil {
		if err := json.Unmarshal(payload, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}
