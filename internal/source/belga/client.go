package belga

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/oauth2"

	"coverage_migrator/internal/domain"
	"coverage_migrator/internal/retry"
)

// Config holds Belga client configuration.
type Config struct {
	BaseURI     string
	Timeout     time.Duration
	PageSize    int
	MaxAttempts int
}

// Client fetches news objects from the Belga search API. It owns the
// cached access token; all access is single-threaded so no locking is
// needed around it.
type Client struct {
	httpClient    *http.Client
	authenticator Authenticator
	baseURI       string
	pageSize      int
	maxAttempts   int
	token         *oauth2.Token
	logger        *slog.Logger
}

// New creates a new Belga client.
func New(cfg Config, authenticator Authenticator, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		authenticator: authenticator,
		baseURI:       cfg.BaseURI,
		pageSize:      cfg.PageSize,
		maxAttempts:   cfg.MaxAttempts,
		logger:        logger.With("source", "belga"),
	}
}

// ForEachNewsObjectPage walks the board listing newest-first from the
// given offset, invoking cb once per page. The next page is not fetched
// until cb has returned, so the consumer paces the walk.
func (c *Client) ForEachNewsObjectPage(ctx context.Context, boardUUID string, offset int, cb func(ctx context.Context, page *domain.NewsObjectPage) error) error {
	query := url.Values{}
	query.Set("board", boardUUID)
	query.Set("order", "-publishDate")
	query.Set("offset", strconv.Itoa(offset))
	query.Set("count", strconv.Itoa(c.pageSize))

	next := c.baseURI + "/newsobjects?" + query.Encode()

	for next != "" {
		pageURI := next
		page, err := retry.DoValue(ctx, c.logger, c.maxAttempts, func(ctx context.Context) (*Page, error) {
			return c.fetchPage(ctx, pageURI)
		})
		if err != nil {
			return fmt.Errorf("fetch page %s: %w", pageURI, err)
		}

		c.logger.Debug("fetched page",
			"uri", pageURI,
			"objects", len(page.Data),
			"total", page.Meta.Total,
		)

		if err := cb(ctx, &domain.NewsObjectPage{
			Objects: page.Data,
			Next:    page.Links.Next,
			Self:    page.Links.Self,
			Total:   page.Meta.Total,
		}); err != nil {
			return err
		}

		next = page.Links.Next
	}

	return nil
}

// NewsObjectDetail fetches the full record for one news object. The raw
// response body is returned alongside the decoded record so callers can
// keep a byte-faithful snapshot.
func (c *Client) NewsObjectDetail(ctx context.Context, uuid string) (*domain.NewsObject, []byte, error) {
	body, err := c.Get(ctx, "/newsobjects/"+uuid)
	if err != nil {
		return nil, nil, err
	}

	var object domain.NewsObject
	if err := json.Unmarshal(body, &object); err != nil {
		return nil, nil, fmt.Errorf("decode news object %s: %w", uuid, err)
	}

	return &object, body, nil
}

// Get performs one authenticated GET against the API and returns the
// response body.
func (c *Client) Get(ctx context.Context, path string) ([]byte, error) {
	return c.fetch(ctx, c.baseURI+path)
}

func (c *Client) fetchPage(ctx context.Context, uri string) (*Page, error) {
	body, err := c.fetch(ctx, uri)
	if err != nil {
		return nil, err
	}

	var page Page
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("decode page: %w", err)
	}

	return &page, nil
}

func (c *Client) fetch(ctx context.Context, uri string) ([]byte, error) {
	if err := c.ensureToken(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token.AccessToken)
	req.Header.Set("X-Belga-Context", "SEARCH")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}

	return body, nil
}

// ensureToken makes sure a valid access token is cached before a request
// goes out. A failed refresh discards the cached token and re-acquires
// from scratch rather than failing the request; tokens routinely expire
// mid-way through paginating long result sets.
func (c *Client) ensureToken(ctx context.Context) error {
	if c.token == nil {
		token, err := c.authenticator.Grant(ctx)
		if err != nil {
			return fmt.Errorf("acquire access token: %w", err)
		}
		c.token = token
		return nil
	}

	if c.token.Expiry.IsZero() || c.token.Expiry.After(time.Now()) {
		return nil
	}

	refreshed, err := c.authenticator.Refresh(ctx, c.token)
	if err == nil {
		c.token = refreshed
		c.logger.Info("refreshed access token")
		return nil
	}

	c.logger.Warn("token refresh failed, re-acquiring", "error", err)
	c.token = nil

	token, err := c.authenticator.Grant(ctx)
	if err != nil {
		return fmt.Errorf("re-acquire access token: %w", err)
	}
	c.token = token

	return nil
}
