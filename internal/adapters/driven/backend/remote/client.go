package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/custodia-labs/sercha-view/internal/core/domain"
	"github.com/custodia-labs/sercha-view/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-view/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.SearchBackend = (*Client)(nil)

// HeaderRequestID carries a unique id per request for backend log correlation.
const HeaderRequestID = "X-Request-ID"

// maxErrorBody bounds how much of an error response is kept for the message.
const maxErrorBody = 512

// Client is an HTTP search backend client.
type Client struct {
	endpoint string
	http     *http.Client
	limiter  *RateLimiter
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client. Its timeout is left untouched.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		if c != nil {
			client.http = c
		}
	}
}

// NewClient creates a client for the backend at cfg.URL.
func NewClient(cfg domain.BackendSettings, opts ...Option) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.URL, "/"))
	if err != nil || (base.Scheme != "http" && base.Scheme != "https") || base.Host == "" {
		return nil, fmt.Errorf("%w: backend url %q", domain.ErrInvalidInput, cfg.URL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = domain.DefaultBackendTimeout
	}

	c := &Client{
		endpoint: base.String() + "/search",
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		limiter: NewRateLimiter(cfg.RateLimit),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Endpoint returns the search URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

type searchRequest struct {
	Query     string   `json:"query"`
	Magazines []string `json:"magazines"`
	Page      int      `json:"page"`
}

type searchResult struct {
	Magazine   string `json:"magazine"`
	Issue      string `json:"issue,omitempty"`
	Date       string `json:"date,omitempty"`
	Page       int    `json:"page"`
	Content    string `json:"content"`
	CoverImage string `json:"cover_image,omitempty"`
}

type searchResponse struct {
	Results     *[]searchResult `json:"results"`
	TotalHits   int             `json:"total_hits"`
	CurrentPage int             `json:"current_page"`
	TotalPages  int             `json:"total_pages"`
}

// Search posts req to the backend and decodes the response.
func (c *Client) Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrBackendUnavailable, err)
	}

	body, err := json.Marshal(searchRequest{
		Query:     req.Query,
		Magazines: req.Filters,
		Page:      req.Page,
	})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrBackendUnavailable, err)
	}
	requestID := uuid.NewString()
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(HeaderRequestID, requestID)

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()
	logger.Debug("POST %s [%s] -> %d in %s", c.endpoint, requestID, resp.StatusCode, time.Since(start))

	c.limiter.Observe(resp)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("%w: status %d: %s",
			domain.ErrBackendUnavailable, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) ||
			(errors.As(err, &netErr) && netErr.Timeout()) {
			return nil, fmt.Errorf("%w: %w", domain.ErrBackendUnavailable, err)
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedResponse, err)
	}
	if decoded.Results == nil {
		return nil, fmt.Errorf("%w: missing results", domain.ErrMalformedResponse)
	}

	return decoded.toDomain(), nil
}

func (r searchResponse) toDomain() *domain.SearchResponse {
	out := &domain.SearchResponse{
		Results:     make([]domain.Result, 0, len(*r.Results)),
		TotalHits:   r.TotalHits,
		CurrentPage: r.CurrentPage,
		TotalPages:  r.TotalPages,
	}
	for _, res := range *r.Results {
		out.Results = append(out.Results, domain.Result{
			Source:     res.Magazine,
			Issue:      res.Issue,
			Date:       res.Date,
			Page:       res.Page,
			Content:    res.Content,
			CoverImage: res.CoverImage,
		})
	}
	return out
}
