// Package lookup implements the connection lookup port over the route service's HTTP API.
package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/airfare-routefinder/route-finder/internal/domain"
	"github.com/airfare-routefinder/route-finder/internal/infrastructure/logger"
)

// DefaultSearchPath is the search endpoint of the route service.
const DefaultSearchPath = "/user-search/search"

// Query parameter names expected by the route service.
// The rank preference really is sent as "fliterBy".
const (
	paramFromCity = "fromCity"
	paramToCity   = "toCity"
	paramRankBy   = "fliterBy"
)

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 4 << 20

// Config contains the settings of a Client.
type Config struct {
	// BaseURL is the scheme and host of the route service (e.g., "http://localhost:4000")
	BaseURL string

	// SearchPath is appended to BaseURL; DefaultSearchPath when empty
	SearchPath string

	// HTTPClient overrides the default client
	HTTPClient *http.Client
}

// Client calls the route service with a single GET per lookup.
// It never retries; deadlines come from the caller's context.
type Client struct {
	endpoint   string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient creates a lookup client.
func NewClient(cfg Config, log *logger.Logger) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil || base.Host == "" {
		return nil, fmt.Errorf("invalid lookup base url %q", cfg.BaseURL)
	}

	path := cfg.SearchPath
	if path == "" {
		path = DefaultSearchPath
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Transport: http.DefaultTransport}
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Client{
		endpoint:   strings.TrimRight(base.String(), "/") + "/" + strings.TrimLeft(path, "/"),
		httpClient: httpClient,
		log:        log.WithComponent(logger.ComponentLookup),
	}, nil
}

// Find implements domain.ConnectionLookupService.
// Every failure is a *domain.TransportError matching domain.ErrServiceUnavailable.
func (c *Client) Find(ctx context.Context, query domain.SearchQuery) (*domain.LookupResult, error) {
	u := c.searchURL(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, domain.NewTransportError("create request", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("url", u).Msg("lookup request failed")
		return nil, domain.NewTransportError("send request", err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("url", u).
		Int("status", resp.StatusCode).
		Dur("duration_ms", time.Since(start)).
		Msg("lookup response received")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused; the body is never interpreted
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return nil, domain.NewStatusError(resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, domain.NewTransportError("read response", err)
	}

	// the whole body must be one JSON document; trailing data is malformed
	var payload SearchResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, domain.NewTransportError("decode response", fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err))
	}

	return normalize(payload)
}

// searchURL builds the GET URL for query.
func (c *Client) searchURL(query domain.SearchQuery) string {
	values := url.Values{}
	values.Set(paramFromCity, query.FromCity)
	values.Set(paramToCity, query.ToCity)
	values.Set(paramRankBy, query.RankBy.String())
	return c.endpoint + "?" + values.Encode()
}

// Ensure Client implements domain.ConnectionLookupService at compile time.
var _ domain.ConnectionLookupService = (*Client)(nil)
