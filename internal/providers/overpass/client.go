package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tech-for-trees/internal/observability"
)

// API Docs: https://wiki.openstreetmap.org/wiki/Overpass_API
// Sample request: POST https://overpass-api.de/api/interpreter with data=[out:json];node[amenity=school](around:8046,55.0,-1.5);out center;
const (
	interpreterURL = "https://overpass-api.de/api/interpreter"
	defaultTimeout = 25 * time.Second
	serviceName    = "overpass"
)

type Client struct {
	httpClient *http.Client
	url        string
	timeout    time.Duration
	userAgent  string
	logger     *slog.Logger
}

type Option func(*Client)

// WithURL points the client at a different interpreter endpoint.
func WithURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.url = u
		}
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func NewClient(logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		url:        interpreterURL,
		timeout:    defaultTimeout,
		logger:     logger.With("component", "overpass-client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Interpret posts an Overpass QL query and decodes the JSON result.
func (c *Client) Interpret(ctx context.Context, query string) (*InterpreterAPIResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	form := url.Values{}
	form.Set("data", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.logger.Debug("posting overpass query", "url", c.url, "query_bytes", len(query))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		observability.ObserveExternal(serviceName, 0, time.Since(start))
		c.logger.Error("failed to fetch overpass data", "error", err)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)
	observability.ObserveExternal(serviceName, resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("overpass API returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp InterpreterAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode overpass response", "error", err)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("successfully fetched overpass data", "element_count", len(apiResp.Elements))

	return &apiResp, nil
}
