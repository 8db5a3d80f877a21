package postcodes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"tech-for-trees/internal/observability"
	"tech-for-trees/internal/types"
)

// API Docs: https://postcodes.io/docs/postcode/lookup
// Sample request: https://api.postcodes.io/postcodes/ne236xx
const (
	baseURL        = "https://api.postcodes.io"
	defaultTimeout = 5 * time.Second
	serviceName    = "postcodes"
)

var (
	ErrNotFound           = errors.New("postcodes: not found")
	ErrMissingResult      = errors.New("postcodes: response has no result")
	ErrMissingCoordinates = errors.New("postcodes: result has no coordinates")
	ErrInvalidPostcode    = errors.New("postcodes: invalid postcode")
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	timeout    time.Duration
	userAgent  string
	logger     *slog.Logger
}

type Option func(*Client)

// WithBaseURL points the client at a different postcodes.io compatible host.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
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
		baseURL:    baseURL,
		timeout:    defaultTimeout,
		logger:     logger.With("component", "postcodes-client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup fetches a single postcode. The postcode is sent as one escaped path segment,
// otherwise unchanged, so callers normalize it first.
func (c *Client) Lookup(ctx context.Context, postcode string) (*LookupAPIResponse, error) {
	switch postcode {
	case "", ".", "..":
		return nil, fmt.Errorf("postcode %q: %w", postcode, ErrInvalidPostcode)
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}
	u = u.JoinPath("postcodes", url.PathEscape(postcode))

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.logger.Debug("looking up postcode", "postcode", postcode, "url", u.String())

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		observability.ObserveExternal(serviceName, 0, time.Since(start))
		c.logger.Error("failed to fetch postcode", "postcode", postcode, "error", err)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)
	observability.ObserveExternal(serviceName, resp.StatusCode, time.Since(start))

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("postcode %q: %w", postcode, ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("postcodes API returned error",
			"status_code", resp.StatusCode,
			"postcode", postcode,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp LookupAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode postcodes response", "postcode", postcode, "error", err)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if apiResp.Status != http.StatusOK {
		return nil, fmt.Errorf("response status %d: %s", apiResp.Status, apiResp.Error)
	}
	if apiResp.Result == nil {
		return nil, ErrMissingResult
	}
	if apiResp.Result.Latitude == nil || apiResp.Result.Longitude == nil {
		return nil, ErrMissingCoordinates
	}

	return &apiResp, nil
}

// Coordinates extracts the lat/lon pair from a successful lookup.
func (r *LookupAPIResponse) Coordinates() types.Coords {
	return types.NewCoords(*r.Result.Latitude, *r.Result.Longitude)
}
