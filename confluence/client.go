// Package confluence provides a read-only client for the Confluence Cloud
// REST API and the typed tool operations exposed over MCP.
package confluence

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

	"github.com/readyjune/mcp-server-confluence/metrics"
)

// Client handles communication with the Confluence REST API.
// All state is read-only after construction, so a single Client is safe
// to share across invocations.
type Client struct {
	config     *Config
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures the Client
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a new Confluence API client
func NewClient(config *Config, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		config:     config,
		httpClient: newHTTPClient(config.Timeout),
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// newHTTPClient creates an HTTP client with tuned transport settings
func newHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		DisableCompression:  false,
		ForceAttemptHTTP2:   true,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

// APIError represents an error response from the Confluence API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("confluence API error %d: %s", e.StatusCode, e.Message)
}

// get performs a GET request against a REST path and decodes the JSON
// response into result. Non-2xx responses are returned as *APIError with the
// message taken from the Confluence error payload when present.
func (c *Client) get(ctx context.Context, action, path string, params url.Values, result interface{}) error {
	reqURL := c.config.BaseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(c.config.Email, c.config.APIToken)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.config.UserAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start).Seconds()
	if err != nil {
		metrics.RecordAPICall(action, duration, false, "transport")
		return fmt.Errorf("request failed: %w", err)
	}

	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close() // body already read
	if err != nil {
		metrics.RecordAPICall(action, duration, false, "read")
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		metrics.RecordAPICall(action, duration, false, strconv.Itoa(resp.StatusCode))
		c.logger.Warn("Confluence API returned non-OK status",
			"action", action,
			"status", resp.StatusCode,
		)
		msg := http.StatusText(resp.StatusCode)
		var apiErr struct {
			StatusCode int    `json:"statusCode"`
			Message    string `json:"message"`
		}
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			msg = apiErr.Message
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if err := json.Unmarshal(body, result); err != nil {
		metrics.RecordAPICall(action, duration, false, "decode")
		return fmt.Errorf("failed to parse response: %w", err)
	}

	metrics.RecordAPICall(action, duration, true, "")
	return nil
}

// webURL builds a browse URL from a _links.webui fragment
func (c *Client) webURL(webui string) string {
	if webui == "" {
		return ""
	}
	return c.config.BaseURL + webui
}

// pageSummary reshapes a content payload into the compact summary shared by
// search and listing results.
func (c *Client) pageSummary(p contentPayload) PageSummary {
	s := PageSummary{
		ID:    p.ID,
		Title: p.Title,
		Type:  p.Type,
		URL:   c.webURL(p.Links.WebUI),
	}
	if p.Space != nil {
		s.SpaceKey = p.Space.Key
		s.SpaceName = p.Space.Name
	}
	if lu := lastUpdated(p); lu != nil {
		s.LastModified = lu.When
	}
	return s
}

// lastUpdated prefers history.lastUpdated and falls back to version
func lastUpdated(p contentPayload) *versionPayload {
	if p.History != nil && p.History.LastUpdated != nil {
		return p.History.LastUpdated
	}
	return p.Version
}

// normalizeLimit ensures limit is within bounds
func normalizeLimit(limit, defaultVal, maxVal int) int {
	if limit <= 0 {
		return defaultVal
	}
	if limit > maxVal {
		return maxVal
	}
	return limit
}
