// Package backend provides the HTTP adapter for the SunEye analysis service.
//
// It implements driven.AnalysisGateway (POST /api/analyze, multipart) and
// driven.CalculationGateway (POST /api/calculate-electricity, JSON).
package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/suneye-cli/internal/core/domain"
	"github.com/custodia-labs/suneye-cli/internal/core/ports/driven"
	"github.com/custodia-labs/suneye-cli/internal/logger"
)

// Ensure Client implements the interfaces.
var (
	_ driven.AnalysisGateway    = (*Client)(nil)
	_ driven.CalculationGateway = (*Client)(nil)
)

// Endpoint paths.
const (
	AnalyzePath   = "/api/analyze"
	CalculatePath = "/api/calculate-electricity"
)

// Default configuration values.
const (
	DefaultBaseURL = domain.DefaultBaseURL
	DefaultTimeout = domain.DefaultTimeoutSeconds * time.Second

	// maxResponseBytes caps how much of a response body is read.
	maxResponseBytes = 32 << 20
)

// RequestIDHeader carries a per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// Config holds configuration for the analysis service client.
type Config struct {
	// BaseURL is the service base URL (default: http://localhost:8000).
	BaseURL string

	// Timeout is the request timeout (default: 120s).
	Timeout time.Duration

	// RequestsPerSecond throttles outgoing calls. Zero disables throttling.
	RequestsPerSecond float64

	// HTTPClient overrides the client used for requests. Optional.
	HTTPClient *http.Client
}

// ConfigFromSettings builds a Config from application settings.
func ConfigFromSettings(s domain.APISettings) Config {
	return Config{
		BaseURL:           s.BaseURL,
		Timeout:           s.Timeout(),
		RequestsPerSecond: s.RequestsPerSecond,
	}
}

// Client talks to the analysis service.
type Client struct {
	client  *http.Client
	baseURL string
	limiter *rate.Limiter
	newID   func() string
}

// NewClient creates a new analysis service client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}

	return &Client{
		client:  client,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		limiter: limiter,
		newID:   uuid.NewString,
	}
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// response is a fully read HTTP response.
type response struct {
	status int
	body   []byte
}

// do waits for the limiter, sends req and reads the body.
func (c *Client) do(ctx context.Context, req *http.Request) (*response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: rate limit: %w", domain.ErrTransport, err)
		}
	}

	id := c.newID()
	req.Header.Set(RequestIDHeader, id)
	req.Header.Set("Accept", "application/json")
	logger.Debug("%s %s (request %s)", req.Method, req.URL.Path, id)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: send request: %w", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %w", domain.ErrTransport, err)
	}
	logger.Debug("Response %d, %d bytes (request %s)", resp.StatusCode, len(body), id)

	return &response{status: resp.StatusCode, body: body}, nil
}

// serviceError extracts a message from an error body such as
// {"error": "..."} or {"detail": "..."}.
func serviceError(body []byte) string {
	var payload struct {
		Error  any `json:"error"`
		Detail any `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	for _, v := range []any{payload.Error, payload.Detail} {
		switch m := v.(type) {
		case string:
			if m != "" {
				return m
			}
		case nil:
		default:
			if b, err := json.Marshal(m); err == nil {
				return string(b)
			}
		}
	}
	return ""
}

func succeeded(status int) bool {
	return status >= 200 && status < 300
}
