// Package transport implements the HTTP round trip against the search
// engine. It carries no retry, pooling or caching behavior: one Perform call
// is one request, fully sent before the response is read, and any failure
// surfaces immediately.
package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/esdex/internal/metrics"
)

const defaultTimeout = 30 * time.Second

// StatusError is returned when the engine answers with a non-2xx status.
// The response body is kept verbatim for the caller.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("esdex: %s %s: unexpected status %d", e.Method, e.Path, e.StatusCode)
}

// Config holds HTTP transport settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Logger  *zap.Logger
}

// HTTP performs JSON requests against a single engine endpoint.
type HTTP struct {
	base   string
	client *http.Client
	logger *zap.Logger
}

// NewHTTP creates an HTTP transport for the given base URL.
func NewHTTP(cfg Config) (*HTTP, error) {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("esdex: parse base URL %q: %w", cfg.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("esdex: base URL %q must use http or https", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &HTTP{
		base:   strings.TrimRight(u.String(), "/"),
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}, nil
}

// Perform sends one request and returns the raw response body.
// Non-2xx responses are returned as *StatusError.
func (t *HTTP) Perform(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, t.base+path, reader)
	if err != nil {
		return nil, fmt.Errorf("esdex: build request %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	operation := metrics.OperationFromPath(path)
	start := time.Now()

	resp, err := t.client.Do(req)
	if err != nil {
		metrics.ObserveRequest(method, operation, "error", time.Since(start).Seconds())
		t.logger.Warn("engine request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, fmt.Errorf("esdex: %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.ObserveRequest(method, operation, "error", time.Since(start).Seconds())
		return nil, fmt.Errorf("esdex: read response of %s %s: %w", method, path, err)
	}

	metrics.ObserveRequest(method, operation, strconv.Itoa(resp.StatusCode), time.Since(start).Seconds())
	t.logger.Debug("engine request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       data,
		}
	}
	return data, nil
}
