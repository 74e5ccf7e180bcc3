// Package client wraps the Ignacio backend's REST API. It imposes nothing
// beyond JSON bodies and the X-API-Key header; transport, rate limiting
// and error mapping are handled here so callers stay thin.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/config"
	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/httpx"
	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/logger"
	"github.com/salomonMuriel/ignacio-bot-sub001/pkg/metrics"
)

type Client struct {
	baseURL string
	apiKey  string
	doer    httpx.Doer
	limiter *rate.Limiter
}

// Options configures a Client. Doer overrides Transport/Timeout when set,
// which tests use to inject an httptest-backed transport.
type Options struct {
	BaseURL   string
	APIKey    string
	Timeout   time.Duration
	Transport string
	RPS       float64
	Burst     int
	Doer      httpx.Doer
}

// New builds a client from explicit options.
func New(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("backend base url required")
	}
	doer := opts.Doer
	if doer == nil {
		timeout := opts.Timeout
		if timeout == 0 {
			timeout = config.DefaultTimeout
		}
		var err error
		doer, err = httpx.New(opts.Transport, timeout)
		if err != nil {
			return nil, err
		}
	}
	var limiter *rate.Limiter
	if opts.RPS > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = 10
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RPS), burst)
	}
	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		apiKey:  opts.APIKey,
		doer:    doer,
		limiter: limiter,
	}, nil
}

// FromConfig builds a client from a loaded config.
func FromConfig(cfg *config.Config) (*Client, error) {
	return New(Options{
		BaseURL:   cfg.Backend.BaseURL,
		APIKey:    cfg.Backend.APIKey,
		Timeout:   cfg.Backend.Timeout.Duration(),
		Transport: cfg.Backend.Transport,
		RPS:       cfg.Limits.RPS,
		Burst:     cfg.Limits.Burst,
	})
}

// do performs one JSON round trip. route is a coarse label for metrics
// (path templates, not concrete ids). out may be nil for empty responses.
func (c *Client) do(ctx context.Context, method, route, path string, in, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	req := &httpx.Request{
		Method: method,
		URL:    c.baseURL + path,
		Header: make(http.Header),
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		req.Body = b
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.doer.Do(ctx, req)
	metrics.APILatency.WithLabelValues(route).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.APIRequests.WithLabelValues(method, route, "error").Inc()
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	metrics.APIRequests.WithLabelValues(method, route, strconv.Itoa(resp.Status)).Inc()

	if resp.Status >= 400 {
		err := apiError(resp)
		logger.Debug("api_request_failed", "method", method, "path", path, "status", resp.Status, "error", err)
		return err
	}
	if out != nil && len(resp.Body) > 0 {
		if err := json.Unmarshal(resp.Body, out); err != nil {
			return fmt.Errorf("decode response for %s %s: %w", method, path, err)
		}
	}
	return nil
}
