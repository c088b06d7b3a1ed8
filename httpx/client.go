// Package httpx is the typed HTTP client shared by every API service. It
// attaches the bearer token from a TokenStore, normalizes every failure into
// an *APIError, and tears the token down on any 401. It performs no
// navigation itself: session-level reactions to a 401 go through the
// OnUnauthorized callback.
package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Fixed user-facing messages for the two failure modes the client owns.
const (
	networkErrorMessage = "Network error. Please check your connection."
	unauthorizedMessage = "Unauthorized. Please login again."
)

// Client issues JSON requests against a single base URL.
type Client struct {
	baseURL        string
	hc             *http.Client
	tokens         TokenStore
	onUnauthorized func()
	limiter        *rate.Limiter
	userAgent      string
	log            zerolog.Logger
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client (timeouts, transport).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// WithTokenStore selects where the bearer token lives. Defaults to an
// in-memory store.
func WithTokenStore(s TokenStore) Option {
	return func(c *Client) { c.tokens = s }
}

// WithLogger attaches a structured logger. Defaults to a no-op logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithOnUnauthorized registers a callback invoked after a 401 has cleared the
// stored token, before the error is returned. The session layer uses it to
// flip its state and trigger navigation.
func WithOnUnauthorized(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// WithRateLimit throttles outgoing requests. Nil (the default) disables
// throttling entirely.
func WithRateLimit(l *rate.Limiter) Option {
	return func(c *Client) { c.limiter = l }
}

// WithUserAgent sets the User-Agent header on every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// New creates a client for the given base URL, typically ending in /api.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{},
		tokens:  NewMemoryStore(),
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Tokens exposes the token store so the session layer can manage the token
// lifecycle through the same store the client reads from.
func (c *Client) Tokens() TokenStore { return c.tokens }

// SetOnUnauthorized replaces the 401 callback after construction. The session
// layer calls this to register itself as the observer.
func (c *Client) SetOnUnauthorized(fn func()) { c.onUnauthorized = fn }

// BaseURL returns the configured base URL without a trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

// requestConfig holds per-call settings.
type requestConfig struct {
	skipAuth bool
	header   http.Header
}

// RequestOption configures a single request.
type RequestOption func(*requestConfig)

// SkipAuth suppresses the Authorization header for this request. Used by
// login and registration, which run before a token exists.
func SkipAuth() RequestOption {
	return func(rc *requestConfig) { rc.skipAuth = true }
}

// WithHeader adds a header to this request only.
func WithHeader(key, value string) RequestOption {
	return func(rc *requestConfig) {
		if rc.header == nil {
			rc.header = http.Header{}
		}
		rc.header.Set(key, value)
	}
}

// Get issues a GET and decodes the response into out (which may be nil).
func (c *Client) Get(ctx context.Context, endpoint string, out any, opts ...RequestOption) error {
	return c.do(ctx, http.MethodGet, endpoint, nil, out, opts...)
}

// Post issues a POST with an optional JSON body.
func (c *Client) Post(ctx context.Context, endpoint string, body, out any, opts ...RequestOption) error {
	return c.do(ctx, http.MethodPost, endpoint, body, out, opts...)
}

// Put issues a PUT with an optional JSON body.
func (c *Client) Put(ctx context.Context, endpoint string, body, out any, opts ...RequestOption) error {
	return c.do(ctx, http.MethodPut, endpoint, body, out, opts...)
}

// Patch issues a PATCH with an optional JSON body.
func (c *Client) Patch(ctx context.Context, endpoint string, body, out any, opts ...RequestOption) error {
	return c.do(ctx, http.MethodPatch, endpoint, body, out, opts...)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, endpoint string, out any, opts ...RequestOption) error {
	return c.do(ctx, http.MethodDelete, endpoint, nil, out, opts...)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body, out any, opts ...RequestOption) error {
	var cfg requestConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return &APIError{Message: networkErrorMessage, Status: 0, cause: err}
		}
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &APIError{Message: "Invalid request payload", Status: 0, cause: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return &APIError{Message: networkErrorMessage, Status: 0, cause: err}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if !cfg.skipAuth {
		if token, ok := c.tokens.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	for key, values := range cfg.header {
		for _, v := range values {
			req.Header.Set(key, v)
		}
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("endpoint", endpoint).Msg("request failed")
		return &APIError{Message: networkErrorMessage, Status: 0, cause: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		// Treat an unreadable body like an absent one.
		raw = nil
	}

	c.log.Debug().
		Str("method", method).
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("request")

	if resp.StatusCode == http.StatusUnauthorized {
		// Token is dead: clear it before anyone else races a request with it,
		// then let the session layer react.
		_ = c.tokens.ClearToken()
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return &APIError{Message: unauthorizedMessage, Status: http.StatusUnauthorized}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.Unmarshal(raw, &eb)
		msg := eb.Message
		if msg == "" {
			msg = eb.Err
		}
		if msg == "" {
			msg = "Request failed"
		}
		return &APIError{Message: msg, Status: resp.StatusCode, Errors: eb.Errors}
	}

	if out != nil && len(raw) > 0 {
		// Undecodable success bodies count as absent, never as an error.
		_ = json.Unmarshal(raw, out)
	}
	return nil
}
