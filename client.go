package stripeapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/andrewpillar/stripeapi/form"
)

// Backend sends a single request to the Stripe API. The given params are sent
// in the query string for GET requests, and in the body otherwise. On success
// the response body is decoded into v, unless v is nil.
//
// Client is the Backend used in practice; tests may substitute their own.
type Backend interface {
	Call(ctx context.Context, method, path string, params *form.Values, v interface{}) error
}

// Client is an HTTP client for the Stripe API. Each request made via this
// client is configured with the necessary headers for authenticating against
// the configured version of the API. A Client is safe for concurrent use, and
// never retries a request.
type Client struct {
	httpClient *http.Client
	config     Config
	logger     *slog.Logger
	observers  []Observer
}

// Option configures a Client.
type Option func(*Client)

var _ Backend = (*Client)(nil)

// WithHTTPClient sets the underlying HTTP client. The client's own timeout
// applies in place of Config.Timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger requests are logged to. By default nothing is
// logged.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithObserver adds an Observer that is notified of every request.
func WithObserver(o Observer) Option {
	return func(c *Client) {
		c.observers = append(c.observers, o)
	}
}

// NewClient returns a Client for the given configuration. Unset fields in the
// configuration other than the secret fall back to DefaultConfig.
func NewClient(cfg Config, opts ...Option) *Client {
	cfg = cfg.withDefaults()

	c := &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		config: cfg,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.logger = c.logger.With("component", "stripeapi")
	return c
}

func respCode2xx(code int) bool { return code >= 200 && code < 300 }

func (c *Client) newRequest(ctx context.Context, method, path string, params *form.Values) (*http.Request, error) {
	uri := strings.TrimSuffix(c.config.BaseURL, "/") + path

	var body io.Reader

	if !params.Empty() {
		if method == http.MethodGet {
			uri += "?" + params.Encode()
		} else {
			body = strings.NewReader(params.Encode())
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, uri, body)

	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+c.config.Secret)
	req.Header.Set("Stripe-Version", c.config.Version)
	req.Header.Set("Accept", "application/json")

	if method != http.MethodGet {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	if key := ctxString(ctx, idempotencyKeyCtx); key != "" {
		req.Header.Set("Idempotency-Key", key)
	}

	if acct := ctxString(ctx, stripeAccountCtx); acct != "" {
		req.Header.Set("Stripe-Account", acct)
	}
	return req, nil
}

// Call implements the Backend interface.
func (c *Client) Call(ctx context.Context, method, path string, params *form.Values, v interface{}) error {
	rec := Record{
		Method:         method,
		Path:           ctxString(ctx, pathTemplateCtx),
		IdempotencyKey: ctxString(ctx, idempotencyKeyCtx),
		StripeAccount:  ctxString(ctx, stripeAccountCtx),
	}

	if rec.Path == "" {
		rec.Path = path
	}

	start := time.Now()

	err := c.do(ctx, method, path, params, v, &rec)

	rec.Duration = time.Since(start)
	rec.Err = err

	for _, o := range c.observers {
		o.Observe(ctx, rec)
	}
	return err
}

func (c *Client) do(ctx context.Context, method, path string, params *form.Values, v interface{}, rec *Record) error {
	logger := c.logger.With("method", method, "path", path)

	req, err := c.newRequest(ctx, method, path, params)

	if err != nil {
		return &TransportError{
			Method: method,
			Path:   path,
			Err:    err,
		}
	}

	logger.Debug("sending request")

	start := time.Now()

	resp, err := c.httpClient.Do(req)

	if err != nil {
		logger.Warn("request failed", "error", err)

		return &TransportError{
			Method: method,
			Path:   path,
			Err:    err,
		}
	}

	defer resp.Body.Close()

	rec.StatusCode = resp.StatusCode
	rec.RequestID = resp.Header.Get("Request-Id")

	body, err := io.ReadAll(resp.Body)

	if err != nil {
		logger.Warn("reading response failed", "status", resp.StatusCode, "error", err)

		return &TransportError{
			Method: method,
			Path:   path,
			Err:    err,
		}
	}

	if !respCode2xx(resp.StatusCode) {
		apiErr := decodeError(resp, body)

		if apiErr.Transient() {
			logger.Warn("request failed", "status", resp.StatusCode, "request_id", apiErr.RequestID, "type", apiErr.Type)
		} else {
			logger.Debug("request rejected", "status", resp.StatusCode, "request_id", apiErr.RequestID, "type", apiErr.Type, "code", apiErr.Code)
		}
		return apiErr
	}

	logger.Debug("request completed", "status", resp.StatusCode, "request_id", rec.RequestID, "duration", time.Since(start))

	if v == nil {
		return nil
	}

	if err := json.Unmarshal(body, v); err != nil {
		return newDecodingError(err)
	}
	return nil
}
