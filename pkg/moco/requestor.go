package moco

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

// DefaultRequestDelay is the pause before every request.
const DefaultRequestDelay = 1 * time.Second

// Request is a fully resolved call, ready to be sent.
type Request struct {
	// Endpoint is the logical operation name, for logging and tests.
	Endpoint string

	Method string
	URL    string
	Query  url.Values
	Header http.Header

	// Body is encoded as JSON when non-nil.
	Body any
}

// RawResponse is what a Requestor hands back to the client.
type RawResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Requestor sends a Request. The HTTP implementation is HTTPRequestor;
// tests substitute a recording stub.
type Requestor interface {
	Do(ctx context.Context, req *Request) (*RawResponse, error)
}

// HTTPRequestor waits a fixed delay before every call and then issues it on
// a shared http.Client. The delay does not adapt to earlier calls.
type HTTPRequestor struct {
	client *http.Client
	logger hclog.Logger

	delay            time.Duration
	rateLimitRetries int
	retryDelay       time.Duration
}

// HTTPRequestorOption configures an HTTPRequestor.
type HTTPRequestorOption func(*HTTPRequestor)

// WithDelay overrides the pause before each request. Zero disables it.
func WithDelay(d time.Duration) HTTPRequestorOption {
	return func(r *HTTPRequestor) {
		r.delay = d
	}
}

// WithRateLimitRetries retries a 429 response up to n times, waiting
// retryDelay or the Retry-After header, whichever is longer.
func WithRateLimitRetries(n int, retryDelay time.Duration) HTTPRequestorOption {
	return func(r *HTTPRequestor) {
		r.rateLimitRetries = n
		r.retryDelay = retryDelay
	}
}

// WithRequestorLogger sets the logger used for request tracing.
func WithRequestorLogger(logger hclog.Logger) HTTPRequestorOption {
	return func(r *HTTPRequestor) {
		r.logger = logger
	}
}

// NewHTTPRequestor creates a requestor on top of client.
func NewHTTPRequestor(client *http.Client, opts ...HTTPRequestorOption) *HTTPRequestor {
	if client == nil {
		client = http.DefaultClient
	}
	r := &HTTPRequestor{
		client:     client,
		logger:     hclog.NewNullLogger(),
		delay:      DefaultRequestDelay,
		retryDelay: DefaultRequestDelay,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Do waits the configured delay, then dispatches on the request method.
func (r *HTTPRequestor) Do(ctx context.Context, req *Request) (*RawResponse, error) {
	if err := r.wait(ctx, r.delay); err != nil {
		return nil, err
	}

	var resp *RawResponse
	schedule := &rateLimitBackOff{delay: r.retryDelay}
	attempt := func() error {
		var err error
		resp, err = r.dispatch(ctx, req)
		if err != nil {
			return backoff.Permanent(err)
		}
		if resp.StatusCode == http.StatusTooManyRequests {
			schedule.retryAfter = retryAfter(resp.Header)
			return ErrRateLimited
		}
		return nil
	}

	if r.rateLimitRetries <= 0 {
		if err := attempt(); err != nil && !errors.Is(err, ErrRateLimited) {
			return nil, unwrapPermanent(err)
		}
		return resp, nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(schedule, uint64(r.rateLimitRetries)),
		ctx,
	)
	notify := func(err error, wait time.Duration) {
		r.logger.Warn("rate limited, retrying",
			"endpoint", req.Endpoint,
			"wait", wait,
		)
	}
	if err := backoff.RetryNotify(attempt, policy, notify); err != nil && !errors.Is(err, ErrRateLimited) {
		return nil, unwrapPermanent(err)
	}

	// A 429 after the last retry is handed back like any other status.
	return resp, nil
}

func (r *HTTPRequestor) dispatch(ctx context.Context, req *Request) (*RawResponse, error) {
	switch req.Method {
	case http.MethodGet:
		return r.send(ctx, http.MethodGet, req, false)
	case http.MethodPost:
		return r.send(ctx, http.MethodPost, req, true)
	case http.MethodPut:
		return r.send(ctx, http.MethodPut, req, true)
	case http.MethodPatch:
		return r.send(ctx, http.MethodPatch, req, true)
	case http.MethodDelete:
		return r.send(ctx, http.MethodDelete, req, true)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMethod, req.Method)
	}
}

func (r *HTTPRequestor) send(ctx context.Context, method string, req *Request, withBody bool) (*RawResponse, error) {
	endpoint := req.URL
	if len(req.Query) > 0 {
		endpoint += "?" + req.Query.Encode()
	}

	var bodyReader io.Reader
	if withBody && req.Body != nil {
		bodyBytes, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for k, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(k, v)
		}
	}
	if httpReq.Header.Get("Accept") == "" {
		httpReq.Header.Set("Accept", "application/json")
	}
	if bodyReader != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	requestID := uuid.New().String()
	start := time.Now()
	r.logger.Debug("sending request",
		"request_id", requestID,
		"endpoint", req.Endpoint,
		"method", method,
		"url", req.URL,
	)

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	r.logger.Debug("received response",
		"request_id", requestID,
		"status", resp.StatusCode,
		"bytes", len(respBody),
		"duration", time.Since(start),
	)

	return &RawResponse{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
	}, nil
}

// rateLimitBackOff waits the retry delay, or the Retry-After of the last
// 429 when that is longer. No wait follows the final attempt.
type rateLimitBackOff struct {
	delay      time.Duration
	retryAfter time.Duration
}

func (b *rateLimitBackOff) NextBackOff() time.Duration {
	return max(b.delay, b.retryAfter)
}

func (b *rateLimitBackOff) Reset() {}

func (r *HTTPRequestor) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// retryAfter parses a Retry-After header given in seconds.
func retryAfter(h http.Header) time.Duration {
	v := h.Get("Retry-After")
	if v == "" {
		return 0
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

func unwrapPermanent(err error) error {
	var perm *backoff.PermanentError
	if errors.As(err, &perm) {
		return perm.Err
	}
	return err
}
