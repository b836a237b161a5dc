package moco

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seenRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, <-chan seenRequest) {
	t.Helper()
	seen := make(chan seenRequest, 16)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		seen <- seenRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   body,
		}
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv, seen
}

func TestHTTPRequestorVerbs(t *testing.T) {
	srv, seen := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	r := NewHTTPRequestor(srv.Client(), WithDelay(0))

	tests := []struct {
		method   string
		wantBody bool
	}{
		{http.MethodGet, false},
		{http.MethodPost, true},
		{http.MethodPut, true},
		{http.MethodPatch, true},
		{http.MethodDelete, true},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			resp, err := r.Do(context.Background(), &Request{
				Endpoint: "test",
				Method:   tt.method,
				URL:      srv.URL + "/things/1",
				Query:    url.Values{"page": {"1"}},
				Header:   http.Header{"Authorization": {"Token token=abc"}},
				Body:     map[string]any{"name": "x"},
			})
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.JSONEq(t, `{"ok":true}`, string(resp.Body))

			got := <-seen
			assert.Equal(t, tt.method, got.Method)
			assert.Equal(t, "/things/1", got.Path)
			assert.Equal(t, "1", got.Query.Get("page"))
			assert.Equal(t, "Token token=abc", got.Header.Get("Authorization"))
			assert.Equal(t, "application/json", got.Header.Get("Accept"))
			if tt.wantBody {
				assert.JSONEq(t, `{"name":"x"}`, string(got.Body))
				assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
			} else {
				assert.Empty(t, got.Body)
			}
		})
	}
}

func TestHTTPRequestorUnsupportedMethod(t *testing.T) {
	r := NewHTTPRequestor(http.DefaultClient, WithDelay(0))
	_, err := r.Do(context.Background(), &Request{Method: "TRACE", URL: "http://127.0.0.1:1/"})
	assert.ErrorIs(t, err, ErrUnsupportedMethod)
}

func TestHTTPRequestorDelay(t *testing.T) {
	srv, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})
	r := NewHTTPRequestor(srv.Client(), WithDelay(50*time.Millisecond))

	start := time.Now()
	_, err := r.Do(context.Background(), &Request{Method: http.MethodGet, URL: srv.URL})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestHTTPRequestorDelayCanceled(t *testing.T) {
	var hits atomic.Int32
	srv, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	})
	r := NewHTTPRequestor(srv.Client(), WithDelay(time.Minute))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Do(ctx, &Request{Method: http.MethodGet, URL: srv.URL})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, hits.Load())
}

func TestHTTPRequestorNoRetryByDefault(t *testing.T) {
	var hits atomic.Int32
	srv, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	})
	r := NewHTTPRequestor(srv.Client(), WithDelay(0))

	resp, err := r.Do(context.Background(), &Request{Method: http.MethodGet, URL: srv.URL})
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, int32(1), hits.Load())
}

func TestHTTPRequestorRetriesRateLimit(t *testing.T) {
	var hits atomic.Int32
	srv, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]int{"id": 1})
	})
	r := NewHTTPRequestor(srv.Client(),
		WithDelay(0),
		WithRateLimitRetries(3, time.Millisecond),
	)

	resp, err := r.Do(context.Background(), &Request{Method: http.MethodGet, URL: srv.URL})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(3), hits.Load())
}

func TestHTTPRequestorRetriesExhausted(t *testing.T) {
	var hits atomic.Int32
	srv, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	})
	r := NewHTTPRequestor(srv.Client(),
		WithDelay(0),
		WithRateLimitRetries(2, time.Millisecond),
	)

	resp, err := r.Do(context.Background(), &Request{Method: http.MethodGet, URL: srv.URL})
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, int32(3), hits.Load())
}

func TestHTTPRequestorRetryAfterOnlyBetweenAttempts(t *testing.T) {
	var hits atomic.Int32
	srv, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Retry-After", "1")
		w.WriteHeader(http.StatusTooManyRequests)
	})
	r := NewHTTPRequestor(srv.Client(),
		WithDelay(0),
		WithRateLimitRetries(1, 10*time.Millisecond),
	)

	start := time.Now()
	resp, err := r.Do(context.Background(), &Request{Method: http.MethodGet, URL: srv.URL})
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, int32(2), hits.Load())
	assert.GreaterOrEqual(t, elapsed, time.Second)
	assert.Less(t, elapsed, 1500*time.Millisecond)
}

func TestHTTPRequestorRetryAfterCanceled(t *testing.T) {
	var hits atomic.Int32
	srv, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	})
	r := NewHTTPRequestor(srv.Client(),
		WithDelay(0),
		WithRateLimitRetries(3, time.Millisecond),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := r.Do(ctx, &Request{Method: http.MethodGet, URL: srv.URL})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, int32(1), hits.Load())
}

func TestRateLimitBackOff(t *testing.T) {
	b := &rateLimitBackOff{delay: time.Second}
	assert.Equal(t, time.Second, b.NextBackOff())

	b.retryAfter = 5 * time.Second
	assert.Equal(t, 5*time.Second, b.NextBackOff())

	b.retryAfter = time.Millisecond
	assert.Equal(t, time.Second, b.NextBackOff())
}

func TestHTTPRequestorTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	r := NewHTTPRequestor(http.DefaultClient, WithDelay(0), WithRateLimitRetries(3, time.Millisecond))
	_, err := r.Do(context.Background(), &Request{Method: http.MethodGet, URL: addr})
	assert.Error(t, err)
}

func TestRetryAfter(t *testing.T) {
	assert.Equal(t, 5*time.Second, retryAfter(http.Header{"Retry-After": {"5"}}))
	assert.Zero(t, retryAfter(http.Header{}))
	assert.Zero(t, retryAfter(http.Header{"Retry-After": {"soon"}}))
	assert.Zero(t, retryAfter(http.Header{"Retry-After": {"-1"}}))
}
