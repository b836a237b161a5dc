// Package mocotest provides a recording Requestor for tests of code built
// on the moco client. No network traffic is generated.
package mocotest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sommalia/moco-wrapper-sub001/pkg/moco"
)

// TestAPIKey is the api key of clients created by NewClient.
const TestAPIKey = "test-api-key"

// TestBaseURL is the base URL of clients created by NewClient.
const TestBaseURL = "https://test.mocoapp.com/api/v1"

// Call is one request seen by the Recorder.
type Call struct {
	Endpoint string
	Method   string
	URL      string
	Path     string
	Query    url.Values
	Header   http.Header

	// Body is the request body as JSON, nil when there was none.
	Body []byte
}

// Params decodes the JSON body into a map. Numbers decode as float64.
func (c Call) Params() map[string]any {
	if len(c.Body) == 0 {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(c.Body, &m); err != nil {
		return nil
	}
	return m
}

type reply struct {
	resp *moco.RawResponse
	err  error
}

// Recorder implements moco.Requestor. It records every request and answers
// with queued replies in order. When the queue is empty it echoes the
// request body back with status 200, or an empty 200 when there is no body.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
	queue []reply
}

var _ moco.Requestor = (*Recorder)(nil)

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Do records req and returns the next queued reply or the echo.
func (r *Recorder) Do(ctx context.Context, req *moco.Request) (*moco.RawResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var body []byte
	if req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = b
	}

	call := Call{
		Endpoint: req.Endpoint,
		Method:   req.Method,
		URL:      req.URL,
		Path:     pathOf(req.URL),
		Query:    req.Query,
		Header:   req.Header.Clone(),
		Body:     body,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call)

	if len(r.queue) > 0 {
		next := r.queue[0]
		r.queue = r.queue[1:]
		return next.resp, next.err
	}

	header := http.Header{}
	if body != nil {
		header.Set("Content-Type", "application/json")
	}
	return &moco.RawResponse{StatusCode: http.StatusOK, Header: header, Body: body}, nil
}

// Respond queues a reply with the given status and v encoded as JSON. A
// []byte or string v is used verbatim.
func (r *Recorder) Respond(status int, v any) *moco.RawResponse {
	var body []byte
	switch val := v.(type) {
	case nil:
	case []byte:
		body = val
	case string:
		body = []byte(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			panic(fmt.Sprintf("mocotest: cannot encode response: %v", err))
		}
		body = b
	}
	resp := &moco.RawResponse{StatusCode: status, Header: http.Header{}, Body: body}
	r.Queue(resp)
	return resp
}

// Queue appends replies that are returned before any echo.
func (r *Recorder) Queue(responses ...*moco.RawResponse) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, resp := range responses {
		r.queue = append(r.queue, reply{resp: resp})
	}
}

// QueueError makes the next call fail with err, as a transport error would.
func (r *Recorder) QueueError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queue = append(r.queue, reply{err: err})
}

// Calls returns a copy of every recorded call.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	calls := make([]Call, len(r.calls))
	copy(calls, r.calls)
	return calls
}

// Last returns the most recent call. It fails the test when nothing was
// recorded.
func (r *Recorder) Last(t testing.TB) Call {
	t.Helper()
	calls := r.Calls()
	require.NotEmpty(t, calls, "no request was recorded")
	return calls[len(calls)-1]
}

// Reset forgets recorded calls and queued replies.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
	r.queue = nil
}

// NewClient returns a client wired to a fresh Recorder.
func NewClient(t testing.TB, opts ...moco.Option) (*moco.Client, *Recorder) {
	t.Helper()
	rec := NewRecorder()
	cfg := &moco.Config{
		BaseURL: TestBaseURL,
		APIKey:  TestAPIKey,
	}
	client, err := moco.NewClient(cfg, append([]moco.Option{moco.WithRequestor(rec)}, opts...)...)
	require.NoError(t, err)
	return client, rec
}

// pathOf strips scheme, host and the /api/v1 prefix from rawURL.
func pathOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return strings.TrimPrefix(u.EscapedPath(), "/api/v1")
}
