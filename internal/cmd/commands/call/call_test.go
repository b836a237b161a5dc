package call

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sommalia/moco-wrapper-sub001/internal/cmd/base/basetest"
)

func TestRunGet(t *testing.T) {
	b, env := basetest.New(t)
	env.Recorder.Respond(http.StatusOK, map[string]any{"id": 5, "hours": 2})

	c := &Command{Command: b}
	require.Equal(t, 0, c.Run([]string{"ActivityGet", "-path", "id=5"}), env.Errors())

	call := env.Recorder.Last(t)
	assert.Equal(t, http.MethodGet, call.Method)
	assert.Equal(t, "/activities/5", call.Path)
	assert.Equal(t, `{"hours":2,"id":5}`+"\n", env.Output())
}

func TestRunBody(t *testing.T) {
	b, env := basetest.New(t)

	c := &Command{Command: b}
	code := c.Run([]string{
		"activity_update",
		"-path", "id=5",
		"-body", "hours=1.5",
		"-body", "billable=false",
		"-body", "description=Design review",
		"-query", "dryRun=1",
	})
	require.Equal(t, 0, code, env.Errors())

	call := env.Recorder.Last(t)
	assert.Equal(t, http.MethodPut, call.Method)
	assert.Equal(t, "1", call.Query.Get("dry_run"))
	assert.Equal(t, map[string]any{
		"hours":       1.5,
		"billable":    false,
		"description": "Design review",
	}, call.Params())
}

func TestRunNoContent(t *testing.T) {
	b, env := basetest.New(t)

	c := &Command{Command: b}
	require.Equal(t, 0, c.Run([]string{"activity_delete", "-path", "id=5"}), env.Errors())
	assert.Equal(t, http.MethodDelete, env.Recorder.Last(t).Method)
	assert.Contains(t, env.Output(), "activity_delete: status 200, no content")
}

func TestRunBinary(t *testing.T) {
	b, env := basetest.New(t)
	resp := env.Recorder.Respond(http.StatusOK, []byte("%PDF-1.4"))
	resp.Header.Set("Content-Type", "application/pdf")

	c := &Command{Command: b}
	require.Equal(t, 0, c.Run([]string{"invoice_pdf", "-path", "id=3"}), env.Errors())
	assert.Contains(t, env.Output(), "received 8 bytes of application/pdf")
}

func TestRunErrors(t *testing.T) {
	b, env := basetest.New(t)
	c := &Command{Command: b}

	assert.Equal(t, 1, c.Run(nil))
	assert.Contains(t, env.Errors(), "an endpoint name is required")

	assert.Equal(t, 1, c.Run([]string{"no_such_thing"}))
	assert.Contains(t, env.Errors(), `unknown endpoint "no_such_thing"`)

	assert.Equal(t, 1, c.Run([]string{"activity_get"}))
	assert.Contains(t, env.Errors(), "error calling activity_get")

	env.Recorder.Respond(http.StatusNotFound, map[string]string{"message": "Record not found"})
	assert.Equal(t, 1, c.Run([]string{"activity_get", "-path", "id=404"}))
	assert.Contains(t, env.Errors(), "Record not found")
}

func TestBodyParams(t *testing.T) {
	p := bodyParams(map[string]string{
		"tags":   `["a","b"]`,
		"text":   "plain",
		"amount": "10",
	})
	assert.Equal(t, []any{"a", "b"}, p["tags"])
	assert.Equal(t, "plain", p["text"])
	assert.Equal(t, float64(10), p["amount"])
}
