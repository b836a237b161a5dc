package presences

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sommalia/moco-wrapper-sub001/internal/cmd/base/basetest"
)

func TestList(t *testing.T) {
	b, env := basetest.New(t)
	env.Recorder.Respond(http.StatusOK, []map[string]any{
		{"id": 3, "date": "2024-01-02", "from": "08:30", "to": "17:00"},
	})

	c := &Command{Command: b}
	require.Equal(t, 0, c.Run([]string{"-from", "2024-01-01", "-to", "2024-01-31", "-user", "9"}), env.Errors())

	call := env.Recorder.Last(t)
	assert.Equal(t, "/users/presences", call.Path)
	assert.Equal(t, "2024-01-01", call.Query.Get("from"))
	assert.Equal(t, "9", call.Query.Get("user_id"))
	assert.Contains(t, env.Output(), `"from":"08:30"`)
}

func TestListHalfRange(t *testing.T) {
	b, env := basetest.New(t)

	c := &Command{Command: b}
	assert.Equal(t, 1, c.Run([]string{"-to", "2024-01-31"}))
	assert.Contains(t, env.Errors(), "error listing presences")
	assert.Empty(t, env.Recorder.Calls())
}

func TestTouch(t *testing.T) {
	b, env := basetest.New(t)

	c := &TouchCommand{Command: b}
	require.Equal(t, 0, c.Run([]string{"-home-office"}), env.Errors())

	call := env.Recorder.Last(t)
	assert.Equal(t, http.MethodPost, call.Method)
	assert.Equal(t, "/users/presences/touch", call.Path)
	assert.Equal(t, map[string]any{"is_home_office": true}, call.Params())
	assert.Contains(t, env.Output(), "Presence updated")

	require.Equal(t, 0, c.Run(nil), env.Errors())
	assert.Nil(t, env.Recorder.Last(t).Params())
}

func TestTouchImpersonate(t *testing.T) {
	b, env := basetest.New(t)

	c := &TouchCommand{Command: b}
	require.Equal(t, 0, c.Run([]string{"-impersonate", "21"}), env.Errors())
	assert.Equal(t, "21", env.Recorder.Last(t).Header.Get("X-IMPERSONATE-USER-ID"))
}
