package endpoints

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sommalia/moco-wrapper-sub001/internal/cmd/base/basetest"
)

func TestRunPrefix(t *testing.T) {
	b, env := basetest.New(t)

	c := &Command{Command: b}
	require.Equal(t, 0, c.Run([]string{"project_task_"}), env.Errors())

	lines := strings.Split(env.Output(), "\n")
	assert.GreaterOrEqual(t, len(lines), 5)
	assert.Contains(t, env.Output(), "project_task_get")
	assert.Contains(t, env.Output(), "/projects/{project_id}/tasks/{id}")
	assert.NotContains(t, env.Output(), "activity_get")
}

func TestRunAll(t *testing.T) {
	b, env := basetest.New(t)

	c := &Command{Command: b}
	require.Equal(t, 0, c.Run(nil))
	assert.Contains(t, env.Output(), "activity_getlist")
	assert.Contains(t, env.Output(), "user_presence_touch")
}

func TestRunNoMatch(t *testing.T) {
	b, env := basetest.New(t)

	c := &Command{Command: b}
	assert.Equal(t, 1, c.Run([]string{"nothing_"}))
	assert.Contains(t, env.Errors(), `no endpoint matches "nothing_"`)

	assert.Equal(t, 1, c.Run([]string{"a", "b"}))
}
