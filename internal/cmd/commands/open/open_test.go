package open

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sommalia/moco-wrapper-sub001/internal/cmd/base/basetest"
	"github.com/sommalia/moco-wrapper-sub001/internal/config"
)

func TestRunOpensBrowser(t *testing.T) {
	b, env := basetest.New(t)

	c := &Command{Command: b}
	require.Equal(t, 0, c.Run([]string{"Project", "5"}), env.Errors())
	assert.Equal(t, []string{"https://test.mocoapp.com/projects/5"}, env.Opened)
	assert.Empty(t, env.Recorder.Calls())
}

func TestRunPrint(t *testing.T) {
	b, env := basetest.New(t)
	t.Setenv(config.EnvBaseURL, "")
	t.Setenv(config.EnvDomain, "example")

	c := &Command{Command: b}
	require.Equal(t, 0, c.Run([]string{"-print", "contact", "12"}), env.Errors())
	assert.Equal(t, "https://example.mocoapp.com/contacts/people/12\n", env.Output())
	assert.Empty(t, env.Opened)
}

func TestRunErrors(t *testing.T) {
	tests := map[string]struct {
		args []string
		want string
	}{
		"missing id":     {[]string{"project"}, "expected <entity> <id>"},
		"unknown entity": {[]string{"ticket", "1"}, `unknown entity "ticket"`},
		"bad id":         {[]string{"project", "abc"}, `invalid id "abc"`},
		"zero id":        {[]string{"project", "0"}, `invalid id "0"`},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b, env := basetest.New(t)
			c := &Command{Command: b}
			assert.Equal(t, 1, c.Run(tt.args))
			assert.Contains(t, env.Errors(), tt.want)
		})
	}
}

func TestRunWithoutAccount(t *testing.T) {
	b, env := basetest.New(t)
	t.Setenv(config.EnvBaseURL, "")

	c := &Command{Command: b}
	assert.Equal(t, 1, c.Run([]string{"project", "5"}))
	assert.Contains(t, env.Errors(), "domain or base_url is required")
}
