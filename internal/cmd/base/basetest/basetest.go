// Package basetest wires commands to fakes for tests.
package basetest

import (
	"bytes"
	"errors"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/sommalia/moco-wrapper-sub001/internal/cmd/base"
	"github.com/sommalia/moco-wrapper-sub001/internal/config"
	"github.com/sommalia/moco-wrapper-sub001/pkg/moco"
	"github.com/sommalia/moco-wrapper-sub001/pkg/moco/mocotest"
)

// Env holds the fakes behind a Command created by New.
type Env struct {
	UI       *cli.MockUi
	Recorder *mocotest.Recorder
	Fs       afero.Fs

	// Opened collects the URLs passed to OpenURL.
	Opened []string
}

// New returns a Command with a mock UI, an in-memory file system and a
// recording requestor. The environment points the client at
// mocotest.TestBaseURL.
func New(t testing.TB) (*base.Command, *Env) {
	t.Helper()
	t.Setenv(config.EnvDomain, "")
	t.Setenv(config.EnvBaseURL, mocotest.TestBaseURL)
	t.Setenv(config.EnvAPIKey, mocotest.TestAPIKey)

	env := &Env{
		UI:       cli.NewMockUi(),
		Recorder: mocotest.NewRecorder(),
		Fs:       afero.NewMemMapFs(),
	}
	c := &base.Command{
		Log:    hclog.NewNullLogger(),
		UI:     env.UI,
		Fs:     env.Fs,
		Stdout: &bytes.Buffer{},
		OpenURL: func(url string) error {
			if url == "" {
				return errors.New("empty url")
			}
			env.Opened = append(env.Opened, url)
			return nil
		},
		ClientOptions: []moco.Option{moco.WithRequestor(env.Recorder)},
	}
	return c, env
}

// Output returns what the command wrote to the UI output.
func (e *Env) Output() string {
	return e.UI.OutputWriter.String()
}

// Errors returns what the command wrote to the UI error stream.
func (e *Env) Errors() string {
	return e.UI.ErrorWriter.String()
}
