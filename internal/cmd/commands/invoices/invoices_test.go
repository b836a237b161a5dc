package invoices

import (
	"net/http"
	"testing"

	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sommalia/moco-wrapper-sub001/internal/cmd/base/basetest"
)

func TestPDF(t *testing.T) {
	b, env := basetest.New(t)
	env.Recorder.Respond(http.StatusOK, []byte("%PDF-1.4"))

	c := &PDFCommand{Command: b}
	require.Equal(t, 0, c.Run([]string{"-id", "7"}), env.Errors())

	call := env.Recorder.Last(t)
	assert.Equal(t, "/invoices/7.pdf", call.Path)
	assert.Equal(t, "application/pdf", call.Header.Get("Accept"))

	data, err := afero.ReadFile(env.Fs, "invoice-7.pdf")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))
	assert.Contains(t, env.Output(), "Wrote invoice-7.pdf")
}

func TestPDFServerFilename(t *testing.T) {
	b, env := basetest.New(t)
	resp := env.Recorder.Respond(http.StatusOK, []byte("%PDF-1.4"))
	resp.Header.Set("Content-Disposition", `attachment; filename="RE-2024-001.pdf"`)

	c := &PDFCommand{Command: b}
	require.Equal(t, 0, c.Run([]string{"-id", "7"}), env.Errors())

	exists, err := afero.Exists(env.Fs, "RE-2024-001.pdf")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestPDFServerFilenameStaysInWorkingDir(t *testing.T) {
	b, env := basetest.New(t)
	resp := env.Recorder.Respond(http.StatusOK, []byte("%PDF-1.4"))
	resp.Header.Set("Content-Disposition", `attachment; filename="../../home/user/.bashrc"`)

	c := &PDFCommand{Command: b}
	require.Equal(t, 0, c.Run([]string{"-id", "7"}), env.Errors())

	exists, err := afero.Exists(env.Fs, ".bashrc")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = afero.Exists(env.Fs, "../../home/user/.bashrc")
	require.NoError(t, err)
	assert.False(t, exists)
	exists, err = afero.Exists(env.Fs, "/home/user/.bashrc")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPDFTimesheetOut(t *testing.T) {
	b, env := basetest.New(t)
	env.Recorder.Respond(http.StatusOK, []byte("%PDF-1.4"))

	c := &PDFCommand{Command: b}
	require.Equal(t, 0, c.Run([]string{"-id", "7", "-timesheet", "-out", "/tmp/sheet.pdf"}), env.Errors())
	assert.Equal(t, "/invoices/7/timesheet.pdf", env.Recorder.Last(t).Path)

	exists, err := afero.Exists(env.Fs, "/tmp/sheet.pdf")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestPDFErrors(t *testing.T) {
	b, env := basetest.New(t)
	c := &PDFCommand{Command: b}

	assert.Equal(t, 1, c.Run(nil))
	assert.Contains(t, env.Errors(), "id flag is required")

	env.Recorder.Respond(http.StatusNotFound, nil)
	assert.Equal(t, 1, c.Run([]string{"-id", "8"}))
	assert.Contains(t, env.Errors(), "error downloading invoice 8")
}

func TestParentShowsHelp(t *testing.T) {
	b, _ := basetest.New(t)
	c := &Command{Command: b}
	assert.Equal(t, cli.RunResultHelp, c.Run(nil))
}
