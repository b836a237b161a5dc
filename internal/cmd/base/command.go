package base

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/pkg/browser"
	"github.com/spf13/afero"

	"github.com/sommalia/moco-wrapper-sub001/internal/config"
	"github.com/sommalia/moco-wrapper-sub001/pkg/moco"
)

// Command carries what every subcommand shares.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui

	// Fs receives files written by commands.
	Fs afero.Fs

	// Stdout decides whether JSON output is indented.
	Stdout io.Writer

	// OpenURL opens a page in the browser.
	OpenURL func(url string) error

	// ClientOptions are passed to every client the command creates.
	ClientOptions []moco.Option

	flagConfig      string
	flagFormat      string
	flagImpersonate int

	cfg *config.Config
}

// NewCommand returns a Command writing to the real file system, stdout and
// browser.
func NewCommand(log hclog.Logger, ui cli.Ui) *Command {
	return &Command{
		Log:     log,
		UI:      ui,
		Fs:      afero.NewOsFs(),
		Stdout:  os.Stdout,
		OpenURL: browser.OpenURL,
	}
}

// ClientFlags registers the flags every API command accepts.
func (c *Command) ClientFlags(f *FlagSet) {
	f.StringVar(
		&c.flagConfig, "config", "",
		"Path to the HCL configuration file. Falls back to MOCO_DOMAIN and MOCO_API_KEY.",
	)
	f.StringVar(
		&c.flagFormat, "format", "",
		"Output format: json or yaml. Overrides the configuration file.",
	)
	f.IntVar(
		&c.flagImpersonate, "impersonate", 0,
		"Send requests on behalf of this user id.",
	)
}

// Config loads the configuration named by -config.
func (c *Command) Config() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	cfg, err := config.Load(c.flagConfig)
	if err != nil {
		return nil, err
	}
	if c.flagFormat != "" {
		cfg.Output = c.flagFormat
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	if c.flagImpersonate > 0 {
		cfg.ImpersonateUserID = c.flagImpersonate
	}
	c.cfg = cfg

	if level := hclog.LevelFromString(cfg.LogLevel); level != hclog.NoLevel {
		c.Log.SetLevel(level)
	}
	return cfg, nil
}

// Client builds an API client from the loaded configuration.
func (c *Command) Client() (*moco.Client, error) {
	cfg, err := c.Config()
	if err != nil {
		return nil, err
	}
	mocoCfg, err := cfg.MocoConfig()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	opts := append([]moco.Option{moco.WithLogger(c.Log.Named("moco"))}, c.ClientOptions...)
	client, err := moco.NewClient(mocoCfg, opts...)
	if err != nil {
		return nil, err
	}
	return client, nil
}
