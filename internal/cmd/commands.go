package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/sommalia/moco-wrapper-sub001/internal/cmd/base"
	"github.com/sommalia/moco-wrapper-sub001/internal/cmd/commands/activities"
	"github.com/sommalia/moco-wrapper-sub001/internal/cmd/commands/call"
	"github.com/sommalia/moco-wrapper-sub001/internal/cmd/commands/endpoints"
	"github.com/sommalia/moco-wrapper-sub001/internal/cmd/commands/invoices"
	"github.com/sommalia/moco-wrapper-sub001/internal/cmd/commands/open"
	"github.com/sommalia/moco-wrapper-sub001/internal/cmd/commands/presences"
	"github.com/sommalia/moco-wrapper-sub001/internal/cmd/commands/version"
)

// Commands is the mapping of all available commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	b := base.NewCommand(log, ui)

	Commands = map[string]cli.CommandFactory{
		"activities": func() (cli.Command, error) {
			return &activities.Command{Command: b}, nil
		},
		"call": func() (cli.Command, error) {
			return &call.Command{Command: b}, nil
		},
		"endpoints": func() (cli.Command, error) {
			return &endpoints.Command{Command: b}, nil
		},
		"invoices": func() (cli.Command, error) {
			return &invoices.Command{Command: b}, nil
		},
		"invoices pdf": func() (cli.Command, error) {
			return &invoices.PDFCommand{Command: b}, nil
		},
		"open": func() (cli.Command, error) {
			return &open.Command{Command: b}, nil
		},
		"presences": func() (cli.Command, error) {
			return &presences.Command{Command: b}, nil
		},
		"presences touch": func() (cli.Command, error) {
			return &presences.TouchCommand{Command: b}, nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{Command: b}, nil
		},
	}
}
