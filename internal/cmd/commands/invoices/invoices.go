package invoices

import (
	"github.com/mitchellh/cli"

	"github.com/sommalia/moco-wrapper-sub001/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Work with invoices"
}

func (c *Command) Help() string {
	return `Usage: moco invoices <subcommand> [options] [args]

  This command groups subcommands for invoices.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}
