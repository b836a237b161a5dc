package presences

import (
	"context"
	"flag"
	"fmt"

	"github.com/sommalia/moco-wrapper-sub001/internal/cmd/base"
	"github.com/sommalia/moco-wrapper-sub001/pkg/moco"
)

type TouchCommand struct {
	*base.Command

	flagHomeOffice bool
}

func (c *TouchCommand) Synopsis() string {
	return "Clock in or out"
}

func (c *TouchCommand) Help() string {
	return `Usage: moco presences touch [options]

  Start a presence for the acting user, or close the open one.` + c.Flags().Help()
}

func (c *TouchCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("touch", flag.ContinueOnError))

	c.ClientFlags(f)
	f.BoolVar(&c.flagHomeOffice, "home-office", false, "Mark the presence as home office.")

	return f
}

func (c *TouchCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	client, err := c.Client()
	if err != nil {
		ui.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	var homeOffice *bool
	if c.flagHomeOffice {
		homeOffice = moco.Bool(true)
	}
	if err := client.Presences.Touch(context.Background(), homeOffice); err != nil {
		ui.Error(fmt.Sprintf("error touching presence: %v", err))
		return 1
	}

	ui.Info("Presence updated")
	return 0
}
