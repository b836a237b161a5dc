package presences

import (
	"context"
	"flag"
	"fmt"

	"github.com/sommalia/moco-wrapper-sub001/internal/cmd/base"
	"github.com/sommalia/moco-wrapper-sub001/pkg/moco"
)

type Command struct {
	*base.Command

	flagFrom string
	flagTo   string
	flagUser int
	flagPage int
}

func (c *Command) Synopsis() string {
	return "List presence clock entries"
}

func (c *Command) Help() string {
	return `Usage: moco presences [options]
       moco presences touch [options]

  List presences. The touch subcommand clocks in or out.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("presences", flag.ContinueOnError))

	c.ClientFlags(f)
	f.StringVar(&c.flagFrom, "from", "", "First day of the range.")
	f.StringVar(&c.flagTo, "to", "", "Last day of the range.")
	f.IntVar(&c.flagUser, "user", 0, "Only presences of this user id.")
	f.IntVar(&c.flagPage, "page", 1, "Page to fetch.")

	return f
}

func (c *Command) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	dates, err := base.ParseDateRange(c.flagFrom, c.flagTo)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	client, err := c.Client()
	if err != nil {
		ui.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	listing, err := client.Presences.List(context.Background(), moco.PresenceListOptions{
		ListOptions: moco.ListOptions{Page: c.flagPage},
		Dates:       dates,
		UserID:      c.flagUser,
	})
	if err != nil {
		ui.Error(fmt.Sprintf("error listing presences: %v", err))
		return 1
	}

	if err := c.Output(listing.Items); err != nil {
		ui.Error(fmt.Sprintf("error writing output: %v", err))
		return 1
	}
	return 0
}
