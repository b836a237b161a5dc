package endpoints

import (
	"flag"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/sommalia/moco-wrapper-sub001/internal/cmd/base"
	"github.com/sommalia/moco-wrapper-sub001/pkg/moco"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "List the operations known to the client"
}

func (c *Command) Help() string {
	return `Usage: moco endpoints [prefix]

  Print every registered operation with its HTTP verb and path template.
  A prefix such as "project_" limits the list.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	return base.NewFlagSet(flag.NewFlagSet("endpoints", flag.ContinueOnError))
}

func (c *Command) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	args = flags.Args()
	if len(args) > 1 {
		ui.Error("expected at most one prefix")
		return 1
	}

	var prefix string
	if len(args) == 1 {
		prefix = args[0]
	}

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	found := 0
	for _, e := range moco.Endpoints() {
		if !strings.HasPrefix(e.Name, prefix) {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, e.Method, e.Path)
		found++
	}
	w.Flush()

	if found == 0 {
		ui.Error(fmt.Sprintf("no endpoint matches %q", prefix))
		return 1
	}
	ui.Output(strings.TrimRight(b.String(), "\n"))
	return 0
}
