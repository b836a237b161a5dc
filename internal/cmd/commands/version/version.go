package version

import (
	"github.com/sommalia/moco-wrapper-sub001/internal/cmd/base"
	"github.com/sommalia/moco-wrapper-sub001/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the version"
}

func (c *Command) Help() string {
	return `Usage: moco version

  Print the version of the console.`
}

func (c *Command) Run(args []string) int {
	c.UI.Output("moco " + version.FullVersion())
	return 0
}
