package open

import (
	"flag"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/sommalia/moco-wrapper-sub001/internal/cmd/base"
)

// pages maps an entity to its path in the web application.
var pages = map[string]string{
	"company":  "companies",
	"contact":  "contacts/people",
	"deal":     "deals",
	"invoice":  "invoices",
	"offer":    "offers",
	"project":  "projects",
	"purchase": "purchases",
	"user":     "users",
}

type Command struct {
	*base.Command

	flagPrint bool
}

func (c *Command) Synopsis() string {
	return "Open an entity in the browser"
}

func (c *Command) Help() string {
	return `Usage: moco open [options] <entity> <id>

  Open the page of an entity in the Moco web application. Known entities:
  ` + strings.Join(entities(), ", ") + "." + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("open", flag.ContinueOnError))

	c.ClientFlags(f)
	f.BoolVar(&c.flagPrint, "print", false, "Print the URL instead of opening it.")

	return f
}

func (c *Command) Run(args []string) int {
	logger, ui := c.Log, c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	args = flags.Args()
	if len(args) != 2 {
		ui.Error("expected <entity> <id>")
		return 1
	}

	page, ok := pages[strings.ToLower(args[0])]
	if !ok {
		ui.Error(fmt.Sprintf("unknown entity %q, expected one of %s",
			args[0], strings.Join(entities(), ", ")))
		return 1
	}
	id, err := strconv.Atoi(args[1])
	if err != nil || id < 1 {
		ui.Error(fmt.Sprintf("invalid id %q", args[1]))
		return 1
	}

	cfg, err := c.Config()
	if err != nil {
		ui.Error(fmt.Sprintf("error loading configuration: %v", err))
		return 1
	}
	mocoCfg, err := cfg.MocoConfig()
	if err != nil {
		ui.Error(fmt.Sprintf("error loading configuration: %v", err))
		return 1
	}
	if mocoCfg.Domain == "" && mocoCfg.BaseURL == "" {
		ui.Error("domain or base_url is required")
		return 1
	}

	webURL := strings.TrimSuffix(mocoCfg.APIBaseURL(), "/api/v1")
	target := fmt.Sprintf("%s/%s/%d", webURL, page, id)

	if c.flagPrint {
		ui.Output(target)
		return 0
	}

	logger.Debug("opening browser", "url", target)
	if err := c.OpenURL(target); err != nil {
		ui.Error(fmt.Sprintf("error opening browser: %v", err))
		return 1
	}
	return 0
}

func entities() []string {
	names := make([]string, 0, len(pages))
	for name := range pages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
