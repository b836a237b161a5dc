package call

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/sommalia/moco-wrapper-sub001/internal/cmd/base"
	"github.com/sommalia/moco-wrapper-sub001/pkg/moco"
)

type Command struct {
	*base.Command

	flagPath  base.KeyValues
	flagQuery base.KeyValues
	flagBody  base.KeyValues
}

func (c *Command) Synopsis() string {
	return "Call any operation by name"
}

func (c *Command) Help() string {
	return `Usage: moco call <endpoint> [options]

  Call the operation registered under <endpoint> and print the response.
  Names may be given in any case, e.g. activity_get or ActivityGet.
  Run "moco endpoints" for the list of names.

  Body values are parsed as JSON when possible, so -body hours=1.5 sends
  a number and -body billable=false a boolean.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("call", flag.ContinueOnError))

	c.flagPath = base.KeyValues{}
	c.flagQuery = base.KeyValues{}
	c.flagBody = base.KeyValues{}

	c.ClientFlags(f)
	f.Var(c.flagPath, "path", "Path parameter as key=value. Repeatable.")
	f.Var(c.flagQuery, "query", "Query parameter as key=value. Repeatable.")
	f.Var(c.flagBody, "body", "Body field as key=value. Repeatable.")

	return f
}

func (c *Command) Run(args []string) int {
	logger, ui := c.Log, c.UI

	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		ui.Error("an endpoint name is required")
		return 1
	}
	name := strcase.ToSnake(args[0])

	flags := c.Flags()
	if err := flags.Parse(args[1:]); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	endpoint, ok := moco.LookupEndpoint(name)
	if !ok {
		ui.Error(fmt.Sprintf("unknown endpoint %q", name))
		return 1
	}

	client, err := c.Client()
	if err != nil {
		ui.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	var body any
	if len(c.flagBody) > 0 {
		body = bodyParams(c.flagBody)
	}

	logger.Debug("calling endpoint",
		"endpoint", endpoint.Name,
		"method", endpoint.Method,
		"path", endpoint.Path,
	)
	resp, err := client.Do(context.Background(), endpoint.Name,
		stringParams(c.flagPath), stringParams(c.flagQuery), body)
	if err != nil {
		ui.Error(fmt.Sprintf("error calling %s: %v", endpoint.Name, err))
		return 1
	}

	if resp.Empty() {
		ui.Info(fmt.Sprintf("%s: status %d, no content", endpoint.Name, resp.StatusCode))
		return 0
	}

	var out any
	if err := resp.Decode(&out); err != nil {
		ui.Info(fmt.Sprintf("%s: received %d bytes of %s",
			endpoint.Name, len(resp.Body), resp.Header.Get("Content-Type")))
		return 0
	}
	if err := c.Output(out); err != nil {
		ui.Error(fmt.Sprintf("error writing output: %v", err))
		return 1
	}
	return 0
}

func stringParams(kv base.KeyValues) moco.Params {
	p := moco.Params{}
	for k, v := range kv {
		p.Put(k, v)
	}
	return p
}

// bodyParams decodes each value as JSON and falls back to the raw string.
func bodyParams(kv base.KeyValues) moco.Params {
	p := moco.Params{}
	for k, v := range kv {
		var decoded any
		if err := json.Unmarshal([]byte(v), &decoded); err != nil {
			p.Put(k, v)
			continue
		}
		p.Put(k, decoded)
	}
	return p
}
