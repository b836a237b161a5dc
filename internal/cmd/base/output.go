package base

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"
)

// Output renders v in the configured format on the UI.
func (c *Command) Output(v any) error {
	format := "json"
	if c.cfg != nil && c.cfg.Output != "" {
		format = c.cfg.Output
	}
	if c.flagFormat != "" {
		format = c.flagFormat
	}

	var (
		out string
		err error
	)
	switch format {
	case "yaml":
		out, err = renderYAML(v)
	case "json":
		out, err = renderJSON(v, c.isTerminal())
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	if err != nil {
		return err
	}
	c.UI.Output(strings.TrimRight(out, "\n"))
	return nil
}

func (c *Command) isTerminal() bool {
	f, ok := c.Stdout.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func renderJSON(v any, indent bool) (string, error) {
	var (
		b   []byte
		err error
	)
	if indent {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return "", fmt.Errorf("failed to encode json: %w", err)
	}
	return string(b), nil
}

// renderYAML goes through JSON first so the keys match the API field
// names given by the json tags.
func renderYAML(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode yaml: %w", err)
	}
	var generic any
	if err := json.Unmarshal(b, &generic); err != nil {
		return "", fmt.Errorf("failed to encode yaml: %w", err)
	}
	out, err := yaml.Marshal(generic)
	if err != nil {
		return "", fmt.Errorf("failed to encode yaml: %w", err)
	}
	return string(out), nil
}
