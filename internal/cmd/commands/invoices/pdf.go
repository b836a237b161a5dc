package invoices

import (
	"context"
	"flag"
	"fmt"

	"github.com/spf13/afero"

	"github.com/sommalia/moco-wrapper-sub001/internal/cmd/base"
)

type PDFCommand struct {
	*base.Command

	flagID        int
	flagOut       string
	flagTimesheet bool
}

func (c *PDFCommand) Synopsis() string {
	return "Download an invoice as PDF"
}

func (c *PDFCommand) Help() string {
	return `Usage: moco invoices pdf -id=<id> [options]

  Download the rendered invoice, or its timesheet with -timesheet. The
  file name sent by Moco is used unless -out is given.` + c.Flags().Help()
}

func (c *PDFCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("pdf", flag.ContinueOnError))

	c.ClientFlags(f)
	f.IntVar(&c.flagID, "id", 0, "(Required) Invoice id.")
	f.StringVar(&c.flagOut, "out", "", "Path of the written file.")
	f.BoolVar(&c.flagTimesheet, "timesheet", false, "Download the timesheet instead of the invoice.")

	return f
}

func (c *PDFCommand) Run(args []string) int {
	logger, ui := c.Log, c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagID < 1 {
		ui.Error("id flag is required")
		return 1
	}

	client, err := c.Client()
	if err != nil {
		ui.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	ctx := context.Background()
	download := client.Invoices.PDF
	if c.flagTimesheet {
		download = client.Invoices.TimesheetPDF
	}
	file, err := download(ctx, c.flagID)
	if err != nil {
		ui.Error(fmt.Sprintf("error downloading invoice %d: %v", c.flagID, err))
		return 1
	}

	out := c.flagOut
	if out == "" {
		out = file.Filename
	}
	if err := afero.WriteFile(c.Fs, out, file.Data, 0o644); err != nil {
		ui.Error(fmt.Sprintf("error writing %s: %v", out, err))
		return 1
	}

	logger.Debug("invoice written", "id", c.flagID, "path", out, "bytes", len(file.Data))
	ui.Info(fmt.Sprintf("Wrote %s", out))
	return 0
}
