package activities

import (
	"context"
	"flag"
	"fmt"

	"github.com/sommalia/moco-wrapper-sub001/internal/cmd/base"
	"github.com/sommalia/moco-wrapper-sub001/pkg/moco"
	"github.com/sommalia/moco-wrapper-sub001/pkg/moco/models"
)

type Command struct {
	*base.Command

	flagFrom     string
	flagTo       string
	flagUser     int
	flagProject  int
	flagTask     int
	flagCompany  int
	flagTerm     string
	flagPage     int
	flagSort     string
	flagOrder    string
	flagAllPages bool
}

func (c *Command) Synopsis() string {
	return "List time entries"
}

func (c *Command) Help() string {
	return `Usage: moco activities [options]

  List activities. -from and -to must be given together and accept most
  date notations.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("activities", flag.ContinueOnError))

	c.ClientFlags(f)
	f.StringVar(&c.flagFrom, "from", "", "First day of the range.")
	f.StringVar(&c.flagTo, "to", "", "Last day of the range.")
	f.IntVar(&c.flagUser, "user", 0, "Only activities of this user id.")
	f.IntVar(&c.flagProject, "project", 0, "Only activities of this project id.")
	f.IntVar(&c.flagTask, "task", 0, "Only activities of this task id.")
	f.IntVar(&c.flagCompany, "company", 0, "Only activities of this company id.")
	f.StringVar(&c.flagTerm, "term", "", "Full text search term.")
	f.IntVar(&c.flagPage, "page", 1, "Page to fetch.")
	f.StringVar(&c.flagSort, "sort", "", "Field to sort by, e.g. date.")
	f.StringVar(&c.flagOrder, "order", "asc", "Sort order, asc or desc.")
	f.BoolVar(&c.flagAllPages, "all", false, "Fetch every page instead of -page.")

	return f
}

func (c *Command) Run(args []string) int {
	logger, ui := c.Log, c.UI

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

	opts := moco.ActivityListOptions{
		ListOptions: moco.ListOptions{
			Page:      c.flagPage,
			SortBy:    c.flagSort,
			SortOrder: moco.SortOrder(c.flagOrder),
		},
		Dates:     dates,
		UserID:    c.flagUser,
		ProjectID: c.flagProject,
		TaskID:    c.flagTask,
		CompanyID: c.flagCompany,
		Term:      c.flagTerm,
	}

	ctx := context.Background()
	var items []models.Activity
	if c.flagAllPages {
		items, err = moco.All(ctx, func(ctx context.Context, page int) (*moco.Listing[models.Activity], error) {
			opts.Page = page
			logger.Debug("fetching activities", "page", page)
			return client.Activities.List(ctx, opts)
		})
	} else {
		var listing *moco.Listing[models.Activity]
		listing, err = client.Activities.List(ctx, opts)
		if listing != nil {
			items = listing.Items
		}
	}
	if err != nil {
		ui.Error(fmt.Sprintf("error listing activities: %v", err))
		return 1
	}

	if err := c.Output(items); err != nil {
		ui.Error(fmt.Sprintf("error writing output: %v", err))
		return 1
	}
	return 0
}
