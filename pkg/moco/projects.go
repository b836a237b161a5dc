package moco

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/sommalia/moco-wrapper-sub001/pkg/moco/models"
)

// Billing variants of a project.
const (
	BillingVariantProject = "project"
	BillingVariantTask    = "task"
	BillingVariantUser    = "user"
)

// ProjectService manages projects.
type ProjectService struct {
	client *Client
}

// ProjectListOptions filters Projects.List. Created and Updated are
// independent date pairs.
type ProjectListOptions struct {
	ListOptions
	Created         DateRange
	Updated         DateRange
	IncludeArchived bool
	IncludeCompany  bool
	LeaderID        int
	CompanyID       int
	Identifier      string
	Retainer        *bool
	Tags            []string
}

// ProjectInput is the payload of Projects.Create and Projects.Update.
// Amounts are pointers so an update can set them to zero.
type ProjectInput struct {
	Name             string
	Currency         string
	LeaderID         int
	CustomerID       int
	StartDate        time.Time
	FinishDate       time.Time
	CoLeaderID       int
	DealID           int
	Identifier       string
	FixedPrice       *bool
	Retainer         *bool
	BillingVariant   string
	BillingAddress   string
	BillingEmailTo   string
	BillingEmailCC   string
	BillingNotes     string
	HourlyRate       *float64
	Budget           *float64
	BudgetMonthly    *float64
	BudgetExpenses   *float64
	Info             string
	Tags             []string
	CustomProperties map[string]any
}

func (p ProjectInput) params() Params {
	return Params{}.
		Set("name", p.Name).
		Set("currency", p.Currency).
		Set("leader_id", p.LeaderID).
		Set("customer_id", p.CustomerID).
		Set("start_date", p.StartDate).
		Set("finish_date", p.FinishDate).
		Set("co_leader_id", p.CoLeaderID).
		Set("deal_id", p.DealID).
		Set("identifier", p.Identifier).
		Set("fixed_price", p.FixedPrice).
		Set("retainer", p.Retainer).
		Set("billing_variant", p.BillingVariant).
		Set("billing_address", p.BillingAddress).
		Set("billing_email_to", p.BillingEmailTo).
		Set("billing_email_cc", p.BillingEmailCC).
		Set("billing_notes", p.BillingNotes).
		Set("hourly_rate", p.HourlyRate).
		Set("budget", p.Budget).
		Set("budget_monthly", p.BudgetMonthly).
		Set("budget_expenses", p.BudgetExpenses).
		Set("info", p.Info).
		Set("tags", p.Tags).
		Set("custom_properties", p.CustomProperties)
}

func (p *ProjectInput) rules() []*validation.FieldRules {
	return []*validation.FieldRules{
		validation.Field(&p.Currency, validation.Length(3, 3)),
		validation.Field(&p.BillingVariant, validation.In(BillingVariantProject, BillingVariantTask, BillingVariantUser)),
		validation.Field(&p.BillingEmailTo, validation.Match(emailPattern)),
		validation.Field(&p.HourlyRate, validation.Min(0.0)),
		validation.Field(&p.Budget, validation.Min(0.0)),
	}
}

// List returns one page of projects.
func (s *ProjectService) List(ctx context.Context, opts ProjectListOptions) (*Listing[models.Project], error) {
	q, err := listQuery(opts.ListOptions)
	if err != nil {
		return nil, err
	}
	if err := opts.Created.apply(q, "created_from", "created_to"); err != nil {
		return nil, err
	}
	if err := opts.Updated.apply(q, "updated_from", "updated_to"); err != nil {
		return nil, err
	}
	q.Set("include_archived", opts.IncludeArchived).
		Set("include_company", opts.IncludeCompany).
		Set("leader_id", opts.LeaderID).
		Set("company_id", opts.CompanyID).
		Set("identifier", opts.Identifier).
		Set("retainer", opts.Retainer).
		Set("tags", opts.Tags)

	return getListing[models.Project](ctx, s.client, "project_getlist", nil, q)
}

// Assigned returns the projects the acting user is staffed on.
func (s *ProjectService) Assigned(ctx context.Context, active *bool) ([]models.Project, error) {
	return getSlice[models.Project](ctx, s.client, "project_assigned", nil, Params{}.Set("active", active))
}

// Get returns a single project.
func (s *ProjectService) Get(ctx context.Context, id int) (*models.Project, error) {
	return getObject[models.Project](ctx, s.client, "project_get", byID(id), nil)
}

// Create adds a project.
func (s *ProjectService) Create(ctx context.Context, p ProjectInput) (*models.Project, error) {
	rules := append(p.rules(),
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.Currency, validation.Required),
		validation.Field(&p.LeaderID, validation.Required),
		validation.Field(&p.CustomerID, validation.Required),
	)
	if err := validateInput("project", &p, rules...); err != nil {
		return nil, err
	}
	return sendObject[models.Project](ctx, s.client, "project_create", nil, p.params())
}

// Update changes a project.
func (s *ProjectService) Update(ctx context.Context, id int, p ProjectInput) (*models.Project, error) {
	if err := validateInput("project", &p, p.rules()...); err != nil {
		return nil, err
	}
	return sendObject[models.Project](ctx, s.client, "project_update", byID(id), p.params())
}

// Delete removes a project without activities.
func (s *ProjectService) Delete(ctx context.Context, id int) error {
	return sendEmpty(ctx, s.client, "project_delete", byID(id), nil)
}

// Archive deactivates a project.
func (s *ProjectService) Archive(ctx context.Context, id int) (*models.Project, error) {
	return sendObject[models.Project](ctx, s.client, "project_archive", byID(id), nil)
}

// Unarchive reactivates a project.
func (s *ProjectService) Unarchive(ctx context.Context, id int) (*models.Project, error) {
	return sendObject[models.Project](ctx, s.client, "project_unarchive", byID(id), nil)
}

// Report returns budget and hour figures of a project. The report has no
// fixed schema; decode it with Record.Decode.
func (s *ProjectService) Report(ctx context.Context, id int) (models.Record, error) {
	resp, err := s.client.Do(ctx, "project_report", byID(id), nil, nil)
	if err != nil {
		return nil, err
	}
	return resp.Record()
}
