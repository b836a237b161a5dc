package moco

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/sommalia/moco-wrapper-sub001/pkg/moco/models"
)

// ProjectExpenseService manages additional services booked on projects.
type ProjectExpenseService struct {
	client *Client
}

// ProjectExpenseListOptions filters ProjectExpenses.ListAll.
type ProjectExpenseListOptions struct {
	ListOptions
	Dates    DateRange
	Billable *bool
	Billed   *bool
	Tags     []string
}

// ProjectExpenseInput is the payload of Create and Update. Nil prices are
// left untouched.
type ProjectExpenseInput struct {
	Date             time.Time
	Title            string
	Quantity         float64
	Unit             string
	UnitPrice        *float64
	UnitCost         *float64
	Description      string
	Billable         *bool
	BudgetRelevant   *bool
	CustomProperties map[string]any
}

func (e ProjectExpenseInput) params() Params {
	return Params{}.
		Set("date", e.Date).
		Set("title", e.Title).
		Set("quantity", e.Quantity).
		Set("unit", e.Unit).
		Set("unit_price", e.UnitPrice).
		Set("unit_cost", e.UnitCost).
		Set("description", e.Description).
		Set("billable", e.Billable).
		Set("budget_relevant", e.BudgetRelevant).
		Set("custom_properties", e.CustomProperties)
}

// ProjectExpenseDisregard marks expenses of a project as not to be billed.
type ProjectExpenseDisregard struct {
	ExpenseIDs []int
	Reason     string
}

// ListAll returns one page of expenses across all projects.
func (s *ProjectExpenseService) ListAll(ctx context.Context, opts ProjectExpenseListOptions) (*Listing[models.ProjectExpense], error) {
	q, err := listQuery(opts.ListOptions)
	if err != nil {
		return nil, err
	}
	if err := opts.Dates.apply(q, "from", "to"); err != nil {
		return nil, err
	}
	q.Set("billable", opts.Billable).
		Set("billed", opts.Billed).
		Set("tags", opts.Tags)

	return getListing[models.ProjectExpense](ctx, s.client, "project_expense_getall", nil, q)
}

// List returns one page of expenses of a project.
func (s *ProjectExpenseService) List(ctx context.Context, projectID int, opts ListOptions) (*Listing[models.ProjectExpense], error) {
	q, err := listQuery(opts)
	if err != nil {
		return nil, err
	}
	return getListing[models.ProjectExpense](ctx, s.client, "project_expense_getlist", byProject(projectID), q)
}

// Get returns a single expense.
func (s *ProjectExpenseService) Get(ctx context.Context, projectID, id int) (*models.ProjectExpense, error) {
	return getObject[models.ProjectExpense](ctx, s.client, "project_expense_get", byProjectAndID(projectID, id), nil)
}

// Create books an expense on a project.
func (s *ProjectExpenseService) Create(ctx context.Context, projectID int, e ProjectExpenseInput) (*models.ProjectExpense, error) {
	if err := validateInput("expense", &e,
		validation.Field(&e.Date, validation.Required),
		validation.Field(&e.Title, validation.Required),
		validation.Field(&e.Quantity, validation.Required),
		validation.Field(&e.Unit, validation.Required),
		validation.Field(&e.UnitPrice, validation.Min(0.0)),
		validation.Field(&e.UnitCost, validation.Min(0.0)),
	); err != nil {
		return nil, err
	}
	return sendObject[models.ProjectExpense](ctx, s.client, "project_expense_create", byProject(projectID), e.params())
}

// BulkCreate books several expenses in one call. Entries are usually
// built with generator.ProjectExpenses.
func (s *ProjectExpenseService) BulkCreate(ctx context.Context, projectID int, entries []models.ProjectExpenseEntry) ([]models.ProjectExpense, error) {
	if len(entries) == 0 {
		return nil, &ValidationError{Field: "bulk_data", Err: validation.ErrRequired}
	}
	return sendSlice[models.ProjectExpense](ctx, s.client, "project_expense_create_bulk", byProject(projectID), Params{"bulk_data": entries})
}

// Update changes an expense.
func (s *ProjectExpenseService) Update(ctx context.Context, projectID, id int, e ProjectExpenseInput) (*models.ProjectExpense, error) {
	return sendObject[models.ProjectExpense](ctx, s.client, "project_expense_update", byProjectAndID(projectID, id), e.params())
}

// Delete removes an expense.
func (s *ProjectExpenseService) Delete(ctx context.Context, projectID, id int) error {
	return sendEmpty(ctx, s.client, "project_expense_delete", byProjectAndID(projectID, id), nil)
}

// Disregard excludes expenses from billing.
func (s *ProjectExpenseService) Disregard(ctx context.Context, projectID int, d ProjectExpenseDisregard) error {
	if err := validateInput("disregard", &d,
		validation.Field(&d.ExpenseIDs, validation.Required),
		validation.Field(&d.Reason, validation.Required),
	); err != nil {
		return err
	}
	body := Params{}.
		Put("expense_ids", d.ExpenseIDs).
		Put("reason", d.Reason)
	return sendEmpty(ctx, s.client, "project_expense_disregard", byProject(projectID), body)
}

// Recurrence periods of recurring expenses.
const (
	PeriodWeekly    = "weekly"
	PeriodBiweekly  = "biweekly"
	PeriodMonthly   = "monthly"
	PeriodQuarterly = "quarterly"
	PeriodBiannual  = "biannual"
	PeriodAnnual    = "annual"
)

// ProjectRecurringExpenseService manages expenses Moco books every period.
type ProjectRecurringExpenseService struct {
	client *Client
}

// RecurringExpenseInput is the payload of Create and Update. StartDate and
// Period cannot be changed after creation.
type RecurringExpenseInput struct {
	StartDate              time.Time
	Period                 string
	Title                  string
	Quantity               float64
	Unit                   string
	UnitPrice              *float64
	UnitCost               *float64
	FinishDate             time.Time
	Description            string
	Billable               *bool
	BudgetRelevant         *bool
	ServicePeriodDirection string
	CustomProperties       map[string]any
}

func (r RecurringExpenseInput) params() Params {
	return Params{}.
		Set("start_date", r.StartDate).
		Set("period", r.Period).
		Set("title", r.Title).
		Set("quantity", r.Quantity).
		Set("unit", r.Unit).
		Set("unit_price", r.UnitPrice).
		Set("unit_cost", r.UnitCost).
		Set("finish_date", r.FinishDate).
		Set("description", r.Description).
		Set("billable", r.Billable).
		Set("budget_relevant", r.BudgetRelevant).
		Set("service_period_direction", r.ServicePeriodDirection).
		Set("custom_properties", r.CustomProperties)
}

// List returns one page of recurring expenses of a project.
func (s *ProjectRecurringExpenseService) List(ctx context.Context, projectID int, opts ListOptions) (*Listing[models.RecurringExpense], error) {
	q, err := listQuery(opts)
	if err != nil {
		return nil, err
	}
	return getListing[models.RecurringExpense](ctx, s.client, "project_recurring_expense_getlist", byProject(projectID), q)
}

// Get returns a single recurring expense.
func (s *ProjectRecurringExpenseService) Get(ctx context.Context, projectID, id int) (*models.RecurringExpense, error) {
	return getObject[models.RecurringExpense](ctx, s.client, "project_recurring_expense_get", byProjectAndID(projectID, id), nil)
}

// Create adds a recurring expense to a project.
func (s *ProjectRecurringExpenseService) Create(ctx context.Context, projectID int, r RecurringExpenseInput) (*models.RecurringExpense, error) {
	if err := validateInput("recurring_expense", &r,
		validation.Field(&r.StartDate, validation.Required),
		validation.Field(&r.Period, validation.Required, validation.In(
			PeriodWeekly, PeriodBiweekly, PeriodMonthly, PeriodQuarterly, PeriodBiannual, PeriodAnnual,
		)),
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Quantity, validation.Required),
		validation.Field(&r.Unit, validation.Required),
		validation.Field(&r.ServicePeriodDirection, validation.In("none", "forward", "backward")),
	); err != nil {
		return nil, err
	}
	return sendObject[models.RecurringExpense](ctx, s.client, "project_recurring_expense_create", byProject(projectID), r.params())
}

// Update changes a recurring expense.
func (s *ProjectRecurringExpenseService) Update(ctx context.Context, projectID, id int, r RecurringExpenseInput) (*models.RecurringExpense, error) {
	if !r.StartDate.IsZero() || r.Period != "" {
		return nil, &ValidationError{Field: "recurring_expense", Err: validation.NewError("immutable", "start_date and period cannot be changed")}
	}
	return sendObject[models.RecurringExpense](ctx, s.client, "project_recurring_expense_update", byProjectAndID(projectID, id), r.params())
}

// Delete removes a recurring expense.
func (s *ProjectRecurringExpenseService) Delete(ctx context.Context, projectID, id int) error {
	return sendEmpty(ctx, s.client, "project_recurring_expense_delete", byProjectAndID(projectID, id), nil)
}
