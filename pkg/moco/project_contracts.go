package moco

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/sommalia/moco-wrapper-sub001/pkg/moco/models"
)

// ProjectContractService staffs users on projects.
type ProjectContractService struct {
	client *Client
}

// ProjectContractInput is the payload of Create and Update. UserID is only
// used on create. Nil amounts are left untouched.
type ProjectContractInput struct {
	UserID     int
	Billable   *bool
	Active     *bool
	Budget     *float64
	HourlyRate *float64
}

func (c ProjectContractInput) params() Params {
	return Params{}.
		Set("user_id", c.UserID).
		Set("billable", c.Billable).
		Set("active", c.Active).
		Set("budget", c.Budget).
		Set("hourly_rate", c.HourlyRate)
}

// List returns one page of contracts of a project.
func (s *ProjectContractService) List(ctx context.Context, projectID int, opts ListOptions) (*Listing[models.ProjectContract], error) {
	q, err := listQuery(opts)
	if err != nil {
		return nil, err
	}
	return getListing[models.ProjectContract](ctx, s.client, "project_contract_getlist", byProject(projectID), q)
}

// Get returns a single contract.
func (s *ProjectContractService) Get(ctx context.Context, projectID, id int) (*models.ProjectContract, error) {
	return getObject[models.ProjectContract](ctx, s.client, "project_contract_get", byProjectAndID(projectID, id), nil)
}

// Create staffs a user on a project.
func (s *ProjectContractService) Create(ctx context.Context, projectID int, c ProjectContractInput) (*models.ProjectContract, error) {
	if err := validateInput("contract", &c,
		validation.Field(&c.UserID, validation.Required),
		validation.Field(&c.Budget, validation.Min(0.0)),
		validation.Field(&c.HourlyRate, validation.Min(0.0)),
	); err != nil {
		return nil, err
	}
	return sendObject[models.ProjectContract](ctx, s.client, "project_contract_create", byProject(projectID), c.params())
}

// Update changes a contract.
func (s *ProjectContractService) Update(ctx context.Context, projectID, id int, c ProjectContractInput) (*models.ProjectContract, error) {
	c.UserID = 0
	return sendObject[models.ProjectContract](ctx, s.client, "project_contract_update", byProjectAndID(projectID, id), c.params())
}

// Delete removes a user from a project.
func (s *ProjectContractService) Delete(ctx context.Context, projectID, id int) error {
	return sendEmpty(ctx, s.client, "project_contract_delete", byProjectAndID(projectID, id), nil)
}

// ProjectPaymentScheduleService manages planned partial payments of
// fixed-price projects.
type ProjectPaymentScheduleService struct {
	client *Client
}

// PaymentScheduleInput is the payload of Create and Update.
type PaymentScheduleInput struct {
	NetTotal    float64
	Date        time.Time
	Title       string
	Description string
	Checked     *bool
}

func (p PaymentScheduleInput) params() Params {
	return Params{}.
		Set("net_total", p.NetTotal).
		Set("date", p.Date).
		Set("title", p.Title).
		Set("description", p.Description).
		Set("checked", p.Checked)
}

// List returns one page of payment schedules of a project.
func (s *ProjectPaymentScheduleService) List(ctx context.Context, projectID int, opts ListOptions) (*Listing[models.PaymentSchedule], error) {
	q, err := listQuery(opts)
	if err != nil {
		return nil, err
	}
	return getListing[models.PaymentSchedule](ctx, s.client, "project_payment_schedule_getlist", byProject(projectID), q)
}

// Get returns a single payment schedule.
func (s *ProjectPaymentScheduleService) Get(ctx context.Context, projectID, id int) (*models.PaymentSchedule, error) {
	return getObject[models.PaymentSchedule](ctx, s.client, "project_payment_schedule_get", byProjectAndID(projectID, id), nil)
}

// Create plans a partial payment.
func (s *ProjectPaymentScheduleService) Create(ctx context.Context, projectID int, p PaymentScheduleInput) (*models.PaymentSchedule, error) {
	if err := validateInput("payment_schedule", &p,
		validation.Field(&p.NetTotal, validation.Required, validation.Min(0.0)),
		validation.Field(&p.Date, validation.Required),
	); err != nil {
		return nil, err
	}
	return sendObject[models.PaymentSchedule](ctx, s.client, "project_payment_schedule_create", byProject(projectID), p.params())
}

// Update changes a payment schedule.
func (s *ProjectPaymentScheduleService) Update(ctx context.Context, projectID, id int, p PaymentScheduleInput) (*models.PaymentSchedule, error) {
	return sendObject[models.PaymentSchedule](ctx, s.client, "project_payment_schedule_update", byProjectAndID(projectID, id), p.params())
}

// Delete removes a payment schedule.
func (s *ProjectPaymentScheduleService) Delete(ctx context.Context, projectID, id int) error {
	return sendEmpty(ctx, s.client, "project_payment_schedule_delete", byProjectAndID(projectID, id), nil)
}
