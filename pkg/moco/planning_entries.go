package moco

import (
	"context"
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/sommalia/moco-wrapper-sub001/pkg/moco/models"
)

// PlanningEntryService manages resource planning.
type PlanningEntryService struct {
	client *Client
}

// PlanningEntryListOptions filters PlanningEntries.List. The period is sent
// as a single "from:to" value.
type PlanningEntryListOptions struct {
	ListOptions
	Period    DateRange
	UserID    int
	ProjectID int
	DealID    int
}

// PlanningEntryInput is the payload of Create and Update. Exactly one of
// ProjectID and DealID is required on create.
type PlanningEntryInput struct {
	StartsOn    time.Time
	EndsOn      time.Time
	HoursPerDay *float64
	UserID      int
	ProjectID   int
	DealID      int
	Comment     string
	Symbol      int
}

func (p PlanningEntryInput) params() Params {
	return Params{}.
		Set("starts_on", p.StartsOn).
		Set("ends_on", p.EndsOn).
		Set("hours_per_day", p.HoursPerDay).
		Set("user_id", p.UserID).
		Set("project_id", p.ProjectID).
		Set("deal_id", p.DealID).
		Set("comment", p.Comment).
		Set("symbol", p.Symbol)
}

// List returns one page of planning entries.
func (s *PlanningEntryService) List(ctx context.Context, opts PlanningEntryListOptions) (*Listing[models.PlanningEntry], error) {
	q, err := listQuery(opts.ListOptions)
	if err != nil {
		return nil, err
	}
	if err := opts.Period.Validate(); err != nil {
		return nil, &ValidationError{Field: "period", Err: err}
	}
	if !opts.Period.IsZero() {
		q.Put("period", models.DateOf(opts.Period.From).String()+":"+models.DateOf(opts.Period.To).String())
	}
	q.Set("user_id", opts.UserID).
		Set("project_id", opts.ProjectID).
		Set("deal_id", opts.DealID)

	return getListing[models.PlanningEntry](ctx, s.client, "planning_entry_getlist", nil, q)
}

// Get returns a single planning entry.
func (s *PlanningEntryService) Get(ctx context.Context, id int) (*models.PlanningEntry, error) {
	return getObject[models.PlanningEntry](ctx, s.client, "planning_entry_get", byID(id), nil)
}

// Create plans hours of a user on a project or deal.
func (s *PlanningEntryService) Create(ctx context.Context, p PlanningEntryInput) (*models.PlanningEntry, error) {
	if err := validateInput("planning_entry", &p,
		validation.Field(&p.StartsOn, validation.Required),
		validation.Field(&p.EndsOn, validation.Required),
		validation.Field(&p.HoursPerDay, validation.Required, validation.Min(0.0)),
		validation.Field(&p.ProjectID, validation.Required.When(p.DealID == 0).Error("project_id or deal_id is required")),
		validation.Field(&p.DealID, validation.By(func(any) error {
			if p.DealID != 0 && p.ProjectID != 0 {
				return errors.New("only one of project_id and deal_id may be set")
			}
			return nil
		})),
	); err != nil {
		return nil, err
	}
	return sendObject[models.PlanningEntry](ctx, s.client, "planning_entry_create", nil, p.params())
}

// Update changes a planning entry.
func (s *PlanningEntryService) Update(ctx context.Context, id int, p PlanningEntryInput) (*models.PlanningEntry, error) {
	return sendObject[models.PlanningEntry](ctx, s.client, "planning_entry_update", byID(id), p.params())
}

// Delete removes a planning entry.
func (s *PlanningEntryService) Delete(ctx context.Context, id int) error {
	return sendEmpty(ctx, s.client, "planning_entry_delete", byID(id), nil)
}
