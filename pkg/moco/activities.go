package moco

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/sommalia/moco-wrapper-sub001/pkg/moco/models"
)

// ActivityService manages time entries.
type ActivityService struct {
	client *Client
}

// ActivityListOptions filters Activities.List. Dates must be given as a
// pair.
type ActivityListOptions struct {
	ListOptions
	Dates     DateRange
	UserID    int
	ProjectID int
	TaskID    int
	CompanyID int
	Term      string
}

// ActivityCreate is the payload of a new time entry.
type ActivityCreate struct {
	Date          time.Time
	ProjectID     int
	TaskID        int
	Hours         float64
	Description   string
	Billable      *bool
	Tag           string
	RemoteService string
	RemoteID      string
	RemoteURL     string
}

func (a ActivityCreate) params() Params {
	return Params{}.
		Put("date", a.Date).
		Put("project_id", a.ProjectID).
		Put("task_id", a.TaskID).
		Put("hours", a.Hours).
		Set("description", a.Description).
		Set("billable", a.Billable).
		Set("tag", a.Tag).
		Set("remote_service", a.RemoteService).
		Set("remote_id", a.RemoteID).
		Set("remote_url", a.RemoteURL)
}

func (a *ActivityCreate) validate() error {
	return validateInput("activity", a,
		validation.Field(&a.Date, validation.Required),
		validation.Field(&a.ProjectID, validation.Required),
		validation.Field(&a.TaskID, validation.Required),
		validation.Field(&a.Hours, validation.Min(0.0)),
	)
}

// ActivityUpdate changes an existing time entry. Nil and zero fields are
// left untouched.
type ActivityUpdate struct {
	Date          time.Time
	ProjectID     int
	TaskID        int
	Hours         *float64
	Description   *string
	Billable      *bool
	Tag           *string
	RemoteService *string
	RemoteID      *string
	RemoteURL     *string
}

func (a ActivityUpdate) params() Params {
	return Params{}.
		Set("date", a.Date).
		Set("project_id", a.ProjectID).
		Set("task_id", a.TaskID).
		Set("hours", a.Hours).
		Set("description", a.Description).
		Set("billable", a.Billable).
		Set("tag", a.Tag).
		Set("remote_service", a.RemoteService).
		Set("remote_id", a.RemoteID).
		Set("remote_url", a.RemoteURL)
}

// ActivityDisregard marks activities as not to be billed.
type ActivityDisregard struct {
	Reason      string
	ActivityIDs []int
	CompanyID   int
	ProjectID   int
}

// List returns one page of activities.
func (s *ActivityService) List(ctx context.Context, opts ActivityListOptions) (*Listing[models.Activity], error) {
	q, err := listQuery(opts.ListOptions)
	if err != nil {
		return nil, err
	}
	if err := opts.Dates.apply(q, "from", "to"); err != nil {
		return nil, err
	}
	q.Set("user_id", opts.UserID).
		Set("project_id", opts.ProjectID).
		Set("task_id", opts.TaskID).
		Set("company_id", opts.CompanyID).
		Set("term", opts.Term)

	return getListing[models.Activity](ctx, s.client, "activity_getlist", nil, q)
}

// Get returns a single activity.
func (s *ActivityService) Get(ctx context.Context, id int) (*models.Activity, error) {
	return getObject[models.Activity](ctx, s.client, "activity_get", byID(id), nil)
}

// Create books a new activity.
func (s *ActivityService) Create(ctx context.Context, a ActivityCreate) (*models.Activity, error) {
	if err := a.validate(); err != nil {
		return nil, err
	}
	return sendObject[models.Activity](ctx, s.client, "activity_create", nil, a.params())
}

// BulkCreate books several activities in one call.
func (s *ActivityService) BulkCreate(ctx context.Context, activities []ActivityCreate) ([]models.Activity, error) {
	entries := make([]Params, 0, len(activities))
	for i := range activities {
		if err := activities[i].validate(); err != nil {
			return nil, err
		}
		entries = append(entries, activities[i].params())
	}
	body := Params{"activities": entries}
	return sendSlice[models.Activity](ctx, s.client, "activity_bulk_create", nil, body)
}

// Update changes an activity.
func (s *ActivityService) Update(ctx context.Context, id int, u ActivityUpdate) (*models.Activity, error) {
	return sendObject[models.Activity](ctx, s.client, "activity_update", byID(id), u.params())
}

// Delete removes an activity.
func (s *ActivityService) Delete(ctx context.Context, id int) error {
	return sendEmpty(ctx, s.client, "activity_delete", byID(id), nil)
}

// StartTimer starts or resumes the timer on an activity of today.
func (s *ActivityService) StartTimer(ctx context.Context, id int) (*models.Activity, error) {
	return sendObject[models.Activity](ctx, s.client, "activity_start_timer", byID(id), nil)
}

// StopTimer stops a running timer.
func (s *ActivityService) StopTimer(ctx context.Context, id int) (*models.Activity, error) {
	return sendObject[models.Activity](ctx, s.client, "activity_stop_timer", byID(id), nil)
}

// Disregard excludes activities from billing.
func (s *ActivityService) Disregard(ctx context.Context, d ActivityDisregard) error {
	if err := validateInput("disregard", &d,
		validation.Field(&d.Reason, validation.Required),
		validation.Field(&d.ActivityIDs, validation.Required),
		validation.Field(&d.CompanyID, validation.Required),
	); err != nil {
		return err
	}
	body := Params{}.
		Put("reason", d.Reason).
		Put("activity_ids", d.ActivityIDs).
		Put("company_id", d.CompanyID).
		Set("project_id", d.ProjectID)
	return sendEmpty(ctx, s.client, "activity_disregard", nil, body)
}
