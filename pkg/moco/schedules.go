package moco

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/sommalia/moco-wrapper-sub001/pkg/moco/models"
)

// Absence codes of schedule entries.
const (
	AbsenceUnplanned     = 1
	AbsencePublicHoliday = 2
	AbsenceSick          = 3
	AbsenceHoliday       = 4
	AbsenceOther         = 5
)

// ScheduleService manages absences.
type ScheduleService struct {
	client *Client
}

// ScheduleListOptions filters Schedules.List.
type ScheduleListOptions struct {
	ListOptions
	Dates       DateRange
	UserID      int
	AbsenceCode int
}

// ScheduleCreate is the payload of a new absence. Leaving both AM and PM
// nil books a full day.
type ScheduleCreate struct {
	Date        time.Time
	AbsenceCode int
	UserID      int
	AM          *bool
	PM          *bool
	Comment     string
	Symbol      int
	Overwrite   *bool
}

// ScheduleUpdate changes an absence.
type ScheduleUpdate struct {
	AbsenceCode int
	AM          *bool
	PM          *bool
	Comment     *string
	Symbol      int
	Overwrite   *bool
}

// List returns one page of absences.
func (s *ScheduleService) List(ctx context.Context, opts ScheduleListOptions) (*Listing[models.Schedule], error) {
	q, err := listQuery(opts.ListOptions)
	if err != nil {
		return nil, err
	}
	if err := opts.Dates.apply(q, "from", "to"); err != nil {
		return nil, err
	}
	q.Set("user_id", opts.UserID).Set("absence_code", opts.AbsenceCode)

	return getListing[models.Schedule](ctx, s.client, "schedule_getlist", nil, q)
}

// Get returns a single absence.
func (s *ScheduleService) Get(ctx context.Context, id int) (*models.Schedule, error) {
	return getObject[models.Schedule](ctx, s.client, "schedule_get", byID(id), nil)
}

// Create books an absence.
func (s *ScheduleService) Create(ctx context.Context, sc ScheduleCreate) (*models.Schedule, error) {
	if err := validateInput("schedule", &sc,
		validation.Field(&sc.Date, validation.Required),
		validation.Field(&sc.AbsenceCode, validation.Required, validation.Min(AbsenceUnplanned), validation.Max(AbsenceOther)),
	); err != nil {
		return nil, err
	}
	body := Params{}.
		Put("date", sc.Date).
		Put("absence_code", sc.AbsenceCode).
		Set("user_id", sc.UserID).
		Set("am", sc.AM).
		Set("pm", sc.PM).
		Set("comment", sc.Comment).
		Set("symbol", sc.Symbol).
		Set("overwrite", sc.Overwrite)
	return sendObject[models.Schedule](ctx, s.client, "schedule_create", nil, body)
}

// Update changes an absence.
func (s *ScheduleService) Update(ctx context.Context, id int, sc ScheduleUpdate) (*models.Schedule, error) {
	if err := validateInput("schedule", &sc,
		validation.Field(&sc.AbsenceCode, validation.Min(AbsenceUnplanned), validation.Max(AbsenceOther)),
	); err != nil {
		return nil, err
	}
	body := Params{}.
		Set("absence_code", sc.AbsenceCode).
		Set("am", sc.AM).
		Set("pm", sc.PM).
		Set("comment", sc.Comment).
		Set("symbol", sc.Symbol).
		Set("overwrite", sc.Overwrite)
	return sendObject[models.Schedule](ctx, s.client, "schedule_update", byID(id), body)
}

// Delete removes an absence.
func (s *ScheduleService) Delete(ctx context.Context, id int) error {
	return sendEmpty(ctx, s.client, "schedule_delete", byID(id), nil)
}
