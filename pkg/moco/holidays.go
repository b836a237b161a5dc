package moco

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/sommalia/moco-wrapper-sub001/pkg/moco/models"
)

// HolidayService manages the yearly holiday entitlements of users.
type HolidayService struct {
	client *Client
}

// HolidayListOptions filters Holidays.List.
type HolidayListOptions struct {
	ListOptions
	Year   int
	UserID int
}

// HolidayInput is the payload of Holidays.Create and Holidays.Update.
type HolidayInput struct {
	Year   int
	Title  string
	UserID int
	Hours  float64
	Days   float64
}

func (h HolidayInput) params() Params {
	return Params{}.
		Set("year", h.Year).
		Set("title", h.Title).
		Set("user_id", h.UserID).
		Set("hours", h.Hours).
		Set("days", h.Days)
}

// List returns one page of holiday entitlements.
func (s *HolidayService) List(ctx context.Context, opts HolidayListOptions) (*Listing[models.Holiday], error) {
	q, err := listQuery(opts.ListOptions)
	if err != nil {
		return nil, err
	}
	q.Set("year", opts.Year).Set("user_id", opts.UserID)

	return getListing[models.Holiday](ctx, s.client, "user_holiday_getlist", nil, q)
}

// Get returns a single entitlement.
func (s *HolidayService) Get(ctx context.Context, id int) (*models.Holiday, error) {
	return getObject[models.Holiday](ctx, s.client, "user_holiday_get", byID(id), nil)
}

// Create grants holidays to a user. Either Hours or Days is required.
func (s *HolidayService) Create(ctx context.Context, h HolidayInput) (*models.Holiday, error) {
	if err := validateInput("holiday", &h,
		validation.Field(&h.Year, validation.Required, validation.Min(1970)),
		validation.Field(&h.Title, validation.Required),
		validation.Field(&h.UserID, validation.Required),
		validation.Field(&h.Hours, validation.Required.When(h.Days == 0).Error("hours or days is required")),
	); err != nil {
		return nil, err
	}
	return sendObject[models.Holiday](ctx, s.client, "user_holiday_create", nil, h.params())
}

// Update changes an entitlement.
func (s *HolidayService) Update(ctx context.Context, id int, h HolidayInput) (*models.Holiday, error) {
	return sendObject[models.Holiday](ctx, s.client, "user_holiday_update", byID(id), h.params())
}

// Delete removes an entitlement.
func (s *HolidayService) Delete(ctx context.Context, id int) error {
	return sendEmpty(ctx, s.client, "user_holiday_delete", byID(id), nil)
}
