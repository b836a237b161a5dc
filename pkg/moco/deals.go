package moco

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/sommalia/moco-wrapper-sub001/pkg/moco/models"
)

// Deal states.
const (
	DealStatusPotential = "potential"
	DealStatusPending   = "pending"
	DealStatusWon       = "won"
	DealStatusLost      = "lost"
	DealStatusDropped   = "dropped"
)

var dealStates = []any{
	DealStatusPotential, DealStatusPending, DealStatusWon, DealStatusLost, DealStatusDropped,
}

// DealService manages sales opportunities.
type DealService struct {
	client *Client
}

// DealListOptions filters Deals.List.
type DealListOptions struct {
	ListOptions
	Status string
	Tags   []string
}

// DealInput is the payload of Create and Update.
type DealInput struct {
	Name           string
	Currency       string
	Money          float64
	ReminderDate   time.Time
	UserID         int
	DealCategoryID int
	CompanyID      int
	Info           string
	Status         string
}

func (d DealInput) params() Params {
	return Params{}.
		Set("name", d.Name).
		Set("currency", d.Currency).
		Set("money", d.Money).
		Set("reminder_date", d.ReminderDate).
		Set("user_id", d.UserID).
		Set("deal_category_id", d.DealCategoryID).
		Set("company_id", d.CompanyID).
		Set("info", d.Info).
		Set("status", d.Status)
}

// List returns one page of deals.
func (s *DealService) List(ctx context.Context, opts DealListOptions) (*Listing[models.Deal], error) {
	q, err := listQuery(opts.ListOptions)
	if err != nil {
		return nil, err
	}
	if err := validation.Validate(opts.Status, validation.In(dealStates...)); err != nil {
		return nil, &ValidationError{Field: "status", Err: err}
	}
	q.Set("status", opts.Status).Set("tags", opts.Tags)

	return getListing[models.Deal](ctx, s.client, "deal_getlist", nil, q)
}

// Get returns a single deal.
func (s *DealService) Get(ctx context.Context, id int) (*models.Deal, error) {
	return getObject[models.Deal](ctx, s.client, "deal_get", byID(id), nil)
}

// Create adds a deal.
func (s *DealService) Create(ctx context.Context, d DealInput) (*models.Deal, error) {
	if err := validateInput("deal", &d,
		validation.Field(&d.Name, validation.Required),
		validation.Field(&d.Currency, validation.Required, validation.Length(3, 3)),
		validation.Field(&d.Money, validation.Min(0.0)),
		validation.Field(&d.ReminderDate, validation.Required),
		validation.Field(&d.UserID, validation.Required),
		validation.Field(&d.DealCategoryID, validation.Required),
		validation.Field(&d.Status, validation.In(dealStates...)),
	); err != nil {
		return nil, err
	}
	return sendObject[models.Deal](ctx, s.client, "deal_create", nil, d.params())
}

// Update changes a deal.
func (s *DealService) Update(ctx context.Context, id int, d DealInput) (*models.Deal, error) {
	if err := validateInput("deal", &d,
		validation.Field(&d.Status, validation.In(dealStates...)),
	); err != nil {
		return nil, err
	}
	return sendObject[models.Deal](ctx, s.client, "deal_update", byID(id), d.params())
}

// Delete removes a deal.
func (s *DealService) Delete(ctx context.Context, id int) error {
	return sendEmpty(ctx, s.client, "deal_delete", byID(id), nil)
}

// DealCategoryService manages sales stages.
type DealCategoryService struct {
	client *Client
}

// List returns one page of deal categories.
func (s *DealCategoryService) List(ctx context.Context, opts ListOptions) (*Listing[models.DealCategory], error) {
	q, err := listQuery(opts)
	if err != nil {
		return nil, err
	}
	return getListing[models.DealCategory](ctx, s.client, "deal_category_getlist", nil, q)
}

// Get returns a single deal category.
func (s *DealCategoryService) Get(ctx context.Context, id int) (*models.DealCategory, error) {
	return getObject[models.DealCategory](ctx, s.client, "deal_category_get", byID(id), nil)
}

// Create adds a sales stage with a win probability between 0 and 100.
func (s *DealCategoryService) Create(ctx context.Context, name string, probability int) (*models.DealCategory, error) {
	if err := validateProbability(name, probability, true); err != nil {
		return nil, err
	}
	body := Params{}.Put("name", name).Put("probability", probability)
	return sendObject[models.DealCategory](ctx, s.client, "deal_category_create", nil, body)
}

// Update changes a deal category. A nil probability is left untouched.
func (s *DealCategoryService) Update(ctx context.Context, id int, name string, probability *int) (*models.DealCategory, error) {
	if probability != nil {
		if err := validateProbability(name, *probability, false); err != nil {
			return nil, err
		}
	}
	body := Params{}.Set("name", name).Set("probability", probability)
	return sendObject[models.DealCategory](ctx, s.client, "deal_category_update", byID(id), body)
}

// Delete removes a deal category.
func (s *DealCategoryService) Delete(ctx context.Context, id int) error {
	return sendEmpty(ctx, s.client, "deal_category_delete", byID(id), nil)
}

func validateProbability(name string, probability int, nameRequired bool) error {
	if err := validation.Validate(name, validation.Required.When(nameRequired)); err != nil {
		return &ValidationError{Field: "name", Err: err}
	}
	if err := validation.Validate(probability, validation.Min(0), validation.Max(100)); err != nil {
		return &ValidationError{Field: "probability", Err: err}
	}
	return nil
}
