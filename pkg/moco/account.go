package moco

import (
	"context"

	"github.com/sommalia/moco-wrapper-sub001/pkg/moco/models"
)

// HourlyRateService reads the hourly rates of the account.
type HourlyRateService struct {
	client *Client
}

// Get returns the account rates, or the rates of a customer when
// companyID is not zero.
func (s *HourlyRateService) Get(ctx context.Context, companyID int) (*models.HourlyRates, error) {
	return getObject[models.HourlyRates](ctx, s.client, "hourly_rate_get", nil, Params{}.Set("company_id", companyID))
}

// FixedCostService reads the fixed costs of the account.
type FixedCostService struct {
	client *Client
}

// List returns the fixed costs of a year, or of the current year when year
// is zero.
func (s *FixedCostService) List(ctx context.Context, year int) ([]models.FixedCost, error) {
	return getSlice[models.FixedCost](ctx, s.client, "fixed_cost_getlist", nil, Params{}.Set("year", year))
}

// SessionService logs in and inspects the current api key.
type SessionService struct {
	client *Client
}

// Authenticate logs in with the configured email and password. Following
// requests use the returned api key.
func (s *SessionService) Authenticate(ctx context.Context) (*models.Session, error) {
	return s.client.Authenticate(ctx)
}

// Verify returns the user the current api key belongs to.
func (s *SessionService) Verify(ctx context.Context) (*models.Session, error) {
	return getObject[models.Session](ctx, s.client, "session_verify", nil, nil)
}
