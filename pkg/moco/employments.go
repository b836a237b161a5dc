package moco

import (
	"context"

	"github.com/sommalia/moco-wrapper-sub001/pkg/moco/models"
)

// EmploymentService reads weekly working-time agreements.
type EmploymentService struct {
	client *Client
}

// EmploymentListOptions filters Employments.List.
type EmploymentListOptions struct {
	ListOptions
	Dates  DateRange
	UserID int
}

// List returns one page of employments.
func (s *EmploymentService) List(ctx context.Context, opts EmploymentListOptions) (*Listing[models.Employment], error) {
	q, err := listQuery(opts.ListOptions)
	if err != nil {
		return nil, err
	}
	if err := opts.Dates.apply(q, "from", "to"); err != nil {
		return nil, err
	}
	q.Set("user_id", opts.UserID)

	return getListing[models.Employment](ctx, s.client, "user_employment_getlist", nil, q)
}

// Get returns a single employment.
func (s *EmploymentService) Get(ctx context.Context, id int) (*models.Employment, error) {
	return getObject[models.Employment](ctx, s.client, "user_employment_get", byID(id), nil)
}
