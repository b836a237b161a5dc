package moco

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/sommalia/moco-wrapper-sub001/pkg/moco/models"
)

// UnitService manages teams.
type UnitService struct {
	client *Client
}

// List returns one page of units.
func (s *UnitService) List(ctx context.Context, opts ListOptions) (*Listing[models.Unit], error) {
	q, err := listQuery(opts)
	if err != nil {
		return nil, err
	}
	return getListing[models.Unit](ctx, s.client, "unit_getlist", nil, q)
}

// Get returns a single unit.
func (s *UnitService) Get(ctx context.Context, id int) (*models.Unit, error) {
	return getObject[models.Unit](ctx, s.client, "unit_get", byID(id), nil)
}

// Create adds a unit.
func (s *UnitService) Create(ctx context.Context, name string) (*models.Unit, error) {
	if err := validation.Validate(name, validation.Required); err != nil {
		return nil, &ValidationError{Field: "name", Err: err}
	}
	return sendObject[models.Unit](ctx, s.client, "unit_create", nil, Params{}.Put("name", name))
}

// Update renames a unit.
func (s *UnitService) Update(ctx context.Context, id int, name string) (*models.Unit, error) {
	return sendObject[models.Unit](ctx, s.client, "unit_update", byID(id), Params{}.Set("name", name))
}

// Delete removes a unit. Moco refuses when users are still assigned.
func (s *UnitService) Delete(ctx context.Context, id int) error {
	return sendEmpty(ctx, s.client, "unit_delete", byID(id), nil)
}
