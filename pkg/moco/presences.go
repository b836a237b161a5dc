package moco

import (
	"context"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/sommalia/moco-wrapper-sub001/pkg/moco/models"
)

var clockPattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

// PresenceService manages the presence clock of users.
type PresenceService struct {
	client *Client
}

// PresenceListOptions filters Presences.List. Dates must be given as a pair.
type PresenceListOptions struct {
	ListOptions
	Dates  DateRange
	UserID int
}

// PresenceCreate records a span of presence. From and To are wall-clock
// times such as "08:30". To may be empty for an open span.
type PresenceCreate struct {
	Date         time.Time
	From         string
	To           string
	IsHomeOffice *bool
}

// PresenceUpdate changes a presence. Empty fields are left untouched.
type PresenceUpdate struct {
	Date         time.Time
	From         string
	To           string
	IsHomeOffice *bool
}

// List returns one page of presences.
func (s *PresenceService) List(ctx context.Context, opts PresenceListOptions) (*Listing[models.Presence], error) {
	q, err := listQuery(opts.ListOptions)
	if err != nil {
		return nil, err
	}
	if err := opts.Dates.apply(q, "from", "to"); err != nil {
		return nil, err
	}
	q.Set("user_id", opts.UserID)

	return getListing[models.Presence](ctx, s.client, "user_presence_getlist", nil, q)
}

// Get returns a single presence.
func (s *PresenceService) Get(ctx context.Context, id int) (*models.Presence, error) {
	return getObject[models.Presence](ctx, s.client, "user_presence_get", byID(id), nil)
}

// Create records a presence for the acting user.
func (s *PresenceService) Create(ctx context.Context, p PresenceCreate) (*models.Presence, error) {
	if err := validateInput("presence", &p,
		validation.Field(&p.Date, validation.Required),
		validation.Field(&p.From, validation.Required, validation.Match(clockPattern)),
		validation.Field(&p.To, validation.Match(clockPattern)),
	); err != nil {
		return nil, err
	}
	body := Params{}.
		Put("date", p.Date).
		Put("from", p.From).
		Set("to", p.To).
		Set("is_home_office", p.IsHomeOffice)
	return sendObject[models.Presence](ctx, s.client, "user_presence_create", nil, body)
}

// Update changes a presence.
func (s *PresenceService) Update(ctx context.Context, id int, p PresenceUpdate) (*models.Presence, error) {
	if err := validateInput("presence", &p,
		validation.Field(&p.From, validation.Match(clockPattern)),
		validation.Field(&p.To, validation.Match(clockPattern)),
	); err != nil {
		return nil, err
	}
	body := Params{}.
		Set("date", p.Date).
		Set("from", p.From).
		Set("to", p.To).
		Set("is_home_office", p.IsHomeOffice)
	return sendObject[models.Presence](ctx, s.client, "user_presence_update", byID(id), body)
}

// Delete removes a presence.
func (s *PresenceService) Delete(ctx context.Context, id int) error {
	return sendEmpty(ctx, s.client, "user_presence_delete", byID(id), nil)
}

// Touch clocks the acting user in, or out when a span is open.
func (s *PresenceService) Touch(ctx context.Context, isHomeOffice *bool) error {
	body := Params{}.Set("is_home_office", isHomeOffice)
	return sendEmpty(ctx, s.client, "user_presence_touch", nil, body)
}
